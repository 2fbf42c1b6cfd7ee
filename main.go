// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gomat/fem"
	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// densityInput holds the arguments of the density command
type densityInput struct {
	matfn    string // material database
	matname  string // name of material
	ptsfn    string // points file
	nworkers int    // number of goroutines
	verbose  bool   // show messages
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				io.Pf("See location of error below:\n")
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
			os.Exit(1)
		}
	}()

	root := &cobra.Command{
		Use:   "gomat",
		Short: "Gomat computes material properties at integration points",
	}
	root.AddCommand(densityCommand())
	if err := root.Execute(); err != nil {
		chk.Panic("%v", err)
	}
}

// densityCommand returns the command computing densities from coupled displacements
func densityCommand() *cobra.Command {
	var in densityInput
	cmd := &cobra.Command{
		Use:   "density",
		Short: "Compute the current density at the points of a points file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDensity(&in)
		},
	}
	cmd.Flags().StringVarP(&in.matfn, "mat", "m", "", "material database (.mat JSON or .yaml)")
	cmd.Flags().StringVarP(&in.matname, "name", "n", "", "name of material in database")
	cmd.Flags().StringVarP(&in.ptsfn, "points", "p", "", "points file (.json or .yaml)")
	cmd.Flags().IntVarP(&in.nworkers, "workers", "w", 0, "number of goroutines; 0 means number of CPUs")
	cmd.Flags().BoolVarP(&in.verbose, "verbose", "v", false, "show messages")
	cmd.MarkFlagRequired("mat")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("points")
	return cmd
}

// runDensity reads input files, computes densities and prints results
func runDensity(in *densityInput) (err error) {

	// message
	chk.Verbose = in.verbose
	if in.verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"material database", "mat", in.matfn,
			"material name", "name", in.matname,
			"points file", "points", in.ptsfn,
			"number of goroutines", "workers", in.nworkers,
		))
	}

	// input data
	mdb, err := inp.ReadMat(filepath.Split(in.matfn))
	if err != nil {
		return
	}
	mat := mdb.Get(in.matname)
	if mat == nil {
		return chk.Err("cannot find material %q in %q", in.matname, in.matfn)
	}
	pts, err := inp.ReadPoints(filepath.Split(in.ptsfn))
	if err != nil {
		return
	}

	// compute
	ips := fem.NewIntPoints(pts)
	evr, err := fem.NewEvaluator(mat, in.nworkers)
	if err != nil {
		return
	}
	evr.InitProps(ips)
	err = evr.Evaluate(ips)
	if err != nil {
		return
	}
	io.Pf("%v", evr.Table(ips))
	return
}

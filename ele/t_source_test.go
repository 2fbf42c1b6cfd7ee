// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// values implements Values for tests
type values map[string]float64

func (o values) Value(name string) float64 { return o[name] }

func Test_source01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source01")

	f := values{"u": 3, "w": 7}
	ψ := []float64{0.25, 0.5, 0.25}
	for _, vars := range []inp.Couplings{
		{"source": "u"},
		{"stupid_name": "u"},
		{"stupid_name": "u"},
	} {
		k, err := NewKernel(&inp.KernelData{Name: "src", Type: "source-deprecated", Vars: vars})
		if err != nil {
			tst.Errorf("NewKernel failed: %v\n", err)
			return
		}
		chk.String(tst, k.(*Source).Svar, "u")
		R := make([]float64, len(ψ))
		err = k.Residual(R, ψ, f)
		if err != nil {
			tst.Errorf("Residual failed: %v\n", err)
			return
		}
		io.Pforan("%v => R = %v\n", vars, R)
		chk.Array(tst, "R", 1e-17, R, []float64{-0.75, -1.5, -0.75})
	}
}

func Test_source02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source02. errors")

	for _, kdat := range []*inp.KernelData{
		{Name: "a", Type: "sink", Vars: inp.Couplings{"source": "u"}},
		{Name: "b", Type: "source-deprecated", Vars: inp.Couplings{}},
		{Name: "c", Type: "source-deprecated", Vars: inp.Couplings{"source": "u", "stupid_name": "w"}},
		{Name: "d", Type: "source-deprecated", Vars: inp.Couplings{"source": "u w"}},
	} {
		_, err := NewKernel(kdat)
		if err == nil {
			tst.Errorf("%s: NewKernel should have failed\n", kdat.Name)
			return
		}
		io.Pforan("%s: %v\n", kdat.Name, err)
	}

	k, err := NewKernel(&inp.KernelData{Name: "e", Type: "source-deprecated", Vars: inp.Couplings{"source": "u"}})
	if err != nil {
		tst.Errorf("NewKernel failed: %v\n", err)
		return
	}
	err = k.Residual(make([]float64, 2), []float64{1}, values{})
	if err == nil {
		tst.Errorf("Residual should have failed\n")
	}
}

func Test_ipsmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipsmap01")

	M := NewIpsMap()
	if M.Has("density") {
		tst.Errorf("density must not be declared\n")
		return
	}
	chk.Float64(tst, "missing", 1e-17, M.Get("density", 0), 0)

	M.Set("density", 1, 3, 2.5)
	chk.Array(tst, "density", 1e-17, (*M)["density"], []float64{0, 2.5, 0})

	// same size keeps values
	s := M.Alloc("density", 3)
	s[0] = 1.5
	chk.Array(tst, "density", 1e-17, (*M)["density"], []float64{1.5, 2.5, 0})

	// new size reallocates
	M.Alloc("density", 2)
	chk.Array(tst, "density", 1e-17, (*M)["density"], []float64{0, 0})
	if !M.Has("density") {
		tst.Errorf("density must be declared\n")
	}
}

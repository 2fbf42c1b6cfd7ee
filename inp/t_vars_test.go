// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vars01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars01")

	Deprecate("test-vars01", "old_source", "source", "never")

	// current name
	c := Couplings{"source": "u"}
	v, err := c.Var("test-vars01", "source")
	if err != nil {
		tst.Errorf("Var failed: %v\n", err)
		return
	}
	chk.String(tst, v, "u")

	// deprecated name: same variable, twice
	c = Couplings{"old_source": "w"}
	for i := 0; i < 2; i++ {
		v, err = c.Var("test-vars01", "source")
		if err != nil {
			tst.Errorf("Var failed: %v\n", err)
			return
		}
		chk.String(tst, v, "w")
	}

	// other owners do not see the alias
	v, err = c.Var("test-vars01-other", "source")
	if err != nil {
		tst.Errorf("Var failed: %v\n", err)
		return
	}
	chk.String(tst, v, "")

	// both
	c = Couplings{"old_source": "w", "source": "u"}
	_, err = c.Var("test-vars01", "source")
	if err == nil {
		tst.Errorf("Var should have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_vars02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars02")

	c := Couplings{"displacements": "ux  uy uz", "disp_x": "ux vx", "disp_y": " "}
	vars, err := c.Vars("test-vars02", "displacements")
	if err != nil {
		tst.Errorf("Vars failed: %v\n", err)
		return
	}
	chk.Strings(tst, "displacements", vars, []string{"ux", "uy", "uz"})

	_, err = c.Var("test-vars02", "disp_x")
	if err == nil {
		tst.Errorf("two variables should have failed\n")
		return
	}
	_, err = c.Vars("test-vars02", "disp_y")
	if err == nil {
		tst.Errorf("empty variable should have failed\n")
		return
	}
	vars, err = c.Vars("test-vars02", "disp_z")
	if err != nil || vars != nil {
		tst.Errorf("disp_z must not be coupled\n")
		return
	}
	chk.String(tst, c.String(), `{"disp_x":"ux vx", "disp_y":" ", "displacements":"ux  uy uz"}`)
}

func Test_vars03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars03. density coupling")

	c := Couplings{"disp_r": "ur", "disp_z": "uz"}
	cpl, err := c.Coupling(0)
	if err != nil {
		tst.Errorf("Coupling failed: %v\n", err)
		return
	}
	chk.String(tst, cpl.DispR, "ur")
	chk.String(tst, cpl.DispZ, "uz")
	chk.String(tst, cpl.DispX, "")
	if len(cpl.Displacements) != 0 {
		tst.Errorf("displacements must be empty\n")
	}

	c = Couplings{"displacement": "ux"}
	_, err = c.Coupling(0)
	if err == nil {
		tst.Errorf("Coupling should have failed\n")
	}
}

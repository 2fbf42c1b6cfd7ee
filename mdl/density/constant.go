// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Constant implements a density that does not depend on deformation
type Constant struct {
	rho0 float64 // density
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises model
func (o *Constant) Init(prms dbf.Params, cpl *Coupling) (err error) {
	if !cpl.Empty() {
		return chk.Err("constant: density cannot be coupled with displacements; use the \"density\" model instead")
	}
	o.rho0, err = readRho(prms, "constant")
	return
}

// GetPrms gets (an example) of parameters
func (o *Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 2.7},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.rho0},
	}
}

// Rho0 returns the density
func (o *Constant) Rho0() float64 {
	return o.rho0
}

// Coupled returns false
func (o *Constant) Coupled() bool {
	return false
}

// Density returns ρ0
func (o *Constant) Density(x []float64, f Fields) (float64, error) {
	return o.rho0, nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package density implements models for the current density of deforming solids
//
//   ρ V = ρ0 V0   =>   ρ = ρ0 / det(F)   with   F = grad(u) + I
//
package density

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Fields gives read access to coupled variables at the current evaluation point
type Fields interface {
	Grad(name string) Vec3     // gradient of coupled variable
	Value(name string) float64 // value of coupled variable
}

// Model defines the interface for density models
type Model interface {
	Init(prms dbf.Params, cpl *Coupling) error              // initialises model
	GetPrms(example bool) dbf.Params                        // gets (an example) of parameters
	Rho0() float64                                          // returns the reference density
	Coupled() bool                                          // deformation is coupled
	Density(x []float64, f Fields) (rho float64, err error) // computes density @ point with coordinates x
}

// New returns new density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'density' database", name)
	}
	return allocator(), nil
}

// PropKey returns the key of the density property for the given base name
func PropKey(baseName string) string {
	if baseName == "" {
		return "density"
	}
	return baseName + "_density"
}

// allocators holds all available models
var allocators = map[string]func() Model{}

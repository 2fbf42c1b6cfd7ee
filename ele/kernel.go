// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements kernels and property storage at integration points
package ele

import (
	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gosl/chk"
)

// Values gives read access to values of coupled variables at the current integration point
type Values interface {
	Value(name string) float64 // value of coupled variable
}

// Kernel defines residual contributions computed at integration points
type Kernel interface {
	Init(vars inp.Couplings) error                 // initialises kernel with coupled variables
	Residual(R, ψ []float64, f Values) (err error) // computes R[i] for each test function value ψ[i]
}

// NewKernel returns a new kernel from factory
func NewKernel(kdat *inp.KernelData) (k Kernel, err error) {
	allocator, ok := allocators[kdat.Type]
	if !ok {
		return nil, chk.Err("kernel %q is not available in 'ele' database", kdat.Type)
	}
	k = allocator()
	err = k.Init(kdat.Vars)
	if err != nil {
		return nil, chk.Err("kernel %q:\n%v", kdat.Name, err)
	}
	return
}

// allocators holds all available kernels; type => allocator
var allocators = map[string]func() Kernel{}

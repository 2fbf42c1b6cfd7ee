// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gosl/chk"
)

// Source implements a source term whose coupled variable can be given with a deprecated name
//
//   R[i] = -ψ[i] s
//
type Source struct {
	Svar string // variable coupled to "source"
}

// add kernel to factory
func init() {
	allocators["source-deprecated"] = func() Kernel { return new(Source) }
	inp.Deprecate("source-deprecated", "stupid_name", "source", "never because this is a dummy test")
}

// Init initialises kernel
func (o *Source) Init(vars inp.Couplings) (err error) {
	o.Svar, err = vars.Var("source-deprecated", "source")
	if err != nil {
		return
	}
	if o.Svar == "" {
		return chk.Err("source-deprecated: \"source\" must be coupled")
	}
	return
}

// Residual computes R[i] = -ψ[i] s
func (o *Source) Residual(R, ψ []float64, f Values) (err error) {
	if len(R) != len(ψ) {
		return chk.Err("source-deprecated: len(R)=%d and len(ψ)=%d must be equal", len(R), len(ψ))
	}
	s := f.Value(o.Svar)
	for i, v := range ψ {
		R[i] = -v * s
	}
	return
}

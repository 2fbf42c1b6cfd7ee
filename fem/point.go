// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gomat/mdl/density"
)

// IntPoint holds coordinates and coupled variables at one integration point
//  Note: IntPoint is only read during an evaluation pass
type IntPoint struct {
	X     []float64               // coordinates
	Vals  map[string]float64      // values of coupled variables
	Grads map[string]density.Vec3 // gradients of coupled variables
}

// NewIntPoints converts points read from file
func NewIntPoints(pts *inp.PointsData) (ips []*IntPoint) {
	ips = make([]*IntPoint, len(pts.Points))
	for i, p := range pts.Points {
		ip := &IntPoint{
			X:     append([]float64{}, p.X...),
			Vals:  make(map[string]float64, len(p.Vals)),
			Grads: make(map[string]density.Vec3, len(p.Grads)),
		}
		for name, v := range p.Vals {
			ip.Vals[name] = v
		}
		for name, g := range p.Grads {
			var v density.Vec3
			copy(v[:], g)
			ip.Grads[name] = v
		}
		ips[i] = ip
	}
	return
}

// Grad returns the gradient of a coupled variable; zero if not available
func (o *IntPoint) Grad(name string) density.Vec3 {
	return o.Grads[name]
}

// Value returns the value of a coupled variable; zero if not available
func (o *IntPoint) Value(name string) float64 {
	return o.Vals[name]
}

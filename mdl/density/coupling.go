// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import "github.com/cpmech/gosl/chk"

// Vec3 holds the three partial derivatives of one displacement component
type Vec3 [3]float64

// ZeroGrad is the gradient of components that are not coupled
var ZeroGrad = Vec3{}

// Coupling holds the names of the coupled displacement variables
//  Note: either Displacements (current scheme) or the Disp? fields (deprecated scheme) are given.
//        Empty names mean "not coupled"
type Coupling struct {

	// current scheme
	Displacements []string // displacements appropriate for the geometry; e.g. {"ux", "uy", "uz"}
	Coord         CoordSys // coordinate system of the geometry (current scheme only)

	// deprecated scheme; the coordinate system is inferred
	DispR string // r displacement
	DispX string // x displacement
	DispY string // y displacement
	DispZ string // z displacement
}

// Legacy tells whether the deprecated scheme is used
func (o *Coupling) Legacy() bool {
	return o.DispR != "" || o.DispX != "" || o.DispY != "" || o.DispZ != ""
}

// Empty tells whether no displacement is coupled
func (o *Coupling) Empty() bool {
	return o == nil || (len(o.Displacements) == 0 && !o.Legacy())
}

// binding refers to a coupled variable; the empty name refers to the zero sentinel
type binding string

// grad returns the gradient of the bound variable
func (o binding) grad(f Fields) Vec3 {
	if o == "" {
		return ZeroGrad
	}
	return f.Grad(string(o))
}

// value returns the value of the bound variable
func (o binding) value(f Fields) float64 {
	if o == "" {
		return 0
	}
	return f.Value(string(o))
}

// bindings holds the resolved coupling
type bindings struct {
	coord CoordSys   // coordinate system
	grads [3]binding // displacement gradients
	ur    binding    // radial displacement
}

// resolve checks the coupling and binds gradients and the radial displacement
func (o *Coupling) resolve() (b bindings, err error) {

	// current scheme
	if len(o.Displacements) > 0 {
		if o.Legacy() {
			err = chk.Err("displacements and the deprecated disp_r, disp_x, disp_y, disp_z variables cannot be coupled together")
			return
		}
		if len(o.Displacements) > 3 {
			err = chk.Err("at most 3 displacements can be coupled. %d is invalid", len(o.Displacements))
			return
		}
		for i, name := range o.Displacements {
			if name == "" {
				err = chk.Err("name of displacement %d is empty", i)
				return
			}
			b.grads[i] = binding(name)
		}
		b.coord = o.Coord
		b.ur = binding(o.Displacements[0])
		return
	}

	// deprecated scheme
	r, x, y, z := o.DispR != "", o.DispX != "", o.DispY != "", o.DispZ != ""
	switch {
	case r && (x || y):
		err = chk.Err("disp_r cannot be coupled together with disp_x or disp_y")
		return
	case r && z:
		b.coord = CoordRZ
	case r:
		b.coord = CoordRSpherical
	case !x:
		err = chk.Err("disp_y and disp_z require disp_x")
		return
	case z && !y:
		err = chk.Err("disp_z requires disp_y when disp_x is coupled")
		return
	default:
		b.coord = CoordXYZ
	}

	// gradients. in RZ, the third one is always zero since Azz comes from u_r/r
	switch {
	case x:
		b.grads[0] = binding(o.DispX)
	case r:
		b.grads[0] = binding(o.DispR)
	}
	switch {
	case y:
		b.grads[1] = binding(o.DispY)
	case z:
		b.grads[1] = binding(o.DispZ)
	}
	if b.coord != CoordRZ && z {
		b.grads[2] = binding(o.DispZ)
	}
	b.ur = binding(o.DispR)
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"math"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Singular defines what happens when det(F) is zero or not finite
type Singular int

const (
	SingularError    Singular = iota // Density returns an error
	SingularFallback                 // Density returns ρ0 and the occurrence is counted
)

// Updater computes the current density from the deformation gradient
//
//   ρ = ρ0 / det(F)
//
//         ┌                                ┐
//         │ ux,x + 1   ux,y       ux,z     │
//   F  =  │ uy,x       uy,y + 1   uy,z     │
//         │ uz,x       uz,y       uz,z + 1 │
//         └                                ┘
//
//   rz:          Fzz = ur/r + 1
//   rspherical:  Fyy = Fzz = ur/r + 1         (only if r ≠ 0)
//
type Updater struct {

	// parameters
	rho0 float64 // reference density

	// settings
	BaseName   string   // prefix of property key for multiple material systems on the same block
	OnSingular Singular // policy for singular deformation gradients

	// derived
	coupled bool     // deformation is coupled
	bnd     bindings // coupled variables

	// statistics
	nsingular atomic.Int64 // number of singular deformation gradients replaced by ρ0
}

// add model to factory
func init() {
	allocators["density"] = func() Model { return new(Updater) }
}

// Init initialises model
func (o *Updater) Init(prms dbf.Params, cpl *Coupling) (err error) {

	// parameters
	o.rho0, err = readRho(prms, "density")
	if err != nil {
		return
	}

	o.nsingular.Store(0)

	// uncoupled
	if cpl.Empty() {
		o.coupled = false
		o.bnd = bindings{}
		return
	}

	// coupled
	o.bnd, err = cpl.resolve()
	if err != nil {
		return chk.Err("density: %v", err)
	}
	o.coupled = true
	return
}

// GetPrms gets (an example) of parameters
func (o *Updater) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 7.85}, // [Mg/m³]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.rho0},
	}
}

// Rho0 returns the reference density
func (o *Updater) Rho0() float64 {
	return o.rho0
}

// Coupled tells whether deformation is coupled
func (o *Updater) Coupled() bool {
	return o.coupled
}

// Coord returns the coordinate system; it is only meaningful if Coupled() == true
func (o *Updater) Coord() CoordSys {
	return o.bnd.coord
}

// PropKey returns the key of the density property
func (o *Updater) PropKey() string {
	return PropKey(o.BaseName)
}

// Density computes density @ point with coordinates x
func (o *Updater) Density(x []float64, f Fields) (rho float64, err error) {

	// undeformed
	if !o.coupled {
		return o.rho0, nil
	}

	// deformation gradient
	var g [3]Vec3
	for i := 0; i < 3; i++ {
		g[i] = o.bnd.grads[i].grad(f)
	}
	A := DefGrad(g)

	// out-of-plane terms
	if o.bnd.coord != CoordXYZ {
		if len(x) == 0 {
			return 0, chk.Err("density: the radial coordinate is required in %q coordinates", o.bnd.coord)
		}
		r := x[0]
		if r != 0 {
			hoop := o.bnd.ur.value(f)/r + 1.0
			switch o.bnd.coord {
			case CoordRZ:
				A[2][2] = hoop
			case CoordRSpherical:
				A[1][1], A[2][2] = hoop, hoop
			}
		}
	}

	// ρ = ρ0 / det(F)
	detF := Det3(A)
	rho = o.rho0 / detF
	if detF == 0 || !finite(detF) || !finite(rho) {
		if o.OnSingular == SingularFallback {
			if o.nsingular.Add(1) == 1 {
				io.PfYel("density: singular deformation gradient (det(F) = %g) at x = %v. using ρ0 = %g\n", detF, x, o.rho0)
			}
			return o.rho0, nil
		}
		return 0, chk.Err("density: singular deformation gradient (det(F) = %g) at x = %v", detF, x)
	}
	return
}

// finite tells whether v is neither NaN nor ±Inf
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Nsingular returns the number of singular deformation gradients replaced by ρ0
func (o *Updater) Nsingular() int64 {
	return o.nsingular.Load()
}

// DefGrad returns F = grad(u) + I; g[i] is the gradient of the i-th displacement component
func DefGrad(g [3]Vec3) (A [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A[i][j] = g[i][j]
		}
		A[i][i] += 1.0
	}
	return
}

// Det3 computes the determinant of a 3×3 matrix by cofactor expansion
func Det3(A [3][3]float64) float64 {
	return A[0][0]*A[1][1]*A[2][2] + A[0][1]*A[1][2]*A[2][0] + A[0][2]*A[1][0]*A[2][1] -
		A[2][0]*A[1][1]*A[0][2] - A[2][1]*A[1][2]*A[0][0] - A[2][2]*A[1][0]*A[0][1]
}

// readRho reads the required reference density
func readRho(prms dbf.Params, model string) (rho0 float64, err error) {
	found := false
	for _, p := range prms {
		switch p.N {
		case "rho":
			rho0, found = p.V, true
		default:
			return 0, chk.Err("%s: parameter named %q is incorrect", model, p.N)
		}
	}
	if !found {
		return 0, chk.Err("%s: parameter \"rho\" is required", model)
	}
	return
}

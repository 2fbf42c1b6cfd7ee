// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

// UniformStretch computes the density of a body stretched along the x-y-z axes
//
//   u = {Ex x, Ey y, Ez z}   =>   ρ = ρ0 / ((1+Ex) (1+Ey) (1+Ez))
//
type UniformStretch struct {
	Rho0       float64 // reference density
	Ex, Ey, Ez float64 // stretches (strains)
}

// Displ computes the displacements @ x
func (o UniformStretch) Displ(x []float64) (u []float64) {
	s := []float64{o.Ex, o.Ey, o.Ez}
	u = make([]float64, len(x))
	for i := range x {
		u[i] = s[i] * x[i]
	}
	return
}

// Grads returns the gradients of ux, uy and uz
func (o UniformStretch) Grads() [3][3]float64 {
	return [3][3]float64{{o.Ex, 0, 0}, {0, o.Ey, 0}, {0, 0, o.Ez}}
}

// Rho computes the current density
func (o UniformStretch) Rho() float64 {
	return o.Rho0 / ((1 + o.Ex) * (1 + o.Ey) * (1 + o.Ez))
}

// RadialExpansion computes the density of an expanding cylinder (rz) or sphere
//
//   cylinder:  ur = Eps r,  uz = Ez z   =>   ρ = ρ0 / ((1+Eps)² (1+Ez))
//   sphere:    ur = Eps r               =>   ρ = ρ0 / (1+Eps)³
//
type RadialExpansion struct {
	Rho0      float64 // reference density
	Eps       float64 // radial strain
	Ez        float64 // axial strain (cylinder only)
	Spherical bool    // sphere instead of cylinder
}

// Ur computes the radial displacement @ r
func (o RadialExpansion) Ur(r float64) float64 {
	return o.Eps * r
}

// Uz computes the axial displacement @ z
func (o RadialExpansion) Uz(z float64) float64 {
	if o.Spherical {
		return 0
	}
	return o.Ez * z
}

// Grads returns the gradients of ur and uz w.r.t (r, z)
func (o RadialExpansion) Grads() (gur, guz [3]float64) {
	gur[0] = o.Eps
	if !o.Spherical {
		guz[1] = o.Ez
	}
	return
}

// Rho computes the current density
func (o RadialExpansion) Rho() float64 {
	a := 1 + o.Eps
	if o.Spherical {
		return o.Rho0 / (a * a * a)
	}
	return o.Rho0 / (a * a * (1 + o.Ez))
}

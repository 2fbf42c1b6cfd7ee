// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// CoordSys defines the coordinate system of the evaluation points
type CoordSys int

const (
	CoordXYZ        CoordSys = iota // Cartesian
	CoordRZ                         // axisymmetric: x[0] = r, x[1] = z
	CoordRSpherical                 // spherically symmetric: x[0] = r
)

// String returns the input-file key of coordinate system
func (o CoordSys) String() string {
	switch o {
	case CoordXYZ:
		return "xyz"
	case CoordRZ:
		return "rz"
	case CoordRSpherical:
		return "rspherical"
	}
	return "unknown"
}

// ParseCoordSys converts the input-file key to coordinate system. Empty key means Cartesian
func ParseCoordSys(key string) (CoordSys, error) {
	switch strings.ToLower(key) {
	case "", "xyz":
		return CoordXYZ, nil
	case "rz":
		return CoordRZ, nil
	case "rspherical":
		return CoordRSpherical, nil
	}
	return CoordXYZ, chk.Err("coordinate system %q is incorrect; options are \"xyz\", \"rz\" and \"rspherical\"", key)
}

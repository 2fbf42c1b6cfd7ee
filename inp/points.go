// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// PointData holds the coupled values at one evaluation point
type PointData struct {
	X     []float64            `json:"x" yaml:"x"`         // coordinates; x[0] is the radial coordinate in "rz" and "rspherical"
	Vals  map[string]float64   `json:"vals" yaml:"vals"`   // values of coupled variables
	Grads map[string][]float64 `json:"grads" yaml:"grads"` // gradients of coupled variables
}

// PointsData holds all evaluation points
type PointsData struct {
	Points []*PointData `json:"points" yaml:"points"` // all points
}

// ReadPoints reads evaluation points from a .json or .yaml file
func ReadPoints(dir, fn string) (pts *PointsData, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fn, err)
	}

	// decode
	pts = new(PointsData)
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, pts)
	default:
		err = json.Unmarshal(b, pts)
	}
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}

	// check
	for i, p := range pts.Points {
		if p == nil {
			return nil, chk.Err("point %d is empty", i)
		}
		if len(p.X) < 1 || len(p.X) > 3 {
			return nil, chk.Err("point %d: number of coordinates must be 1, 2 or 3. %d is invalid", i, len(p.X))
		}
		for name, g := range p.Grads {
			if len(g) > 3 {
				return nil, chk.Err("point %d: gradient of %q must have at most 3 components. %d is invalid", i, name, len(g))
			}
		}
	}
	return
}

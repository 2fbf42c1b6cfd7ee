// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from material and points files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gomat/mdl/density"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name     string     `json:"name" yaml:"name"`         // name of material
	Type     string     `json:"type" yaml:"type"`         // type of material; e.g. "density"
	Model    string     `json:"model" yaml:"model"`       // name of model; e.g. "density", "constant"
	Extra    string     `json:"extra" yaml:"extra"`       // extra information about this material; e.g. "fallback"
	BaseName string     `json:"basename" yaml:"basename"` // prefix of properties for multiple material systems on the same block
	Coord    string     `json:"coord" yaml:"coord"`       // coordinate system of the geometry: "xyz", "rz" or "rspherical"
	Vars     Couplings  `json:"vars" yaml:"vars"`         // coupled variables; e.g. {"displacements": "ux uy"}
	Prms     dbf.Params `json:"prms" yaml:"prms"`         // prms holds all model parameters for this material

	// derived
	Density density.Model `json:"-" yaml:"-"` // pointer to actual density model
}

// KernelData holds data of kernels computing residual contributions
type KernelData struct {
	Name string    `json:"name" yaml:"name"` // name of kernel
	Type string    `json:"type" yaml:"type"` // type of kernel; e.g. "source-deprecated"
	Vars Couplings `json:"vars" yaml:"vars"` // coupled variables; e.g. {"source": "u"}
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData      `json:"materials" yaml:"materials"` // all materials
	Kernels   []*KernelData `json:"kernels" yaml:"kernels"`     // all kernels

	// derived
	Densities map[string]*Material // subset with materials/models: densities
}

// ReadMat reads all materials data from a .mat JSON file or a .yaml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fn, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}

	// initialise
	err = mdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init allocates and initialises all models
func (o *MatDb) Init() (err error) {

	// subsets
	o.Densities = make(map[string]*Material)
	for _, m := range o.Materials {
		switch m.Type {
		case "density":
			if _, ok := o.Densities[m.Name]; ok {
				return chk.Err("material %q is defined more than once", m.Name)
			}
			o.Densities[m.Name] = m
		default:
			return chk.Err("material type %q is incorrect; options are \"density\"", m.Type)
		}
	}

	// alloc/init: densities
	for _, m := range o.Materials {
		err = m.initDensity()
		if err != nil {
			return chk.Err("material %q:\n%v", m.Name, err)
		}
	}

	// kernels
	for _, k := range o.Kernels {
		if k.Name == "" || k.Type == "" {
			return chk.Err("kernel name and type must be given. %+v is invalid", *k)
		}
	}
	return
}

// initDensity allocates and initialises the density model
func (o *Material) initDensity() (err error) {
	coord, err := density.ParseCoordSys(o.Coord)
	if err != nil {
		return
	}
	cpl, err := o.Vars.Coupling(coord)
	if err != nil {
		return
	}
	o.Density, err = density.New(o.Model)
	if err != nil {
		return
	}
	err = o.Density.Init(o.Prms, cpl)
	if err != nil {
		return
	}
	if u, ok := o.Density.(*density.Updater); ok {
		u.BaseName = o.BaseName
	}
	for _, key := range strings.Fields(o.Extra) {
		switch key {
		case "fallback":
			u, ok := o.Density.(*density.Updater)
			if !ok {
				return chk.Err("%q is only available with the \"density\" model", key)
			}
			u.OnSingular = density.SingularFallback
		default:
			return chk.Err("extra keyword %q is incorrect; options are \"fallback\"", key)
		}
	}
	return
}

// PropKey returns the key of the density property of this material
func (o *Material) PropKey() string {
	return density.PropKey(o.BaseName)
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetKernel returns kernel data
//  Note: returns nil if not found
func (o MatDb) GetKernel(name string) *KernelData {
	for _, k := range o.Kernels {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"     : %q,\n      \"type\"     : %q,\n      \"model\"    : %q,\n      \"extra\"    : %q,\n      \"basename\" : %q,\n      \"coord\"    : %q,\n", o.Name, o.Type, o.Model, o.Extra, o.BaseName, o.Coord)
	l += io.Sf("      \"vars\"     : %v,\n      \"prms\"     : [", o.Vars)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

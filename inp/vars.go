// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"
	"strings"
	"sync"

	"github.com/cpmech/gomat/mdl/density"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Couplings maps names of coupled quantities to names of variables
//  Example: {"displacements": "ux uy", "source": "u"}
//  Note: multiple variables are separated by spaces
type Couplings map[string]string

// deprecation holds a deprecated name of a coupled quantity
type deprecation struct {
	oldName string    // deprecated name
	newName string    // current name
	msg     string    // why or when it will be removed
	once    sync.Once // the notice is printed only once
}

// deprecations maps owners (e.g. kernel types) to deprecated names
var deprecations = make(map[string][]*deprecation)

// deprecationsMutex guards deprecations
var deprecationsMutex sync.Mutex

// Deprecate registers oldName as a deprecated alias of newName for the given owner.
// Variables given with oldName are redirected to newName and a notice is printed once.
//  Note: only the first registration of oldName is kept
func Deprecate(owner, oldName, newName, msg string) {
	deprecationsMutex.Lock()
	defer deprecationsMutex.Unlock()
	for _, d := range deprecations[owner] {
		if d.oldName == oldName {
			return
		}
	}
	deprecations[owner] = append(deprecations[owner], &deprecation{oldName: oldName, newName: newName, msg: msg})
}

// Vars returns the variables coupled to name. Deprecated aliases registered for owner are resolved.
//  Note: returns nil if name is not coupled
func (o Couplings) Vars(owner, name string) (vars []string, err error) {
	val, found := o[name]
	deprecationsMutex.Lock()
	list := deprecations[owner]
	deprecationsMutex.Unlock()
	for _, d := range list {
		if d.newName != name {
			continue
		}
		old, ok := o[d.oldName]
		if !ok {
			continue
		}
		if found {
			return nil, chk.Err("%s: %q and its deprecated alias %q cannot be given together", owner, name, d.oldName)
		}
		d.once.Do(func() {
			io.PfYel("%s: %q is deprecated; use %q instead (%s)\n", owner, d.oldName, d.newName, d.msg)
		})
		val, found = old, true
	}
	if !found {
		return
	}
	vars = strings.Fields(val)
	if len(vars) == 0 {
		return nil, chk.Err("%s: variable coupled to %q is empty", owner, name)
	}
	return
}

// Var returns the single variable coupled to name.
//  Note: returns "" if name is not coupled
func (o Couplings) Var(owner, name string) (v string, err error) {
	vars, err := o.Vars(owner, name)
	if err != nil || vars == nil {
		return
	}
	if len(vars) != 1 {
		return "", chk.Err("%s: %q must be coupled to exactly one variable. %v is invalid", owner, name, vars)
	}
	return vars[0], nil
}

// Coupling returns the displacement coupling of density models
//  Input:
//   coord -- coordinate system of the geometry; only used by "displacements"
func (o Couplings) Coupling(coord density.CoordSys) (cpl *density.Coupling, err error) {
	const owner = "density"
	for key := range o {
		switch key {
		case "displacements", "disp_r", "disp_x", "disp_y", "disp_z":
		default:
			return nil, chk.Err("%s: coupled quantity %q is incorrect; options are \"displacements\", \"disp_r\", \"disp_x\", \"disp_y\", \"disp_z\"", owner, key)
		}
	}
	cpl = &density.Coupling{Coord: coord}
	if cpl.Displacements, err = o.Vars(owner, "displacements"); err != nil {
		return nil, err
	}
	if cpl.DispR, err = o.Var(owner, "disp_r"); err != nil {
		return nil, err
	}
	if cpl.DispX, err = o.Var(owner, "disp_x"); err != nil {
		return nil, err
	}
	if cpl.DispY, err = o.Var(owner, "disp_y"); err != nil {
		return nil, err
	}
	if cpl.DispZ, err = o.Var(owner, "disp_z"); err != nil {
		return nil, err
	}
	return
}

// String prints coupled variables in alphabetical order
func (o Couplings) String() string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	l := "{"
	for i, key := range keys {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%q:%q", key, o[key])
	}
	return l + "}"
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// IpsMap defines a map to hold properties @ integration points; e.g. "density" => [nip]values
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Alloc declares property 'key' with nip values. Existing values are kept if the size matches.
//  Note: call Alloc before writing from multiple goroutines; Set is then safe for distinct 'idx'
func (o *IpsMap) Alloc(key string, nip int) []float64 {
	if slice, ok := (*o)[key]; ok && len(slice) == nip {
		return slice
	}
	slice := make([]float64, nip)
	(*o)[key] = slice
	return slice
}

// Set sets item in map by key and ip-index. The slice is resized with nip in case it's empty
//  Input:
//   idx -- index of integration point
//   nip -- number of integration points (to resize if necessary)
//   val -- value of 'key' @ integration point 'idx'
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	if slice, ok := (*o)[key]; ok {
		slice[idx] = val
		return
	}
	o.Alloc(key, nip)[idx] = val
}

// Get returns item corresponding to 'key' and integration point 'idx'
//  Note: this function returns 0 if 'key' is not found. It also does not check for out-of-bound errors
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}

// Has tells whether property 'key' has been declared
func (o *IpsMap) Has(key string) bool {
	_, ok := (*o)[key]
	return ok
}

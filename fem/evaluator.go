// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the loop over integration points computing material properties
package fem

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cpmech/gomat/ele"
	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Evaluator computes the density property of one material at all integration points
type Evaluator struct {

	// input
	Mat      *inp.Material // material
	Nworkers int           // number of goroutines; points are split in contiguous chunks

	// results
	Key   string      // property key; e.g. "density" or "phase1_density"
	Props *ele.IpsMap // properties @ integration points
}

// NewEvaluator returns a new evaluator
//  Input:
//   mat      -- initialised material
//   nworkers -- number of goroutines; ≤ 0 means runtime.NumCPU()
func NewEvaluator(mat *inp.Material, nworkers int) (o *Evaluator, err error) {
	if mat == nil || mat.Density == nil {
		return nil, chk.Err("evaluator requires an initialised density material")
	}
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	o = &Evaluator{
		Mat:      mat,
		Nworkers: nworkers,
		Key:      mat.PropKey(),
		Props:    ele.NewIpsMap(),
	}
	return
}

// InitProps declares the property and sets the reference density at all points
func (o *Evaluator) InitProps(ips []*IntPoint) {
	vals := o.Props.Alloc(o.Key, len(ips))
	rho0 := o.Mat.Density.Rho0()
	for i := range vals {
		vals[i] = rho0
	}
}

// Evaluate recomputes the density at all points. The first error is returned.
//  Note: after an error, the remaining goroutines stop and the property holds new values for some
//        points and previous values for the others; call InitProps or Evaluate again before using it
func (o *Evaluator) Evaluate(ips []*IntPoint) (err error) {

	// property
	nip := len(ips)
	vals := o.Props.Alloc(o.Key, nip)
	if nip == 0 {
		return
	}

	// chunks
	nw := o.Nworkers
	if nw > nip {
		nw = nip
	}
	if nw < 1 {
		nw = 1
	}
	size := (nip + nw - 1) / nw

	// run
	var wg sync.WaitGroup
	var once sync.Once
	var failed atomic.Bool
	for start := 0; start < nip; start += size {
		end := start + size
		if end > nip {
			end = nip
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if failed.Load() {
					return
				}
				rho, e := o.Mat.Density.Density(ips[i].X, ips[i])
				if e != nil {
					failed.Store(true)
					once.Do(func() {
						err = chk.Err("%s: integration point %d:\n%v", o.Mat.Name, i, e)
					})
					return
				}
				vals[i] = rho
			}
		}(start, end)
	}
	wg.Wait()
	return
}

// Table returns a table with coordinates and densities
func (o *Evaluator) Table(ips []*IntPoint) (l string) {
	l = io.Sf("%6s%14s%14s%14s%16s\n", "ip", "x", "y", "z", o.Key)
	for i, ip := range ips {
		var x [3]float64
		copy(x[:], ip.X)
		l += io.Sf("%6d%14.6g%14.6g%14.6g%16.8g\n", i, x[0], x[1], x[2], o.Props.Get(o.Key, i))
	}
	return
}

// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpot

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/RolfStierle/feos/dft"
)

// HardWall implements an impenetrable wall: the potential is infinite within
// half a solid-fluid diameter of the wall and zero beyond
type HardWall struct {
	SigSS float64 // solid-solid interaction diameter
}

// add model to factory
func init() {
	allocators["hardwall"] = func() Model { return new(HardWall) }
}

// Init initialises this structure
func (o *HardWall) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "sigss":
			o.SigSS = p.V
		default:
			return chk.Err("hardwall: parameter named %q is incorrect", p.N)
		}
	}
	if o.SigSS <= 0 {
		return chk.Err("hardwall: parameter sigss must be positive (%g is invalid)", o.SigSS)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o HardWall) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "sigss", V: 1.0}}
	}
	return dbf.Params{&dbf.P{N: "sigss", V: o.SigSS}}
}

func (o HardWall) wall(d, sigff float64) float64 {
	if d < 0.5*(o.SigSS+sigff) {
		return math.Inf(1)
	}
	return 0
}

// Cartesian evaluates the single-wall potential at the given distances
func (o HardWall) Cartesian(dist []float64, f dft.FluidParams, T float64) [][]float64 {
	sig := f.SigmaFF()
	res := make([][]float64, len(sig))
	for i := range sig {
		res[i] = make([]float64, len(dist))
		for j, d := range dist {
			res[i][j] = o.wall(d, sig[i])
		}
	}
	return res
}

// Cylindrical evaluates the pore potential at radial coordinates r
func (o HardWall) Cylindrical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64 {
	return o.radial(r, R, f)
}

// Spherical evaluates the cavity potential at radial coordinates r
func (o HardWall) Spherical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64 {
	return o.radial(r, R, f)
}

func (o HardWall) radial(r []float64, R float64, f dft.FluidParams) [][]float64 {
	sig := f.SigmaFF()
	res := make([][]float64, len(sig))
	for i := range sig {
		res[i] = make([]float64, len(r))
		for j, rj := range r {
			res[i][j] = o.wall(R-rj, sig[i])
		}
	}
	return res
}

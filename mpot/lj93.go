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

// LJ93 implements the Lennard-Jones 9-3 wall potential obtained by
// integrating the 12-6 potential over a structureless half-space of solid
// density ρs:
//   V(d) = (2π/3)・ρs・ε_sf・σ_sf³・[ (2/15)・(σ_sf/d)⁹ - (σ_sf/d)³ ]
// with Lorentz-Berthelot combining rules for the solid-fluid parameters:
//   σ_sf = (σ_ss + σ_ff)/2   and   ε_sf = √(ε_ss・ε_ff)
type LJ93 struct {
	RhoS  float64 // solid number density
	SigSS float64 // solid-solid interaction diameter
	EpsSS float64 // solid-solid interaction energy
}

// add model to factory
func init() {
	allocators["lj93"] = func() Model { return new(LJ93) }
}

// Init initialises this structure
func (o *LJ93) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "rhos":
			o.RhoS = p.V
		case "sigss":
			o.SigSS = p.V
		case "epsss":
			o.EpsSS = p.V
		default:
			return chk.Err("lj93: parameter named %q is incorrect", p.N)
		}
	}
	if o.RhoS <= 0 || o.SigSS <= 0 || o.EpsSS <= 0 {
		return chk.Err("lj93: parameters must be positive: {rhos=%g, sigss=%g, epsss=%g}", o.RhoS, o.SigSS, o.EpsSS)
	}
	return nil
}

// GetPrms gets (an example of) parameters. The example corresponds to the
// basal plane of graphite probed by a Lennard-Jones fluid.
func (o LJ93) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhos", V: 1.0},
			&dbf.P{N: "sigss", V: 1.0},
			&dbf.P{N: "epsss", V: 10.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhos", V: o.RhoS},
		&dbf.P{N: "sigss", V: o.SigSS},
		&dbf.P{N: "epsss", V: o.EpsSS},
	}
}

// wall evaluates the 9-3 potential of segment i at normal distance d
func (o LJ93) wall(d, sigff, epsff float64) float64 {
	if d <= 0 {
		return math.Inf(1)
	}
	sigsf := 0.5 * (o.SigSS + sigff)
	epssf := math.Sqrt(o.EpsSS * epsff)
	x := sigsf / d
	x3 := x * x * x
	x9 := x3 * x3 * x3
	return 2.0 * math.Pi / 3.0 * o.RhoS * epssf * sigsf * sigsf * sigsf * (2.0/15.0*x9 - x3)
}

// Cartesian evaluates the single-wall potential at the given distances
func (o LJ93) Cartesian(dist []float64, f dft.FluidParams, T float64) [][]float64 {
	sig, eps := f.SigmaFF(), f.EpsilonKFF()
	res := make([][]float64, len(sig))
	for i := range sig {
		res[i] = make([]float64, len(dist))
		for j, d := range dist {
			res[i][j] = o.wall(d, sig[i], eps[i])
		}
	}
	return res
}

// Cylindrical evaluates the pore potential at radial coordinates r. The wall
// curvature is neglected; the potential is evaluated at the normal distance
// R-r to the wall.
func (o LJ93) Cylindrical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64 {
	return o.radial(r, R, f)
}

// Spherical evaluates the cavity potential at radial coordinates r, using the
// normal distance R-r to the wall
func (o LJ93) Spherical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64 {
	return o.radial(r, R, f)
}

func (o LJ93) radial(r []float64, R float64, f dft.FluidParams) [][]float64 {
	sig, eps := f.SigmaFF(), f.EpsilonKFF()
	res := make([][]float64, len(sig))
	for i := range sig {
		res[i] = make([]float64, len(r))
		for j, rj := range r {
			res[i][j] = o.wall(R-rj, sig[i], eps[i])
		}
	}
	return res
}

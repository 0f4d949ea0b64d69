// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. samples reproduce exactly")

	// coarse tanh-like order parameter on [0, 10]
	zc := utl.LinSpace(0, 10, 11)
	red := make([][]float64, 1)
	red[0] = make([]float64, len(zc))
	for j, z := range zc {
		red[0][j] = -0.5 * math.Tanh(z-5.0)
	}
	liq := []float64{0.5}
	vap := []float64{-0.5}

	// querying the sample coordinates returns the sample values
	res := interp(zc, red, zc, liq, vap, false)
	chk.Array(tst, "forward samples", 1e-15, res[0], red[0])

	// reversed interpolation mirrors the samples onto [-10, 0]
	xs := make([]float64, len(zc))
	correct := make([]float64, len(zc))
	n := len(zc)
	for k := 0; k < n; k++ {
		xs[k] = -zc[n-1-k]
		correct[k] = red[0][n-1-k]
	}
	res = interp(zc, red, xs, vap, liq, true)
	chk.Array(tst, "reversed samples", 1e-15, res[0], correct)

	// between samples the interpolation is linear
	res = interp(zc, red, []float64{4.5}, liq, vap, false)
	chk.Float64(tst, "midpoint", 1e-15, res[0][0], 0.5*(red[0][4]+red[0][5]))
}

func Test_interp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp02. tail extrapolation")

	// geometrically decaying samples towards the asymptote 2:
	// y = 2 + exp(-x)
	zc := utl.LinSpace(0, 4, 5)
	y := make([][]float64, 1)
	y[0] = make([]float64, len(zc))
	for j, z := range zc {
		y[0][j] = 2.0 + math.Exp(-z)
	}

	// beyond the right end the decay rate of the outermost pair continues,
	// which reproduces the exponential exactly
	res := interp(zc, y, []float64{5.0, 7.0}, []float64{3.0}, []float64{2.0}, false)
	chk.Float64(tst, "tail(5)", 1e-14, res[0][0], 2.0+math.Exp(-5.0))
	chk.Float64(tst, "tail(7)", 1e-14, res[0][1], 2.0+math.Exp(-7.0))

	// degenerate tails continue flat
	chk.Float64(tst, "flat tail", 1e-17, tail(9.0, 4.0, 3.0, 2.5, 2.5, 2.0), 2.5)
	chk.Float64(tst, "zero offset", 1e-17, tail(9.0, 4.0, 3.0, 2.0, 2.7, 2.0), 2.0)
}

func Test_interp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp03. symmetric mapping of a flat coarse profile")

	// a coarse solution stuck at the vapor density must seed the plain vapor
	vle := buildVle(tst, 1.0, []float64{0.01}, []float64{0.7})
	zc := utl.LinSpace(0, 10, 20)
	rhoc := make([][]float64, 1)
	rhoc[0] = make([]float64, len(zc))
	for j := range zc {
		rhoc[0][j] = 0.01
	}

	z := utl.LinSpace(0.5, 99.5, 100)
	res, err := interpSymmetric(vle, zc, rhoc, vle, z, 50.0)
	if err != nil {
		tst.Errorf("interpSymmetric failed:\n%v", err)
		return
	}
	for j := range z {
		chk.Float64(tst, io.Sf("rho(%d)", j), 1e-15, res[0][j], 0.01)
	}
}

func Test_interp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp04. symmetric mapping of an interface")

	vle := buildVle(tst, 1.0, []float64{0.01}, []float64{0.7})

	// coarse one-sided interface on [0, 20]: liquid first, vapor last
	zc := utl.LinSpace(0, 20, 20)
	rhoc := make([][]float64, 1)
	rhoc[0] = make([]float64, len(zc))
	for j, z := range zc {
		rhoc[0][j] = 0.01 + (0.7-0.01)*0.5*(1.0-math.Tanh(z-10.0))
	}

	z := utl.LinSpace(0.25, 119.75, 240)
	res, err := interpSymmetric(vle, zc, rhoc, vle, z, 60.0)
	if err != nil {
		tst.Errorf("interpSymmetric failed:\n%v", err)
		return
	}

	// liquid at the left boundary, vapor at the right, bounds respected
	chk.Float64(tst, "rho(left)", 1e-6, res[0][0], 0.7)
	chk.Float64(tst, "rho(right)", 1e-6, res[0][len(z)-1], 0.01)
	for j := range z {
		if res[0][j] < 0.01-1e-12 || res[0][j] > 0.7+1e-12 {
			tst.Errorf("density at point %d leaves the equilibrium bounds: %g", j, res[0][j])
			return
		}
	}

	// degenerate coarse equilibrium
	flatVle := buildVle(tst, 1.0, []float64{0.01, 0.3}, []float64{0.01, 0.5})
	rhoc2 := [][]float64{rhoc[0], rhoc[0]}
	if _, err = interpSymmetric(flatVle, zc, rhoc2, flatVle, z, 60.0); err == nil {
		tst.Errorf("error expected for a degenerate coarse equilibrium")
	}
}

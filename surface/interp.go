// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
)

// interpSymmetric maps a coarse, one-sided density solution (liquid at the
// first sample, vapor at the last) onto a fine, two-sided domain. Densities
// are reduced to an order parameter in [-0.5, 0.5] using the coarse
// equilibrium's densities as bounds. Two interpolations are summed: one using
// the coordinate directly, one using the coordinate reflected and the coarse
// data reversed, combining the two exponentially-decaying tails. The combined
// order parameter is shifted by +1 if the offset radius is negative, clamped
// to [0, 1], and rescaled with the target equilibrium's densities, so a seed
// can be built at a condition different from the coarse solution's.
func interpSymmetric(vleCoarse *dft.PhaseEquilibrium, zc []float64, rhoc [][]float64, vle *dft.PhaseEquilibrium, z []float64, radius float64) ([][]float64, error) {
	nseg := len(rhoc)

	// reduce to order parameter
	red := utl.Alloc(nseg, len(zc))
	for i := 0; i < nseg; i++ {
		rhoV := vleCoarse.Vapor().Rho[i]
		dr := vleCoarse.Liquid().Rho[i] - rhoV
		if dr == 0 {
			return nil, dft.Errf(dft.Precondition, "symmetric interpolation: coarse equilibrium densities of component %d coincide (%g)", i, rhoV)
		}
		for j, r := range rhoc[i] {
			red[i][j] = (r-rhoV)/dr - 0.5
		}
	}

	// shifted coordinates for the two halves
	xl := make([]float64, len(z))
	xr := make([]float64, len(z))
	for j, zj := range z {
		xl[j] = zj - radius
		xr[j] = zj + radius
	}
	liq := vecFull(nseg, 0.5)
	vap := vecFull(nseg, -0.5)
	left := interp(zc, red, xl, liq, vap, false)
	right := interp(zc, red, xr, vap, liq, true)

	// combine tails and rescale to the target condition
	res := utl.Alloc(nseg, len(z))
	for i := 0; i < nseg; i++ {
		rhoV := vle.Vapor().Rho[i]
		dr := vle.Liquid().Rho[i] - rhoV
		if dr == 0 {
			return nil, dft.Errf(dft.Precondition, "symmetric interpolation: target equilibrium densities of component %d coincide (%g)", i, rhoV)
		}
		for j := range z {
			v := left[i][j] + right[i][j]
			if radius < 0 {
				v += 1.0
			}
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			res[i][j] = v*dr + rhoV
		}
	}
	return res, nil
}

// interp interpolates coarse samples (xOld, yOld) onto the coordinates xNew
// (increasing). Between samples the interpolation is linear; at a sample's
// own coordinate the sample value is returned exactly. Beyond the outermost
// samples the tail extrapolates towards the given asymptote. With reverse,
// the coordinates are negated and the sample order is flipped.
func interp(xOld []float64, yOld [][]float64, xNew []float64, yLeft, yRight []float64, reverse bool) [][]float64 {
	n := len(xOld)
	xs := make([]float64, n)
	ys := yOld
	if reverse {
		ys = utl.Alloc(len(yOld), n)
		for k := 0; k < n; k++ {
			xs[k] = -xOld[n-1-k]
			for i := range yOld {
				ys[i][k] = yOld[i][n-1-k]
			}
		}
	} else {
		copy(xs, xOld)
	}

	res := utl.Alloc(len(yOld), len(xNew))
	k := 0
	for j, x := range xNew {
		for k < n && x > xs[k] {
			k++
		}
		for i := range yOld {
			switch {
			case k == 0:
				res[i][j] = tail(x, xs[0], xs[1], ys[i][0], ys[i][1], yLeft[i])
			case k == n:
				res[i][j] = tail(x, xs[n-1], xs[n-2], ys[i][n-1], ys[i][n-2], yRight[i])
			default:
				res[i][j] = ys[i][k-1] + (x-xs[k-1])/(xs[k]-xs[k-1])*(ys[i][k]-ys[i][k-1])
			}
		}
	}
	return res
}

// tail extrapolates beyond the outermost sample y0 (next sample inwards y1)
// with a geometric decay towards the asymptote: the ratio q between the
// consecutive sample offsets from the asymptote sets the decay rate. The
// extrapolation is continuous at the sample. Degenerate ratios (no decay, or
// an offset sign change) continue flat, so pathological coarse data cannot
// produce non-finite values.
func tail(x, x0, x1, y0, y1, asym float64) float64 {
	d0 := y0 - asym
	if d0 == 0 {
		return y0
	}
	q := (y1 - asym) / d0
	if q <= 1 {
		return y0
	}
	return asym + d0*math.Pow(q, (x-x0)/(x1-x0))
}

// vecFull returns a vector filled with the value v
func vecFull(n int, v float64) []float64 {
	res := make([]float64, n)
	utl.Fill(res, v)
	return res
}

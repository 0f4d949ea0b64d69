// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"math"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
	"github.com/RolfStierle/feos/mpot"
)

// externalPotential1D generates the per-segment external field across the
// axis. Cartesian pores superpose two independent wall contributions at the
// distances (halfwidth + z) and (halfwidth - z), which makes the field
// symmetric under sign flip of the coordinate; radial geometries evaluate a
// single confinement potential. All raw values are divided by the reduced
// temperature. Grid points beyond the effective confinement boundary are
// forced to the cutoff, and any remaining value exceeding the cutoff is
// clamped to it, so the resulting field is finite and bounded everywhere.
func externalPotential1D(poreSize, T float64, pot mpot.Model, fp dft.FluidParams, ax *grid.Axis, cutoff float64) [][]float64 {
	if cutoff == 0 {
		cutoff = MaxPotential
	}

	// effective confinement boundary
	eff := poreSize
	if ax.Geom == grid.Cartesian {
		eff = 0.5 * poreSize
	}

	var vext [][]float64
	switch ax.Geom {
	case grid.Cartesian:
		n := ax.N()
		dplus := make([]float64, n)
		dminus := make([]float64, n)
		for j, z := range ax.X {
			dplus[j] = eff + z
			dminus[j] = eff - z
		}
		vext = pot.Cartesian(dplus, fp, T)
		right := pot.Cartesian(dminus, fp, T)
		for i := range vext {
			for j := range vext[i] {
				vext[i][j] += right[i][j]
			}
		}
	case grid.Cylindrical:
		vext = pot.Cylindrical(ax.X, eff, fp, T)
	case grid.Spherical:
		vext = pot.Spherical(ax.X, eff, fp, T)
	}

	// scale and clamp
	for i := range vext {
		for j, z := range ax.X {
			v := vext[i][j] / T
			if math.Abs(z) > eff || math.IsNaN(v) || v > cutoff {
				v = cutoff
			}
			vext[i][j] = v
		}
	}
	return vext
}

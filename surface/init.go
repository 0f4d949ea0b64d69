// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/profile"
)

const (

	// RelativeWidth is the domain length in units of the pDGT interfacial width
	RelativeWidth = 6.0

	// MinWidth is the minimum domain length for pDGT-initialised interfaces
	MinWidth = 100.0

	// nGridPdgt is the coarse grid resolution of the pDGT model
	nGridPdgt = 20
)

// FromTanh builds a planar interface seeded with a hyperbolic-tangent
// interpolation between the liquid and vapor partial densities, centred at
// the domain midpoint. The steepness follows an empirical correlation in the
// reduced temperature T/Tc. After seeding, the solve specification is fixed
// to conserve the total moles of the seeded profile.
func FromTanh(vle *dft.PhaseEquilibrium, nGrid int, lGrid, critTemp float64) (o *PlanarInterface, err error) {
	if critTemp <= 0 {
		return nil, dft.Errf(dft.Precondition, "tanh initialisation: critical temperature must be positive (%g is invalid)", critTemp)
	}
	o, err = New(vle, nGrid, lGrid)
	if err != nil {
		return nil, err
	}

	comp := vle.Vapor().Eos.ComponentIndex()
	z0 := 0.5 * lGrid
	redT := vle.Vapor().T / critTemp
	steep := (2.4728 - 2.3625*redT) / 3.0
	z := o.Profile.Grid.Z()
	for i := range o.Profile.Density {
		rhoV := vle.Vapor().Rho[comp[i]]
		rhoL := vle.Liquid().Rho[comp[i]]
		for j, zj := range z {
			o.Profile.Density[i][j] = 0.5*(rhoL-rhoV)*math.Tanh(-steep*(zj-z0)) + 0.5*(rhoL+rhoV)
		}
	}

	o.Profile.Spec, err = profile.TotalMolesFromProfile(o.Profile)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// FromPdgt builds a planar interface seeded from the predictive density
// gradient theory: the functional solves the reduced-order model on a coarse
// grid, the domain length is chosen from the estimated interfacial width, and
// the coarse profile is interpolated symmetrically onto the fine grid. The
// functional must treat a single component with a single segment.
func FromPdgt(vle *dft.PhaseEquilibrium, nGrid int) (o *PlanarInterface, err error) {
	eos := vle.Vapor().Eos
	if len(eos.ComponentIndex()) != 1 {
		return nil, dft.Errf(dft.Precondition, "pdgt initialisation: not possible for segment DFT or mixtures (%d segments)", len(eos.ComponentIndex()))
	}
	ps, ok := eos.(dft.PdgtSolver)
	if !ok {
		return nil, dft.Errf(dft.Precondition, "pdgt initialisation: functional does not solve the pDGT model")
	}

	zc, rhoc, width, tension, err := ps.SolvePdgt(vle, nGridPdgt)
	if err != nil {
		return nil, dft.Wrapf(dft.SolverFailure, err, "pdgt initialisation: coarse solve failed")
	}
	if !isNormal(tension) {
		return nil, dft.Errf(dft.NumericalInvalid, "pdgt initialisation: surface tension evaluates to %g", tension)
	}

	lGrid := math.Max(MinWidth, RelativeWidth*width)
	o, err = New(vle, nGrid, lGrid)
	if err != nil {
		return nil, err
	}

	o.Profile.Density, err = interpSymmetric(vle, zc, rhoc, vle, o.Profile.Grid.Z(), 0.5*lGrid)
	if err != nil {
		return nil, err
	}

	o.Profile.Spec, err = profile.TotalMolesFromProfile(o.Profile)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// isNormal reports whether v is a finite, normal, non-zero number
func isNormal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) >= 2.2250738585072014e-308
}

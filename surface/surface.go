// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surface implements density profiles at planar vapor-liquid
// interfaces, their initialisation strategies and interfacial properties
package surface

import (
	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
	"github.com/RolfStierle/feos/profile"
)

// PlanarInterface holds the density profile across a planar vapor-liquid
// interface together with the scalars derived from a solved profile. The
// convention is liquid at the left domain boundary and vapor at the right.
// SurfaceTension and EquimolarRadius are nil until SolveInplace succeeds and
// are then set exactly once, together.
type PlanarInterface struct {
	Profile         *profile.Profile
	Vle             *dft.PhaseEquilibrium
	SurfaceTension  *float64
	EquimolarRadius *float64
}

// New builds an unseeded planar interface on a Cartesian grid of the given
// length. There is no external potential; the convolution plan is derived
// from the vapor-phase weight functions and needs no gradient term.
func New(vle *dft.PhaseEquilibrium, nGrid int, lGrid float64) (o *PlanarInterface, err error) {
	ax, err := grid.NewCartesian(nGrid, lGrid, 0)
	if err != nil {
		return nil, err
	}
	g := grid.New1D(ax)
	vap := vle.Vapor()
	conv, err := profile.PlanConvolver(g, vap.Eos.WeightFunctions(vap.T), 0)
	if err != nil {
		return nil, err
	}
	prof, err := profile.New(g, conv, vap, nil, nil)
	if err != nil {
		return nil, err
	}
	return &PlanarInterface{Profile: prof, Vle: vle.Clone()}, nil
}

// SolveInplace delegates to the nonlinear solver and derives the surface
// tension and the equimolar radius. A nil solver selects the default.
// Non-finite results of the postprocessing arithmetic are stored as-is; a
// numerically degenerate solve is not intercepted here.
func (o *PlanarInterface) SolveInplace(solver profile.Solver, debug bool) error {
	if err := o.Profile.Solve(solver, debug); err != nil {
		return err
	}

	// surface tension γ = ∫ (ω(z) + p_vap) dz
	omega, err := o.Profile.GrandPotentialDensity()
	if err != nil {
		return err
	}
	pv := o.Vle.Vapor().Pressure(dft.Total)
	f := make([]float64, len(omega))
	for z, w := range omega {
		f[z] = w + pv
	}
	gamma := o.Profile.Integrate(f)

	// equimolar radius: first moment of the reduced excess density
	rhoV := o.Vle.Vapor().Density()
	dRho := o.Vle.Liquid().Density() - rhoV
	tot := o.Profile.TotalDensity()
	for z, r := range tot {
		f[z] = r - rhoV
	}
	re := o.Profile.Integrate(f) / dRho

	o.SurfaceTension = &gamma
	o.EquimolarRadius = &re
	return nil
}

// Solve is the consuming wrapper around SolveInplace
func (o *PlanarInterface) Solve(solver profile.Solver) (*PlanarInterface, error) {
	if err := o.SolveInplace(solver, false); err != nil {
		return nil, err
	}
	return o, nil
}

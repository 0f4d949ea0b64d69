// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pore implements density profiles and derived properties of fluids
// confined in slit, cylindrical and spherical pores
package pore

import (
	"github.com/cpmech/gosl/chk"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
	"github.com/RolfStierle/feos/mpot"
	"github.com/RolfStierle/feos/profile"
)

const (

	// PotentialOffset is the margin beyond the confinement boundary, in units
	// of the largest fluid interaction diameter. The margin ensures the
	// external potential decays below the cutoff before the domain edge.
	PotentialOffset = 2.0

	// DefaultGridPoints is the grid resolution used when none is specified
	DefaultGridPoints = 2048

	// MaxPotential is the default external potential cutoff (in units of kT)
	MaxPotential = 50.0
)

// Pore1D specifies a one-dimensional pore. The specification is immutable;
// Initialize produces the mutable PoreProfile.
type Pore1D struct {
	Geom   grid.Kind  // pore geometry
	Size   float64    // pore width (Cartesian) or radius (Cylindrical, Spherical)
	Pot    mpot.Model // wall potential model
	NGrid  int        // grid resolution; 0 selects DefaultGridPoints
	Cutoff float64    // external potential cutoff; 0 selects MaxPotential
}

// Dimension returns the number of spatial dimensions of the pore
func (o *Pore1D) Dimension() int { return o.Geom.Dimension() }

// Initialize builds the grid, the external potential and the convolution plan
// and assembles an unsolved profile.
//  Input:
//   bulk    -- bulk reference state; its functional must provide fluid
//              parameters (dft.FluidParams)
//   density -- seed density with shape (nseg, ngrid); may be nil
//   vext    -- precomputed external potential with shape (nseg, ngrid); may be
//              nil, in which case the potential is generated from the wall
//              model
func (o *Pore1D) Initialize(bulk *dft.State, density, vext [][]float64) (pp *PoreProfile, err error) {
	if o.Size <= 0 {
		return nil, dft.Errf(dft.Construction, "pore initialisation: pore size must be positive (%g is invalid)", o.Size)
	}
	fp, ok := bulk.Eos.(dft.FluidParams)
	if !ok {
		return nil, dft.Errf(dft.Precondition, "pore initialisation: functional does not provide fluid parameters")
	}
	n := o.NGrid
	if n == 0 {
		n = DefaultGridPoints
	}

	// axis per geometry
	var ax *grid.Axis
	switch o.Geom {
	case grid.Cartesian:
		offset := PotentialOffset * vecMax(fp.SigmaFF())
		ax, err = grid.NewCartesian(n, 0.5*o.Size, offset)
	case grid.Cylindrical:
		ax, err = grid.NewPolar(n, o.Size)
	case grid.Spherical:
		ax, err = grid.NewSpherical(n, o.Size)
	default:
		chk.Panic("unknown geometry kind %d", o.Geom)
	}
	if err != nil {
		return nil, err
	}

	// external potential
	if vext == nil {
		vext = externalPotential1D(o.Size, bulk.T, o.Pot, fp, ax, o.Cutoff)
	}

	// convolution plan; pores need the potential gradient term
	g := grid.New1D(ax)
	conv, err := profile.PlanConvolver(g, bulk.Eos.WeightFunctions(bulk.T), 1)
	if err != nil {
		return nil, err
	}

	prof, err := profile.New(g, conv, bulk, vext, density)
	if err != nil {
		return nil, err
	}
	return &PoreProfile{Profile: prof}, nil
}

// PoreProfile holds the density profile of a confined system together with
// the scalars derived from a solved profile. GrandPotential and
// InterfacialTension are nil until SolveInplace succeeds and are then set
// exactly once, together.
type PoreProfile struct {
	Profile            *profile.Profile
	GrandPotential     *float64
	InterfacialTension *float64
}

// SolveInplace delegates to the nonlinear solver and derives the grand
// potential and the interfacial tension. A nil solver selects the default.
func (o *PoreProfile) SolveInplace(solver profile.Solver, debug bool) error {
	if err := o.Profile.Solve(solver, debug); err != nil {
		return err
	}
	omega, err := o.Profile.GrandPotential()
	if err != nil {
		return err
	}
	// excess grand potential against the bulk
	gamma := omega + o.Profile.Bulk.Pressure(dft.Total)*o.Profile.Volume()
	o.GrandPotential = &omega
	o.InterfacialTension = &gamma
	return nil
}

// Solve is the consuming wrapper around SolveInplace
func (o *PoreProfile) Solve(solver profile.Solver) (*PoreProfile, error) {
	if err := o.SolveInplace(solver, false); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateBulk replaces the bulk reference state and resets the derived scalars
func (o *PoreProfile) UpdateBulk(bulk *dft.State) *PoreProfile {
	o.Profile.Bulk = bulk.Clone()
	o.GrandPotential = nil
	o.InterfacialTension = nil
	return o
}

// vecMax returns the largest entry of a vector
func vecMax(v []float64) (res float64) {
	res = v[0]
	for _, x := range v {
		if x > res {
			res = x
		}
	}
	return
}

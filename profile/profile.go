// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package profile implements the mutable density-profile object of the DFT
// engine and the nonlinear solvers acting on it
package profile

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
)

// Profile holds the mutable state of one DFT calculation: the per-segment
// density field over the grid, the grid itself, the convolution plan, a clone
// of the bulk reference state, the external potential field, and the side
// constraint consumed by the solver. Density and Vext share the shape
// (nseg, ngrid).
type Profile struct {
	Grid    *grid.Grid     // spatial discretisation
	Conv    dft.Convolver  // convolution plan bound to the grid
	Bulk    *dft.State     // cloned bulk reference state
	Vext    [][]float64    // external potential field, already scaled by 1/T
	Density [][]float64    // density field (mutated in place by solvers)
	Spec    *Specification // side constraint for the solver
}

// New assembles a profile.
//  Input:
//   g       -- grid
//   conv    -- convolution plan bound to g
//   bulk    -- bulk reference state (cloned, not borrowed)
//   vext    -- external potential with shape (nseg, ngrid); may be nil
//   density -- seed density with shape (nseg, ngrid); may be nil, in which
//              case the density is seeded with the Boltzmann factor of the
//              external potential times the bulk partial densities
func New(g *grid.Grid, conv dft.Convolver, bulk *dft.State, vext, density [][]float64) (o *Profile, err error) {
	comp := bulk.Eos.ComponentIndex()
	nseg, n := len(comp), g.N()

	if vext == nil {
		vext = utl.Alloc(nseg, n)
	} else {
		if err = checkShape("profile construction", "external potential", vext, nseg, n); err != nil {
			return nil, err
		}
		vext = utl.Clone(vext)
	}

	if density == nil {
		density = utl.Alloc(nseg, n)
		maxRho := bulk.Eos.ComputeMaxDensity(bulk.Rho)
		for i := 0; i < nseg; i++ {
			for z := 0; z < n; z++ {
				// attractive wells can push the Boltzmann weight above one
				density[i][z] = bulk.Rho[comp[i]] * math.Exp(-vext[i][z])
				if density[i][z] > maxRho {
					density[i][z] = maxRho
				}
			}
		}
	} else {
		if err = checkShape("profile construction", "density seed", density, nseg, n); err != nil {
			return nil, err
		}
		density = utl.Clone(density)
	}

	return &Profile{
		Grid:    g,
		Conv:    conv,
		Bulk:    bulk.Clone(),
		Vext:    vext,
		Density: density,
		Spec:    ChemicalPotentialSpec(),
	}, nil
}

// checkShape validates an (nseg, n) field
func checkShape(op, name string, field [][]float64, nseg, n int) error {
	if len(field) != nseg {
		return dft.Errf(dft.ShapeMismatch, "%s: %s has %d rows but the functional has %d segments", op, name, len(field), nseg)
	}
	for i := range field {
		if len(field[i]) != n {
			return dft.Errf(dft.ShapeMismatch, "%s: %s row %d has %d points but the grid has %d", op, name, i, len(field[i]), n)
		}
	}
	return nil
}

// NSeg returns the number of segments
func (o *Profile) NSeg() int { return len(o.Density) }

// N returns the number of grid points
func (o *Profile) N() int { return o.Grid.N() }

// Volume returns the volume spanned by the grid
func (o *Profile) Volume() float64 { return o.Grid.Volume() }

// Integrate computes the quadrature ∫ f dV of a per-point field
func (o *Profile) Integrate(f []float64) float64 { return o.Grid.Integrate(f) }

// TotalDensity returns the density summed over segments at every grid point
func (o *Profile) TotalDensity() []float64 {
	res := make([]float64, o.N())
	for i := range o.Density {
		for z, r := range o.Density[i] {
			res[z] += r
		}
	}
	return res
}

// Moles integrates the density field into mole numbers per component
func (o *Profile) Moles() []float64 {
	comp := o.Bulk.Eos.ComponentIndex()
	res := make([]float64, ncomp(comp))
	for i := range o.Density {
		res[comp[i]] += o.Integrate(o.Density[i])
	}
	return res
}

// GrandPotentialDensity evaluates the grand-potential density ω(z)
func (o *Profile) GrandPotentialDensity() ([]float64, error) {
	return o.Bulk.Eos.GrandPotentialDensity(o.Bulk, o.Density, o.Conv)
}

// GrandPotential evaluates the grand potential Ω = ∫ ω dV
func (o *Profile) GrandPotential() (float64, error) {
	omega, err := o.GrandPotentialDensity()
	if err != nil {
		return 0, err
	}
	return o.Integrate(omega), nil
}

// Solve delegates to the given solver, mutating the density field in place.
// A nil solver selects the default Picard solver.
func (o *Profile) Solve(solver Solver, debug bool) (err error) {
	if solver == nil {
		solver, err = NewSolver("picard")
		if err != nil {
			return
		}
	}
	return solver.Solve(o, debug)
}

// Clone returns an independent copy of this profile. Grid and convolution
// plan are shared; both are immutable after construction.
func (o *Profile) Clone() *Profile {
	return &Profile{
		Grid:    o.Grid,
		Conv:    o.Conv,
		Bulk:    o.Bulk.Clone(),
		Vext:    utl.Clone(o.Vext),
		Density: utl.Clone(o.Density),
		Spec:    o.Spec.Clone(),
	}
}

// ncomp returns the number of components in a segment-to-component map
func ncomp(comp []int) (res int) {
	for _, c := range comp {
		if c+1 > res {
			res = c + 1
		}
	}
	return
}

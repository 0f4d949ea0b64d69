// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dft

import "math"

// State represents a homogeneous bulk state of a fluid: a functional, a
// reduced temperature and partial densities per component. States are
// immutable once built; profiles hold their own clone.
type State struct {
	Eos Functional // Helmholtz-energy functional acting as equation of state
	T   float64    // reduced temperature
	Rho []float64  // partial densities per component
}

// NewState returns a validated bulk state
func NewState(eos Functional, T float64, rho []float64) (*State, error) {
	if T <= 0 {
		return nil, Errf(Construction, "bulk state: temperature must be positive (%g is invalid)", T)
	}
	for i, r := range rho {
		if r < 0 || math.IsNaN(r) {
			return nil, Errf(Construction, "bulk state: partial density of component %d is invalid (%g)", i, r)
		}
	}
	return &State{Eos: eos, T: T, Rho: rho}, nil
}

// Density returns the total density
func (o *State) Density() (res float64) {
	for _, r := range o.Rho {
		res += r
	}
	return
}

// Pressure returns the bulk pressure under the given contribution selector
func (o *State) Pressure(c Contributions) float64 {
	return o.Eos.BulkPressure(o.T, o.Rho, c)
}

// ChemicalPotential returns the bulk chemical potentials per component
func (o *State) ChemicalPotential(c Contributions) []float64 {
	return o.Eos.ChemicalPotential(o.T, o.Rho, c)
}

// Clone returns an independent copy of this state
func (o *State) Clone() *State {
	rho := make([]float64, len(o.Rho))
	copy(rho, o.Rho)
	return &State{Eos: o.Eos, T: o.T, Rho: rho}
}

// PhaseEquilibrium represents a two-phase vapor-liquid equilibrium. Both
// phases must share the functional and the temperature and must differ in
// density, since their difference divides several interfacial formulas.
type PhaseEquilibrium struct {
	vap *State
	liq *State
}

// NewPhaseEquilibrium returns a validated vapor-liquid equilibrium
func NewPhaseEquilibrium(vapor, liquid *State) (*PhaseEquilibrium, error) {
	if vapor.Eos != liquid.Eos {
		return nil, Errf(Precondition, "phase equilibrium: vapor and liquid must share the functional")
	}
	if vapor.T != liquid.T {
		return nil, Errf(Precondition, "phase equilibrium: vapor (T=%g) and liquid (T=%g) must share the temperature", vapor.T, liquid.T)
	}
	if vapor.Density() == liquid.Density() {
		return nil, Errf(Precondition, "phase equilibrium: vapor and liquid densities coincide (%g); the equilibrium is degenerate", vapor.Density())
	}
	return &PhaseEquilibrium{vap: vapor.Clone(), liq: liquid.Clone()}, nil
}

// Vapor returns the vapor phase
func (o *PhaseEquilibrium) Vapor() *State { return o.vap }

// Liquid returns the liquid phase
func (o *PhaseEquilibrium) Liquid() *State { return o.liq }

// Clone returns an independent copy of this equilibrium
func (o *PhaseEquilibrium) Clone() *PhaseEquilibrium {
	return &PhaseEquilibrium{vap: o.vap.Clone(), liq: o.liq.Clone()}
}

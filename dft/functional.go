// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dft

// Contributions selects which parts of the Helmholtz energy enter a
// thermodynamic property
type Contributions int

const (

	// Total includes ideal-gas and residual contributions
	Total Contributions = iota

	// Residual includes only the residual (excess over ideal gas) contributions
	Residual
)

// Shape describes the topology of the molecules treated by a functional
type Shape int

const (

	// SphericalShape stands for spherical molecules (one segment per component)
	SphericalShape Shape = iota

	// ChainShape stands for homosegmented chain molecules
	ChainShape

	// HeterosegmentedShape stands for heterosegmented chain molecules
	HeterosegmentedShape
)

// WeightFunction describes one convolution kernel of a functional
// contribution. The convolution plan interprets the descriptor; the profile
// engine only passes it through.
type WeightFunction struct {
	Kernel string    // kernel family; e.g. "delta", "theta", "deltavec"
	Width  []float64 // kernel width per segment; e.g. σᵢ/2
}

// Functional is the narrow capability interface the profile engine requires
// from a Helmholtz-energy functional. Densities are per-segment number
// densities in reduced units; temperatures are reduced temperatures.
type Functional interface {

	// ComponentIndex maps segment index to component index
	ComponentIndex() []int

	// M returns the multiplicity (number of identical segments) per segment
	M() []float64

	// MoleculeShape returns the molecular topology
	MoleculeShape() Shape

	// WeightFunctions returns the convolution kernels at reduced temperature T
	WeightFunctions(T float64) []WeightFunction

	// ComputeMaxDensity returns the largest meaningful total density for the
	// given composition (mole numbers or mole fractions)
	ComputeMaxDensity(x []float64) float64

	// BulkPressure computes the bulk pressure from T and partial densities
	BulkPressure(T float64, rho []float64, c Contributions) float64

	// ChemicalPotential computes bulk chemical potentials per component
	ChemicalPotential(T float64, rho []float64, c Contributions) []float64

	// GrandPotentialDensity evaluates the grand-potential density ω(z) of an
	// inhomogeneous density field against the chemical potentials of bulk
	GrandPotentialDensity(bulk *State, rho [][]float64, conv Convolver) ([]float64, error)

	// FunctionalDerivative evaluates the reduced residual functional
	// derivative δβF_res/δρᵢ(z) of an inhomogeneous density field
	FunctionalDerivative(T float64, rho [][]float64, conv Convolver) ([][]float64, error)
}

// FluidParams provides the per-segment interaction parameters of a fluid;
// wall-potential models and the Cartesian offset margin depend on them
type FluidParams interface {

	// SigmaFF returns the fluid-fluid interaction diameters per segment
	SigmaFF() []float64

	// EpsilonKFF returns the fluid-fluid interaction energies per segment
	EpsilonKFF() []float64
}

// PdgtSolver is implemented by functionals that can solve the predictive
// density gradient theory (pDGT) reduced-order model
type PdgtSolver interface {

	// SolvePdgt computes a coarse one-sided density profile for the given
	// equilibrium.
	//  Output:
	//   z       -- coarse coordinates (n points)
	//   rho     -- coarse density profile (nseg, n)
	//   width   -- estimated interfacial width
	//   tension -- estimated surface tension
	SolvePdgt(vle *PhaseEquilibrium, n int) (z []float64, rho [][]float64, width, tension float64, err error)
}

// Convolver applies the weight functions of a convolution plan to a density
// field, producing weighted densities. The transform internals (FFT or
// real-space) are the collaborator's responsibility.
type Convolver interface {

	// Convolve computes the weighted densities of a (nseg, ngrid) field
	Convolve(field [][]float64) [][]float64
}

// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dft

import "math"

// IdealGas is the reference functional: spherical molecules, no residual
// contributions and delta-function weight kernels. It closes the Euler-
// Lagrange equation analytically (ρ = ρ_bulk・exp(-βVext)) and serves as the
// probe fluid and as a stub for exercising the profile engine without real
// physics.
type IdealGas struct {
	Sigma   []float64 // interaction diameters per component
	Epsilon []float64 // interaction energies per component
	MaxRho  float64   // maximum meaningful total density
}

// NewIdealGas returns an ideal-gas functional for ncomp components with unit
// interaction parameters and maximum density 1
func NewIdealGas(ncomp int) (o *IdealGas) {
	o = &IdealGas{
		Sigma:   make([]float64, ncomp),
		Epsilon: make([]float64, ncomp),
		MaxRho:  1.0,
	}
	for i := 0; i < ncomp; i++ {
		o.Sigma[i] = 1.0
		o.Epsilon[i] = 1.0
	}
	return
}

// ComponentIndex maps segment index to component index (identity here)
func (o *IdealGas) ComponentIndex() []int {
	res := make([]int, len(o.Sigma))
	for i := range res {
		res[i] = i
	}
	return res
}

// M returns the segment multiplicities (all one)
func (o *IdealGas) M() []float64 {
	res := make([]float64, len(o.Sigma))
	for i := range res {
		res[i] = 1.0
	}
	return res
}

// MoleculeShape returns the molecular topology
func (o *IdealGas) MoleculeShape() Shape { return SphericalShape }

// WeightFunctions returns delta kernels; the convolution is the identity
func (o *IdealGas) WeightFunctions(T float64) []WeightFunction {
	return []WeightFunction{{Kernel: "delta", Width: make([]float64, len(o.Sigma))}}
}

// ComputeMaxDensity returns the maximum meaningful total density
func (o *IdealGas) ComputeMaxDensity(x []float64) float64 { return o.MaxRho }

// HelmholtzEnergyDensity computes the bulk Helmholtz energy density
//   a(T,ρ) = T・Σᵢ ρᵢ・(ln(ρᵢ) - 1)
func (o *IdealGas) HelmholtzEnergyDensity(T float64, rho []float64) (res float64) {
	for _, r := range rho {
		if r > 0 {
			res += T * r * (math.Log(r) - 1.0)
		}
	}
	return
}

// BulkPressure computes the bulk pressure p = T・Σᵢ ρᵢ
func (o *IdealGas) BulkPressure(T float64, rho []float64, c Contributions) (res float64) {
	if c == Residual {
		return 0
	}
	for _, r := range rho {
		res += T * r
	}
	return
}

// ChemicalPotential computes μᵢ = T・ln(ρᵢ)
func (o *IdealGas) ChemicalPotential(T float64, rho []float64, c Contributions) []float64 {
	res := make([]float64, len(rho))
	if c == Residual {
		return res
	}
	for i, r := range rho {
		res[i] = T * math.Log(r)
	}
	return res
}

// GrandPotentialDensity evaluates ω(z) = a(z) - Σᵢ μᵢ・ρᵢ(z) with μ from bulk
func (o *IdealGas) GrandPotentialDensity(bulk *State, rho [][]float64, conv Convolver) ([]float64, error) {
	mu := bulk.ChemicalPotential(Total)
	n := len(rho[0])
	res := make([]float64, n)
	for z := 0; z < n; z++ {
		for i := range rho {
			r := rho[i][z]
			if r > 0 {
				res[z] += bulk.T*r*(math.Log(r)-1.0) - mu[i]*r
			}
		}
	}
	return res, nil
}

// FunctionalDerivative returns δβF_res/δρ = 0 for the ideal gas
func (o *IdealGas) FunctionalDerivative(T float64, rho [][]float64, conv Convolver) ([][]float64, error) {
	res := make([][]float64, len(rho))
	for i := range rho {
		res[i] = make([]float64, len(rho[i]))
	}
	return res, nil
}

// SigmaFF returns the fluid-fluid interaction diameters
func (o *IdealGas) SigmaFF() []float64 { return o.Sigma }

// EpsilonKFF returns the fluid-fluid interaction energies
func (o *IdealGas) EpsilonKFF() []float64 { return o.Epsilon }

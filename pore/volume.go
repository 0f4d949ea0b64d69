// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"math"

	"github.com/RolfStierle/feos/dft"
)

// ProbeFluid configures the inert reference fluid used by PoreVolume: a
// single spherical segment without residual free-energy contributions,
// evaluated at a fixed reference condition. The default corresponds to helium
// at 298 K, the convention of excluded-volume measurements.
type ProbeFluid struct {
	Epsilon     float64 // interaction energy of the probe segment
	Sigma       float64 // interaction diameter of the probe segment
	MaxDensity  float64 // maximum meaningful density of the probe
	Temperature float64 // reduced temperature of the reference condition
	Density     float64 // reference bulk density
}

// DefaultProbe returns the helium-like probe fluid
func DefaultProbe() ProbeFluid {
	return ProbeFluid{Epsilon: 10.9, Sigma: 2.64, MaxDensity: 1.0, Temperature: 298.0, Density: 1.0}
}

// PoreVolume estimates the accessible (excluded-volume) pore volume with the
// default probe fluid. The estimate is independent of the fluid the pore is
// later solved with.
func (o *Pore1D) PoreVolume() (float64, error) {
	return o.PoreVolumeProbe(DefaultProbe())
}

// PoreVolumeProbe computes the Boltzmann weight exp(-βVext) of the first
// probe segment and integrates it over the grid quadrature
func (o *Pore1D) PoreVolumeProbe(pf ProbeFluid) (float64, error) {
	eos := dft.NewIdealGas(1)
	eos.Sigma[0] = pf.Sigma
	eos.Epsilon[0] = pf.Epsilon
	eos.MaxRho = pf.MaxDensity

	bulk, err := dft.NewState(eos, pf.Temperature, []float64{pf.Density})
	if err != nil {
		return 0, err
	}
	pp, err := o.Initialize(bulk, nil, nil)
	if err != nil {
		return 0, err
	}

	w := make([]float64, pp.Profile.N())
	for z, v := range pp.Profile.Vext[0] {
		w[z] = math.Exp(-v)
	}
	return pp.Profile.Integrate(w), nil
}

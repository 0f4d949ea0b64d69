// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
)

// ShiftEquimolarInplace recomputes the equimolar dividing surface from the
// multiplicity-weighted total density and subtracts its position from all
// grid coordinates, re-centring the dividing surface at zero. The operation
// is idempotent: on an unperturbed, already-shifted profile the correction is
// zero up to quadrature round-off.
func (o *PlanarInterface) ShiftEquimolarInplace() error {
	m := o.Profile.Bulk.Eos.M()
	n := o.Profile.N()
	rho := make([]float64, n)
	for i := range o.Profile.Density {
		for z, r := range o.Profile.Density[i] {
			rho[z] += m[i] * r
		}
	}
	rhoL, rhoV := rho[0], rho[n-1]
	if rhoL == rhoV {
		return dft.Errf(dft.Precondition, "equimolar shift: boundary densities coincide (%g); the profile is degenerate", rhoL)
	}

	x := make([]float64, n)
	for z, r := range rho {
		x[z] = (r - rhoV) / (rhoL - rhoV)
	}
	ax := o.Profile.Grid.Axes[0]
	ze := ax.Edges[0] + o.Profile.Integrate(x)
	for z := range ax.X {
		ax.X[z] -= ze
	}
	for z := range ax.Edges {
		ax.Edges[z] -= ze
	}
	return nil
}

// ShiftEquimolar is the consuming wrapper around ShiftEquimolarInplace
func (o *PlanarInterface) ShiftEquimolar() (*PlanarInterface, error) {
	if err := o.ShiftEquimolarInplace(); err != nil {
		return nil, err
	}
	return o, nil
}

// RelativeAdsorption computes Γᵢ^(j), the excess of segment i per unit area
// relative to the dividing surface that zeroes the excess of segment j, for
// every ordered pair. Diagonal entries are zero. The boundary densities of
// every segment must differ.
func (o *PlanarInterface) RelativeAdsorption() ([][]float64, error) {
	nseg, n := o.Profile.NSeg(), o.Profile.N()
	rhoL := make([]float64, nseg)
	rhoV := make([]float64, nseg)
	for i := 0; i < nseg; i++ {
		rhoL[i] = o.Profile.Density[i][0]
		rhoV[i] = o.Profile.Density[i][n-1]
		if rhoL[i] == rhoV[i] {
			return nil, dft.Errf(dft.Precondition, "relative adsorption: boundary densities of segment %d coincide (%g)", i, rhoL[i])
		}
	}

	gamma := utl.Alloc(nseg, nseg)
	f := make([]float64, n)
	for i := 0; i < nseg; i++ {
		for j := 0; j < nseg; j++ {
			if i == j {
				continue
			}
			for z := 0; z < n; z++ {
				f[z] = (o.Profile.Density[j][z]-rhoL[j])/(rhoL[j]-rhoV[j]) -
					(o.Profile.Density[i][z]-rhoL[i])/(rhoL[i]-rhoV[i])
			}
			gamma[i][j] = -(rhoL[i] - rhoV[i]) * o.Profile.Integrate(f)
		}
	}
	return gamma, nil
}

// InterfacialEnrichment computes, per segment, the ratio of the largest local
// density anywhere on the grid to the larger of the two bulk densities
func (o *PlanarInterface) InterfacialEnrichment() ([]float64, error) {
	nseg, n := o.Profile.NSeg(), o.Profile.N()
	res := make([]float64, nseg)
	for i := 0; i < nseg; i++ {
		bulk := math.Max(o.Profile.Density[i][0], o.Profile.Density[i][n-1])
		if bulk <= 0 {
			return nil, dft.Errf(dft.Precondition, "interfacial enrichment: segment %d has no positive bulk density", i)
		}
		peak := o.Profile.Density[i][0]
		for _, r := range o.Profile.Density[i] {
			if r > peak {
				peak = r
			}
		}
		res[i] = peak / bulk
	}
	return res, nil
}

// InterfacialThickness returns the distance between the two coordinates where
// the total density crosses the thresholds ρ_v + l・(ρ_l - ρ_v) for the two
// fractions, located by linear interpolation between grid points. Both
// fractions must lie strictly in (0, 1); the result is symmetric under
// swapping them. A monotonic profile between the bulk regions is assumed.
func (o *PlanarInterface) InterfacialThickness(lower, upper float64) (float64, error) {
	if lower <= 0 || lower >= 1 {
		return 0, dft.Errf(dft.Precondition, "interfacial thickness: fraction %g must satisfy 0 < l < 1", lower)
	}
	if upper <= 0 || upper >= 1 {
		return 0, dft.Errf(dft.Precondition, "interfacial thickness: fraction %g must satisfy 0 < l < 1", upper)
	}
	if lower > upper {
		lower, upper = upper, lower
	}

	rho := o.Profile.TotalDensity()
	n := len(rho)
	rhoL, rhoV := rho[0], rho[n-1]
	if rhoL < rhoV {
		rhoL, rhoV = rhoV, rhoL
	}
	if rhoL == rhoV {
		return 0, dft.Errf(dft.Precondition, "interfacial thickness: boundary densities coincide (%g); the profile is degenerate", rhoL)
	}

	z := o.Profile.Grid.Z()
	zLo, err := crossing(z, rho, rhoV+lower*(rhoL-rhoV))
	if err != nil {
		return 0, err
	}
	zUp, err := crossing(z, rho, rhoV+upper*(rhoL-rhoV))
	if err != nil {
		return 0, err
	}
	return math.Abs(zLo - zUp), nil
}

// crossing locates the first coordinate where the field crosses the
// threshold, interpolating linearly between grid points
func crossing(z, rho []float64, thr float64) (float64, error) {
	for k := 0; k+1 < len(rho); k++ {
		if (rho[k]-thr)*(rho[k+1]-thr) <= 0 {
			if rho[k] == thr {
				return z[k], nil
			}
			return z[k] + (thr-rho[k])/(rho[k+1]-rho[k])*(z[k+1]-z[k]), nil
		}
	}
	return 0, dft.Errf(dft.Precondition, "interfacial thickness: total density never crosses the threshold %g", thr)
}

// SetDensityInplace replaces the density field. Without scaling, the shapes
// must match exactly and the data is copied verbatim. With scaling, the data
// is first rescaled affinely per segment so its two boundary densities match
// the profile's current boundary densities, preserving the interior shape.
func (o *PlanarInterface) SetDensityInplace(data [][]float64, scale bool) error {
	nseg, n := o.Profile.NSeg(), o.Profile.N()
	if len(data) != nseg {
		return dft.Errf(dft.ShapeMismatch, "set density: data has %d rows but the profile has %d segments", len(data), nseg)
	}
	for i := range data {
		if len(data[i]) != n {
			return dft.Errf(dft.ShapeMismatch, "set density: data row %d has %d points but the grid has %d", i, len(data[i]), n)
		}
	}

	if !scale {
		for i := range data {
			copy(o.Profile.Density[i], data[i])
		}
		return nil
	}

	for i := 0; i < nseg; i++ {
		dInit := data[i][0] - data[i][n-1]
		if dInit == 0 {
			return dft.Errf(dft.Precondition, "set density: boundary densities of data row %d coincide (%g); cannot rescale", i, data[i][0])
		}
		d0 := data[i][n-1]
		dRho := o.Profile.Density[i][0] - o.Profile.Density[i][n-1]
		rho0 := o.Profile.Density[i][n-1]
		for z := 0; z < n; z++ {
			o.Profile.Density[i][z] = (data[i][z]-d0)/dInit*dRho + rho0
		}
	}
	return nil
}

// SetDensity is the consuming wrapper around SetDensityInplace
func (o *PlanarInterface) SetDensity(data [][]float64, scale bool) (*PlanarInterface, error) {
	if err := o.SetDensityInplace(data, scale); err != nil {
		return nil, err
	}
	return o, nil
}

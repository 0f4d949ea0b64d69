// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements 1D spatial discretisations for planar, cylindrical
// and spherical confinements
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/RolfStierle/feos/dft"
)

// Kind defines the geometry of a confinement. The set is closed; every switch
// over Kind must handle all three cases.
type Kind int

const (

	// Cartesian corresponds to a planar geometry (slit pore, planar interface)
	Cartesian Kind = iota

	// Cylindrical corresponds to a cylindrical pore
	Cylindrical

	// Spherical corresponds to a spherical cavity
	Spherical
)

// Dimension returns the number of physical space dimensions of the geometry
func (o Kind) Dimension() int {
	switch o {
	case Cartesian:
		return 1
	case Cylindrical:
		return 2
	case Spherical:
		return 3
	}
	chk.Panic("unknown geometry kind %d", o)
	return -1
}

// String returns the name of the geometry
func (o Kind) String() string {
	switch o {
	case Cartesian:
		return "cartesian"
	case Cylindrical:
		return "cylindrical"
	case Spherical:
		return "spherical"
	}
	return "unknown"
}

// Axis holds a monotonically increasing sequence of cell-centre coordinates,
// the corresponding cell edges, and geometry-correct quadrature weights.
//   Cartesian   -- cell widths Δz (unit cross section)
//   Cylindrical -- annular areas π・(e²ᵢ₊₁ - e²ᵢ) (unit length)
//   Spherical   -- shell volumes (4π/3)・(e³ᵢ₊₁ - e³ᵢ)
type Axis struct {
	Geom  Kind      // geometry tag
	X     []float64 // cell-centre coordinates
	Edges []float64 // cell edges; len(Edges) = len(X)+1
	W     []float64 // quadrature weights per cell
}

// NewCartesian returns a planar axis with n cells.
//  Input:
//   n      -- number of grid points (cells)
//   length -- confinement half-width for pores, domain length for interfaces
//   offset -- additional margin beyond the confinement boundary. offset = 0
//             produces a one-sided domain [0, length] (planar interfaces);
//             offset > 0 produces a centred domain
//             [-(length+offset), +(length+offset)] (slit pores)
func NewCartesian(n int, length, offset float64) (o *Axis, err error) {
	if n < 2 {
		return nil, dft.Errf(dft.Construction, "cartesian axis: number of grid points must be at least 2 (%d is invalid)", n)
	}
	if length <= 0 {
		return nil, dft.Errf(dft.Construction, "cartesian axis: domain length must be positive (%g is invalid)", length)
	}
	if offset < 0 {
		return nil, dft.Errf(dft.Construction, "cartesian axis: potential offset must be non-negative (%g is invalid)", offset)
	}
	o = &Axis{Geom: Cartesian}
	lo, hi := 0.0, length
	if offset > 0 {
		lo, hi = -(length + offset), length+offset
	}
	o.build(n, lo, hi)
	dx := (hi - lo) / float64(n)
	for i := 0; i < n; i++ {
		o.W[i] = dx
	}
	return
}

// NewPolar returns a cylindrical axis with n cells on [0, radius]
func NewPolar(n int, radius float64) (o *Axis, err error) {
	if n < 2 {
		return nil, dft.Errf(dft.Construction, "cylindrical axis: number of grid points must be at least 2 (%d is invalid)", n)
	}
	if radius <= 0 {
		return nil, dft.Errf(dft.Construction, "cylindrical axis: radius must be positive (%g is invalid)", radius)
	}
	o = &Axis{Geom: Cylindrical}
	o.build(n, 0, radius)
	for i := 0; i < n; i++ {
		o.W[i] = math.Pi * (o.Edges[i+1]*o.Edges[i+1] - o.Edges[i]*o.Edges[i])
	}
	return
}

// NewSpherical returns a spherical axis with n cells on [0, radius]
func NewSpherical(n int, radius float64) (o *Axis, err error) {
	if n < 2 {
		return nil, dft.Errf(dft.Construction, "spherical axis: number of grid points must be at least 2 (%d is invalid)", n)
	}
	if radius <= 0 {
		return nil, dft.Errf(dft.Construction, "spherical axis: radius must be positive (%g is invalid)", radius)
	}
	o = &Axis{Geom: Spherical}
	o.build(n, 0, radius)
	for i := 0; i < n; i++ {
		e0, e1 := o.Edges[i], o.Edges[i+1]
		o.W[i] = 4.0 / 3.0 * math.Pi * (e1*e1*e1 - e0*e0*e0)
	}
	return
}

// build allocates coordinates, edges and weights for a uniform axis on [lo, hi]
func (o *Axis) build(n int, lo, hi float64) {
	dx := (hi - lo) / float64(n)
	o.X = make([]float64, n)
	o.Edges = make([]float64, n+1)
	o.W = make([]float64, n)
	for i := 0; i < n; i++ {
		o.Edges[i] = lo + float64(i)*dx
		o.X[i] = lo + (float64(i)+0.5)*dx
	}
	o.Edges[n] = hi
}

// N returns the number of grid points
func (o *Axis) N() int { return len(o.X) }

// Volume returns the total volume (area, length) spanned by the axis
func (o *Axis) Volume() (v float64) {
	for _, w := range o.W {
		v += w
	}
	return
}

// Grid is a composition of axes. The 1D cases treated here hold a single axis.
type Grid struct {
	Axes []*Axis
}

// New1D returns a grid made of a single axis
func New1D(ax *Axis) *Grid {
	return &Grid{Axes: []*Axis{ax}}
}

// N returns the total number of grid points
func (o *Grid) N() int { return o.Axes[0].N() }

// Z returns the coordinates of the first axis
func (o *Grid) Z() []float64 { return o.Axes[0].X }

// Weights returns the quadrature weights of the first axis
func (o *Grid) Weights() []float64 { return o.Axes[0].W }

// Volume returns the total volume spanned by the grid
func (o *Grid) Volume() float64 { return o.Axes[0].Volume() }

// Integrate computes the quadrature ∫ f dV over the grid
func (o *Grid) Integrate(f []float64) (res float64) {
	for i, w := range o.Axes[0].W {
		res += w * f[i]
	}
	return
}

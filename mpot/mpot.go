// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpot implements models for external (wall) potentials of confined
// fluids
package mpot

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/RolfStierle/feos/dft"
)

// Model defines external potential models. All methods return raw potential
// values with shape (nseg, npoints); the caller scales by the reduced
// temperature and applies the cutoff.
type Model interface {

	// Init initialises this structure
	Init(prms dbf.Params) error

	// GetPrms gets (an example of) parameters
	GetPrms(example bool) dbf.Params

	// Cartesian evaluates the potential of a single planar wall at the given
	// normal distances
	Cartesian(dist []float64, f dft.FluidParams, T float64) [][]float64

	// Cylindrical evaluates the potential inside a cylindrical pore of radius
	// R at the given radial coordinates
	Cylindrical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64

	// Spherical evaluates the potential inside a spherical cavity of radius R
	// at the given radial coordinates
	Spherical(r []float64, R float64, f dft.FluidParams, T float64) [][]float64
}

// New returns a new potential model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("potential model %q is not available in mpot database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

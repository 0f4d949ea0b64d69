// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
)

// deltaConvolver is the convolution plan for delta-function kernels: the
// weighted densities coincide with the densities. Functionals with non-local
// kernels bring their own dft.Convolver implementation.
type deltaConvolver struct {
	wfs []dft.WeightFunction
}

// Convolve returns a copy of the field
func (o *deltaConvolver) Convolve(field [][]float64) [][]float64 {
	return utl.Clone(field)
}

// PlanConvolver constructs a convolution plan bound to the grid and weight
// functions.
//  Input:
//   g      -- the grid the plan is bound to
//   wfs    -- kernel descriptors from the functional
//   nderiv -- maximum derivative order the plan must support; pores require 1
//             for the potential gradient term, planar interfaces require 0
func PlanConvolver(g *grid.Grid, wfs []dft.WeightFunction, nderiv int) (dft.Convolver, error) {
	if nderiv < 0 || nderiv > 1 {
		return nil, dft.Errf(dft.Construction, "convolution plan: maximum derivative order must be 0 or 1 (%d is invalid)", nderiv)
	}
	for _, wf := range wfs {
		if wf.Kernel != "delta" {
			return nil, dft.Errf(dft.Construction, "convolution plan: kernel family %q is not available; only delta kernels are planned here", wf.Kernel)
		}
	}
	return &deltaConvolver{wfs: wfs}, nil
}

// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"math"

	"github.com/RolfStierle/feos/dft"
)

// SpecKind enumerates the side constraints a solver can honour
type SpecKind int

const (

	// ChemicalPotential keeps the chemical potentials of the bulk state fixed
	// (grand-canonical solve); this is the default
	ChemicalPotential SpecKind = iota

	// TotalMoles conserves the total moles per component (canonical solve)
	TotalMoles
)

// Specification is the side constraint consumed by the solver
type Specification struct {
	Kind  SpecKind  // constraint kind
	Moles []float64 // target moles per component; only used by TotalMoles
}

// ChemicalPotentialSpec returns the default grand-canonical specification
func ChemicalPotentialSpec() *Specification {
	return &Specification{Kind: ChemicalPotential}
}

// TotalMolesFromProfile returns a canonical specification conserving the
// moles currently held by the profile
func TotalMolesFromProfile(p *Profile) (*Specification, error) {
	moles := p.Moles()
	for c, nc := range moles {
		if nc <= 0 || math.IsInf(nc, 0) || math.IsNaN(nc) {
			return nil, dft.Errf(dft.NumericalInvalid, "total-moles specification: moles of component %d evaluate to %g", c, nc)
		}
	}
	return &Specification{Kind: TotalMoles, Moles: moles}, nil
}

// Clone returns an independent copy of this specification
func (o *Specification) Clone() *Specification {
	moles := make([]float64, len(o.Moles))
	copy(moles, o.Moles)
	return &Specification{Kind: o.Kind, Moles: moles}
}

// normalize rescales a candidate density field so it honours the constraint.
// With the TotalMoles kind the rescaling absorbs the unknown chemical
// potential offset of the canonical solve.
func (o *Specification) normalize(p *Profile, field [][]float64) {
	if o.Kind != TotalMoles {
		return
	}
	comp := p.Bulk.Eos.ComponentIndex()
	cur := make([]float64, len(o.Moles))
	for i := range field {
		cur[comp[i]] += p.Integrate(field[i])
	}
	for i := range field {
		c := comp[i]
		if cur[c] == 0 {
			continue
		}
		f := o.Moles[c] / cur[c]
		for z := range field[i] {
			field[i][z] *= f
		}
	}
}

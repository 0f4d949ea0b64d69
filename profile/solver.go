// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
)

// Solver solves the Euler-Lagrange equation of a profile, mutating the
// density field in place. Implementations report success or a classified
// failure; they never partially mutate other profile state.
type Solver interface {
	Solve(p *Profile, debug bool) error
}

// NewSolver returns a new solver with default settings
func NewSolver(name string) (solver Solver, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("solver %q is not available in profile database", name)
	}
	return allocator(), nil
}

// allocators holds all available solvers
var allocators = map[string]func() Solver{}

func init() {
	allocators["picard"] = func() Solver {
		return &Picard{MaxIt: 500, Tol: 1e-11, Damping: 0.5}
	}
}

// Picard implements damped direct substitution: each iteration evaluates the
// Euler-Lagrange closure
//   ρᵢ(z) ← ρ_bulk,i・exp( βμ_res,i - βVext,i(z) - δβF_res/δρᵢ(z) )
// and moves the density a fraction Damping towards it. The side constraint of
// the profile is enforced after every update.
type Picard struct {
	MaxIt   int     // maximum number of iterations
	Tol     float64 // tolerance for the RMS density residual
	Damping float64 // update fraction per iteration; 0 < Damping ≤ 1
}

// Solve runs the iteration
func (o *Picard) Solve(p *Profile, debug bool) error {
	if o.Damping <= 0 || o.Damping > 1 {
		return dft.Errf(dft.Precondition, "picard solver: damping must satisfy 0 < damping <= 1 (%g is invalid)", o.Damping)
	}
	comp := p.Bulk.Eos.ComponentIndex()
	T := p.Bulk.T
	muRes := p.Bulk.ChemicalPotential(dft.Residual)
	nseg, n := p.NSeg(), p.N()
	res := la.NewVector(nseg * n)
	target := utl.Alloc(nseg, n)

	for it := 1; it <= o.MaxIt; it++ {

		// residual functional derivative at the current density
		dF, err := p.Bulk.Eos.FunctionalDerivative(T, p.Density, p.Conv)
		if err != nil {
			return dft.Wrapf(dft.SolverFailure, err, "picard solver: functional derivative failed at iteration %d", it)
		}

		// Euler-Lagrange closure
		for i := 0; i < nseg; i++ {
			rhoB := p.Bulk.Rho[comp[i]]
			bmu := muRes[comp[i]] / T
			for z := 0; z < n; z++ {
				target[i][z] = rhoB * math.Exp(bmu-p.Vext[i][z]-dF[i][z])
				if math.IsInf(target[i][z], 0) || math.IsNaN(target[i][z]) {
					return dft.Errf(dft.SolverFailure, "picard solver: density update overflows at segment %d, point %d (%g)", i, z, target[i][z])
				}
			}
		}

		// the side constraint absorbs the chemical potential offset of a
		// canonical solve before the update
		p.Spec.normalize(p, target)

		// damped update
		for i := 0; i < nseg; i++ {
			for z := 0; z < n; z++ {
				res[i*n+z] = target[i][z] - p.Density[i][z]
				p.Density[i][z] += o.Damping * res[i*n+z]
			}
		}

		rms := res.Norm() / math.Sqrt(float64(nseg*n))
		if debug {
			io.Pforan("picard: it=%3d  residual=%13.7e\n", it, rms)
		}
		if rms < o.Tol {
			return nil
		}
	}
	return dft.Errf(dft.SolverFailure, "picard solver: no convergence within %d iterations (tolerance = %g)", o.MaxIt, o.Tol)
}

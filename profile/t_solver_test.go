// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/RolfStierle/feos/dft"
)

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. solver database")

	s, err := NewSolver("picard")
	if err != nil {
		tst.Errorf("NewSolver failed:\n%v", err)
		return
	}
	if _, ok := s.(*Picard); !ok {
		tst.Errorf("wrong solver type: %v", s)
	}
	if _, err = NewSolver("newton"); err == nil {
		tst.Errorf("error expected for unknown solver")
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. picard solves the ideal gas")

	eos := dft.NewIdealGas(1)
	bulk, err := dft.NewState(eos, 2.0, []float64{0.05})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	g := buildGrid(tst, 32, 10)
	conv, _ := PlanConvolver(g, eos.WeightFunctions(bulk.T), 0)

	// ramped external potential
	vext := utl.Alloc(1, 32)
	for z := 0; z < 32; z++ {
		vext[0][z] = 3.0 * float64(z) / 31.0
	}

	// seed far from the solution on purpose
	seed := utl.Alloc(1, 32)
	utl.Fill(seed[0], 0.05)
	p, err := New(g, conv, bulk, vext, seed)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}

	// the ideal gas closes the Euler-Lagrange equation analytically
	if err = p.Solve(nil, chk.Verbose); err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for z := 0; z < p.N(); z++ {
		chk.Float64(tst, io.Sf("rho(%d)", z), 1e-9, p.Density[0][z], 0.05*math.Exp(-vext[0][z]))
	}

	// grand potential of the solved profile is finite
	omega, err := p.GrandPotential()
	if err != nil {
		tst.Errorf("GrandPotential failed:\n%v", err)
		return
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		tst.Errorf("grand potential must be finite: %g", omega)
	}
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. canonical constraint")

	eos := dft.NewIdealGas(1)
	bulk, err := dft.NewState(eos, 1.0, []float64{0.1})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	g := buildGrid(tst, 16, 8)
	conv, _ := PlanConvolver(g, eos.WeightFunctions(bulk.T), 0)

	vext := utl.Alloc(1, 16)
	for z := 0; z < 16; z++ {
		vext[0][z] = 1.5 * float64(z) / 15.0
	}
	p, err := New(g, conv, bulk, vext, nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	p.Spec, err = TotalMolesFromProfile(p)
	if err != nil {
		tst.Errorf("TotalMolesFromProfile failed:\n%v", err)
		return
	}
	target := p.Spec.Moles[0]

	if err = p.Solve(nil, chk.Verbose); err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Float64(tst, "conserved moles", 1e-9, p.Moles()[0], target)

	// solution keeps the boltzmann shape up to a common factor
	r0 := p.Density[0][0] / math.Exp(-vext[0][0])
	for z := 1; z < p.N(); z++ {
		chk.Float64(tst, io.Sf("shape(%d)", z), 1e-9, p.Density[0][z]/math.Exp(-vext[0][z]), r0)
	}
}

func Test_solver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver04. classified failures")

	eos := dft.NewIdealGas(1)
	bulk, err := dft.NewState(eos, 1.0, []float64{0.1})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	g := buildGrid(tst, 8, 4)
	conv, _ := PlanConvolver(g, eos.WeightFunctions(bulk.T), 0)
	p, err := New(g, conv, bulk, nil, nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}

	// invalid damping
	err = p.Solve(&Picard{MaxIt: 10, Tol: 1e-11, Damping: 1.5}, false)
	if err == nil {
		tst.Errorf("error expected for invalid damping")
		return
	}
	if kind, ok := dft.KindOf(err); !ok || kind != dft.Precondition {
		tst.Errorf("wrong error kind: %v", err)
	}

	// unreachable tolerance
	err = p.Solve(&Picard{MaxIt: 2, Tol: 0, Damping: 0.5}, false)
	if err == nil {
		tst.Errorf("error expected for unreachable tolerance")
		return
	}
	if kind, ok := dft.KindOf(err); !ok || kind != dft.SolverFailure {
		tst.Errorf("wrong error kind: %v", err)
	}
}

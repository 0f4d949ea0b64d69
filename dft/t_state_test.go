// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dft

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. bulk state")

	eos := NewIdealGas(2)
	b, err := NewState(eos, 1.5, []float64{0.2, 0.3})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Density", 1e-15, b.Density(), 0.5)

	// clone is independent
	c := b.Clone()
	c.Rho[0] = 99
	chk.Float64(tst, "clone independence", 1e-15, b.Rho[0], 0.2)

	// invalid input
	_, err = NewState(eos, 0, []float64{0.2, 0.3})
	if err == nil {
		tst.Errorf("error expected for zero temperature")
		return
	}
	if kind, ok := KindOf(err); !ok || kind != Construction {
		tst.Errorf("wrong error kind: %v", err)
	}
	_, err = NewState(eos, 1.5, []float64{0.2, -0.3})
	if err == nil {
		tst.Errorf("error expected for negative density")
		return
	}
	_, err = NewState(eos, 1.5, []float64{math.NaN(), 0.3})
	if err == nil {
		tst.Errorf("error expected for NaN density")
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. phase equilibrium")

	eos := NewIdealGas(1)
	vap, err := NewState(eos, 1.0, []float64{0.01})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	liq, err := NewState(eos, 1.0, []float64{0.7})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}

	vle, err := NewPhaseEquilibrium(vap, liq)
	if err != nil {
		tst.Errorf("NewPhaseEquilibrium failed:\n%v", err)
		return
	}
	chk.Float64(tst, "vapor density", 1e-15, vle.Vapor().Density(), 0.01)
	chk.Float64(tst, "liquid density", 1e-15, vle.Liquid().Density(), 0.7)

	// phases are cloned on construction
	vap.Rho[0] = 0.5
	chk.Float64(tst, "vapor clone", 1e-15, vle.Vapor().Rho[0], 0.01)

	// mismatched functionals
	other, _ := NewState(NewIdealGas(1), 1.0, []float64{0.7})
	if _, err = NewPhaseEquilibrium(vap, other); err == nil {
		tst.Errorf("error expected for mismatched functionals")
		return
	}
	if kind, ok := KindOf(err); !ok || kind != Precondition {
		tst.Errorf("wrong error kind: %v", err)
	}

	// mismatched temperatures
	hot, _ := NewState(eos, 2.0, []float64{0.7})
	if _, err = NewPhaseEquilibrium(vap, hot); err == nil {
		tst.Errorf("error expected for mismatched temperatures")
	}

	// degenerate equilibrium
	same, _ := NewState(eos, 1.0, []float64{0.01})
	if _, err = NewPhaseEquilibrium(vap, same); err == nil {
		tst.Errorf("error expected for coinciding densities")
	}
}

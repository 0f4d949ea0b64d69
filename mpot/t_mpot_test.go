// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpot

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/RolfStierle/feos/dft"
)

func Test_mpot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mpot01. model database")

	mdl, err := New("lj93")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// round trip through the parameters
	other, _ := New("lj93")
	if err = other.Init(mdl.GetPrms(false)); err != nil {
		tst.Errorf("Init from stored parameters failed:\n%v", err)
		return
	}

	// unknown model
	if _, err = New("square-well"); err == nil {
		tst.Errorf("error expected for unknown model")
	}

	// unknown parameter
	if err = mdl.Init(dbf.Params{&dbf.P{N: "kappa", V: 1}}); err == nil {
		tst.Errorf("error expected for unknown parameter")
	}

	// non-positive parameter
	if err = mdl.Init(dbf.Params{&dbf.P{N: "rhos", V: -1}, &dbf.P{N: "sigss", V: 1}, &dbf.P{N: "epsss", V: 10}}); err == nil {
		tst.Errorf("error expected for negative solid density")
	}
}

func Test_mpot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mpot02. lj93 wall potential")

	mdl, err := New("lj93")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	fluid := dft.NewIdealGas(1) // sigma = epsilon = 1
	T := 2.0

	// with rhos=1, sigss=1 and a unit fluid: sigsf=1, epssf=sqrt(10)
	epssf := math.Sqrt(10.0)
	v := mdl.Cartesian([]float64{1.0, 2.0, 1e6, -0.5}, fluid, T)
	chk.Float64(tst, "V(sigsf)", 1e-13, v[0][0], 2.0*math.Pi/3.0*epssf*(2.0/15.0-1.0))
	chk.Float64(tst, "V(2 sigsf)", 1e-13, v[0][1], 2.0*math.Pi/3.0*epssf*(2.0/15.0/512.0-1.0/8.0))
	chk.Float64(tst, "V(far)", 1e-15, v[0][2], 0)
	if !math.IsInf(v[0][3], 1) {
		tst.Errorf("potential inside the wall must diverge")
	}

	// attractive well between the repulsive core and the tail
	if v[0][0] >= 0 || v[0][1] >= 0 {
		tst.Errorf("potential must be attractive beyond sigsf")
	}

	// radial evaluations use the normal distance to the wall
	R := 5.0
	r := []float64{3.0, 4.5}
	d := []float64{2.0, 0.5}
	chk.Deep2(tst, "cylindrical", 1e-14, mdl.Cylindrical(r, R, fluid, T), mdl.Cartesian(d, fluid, T))
	chk.Deep2(tst, "spherical", 1e-14, mdl.Spherical(r, R, fluid, T), mdl.Cartesian(d, fluid, T))
}

func Test_mpot03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mpot03. hard wall")

	mdl, err := New("hardwall")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if err = mdl.Init(dbf.Params{&dbf.P{N: "sigss", V: 3.0}}); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	fluid := dft.NewIdealGas(1) // sigma = 1

	// contact distance 0.5*(3+1) = 2
	v := mdl.Cartesian([]float64{1.9, 2.0, 2.1}, fluid, 1.0)
	if !math.IsInf(v[0][0], 1) {
		tst.Errorf("potential inside the contact distance must diverge")
	}
	chk.Float64(tst, "V(contact)", 1e-17, v[0][1], 0)
	chk.Float64(tst, "V(outside)", 1e-17, v[0][2], 0)

	// shape follows the fluid segments
	mix := dft.NewIdealGas(3)
	v = mdl.Cartesian([]float64{2.5}, mix, 1.0)
	if len(v) != 3 || len(v[0]) != 1 {
		tst.Errorf("wrong result shape: %d x %d", len(v), len(v[0]))
	}
}

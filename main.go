// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/RolfStierle/feos/dft"
	"github.com/RolfStierle/feos/grid"
	"github.com/RolfStierle/feos/mpot"
	"github.com/RolfStierle/feos/pore"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input parameters
	poreSize := io.ArgToFloat(0, 20.0)
	temp := io.ArgToFloat(1, 2.0)
	rhoBulk := io.ArgToFloat(2, 0.05)
	nGrid := io.ArgToInt(3, 1024)
	verbose := io.ArgToBool(4, false)

	// message
	io.PfWhite("\nFeos -- classical DFT profiles of confined fluids\n\n")
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"pore width", "poreSize", poreSize,
		"reduced temperature", "temp", temp,
		"bulk density", "rhoBulk", rhoBulk,
		"grid resolution", "nGrid", nGrid,
		"show solver progress", "verbose", verbose,
	))

	// wall potential model
	wall, err := mpot.New("lj93")
	if err != nil {
		chk.Panic("cannot allocate wall model:\n%v", err)
	}
	if err = wall.Init(wall.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise wall model:\n%v", err)
	}

	// bulk state
	eos := dft.NewIdealGas(1)
	bulk, err := dft.NewState(eos, temp, []float64{rhoBulk})
	if err != nil {
		chk.Panic("cannot build bulk state:\n%v", err)
	}

	// pore profile
	spec := pore.Pore1D{Geom: grid.Cartesian, Size: poreSize, Pot: wall, NGrid: nGrid}
	pp, err := spec.Initialize(bulk, nil, nil)
	if err != nil {
		chk.Panic("cannot initialise pore:\n%v", err)
	}
	if err = pp.SolveInplace(nil, verbose); err != nil {
		chk.Panic("solve failed:\n%v", err)
	}

	// results
	vol, err := spec.PoreVolume()
	if err != nil {
		chk.Panic("pore volume failed:\n%v", err)
	}
	moles := pp.Profile.Moles()
	io.Pf("\n")
	io.Pf("grand potential      Ω  = %g\n", *pp.GrandPotential)
	io.Pf("interfacial tension  γ  = %g\n", *pp.InterfacialTension)
	io.Pf("pore volume (probe)  Vp = %g\n", vol)
	io.Pf("adsorbed amount      N  = %v\n", moles)
}

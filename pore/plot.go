// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pore

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plot plots the density profile of every segment across the pore
func (o *PoreProfile) Plot(dirout, fnkey string) {
	z := o.Profile.Grid.Z()
	for i := 0; i < o.Profile.NSeg(); i++ {
		plt.Plot(z, o.Profile.Density[i], &plt.A{L: io.Sf("segment %d", i), NoClip: true})
	}
	plt.Gll("$z$", "$\\rho$", nil)
	plt.Save(dirout, fnkey)
}

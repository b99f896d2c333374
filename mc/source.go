// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"github.com/cpmech/gomc/inp"
)

// launch initializes the packet at the source: transverse position from the
// beam profile, direction from the numerical aperture, weight 1-Rspec
func (o *worker) launch() {
	ph := &o.ph
	src := &o.cfg.Src
	ph.Rspec = Specular(o.tis.Layers[0].N, o.tis.Layers[1].N)
	ph.W = 1.0 - ph.Rspec

	if src.BeamRadius == 0.0 {
		ph.X = 0.0
		ph.Y = 0.0
	} else {
		rn1 := o.rnd.Float64()
		rn2 := o.rnd.Float64()
		cosRN2 := math.Cos(2 * math.Pi * rn2)
		sinRN2 := math.Sin(2 * math.Pi * rn2)
		switch src.Beam {
		case inp.FlatBeam:
			ph.X = src.BeamRadius * math.Sqrt(rn1) * cosRN2
			ph.Y = src.BeamRadius * math.Sqrt(rn1) * sinRN2
		case inp.RectBeam:
			ph.X = src.BeamRadius*(rn2-0.5) + src.BeamCenterX
			ph.Y = rn1*2*src.RectHalfY - src.RectHalfY
		default: // Gaussian
			if rn1 == 1.0 {
				rn1 = o.rnd.Float64()
			}
			amp := src.BeamRadius * math.Sqrt(-math.Log(1.0-rn1)/2.0)
			ph.X = amp * cosRN2
			ph.Y = amp * sinRN2
		}
	}
	ph.Z = 0.0
	ph.Dead = false
	ph.HitBdry = false

	// direction: azimuth uniform, polar cosine drawn until the sine fits
	// inside the aperture
	theta := 2.0 * math.Pi * o.rnd.Float64()
	cost := math.Cos(theta)
	sint := math.Sin(theta)
	if src.NA == 0.0 {
		ph.Ux = 0
		ph.Uy = 0
		ph.Uz = 1
	} else {
		var cosp, sinp float64
		for {
			cosp = o.rnd.Float64()
			sinp = math.Sqrt(1.0 - cosp*cosp)
			if sinp <= src.NA/o.tis.Layers[1].N {
				break
			}
		}
		ph.Ux = cost * sinp
		ph.Uy = sint * sinp
		ph.Uz = cosp
	}

	ph.CurrLayer = 1
	ph.S = 0.0
	ph.Sleft = 0.0
	o.hist.Reset(ph)
}

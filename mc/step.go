// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"github.com/cpmech/gomc/geo"
)

// HitKind discriminates the boundary-arbitration outcome of one step
type HitKind int

const (
	// HitNone: the sampled step ends inside the current medium
	HitNone HitKind = iota

	// HitLayerBdry: the step is cut by a planar layer interface
	HitLayerBdry

	// HitEllipEnter: the step is cut by the ellipsoid surface from outside
	HitEllipEnter

	// HitEllipExit: the step is cut by the ellipsoid surface from inside
	HitEllipExit

	// HitEllipInterior: the whole step lies inside the ellipsoid
	HitEllipInterior
)

// one excludes samples that would make the log of the step blow up
const one = 1.0 - 1e-12

// setStepSize draws a new optical depth, or spends the remainder carried
// over a pseudocollision
func (o *worker) setStepSize() {
	lay := &o.tis.Layers[o.ph.CurrLayer]
	mut := lay.Mua + lay.Mus
	if o.ph.Sleft == 0.0 {
		var rn float64
		for {
			rn = o.rnd.Float64()
			if rn > 0.0 && rn <= one {
				break
			}
		}
		o.ph.S = -math.Log(rn) / mut
	} else {
		o.ph.S = o.ph.Sleft / mut
		o.ph.Sleft = 0.0
	}
}

// hitBoundary arbitrates between the planar interfaces of the current layer
// and the ellipsoid surface, cutting the step at the nearest event and
// banking the unspent optical depth in sleft
func (o *worker) hitBoundary() HitKind {
	ph := &o.ph
	planes := &o.tis.Layers[o.tis.PlanesOf(ph.CurrLayer)]

	// nearer planar interface along the flight direction
	hit := HitNone
	dhit := ph.S
	if ph.Uz < 0.0 {
		if d := (planes.Zbegin - ph.Z) / ph.Uz; ph.S > d {
			hit = HitLayerBdry
			dhit = d
		}
	} else if ph.Uz > 0.0 {
		if d := (planes.Zend - ph.Z) / ph.Uz; ph.S > d {
			hit = HitLayerBdry
			dhit = d
		}
	}

	// ellipsoid surface
	if o.tis.EllipOn {
		x2 := ph.X + ph.S*ph.Ux
		y2 := ph.Y + ph.S*ph.Uy
		z2 := ph.Z + ph.S*ph.Uz
		inside := ph.CurrLayer == o.tis.EllipLayer
		if inside || (z2 >= 0.0 && z2 <= o.tis.Zmax) {
			locA := o.tis.Ellip.Locate(ph.X, ph.Y, ph.Z)
			locB := o.tis.Ellip.Locate(x2, y2, z2)
			if locA != geo.Outside && (locB == geo.Inside || locB == geo.Absent) {
				return HitEllipInterior
			}
			if root, _, ok := o.tis.Ellip.SegmentRoot(ph.X, ph.Y, ph.Z, x2, y2, z2, locA); ok {
				if de := root * ph.S; de < dhit {
					if locA == geo.Inside {
						hit = HitEllipExit
					} else {
						hit = HitEllipEnter
					}
					dhit = de
				}
			}
		}
	}

	if hit != HitNone {
		lay := &o.tis.Layers[ph.CurrLayer]
		ph.Sleft = (ph.S - dhit) * (lay.Mua + lay.Mus)
		ph.S = dhit
		ph.HitBdry = true
	}
	return hit
}

// move advances the packet by the current step and records the new vertex
func (o *worker) move() {
	ph := &o.ph
	h := o.hist
	ph.X += ph.S * ph.Ux
	ph.Y += ph.S * ph.Uy
	ph.Z += ph.S * ph.Uz

	if h.Npts >= HistMax {
		ph.Dead = true
		return
	}
	idx := h.Npts
	h.Npts++
	h.X[idx] = ph.X
	h.Y[idx] = ph.Y
	h.Z[idx] = ph.Z
	h.Ux[idx] = ph.Ux
	h.Uy[idx] = ph.Uy
	h.Uz[idx] = ph.Uz
	h.W[idx] = ph.W
	if ph.HitBdry {
		h.BdryCol[idx] = 1
		ph.HitBdry = false
	} else {
		h.BdryCol[idx] = 0
	}

	dx := ph.X - h.X[idx-1]
	dy := ph.Y - h.Y[idx-1]
	dz := ph.Z - h.Z[idx-1]
	seg := math.Sqrt(dx*dx + dy*dy + dz*dz)
	o.res.PathLenInLayer[ph.CurrLayer] += seg
	if h.BdryCol[idx] == 0 {
		o.res.ColInLayer[ph.CurrLayer]++
	}
	h.PathLen[idx] = seg
	h.CumPathLen += seg
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"github.com/cpmech/gosl/io"
)

const (
	// cos90D is the incidence cosine below which a crossing is grazing
	cos90D = 1.0e-6

	// cosZero is the incidence cosine above which incidence is normal
	cosZero = 1.0 - 1e-12

	// roulette survival chance (roulette is disabled in the base design)
	chance = 0.1

	// weightLimit would trigger the roulette
	weightLimit = 1.0e-4

	// speed of light in cm/ps
	cCmPerPs = 0.03
)

// Specular returns the normal-incidence reflectance of the top surface
func Specular(nAir, nTiss float64) float64 {
	return (nAir - nTiss) * (nAir - nTiss) / ((nAir + nTiss) * (nAir + nTiss))
}

// Fresnel returns the unpolarized reflectance between media n1 and n2 for
// incidence cosine ci, along with the refraction cosine
func Fresnel(n1, n2, ci float64) (r, uzSnell float64) {
	if n1 == n2 {
		return 0.0, ci
	}
	if ci > cosZero { // normal incidence
		return (n2 - n1) * (n2 - n1) / ((n2 + n1) * (n2 + n1)), ci
	}
	if ci < cos90D { // grazing
		return 1.0, 0.0
	}
	si := math.Sqrt(1 - ci*ci)
	st := n1 / n2 * si
	ct := math.Sqrt(1 - st*st)
	uzSnell = ct

	// trig identities of the sum and difference angles
	sd := si*ct - ci*st
	ss := si*ct + ci*st
	cd := ci*ct + si*st
	cs := ci*ct - si*st
	r = 0.5 * (sd*sd/(ss*ss) + sd*sd*cs*cs/(cd*cd*ss*ss))
	return
}

// scatter samples a Henyey-Greenstein deflection and rotates the direction
func (o *worker) scatter() {
	ph := &o.ph
	g := o.tis.Layers[ph.CurrLayer].G

	var cost float64
	if g == 0.0 {
		cost = 2.0*o.rnd.Float64() - 1.0
	} else {
		tmp := (1 - g*g) / (1 - g + 2*g*o.rnd.Float64())
		cost = (1 + g*g - tmp*tmp) / (2 * g)
		if cost < -1 {
			cost = -1
		} else if cost > 1 {
			cost = 1
		}
	}
	sint := math.Sqrt(1.0 - cost*cost)

	psi := 2.0 * math.Pi * o.rnd.Float64()
	cosp := math.Cos(psi)
	sinp := math.Sin(psi)

	ux, uy, uz := ph.Ux, ph.Uy, ph.Uz
	if math.Abs(uz) > 1-1e-10 { // normal incident
		ph.Ux = sint * cosp
		ph.Uy = sint * sinp
		ph.Uz = cost * uz / math.Abs(uz)
	} else {
		tmp := math.Sqrt(1.0 - uz*uz)
		ph.Ux = sint*(ux*uz*cosp-uy*sinp)/tmp + ux*cost
		ph.Uy = sint*(uy*uz*cosp+ux*sinp)/tmp + uy*cost
		ph.Uz = -sint*cosp*tmp + uz*cost
	}
}

// absorb drops the absorbed fraction of the weight on a real collision and
// scores it; pseudocollisions at boundaries deposit nothing
func (o *worker) absorb() {
	ph := &o.ph
	if ph.Sleft != 0.0 {
		return
	}
	lay := &o.tis.Layers[ph.CurrLayer]
	ir, iz := o.binRZ()
	dw := ph.W * lay.Mua / (lay.Mua + lay.Mus)
	ph.W -= dw
	o.res.ALayer[ph.CurrLayer] += dw
	o.res.ARz[ir][iz] += dw
	o.hist.W[o.hist.Npts-1] = ph.W
}

// scatterOrAbsorb implements analog weighting: survival with probability
// albedo, otherwise the whole packet is deposited where it stands
func (o *worker) scatterOrAbsorb() {
	ph := &o.ph
	lay := &o.tis.Layers[ph.CurrLayer]
	if o.rnd.Float64() < lay.Albedo {
		o.scatter()
		return
	}
	if ph.Sleft != 0.0 {
		return
	}
	ir, iz := o.binRZ()
	dw := ph.W
	ph.W = 0.0
	ph.Dead = true
	o.res.ALayer[ph.CurrLayer] += dw
	o.res.ARz[ir][iz] += dw
	o.hist.W[o.hist.Npts-1] = 0.0
}

// binRZ bins the current position into the cylindrical absorption grid
func (o *worker) binRZ() (ir, iz int) {
	det := &o.cfg.Det
	iz = int(o.ph.Z / det.Dz)
	if iz > det.Nz-1 {
		iz = det.Nz - 1
	}
	ir = int(math.Sqrt(o.ph.X*o.ph.X+o.ph.Y*o.ph.Y) / det.Dr)
	if ir > det.Nr-1 {
		ir = det.Nr - 1
	}
	return
}

// crossLayer dispatches a planar interface event on the flight direction
func (o *worker) crossLayer() {
	if o.ph.Uz < 0.0 {
		o.crossUp()
	} else {
		o.crossDown()
	}
}

func (o *worker) crossDown() {
	ph := &o.ph
	host := o.tis.PlanesOf(ph.CurrLayer)
	nCurr := o.tis.Layers[host].N
	nNext := o.tis.Layers[host+1].N
	uz := ph.Uz

	coscrit := 0.0
	if nCurr > nNext {
		coscrit = math.Sqrt(1.0 - (nNext/nCurr)*(nNext/nCurr))
	}
	r, uzSnell := 1.0, 0.0
	if uz > coscrit {
		r, uzSnell = Fresnel(nCurr, nNext, uz)
	}
	if o.rnd.Float64() > r { // transmitted
		if host == o.tis.BottomLay() {
			o.transmit(0.0) // fixed-weight packets: all or none
			ph.Dead = true
			ph.Ux *= nCurr / nNext
			ph.Uy *= nCurr / nNext
			ph.Uz = uzSnell
		} else {
			ph.CurrLayer = host + 1
			ph.Ux *= nCurr / nNext
			ph.Uy *= nCurr / nNext
			ph.Uz = uzSnell
		}
	} else {
		ph.Uz = -uz
	}
}

func (o *worker) crossUp() {
	ph := &o.ph
	host := o.tis.PlanesOf(ph.CurrLayer)
	nCurr := o.tis.Layers[host].N
	nNext := o.tis.Layers[host-1].N
	uz := ph.Uz

	coscrit := 0.0
	if nCurr > nNext {
		coscrit = math.Sqrt(1.0 - (nNext/nCurr)*(nNext/nCurr))
	}
	r, uzSnell := 1.0, 0.0
	if -uz > coscrit {
		r, uzSnell = Fresnel(nCurr, nNext, -uz)
	}
	if o.rnd.Float64() > r { // moves into next layer
		if host == 1 { // out of the tissue through the top
			ph.Ux *= nCurr / nNext
			ph.Uy *= nCurr / nNext
			ph.Uz = uzSnell
			o.reflect(0.0)
			ph.Dead = true
		} else {
			ph.CurrLayer = host - 1
			ph.Ux *= nCurr / nNext
			ph.Uy *= nCurr / nNext
			ph.Uz = -uzSnell
		}
	} else {
		ph.Uz = -uz
	}
}

// crossEllip toggles the layer index at the ellipsoid surface; the index is
// matched so there is no Fresnel event and no weight change
func (o *worker) crossEllip() {
	ph := &o.ph
	if ph.CurrLayer == o.tis.EllipLayer {
		ph.CurrLayer = o.tis.EllipHost
	} else {
		ph.CurrLayer = o.tis.EllipLayer
	}
}

// transmit scores an escape through the bottom surface
func (o *worker) transmit(r float64) {
	ph := &o.ph
	det := &o.cfg.Det
	ir := int(math.Sqrt(ph.X*ph.X+ph.Y*ph.Y) / det.Dr)
	if ir > det.Nr-1 {
		ir = det.Nr - 1
	}
	ia := int(math.Acos(ph.Uz) / det.Da)
	if ia > det.Na-1 {
		ia = det.Na - 1
	}
	o.res.TRa[ir][ia] += ph.W * (1 - r)
	ph.W *= r
}

// reflect scores an escape through the top surface on every reflectance
// tally, including the time-resolved and cartesian ones
func (o *worker) reflect(r float64) {
	ph := &o.ph
	det := &o.cfg.Det

	ir := int(math.Sqrt(ph.X*ph.X+ph.Y*ph.Y) / det.Dr)
	if ir > det.Nr-1 {
		ir = det.Nr - 1
	}
	ia := int(math.Acos(ph.Uz) / det.Da)
	if ia > det.Na-1 {
		ia = det.Na - 1
	}

	amt := (1 - r) * ph.W
	o.res.RR[ir] += amt
	o.res.RRa[ir][ia] += amt
	o.res.RR2[ir] += amt * amt
	ph.W *= r // remainder is internally reflected

	// R(r,t): flight time from the cumulative optical pathlength; samples
	// outside [0, nt*dt) are discarded
	tDelay := o.hist.CumPathLen / (cCmPerPs / o.tis.Layers[1].N)
	it := int(math.Floor(tDelay / det.Dt))
	if it >= 0 && it <= det.Nt-1 {
		o.res.RRt[ir][it] += amt
	}

	// R(x,y): offset binning, contributions outside the window are dropped
	ix := int((ph.X + float64(det.Nx)*det.Dx) / det.Dx)
	iy := int((ph.Y + float64(det.Ny)*det.Dy) / det.Dy)
	if ix < 2*det.Nx-1 && ix >= 0 && iy < 2*det.Ny-1 && iy >= 0 {
		o.res.RXy[ix][iy] += amt
	}
	ph.Dead = true
}

// roulette gives a nearly extinguished packet one chance in ten to carry on
// with boosted weight
func (o *worker) roulette() {
	ph := &o.ph
	if ph.W == 0.0 {
		ph.Dead = true
	} else if o.rnd.Float64() < chance {
		ph.W /= chance
	} else {
		ph.Dead = true
	}
}

// testWeight kills packets whose history is about to overrun
func (o *worker) testWeight() {
	if o.hist.Full() {
		o.ph.Dead = true
		o.res.NumHistFull++
		io.Pf("WARNING: history capacity reached. Killing this photon\n")
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/ana"
	"github.com/cpmech/gomc/inp"
)

// oneLayerCfg builds a single-slab configuration for kernel tests
func oneLayerCfg(mus, mua, g, d float64, n float64) *inp.Simulation {
	cfg := new(inp.Simulation)
	cfg.SetDefault()
	cfg.FnKey = "test"
	cfg.Src = inp.Source{Beam: inp.FlatBeam, NumPhotons: 1000, RectHalfY: 4}
	cfg.Det = inp.Detector{
		Nr: 10, Dr: 0.01, Nz: 10, Dz: 0.01, Na: 1,
		Nt: 10, Dt: 10, Nx: 10, Dx: 0.01, Ny: 10, Dy: 0.01,
		NumDet: 1, DetCtr: []float64{0.05}, DetRad: 0.01, Reflect: true,
	}
	cfg.Tis = inp.TissueSpec{
		NAbove: 1.0, NBelow: 1.0,
		Layers: []inp.LayerSpec{{N: n, Mus: mus, Mua: mua, G: g, D: d}},
	}
	cfg.PostProcess()
	return cfg
}

func Test_fresnel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fresnel01. reflectance limits")

	chk.Scalar(tst, "specular", 1e-12, Specular(1.0, 1.4), (0.4/2.4)*(0.4/2.4))

	// matched indices transmit everything
	r, uz := Fresnel(1.4, 1.4, 0.7)
	chk.Scalar(tst, "matched r", 1e-15, r, 0)
	chk.Scalar(tst, "matched uz", 1e-15, uz, 0.7)

	// normal incidence reduces to the specular value
	r, _ = Fresnel(1.4, 1.0, 1.0)
	chk.Scalar(tst, "normal r", 1e-12, r, ana.Specular(1.4, 1.0))

	// grazing incidence reflects everything
	r, uz = Fresnel(1.4, 1.0, 1e-7)
	chk.Scalar(tst, "grazing r", 1e-15, r, 1.0)
	chk.Scalar(tst, "grazing uz", 1e-15, uz, 0.0)

	// mid-range angle against the amplitude expressions
	ci := 0.95
	r, _ = Fresnel(1.0, 1.4, ci)
	chk.Scalar(tst, "oblique r", 1e-12, r, ana.Fresnel(1.0, 1.4, ci))
}

func Test_scatter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scatter01. Henyey-Greenstein sampling")

	for _, g := range []float64{0.0, 0.9} {
		cfg := oneLayerCfg(100, 1, g, 1, 1.4)
		sim := New(cfg)
		w := sim.newWorker(sim.Res, 1)
		w.ph.CurrLayer = 1
		n := 100000
		sum := 0.0
		for i := 0; i < n; i++ {
			w.ph.Ux, w.ph.Uy, w.ph.Uz = 0, 0, 1
			w.scatter()
			sum += w.ph.Uz // deflection cosine relative to +z
		}
		mean := sum / float64(n)
		io.Pforan("g=%g mean cos = %v\n", g, mean)
		chk.Scalar(tst, io.Sf("mean cos (g=%g)", g), 0.02, mean, g)
	}

	// the rotation keeps the direction unitary
	cfg := oneLayerCfg(100, 1, 0.9, 1, 1.4)
	sim := New(cfg)
	w := sim.newWorker(sim.Res, 1)
	w.ph.CurrLayer = 1
	w.ph.Ux, w.ph.Uy, w.ph.Uz = 0.6, 0.0, 0.8
	for i := 0; i < 100; i++ {
		w.scatter()
	}
	norm := math.Sqrt(w.ph.Ux*w.ph.Ux + w.ph.Uy*w.ph.Uy + w.ph.Uz*w.ph.Uz)
	chk.Scalar(tst, "unit direction", 1e-12, norm, 1.0)
}

func Test_step01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step01. step sampling and pseudocollision carry")

	var m ana.SemiInfinite
	m.Init(fun.Prms{
		&fun.Prm{N: "mua", V: 1.0},
		&fun.Prm{N: "mus", V: 100.0},
		&fun.Prm{N: "g", V: 0.0},
	})

	cfg := oneLayerCfg(m.Mus, m.Mua, m.G, 1, 1.0)
	sim := New(cfg)
	w := sim.newWorker(sim.Res, 1)
	w.ph.CurrLayer = 1
	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		w.ph.Sleft = 0
		w.setStepSize()
		sum += w.ph.S
	}
	mean := sum / float64(n)
	io.Pforan("mean step = %v  1/mut = %v\n", mean, m.MeanFreePath())
	chk.Scalar(tst, "mean step", 0.02*m.MeanFreePath(), mean, m.MeanFreePath())

	// the unspent optical depth survives a boundary hit
	mut := m.Mua + m.Mus
	w.ph.X, w.ph.Y, w.ph.Z = 0, 0, 0.95
	w.ph.Ux, w.ph.Uy, w.ph.Uz = 0, 0, 1
	w.ph.S = 0.2
	w.ph.Sleft = 0
	hit := w.hitBoundary()
	if hit != HitLayerBdry {
		tst.Errorf("expected a layer hit, got %v\n", hit)
		return
	}
	chk.Scalar(tst, "cut step", 1e-12, w.ph.S, 0.05)
	chk.Scalar(tst, "sleft", 1e-12, w.ph.Sleft, 0.15*mut)
	if !w.ph.HitBdry {
		tst.Errorf("hit flag must be set\n")
		return
	}

	// the remainder resumes as a plain geometric step
	w.setStepSize()
	chk.Scalar(tst, "resumed step", 1e-12, w.ph.S, 0.15)
	chk.Scalar(tst, "sleft cleared", 1e-15, w.ph.Sleft, 0)
}

func Test_step02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step02. ellipsoid boundary arbitration")

	cfg := oneLayerCfg(100, 1, 0.9, 0.1, 1.4)
	cfg.Tis.Layers = append(cfg.Tis.Layers, inp.LayerSpec{N: 1.4, Mus: 100, Mua: 1, G: 0.9, D: 0})
	cfg.Tis.Ellip = true
	cfg.Tis.EllipX, cfg.Tis.EllipY, cfg.Tis.EllipZ = 0, 0, 0.05
	cfg.Tis.EllipRx, cfg.Tis.EllipRy, cfg.Tis.EllipRz = 0.02, 0.02, 0.02
	sim := New(cfg)
	w := sim.newWorker(sim.Res, 1)

	// entering: the step is cut at the near surface
	w.ph.X, w.ph.Y, w.ph.Z = 0, 0, 0
	w.ph.Ux, w.ph.Uy, w.ph.Uz = 0, 0, 1
	w.ph.CurrLayer = 1
	w.ph.S = 0.09
	hit := w.hitBoundary()
	if hit != HitEllipEnter {
		tst.Errorf("expected an entering hit, got %v\n", hit)
		return
	}
	chk.Scalar(tst, "enter distance", 1e-10, w.ph.S, 0.03)

	// exiting: a segment from inside is cut at the far surface
	w.ph.X, w.ph.Y, w.ph.Z = 0, 0, 0.04
	w.ph.Ux, w.ph.Uy, w.ph.Uz = 0, 0, 1
	w.ph.CurrLayer = sim.Tis.EllipLayer
	w.ph.S = 0.05
	w.ph.Sleft = 0
	hit = w.hitBoundary()
	if hit != HitEllipExit {
		tst.Errorf("expected an exiting hit, got %v\n", hit)
		return
	}
	chk.Scalar(tst, "exit distance", 1e-10, w.ph.S, 0.03)

	// interior: both endpoints inside leave the step alone
	w.ph.X, w.ph.Y, w.ph.Z = 0, 0, 0.045
	w.ph.CurrLayer = sim.Tis.EllipLayer
	w.ph.S = 0.005
	w.ph.Sleft = 0
	w.ph.HitBdry = false
	hit = w.hitBoundary()
	if hit != HitEllipInterior {
		tst.Errorf("expected an interior step, got %v\n", hit)
		return
	}
	chk.Scalar(tst, "interior step", 1e-15, w.ph.S, 0.005)
	if w.ph.HitBdry {
		tst.Errorf("interior steps are not boundary hits\n")
		return
	}

	// the index toggles at the surface without Fresnel
	w.ph.CurrLayer = 1
	w.crossEllip()
	chk.IntAssert(w.ph.CurrLayer, sim.Tis.EllipLayer)
	w.crossEllip()
	chk.IntAssert(w.ph.CurrLayer, 1)
}

func Test_launch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("launch01. pencil beam with zero aperture")

	cfg := oneLayerCfg(100, 1, 0.9, 0.1, 1.4)
	cfg.Src.BeamRadius = 0
	cfg.Src.NA = 0
	sim := New(cfg)
	w := sim.newWorker(sim.Res, 1)
	w.launch()

	chk.Scalar(tst, "x", 1e-15, w.ph.X, 0)
	chk.Scalar(tst, "y", 1e-15, w.ph.Y, 0)
	chk.Scalar(tst, "z", 1e-15, w.ph.Z, 0)
	chk.Scalar(tst, "ux", 1e-15, w.ph.Ux, 0)
	chk.Scalar(tst, "uy", 1e-15, w.ph.Uy, 0)
	chk.Scalar(tst, "uz", 1e-15, w.ph.Uz, 1)
	chk.Scalar(tst, "Rspec", 1e-12, w.ph.Rspec, (0.4/2.4)*(0.4/2.4))
	chk.Scalar(tst, "weight", 1e-12, w.ph.W, 1-(0.4/2.4)*(0.4/2.4))
	chk.IntAssert(w.hist.Npts, 1)
	chk.Scalar(tst, "history source z", 1e-15, w.hist.Z[0], 0)
}

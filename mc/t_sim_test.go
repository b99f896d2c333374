// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/inp"
)

// twoLayerCfg builds the two-layer benchmark configuration
func twoLayerCfg(nphot int) *inp.Simulation {
	cfg := new(inp.Simulation)
	cfg.SetDefault()
	cfg.FnKey = "bench"
	cfg.Src = inp.Source{Beam: inp.FlatBeam, NumPhotons: nphot, RectHalfY: 4}
	cfg.Det = inp.Detector{
		Nr: 10, Dr: 0.01, Nz: 10, Dz: 0.01, Na: 1,
		Nt: 20, Dt: 5, Nx: 10, Dx: 0.01, Ny: 10, Dy: 0.01,
		NumDet: 1, DetCtr: []float64{0.05}, DetRad: 0.01, Reflect: true,
	}
	cfg.Tis = inp.TissueSpec{
		NAbove: 1.0, NBelow: 1.0,
		Layers: []inp.LayerSpec{
			{N: 1.4, Mus: 100, Mua: 1, G: 0.9, D: 0.1},
			{N: 1.4, Mus: 10, Mua: 0.1, G: 0.9, D: 0.2},
		},
	}
	cfg.PostProcess()
	return cfg
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. two-layer slab: energy bookkeeping")

	N := 2000
	sim := New(twoLayerCfg(N))
	sim.Run()
	sim.Normalize()
	res := sim.Res

	io.Pforan("Rspec=%v Rd=%v Td=%v Atot=%v\n", res.Rspec, res.Rd, res.Td, res.Atot)
	chk.Scalar(tst, "Rspec", 1e-4, res.Rspec, 0.0278)

	// every unit of launched weight is either absorbed or escapes
	total := res.Rspec + res.Rd + res.Td + res.Atot
	chk.Scalar(tst, "energy conservation", 1e-9, total, 1.0)

	// the layer absorptions sum to the total
	sumA := 0.0
	for i := 1; i <= sim.Tis.NumLay; i++ {
		sumA += res.ALayer[i]
	}
	chk.Scalar(tst, "layer absorption sum", 1e-12, sumA, res.Atot)

	// the thin absorbing top layer dominates the weak deep one
	if res.ALayer[1] <= res.ALayer[2] {
		tst.Errorf("A(layer1)=%v must exceed A(layer2)=%v\n", res.ALayer[1], res.ALayer[2])
		return
	}

	// every photon ends on one of the slab faces
	chk.IntAssert(res.TotOutTop+res.TotOutBot+res.NumHistFull, N)

	// the banana records one top entry per photon at the launch weight
	sumIn := 0.0
	for ix := 0; ix < res.Bx; ix++ {
		for iy := 0; iy < res.By; iy++ {
			sumIn += res.InSide[0][ix][iy][0]
		}
	}
	chk.Scalar(tst, "banana top inbound", 1e-8, sumIn, float64(N)*(1-res.Rspec))
	chk.IntAssert(res.BananaPhotons, N)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. marginal identities after normalization")

	cfg := twoLayerCfg(1500)
	cfg.Det.Na = 3
	cfg.PostProcess()
	sim := New(cfg)
	sim.Run()
	sim.Normalize()
	res := sim.Res
	det := &cfg.Det

	// R(r) recovered from R(r,a) by integrating over the solid angle
	for ir := 0; ir < det.Nr; ir++ {
		sum := 0.0
		for ia := 0; ia < det.Na; ia++ {
			sum += res.RRa[ir][ia] * 2 * math.Pi * math.Sin((float64(ia)+0.5)*det.Da) * det.Da
		}
		chk.Scalar(tst, io.Sf("R(r) marginal ir=%d", ir), 1e-10*(1+res.RR[ir]), sum, res.RR[ir])
	}

	// A(z) recovered from A(r,z) by integrating over the annuli
	for iz := 0; iz < det.Nz; iz++ {
		sum := 0.0
		for ir := 0; ir < det.Nr; ir++ {
			sum += res.ARz[ir][iz] * 2 * math.Pi * (float64(ir) + 0.5) * det.Dr * det.Dr
		}
		chk.Scalar(tst, io.Sf("A(z) marginal iz=%d", iz), 1e-10*(1+res.AZ[iz]), sum, res.AZ[iz])
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. fixed seed reproducibility")

	run := func() *Results {
		sim := New(twoLayerCfg(800))
		sim.Run()
		sim.Normalize()
		return sim.Res
	}
	a := run()
	b := run()
	chk.Scalar(tst, "Rd", 1e-17, a.Rd, b.Rd)
	chk.Scalar(tst, "Td", 1e-17, a.Td, b.Td)
	chk.Scalar(tst, "Atot", 1e-17, a.Atot, b.Atot)
	chk.Vector(tst, "R(r)", 1e-17, a.RR, b.RR)
	for ix := 0; ix < a.Bx; ix++ {
		chk.Vector(tst, io.Sf("banana in top ix=%d", ix), 1e-17, a.InSide[0][ix][0], b.InSide[0][ix][0])
	}

	runc := func() *Results {
		sim := New(twoLayerCfg(800))
		sim.RunConcurrent(3)
		sim.Normalize()
		return sim.Res
	}
	c := runc()
	d := runc()
	chk.Scalar(tst, "concurrent Rd", 1e-17, c.Rd, d.Rd)
	chk.Scalar(tst, "concurrent Atot", 1e-17, c.Atot, d.Atot)
	chk.Vector(tst, "concurrent R(r)", 1e-17, c.RR, d.RR)

	// the shards cover all photons exactly once
	chk.IntAssert(c.BananaPhotons, 800)
}

func Test_run04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run04. matched-index ellipsoid leaves transport unchanged")

	base := func() *inp.Simulation {
		cfg := new(inp.Simulation)
		cfg.SetDefault()
		cfg.FnKey = "ellip"
		cfg.Src = inp.Source{Beam: inp.FlatBeam, NumPhotons: 600, RectHalfY: 4}
		cfg.Det = inp.Detector{
			Nr: 10, Dr: 0.01, Nz: 10, Dz: 0.01, Na: 1,
			Nt: 20, Dt: 5, Nx: 10, Dx: 0.01, Ny: 10, Dy: 0.01,
			NumDet: 1, DetCtr: []float64{0.05}, DetRad: 0.01, Reflect: true,
		}
		cfg.Tis = inp.TissueSpec{
			NAbove: 1.0, NBelow: 1.0,
			Layers: []inp.LayerSpec{{N: 1.4, Mus: 30, Mua: 0.5, G: 0.0, D: 0.1}},
		}
		return cfg
	}

	homog := base()
	homog.PostProcess()
	sh := New(homog)
	sh.Run()
	sh.Normalize()

	ellip := base()
	ellip.Tis.Layers = append(ellip.Tis.Layers,
		inp.LayerSpec{N: 1.4, Mus: 30, Mua: 0.5, G: 0.0, D: 0})
	ellip.Tis.Ellip = true
	ellip.Tis.EllipX, ellip.Tis.EllipY, ellip.Tis.EllipZ = 0, 0, 0.05
	ellip.Tis.EllipRx, ellip.Tis.EllipRy, ellip.Tis.EllipRz = 0.02, 0.02, 0.02
	ellip.PostProcess()
	se := New(ellip)
	se.Run()
	se.Normalize()

	io.Pforan("homog: Rd=%v Td=%v  ellip: Rd=%v Td=%v\n", sh.Res.Rd, sh.Res.Td, se.Res.Rd, se.Res.Td)
	chk.Scalar(tst, "Rd", 5e-3, se.Res.Rd, sh.Res.Rd)
	chk.Scalar(tst, "Td", 5e-3, se.Res.Td, sh.Res.Td)
	chk.Scalar(tst, "Atot", 5e-3, se.Res.Atot, sh.Res.Atot)
}

func Test_run05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run05. analog weighting conserves energy")

	cfg := twoLayerCfg(1000)
	cfg.Analog = true
	sim := New(cfg)
	sim.Run()
	sim.Normalize()
	res := sim.Res

	total := res.Rspec + res.Rd + res.Td + res.Atot
	io.Pforan("analog: Rd=%v Td=%v Atot=%v total=%v\n", res.Rd, res.Td, res.Atot, total)
	chk.Scalar(tst, "energy conservation", 1e-9, total, 1.0)
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_ellip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ellip01. point classification")

	e := Ellipsoid{X: 0, Y: 0, Z: 0.5, Rx: 0.1, Ry: 0.2, Rz: 0.1}
	if loc := e.Locate(0, 0, 0.5); loc != Inside {
		tst.Errorf("center must be inside: %v\n", loc)
		return
	}
	if loc := e.Locate(0.1, 0, 0.5); loc != OnSurface {
		tst.Errorf("(ex+rx,ey,ez) must be on the surface: %v\n", loc)
		return
	}
	if loc := e.Locate(0.2, 0, 0.5); loc != Outside {
		tst.Errorf("far point must be outside: %v\n", loc)
		return
	}

	none := Ellipsoid{Rx: 0, Ry: 0.1, Rz: 0.1}
	if loc := none.Locate(0, 0, 0); loc != Absent {
		tst.Errorf("zero radius must report absent: %v\n", loc)
	}
}

func Test_ellip02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ellip02. segment roots")

	e := Ellipsoid{X: 0, Y: 0, Z: 0, Rx: 0.5, Ry: 0.5, Rz: 0.5}

	// through: entry at -rx and exit at +rx give roots 0.25 and 0.75
	root, nroots, ok := e.SegmentRoot(-1, 0, 0, 1, 0, 0, Outside)
	io.Pforan("root=%v nroots=%v\n", root, nroots)
	if !ok {
		tst.Errorf("through segment must intersect\n")
		return
	}
	chk.IntAssert(nroots, 2)
	chk.Float64(tst, "nearest root", 1e-14, root, 0.25)

	// start on the surface: the farther root is the admissible one
	root, nroots, ok = e.SegmentRoot(-0.5, 0, 0, 1.5, 0, 0, OnSurface)
	if !ok {
		tst.Errorf("exiting segment must intersect\n")
		return
	}
	chk.Float64(tst, "farther root", 1e-14, root, 0.5)

	// single root indistinguishable from the start is discarded
	_, _, ok = e.SegmentRoot(0.5, 0, 0, 0.5+1e-13, 0, 0, OnSurface)
	if ok {
		tst.Errorf("degenerate on-surface root must be discarded\n")
		return
	}

	// miss
	_, _, ok = e.SegmentRoot(-1, 2, 0, 1, 2, 0, Outside)
	if ok {
		tst.Errorf("missing segment must not intersect\n")
	}
}

func Test_plane01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plane01. ray-plane parameter")

	s, ok := RayPlane(0.2, 0.8, 0.5)
	if !ok {
		tst.Errorf("crossing segment must hit the plane\n")
		return
	}
	chk.Float64(tst, "s", 1e-15, s, 0.5)

	if _, ok := RayPlane(0.2, 0.4, 0.5); ok {
		tst.Errorf("short segment must miss the plane\n")
		return
	}
	if _, ok := RayPlane(0.5, 0.5, 0.5); ok {
		tst.Errorf("degenerate segment must miss the plane\n")
	}
}

func Test_slab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slab01. segment-slab pathlengths")

	// both inside
	din, dout := SegmentSlabDist(0, 0, 0.2, 0, 0, 0.6, 0, 1)
	chk.Float64(tst, "din both", 1e-15, din, 0.4)
	chk.Float64(tst, "dout both", 1e-15, dout, 0)

	// entering from above
	din, dout = SegmentSlabDist(0, 0, -0.5, 0, 0, 0.5, 0, 1)
	chk.Float64(tst, "din enter", 1e-15, din, 0.5)
	chk.Float64(tst, "dout enter", 1e-15, dout, 0.5)

	// exiting through the bottom
	din, dout = SegmentSlabDist(0, 0, 0.75, 0, 0, 1.25, 0, 1)
	chk.Float64(tst, "din exit", 1e-15, din, 0.25)
	chk.Float64(tst, "dout exit", 1e-15, dout, 0.25)

	// straight through
	din, dout = SegmentSlabDist(0, 0, -1, 0, 0, 2, 0, 1)
	chk.Float64(tst, "din through", 1e-15, din, 1)
	chk.Float64(tst, "dout through", 1e-15, dout, 2)

	// no intersection
	din, dout = SegmentSlabDist(0, 0, -2, 0, 0, -1, 0, 1)
	chk.Float64(tst, "din miss", 1e-15, din, 0)
	chk.Float64(tst, "dout miss", 1e-15, dout, 1)
}

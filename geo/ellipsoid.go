// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the ray intersection primitives of the transport kernel
package geo

import "math"

// PointLoc classifies a point against an ellipsoid surface
type PointLoc int

const (
	// Outside means the quadratic form exceeds 1
	Outside PointLoc = iota

	// Inside means the quadratic form is below 1
	Inside

	// OnSurface means the quadratic form equals 1 within SurfTol
	OnSurface

	// Absent means the ellipsoid does not exist (some radius is zero)
	Absent
)

const (
	// SurfTol is the classification band around the unit quadratic form
	SurfTol = 1e-11

	// RootTol rejects intersection roots indistinguishable from the segment start
	RootTol = 1e-10
)

// Ellipsoid is an axis-aligned ellipsoid given by center and radii
type Ellipsoid struct {
	X, Y, Z    float64 // center
	Rx, Ry, Rz float64 // radii
}

// Present tells whether the ellipsoid exists; any zero radius makes it absent
func (o Ellipsoid) Present() bool {
	return o.Rx != 0 && o.Ry != 0 && o.Rz != 0
}

// Locate classifies point (x,y,z) against the surface
func (o Ellipsoid) Locate(x, y, z float64) PointLoc {
	if !o.Present() {
		return Absent
	}
	q := (x-o.X)*(x-o.X)/(o.Rx*o.Rx) +
		(y-o.Y)*(y-o.Y)/(o.Ry*o.Ry) +
		(z-o.Z)*(z-o.Z)/(o.Rz*o.Rz)
	if q < 1.0-SurfTol {
		return Inside
	}
	if q > 1.0+SurfTol {
		return Outside
	}
	return OnSurface
}

// SegmentRoot intersects segment p1→p2 with the surface and returns the
// admissible parameter in (0,1). nroots counts the real roots inside (0,1).
// The tie-break table follows the transport kernel:
//   - a single root with the start on the surface and |root| < RootTol is
//     discarded (the segment is already on the surface);
//   - with two roots, the nearer is chosen unless the start is on the
//     surface, in which case the farther one is (the segment is exiting).
func (o Ellipsoid) SegmentRoot(x1, y1, z1, x2, y2, z2 float64, start PointLoc) (root float64, nroots int, ok bool) {
	if !o.Present() {
		return
	}
	A := (x2-x1)*(x2-x1)/(o.Rx*o.Rx) +
		(y2-y1)*(y2-y1)/(o.Ry*o.Ry) +
		(z2-z1)*(z2-z1)/(o.Rz*o.Rz)
	B := 2*(x2-x1)*(x1-o.X)/(o.Rx*o.Rx) +
		2*(y2-y1)*(y1-o.Y)/(o.Ry*o.Ry) +
		2*(z2-z1)*(z1-o.Z)/(o.Rz*o.Rz)
	C := (x1-o.X)*(x1-o.X)/(o.Rx*o.Rx) +
		(y1-o.Y)*(y1-o.Y)/(o.Ry*o.Ry) +
		(z1-o.Z)*(z1-o.Z)/(o.Rz*o.Rz) - 1.0
	disc := B*B - 4*A*C
	if disc <= 0 {
		return // imaginary roots: no intersection
	}
	sq := math.Sqrt(disc)
	root1 := (-B - sq) / (2 * A)
	root2 := (-B + sq) / (2 * A)
	if root1 > 0 && root1 < 1 {
		nroots++
		root = root1
	}
	if root2 > 0 && root2 < 1 {
		nroots++
		root = root2
	}
	switch nroots {
	case 0:
		return
	case 1:
		if start == OnSurface && math.Abs(root) < RootTol {
			return 0, nroots, false
		}
		return root, nroots, true
	}
	if start == OnSurface {
		root = math.Max(root1, root2)
	} else {
		root = math.Min(root1, root2)
	}
	return root, nroots, true
}

// SegmentDist returns the in/out pathlengths of segment p1→p2 with respect
// to the ellipsoid interior. An absent ellipsoid counts as whole space.
func (o Ellipsoid) SegmentDist(x1, y1, z1, x2, y2, z2 float64) (din, dout float64) {
	dist := math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2) + (z1-z2)*(z1-z2))
	one := o.Locate(x1, y1, z1)
	two := o.Locate(x2, y2, z2)
	if one == Absent {
		return dist, 0
	}
	if one != Outside && two != Outside {
		return dist, 0
	}
	A := (x2-x1)*(x2-x1)/(o.Rx*o.Rx) +
		(y2-y1)*(y2-y1)/(o.Ry*o.Ry) +
		(z2-z1)*(z2-z1)/(o.Rz*o.Rz)
	B := 2*(x2-x1)*(x1-o.X)/(o.Rx*o.Rx) +
		2*(y2-y1)*(y1-o.Y)/(o.Ry*o.Ry) +
		2*(z2-z1)*(z1-o.Z)/(o.Rz*o.Rz)
	C := (x1-o.X)*(x1-o.X)/(o.Rx*o.Rx) +
		(y1-o.Y)*(y1-o.Y)/(o.Ry*o.Ry) +
		(z1-o.Z)*(z1-o.Z)/(o.Rz*o.Rz) - 1.0
	disc := B*B - 4*A*C
	if disc <= 0 {
		return 0, dist
	}
	sq := math.Sqrt(disc)
	root1 := (-B - sq) / (2 * A)
	root2 := (-B + sq) / (2 * A)
	var roots []float64
	if root1 > 0 && root1 < 1 {
		roots = append(roots, root1)
	}
	if root2 > 0 && root2 < 1 {
		roots = append(roots, root2)
	}
	switch len(roots) {
	case 1:
		r := roots[0]
		if one == Inside { // exiting
			din = r * dist
		} else { // entering
			din = (1 - r) * dist
		}
	case 2:
		din = math.Abs(root2-root1) * dist
	}
	return din, dist - din
}

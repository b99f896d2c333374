// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// RayPlane returns the parameter s in (0,1] at which the segment from z1 to
// z2 crosses the horizontal plane z = zp
func RayPlane(z1, z2, zp float64) (s float64, ok bool) {
	if z2 == z1 {
		return
	}
	s = (zp - z1) / (z2 - z1)
	if s > 0 && s <= 1 {
		return s, true
	}
	return 0, false
}

// SegmentSlabDist returns the in/out pathlengths of segment p1→p2 with
// respect to the horizontal slab zmin ≤ z ≤ zmax
func SegmentSlabDist(x1, y1, z1, x2, y2, z2, zmin, zmax float64) (din, dout float64) {
	dist := math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2) + (z1-z2)*(z1-z2))
	in := 0
	if z1 >= zmin && z1 <= zmax {
		in += 1
	}
	if z2 >= zmin && z2 <= zmax {
		in += 2
	}
	frac := func(r float64) float64 { return math.Abs(r) * dist }
	switch in {
	case 3: // both in
		return dist, 0
	case 2: // crossing into the slab
		var r float64
		if z1 < zmin {
			r = (zmin - z1) / (z2 - z1)
		} else {
			r = (zmax - z1) / (z2 - z1)
		}
		din = frac(1 - r)
	case 1: // crossing out of the slab
		var r float64
		if z2 < zmin {
			r = (zmin - z1) / (z2 - z1)
		} else {
			r = (zmax - z1) / (z2 - z1)
		}
		din = frac(r)
	case 0: // possibly through the slab
		if (z1 < zmin && z2 > zmax) || (z1 > zmax && z2 < zmin) {
			var r1, r2 float64
			if z1 < zmin {
				r1 = (zmin - z1) / (z2 - z1)
				r2 = (zmax - z1) / (z2 - z1)
			} else {
				r1 = (zmax - z1) / (z2 - z1)
				r2 = (zmin - z1) / (z2 - z1)
			}
			din = frac(r2 - r1)
		}
	}
	return din, dist - din
}

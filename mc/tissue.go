// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mc implements the photon transport kernel, its tallies and the
// voxel banana accumulator
package mc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomc/geo"
	"github.com/cpmech/gomc/inp"
)

// Layer holds the derived optical data of one slab
type Layer struct {
	N      float64 // refractive index
	Mua    float64 // absorption coefficient
	Mus    float64 // scattering coefficient
	G      float64 // anisotropy
	D      float64 // thickness
	Albedo float64 // mus/(mua+mus)
	Zbegin float64
	Zend   float64
}

// Tissue holds the finalized layer stack and the optional ellipsoid.
// Layers[0] and Layers[NumLay+1] are the outside media, used only for
// Fresnel computations at the top and bottom surfaces.
type Tissue struct {
	Layers  []Layer
	NumLay  int
	Zmax    float64 // bottom of the transport slab
	Ellip   geo.Ellipsoid
	EllipOn bool
	EllipLayer int // pseudo-layer index carrying the ellipsoid optics
	EllipHost  int // real layer hosting the ellipsoid

	// perturbation definition (post-processing data only)
	Perturb   inp.PerturbMode
	LayerZmin float64
	LayerZmax float64
}

// NewTissue builds the stack from the input specification
func NewTissue(ts *inp.TissueSpec) (o *Tissue) {
	L := len(ts.Layers)
	if L < 1 {
		chk.Panic("tissue: at least one layer is required")
	}
	o = &Tissue{NumLay: L}
	o.Layers = make([]Layer, L+2)
	o.Layers[0].N = ts.NAbove
	for i := 1; i <= L; i++ {
		s := ts.Layers[i-1]
		lay := Layer{N: s.N, Mua: s.Mua, Mus: s.Mus, G: s.G, D: s.D}
		lay.Albedo = s.Mus / (s.Mus + s.Mua)
		lay.Zbegin = o.Layers[i-1].Zend
		lay.Zend = lay.Zbegin + s.D
		o.Layers[i] = lay
	}
	o.Zmax = o.Layers[L].Zend
	o.Layers[L+1].N = ts.NBelow
	o.Layers[L+1].Zbegin = o.Zmax
	o.Layers[L+1].Zend = o.Zmax

	// perturbation data
	o.Perturb = ts.Perturb
	o.LayerZmin = ts.LayerZmin
	o.LayerZmax = ts.LayerZmax

	// ellipsoid; a zero radius makes it absent and the geometry is skipped
	o.Ellip = geo.Ellipsoid{X: ts.EllipX, Y: ts.EllipY, Z: ts.EllipZ,
		Rx: ts.EllipRx, Ry: ts.EllipRy, Rz: ts.EllipRz}
	o.EllipOn = ts.Ellip && o.Ellip.Present()
	if o.EllipOn {
		// the second deck layer carries the ellipsoid optics; the real
		// slab is the first layer alone
		if L < 2 {
			chk.Panic("tissue: ellipsoid geometry needs a second layer entry with the ellipsoid optics")
		}
		o.EllipLayer = 2
		o.EllipHost = 1
		o.Zmax = o.Layers[1].Zend
	}
	return
}

// BottomLay returns the index of the layer whose lower face is the slab exit
func (o *Tissue) BottomLay() int {
	if o.EllipOn {
		return o.EllipHost
	}
	return o.NumLay
}

// LayerAt locates z in the stack by linear search; ties at an interface
// resolve to the lower-indexed layer
func (o *Tissue) LayerAt(z float64) int {
	for i := 1; i <= o.NumLay; i++ {
		if z <= o.Layers[i].Zend {
			return i
		}
	}
	return o.NumLay
}

// PlanesOf maps a transport layer index to the layer owning the bounding
// planes: inside the ellipsoid, the host layer's planes apply
func (o *Tissue) PlanesOf(idx int) int {
	if o.EllipOn && idx == o.EllipLayer {
		return o.EllipHost
	}
	return idx
}

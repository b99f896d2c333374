// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

// Photon is the live packet state
type Photon struct {
	X, Y, Z    float64 // position
	Ux, Uy, Uz float64 // direction cosines, |u| = 1
	W          float64 // weight
	S          float64 // current step length
	Sleft      float64 // remaining optical depth after a boundary hit
	Rspec      float64 // specular reflectance taken at launch
	CurrLayer  int
	Dead       bool
	HitBdry    bool // the current step was terminated by a boundary
}

// HistMax bounds the number of vertices recorded per photon
const HistMax = 300000

// History records the polyline of one photon: one vertex per step endpoint
// plus the source point
type History struct {
	X, Y, Z    []float64
	Ux, Uy, Uz []float64
	W          []float64
	PathLen    []float64 // Euclidean distance from the previous vertex
	BdryCol    []int     // 1 if the vertex ends a boundary-terminated step
	Npts       int
	CumPathLen float64
}

// NewHistory allocates the vertex buffers once; Reset reuses them per photon
func NewHistory() (o *History) {
	o = new(History)
	o.X = make([]float64, HistMax)
	o.Y = make([]float64, HistMax)
	o.Z = make([]float64, HistMax)
	o.Ux = make([]float64, HistMax)
	o.Uy = make([]float64, HistMax)
	o.Uz = make([]float64, HistMax)
	o.W = make([]float64, HistMax)
	o.PathLen = make([]float64, HistMax)
	o.BdryCol = make([]int, HistMax)
	return
}

// Reset starts recording at the source vertex
func (o *History) Reset(ph *Photon) {
	o.Npts = 1
	o.X[0] = ph.X
	o.Y[0] = ph.Y
	o.Z[0] = ph.Z
	o.Ux[0] = ph.Ux
	o.Uy[0] = ph.Uy
	o.Uz[0] = ph.Uz
	o.W[0] = ph.W
	o.PathLen[0] = 0
	o.BdryCol[0] = 0
	o.CumPathLen = 0
}

// Full tells whether the next few appends would overrun the buffers
func (o *History) Full() bool {
	return o.Npts >= HistMax-4
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gomc/inp"
)

// NumSides is the number of faces of a voxel
const NumSides = 6

// Results holds every tally of one run. During the photon loop only the
// owning worker writes to an instance; shadow copies are reduced with Add.
type Results struct {

	// dimensions
	Nr, Nz, Na, Nt, Nx, Ny int
	NumLay                 int

	// scalars
	Rspec float64
	Rd    float64
	Rtot  float64
	Td    float64
	Atot  float64

	// absorption and fluence
	ARz    [][]float64 // [nr][nz]
	AZ     []float64
	ALayer []float64 // [0..NumLay+1]
	FluRz  [][]float64
	FluZ   []float64

	// reflectance and transmittance
	RRa [][]float64 // [nr][na]
	RR  []float64
	RR2 []float64 // second moment of R(r) contributions
	RA  []float64
	RRt [][]float64 // [nr][nt]
	RXy [][]float64 // [2nx+1][2ny+1]
	TRa [][]float64
	TR  []float64
	TA  []float64

	// voxel banana: [side][ix][iy][iz], side 0=top(-z) 1=+y 2=-x 3=-y 4=+x 5=bottom(+z)
	Bx, By, Bz    int
	InSide        [][][][]float64
	OutSide       [][][][]float64
	BananaPhotons int

	// per-layer path statistics
	PathLenInLayer []float64
	ColInLayer     []int

	// exit bookkeeping
	TotOutTop  int
	TotOutBot  int
	NumWritten []float64 // per perturbation detector

	// degenerate-event counters
	NumHistFull    int
	NumBananaAbort int
}

// NewResults allocates zeroed tallies for the given grid and stack
func NewResults(det *inp.Detector, tis *Tissue) (o *Results) {
	o = &Results{
		Nr: det.Nr, Nz: det.Nz, Na: det.Na, Nt: det.Nt, Nx: det.Nx, Ny: det.Ny,
		NumLay: tis.NumLay,
	}
	o.ARz = la.MatAlloc(det.Nr, det.Nz)
	o.AZ = make([]float64, det.Nz)
	o.ALayer = make([]float64, tis.NumLay+2)
	o.FluRz = la.MatAlloc(det.Nr, det.Nz)
	o.FluZ = make([]float64, det.Nz)
	o.RRa = la.MatAlloc(det.Nr, det.Na)
	o.RR = make([]float64, det.Nr)
	o.RR2 = make([]float64, det.Nr)
	o.RA = make([]float64, det.Na)
	o.RRt = la.MatAlloc(det.Nr, det.Nt)
	o.RXy = la.MatAlloc(2*det.Nx+1, 2*det.Ny+1)
	o.TRa = la.MatAlloc(det.Nr, det.Na)
	o.TR = make([]float64, det.Nr)
	o.TA = make([]float64, det.Na)
	o.Bx = 2*det.Nr + 1
	o.By = 1
	o.Bz = det.Nz
	o.InSide = utl.Deep4alloc(NumSides, o.Bx, o.By, o.Bz)
	o.OutSide = utl.Deep4alloc(NumSides, o.Bx, o.By, o.Bz)
	o.PathLenInLayer = make([]float64, tis.NumLay+2)
	o.ColInLayer = make([]int, tis.NumLay+2)
	o.NumWritten = make([]float64, det.NumDet)
	return
}

// Add accumulates the raw tallies of a shadow copy into this one
func (o *Results) Add(r *Results) {
	for i := 0; i < o.Nr; i++ {
		for j := 0; j < o.Nz; j++ {
			o.ARz[i][j] += r.ARz[i][j]
			o.FluRz[i][j] += r.FluRz[i][j]
		}
		for j := 0; j < o.Na; j++ {
			o.RRa[i][j] += r.RRa[i][j]
			o.TRa[i][j] += r.TRa[i][j]
		}
		for j := 0; j < o.Nt; j++ {
			o.RRt[i][j] += r.RRt[i][j]
		}
		o.RR[i] += r.RR[i]
		o.RR2[i] += r.RR2[i]
		o.TR[i] += r.TR[i]
	}
	for j := 0; j < o.Nz; j++ {
		o.AZ[j] += r.AZ[j]
		o.FluZ[j] += r.FluZ[j]
	}
	for j := 0; j < o.Na; j++ {
		o.RA[j] += r.RA[j]
		o.TA[j] += r.TA[j]
	}
	for i := range o.RXy {
		for j := range o.RXy[i] {
			o.RXy[i][j] += r.RXy[i][j]
		}
	}
	for i := range o.ALayer {
		o.ALayer[i] += r.ALayer[i]
		o.PathLenInLayer[i] += r.PathLenInLayer[i]
		o.ColInLayer[i] += r.ColInLayer[i]
	}
	for w := 0; w < NumSides; w++ {
		for i := 0; i < o.Bx; i++ {
			for j := 0; j < o.By; j++ {
				for k := 0; k < o.Bz; k++ {
					o.InSide[w][i][j][k] += r.InSide[w][i][j][k]
					o.OutSide[w][i][j][k] += r.OutSide[w][i][j][k]
				}
			}
		}
	}
	for i := range o.NumWritten {
		o.NumWritten[i] += r.NumWritten[i]
	}
	o.BananaPhotons += r.BananaPhotons
	o.TotOutTop += r.TotOutTop
	o.TotOutBot += r.TotOutBot
	o.NumHistFull += r.NumHistFull
	o.NumBananaAbort += r.NumBananaAbort
}

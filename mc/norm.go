// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize converts the raw tallies into physical quantities: marginals
// are generated first, then every bin is scaled by its geometric measure
// and the photon count. Call exactly once, after the photon loop.
func (o *Simulation) Normalize() {
	res := o.Res
	det := &o.Cfg.Det
	nphot := float64(o.Cfg.Src.NumPhotons)
	nr, na, nz, nt := det.Nr, det.Na, det.Nz, det.Nt
	dr, da, dz := det.Dr, det.Da, det.Dz

	// totals and marginals from the raw angular tallies
	sumR, sumT := 0.0, 0.0
	for ir := 0; ir < nr; ir++ {
		sumR += floats.Sum(res.RRa[ir])
		sumT += floats.Sum(res.TRa[ir])
		res.RR[ir] = floats.Sum(res.RRa[ir])
		res.TR[ir] = floats.Sum(res.TRa[ir])
	}
	res.Rd = sumR
	res.Td = sumT
	for ia := 0; ia < na; ia++ {
		sR, sT := 0.0, 0.0
		for ir := 0; ir < nr; ir++ {
			sR += res.RRa[ir][ia]
			sT += res.TRa[ir][ia]
		}
		res.RA[ia] = sR
		res.TA[ia] = sT
	}
	for iz := 0; iz < nz; iz++ {
		sA := 0.0
		for ir := 0; ir < nr; ir++ {
			sA += res.ARz[ir][iz]
		}
		res.AZ[iz] = sA
	}

	// scalars
	res.Rd /= nphot
	res.Td /= nphot
	res.Rtot = res.Rd + res.Rspec
	res.Atot = 0.0
	for i := 1; i <= o.Tis.NumLay; i++ {
		res.ALayer[i] /= nphot
		res.Atot += res.ALayer[i]
	}

	// R(r,a), T(r,a)
	c1 := 2.0 * math.Pi * dr * dr * 2.0 * math.Pi * da * nphot
	for ir := 0; ir < nr; ir++ {
		for ia := 0; ia < na; ia++ {
			c2 := c1 * (float64(ir) + 0.5) * math.Sin((float64(ia)+0.5)*da)
			res.RRa[ir][ia] /= c2
			res.TRa[ir][ia] /= c2
		}
	}

	// R(x,y)
	for ix := 0; ix < 2*det.Nx; ix++ {
		for iy := 0; iy < 2*det.Ny; iy++ {
			res.RXy[ix][iy] /= nphot * det.Dx * det.Dy
		}
	}

	// R(r), T(r) and R(r,t)
	for ir := 0; ir < nr; ir++ {
		c := 2.0 * math.Pi * (float64(ir) + 0.5) * dr * dr * nphot
		res.RR[ir] /= c
		res.TR[ir] /= c
		for it := 0; it < nt; it++ {
			res.RRt[ir][it] /= c
		}
	}

	// R(a), T(a)
	for ia := 0; ia < na; ia++ {
		c := 2.0 * math.Pi * math.Sin((float64(ia)+0.5)*da) * da * nphot
		res.RA[ia] /= c
		res.TA[ia] /= c
	}

	// A(r,z) and A(z)
	for ir := 0; ir < nr; ir++ {
		for iz := 0; iz < nz; iz++ {
			c := 2.0 * math.Pi * (float64(ir) + 0.5) * dr * dr * dz * nphot
			res.ARz[ir][iz] /= c
		}
	}
	for iz := 0; iz < nz; iz++ {
		res.AZ[iz] /= dz * nphot
	}

	// fluence from absorption, dividing by the mua of the bin midpoint
	for iz := 0; iz < nz; iz++ {
		ilay := o.layerOfDepthBin(iz)
		mua := o.Tis.Layers[ilay].Mua
		for ir := 0; ir < nr; ir++ {
			res.FluRz[ir][iz] = res.ARz[ir][iz] / mua
		}
		res.FluZ[iz] = res.AZ[iz] / mua
	}
}

// layerOfDepthBin locates the layer containing the midpoint of depth bin iz
func (o *Simulation) layerOfDepthBin(iz int) int {
	z := (float64(iz) + 0.5) * o.Cfg.Det.Dz
	i := 1
	for z >= o.Tis.Layers[i].Zend && i < o.Tis.NumLay {
		i++
	}
	return i
}

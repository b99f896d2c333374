// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements result serialization: the text report, the banana
// face files and the packed photon-exit database
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/mc"
)

// saveFile flushes a buffer to disk
func saveFile(fn string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer fil.Close()
	_, err = buf.WriteTo(fil)
	return
}

// WriteReport writes the <fnkey>.txt result report into dirout
func WriteReport(dirout string, sim *mc.Simulation) (err error) {
	res := sim.Res
	det := &sim.Cfg.Det
	tis := sim.Tis
	nr, na, nz, nt := det.Nr, det.Na, det.Nz, det.Nt
	dr, da, dz, dt := det.Dr, det.Da, det.Dz, det.Dt
	nx, ny := float64(det.Nx), float64(det.Ny)
	dx, dy := det.Dx, det.Dy

	var b bytes.Buffer

	// input summary
	io.Ff(&b, "Input tissue parameters\n")
	io.Ff(&b, "Number of layers: %d\n", tis.NumLay)
	io.Ff(&b, "layer\tn\tmus\tg\tmua\tthickness (cm)\n")
	for i := 1; i <= tis.NumLay; i++ {
		lay := tis.Layers[i]
		io.Ff(&b, "%d\t", i)
		io.Ff(&b, "%G\t", lay.N)
		io.Ff(&b, "%G\t", lay.Mus)
		io.Ff(&b, "%G\t", lay.G)
		io.Ff(&b, "%G\t", lay.Mua)
		io.Ff(&b, "%G\n", lay.D)
	}
	io.Ff(&b, "Input number of photons=%d\n", sim.Cfg.Src.NumPhotons)

	// scalars
	io.Ff(&b, "\n\n\n")
	io.Ff(&b, "Specular reflection   = %12.4E\n", res.Rspec)
	io.Ff(&b, "Diffuse reflection    = %12.4E\n", res.Rd)
	io.Ff(&b, "Total reflection      = %12.4E\n", res.Rtot)
	io.Ff(&b, "Diffuse transmission  = %12.4E\n", res.Td)
	io.Ff(&b, "Total absorption      = %12.4E\n", res.Atot)

	// absorption per layer
	io.Ff(&b, "\n\n")
	io.Ff(&b, "Absorption vs layer\n")
	for i := 1; i <= tis.NumLay; i++ {
		io.Ff(&b, "Layer %d: \t%f\n", i, res.ALayer[i])
	}
	io.Ff(&b, "\n\n")

	// R(r), T(r)
	io.Ff(&b, "Radially resolved reflection and transmission\n")
	io.Ff(&b, "r(cm)\tR(r)[W/cm2]\tT(r)[W/cm2]\n")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t%.4e\t%.4e\n", (float64(ir)+0.5)*dr, res.RR[ir], res.TR[ir])
	}
	io.Ff(&b, "\n\n")

	// R(r,t)
	io.Ff(&b, "Reflection vs r and time [W/cm2/ps]\n")
	io.Ff(&b, "The top row is time (in ps)\n")
	io.Ff(&b, "The first column is radius (in cm)\n")
	io.Ff(&b, "\t\tincreasing time ------->\n")
	io.Ff(&b, "           \t")
	for it := 0; it < nt; it++ {
		io.Ff(&b, "%.4e\t", (float64(it)+0.5)*dt)
	}
	io.Ff(&b, "\n")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t", (float64(ir)+0.5)*dr)
		for it := 0; it < nt; it++ {
			io.Ff(&b, "%.4e\t", res.RRt[ir][it])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "\n\n")

	// R(a), T(a)
	io.Ff(&b, "Angular resolved reflection and transmission\n")
	io.Ff(&b, "a(rad) \t R(a)[W/Sr] \t T(a)[W/Sr]\n")
	for ia := 0; ia < na; ia++ {
		io.Ff(&b, "%.4e\t%.4e\t%.4e\n", (float64(ia)+0.5)*da, res.RA[ia], res.TA[ia])
	}
	io.Ff(&b, "\n\n")

	// R(r,a)
	io.Ff(&b, "Reflection vs r and angle [W/cm2/Sr]\n")
	io.Ff(&b, "The top row is angle (in rad)\n")
	io.Ff(&b, "The first column is radius (in cm)\n")
	io.Ff(&b, "\t\tincreasing angle ------->\n")
	io.Ff(&b, "           \t")
	for ia := 0; ia < na; ia++ {
		io.Ff(&b, "%.4e\t", (float64(ia)+0.5)*da)
	}
	io.Ff(&b, "\n")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t", (float64(ir)+0.5)*dr)
		for ia := 0; ia < na; ia++ {
			io.Ff(&b, "%.4e\t", res.RRa[ir][ia])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "\n\n")

	// T(r,a)
	io.Ff(&b, "Transmission vs r and angle [W/cm2/Sr]\n")
	io.Ff(&b, "The top row is angle (in rad)\n")
	io.Ff(&b, "The first column is radius (in cm)\n")
	io.Ff(&b, "\t\tincreasing angle ------->\n")
	io.Ff(&b, "           \t")
	for ia := 0; ia < na; ia++ {
		io.Ff(&b, "%.4e\t", (float64(ia)+0.5)*da)
	}
	io.Ff(&b, "\n")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t", (float64(ir)+0.5)*dr)
		for ia := 0; ia < na; ia++ {
			io.Ff(&b, "%.4e\t", res.TRa[ir][ia])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "\n\n")

	// Phi(z), A(z)
	io.Ff(&b, "Depth resolved fluence and absorption\n")
	io.Ff(&b, "depth (cm)\tfluence[-]\tabsorption[W/cm]\n")
	for iz := 0; iz < nz; iz++ {
		io.Ff(&b, "%.4e\t%.4e\t%.4e\n", (float64(iz)+0.5)*dz, res.FluZ[iz], res.AZ[iz])
	}
	io.Ff(&b, "\n\n")

	// Phi(r,z)
	io.Ff(&b, "Fluence vs r and z [W/cm2]\n")
	io.Ff(&b, "The top row is radius (in cm)\n")
	io.Ff(&b, "The first column is depth (in cm)\n")
	io.Ff(&b, "\t\tincreasing radius ------->\n")
	io.Ff(&b, "           \t")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t", (float64(ir)+0.5)*dr)
	}
	io.Ff(&b, "\n")
	for iz := 0; iz < nz; iz++ {
		io.Ff(&b, "%.4e\t", (float64(iz)+0.5)*dz)
		for ir := 0; ir < nr; ir++ {
			io.Ff(&b, "%.4e\t", res.FluRz[ir][iz])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "\n\n")

	// A(r,z)
	io.Ff(&b, "Absorption vs r and z [W/cm3]\n")
	io.Ff(&b, "The top row is radius (in cm)\n")
	io.Ff(&b, "The first column is depth (in cm)\n")
	io.Ff(&b, "\t\tincreasing radius ------->\n")
	io.Ff(&b, "           \t")
	for ir := 0; ir < nr; ir++ {
		io.Ff(&b, "%.4e\t", (float64(ir)+0.5)*dr)
	}
	io.Ff(&b, "\n")
	for iz := 0; iz < nz; iz++ {
		io.Ff(&b, "%.4e\t", (float64(iz)+0.5)*dz)
		for ir := 0; ir < nr; ir++ {
			io.Ff(&b, "%.4e\t", res.ARz[ir][iz])
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "\n\n")

	// R(x,y)
	io.Ff(&b, "Cartesian resolved reflection\n")
	io.Ff(&b, "x(cm)\t    y(cm)\t    R(r)[W/cm2]\n")
	for ix := 0; ix < det.Nx*2; ix++ {
		for iy := 0; iy < det.Ny*2; iy++ {
			io.Ff(&b, "%.4e\t", (float64(ix)+0.5)*dx-nx*dx)
			io.Ff(&b, "%.4e\t", (float64(iy)+0.5)*dy-ny*dy)
			io.Ff(&b, "%.4e\n", res.RXy[ix][iy])
		}
	}
	io.Ff(&b, "\n\n")

	return saveFile(filepath.Join(dirout, sim.Cfg.FnKey+".txt"), &b)
}

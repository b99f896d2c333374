// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/mc"
)

// RhoogNorm returns the source-detector throughput factor dividing the
// inbound banana files. The detector aperture and area mirror the source by
// symmetry; a point source counts as unit area.
func RhoogNorm(sim *mc.Simulation) float64 {
	srcNA := sim.Cfg.Src.NA
	detNA := srcNA
	n := sim.Tis.Layers[1].N
	asrc := 1.0
	if sim.Cfg.Src.BeamRadius != 0.0 {
		asrc = math.Pi * sim.Cfg.Src.BeamRadius * sim.Cfg.Src.BeamRadius
	}
	adet := asrc
	return asrc * 2 * math.Pi * (1 - math.Sqrt(1-(srcNA/n)*(srcNA/n))) *
		adet * 2 * math.Pi * (1 - math.Sqrt(1-(detNA/n)*(detNA/n)))
}

// WriteBanana writes the twelve per-face banana files into dirout:
// wts_out_side0..5 raw and wts_in_side0..5 normalized by the throughput
// factor over bin measure, face area and squared photon count
func WriteBanana(dirout string, sim *mc.Simulation) (err error) {
	res := sim.Res
	det := &sim.Cfg.Det
	delmu := 1.0 // one angular bin
	delphi := 2 * math.Pi
	dx, dy, dz := det.Dr, det.Dr, det.Dz
	n2 := float64(sim.Cfg.Src.NumPhotons) * float64(sim.Cfg.Src.NumPhotons)

	for iw := 0; iw < mc.NumSides; iw++ {
		var b bytes.Buffer
		for iz := 0; iz < res.Bz; iz++ {
			for ix := 0; ix < res.Bx; ix++ {
				for iy := 0; iy < res.By; iy++ {
					io.Ff(&b, "%.6e ", res.OutSide[iw][ix][iy][iz])
				}
			}
			io.Ff(&b, "\n")
		}
		if err = saveFile(filepath.Join(dirout, io.Sf("wts_out_side%d", iw)), &b); err != nil {
			return
		}
	}

	rhoog := RhoogNorm(sim)
	for iw := 0; iw < mc.NumSides; iw++ {
		var area float64
		switch iw {
		case 0, 5:
			area = dx * dy
		case 1, 3:
			area = dx * dz
		default: // 2, 4
			area = dy * dz
		}
		var b bytes.Buffer
		for iz := 0; iz < res.Bz; iz++ {
			for ix := 0; ix < res.Bx; ix++ {
				for iy := 0; iy < res.By; iy++ {
					io.Ff(&b, "%.6e ", rhoog*res.InSide[iw][ix][iy][iz]/(delmu*delphi*area*n2))
				}
			}
			io.Ff(&b, "\n")
		}
		if err = saveFile(filepath.Join(dirout, io.Sf("wts_in_side%d", iw)), &b); err != nil {
			return
		}
	}
	return
}

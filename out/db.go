// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/geo"
	"github.com/cpmech/gomc/mc"
)

// MaxCoord discards photons wandering beyond this coordinate (cm) from the
// exit database, keeping packed values well inside the codec range (±83.9)
const MaxCoord = 30.0

// DB appends the exit records of detected photons, one binary file per
// perturbation detector. Each record carries the per-layer collision and
// pathlength statistics followed by the packed terminal vertex.
type DB struct {
	files  []*os.File
	header []bool
	tis    *mc.Tissue
}

// NewDB opens the per-detector files <fnkey><center> in dirout
func NewDB(dirout string, sim *mc.Simulation) (o *DB, err error) {
	det := &sim.Cfg.Det
	o = &DB{tis: sim.Tis}
	o.files = make([]*os.File, det.NumDet)
	o.header = make([]bool, det.NumDet)
	for i := 0; i < det.NumDet; i++ {
		fn := filepath.Join(dirout, io.Sf("%s%5.3f", sim.Cfg.FnKey, det.DetCtr[i]))
		o.files[i], err = os.Create(fn)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Close closes all detector files
func (o *DB) Close() {
	for _, f := range o.files {
		if f != nil {
			f.Close()
		}
	}
}

// WriteExit implements mc.ExitWriter
func (o *DB) WriteExit(bin int, hist *mc.History) {
	f := o.files[bin]

	// discard out-of-range histories
	for i := 0; i < hist.Npts; i++ {
		if math.Abs(hist.X[i]) >= MaxCoord ||
			math.Abs(hist.Y[i]) >= MaxCoord ||
			math.Abs(hist.Z[i]) >= MaxCoord {
			return
		}
	}

	// header with the layer stack, once per file
	if !o.header[bin] {
		o.put(f, int32(o.tis.NumLay))
		for i := 1; i <= o.tis.NumLay; i++ {
			lay := o.tis.Layers[i]
			o.put(f, lay.N, lay.Mua, lay.Mus, lay.G, lay.D)
		}
		o.header[bin] = true
	}

	// per-layer statistics from the recorded polyline
	colInLayer := make([]int32, o.tis.NumLay+1)
	pathInLayer := make([]float64, o.tis.NumLay+1)
	bdryCols := 0
	for k := 0; k < hist.Npts-1; k++ {
		z := hist.Z[k]
		for i := 1; i <= o.tis.NumLay; i++ {
			lay := o.tis.Layers[i]
			if z > lay.Zbegin && z < lay.Zend &&
				math.Abs(z-lay.Zbegin) > 1e-9 && math.Abs(z-lay.Zend) > 1e-9 {
				colInLayer[i]++
			}
			din, _ := geo.SegmentSlabDist(hist.X[k], hist.Y[k], z,
				hist.X[k+1], hist.Y[k+1], hist.Z[k+1], lay.Zbegin, lay.Zend)
			pathInLayer[i] += din
		}
		if hist.BdryCol[k] == 1 {
			bdryCols++
		}
	}

	o.put(f, int32(hist.Npts-bdryCols))
	for i := 1; i <= o.tis.NumLay; i++ {
		o.put(f, colInLayer[i], pathInLayer[i])
	}
	o.put(f, hist.CumPathLen)

	// terminal vertex, packed
	last := hist.Npts - 1
	for _, v := range []float64{hist.X[last], hist.Y[last], hist.Uz[last]} {
		b := Pack3(v)
		if _, err := f.Write(b[:]); err != nil {
			chk.Panic("db: cannot write packed vertex: %v", err)
		}
	}
}

// put writes fixed-layout little-endian values
func (o *DB) put(f *os.File, vals ...interface{}) {
	for _, v := range vals {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			chk.Panic("db: cannot write record: %v", err)
		}
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"
	"sync"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/inp"
	"github.com/cpmech/gomc/rng"
)

// ExitWriter consumes the history of a photon that terminated inside a
// perturbation detector (serial runs only)
type ExitWriter interface {
	WriteExit(bin int, hist *History)
}

// Simulation aggregates the finalized configuration and the run-wide
// tallies. The configuration and tissue are read-only after New.
type Simulation struct {
	Cfg   *inp.Simulation
	Tis   *Tissue
	Res   *Results
	Rspec float64
	DB    ExitWriter // optional packed photon-exit database
}

// New builds a simulation from the input data
func New(cfg *inp.Simulation) (o *Simulation) {
	o = &Simulation{Cfg: cfg}
	o.Tis = NewTissue(&cfg.Tis)
	o.Rspec = Specular(o.Tis.Layers[0].N, o.Tis.Layers[1].N)
	o.Res = NewResults(&cfg.Det, o.Tis)
	o.Res.Rspec = o.Rspec
	return
}

// worker owns the mutable state of one photon processing flow
type worker struct {
	cfg  *inp.Simulation
	tis  *Tissue
	res  *Results
	rnd  *rng.Ran3
	ph   Photon
	hist *History
	db   ExitWriter
}

func (o *Simulation) newWorker(res *Results, seed int64) *worker {
	return &worker{
		cfg:  o.Cfg,
		tis:  o.Tis,
		res:  res,
		rnd:  rng.NewSeeded(seed),
		hist: NewHistory(),
	}
}

// baseSeed maps the seed flag to the first worker seed
func (o *Simulation) baseSeed() int64 {
	if o.Cfg.Seed == 0 {
		return 1
	}
	return time.Now().UnixNano() % (1 << 15)
}

// Run processes all photons serially
func (o *Simulation) Run() {
	w := o.newWorker(o.Res, o.baseSeed())
	w.db = o.DB
	w.runBlock(1, o.Cfg.Src.NumPhotons, o.Cfg.Verbose)
}

// RunConcurrent shards the photons over nw workers, each owning a shadow
// copy of the tallies and a distinct random stream; the shadows are reduced
// in worker order so repeated runs are bit-exact
func (o *Simulation) RunConcurrent(nw int) {
	if nw < 2 {
		o.Run()
		return
	}
	N := o.Cfg.Src.NumPhotons
	if nw > N {
		nw = N
	}
	workers := make([]*worker, nw)
	base := o.baseSeed()
	var wg sync.WaitGroup
	for i := 0; i < nw; i++ {
		workers[i] = o.newWorker(NewResults(&o.Cfg.Det, o.Tis), base+int64(i))
		lo := 1 + i*N/nw
		hi := (i + 1) * N / nw
		wg.Add(1)
		go func(w *worker, lo, hi int) {
			defer wg.Done()
			w.runBlock(lo, hi, false)
		}(workers[i], lo, hi)
	}
	wg.Wait()
	for _, w := range workers {
		o.Res.Add(w.res)
	}
}

// runBlock traces photons n = lo..hi (1-based, inclusive)
func (o *worker) runBlock(lo, hi int, verbose bool) {
	N := o.cfg.Src.NumPhotons
	tick := N / 10
	for n := lo; n <= hi; n++ {
		if verbose && tick > 0 && n%tick == 0 {
			io.Pf("%5.0f percent complete, %v\n", 100*float64(n)/float64(N), time.Now().Format(time.ANSIC))
		}
		o.launch()
		for {
			o.setStepSize()
			hit := o.hitBoundary()
			switch hit {
			case HitLayerBdry:
				o.move()
				o.crossLayer()
			case HitEllipEnter, HitEllipExit:
				o.move()
				o.crossEllip()
			default: // free flight or interior of the ellipsoid
				o.move()
				if o.cfg.Analog {
					o.scatterOrAbsorb()
				} else {
					o.absorb()
					o.scatter()
				}
			}
			o.testWeight()
			if o.ph.Dead {
				break
			}
		}
		o.detectExit()
		o.computeBanana()
	}
}

// detectExit classifies the terminal vertex against the slab faces and the
// perturbation detectors
func (o *worker) detectExit() {
	last := o.hist.Npts - 1
	x, y, z := o.hist.X[last], o.hist.Y[last], o.hist.Z[last]
	top := math.Abs(z) < 1e-9
	bot := math.Abs(z-o.tis.Zmax) < 1e-9
	if top {
		o.res.TotOutTop++
	}
	if bot {
		o.res.TotOutBot++
	}
	det := &o.cfg.Det
	if (det.Reflect && !top) || (!det.Reflect && !bot) {
		return
	}
	bin := -1
	for i := 0; i < det.NumDet; i++ {
		d := math.Sqrt((x-det.DetCtr[i])*(x-det.DetCtr[i]) + y*y)
		if d <= det.DetRad {
			bin = i
			break
		}
	}
	if bin < 0 {
		return
	}
	if o.db != nil && !o.hist.Full() {
		o.db.WriteExit(bin, o.hist)
		o.res.NumWritten[bin] += 1.0
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomc/inp"
	"github.com/cpmech/gomc/mc"
	"github.com/cpmech/gomc/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	io.PfWhite("\nGomc -- Monte Carlo photon transport\n\n")
	io.Pf("     Simulation of light propagation in a multi-layered tissue\n")
	io.Pf("     with an embedded ellipsoid and photon banana generation\n\n")

	// options
	nw := flag.Int("nw", 1, "number of concurrent workers")
	writedb := flag.Bool("db", false, "write packed photon-exit records")
	quiet := flag.Bool("quiet", false, "suppress progress output")

	// simulation filenamepath
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide an input deck. Ex.: slab.mci")
	}
	fnamepath := flag.Arg(0)

	// read input
	cfg := inp.ReadSim(fnamepath)
	if cfg == nil {
		chk.Panic("cannot read input deck %q", fnamepath)
	}
	defer inp.FlushLog()
	cfg.Verbose = !*quiet
	cfg.WriteDB = *writedb

	// build and run
	sim := mc.New(cfg)
	dirout := filepath.Dir(fnamepath)
	if cfg.WriteDB {
		db, err := out.NewDB(dirout, sim)
		if err != nil {
			chk.Panic("cannot create exit database: %v", err)
		}
		defer db.Close()
		sim.DB = db
	}
	if *nw > 1 {
		sim.RunConcurrent(*nw)
	} else {
		sim.Run()
	}

	// save results
	sim.Normalize()
	if err := out.WriteReport(dirout, sim); err != nil {
		chk.Panic("cannot write report: %v", err)
	}
	if err := out.WriteBanana(dirout, sim); err != nil {
		chk.Panic("cannot write banana files: %v", err)
	}

	// summary
	res := sim.Res
	if cfg.Verbose {
		for i := 0; i < cfg.Det.NumDet; i++ {
			io.Pf("det at %f -> %d photons written\n", cfg.Det.DetCtr[i], int(res.NumWritten[i]))
		}
		N := float64(cfg.Src.NumPhotons)
		io.Pf("tot phot out top=%d(%4.2f) bot=%d(%4.2f)\n",
			res.TotOutTop, float64(res.TotOutTop)/N,
			res.TotOutBot, float64(res.TotOutBot)/N)
		for i := 1; i <= sim.Tis.NumLay; i++ {
			io.Pf("layer %d: path length=%g collisions=%d\n", i, res.PathLenInLayer[i], res.ColInLayer[i])
		}
		if res.NumHistFull > 0 || res.NumBananaAbort > 0 {
			io.Pfyel("degenerate events: %d saturated histories, %d banana aborts\n",
				res.NumHistFull, res.NumBananaAbort)
		}
	}
}

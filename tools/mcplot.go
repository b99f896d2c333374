// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mcplot renders the radially resolved reflectance and transmittance of a
// gomc text report as a self-contained HTML chart
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {

	// error handler
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// input data
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("usage: mcplot report.txt [output.html]")
	}
	fnrep := flag.Arg(0)
	fnout := strings.TrimSuffix(fnrep, ".txt") + "_Rr.html"
	if len(flag.Args()) > 1 {
		fnout = flag.Arg(1)
	}

	// parse the R(r)/T(r) block
	b, err := os.ReadFile(fnrep)
	if err != nil {
		chk.Panic("cannot read report %s: %v", fnrep, err)
	}
	lines := strings.Split(string(b), "\n")
	var rs []string
	var rr, tr []opts.LineData
	inblock := false
	for _, line := range lines {
		if strings.HasPrefix(line, "r(cm)") {
			inblock = true
			continue
		}
		if !inblock {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			break
		}
		rs = append(rs, fields[0])
		rr = append(rr, opts.LineData{Value: io.Atof(fields[1])})
		tr = append(tr, opts.LineData{Value: io.Atof(fields[2])})
	}
	if len(rs) == 0 {
		chk.Panic("report %s has no radially resolved block", fnrep)
	}

	// render
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Radially resolved reflection and transmission"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "r (cm)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "W/cm2"}),
	)
	line.SetXAxis(rs).
		AddSeries("R(r)", rr).
		AddSeries("T(r)", tr)

	f, err := os.Create(fnout)
	if err != nil {
		chk.Panic("cannot create %s: %v", fnout, err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		chk.Panic("cannot render chart: %v", err)
	}
	io.Pf("file <%s> written\n", fnout)
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a line-oriented (.mci) deck
package inp

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MaxLayers limits the number of slabs in the stack
const MaxLayers = 12

// MaxDet limits the number of perturbation detectors
const MaxDet = 10

// BeamType selects the transverse profile of the source
type BeamType int

const (
	// FlatBeam is a uniform disk
	FlatBeam BeamType = iota

	// GaussianBeam is a Gaussian profile with 1/e2 radius
	GaussianBeam

	// RectBeam is a uniform rectangle along x
	RectBeam
)

// PerturbMode selects the downstream perturbation target
type PerturbMode int

const (
	// PerturbNone disables perturbation post-processing
	PerturbNone PerturbMode = iota

	// PerturbEllipsoid targets the ellipsoid region
	PerturbEllipsoid

	// PerturbLayer targets the z-slab region
	PerturbLayer
)

// LayerSpec holds the optical properties of one slab as read from the deck
type LayerSpec struct {
	N   float64 // refractive index
	Mus float64 // scattering coefficient
	Mua float64 // absorption coefficient
	G   float64 // anisotropy
	D   float64 // thickness
}

// Source holds the beam definition
type Source struct {
	Beam        BeamType
	BeamCenterX float64
	BeamRadius  float64
	NA          float64
	NumPhotons  int
	RectHalfY   float64 // y half-extent of the rectangular beam
}

// Detector holds the tally grid definition and the perturbation detectors
type Detector struct {

	// tally grid
	Nr int
	Dr float64
	Nz int
	Dz float64
	Na int
	Da float64
	Nt int
	Dt float64
	Nx int
	Dx float64
	Ny int
	Dy float64

	// perturbation detectors
	NumDet  int
	DetCtr  []float64
	DetRad  float64
	Reflect bool // true=reflectance side, false=transmittance side
}

// TissueSpec holds the layer stack and inhomogeneity definition
type TissueSpec struct {
	NAbove    float64     // refractive index of the medium above the slab
	NBelow    float64     // refractive index of the medium below the slab
	Layers    []LayerSpec // 1..L in deck order
	Ellip     bool        // ellipsoid is part of the geometry
	Perturb   PerturbMode
	EllipX    float64
	EllipY    float64
	EllipZ    float64
	EllipRx   float64
	EllipRy   float64
	EllipRz   float64
	LayerZmin float64 // z-slab perturbation region
	LayerZmax float64
}

// Simulation holds all global data for one run, read-only after ReadSim
type Simulation struct {
	FnKey   string // output filename key
	Src     Source
	Det     Detector
	Tis     TissueSpec
	Seed    int  // 0 selects the fixed reproducible stream
	Analog  bool // analog absorption weighting instead of continuous
	WriteDB bool // write packed photon-exit records
	Verbose bool
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Seed = 0
	o.Analog = false
	o.WriteDB = false
	o.Src.RectHalfY = 4.0
	o.Det.Na = 1
}

// PostProcess computes derived data and validates ranges
func (o *Simulation) PostProcess() {
	if o.Det.Na < 1 {
		o.Det.Na = 1
	}
	o.Det.Da = (math.Pi / 2.0) / float64(o.Det.Na)
	if o.Det.NumDet == 0 {
		io.Pf("Warning: No detectors specified\n")
		o.Det.NumDet = 1
		o.Det.DetCtr = []float64{0}
	}
	if o.Det.DetRad == 0.0 {
		io.Pf("Warning: Zero detector radius specified\n")
	}
	for _, l := range o.Tis.Layers {
		if l.Mua+l.Mus <= 0 {
			chk.Panic("inp: layer with mua+mus <= 0 cannot transport photons")
		}
		if l.G < -1 || l.G > 1 {
			chk.Panic("inp: anisotropy g=%g out of [-1,1]", l.G)
		}
	}
	if o.Src.NumPhotons < 1 {
		chk.Panic("inp: number of photons must be positive")
	}
	if o.Det.Dr <= 0 || o.Det.Dz <= 0 || o.Det.Dt <= 0 || o.Det.Dx <= 0 || o.Det.Dy <= 0 {
		chk.Panic("inp: bin sizes dr, dz, dt, dx, dy must be positive")
	}
}

// deck walks the value lines of an input file; the first token of each line
// is the value and the remainder is commentary
type deck struct {
	lines []string
	pos   int
	path  string
	lnum  int
}

func (o *deck) next() string {
	for o.pos < len(o.lines) {
		line := strings.TrimSpace(o.lines[o.pos])
		o.pos++
		o.lnum = o.pos
		if line == "" {
			continue
		}
		return strings.Fields(line)[0]
	}
	chk.Panic("inp: %s: deck truncated at line %d", o.path, o.lnum)
	return ""
}

func (o *deck) float() float64 { return io.Atof(o.next()) }
func (o *deck) int() int       { return io.Atoi(o.next()) }

// ReadSim reads the simulation deck; returns nil when the deck or the log
// file cannot be opened, and panics (chk.Panic) on malformed input
func ReadSim(path string) *Simulation {

	// new sim
	var o Simulation
	o.SetDefault()

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		io.PfRed("inp: cannot read input deck %s\n%v\n", path, err)
		return nil
	}
	d := &deck{lines: strings.Split(string(b), "\n"), path: path}

	// output filename key
	o.FnKey = d.next()

	// layer stack
	nlay := d.int()
	if nlay > MaxLayers {
		chk.Panic("inp: number of layers (%d) must be at most %d", nlay, MaxLayers)
	}
	o.Tis.NAbove = d.float()
	o.Tis.Layers = make([]LayerSpec, nlay)
	for i := 0; i < nlay; i++ {
		o.Tis.Layers[i].N = d.float()
		o.Tis.Layers[i].Mus = d.float()
		o.Tis.Layers[i].Mua = d.float()
		o.Tis.Layers[i].G = d.float()
		o.Tis.Layers[i].D = d.float()
	}
	o.Tis.NBelow = d.float()

	// source
	switch d.next()[0] {
	case 'f', 'F':
		o.Src.Beam = FlatBeam
	case 'g', 'G':
		o.Src.Beam = GaussianBeam
	case 'r', 'R':
		o.Src.Beam = RectBeam
	default:
		chk.Panic("inp: beam type must be either g (Gaussian) or f (flat) or r (rectangular)")
	}
	o.Src.BeamCenterX = d.float()
	o.Src.BeamRadius = d.float()
	o.Src.NA = d.float()

	// tally grid
	o.Det.Nr = d.int()
	o.Det.Dr = d.float()
	o.Det.Nz = d.int()
	o.Det.Dz = d.float()
	o.Det.Nx = d.int()
	o.Det.Dx = d.float()
	o.Det.Ny = d.int()
	o.Det.Dy = d.float()
	o.Src.NumPhotons = d.int()
	o.Det.Nt = d.int()
	o.Det.Dt = d.float()

	// perturbation block
	flag := d.int()
	switch flag {
	case 0:
	case 1:
		o.Tis.Perturb = PerturbEllipsoid
	case 2:
		o.Tis.Perturb = PerturbLayer
	case 3:
		o.Tis.Ellip = true
	default:
		chk.Panic("inp: unknown perturbation flag %d", flag)
	}
	o.Tis.EllipX = d.float()
	o.Tis.EllipY = d.float()
	o.Tis.EllipZ = d.float()
	o.Tis.EllipRx = d.float()
	o.Tis.EllipRy = d.float()
	o.Tis.EllipRz = d.float()
	o.Tis.LayerZmin = d.float()
	o.Tis.LayerZmax = d.float()

	// perturbation detectors
	o.Det.NumDet = d.int()
	if o.Det.NumDet > MaxDet {
		chk.Panic("inp: number of detectors (%d) must be at most %d", o.Det.NumDet, MaxDet)
	}
	o.Det.Reflect = d.int() == 1
	o.Det.DetCtr = make([]float64, o.Det.NumDet)
	for i := 0; i < o.Det.NumDet; i++ {
		o.Det.DetCtr[i] = d.float()
	}
	o.Det.DetRad = d.float()

	// derived data
	o.PostProcess()

	// init log file
	if err := InitLogFile(filepath.Dir(path), o.FnKey); err != nil {
		io.PfRed("inp: cannot create log file\n%v\n", err)
		return nil
	}
	return &o
}

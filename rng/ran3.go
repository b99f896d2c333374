// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rng implements the uniform random stream feeding the transport kernel
package rng

import "time"

// subtractive-lag constants after Knuth (Numerical Recipes ran3)
const (
	mbig  = 1000000000
	mseed = 161803398
	fac   = 1.0e-9
)

// Ran3 is a subtractive-lag uniform generator. Each instance owns its whole
// state; concurrent workers hold one stream each and stay reproducible.
type Ran3 struct {
	inext  int
	inextp int
	ma     [56]int64
}

// New returns a generator selected by the seed flag: flag == 0 gives the
// fixed reproducible stream; any other flag derives the seed from the clock.
func New(flag int) (o *Ran3) {
	if flag == 0 {
		return NewSeeded(1)
	}
	return NewSeeded(time.Now().UnixNano() % (1 << 15))
}

// NewSeeded returns a generator initialized with an explicit seed
func NewSeeded(seed int64) (o *Ran3) {
	o = new(Ran3)
	o.Init(seed)
	return
}

// Init (re)initializes the lag table from seed
func (o *Ran3) Init(seed int64) {
	if seed < 0 {
		seed = -seed
	}
	mj := (mseed - seed) % mbig
	if mj < 0 {
		mj += mbig
	}
	o.ma[55] = mj
	mk := int64(1)
	for i := 1; i <= 54; i++ {
		ii := (21 * i) % 55
		o.ma[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += mbig
		}
		mj = o.ma[ii]
	}
	for k := 1; k <= 4; k++ {
		for i := 1; i <= 55; i++ {
			o.ma[i] -= o.ma[1+(i+30)%55]
			if o.ma[i] < 0 {
				o.ma[i] += mbig
			}
		}
	}
	o.inext = 0
	o.inextp = 31
}

// Float64 returns the next sample in [0,1)
func (o *Ran3) Float64() float64 {
	o.inext++
	if o.inext == 56 {
		o.inext = 1
	}
	o.inextp++
	if o.inextp == 56 {
		o.inextp = 1
	}
	mj := o.ma[o.inext] - o.ma[o.inextp]
	if mj < 0 {
		mj += mbig
	}
	o.ma[o.inext] = mj
	return float64(mj) * fac
}

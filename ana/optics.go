// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form optics values used to verify the kernel
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Specular returns the normal-incidence reflectance between indices n1, n2
func Specular(n1, n2 float64) float64 {
	return (n2 - n1) * (n2 - n1) / ((n2 + n1) * (n2 + n1))
}

// CosCrit returns the cosine of the critical angle for total internal
// reflection going from n1 into n2; zero when no critical angle exists
func CosCrit(n1, n2 float64) float64 {
	if n1 > n2 {
		return math.Sqrt(1.0 - (n2/n1)*(n2/n1))
	}
	return 0.0
}

// Fresnel returns the unpolarized reflectance for incidence cosine ci
// directly from the Fresnel amplitude expressions
func Fresnel(n1, n2, ci float64) float64 {
	if n1 == n2 {
		return 0.0
	}
	si := math.Sqrt(1 - ci*ci)
	st := n1 / n2 * si
	if st >= 1 {
		return 1.0
	}
	ct := math.Sqrt(1 - st*st)
	rs := (n1*ci - n2*ct) / (n1*ci + n2*ct)
	rp := (n1*ct - n2*ci) / (n1*ct + n2*ci)
	return 0.5 * (rs*rs + rp*rp)
}

// SemiInfinite holds bulk optical parameters of a homogeneous medium
//
//	"mua" -- absorption coefficient
//	"mus" -- scattering coefficient
//	"g"   -- anisotropy
type SemiInfinite struct {
	Mua float64
	Mus float64
	G   float64
}

// Init initialises this structure
func (o *SemiInfinite) Init(prms fun.Prms) {

	// default values
	o.Mua = 0.1
	o.Mus = 100.0
	o.G = 0.9

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mua":
			o.Mua = p.V
		case "mus":
			o.Mus = p.V
		case "g":
			o.G = p.V
		}
	}
}

// MeanFreePath returns the expected step length between interactions
func (o *SemiInfinite) MeanFreePath() float64 {
	return 1.0 / (o.Mua + o.Mus)
}

// Albedo returns the single-scattering survival probability
func (o *SemiInfinite) Albedo() float64 {
	return o.Mus / (o.Mua + o.Mus)
}

// ReducedScattering returns the similarity-scaled scattering coefficient
func (o *SemiInfinite) ReducedScattering() float64 {
	return o.Mus * (1.0 - o.G)
}

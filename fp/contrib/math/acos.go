// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/dd"
)

const piOver2 = 1.5707963267948966

// Maclaurin coefficients of asin(x)/x in x^2.
var acosMaclaurin = [8]float64{
	1,
	1.6666666666666666666666666666666666666666666666667e-01,
	7.5e-02,
	4.4642857142857142857142857142857142857142857142857e-02,
	3.0381944444444444444444444444444444444444444444444e-02,
	2.2372159090909090909090909090909090909090909090909e-02,
	1.7352764423076923076923076923076923076923076923077e-02,
	1.3964843750e-02,
}

// asin(y)/y - 1 = y^2 P(y^2)/Q(y^2) for y^2 <= 0.25. The same fit serves
// the rational regime (y = x) and the tail (y = sqrt((1-x)/2)).
var (
	acosRemezP = [5]float64{
		+1.6666666666666675172610409335401762495970069423667e-01,
		-2.9647442738212244852684254810912673101657174481766e-01,
		+1.6001969221867813049084016184632874497094695883901e-01,
		-2.5510481570872249173776491491771394448907125511346e-02,
		+2.6066097969323856113412749790103952111930280796716e-04,
	}
	acosRemezQ = [5]float64{
		1,
		-2.2288465642924490579275829949790393075345284377974e+00,
		+1.6952419643599424152439428142515867324057155650851e+00,
		-5.0120096652328631713045487959099718175996563925832e-01,
		+4.5088915315077310386265964807853660211534733521946e-02,
	}
)

// Acos returns the arccosine, in radians, of x.
//
// Special cases are:
//
//	Acos(x) = NaN if x < -1 or x > 1
//	Acos(1) = 0
//	Acos(-1) = Pi
//	Acos(NaN) = NaN
func Acos[T fp.Floats](x T) T {
	return T(Acos64(float64(x)))
}

type acosRegime int

const (
	acosTiny acosRegime = iota
	acosMaclaurinRegime
	acosRational
	acosTail
	acosEdge
)

func classifyAcos(x float64, ieee bool) acosRegime {
	if ieee {
		e := int(fp.Bits64(x).Exponent())
		switch {
		case e < fp.Float64Bias-57:
			return acosTiny
		case e < fp.Float64Bias-3:
			return acosMaclaurinRegime
		case e < fp.Float64Bias-1:
			return acosRational
		case e < fp.Float64Bias:
			return acosTail
		}
		return acosEdge
	}
	ax := stdmath.Abs(x)
	switch {
	case ax < 0x1p-57:
		return acosTiny
	case ax < 0.125:
		return acosMaclaurinRegime
	case ax < 0.5:
		return acosRational
	case ax < 1:
		return acosTail
	}
	return acosEdge
}

func acos64(x float64, ieee bool) float64 {
	switch classifyAcos(x, ieee) {
	case acosTiny:
		return piOver2
	case acosMaclaurinRegime:
		return piOver2 - x*dd.Horner(x*x, acosMaclaurin[:])
	case acosRational:
		x2 := x * x
		r := x2 * dd.Horner(x2, acosRemezP[:]) / dd.Horner(x2, acosRemezQ[:])
		return piOver2 - (x + x*r)
	case acosTail:
		if x < 0 {
			return stdmath.Pi - acosTail64(-x)
		}
		return acosTail64(x)
	}
	switch {
	case x == 1:
		return 0
	case x == -1:
		return stdmath.Pi
	case x != x:
		return x
	}
	return stdmath.NaN()
}

// acosTail64 evaluates acos(x) = 2*asin(sqrt((1-x)/2)) for 0.5 <= x < 1.
func acosTail64(x float64) float64 {
	z := 0.5 * (1 - x)
	s := stdmath.Sqrt(z)
	t := s * z * dd.Horner(z, acosRemezP[:]) / dd.Horner(z, acosRemezQ[:])
	return 2 * (s + t)
}

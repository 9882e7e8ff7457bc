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

// Package reduce computes x - n*pi/2 for trigonometric argument reduction.
//
// Reduce picks between two float64 algorithms:
//
//   - Below FastThreshold, a Cody-Waite style subtraction of n times pi/2
//     split into four parts.
//   - At and above it, a Payne-Hanek style product of x with a 75-digit
//     base-2^24 table of 2/pi, keeping only the digits that affect the
//     result modulo 4.
//
// ReduceDD covers double-double inputs for the extended precisions.
//
// NaN and Inf must be filtered by the caller.
package reduce

//go:generate go run ../../../cmd/fpgen -pkg reduce -output zz_tables.go

import (
	"math"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/dd"
)

// Angle is a reduced argument: A + DA approximates x - n*pi/2 with
// |A| <= pi/4 (plus rounding) and Quadrant = n mod 4.
type Angle struct {
	A, DA    float64
	Quadrant int
}

// FastThreshold is the magnitude at which Reduce switches to the
// table-driven path.
const FastThreshold = 1.05414350e8

// ===========================================================================
// Fast path constants
// ===========================================================================

var (
	// hpInv is 2/pi rounded to float64.
	hpInv float64 = 0x1.45F306DC9C883p-1
	toInt float64 = 0x1.8p52

	// pi/2 = mp1 + mp2 + pp3 + pp4 to about 2^-135. mp1 and mp2 have
	// short significands so xn*mp1 and xn*mp2 are exact for |xn| < 2^26.
	mp1 float64 = 0x1.921FB58p0
	mp2 float64 = -0x1.DDE973Cp-27
	pp3 float64 = -0x1.CB3B398p-55
	pp4 float64 = -0x1.d747f23e32ed7p-83
)

// ===========================================================================
// Very-large path constants
// ===========================================================================

var (
	two576  float64 = 0x1p576
	twoM600 float64 = 0x1p-600
	twoM24  float64 = 0x1p-24

	// pi/2 as hp0 + hp1. hp0 is also exactly mp1 + vlMp2, so the split
	// products with t1 and t2 below are exact.
	hp0   float64 = 0x1.921fb54442d18p0
	hp1   float64 = 0x1.1a62633145c07p-54
	vlMp2 float64 = -0x1.DDE974p-27
)

// Reduce reduces x using the current dispatch level.
func Reduce(x float64) Angle {
	return ReduceWith(x, fp.CurrentLevel())
}

// ReduceWith reduces x, reading exponent and mantissa fields when level is
// fp.DispatchIEEE754 and using comparisons and conversions otherwise. Both
// levels return identical results.
func ReduceWith(x float64, level fp.DispatchLevel) Angle {
	ieee := level == fp.DispatchIEEE754
	if math.Abs(x) < FastThreshold {
		return reduceFast(x, ieee)
	}
	return reduceVeryLarge(x, ieee)
}

// ReduceFast runs the fast path alone. |x| must be below FastThreshold.
func ReduceFast(x float64) Angle {
	return reduceFast(x, fp.CurrentLevel() == fp.DispatchIEEE754)
}

// ReduceVeryLarge runs the table-driven path alone. It is accurate for any
// |x| >= 2^-500 but only needed at and above FastThreshold.
func ReduceVeryLarge(x float64) Angle {
	return reduceVeryLarge(x, fp.CurrentLevel() == fp.DispatchIEEE754)
}

// TwoOverPiDigits returns a copy of the base-2^24 digits of 2/pi.
func TwoOverPiDigits() []float64 {
	out := make([]float64, len(twoOverPiDigits))
	copy(out, twoOverPiDigits[:])
	return out
}

func reduceFast(x float64, ieee bool) Angle {
	// Adding 1.5*2^52 rounds x*2/pi to an integer held in the low
	// mantissa bits of t.
	t := float64(float64(x*hpInv) + toInt)
	xn := float64(t - toInt)
	y := float64(float64(x-float64(xn*mp1)) - float64(xn*mp2))

	var n int
	if ieee {
		n = int(fp.Bits64(t) & 3)
	} else {
		n = int(int64(xn) & 3)
	}

	t1 := float64(xn * pp3)
	t2 := float64(y - t1)
	da := float64(float64(y-t2) - t1)
	t1 = float64(xn * pp4)
	a := float64(t2 - t1)
	da = float64(da + float64(float64(t2-a)-t1))
	return Angle{A: a, DA: da, Quadrant: n}
}

func reduceVeryLarge(x float64, ieee bool) Angle {
	x = float64(x * twoM600)
	x1, x2 := dd.Split(x)
	b1, bb1, s1 := reduceHalf(x1, ieee)
	b2, bb2, s2 := reduceHalf(x2, ieee)

	sum := float64(s1 + s2)
	b := float64(b1 + b2)
	var bb float64
	if math.Abs(b1) > math.Abs(b2) {
		bb = float64(float64(b1-b) + b2)
	} else {
		bb = float64(float64(b2-b) + b1)
	}
	if b > 0.5 {
		b = float64(b - 1)
		sum = float64(sum + 1)
	} else if b < -0.5 {
		b = float64(b + 1)
		sum = float64(sum - 1)
	}

	s := float64(b + float64(float64(bb+bb1)+bb2))
	t := float64(float64(float64(b-s)+bb) + float64(bb1+bb2))

	// (s + t) * pi/2 with s split into halves so the products with mp1
	// are exact.
	t1, t2 := dd.Split(s)
	b = float64(s * hp0)
	bb = float64(float64(t1*mp1) - b)
	bb = float64(bb + float64(t1*vlMp2))
	bb = float64(bb + float64(t2*mp1))
	bb = float64(bb + float64(float64(float64(t2*vlMp2)+float64(s*hp1))+float64(t*hp0)))

	a := float64(b + bb)
	da := float64(float64(b-a) + bb)

	// sum is integral; int truncation and two's complement make the mask
	// equal n mod 4 for negative sums too.
	return Angle{A: a, DA: da, Quadrant: int(sum) & 3}
}

// reduceHalf multiplies x1 (at most 26 significant bits, scaled by 2^-600)
// by the six table digits that matter and returns the fraction b + bb and
// the integer part sum, reduced modulo 4.
func reduceHalf(x1 float64, ieee bool) (b, bb, sum float64) {
	var expo int
	var gor float64
	if ieee {
		expo = int(fp.Bits64(x1).Exponent())
	} else {
		_, e := math.Frexp(x1)
		expo = e - 1 + fp.Float64Bias
	}
	k := (expo - 450) / 24
	if k < 0 {
		k = 0
	}
	if ieee {
		gor = fp.Float64Bits(uint64(fp.Bits64(two576)) - uint64(k*24)<<52).Float()
	} else {
		gor = math.Ldexp(1, 576-24*k)
	}

	var r [6]float64
	for i := range r {
		r[i] = float64(float64(x1*twoOverPiDigits[k+i]) * gor)
		gor = float64(gor * twoM24)
	}
	for i := 0; i < 3; i++ {
		s := dd.RoundToMultiple(r[i], dd.Big52)
		sum = float64(sum + s)
		r[i] = float64(r[i] - s)
	}
	var t float64
	for i := 5; i >= 0; i-- {
		t = float64(t + r[i])
	}
	bb = float64(r[0] - t)
	for i := 1; i < 6; i++ {
		bb = float64(bb + r[i])
	}
	s := dd.RoundToMultiple(t, dd.Big52)
	sum = float64(sum + s)
	t = float64(t - s)
	b = float64(t + bb)
	bb = float64(float64(t-b) + bb)
	sum = float64(sum - dd.RoundToMultiple(sum, dd.Big54))
	return b, bb, sum
}

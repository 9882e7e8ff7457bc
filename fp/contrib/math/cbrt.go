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
)

// Cube roots of 2^r, r = 0, 1, 2.
var cbrtOfTwoPow = [3]float64{1, 1.2599210498948732, 1.5874010519681996}

// Cbrt returns the cube root of x.
//
// Special cases are:
//
//	Cbrt(±0) = ±0
//	Cbrt(±Inf) = ±Inf
//	Cbrt(NaN) = NaN
func Cbrt[T fp.Floats](x T) T {
	return T(Cbrt64(float64(x)))
}

func cbrt64(x float64, ieee bool) float64 {
	if x == 0 || x != x || stdmath.IsInf(x, 0) {
		return x
	}
	ax := stdmath.Abs(x)

	// ax = u * 2^e with u in [1, 2).
	var u float64
	var e int
	if ieee {
		b := fp.Bits64(ax)
		adj := 0
		if b.IsSubnormal() {
			b = fp.Bits64(ax * 0x1p54)
			adj = -54
		}
		e = int(b.Exponent()) - fp.Float64Bias + adj
		u = b.SetExponent(fp.Float64Bias).Float()
	} else {
		frac, exp := stdmath.Frexp(ax)
		u = frac * 2
		e = exp - 1
	}

	q, r := e/3, e%3
	if r < 0 {
		r += 3
		q--
	}

	// u = (1 + k/128) * (1 + s) with |s| < 1/128.
	var k int
	if ieee {
		k = int(fp.Bits64(u).Mantissa() >> (fp.Float64MantissaBits - 7))
	} else {
		k = int((u - 1) * 128)
	}
	s := u*cbrtRecip[k] - 1
	p := 1 + s*(0.3333333333333333+s*(-0.1111111111111111+s*0.06172839506172839))
	y := p * cbrtRoot[k] * cbrtOfTwoPow[r]

	if ieee {
		b := fp.Bits64(y)
		y = b.SetExponent(uint(int(b.Exponent()) + q)).Float()
	} else {
		y = stdmath.Ldexp(y, q)
	}

	// One Newton step, written as a correction to y.
	y -= (y - ax/(y*y)) / 3
	if x < 0 {
		return -y
	}
	return y
}

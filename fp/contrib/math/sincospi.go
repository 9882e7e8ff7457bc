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

// sin(pi*r)/(pi*r) - 1 and cos(pi*r) - 1 as polynomials in r^2, Maclaurin
// terms k = 1..4. |r| <= 1/256 keeps the truncation below 2^-60.
var (
	sinPiPoly = [4]float64{-1.6449340668482264, 0.8117424252833536, -0.19075182412208422, 0.0261478478176548}
	cosPiPoly = [4]float64{-4.934802200544679, 4.0587121264167685, -1.3352627688545895, 0.2353306303588932}
)

const (
	piHi = stdmath.Pi
	piLo = 1.2246467991473532e-16

	roundBig = 0x1.8p52
)

// SinCosPi returns sin(pi*t) and cos(pi*t). The product pi*t is never
// formed, so integers and half-integers give exact zeros and ones.
//
// Special cases are:
//
//	SinCosPi(±Inf) = NaN, NaN
//	SinCosPi(NaN) = NaN, NaN
func SinCosPi[T fp.Floats](t T) (s, c T) {
	sf, cf := SinCosPi64(float64(t))
	return T(sf), T(cf)
}

// sinPiEntry returns sin(pi*k/128) for k in [0, 256).
func sinPiEntry(k int) fp.DoubleDouble {
	k &= 255
	if k < 128 {
		return sinPiTable[k]
	}
	e := sinPiTable[k-128]
	// 0 - v keeps sin(pi) = +0.
	return fp.DoubleDouble{Hi: 0 - e.Hi, Lo: 0 - e.Lo}
}

func sinCosPi64(t float64, ieee bool) (s, c float64) {
	at := stdmath.Abs(t)
	if t != t {
		return t, t
	}
	if at > stdmath.MaxFloat64 {
		return stdmath.NaN(), stdmath.NaN()
	}
	if at < 0x1p-30 {
		return t * piHi, 1
	}
	if at >= 0x1p52 {
		// t is an integer.
		if at < 0x1p53 && isOddInteger(at, ieee) {
			return 0 * t, -1
		}
		return 0 * t, 1
	}

	// v = t mod 2 in [-1, 1], exact.
	v := t
	if at >= 2 {
		q := float64(float64(t*0.5+roundBig) - roundBig)
		v = float64(t - 2*q)
	}

	sh := float64(v * 128)
	rounded := float64(sh + roundBig)
	n := float64(rounded - roundBig)
	var m int
	if ieee {
		m = int(fp.Bits64(rounded) & 255)
	} else {
		m = int(int64(n) & 255)
	}
	r := float64(float64(sh-n) * (1.0 / 128))
	r2 := r * r

	spHi := float64(piHi * r)
	sp := spHi + (piLo*r + spHi*r2*(sinPiPoly[0]+r2*(sinPiPoly[1]+r2*(sinPiPoly[2]+r2*sinPiPoly[3]))))
	cm1 := r2 * (cosPiPoly[0] + r2*(cosPiPoly[1]+r2*(cosPiPoly[2]+r2*cosPiPoly[3])))

	sk := sinPiEntry(m)
	ck := sinPiEntry(m + 64)
	s = sk.Hi + (sk.Lo + sk.Hi*cm1 + ck.Hi*sp)
	c = ck.Hi + (ck.Lo + ck.Hi*cm1 - sk.Hi*sp)
	if s == 0 {
		// sin(pi*n) takes the sign of n.
		s = stdmath.Copysign(0, t)
	}
	return s, c
}

// isOddInteger reports whether a, an integer in [2^52, 2^53), is odd.
func isOddInteger(a float64, ieee bool) bool {
	if ieee {
		return fp.Bits64(a)&1 == 1
	}
	return stdmath.Mod(a, 2) == 1
}

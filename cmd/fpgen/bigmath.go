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

package main

import (
	"math"
	"math/big"
)

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func fromInt(prec uint, n int64) *big.Float {
	return newFloat(prec).SetInt64(n)
}

// negligible reports whether |term| < 2^-(prec+8) * |scale|.
func negligible(term, scale *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	return term.MantExp(nil) < scale.MantExp(nil)-int(prec)-8
}

// arctanInv returns atan(1/k) by its Taylor series.
func arctanInv(prec uint, k int64) *big.Float {
	sum := newFloat(prec)
	kk := fromInt(prec, k*k)
	pow := newFloat(prec).Quo(fromInt(prec, 1), fromInt(prec, k))
	one := fromInt(prec, 1)
	for n := int64(0); ; n++ {
		term := newFloat(prec).Quo(pow, fromInt(prec, 2*n+1))
		if n%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		if negligible(term, one, prec) {
			return sum
		}
		pow.Quo(pow, kk)
	}
}

// bigPi returns pi by Machin's formula 16 atan(1/5) - 4 atan(1/239).
func bigPi(prec uint) *big.Float {
	a := arctanInv(prec, 5)
	b := arctanInv(prec, 239)
	a.Mul(a, fromInt(prec, 16))
	b.Mul(b, fromInt(prec, 4))
	return a.Sub(a, b)
}

// bigSin sums the Taylor series of sin(x) for moderate |x|.
func bigSin(x *big.Float) *big.Float {
	prec := x.Prec()
	if x.Sign() == 0 {
		return newFloat(prec)
	}
	x2 := newFloat(prec).Mul(x, x)
	term := newFloat(prec).Set(x)
	sum := newFloat(prec).Set(x)
	for n := int64(1); ; n++ {
		term.Mul(term, x2)
		term.Quo(term, fromInt(prec, (2*n)*(2*n+1)))
		term.Neg(term)
		sum.Add(sum, term)
		if negligible(term, sum, prec) {
			return sum
		}
	}
}

// bigCbrt returns the cube root of a positive c by Newton's iteration from
// the float64 estimate.
func bigCbrt(c *big.Float) *big.Float {
	prec := c.Prec()
	f, _ := c.Float64()
	y := newFloat(prec).SetFloat64(math.Cbrt(f))
	three := fromInt(prec, 3)
	for i := 0; i < 64; i++ {
		// y -= (y^3 - c) / (3 y^2)
		y2 := newFloat(prec).Mul(y, y)
		num := newFloat(prec).Mul(y2, y)
		num.Sub(num, c)
		den := newFloat(prec).Mul(y2, three)
		step := newFloat(prec).Quo(num, den)
		y.Sub(y, step)
		if negligible(step, y, prec) {
			break
		}
	}
	return y
}

// bigExp returns e^x by the Taylor series of e^|x|.
func bigExp(x *big.Float) *big.Float {
	prec := x.Prec()
	ax := newFloat(prec).Abs(x)
	term := fromInt(prec, 1)
	sum := fromInt(prec, 1)
	for n := int64(1); ; n++ {
		term.Mul(term, ax)
		term.Quo(term, fromInt(prec, n))
		sum.Add(sum, term)
		if negligible(term, sum, prec) {
			break
		}
	}
	if x.Sign() < 0 {
		return sum.Quo(fromInt(prec, 1), sum)
	}
	return sum
}

// twoOverSqrtPi returns 2/sqrt(pi).
func twoOverSqrtPi(pi *big.Float) *big.Float {
	prec := pi.Prec()
	r := newFloat(prec).Sqrt(pi)
	return r.Quo(fromInt(prec, 2), r)
}

// bigErf sums 2/sqrt(pi) * sum (-1)^n x^(2n+1) / (n! (2n+1)) for x <= 2.
func bigErf(pi, x *big.Float) *big.Float {
	prec := x.Prec()
	x2 := newFloat(prec).Mul(x, x)
	pow := newFloat(prec).Set(x)
	sum := newFloat(prec).Set(x)
	for n := int64(1); ; n++ {
		pow.Mul(pow, x2)
		pow.Quo(pow, fromInt(prec, n))
		pow.Neg(pow)
		term := newFloat(prec).Quo(pow, fromInt(prec, 2*n+1))
		sum.Add(sum, term)
		if negligible(term, sum, prec) {
			break
		}
	}
	return sum.Mul(sum, twoOverSqrtPi(pi))
}

// bigFresnelCos sums C(x) = sum (-1)^n (pi/2)^(2n) x^(4n+1) / ((2n)! (4n+1)),
// running past the largest term before testing for convergence.
func bigFresnelCos(pi, x *big.Float) *big.Float {
	prec := x.Prec()
	z := newFloat(prec).Mul(x, x)
	z.Mul(z, pi)
	z.Quo(z, fromInt(prec, 2))
	peak, _ := z.Float64()
	z2 := newFloat(prec).Mul(z, z)

	pow := newFloat(prec).Set(x)
	sum := newFloat(prec).Set(x)
	for n := int64(1); ; n++ {
		pow.Mul(pow, z2)
		pow.Quo(pow, fromInt(prec, (2*n-1)*(2*n)))
		pow.Neg(pow)
		term := newFloat(prec).Quo(pow, fromInt(prec, 4*n+1))
		sum.Add(sum, term)
		if float64(2*n) > peak && negligible(term, sum, prec) {
			return sum
		}
	}
}

func factorial(n int64) *big.Int {
	return new(big.Int).MulRange(1, n)
}

// ratio returns num/den rounded to prec bits.
func ratio(prec uint, num, den *big.Int) *big.Float {
	q := newFloat(prec).SetInt(num)
	return q.Quo(q, newFloat(prec).SetInt(den))
}

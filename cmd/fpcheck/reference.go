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
	stdmath "math"
	"math/big"

	"github.com/ajroetker/go-specfun/fp"
)

// fresnelSeriesLimit bounds the arguments the power series reference
// accepts. Its terms grow like exp(pi x^2 / 2) before they shrink.
const fresnelSeriesLimit = 16

// fresnelReference sums
//
//	C(x) = sum (-1)^n (pi/2)^(2n) x^(4n+1) / ((2n)! (4n+1))
//
// with enough guard bits to absorb the cancellation.
func fresnelReference(x float64) (fp.DoubleDouble, bool) {
	if stdmath.IsNaN(x) {
		return fp.DoubleDouble{Hi: x}, true
	}
	if stdmath.Abs(x) > fresnelSeriesLimit {
		return fp.DoubleDouble{}, false
	}
	if x == 0 {
		return fp.DoubleDouble{Hi: x}, true
	}

	prec := uint(160 + 2.3*x*x)
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	z := new(big.Float).SetPrec(prec).Mul(halfPi(prec), bx)
	z.Mul(z, bx)
	z2 := new(big.Float).SetPrec(prec).Mul(z, z)

	peak, _ := z.Float64()

	term := new(big.Float).SetPrec(prec).Set(bx)
	sum := new(big.Float).SetPrec(prec).Set(bx)
	for n := int64(1); ; n++ {
		term.Mul(term, z2)
		term.Quo(term, new(big.Float).SetInt64((2*n-1)*(2*n)))
		term.Neg(term)
		t := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetInt64(4*n+1))
		sum.Add(sum, t)
		// Terms shrink once 2n exceeds z.
		if float64(n) > peak && t.MantExp(nil) < sum.MantExp(nil)-120 {
			break
		}
	}

	hi, _ := sum.Float64()
	rest := new(big.Float).SetPrec(prec).Sub(sum, new(big.Float).SetFloat64(hi))
	lo, _ := rest.Float64()
	return fp.DoubleDouble{Hi: hi, Lo: lo}, true
}

// halfPi returns pi/2 by Machin's formula.
func halfPi(prec uint) *big.Float {
	atanInv := func(k int64) *big.Float {
		sum := new(big.Float).SetPrec(prec)
		pow := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), new(big.Float).SetInt64(k))
		kk := new(big.Float).SetInt64(k * k)
		for n := int64(0); ; n++ {
			term := new(big.Float).SetPrec(prec).Quo(pow, new(big.Float).SetInt64(2*n+1))
			if n%2 == 0 {
				sum.Add(sum, term)
			} else {
				sum.Sub(sum, term)
			}
			if term.MantExp(nil) < -int(prec)-8 {
				return sum
			}
			pow.Quo(pow, kk)
		}
	}
	a := atanInv(5)
	a.Mul(a, big.NewFloat(8))
	b := atanInv(239)
	b.Mul(b, big.NewFloat(2))
	return a.Sub(a, b)
}

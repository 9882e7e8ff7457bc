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

package fp

import (
	"math"
	"math/big"
)

// DoubleDouble is an unevaluated sum Hi + Lo of two float64 values with
// |Lo| <= ulp(Hi)/2, giving about 106 significant bits.
//
// Field accessors report on Hi, which carries the sign, exponent and
// classification of the whole value.
type DoubleDouble struct {
	Hi, Lo float64
}

// FromFloat64 returns x as a DoubleDouble with a zero tail.
func FromFloat64(x float64) DoubleDouble {
	return DoubleDouble{Hi: x}
}

// Normalize returns hi + lo with the tail reduced below half an ulp of the
// head. It requires |hi| >= |lo| or hi == 0.
func Normalize(hi, lo float64) DoubleDouble {
	s := float64(hi + lo)
	return DoubleDouble{Hi: s, Lo: float64(lo - float64(s-hi))}
}

// Float64 rounds d to the nearest float64.
func (d DoubleDouble) Float64() float64 {
	return d.Hi + d.Lo
}

func (d DoubleDouble) Sign() uint {
	return Bits64(d.Hi).Sign()
}

func (d DoubleDouble) Exponent() uint {
	return Bits64(d.Hi).Exponent()
}

// SetExponent scales both components by the same power of two so that Hi has
// biased exponent e. Hi must be a normal number.
func (d DoubleDouble) SetExponent(e uint) DoubleDouble {
	shift := int(e) - int(d.Exponent())
	return DoubleDouble{Hi: math.Ldexp(d.Hi, shift), Lo: math.Ldexp(d.Lo, shift)}
}

// SetSign negates both components when the sign of Hi differs from s.
func (d DoubleDouble) SetSign(s uint) DoubleDouble {
	if d.Sign() != s&1 {
		return DoubleDouble{Hi: -d.Hi, Lo: -d.Lo}
	}
	return d
}

func (d DoubleDouble) IsNaN() bool {
	return math.IsNaN(d.Hi)
}

func (d DoubleDouble) IsInf() bool {
	return math.IsInf(d.Hi, 0)
}

func (d DoubleDouble) IsNaNOrInf() bool {
	return Bits64(d.Hi).IsNaNOrInf()
}

func (d DoubleDouble) IsNegative() bool {
	return Bits64(d.Hi).IsNegative()
}

// IsZero returns true when Hi is a zero of either sign.
func (d DoubleDouble) IsZero() bool {
	return d.Hi == 0
}

// BigFloat returns the exact value of d. It must not be NaN.
func (d DoubleDouble) BigFloat() *big.Float {
	z := new(big.Float).SetPrec(2200).SetFloat64(d.Hi)
	if d.Lo != 0 && !math.IsInf(d.Hi, 0) {
		z.Add(z, new(big.Float).SetFloat64(d.Lo))
	}
	return z
}

// String formats d with 34 significant digits.
func (d DoubleDouble) String() string {
	if d.IsNaN() {
		return "NaN"
	}
	return d.BigFloat().Text('g', 34)
}

// DoubleDoubleFromBig rounds f to the nearest DoubleDouble.
func DoubleDoubleFromBig(f *big.Float) DoubleDouble {
	hi, _ := f.Float64()
	if math.IsInf(hi, 0) || hi == 0 {
		return DoubleDouble{Hi: hi}
	}
	r := new(big.Float).SetPrec(f.Prec() + 64).Sub(f, new(big.Float).SetFloat64(hi))
	lo, _ := r.Float64()
	return DoubleDouble{Hi: hi, Lo: lo}
}

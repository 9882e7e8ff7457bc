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

// Float128 represents an IEEE 754 binary128 (quadruple precision) value.
//
// Format: 1 sign bit, 15 exponent bits, 112 mantissa bits, stored as two
// words with the sign and exponent in the top of Hi.
//   - Exponent bias: 16383
//   - Exponent 0x7FFF encodes Inf and NaN
//
// Conversions to DoubleDouble keep the leading 106 bits; extended functions
// on Float128 therefore deliver about 106 correct bits.
type Float128 struct {
	Hi, Lo uint64
}

const (
	Float128Bias         = 16383
	Float128ExpNaNInf    = 0x7FFF
	Float128MantissaBits = 112

	float128HiMantMask = 1<<48 - 1
)

// Common Float128 values.
var (
	Float128Zero = Float128{}
	Float128One  = Float128{Hi: Float128Bias << 48}
	Float128Inf  = Float128{Hi: Float128ExpNaNInf << 48}
	Float128NaN  = Float128{Hi: Float128ExpNaNInf<<48 | 1<<47}
)

func (f Float128) Sign() uint {
	return uint(f.Hi >> 63)
}

func (f Float128) Exponent() uint {
	return uint(f.Hi>>48) & Float128ExpNaNInf
}

// Mantissa returns the 112 fraction bits split into the top 48 and the low 64.
func (f Float128) Mantissa() (hi, lo uint64) {
	return f.Hi & float128HiMantMask, f.Lo
}

func (f Float128) SetExponent(e uint) Float128 {
	f.Hi = f.Hi&^(Float128ExpNaNInf<<48) | uint64(e&Float128ExpNaNInf)<<48
	return f
}

func (f Float128) SetSign(s uint) Float128 {
	f.Hi = f.Hi&^(1<<63) | uint64(s&1)<<63
	return f
}

func (f Float128) IsNaN() bool {
	hi, lo := f.Mantissa()
	return f.IsNaNOrInf() && hi|lo != 0
}

func (f Float128) IsInf() bool {
	hi, lo := f.Mantissa()
	return f.IsNaNOrInf() && hi|lo == 0
}

func (f Float128) IsNaNOrInf() bool {
	return f.Exponent() == Float128ExpNaNInf
}

func (f Float128) IsNegative() bool {
	return f.Hi>>63 != 0
}

func (f Float128) IsZero() bool {
	return f.Hi<<1 == 0 && f.Lo == 0
}

// Float128FromFloat64 converts x exactly.
func Float128FromFloat64(x float64) Float128 {
	return Float128FromDoubleDouble(DoubleDouble{Hi: x})
}

// Float64 rounds f to the nearest float64.
func (f Float128) Float64() float64 {
	return f.DoubleDouble().Float64()
}

// BigFloat returns the exact value of a finite f.
func (f Float128) BigFloat() *big.Float {
	mhi, mlo := f.Mantissa()
	m := new(big.Int).SetUint64(mhi)
	m.Lsh(m, 64).Or(m, new(big.Int).SetUint64(mlo))
	e := int(f.Exponent())
	if e == 0 {
		e = 1 // subnormal
	} else {
		m.SetBit(m, Float128MantissaBits, 1)
	}
	z := new(big.Float).SetPrec(Float128MantissaBits + 1).SetInt(m)
	z.SetMantExp(z, e-Float128Bias-Float128MantissaBits)
	if f.IsNegative() {
		z.Neg(z)
	}
	return z
}

// DoubleDouble rounds f to the nearest DoubleDouble.
func (f Float128) DoubleDouble() DoubleDouble {
	switch {
	case f.IsNaN():
		return DoubleDouble{Hi: math.NaN()}
	case f.IsInf():
		return DoubleDouble{Hi: math.Inf(1)}.SetSign(f.Sign())
	case f.IsZero():
		return DoubleDouble{}.SetSign(f.Sign())
	}
	return DoubleDoubleFromBig(f.BigFloat())
}

// Float128FromDoubleDouble converts d, rounding to nearest with ties to even.
func Float128FromDoubleDouble(d DoubleDouble) Float128 {
	switch {
	case d.IsNaN():
		return Float128NaN.SetSign(d.Sign())
	case d.IsInf():
		return Float128Inf.SetSign(d.Sign())
	case d.IsZero():
		return Float128Zero.SetSign(d.Sign())
	}
	x := new(big.Float).SetPrec(Float128MantissaBits + 1).SetMode(big.ToNearestEven)
	x.Add(new(big.Float).SetFloat64(d.Hi), new(big.Float).SetFloat64(d.Lo))
	mant, exp := roundedMantissa(x, Float128MantissaBits+1)
	lo := new(big.Int).And(mant, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(mant, 64).Uint64() & float128HiMantMask
	return Float128{
		Hi: uint64(exp-1+Float128Bias)<<48 | hi,
		Lo: lo,
	}.SetSign(d.Sign())
}

// String formats f with 36 significant digits.
func (f Float128) String() string {
	if f.IsNaN() {
		return "NaN"
	}
	if f.IsInf() {
		if f.IsNegative() {
			return "-Inf"
		}
		return "+Inf"
	}
	return f.BigFloat().Text('g', 36)
}

// String formats f with 21 significant digits.
func (f Float80) String() string {
	if f.IsNaN() {
		return "NaN"
	}
	return f.DoubleDouble().BigFloat().Text('g', 21)
}

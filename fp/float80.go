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
	"encoding/binary"
	"math"
	"math/big"
)

// Float80 represents an x87 80-bit extended precision value.
//
// Format: 1 sign bit, 15 exponent bits, 64 mantissa bits with an explicit
// integer bit (bit 63 of Mant).
//   - Exponent bias: 16383
//   - Exponent 0x7FFF encodes Inf (fraction 0) and NaN (fraction != 0)
//   - Normal values have the integer bit set
//
// Go has no native 80-bit type, so arithmetic on Float80 values goes through
// DoubleDouble, which holds every finite Float80 in the float64 exponent
// range exactly.
type Float80 struct {
	SignExp uint16 // sign in bit 15, biased exponent in bits 0-14
	Mant    uint64
}

const (
	Float80Bias         = 16383
	Float80ExpNaNInf    = 0x7FFF
	Float80MantissaBits = 64

	float80IntBit = 1 << 63
)

// Common Float80 values.
var (
	Float80Zero = Float80{}
	Float80One  = Float80{SignExp: Float80Bias, Mant: float80IntBit}
	Float80Inf  = Float80{SignExp: Float80ExpNaNInf, Mant: float80IntBit}
	Float80NaN  = Float80{SignExp: Float80ExpNaNInf, Mant: float80IntBit | 1<<62}
)

func (f Float80) Sign() uint {
	return uint(f.SignExp >> 15)
}

func (f Float80) Exponent() uint {
	return uint(f.SignExp & Float80ExpNaNInf)
}

// Mantissa returns all 64 mantissa bits including the integer bit.
func (f Float80) Mantissa() uint64 {
	return f.Mant
}

func (f Float80) SetExponent(e uint) Float80 {
	f.SignExp = f.SignExp&0x8000 | uint16(e&Float80ExpNaNInf)
	return f
}

func (f Float80) SetSign(s uint) Float80 {
	f.SignExp = f.SignExp&Float80ExpNaNInf | uint16(s&1)<<15
	return f
}

func (f Float80) IsNaN() bool {
	return f.IsNaNOrInf() && f.Mant<<1 != 0
}

func (f Float80) IsInf() bool {
	return f.IsNaNOrInf() && f.Mant<<1 == 0
}

func (f Float80) IsNaNOrInf() bool {
	return f.Exponent() == Float80ExpNaNInf
}

func (f Float80) IsNegative() bool {
	return f.SignExp&0x8000 != 0
}

func (f Float80) IsZero() bool {
	return f.Exponent() == 0 && f.Mant == 0
}

// Float80FromBytes decodes the 10-byte little-endian memory image used by x87.
func Float80FromBytes(b [10]byte) Float80 {
	return Float80{
		Mant:    binary.LittleEndian.Uint64(b[:8]),
		SignExp: binary.LittleEndian.Uint16(b[8:]),
	}
}

// Bytes returns the 10-byte little-endian memory image of f.
func (f Float80) Bytes() [10]byte {
	var b [10]byte
	binary.LittleEndian.PutUint64(b[:8], f.Mant)
	binary.LittleEndian.PutUint16(b[8:], f.SignExp)
	return b
}

// Float80FromFloat64 converts x exactly.
func Float80FromFloat64(x float64) Float80 {
	return Float80FromDoubleDouble(DoubleDouble{Hi: x})
}

// Float64 rounds f to the nearest float64.
func (f Float80) Float64() float64 {
	return f.DoubleDouble().Float64()
}

// DoubleDouble converts f to a DoubleDouble. The conversion is exact unless f
// lies outside the float64 exponent range, where it overflows to Inf or
// underflows toward zero.
func (f Float80) DoubleDouble() DoubleDouble {
	neg := f.IsNegative()
	var d DoubleDouble
	switch {
	case f.IsNaN():
		d = DoubleDouble{Hi: math.NaN()}
	case f.IsInf():
		d = DoubleDouble{Hi: math.Inf(1)}
	case f.Mant == 0:
		d = DoubleDouble{}
	default:
		e := int(f.Exponent()) - Float80Bias - 63
		if f.Exponent() == 0 {
			e++ // pseudo-denormal scale
		}
		// Split at bit 11: the top 53 bits and the low 11 bits are each
		// exactly representable.
		hi := math.Ldexp(float64(f.Mant&^0x7FF), e)
		lo := math.Ldexp(float64(f.Mant&0x7FF), e)
		if math.IsInf(hi, 0) {
			d = DoubleDouble{Hi: hi}
		} else {
			d = Normalize(hi, lo)
		}
	}
	if neg {
		d = DoubleDouble{Hi: -d.Hi, Lo: -d.Lo}
	}
	return d
}

// Float80FromDoubleDouble rounds d to the nearest Float80 with ties to even.
func Float80FromDoubleDouble(d DoubleDouble) Float80 {
	switch {
	case d.IsNaN():
		return Float80NaN.SetSign(d.Sign())
	case d.IsInf():
		return Float80Inf.SetSign(d.Sign())
	case d.IsZero():
		return Float80Zero.SetSign(d.Sign())
	}
	x := new(big.Float).SetPrec(Float80MantissaBits).SetMode(big.ToNearestEven)
	x.Add(new(big.Float).SetFloat64(d.Hi), new(big.Float).SetFloat64(d.Lo))
	mant, exp := roundedMantissa(x, Float80MantissaBits)
	return Float80{
		SignExp: uint16(exp-1+Float80Bias) | uint16(d.Sign())<<15,
		Mant:    mant.Uint64(),
	}
}

// roundedMantissa returns the integer significand of x scaled to prec bits,
// with its leading bit set, and the binary exponent e such that
// |x| = m * 2^(e - prec).
func roundedMantissa(x *big.Float, prec uint) (*big.Int, int) {
	m := new(big.Float)
	exp := x.MantExp(m) // |m| in [0.5, 1)
	m.Abs(m)
	m.SetMantExp(m, int(prec))
	i, _ := m.Int(nil)
	return i, exp
}

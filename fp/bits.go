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

import "math"

// Float64Bits is the IEEE 754 binary64 encoding of a float64.
//
// Format: 1 sign bit, 11 exponent bits, 52 mantissa bits.
//   - Exponent bias: 1023
//   - Exponent 0x7FF encodes Inf (mantissa 0) and NaN (mantissa != 0)
type Float64Bits uint64

// Float32Bits is the IEEE 754 binary32 encoding of a float32.
//
// Format: 1 sign bit, 8 exponent bits, 23 mantissa bits.
//   - Exponent bias: 127
//   - Exponent 0xFF encodes Inf and NaN
type Float32Bits uint32

const (
	Float64Bias         = 1023
	Float64ExpNaNInf    = 0x7FF
	Float64MantissaBits = 52
	Float64ExpMask      = 0x7FF << 52
	Float64MantissaMask = 1<<52 - 1
	Float64SignMask     = 1 << 63

	Float32Bias         = 127
	Float32ExpNaNInf    = 0xFF
	Float32MantissaBits = 23
	Float32ExpMask      = 0xFF << 23
	Float32MantissaMask = 1<<23 - 1
	Float32SignMask     = 1 << 31
)

// Bits64 returns the encoding of x.
func Bits64(x float64) Float64Bits {
	return Float64Bits(math.Float64bits(x))
}

// Float returns the value encoded by b.
func (b Float64Bits) Float() float64 {
	return math.Float64frombits(uint64(b))
}

func (b Float64Bits) Sign() uint {
	return uint(b >> 63)
}

func (b Float64Bits) Exponent() uint {
	return uint(b>>Float64MantissaBits) & Float64ExpNaNInf
}

// Mantissa returns the stored 52 fraction bits, without the implicit one.
func (b Float64Bits) Mantissa() uint64 {
	return uint64(b) & Float64MantissaMask
}

// SetExponent replaces the biased exponent field. Only the low 11 bits of e
// are used.
func (b Float64Bits) SetExponent(e uint) Float64Bits {
	return b&^Float64ExpMask | Float64Bits(e&Float64ExpNaNInf)<<Float64MantissaBits
}

// SetSign sets the sign bit to the low bit of s.
func (b Float64Bits) SetSign(s uint) Float64Bits {
	return b&^Float64SignMask | Float64Bits(s&1)<<63
}

// SetMantissa replaces the 52 fraction bits.
func (b Float64Bits) SetMantissa(m uint64) Float64Bits {
	return b&^Float64MantissaMask | Float64Bits(m&Float64MantissaMask)
}

// Abs clears the sign bit.
func (b Float64Bits) Abs() Float64Bits {
	return b &^ Float64SignMask
}

func (b Float64Bits) IsNaN() bool {
	return b.IsNaNOrInf() && b.Mantissa() != 0
}

func (b Float64Bits) IsInf() bool {
	return b.IsNaNOrInf() && b.Mantissa() == 0
}

func (b Float64Bits) IsNaNOrInf() bool {
	return b.Exponent() == Float64ExpNaNInf
}

func (b Float64Bits) IsNegative() bool {
	return b&Float64SignMask != 0
}

// IsZero returns true for +0 and -0.
func (b Float64Bits) IsZero() bool {
	return b.Abs() == 0
}

// IsSubnormal returns true for nonzero values with a zero exponent field.
func (b Float64Bits) IsSubnormal() bool {
	return b.Exponent() == 0 && b.Mantissa() != 0
}

// Bits32 returns the encoding of x.
func Bits32(x float32) Float32Bits {
	return Float32Bits(math.Float32bits(x))
}

// Float returns the value encoded by b.
func (b Float32Bits) Float() float32 {
	return math.Float32frombits(uint32(b))
}

func (b Float32Bits) Sign() uint {
	return uint(b >> 31)
}

func (b Float32Bits) Exponent() uint {
	return uint(b>>Float32MantissaBits) & Float32ExpNaNInf
}

// Mantissa returns the stored 23 fraction bits, without the implicit one.
func (b Float32Bits) Mantissa() uint32 {
	return uint32(b) & Float32MantissaMask
}

func (b Float32Bits) SetExponent(e uint) Float32Bits {
	return b&^Float32ExpMask | Float32Bits(e&Float32ExpNaNInf)<<Float32MantissaBits
}

func (b Float32Bits) SetSign(s uint) Float32Bits {
	return b&^Float32SignMask | Float32Bits(s&1)<<31
}

func (b Float32Bits) SetMantissa(m uint32) Float32Bits {
	return b&^Float32MantissaMask | Float32Bits(m&Float32MantissaMask)
}

func (b Float32Bits) Abs() Float32Bits {
	return b &^ Float32SignMask
}

func (b Float32Bits) IsNaN() bool {
	return b.IsNaNOrInf() && b.Mantissa() != 0
}

func (b Float32Bits) IsInf() bool {
	return b.IsNaNOrInf() && b.Mantissa() == 0
}

func (b Float32Bits) IsNaNOrInf() bool {
	return b.Exponent() == Float32ExpNaNInf
}

func (b Float32Bits) IsNegative() bool {
	return b&Float32SignMask != 0
}

func (b Float32Bits) IsZero() bool {
	return b.Abs() == 0
}

func (b Float32Bits) IsSubnormal() bool {
	return b.Exponent() == 0 && b.Mantissa() != 0
}

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
	stdmath "math"
	"testing"
)

func TestFloat80Constants(t *testing.T) {
	if got := Float80One.Float64(); got != 1 {
		t.Errorf("Float80One = %v, want 1", got)
	}
	if !Float80Inf.IsInf() || Float80Inf.IsNaN() || Float80Inf.IsNegative() {
		t.Error("Float80Inf should be positive infinity")
	}
	if !Float80NaN.IsNaN() || !Float80NaN.IsNaNOrInf() {
		t.Error("Float80NaN should be NaN")
	}
	if !Float80Zero.IsZero() {
		t.Error("Float80Zero should be zero")
	}
}

func TestFloat80FromFloat64(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		signExp uint16
		mant    uint64
	}{
		{"One", 1, 0x3FFF, 0x8000000000000000},
		{"NegTwo", -2, 0xC000, 0x8000000000000000},
		{"Three", 3, 0x4000, 0xC000000000000000},
		{"OneThird", 1.0 / 3, 0x3FFD, 0xAAAAAAAAAAAAA800},
		{"SmallestSubnormal", 5e-324, 0x3FFF - 1074, 0x8000000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Float80FromFloat64(tt.x)
			if f.SignExp != tt.signExp || f.Mant != tt.mant {
				t.Errorf("Float80FromFloat64(%v) = {%#x, %#x}, want {%#x, %#x}",
					tt.x, f.SignExp, f.Mant, tt.signExp, tt.mant)
			}
			if got := f.Float64(); got != tt.x {
				t.Errorf("round trip: got %v, want %v", got, tt.x)
			}
		})
	}
}

func TestFloat80DoubleDoubleExact(t *testing.T) {
	// Every 64-bit mantissa in the float64 exponent range survives the trip
	// through DoubleDouble.
	mants := []uint64{
		0x8000000000000001,
		0xFFFFFFFFFFFFFFFF,
		0xC90FDAA22168C235,
		0x8000000000000800,
		0xAAAAAAAAAAAAAAAB,
	}
	for _, m := range mants {
		for _, e := range []uint16{0x3FFF, 0x3FFF + 700, 0x3FFF - 700} {
			for _, s := range []uint{0, 1} {
				f := Float80{SignExp: e, Mant: m}.SetSign(s)
				d := f.DoubleDouble()
				if stdmath.Abs(d.Lo) > stdmath.Abs(d.Hi)*0x1p-53 {
					t.Errorf("%v: tail %v not normalized against %v", f, d.Lo, d.Hi)
				}
				if got := Float80FromDoubleDouble(d); got != f {
					t.Errorf("round trip of {%#x, %#x}: got {%#x, %#x}", f.SignExp, f.Mant, got.SignExp, got.Mant)
				}
			}
		}
	}
}

func TestFloat80FromDoubleDoubleRounds(t *testing.T) {
	pi := DoubleDouble{Hi: 0x1.921fb54442d18p1, Lo: 0x1.1a62633145c07p-53}
	f := Float80FromDoubleDouble(pi)
	if f.SignExp != 0x4000 || f.Mant != 0xC90FDAA22168C235 {
		t.Errorf("pi = {%#x, %#x}, want {0x4000, 0xc90fdaa22168c235}", f.SignExp, f.Mant)
	}

	// 1 + 2^-64 is a tie between 1 and 1 + 2^-63; ties go to even.
	tie := DoubleDouble{Hi: 1, Lo: 0x1p-64}
	if got := Float80FromDoubleDouble(tie); got != Float80One {
		t.Errorf("tie rounded to {%#x, %#x}, want 1", got.SignExp, got.Mant)
	}
	up := DoubleDouble{Hi: 1, Lo: 0x1.8p-64}
	if got := Float80FromDoubleDouble(up); got.Mant != 0x8000000000000001 {
		t.Errorf("1+1.5*2^-64 rounded to %#x, want 0x8000000000000001", got.Mant)
	}
}

func TestFloat80Specials(t *testing.T) {
	nan := Float80FromDoubleDouble(DoubleDouble{Hi: stdmath.NaN()})
	if !nan.IsNaN() || !stdmath.IsNaN(nan.Float64()) {
		t.Error("NaN should survive conversion")
	}
	negInf := Float80FromFloat64(stdmath.Inf(-1))
	if !negInf.IsInf() || !negInf.IsNegative() || !stdmath.IsInf(negInf.Float64(), -1) {
		t.Error("-Inf should survive conversion")
	}
	negZero := Float80FromFloat64(stdmath.Copysign(0, -1))
	if !negZero.IsZero() || !negZero.IsNegative() {
		t.Error("-0 should keep its sign")
	}
	huge := Float80{SignExp: 0x3FFF + 2000, Mant: float80IntBit}
	if !stdmath.IsInf(huge.Float64(), 1) {
		t.Errorf("2^2000 = %v, want +Inf in float64", huge.Float64())
	}
}

func TestFloat80Bytes(t *testing.T) {
	want := [10]byte{0, 0, 0, 0, 0, 0, 0, 0x80, 0xFF, 0x3F}
	if got := Float80One.Bytes(); got != want {
		t.Errorf("Float80One.Bytes() = % x, want % x", got, want)
	}
	if got := Float80FromBytes(want); got != Float80One {
		t.Errorf("Float80FromBytes = %v, want 1", got)
	}
}

func TestFloat80SetExponent(t *testing.T) {
	f := Float80One.SetExponent(0x3FFF + 10).SetSign(1)
	if got := f.Float64(); got != -1024 {
		t.Errorf("got %v, want -1024", got)
	}
	if f.Exponent() != 0x3FFF+10 || f.Sign() != 1 || f.Mantissa() != float80IntBit {
		t.Errorf("fields = (%d, %#x, %#x)", f.Sign(), f.Exponent(), f.Mantissa())
	}
}

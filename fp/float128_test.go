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

func TestFloat128FromFloat64(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		hi, lo uint64
	}{
		{"One", 1, 0x3FFF000000000000, 0},
		{"NegOneHalf", -0.5, 0xBFFE000000000000, 0},
		{"Three", 3, 0x4000800000000000, 0},
		{"Pi", stdmath.Pi, 0x4000921FB54442D1, 0x8000000000000000},
		{"MaxFloat64", stdmath.MaxFloat64, 0x43FEFFFFFFFFFFFF, 0xF000000000000000},
		{"SmallestSubnormal", 5e-324, 0x3BCD000000000000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Float128FromFloat64(tt.x)
			if f.Hi != tt.hi || f.Lo != tt.lo {
				t.Errorf("Float128FromFloat64(%v) = {%#x, %#x}, want {%#x, %#x}", tt.x, f.Hi, f.Lo, tt.hi, tt.lo)
			}
			if got := f.Float64(); got != tt.x {
				t.Errorf("round trip: got %v, want %v", got, tt.x)
			}
		})
	}
}

func TestFloat128DoubleDouble(t *testing.T) {
	// 1 + 2^-112 needs a tail far below the head; DoubleDouble holds it.
	f := Float128{Hi: 0x3FFF000000000000, Lo: 1}
	d := f.DoubleDouble()
	if d.Hi != 1 || d.Lo != 0x1p-112 {
		t.Errorf("1+2^-112 = %v + %v", d.Hi, d.Lo)
	}
	if got := Float128FromDoubleDouble(d); got != f {
		t.Errorf("round trip: got {%#x, %#x}", got.Hi, got.Lo)
	}

	// 1 + 2^-55 + 2^-112 spans 113 bits; the low bit is dropped.
	f = Float128{Hi: 0x3FFF000000000000, Lo: 1<<57 | 1}
	d = f.DoubleDouble()
	if d.Hi != 1 || d.Lo != 0x1p-55 {
		t.Errorf("1+2^-55+2^-112 = %v + %v, want 1 + 2^-55", d.Hi, d.Lo)
	}
	if got := Float128FromDoubleDouble(d); got.Lo != 1<<57 {
		t.Errorf("got low word %#x, want %#x", got.Lo, uint64(1)<<57)
	}

	pi := DoubleDouble{Hi: 0x1.921fb54442d18p1, Lo: 0x1.1a62633145c07p-53}
	if got := Float128FromDoubleDouble(pi).DoubleDouble(); got != pi {
		t.Errorf("pi round trip: got %v, want %v", got, pi)
	}
}

func TestFloat128Specials(t *testing.T) {
	if !Float128Inf.IsInf() || Float128Inf.IsNaN() || !Float128Inf.SetSign(1).IsNegative() {
		t.Error("Float128Inf misclassified")
	}
	if !Float128NaN.IsNaN() || !stdmath.IsNaN(Float128NaN.Float64()) {
		t.Error("Float128NaN misclassified")
	}
	if !stdmath.IsInf(Float128FromFloat64(stdmath.Inf(-1)).Float64(), -1) {
		t.Error("-Inf should survive conversion")
	}
	z := Float128FromFloat64(stdmath.Copysign(0, -1))
	if !z.IsZero() || !z.IsNegative() {
		t.Error("-0 should keep its sign")
	}
	if got := Float128One.SetExponent(Float128Bias - 3).Float64(); got != 0.125 {
		t.Errorf("SetExponent: got %v, want 0.125", got)
	}
	tiny := Float128{Hi: 1 << 48} // 2^-16382
	if got := tiny.Float64(); got != 0 {
		t.Errorf("2^-16382 = %v in float64, want 0", got)
	}
}

func TestFloat128String(t *testing.T) {
	if got := Float128One.String(); got != "1" {
		t.Errorf("String() = %q, want %q", got, "1")
	}
	if got := Float128Inf.SetSign(1).String(); got != "-Inf" {
		t.Errorf("String() = %q, want %q", got, "-Inf")
	}
}

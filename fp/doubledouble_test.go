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
	"math/big"
	"testing"
)

func TestDoubleDoubleNormalize(t *testing.T) {
	d := Normalize(1, 0x1p-53)
	if d.Hi != 1 || d.Lo != 0x1p-53 {
		t.Errorf("Normalize(1, 2^-53) = %v + %v", d.Hi, d.Lo)
	}
	d = Normalize(1, 0x1.8p-53)
	if d.Hi != 1+0x1p-52 || d.Lo != -0x1p-54 {
		t.Errorf("Normalize(1, 1.5*2^-53) = %v + %v", d.Hi, d.Lo)
	}
}

func TestDoubleDoubleFields(t *testing.T) {
	d := DoubleDouble{Hi: -3, Lo: 0x1p-60}
	if d.Sign() != 1 || !d.IsNegative() || d.Exponent() != 1024 {
		t.Errorf("fields of %v: sign=%d exponent=%d", d, d.Sign(), d.Exponent())
	}
	s := d.SetExponent(1023 - 1)
	if s.Hi != -0.75 || s.Lo != 0x1p-62 {
		t.Errorf("SetExponent: got %v + %v", s.Hi, s.Lo)
	}
	p := d.SetSign(0)
	if p.Hi != 3 || p.Lo != -0x1p-60 {
		t.Errorf("SetSign(0): got %v + %v", p.Hi, p.Lo)
	}
	if d.SetSign(1) != d {
		t.Error("SetSign(1) on a negative value should be a no-op")
	}
	if !(DoubleDouble{Hi: stdmath.Inf(1)}).IsInf() || !(DoubleDouble{Hi: stdmath.NaN()}).IsNaNOrInf() {
		t.Error("classification of Inf/NaN")
	}
}

func TestDoubleDoubleBig(t *testing.T) {
	third := new(big.Float).SetPrec(300).Quo(big.NewFloat(1), big.NewFloat(3))
	d := DoubleDoubleFromBig(third)
	if d.Hi != 1.0/3 {
		t.Errorf("head = %v, want %v", d.Hi, 1.0/3)
	}
	diff := new(big.Float).SetPrec(300).Sub(third, d.BigFloat())
	rel, _ := diff.Quo(diff, third).Float64()
	if stdmath.Abs(rel) > 0x1p-106 {
		t.Errorf("relative error %g exceeds 2^-106", rel)
	}
	if got := (DoubleDouble{Hi: 0.5}).String(); got != "0.5" {
		t.Errorf("String() = %q", got)
	}
}

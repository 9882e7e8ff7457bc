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

package dd

import (
	stdmath "math"
	"math/big"
	"testing"
)

const prec = 300

func bigOf(a DD) *big.Float {
	x := new(big.Float).SetPrec(prec).SetFloat64(a.Hi)
	return x.Add(x, new(big.Float).SetFloat64(a.Lo))
}

// relErr returns |got - want| / |want|.
func relErr(got DD, want *big.Float) float64 {
	d := new(big.Float).SetPrec(prec).Sub(bigOf(got), want)
	if want.Sign() == 0 {
		f, _ := d.Float64()
		return stdmath.Abs(f)
	}
	f, _ := d.Quo(d, want).Float64()
	return stdmath.Abs(f)
}

func bigExp(x *big.Float) *big.Float {
	// Taylor series after halving into [0, 1/64], then square back.
	x = new(big.Float).SetPrec(prec).Set(x)
	neg := x.Sign() < 0
	if neg {
		x.Neg(x)
	}
	halvings := 0
	for x.Cmp(big.NewFloat(1.0/64)) > 0 {
		x.Quo(x, big.NewFloat(2))
		halvings++
	}
	sum := new(big.Float).SetPrec(prec).SetFloat64(1)
	term := new(big.Float).SetPrec(prec).SetFloat64(1)
	for n := 1; n < 80; n++ {
		term.Mul(term, x)
		term.Quo(term, new(big.Float).SetInt64(int64(n)))
		sum.Add(sum, term)
	}
	for ; halvings > 0; halvings-- {
		sum.Mul(sum, sum)
	}
	if neg {
		sum.Quo(new(big.Float).SetPrec(prec).SetFloat64(1), sum)
	}
	return sum
}

var ddOperands = []DD{
	{Hi: 1, Lo: 0x1p-60},
	{Hi: stdmath.Pi, Lo: 0x1.1a62633145c07p-53},
	{Hi: -0.1, Lo: -0x1.999999999999ap-58},
	{Hi: 1e10, Lo: 3e-7},
	{Hi: -7.25e-5, Lo: 1e-22},
	{Hi: 0x1.5555555555555p-2, Lo: 0x1.5555555555555p-56},
}

func TestArithmetic(t *testing.T) {
	const tol = 0x1p-100
	for _, a := range ddOperands {
		for _, b := range ddOperands {
			ba, bb := bigOf(a), bigOf(b)
			tests := []struct {
				name string
				got  DD
				want *big.Float
			}{
				{"Add", Add(a, b), new(big.Float).SetPrec(prec).Add(ba, bb)},
				{"Sub", Sub(a, b), new(big.Float).SetPrec(prec).Sub(ba, bb)},
				{"Mul", Mul(a, b), new(big.Float).SetPrec(prec).Mul(ba, bb)},
				{"Div", Div(a, b), new(big.Float).SetPrec(prec).Quo(ba, bb)},
				{"AddFloat", AddFloat(a, b.Hi), new(big.Float).SetPrec(prec).Add(ba, big.NewFloat(b.Hi))},
				{"MulFloat", MulFloat(a, b.Hi), new(big.Float).SetPrec(prec).Mul(ba, big.NewFloat(b.Hi))},
				{"DivFloat", DivFloat(a, b.Hi), new(big.Float).SetPrec(prec).Quo(ba, big.NewFloat(b.Hi))},
			}
			for _, tt := range tests {
				if tt.want.Sign() == 0 {
					if tt.got.Hi != 0 || tt.got.Lo != 0 {
						t.Errorf("%s(%v, %v) = %v, want 0", tt.name, a, b, tt.got)
					}
					continue
				}
				// Cancellation in Add/Sub is exact on the inputs; measure
				// against the magnitude of the operands.
				if e := relErr(tt.got, tt.want); e > tol && (tt.name == "Add" || tt.name == "Sub") {
					scale := stdmath.Max(stdmath.Abs(a.Hi), stdmath.Abs(b.Hi))
					w, _ := tt.want.Float64()
					if e*stdmath.Abs(w)/scale > tol {
						t.Errorf("%s(%v, %v): relative error %g", tt.name, a, b, e)
					}
				} else if e > tol {
					t.Errorf("%s(%v, %v): relative error %g", tt.name, a, b, e)
				}
				if stdmath.Abs(tt.got.Lo) > stdmath.Abs(tt.got.Hi)*0x1p-52 {
					t.Errorf("%s(%v, %v) = %v is not normalized", tt.name, a, b, tt.got)
				}
			}
		}
	}
}

func TestSquareSqrt(t *testing.T) {
	for _, a := range ddOperands {
		sq := Square(a)
		want := new(big.Float).SetPrec(prec).Mul(bigOf(a), bigOf(a))
		if e := relErr(sq, want); e > 0x1p-100 {
			t.Errorf("Square(%v): relative error %g", a, e)
		}
		r := Sqrt(sq)
		if e := relErr(r, bigOf(Abs(a))); e > 0x1p-100 {
			t.Errorf("Sqrt(Square(%v)) = %v: relative error %g", a, r, e)
		}
	}

	two := Sqrt(DD{Hi: 2})
	want := new(big.Float).SetPrec(prec).Sqrt(big.NewFloat(2).SetPrec(prec))
	if e := relErr(two, want); e > 0x1p-103 {
		t.Errorf("Sqrt(2): relative error %g", e)
	}
	if !stdmath.IsNaN(Sqrt(DD{Hi: -1}).Hi) {
		t.Error("Sqrt(-1) should be NaN")
	}
	if z := Sqrt(Zero); z != Zero {
		t.Errorf("Sqrt(0) = %v", z)
	}
}

func TestCmpNegAbsLdexp(t *testing.T) {
	a := DD{Hi: 1, Lo: 0x1p-60}
	b := DD{Hi: 1, Lo: -0x1p-60}
	if Cmp(a, b) != 1 || Cmp(b, a) != -1 || Cmp(a, a) != 0 {
		t.Error("Cmp ordering on tails")
	}
	if Cmp(Neg(a), b) != -1 {
		t.Error("Cmp(-a, b) should be -1")
	}
	if Abs(Neg(a)) != a {
		t.Errorf("Abs(Neg(a)) = %v", Abs(Neg(a)))
	}
	if got := Ldexp(a, 3); got.Hi != 8 || got.Lo != 0x1p-57 {
		t.Errorf("Ldexp(a, 3) = %v", got)
	}
}

func TestExp(t *testing.T) {
	tests := []DD{
		{Hi: 0},
		{Hi: 1},
		{Hi: -1},
		{Hi: 0.5, Lo: 0x1p-70},
		{Hi: -20.25},
		{Hi: -79.21, Lo: 1e-16},
		{Hi: 100},
		{Hi: -600},
	}
	for _, x := range tests {
		got := Exp(x)
		want := bigExp(bigOf(x))
		if e := relErr(got, want); e > 0x1p-98 {
			t.Errorf("Exp(%v) = %v: relative error %g", x, got, e)
		}
	}
	if !stdmath.IsInf(Exp(DD{Hi: 710}).Hi, 1) {
		t.Error("Exp(710) should overflow")
	}
	if Exp(DD{Hi: -746}) != Zero {
		t.Error("Exp(-746) should underflow to 0")
	}
	if !stdmath.IsNaN(Exp(DD{Hi: stdmath.NaN()}).Hi) {
		t.Error("Exp(NaN) should be NaN")
	}
}

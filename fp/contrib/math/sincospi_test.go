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

package math

import (
	stdmath "math"
	"math/big"
	"math/rand"
	"testing"
)

func TestSinCosPiExact(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	tests := []struct {
		name string
		t    float64
		sin  float64
		cos  float64
	}{
		{"Zero", 0, 0, 1},
		{"NegZero", negZero, negZero, 1},
		{"Half", 0.5, 1, 0},
		{"One", 1, 0, -1},
		{"ThreeHalves", 1.5, -1, 0},
		{"Two", 2, 0, 1},
		{"NegHalf", -0.5, -1, 0},
		{"NegOne", -1, negZero, -1},
		{"Large", 1e6 + 1, 0, -1},
		{"OddAbove2p52", 0x1p52 + 1, 0, -1},
		{"Above2p53", 0x1p53 + 2, 0, 1},
		{"Huge", 1e300, 0, 1},
		{"Quarter", 0.25, 0.7071067811865476, 0.7071067811865476},
		{"Sixth", 1.0 / 6, 0.49999999999999994, 0.8660254037844386},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, lv := range levels {
				s, c := sinCosPi64(tt.t, lv.ieee)
				if ulpDistance(s, tt.sin) > 1 || (tt.sin == 0 && !sameBits(s, tt.sin)) {
					t.Errorf("%s: sinpi(%v) = %v, want %v", lv.name, tt.t, s, tt.sin)
				}
				if ulpDistance(c, tt.cos) > 1 || (tt.cos == 0 && c != 0) {
					t.Errorf("%s: cospi(%v) = %v, want %v", lv.name, tt.t, c, tt.cos)
				}
			}
		})
	}
}

func TestSinCosPiSpecialCases(t *testing.T) {
	for _, v := range []float64{stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN()} {
		s, c := SinCosPi(v)
		if !stdmath.IsNaN(s) || !stdmath.IsNaN(c) {
			t.Errorf("SinCosPi(%v) = %v, %v, want NaN, NaN", v, s, c)
		}
	}
}

func TestSinCosPiMatchesSinCos(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 2000; i++ {
		v := (rng.Float64() - 0.5) * 8
		s, c := SinCosPi(v)
		ws, wc := stdmath.Sincos(stdmath.Pi * v)
		if stdmath.Abs(s-ws) > 4e-15 || stdmath.Abs(c-wc) > 4e-15 {
			t.Fatalf("SinCosPi(%v) = %v, %v, want %v, %v", v, s, c, ws, wc)
		}
	}
}

func TestSinCosPiSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for _, v := range logUniform(rng, 2000, -40, 60) {
		s, c := SinCosPi(v)
		sn, cn := SinCosPi(-v)
		if !sameBits(sn, -s) || !sameBits(cn, c) {
			t.Fatalf("SinCosPi(%v) = %v, %v but SinCosPi(%v) = %v, %v", v, s, c, -v, sn, cn)
		}
		if n := s*s + c*c; stdmath.Abs(n-1) > 4e-16 {
			t.Fatalf("sinpi^2 + cospi^2 = %v at %v", n, v)
		}
	}
}

// bigPi returns pi by Machin's formula 16 atan(1/5) - 4 atan(1/239).
func bigPi(prec uint) *big.Float {
	atanInv := func(k int64) *big.Float {
		sum := new(big.Float).SetPrec(prec)
		pow := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), big.NewFloat(float64(k)))
		kk := new(big.Float).SetPrec(prec).SetInt64(k * k)
		for n := int64(0); n < int64(prec); n++ {
			term := new(big.Float).SetPrec(prec).Quo(pow, new(big.Float).SetInt64(2*n+1))
			if n%2 == 0 {
				sum.Add(sum, term)
			} else {
				sum.Sub(sum, term)
			}
			pow.Quo(pow, kk)
		}
		return sum
	}
	a := atanInv(5)
	a.Mul(a, big.NewFloat(16))
	b := atanInv(239)
	b.Mul(b, big.NewFloat(4))
	return a.Sub(a, b)
}

// bigSin sums the Taylor series of sin(x) for |x| <= 4.
func bigSin(x *big.Float) *big.Float {
	prec := x.Prec()
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)
	for n := int64(1); n < 60; n++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Float).SetInt64((2*n)*(2*n+1)))
		term.Neg(term)
		sum.Add(sum, term)
	}
	return sum
}

func TestSinPiTable(t *testing.T) {
	const prec = 256
	pi := bigPi(prec)
	for k := 1; k < 128; k++ {
		x := new(big.Float).SetPrec(prec).Mul(pi, big.NewFloat(float64(k)))
		x.Quo(x, big.NewFloat(128))
		want := bigSin(x)
		e := sinPiTable[k]
		if hi, _ := want.Float64(); e.Hi != hi {
			t.Errorf("sinPiTable[%d].Hi = %v, want %v", k, e.Hi, hi)
		}
		if bits := relBits(e.BigFloat(), want); bits < 104 {
			t.Errorf("sinPiTable[%d] = %v is accurate to %.1f bits", k, e, bits)
		}
	}
	if e := sinPiTable[0]; e.Hi != 0 || e.Lo != 0 {
		t.Errorf("sinPiTable[0] = %v, want 0", e)
	}
	if e := sinPiEntry(128); !sameBits(e.Hi, 0) {
		t.Errorf("sinPiEntry(128) = %v, want +0", e.Hi)
	}
	if e := sinPiEntry(192); e.Hi != -1 {
		t.Errorf("sinPiEntry(192) = %v, want -1", e.Hi)
	}
}

func BenchmarkSinCosPi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkFloat, _ = SinCosPi(float64(i) * 0.001)
	}
}

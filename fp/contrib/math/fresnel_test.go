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

// fresnelSeries sums C(x) = sum (-1)^n (pi/2)^(2n) x^(4n+1) / ((2n)! (4n+1))
// in 200-bit arithmetic, enough for |x| <= 2.
func fresnelSeries(x float64) float64 {
	const prec = 200
	halfPi := new(big.Float).SetPrec(prec).SetFloat64(stdmath.Pi / 2)
	halfPi.Add(halfPi, new(big.Float).SetPrec(prec).SetFloat64(piLo/2))
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	z := new(big.Float).SetPrec(prec).Mul(halfPi, bx)
	z.Mul(z, bx)
	z2 := new(big.Float).SetPrec(prec).Mul(z, z)

	term := new(big.Float).SetPrec(prec).Set(bx)
	sum := new(big.Float).SetPrec(prec).Set(bx)
	for n := 1; n < 80; n++ {
		term.Mul(term, z2)
		term.Quo(term, new(big.Float).SetInt64(int64((2*n-1)*(2*n))))
		term.Neg(term)
		t := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetInt64(int64(4*n+1)))
		sum.Add(sum, t)
	}
	f, _ := sum.Float64()
	return f
}

func TestFresnelSpecialCases(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"Zero", 0, 0},
		{"NegZero", negZero, negZero},
		{"Tiny", 0x1p-20, 0x1p-20},
		{"PosInf", stdmath.Inf(1), 0.5},
		{"NegInf", stdmath.Inf(-1), -0.5},
		{"Limit", 0x1p53, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, lv := range levels {
				if got := fresnelCos64(tt.x, lv.ieee); !sameBits(got, tt.want) {
					t.Errorf("%s: C(%v) = %v, want %v", lv.name, tt.x, got, tt.want)
				}
			}
		})
	}
}

func TestFresnelSmallArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 2000; i++ {
		x := rng.Float64() * 2
		got := NormalizedFresnelCos(x)
		want := fresnelSeries(x)
		if d := stdmath.Abs(got - want); d > 1e-15 {
			t.Fatalf("C(%v) = %v, series %v", x, got, want)
		}
	}
}

func TestFresnelOdd(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for _, x := range logUniform(rng, 2000, -20, 55) {
		if got, want := NormalizedFresnelCos(-x), -NormalizedFresnelCos(x); !sameBits(got, want) {
			t.Fatalf("C(%v) = %v, want %v", -x, got, want)
		}
	}
}

// Beyond x = 2, |C(x) - 1/2| is bounded by the leading asymptotic term
// 1/(pi x) and shrinks towards the limit.
func TestFresnelEnvelope(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	for _, x := range logUniform(rng, 3000, 1, 51) {
		x = stdmath.Abs(x)
		got := NormalizedFresnelCos(x)
		if d := stdmath.Abs(got - 0.5); d > 1/(stdmath.Pi*x)+1e-15 {
			t.Fatalf("|C(%v) - 0.5| = %g exceeds 1/(pi x) = %g", x, d, 1/(stdmath.Pi*x))
		}
	}
}

func TestFresnelRegimeBoundaries(t *testing.T) {
	for _, b := range []float64{0x1p-17, 0.25, 1, 2, 4, 0x1p17} {
		mid := NormalizedFresnelCos(b)
		for _, y := range []float64{stdmath.Nextafter(b, 0), stdmath.Nextafter(b, 10*b)} {
			// C' = cos(pi x^2/2) is at most 1, so one ulp of x moves C by at
			// most one ulp of x.
			slack := 4*stdmath.Abs(y-b) + 8e-16
			if d := stdmath.Abs(NormalizedFresnelCos(y) - mid); d > slack {
				t.Errorf("C(%v) = %v but C(%v) = %v", y, NormalizedFresnelCos(y), b, mid)
			}
		}
	}
}

func TestFresnelWindowsMatchSeries(t *testing.T) {
	for i := 0; i < len(fresnelWindows); i++ {
		center := 1 + float64(i)/32 + 1.0/64
		if got, want := fresnelWindows[i][0], fresnelSeries(center); stdmath.Abs(got-want) > 1e-15 {
			t.Errorf("window %d constant term = %v, C(%v) = %v", i, got, center, want)
		}
	}
}

func BenchmarkNormalizedFresnelCos(b *testing.B) {
	benchmarks := []struct {
		name string
		x    float64
	}{
		{"Pade", 0.5},
		{"Window", 1.5},
		{"Auxiliary", 30},
		{"Asymptotic", 1e6},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkFloat = NormalizedFresnelCos(bm.x)
			}
		})
	}
}

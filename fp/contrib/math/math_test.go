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
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"sigs.k8s.io/yaml"

	"github.com/ajroetker/go-specfun/fp"
)

type goldenCase struct {
	Func string  `json:"func"`
	X    float64 `json:"x"`
	Want float64 `json:"want"`
	ULPs int64   `json:"ulps"`
}

type extendedCase struct {
	Func string  `json:"func"`
	X    float64 `json:"x"`
	Want string  `json:"want"`
	Bits int     `json:"bits"`
}

type goldenFile struct {
	Float64  []goldenCase   `json:"float64"`
	Extended []extendedCase `json:"extended"`
}

func loadGolden(t testing.TB) goldenFile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "golden.yaml"))
	if err != nil {
		t.Fatalf("reading golden vectors: %v", err)
	}
	var g goldenFile
	if err := yaml.Unmarshal(data, &g); err != nil {
		t.Fatalf("parsing golden vectors: %v", err)
	}
	if len(g.Float64) == 0 || len(g.Extended) == 0 {
		t.Fatalf("golden vectors are empty")
	}
	return g
}

// ulpDistance returns the number of float64 values between a and b.
func ulpDistance(a, b float64) int64 {
	ordered := func(x float64) int64 {
		i := int64(stdmath.Float64bits(x))
		if i < 0 {
			return -(i & stdmath.MaxInt64)
		}
		return i
	}
	d := ordered(a) - ordered(b)
	if d < 0 {
		return -d
	}
	return d
}

// sameBits reports whether a and b are bit-identical, treating all NaNs
// as equal.
func sameBits(a, b float64) bool {
	if a != a && b != b {
		return true
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}

// kernel returns the float64 kernel named by the golden file.
func kernel(name string, ieee bool) func(float64) float64 {
	switch name {
	case "sin":
		return func(x float64) float64 { return sin64(x, ieee) }
	case "cos":
		return func(x float64) float64 { return cos64(x, ieee) }
	case "sinpi":
		return func(x float64) float64 {
			s, _ := sinCosPi64(x, ieee)
			return s
		}
	case "cospi":
		return func(x float64) float64 {
			_, c := sinCosPi64(x, ieee)
			return c
		}
	case "acos":
		return func(x float64) float64 { return acos64(x, ieee) }
	case "erf":
		return func(x float64) float64 { return erf64(x, ieee) }
	case "fresnel":
		return func(x float64) float64 { return fresnelCos64(x, ieee) }
	case "cbrt":
		return func(x float64) float64 { return cbrt64(x, ieee) }
	}
	return nil
}

var levels = []struct {
	name string
	ieee bool
}{
	{"IEEE754", true},
	{"Portable", false},
}

func TestGoldenFloat64(t *testing.T) {
	g := loadGolden(t)
	for _, lv := range levels {
		t.Run(lv.name, func(t *testing.T) {
			for _, tc := range g.Float64 {
				f := kernel(tc.Func, lv.ieee)
				if f == nil {
					t.Fatalf("unknown function %q in golden vectors", tc.Func)
				}
				got := f(tc.X)
				if d := ulpDistance(got, tc.Want); d > tc.ULPs {
					t.Errorf("%s(%v) = %v, want %v (%d ulps, allowed %d)", tc.Func, tc.X, got, tc.Want, d, tc.ULPs)
				}
			}
		})
	}
}

// straddle returns each point and its float64 neighbours, with both signs.
func straddle(points ...float64) []float64 {
	var out []float64
	for _, p := range points {
		for _, v := range []float64{p, stdmath.Nextafter(p, 0), stdmath.Nextafter(p, stdmath.Inf(1))} {
			out = append(out, v, -v)
		}
	}
	return out
}

// logUniform returns n values with exponents in [minExp, maxExp] and random
// signs.
func logUniform(rng *rand.Rand, n, minExp, maxExp int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := stdmath.Ldexp(1+rng.Float64(), minExp+rng.Intn(maxExp-minExp+1))
		if rng.Intn(2) == 0 {
			x = -x
		}
		out[i] = x
	}
	return out
}

var specials = []float64{0, stdmath.Copysign(0, -1), stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(), stdmath.SmallestNonzeroFloat64, stdmath.MaxFloat64}

func TestLevelParity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random := logUniform(rng, 2000, -70, 70)

	var windows []float64
	for k := 0; k <= 32; k++ {
		windows = append(windows, 1+float64(k)/32)
	}
	for k := 0; k <= 128; k++ {
		windows = append(windows, 1+float64(k)/128)
	}
	for k := 0; k <= 8; k++ {
		windows = append(windows, 2+0.5*float64(k))
	}

	tests := []struct {
		name   string
		points []float64
	}{
		{"sin", straddle(0x1p-26, 0x1p-27, piOver4, 1.05414350e8, 0x1p1023)},
		{"cos", straddle(0x1p-26, 0x1p-27, piOver4, 1.05414350e8, 0x1p1023)},
		{"sinpi", straddle(0x1p-30, 0.5, 1, 2, 0x1p52, 0x1p53, 0x1p60)},
		{"cospi", straddle(0x1p-30, 0.5, 1, 2, 0x1p52, 0x1p53, 0x1p60)},
		{"acos", straddle(0x1p-57, 0.125, 0.5, 1, 2)},
		{"erf", append(straddle(0.125, 1, 2, erfSaturate, 6), windows...)},
		{"fresnel", append(straddle(0x1p-17, 0.25, 1, 2, 4, 0x1p17, 0x1p52), windows...)},
		{"cbrt", append(straddle(0x1p-1022, 0x1p-1050, 1, 2, 8), windows...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ieee := kernel(tt.name, true)
			portable := kernel(tt.name, false)
			inputs := append(append(append([]float64{}, tt.points...), random...), specials...)
			for _, x := range inputs {
				a, b := ieee(x), portable(x)
				if !sameBits(a, b) {
					t.Errorf("%s(%v): IEEE754 %v (%#x), Portable %v (%#x)", tt.name, x, a, stdmath.Float64bits(a), b, stdmath.Float64bits(b))
				}
			}
		})
	}
}

func TestUseLevel(t *testing.T) {
	defer UseLevel(fp.CurrentLevel())

	for _, level := range []fp.DispatchLevel{fp.DispatchPortable, fp.DispatchIEEE754} {
		t.Run(level.String(), func(t *testing.T) {
			UseLevel(level)
			if Level() != level {
				t.Fatalf("Level() = %v, want %v", Level(), level)
			}
			ieee := level == fp.DispatchIEEE754
			for _, x := range []float64{0.3, 1.7, 3.5, 1e10} {
				if got, want := Sin64(x), sin64(x, ieee); !sameBits(got, want) {
					t.Errorf("Sin64(%v) = %v, want %v", x, got, want)
				}
				if got, want := Erf64(x), erf64(x, ieee); !sameBits(got, want) {
					t.Errorf("Erf64(%v) = %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestNaNPropagation(t *testing.T) {
	// A quiet NaN with a payload.
	nan := stdmath.Float64frombits(0x7FF8000000000123)
	for _, lv := range levels {
		for _, name := range []string{"sin", "cos", "sinpi", "cospi", "acos", "erf", "fresnel", "cbrt"} {
			got := kernel(name, lv.ieee)(nan)
			if stdmath.Float64bits(got) != stdmath.Float64bits(nan) {
				t.Errorf("%s/%s(NaN) = %#x, want %#x", lv.name, name, stdmath.Float64bits(got), stdmath.Float64bits(nan))
			}
		}
	}
}

func TestFloat32(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float64
	}{
		{"Sin", Sin(float32(0.5)), stdmath.Sin(0.5)},
		{"Cos", Cos(float32(2)), stdmath.Cos(2)},
		{"Acos", Acos(float32(0.25)), stdmath.Acos(0.25)},
		{"Erf", Erf(float32(0.75)), stdmath.Erf(0.75)},
		{"Cbrt", Cbrt(float32(27)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != float32(tt.want) {
				t.Errorf("got %v, want %v", tt.got, float32(tt.want))
			}
		})
	}
}

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

package main

import (
	"bytes"
	"io"
	"log"
	stdmath "math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/math"
)

var discard = log.New(io.Discard, "", 0)

func TestSweepAccuracy(t *testing.T) {
	tests := []struct {
		fn       string
		from, to float64
		scale    string
		maxULP   float64
	}{
		{"sin", -10, 10, ScaleLinear, 2},
		{"cos", -10, 10, ScaleLinear, 2},
		{"sinpi", -4, 4, ScaleLinear, 2},
		{"cospi", -4, 4, ScaleLinear, 2},
		{"acos", -1, 1, ScaleLinear, 2},
		{"erf", -6, 6, ScaleLinear, 3},
		{"fresnel", 0, 12, ScaleLinear, 3},
		{"cbrt", 1e-300, 1e300, ScaleLog, 3},
	}
	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			cfg := Config{
				Funcs:   []string{tt.fn},
				From:    tt.from,
				To:      tt.to,
				Samples: 200,
				Seed:    7,
				Scale:   tt.scale,
				Ref:     RefDoubleDouble,
			}
			results, err := Sweep(cfg, discard)
			require.NoError(t, err)
			require.Len(t, results, 1)

			r := results[0]
			assert.Equal(t, tt.fn, r.Func)
			assert.Equal(t, 200, r.Samples)
			assert.Zero(t, r.Skipped)
			assert.LessOrEqual(t, r.MaxULP, tt.maxULP, "worst at x = %v", r.WorstX)
			assert.LessOrEqual(t, r.MeanULP, r.MaxULP)
		})
	}
}

func TestSweepStdlibReference(t *testing.T) {
	cfg := Config{From: 0.125, To: 0.875, Samples: 100, Seed: 3, Scale: ScaleLinear, Ref: RefStdlib}
	results, err := Sweep(cfg, discard)
	require.NoError(t, err)

	// sinpi and cospi have no stdlib counterpart.
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Func
	}
	assert.ElementsMatch(t, []string{"acos", "cbrt", "cos", "erf", "fresnel", "sin"}, names)
	for _, r := range results {
		assert.LessOrEqual(t, r.MaxULP, 4.0, "%s worst at x = %v", r.Func, r.WorstX)
	}
}

func TestSweepFresnelOutOfRange(t *testing.T) {
	cfg := Config{Funcs: []string{"fresnel"}, From: 10, To: 40, Samples: 100, Seed: 5, Scale: ScaleLinear, Ref: RefDoubleDouble}
	results, err := Sweep(cfg, discard)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Positive(t, results[0].Skipped)
	assert.Equal(t, 100, results[0].Samples+results[0].Skipped)
}

func TestSweepRejectsBadConfig(t *testing.T) {
	base := Config{From: 0, To: 1, Samples: 10, Scale: ScaleLinear, Ref: RefDoubleDouble}
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"NoSamples", func(c *Config) { c.Samples = 0 }, "samples"},
		{"EmptyInterval", func(c *Config) { c.From, c.To = 1, 1 }, "empty interval"},
		{"LogNonPositive", func(c *Config) { c.Scale = ScaleLog }, "positive interval"},
		{"UnknownScale", func(c *Config) { c.Scale = "cubic" }, "unknown scale"},
		{"UnknownRef", func(c *Config) { c.Ref = "mpfr" }, "unknown reference"},
		{"UnknownFunc", func(c *Config) { c.Funcs = []string{"sin", "tan"} }, "tan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			_, err := Sweep(cfg, discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUlpError(t *testing.T) {
	one := fp.DoubleDouble{Hi: 1}
	tests := []struct {
		name string
		got  float64
		want fp.DoubleDouble
		ulps float64
	}{
		{"Exact", 1, one, 0},
		{"OneUlpAbove", stdmath.Nextafter(1, 2), one, 1},
		{"HalfUlpTail", 1, fp.DoubleDouble{Hi: 1, Lo: 0x1p-53}, 0.5},
		{"BothNaN", stdmath.NaN(), fp.DoubleDouble{Hi: stdmath.NaN()}, 0},
		{"SpuriousNaN", stdmath.NaN(), one, stdmath.Inf(1)},
		{"MissingNaN", 1, fp.DoubleDouble{Hi: stdmath.NaN()}, stdmath.Inf(1)},
		{"SameInf", stdmath.Inf(1), fp.DoubleDouble{Hi: stdmath.Inf(1)}, 0},
		{"Max", stdmath.MaxFloat64, fp.DoubleDouble{Hi: stdmath.MaxFloat64}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ulps, ulpError(tt.got, tt.want))
		})
	}
}

func TestExceeding(t *testing.T) {
	results := []Result{{Func: "sin", MaxULP: 0.6}, {Func: "erf", MaxULP: 2.5}, {Func: "cbrt", MaxULP: 1.2}}
	assert.Equal(t, []string{"erf", "cbrt"}, Exceeding(results, 1))
	assert.Empty(t, Exceeding(results, 3))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Result{{Func: "sinpi", Samples: 12000, MaxULP: 0.75, MeanULP: 0.25, WorstX: 0.5}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Function"))
	assert.Contains(t, lines[1], "Sinpi")
	assert.Contains(t, lines[1], "12,000")
	assert.Contains(t, lines[1], "0.750")
}

func TestSweepCommand(t *testing.T) {
	defer math.UseLevel(math.Level())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"sweep", "--portable", "--func", "Sin, cbrt", "--from", "0.5", "--to", "100", "--samples", "50", "--max-ulp", "4"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, fp.DispatchPortable, math.Level())
	assert.Contains(t, out.String(), "Sin")
	assert.Contains(t, out.String(), "Cbrt")
	assert.NotContains(t, out.String(), "Erf")
	assert.Contains(t, errOut.String(), "fpcheck: dispatch level portable")
}

func TestSweepCommandMaxULP(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"sweep", "--func", "erf", "--from", "0.1", "--to", "3", "--samples", "200", "--max-ulp", "1e-9"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erf")
}

func TestInfoCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"info"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cpu:")
	assert.Contains(t, out.String(), fp.CurrentName())
	assert.Contains(t, out.String(), math.Level().String())
}

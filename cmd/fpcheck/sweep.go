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
	"errors"
	"fmt"
	"io"
	"log"
	stdmath "math"
	"math/rand"
	"slices"
	"text/tabwriter"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/math"
	"github.com/ajroetker/go-specfun/internal/workerpool"
)

// Sample spacings.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

// References.
const (
	RefDoubleDouble = "dd"
	RefStdlib       = "std"
)

// Config selects what Sweep samples.
type Config struct {
	Funcs   []string // empty means all
	From    float64
	To      float64
	Samples int
	Seed    int64
	Scale   string
	Ref     string
	Workers int // 0 means GOMAXPROCS
}

// Result summarizes one function over the sampled interval.
type Result struct {
	Func    string
	Samples int
	Skipped int // samples with no reference value
	MaxULP  float64
	MeanULP float64
	WorstX  float64
}

// reference returns the exact value of a function at x to well beyond
// float64 precision, or false when it has none there.
type reference func(x float64) (fp.DoubleDouble, bool)

type function struct {
	eval func(x float64) float64
	dd   reference
	std  reference // nil when the standard library has no counterpart
}

func fromDD(f func(fp.DoubleDouble) fp.DoubleDouble) reference {
	return func(x float64) (fp.DoubleDouble, bool) {
		return f(fp.DoubleDouble{Hi: x}), true
	}
}

func fromStd(f func(float64) float64) reference {
	return func(x float64) (fp.DoubleDouble, bool) {
		return fp.DoubleDouble{Hi: f(x)}, true
	}
}

// The kernels are looked up on every call so that UseLevel takes effect.
var functions = map[string]function{
	"sin": {
		eval: func(x float64) float64 { return math.Sin64(x) },
		dd:   fromDD(math.SinDD),
		std:  fromStd(stdmath.Sin),
	},
	"cos": {
		eval: func(x float64) float64 { return math.Cos64(x) },
		dd:   fromDD(math.CosDD),
		std:  fromStd(stdmath.Cos),
	},
	"sinpi": {
		eval: func(t float64) float64 { s, _ := math.SinCosPi64(t); return s },
		dd: fromDD(func(t fp.DoubleDouble) fp.DoubleDouble {
			s, _ := math.SinCosPiDD(t)
			return s
		}),
	},
	"cospi": {
		eval: func(t float64) float64 { _, c := math.SinCosPi64(t); return c },
		dd: fromDD(func(t fp.DoubleDouble) fp.DoubleDouble {
			_, c := math.SinCosPiDD(t)
			return c
		}),
	},
	"acos": {
		eval: func(x float64) float64 { return math.Acos64(x) },
		dd:   fromDD(math.AcosDD),
		std:  fromStd(stdmath.Acos),
	},
	"erf": {
		eval: func(x float64) float64 { return math.Erf64(x) },
		dd:   fromDD(math.ErfDD),
		std:  fromStd(stdmath.Erf),
	},
	"fresnel": {
		eval: func(x float64) float64 { return math.NormalizedFresnelCos64(x) },
		dd:   fresnelReference,
		std:  fresnelReference,
	},
	"cbrt": {
		eval: func(x float64) float64 { return math.Cbrt64(x) },
		dd:   fromDD(math.CbrtDD),
		std:  fromStd(stdmath.Cbrt),
	},
}

// FunctionNames lists the functions Sweep knows, sorted.
func FunctionNames() []string {
	names := lo.Keys(functions)
	slices.Sort(names)
	return names
}

func (c *Config) validate() error {
	if c.Samples <= 0 {
		return errors.New("samples must be positive")
	}
	if !(c.From < c.To) {
		return fmt.Errorf("empty interval [%g, %g]", c.From, c.To)
	}
	switch c.Scale {
	case ScaleLinear:
	case ScaleLog:
		if c.From <= 0 {
			return fmt.Errorf("log spacing needs a positive interval, got [%g, %g]", c.From, c.To)
		}
	default:
		return fmt.Errorf("unknown scale %q", c.Scale)
	}
	if c.Ref != RefDoubleDouble && c.Ref != RefStdlib {
		return fmt.Errorf("unknown reference %q", c.Ref)
	}
	if unknown := lo.Without(c.Funcs, FunctionNames()...); len(unknown) > 0 {
		return fmt.Errorf("unknown functions %v", unknown)
	}
	return nil
}

// Sweep evaluates every selected function on the same samples and measures
// the error against the chosen reference.
func Sweep(cfg Config, logger *log.Logger) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	names := lo.Uniq(cfg.Funcs)
	if len(names) == 0 {
		names = FunctionNames()
	}
	xs := samples(rand.New(rand.NewSource(cfg.Seed)), cfg)

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	results := make([]Result, 0, len(names))
	for _, name := range names {
		fn := functions[name]
		ref := fn.dd
		if cfg.Ref == RefStdlib {
			ref = fn.std
		}
		if ref == nil {
			logger.Printf("%s: no %s reference, skipped", name, cfg.Ref)
			continue
		}
		r := measure(pool, name, fn.eval, ref, xs)
		if r.Skipped > 0 {
			logger.Printf("%s: %d samples outside the reference range", name, r.Skipped)
		}
		results = append(results, r)
	}
	return results, nil
}

type sampleError struct {
	x    float64
	ulps float64
	ok   bool
}

// sweepBatch is the number of samples a worker claims at a time.
const sweepBatch = 64

func measure(pool *workerpool.Pool, name string, eval func(float64) float64, ref reference, xs []float64) Result {
	all := workerpool.Map(pool, len(xs), sweepBatch, func(i int) sampleError {
		want, ok := ref(xs[i])
		if !ok {
			return sampleError{}
		}
		return sampleError{x: xs[i], ulps: ulpError(eval(xs[i]), want), ok: true}
	})
	errs := lo.Filter(all, func(e sampleError, _ int) bool { return e.ok })

	r := Result{Func: name, Samples: len(errs), Skipped: len(xs) - len(errs)}
	if len(errs) == 0 {
		return r
	}
	worst := lo.MaxBy(errs, func(a, b sampleError) bool { return a.ulps > b.ulps })
	r.MaxULP = worst.ulps
	r.WorstX = worst.x
	r.MeanULP = lo.SumBy(errs, func(e sampleError) float64 { return e.ulps }) / float64(len(errs))
	return r
}

func samples(rng *rand.Rand, cfg Config) []float64 {
	xs := make([]float64, cfg.Samples)
	for i := range xs {
		u := rng.Float64()
		if cfg.Scale == ScaleLog {
			a, b := stdmath.Log2(cfg.From), stdmath.Log2(cfg.To)
			xs[i] = stdmath.Exp2(a + (b-a)*u)
		} else {
			xs[i] = cfg.From + (cfg.To-cfg.From)*u
		}
	}
	return xs
}

// ulpError returns |got - want| in units of the last place of want.
func ulpError(got float64, want fp.DoubleDouble) float64 {
	switch {
	case stdmath.IsNaN(want.Hi):
		if stdmath.IsNaN(got) {
			return 0
		}
		return stdmath.Inf(1)
	case got == want.Hi && want.Lo == 0:
		return 0
	case stdmath.IsInf(got, 0) || stdmath.IsInf(want.Hi, 0) || stdmath.IsNaN(got):
		return stdmath.Inf(1)
	}
	d := (got - want.Hi) - want.Lo
	return stdmath.Abs(d) / ulp(want.Hi)
}

// ulp returns the spacing of float64 values at |v|.
func ulp(v float64) float64 {
	a := stdmath.Abs(v)
	if a == stdmath.MaxFloat64 {
		return a - stdmath.Nextafter(a, 0)
	}
	return stdmath.Nextafter(a, stdmath.Inf(1)) - a
}

// Exceeding returns the functions whose largest error is above limit.
func Exceeding(results []Result, limit float64) []string {
	return lo.FilterMap(results, func(r Result, _ int) (string, bool) {
		return r.Func, r.MaxULP > limit
	})
}

// WriteReport prints results as an aligned table.
func WriteReport(w io.Writer, results []Result) error {
	title := cases.Title(language.English)
	p := message.NewPrinter(language.English)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Function\tSamples\tMax ULP\tMean ULP\tWorst x")
	for _, r := range results {
		p.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%g\n", title.String(r.Func), r.Samples, r.MaxULP, r.MeanULP, r.WorstX)
	}
	return tw.Flush()
}

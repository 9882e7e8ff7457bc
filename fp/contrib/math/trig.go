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

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/reduce"
)

// Kernel coefficients for sin and cos on [-pi/4, pi/4].
const (
	sinC1 = -1.66666666666666324348e-01
	sinC2 = 8.33333333332248946124e-03
	sinC3 = -1.98412698298579493134e-04
	sinC4 = 2.75573137070700676789e-06
	sinC5 = -2.50507602534068634195e-08
	sinC6 = 1.58969099521155010221e-10

	cosC1 = 4.16666666666666019037e-02
	cosC2 = -1.38888888888741095749e-03
	cosC3 = 2.48015872894767294178e-05
	cosC4 = -2.75573143513906633035e-07
	cosC5 = 2.08757232129817482790e-09
	cosC6 = -1.13596475577881948265e-11
)

const (
	piOver4 = 0.7853981633974483

	// Bit pattern of piOver4, compared against |x| as an unsigned integer.
	piOver4Bits = fp.Float64Bits(0x3FE921FB54442D18)
)

// Sin returns sin(x).
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin[T fp.Floats](x T) T {
	return T(Sin64(float64(x)))
}

// Cos returns cos(x).
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos[T fp.Floats](x T) T {
	return T(Cos64(float64(x)))
}

// SinCos returns sin(x) and cos(x) from a single reduction.
func SinCos[T fp.Floats](x T) (s, c T) {
	sf, cf := SinCos64(float64(x))
	return T(sf), T(cf)
}

// kernelSin returns sin(x+y) for |x| <= pi/4, y a tail of x.
func kernelSin(x, y float64) float64 {
	z := x * x
	v := z * x
	r := sinC2 + z*(sinC3+z*(sinC4+z*(sinC5+z*sinC6)))
	return x - ((z*(0.5*y-v*r) - y) - v*sinC1)
}

// kernelCos returns cos(x+y) for |x| <= pi/4, y a tail of x.
func kernelCos(x, y float64) float64 {
	z := x * x
	r := z * (cosC1 + z*(cosC2+z*(cosC3+z*(cosC4+z*(cosC5+z*cosC6)))))
	ax := stdmath.Abs(x)
	if ax < 0.3 {
		return 1 - (0.5*z - (z*r - x*y))
	}
	// Split 1 - z/2 so that both halves stay exact.
	var qx float64
	if ax > 0.78125 {
		qx = 0.28125
	} else {
		qx = ax * 0.25
	}
	hz := 0.5*z - qx
	a := 1 - qx
	return a - (hz - (z*r - x*y))
}

// trigRegime classifies |x| for sin and cos.
type trigRegime int

const (
	trigTiny trigRegime = iota
	trigKernel
	trigReduce
	trigSpecial
)

func classifyTrig(x float64, tinyExp int, ieee bool) trigRegime {
	if ieee {
		b := fp.Bits64(x)
		e := int(b.Exponent())
		switch {
		case e == fp.Float64ExpNaNInf:
			return trigSpecial
		case e < fp.Float64Bias+tinyExp:
			return trigTiny
		case b.Abs() <= piOver4Bits:
			return trigKernel
		}
		return trigReduce
	}
	ax := stdmath.Abs(x)
	switch {
	case ax != ax || ax > stdmath.MaxFloat64:
		return trigSpecial
	case ax < stdmath.Ldexp(1, tinyExp):
		return trigTiny
	case ax <= piOver4:
		return trigKernel
	}
	return trigReduce
}

func reduceLevel(ieee bool) fp.DispatchLevel {
	if ieee {
		return fp.DispatchIEEE754
	}
	return fp.DispatchPortable
}

func sin64(x float64, ieee bool) float64 {
	switch classifyTrig(x, -26, ieee) {
	case trigSpecial:
		if x != x {
			return x
		}
		return stdmath.NaN()
	case trigTiny:
		return x
	case trigKernel:
		return kernelSin(x, 0)
	}
	a := reduce.ReduceWith(x, reduceLevel(ieee))
	switch a.Quadrant {
	case 0:
		return kernelSin(a.A, a.DA)
	case 1:
		return kernelCos(a.A, a.DA)
	case 2:
		return -kernelSin(a.A, a.DA)
	}
	return -kernelCos(a.A, a.DA)
}

func cos64(x float64, ieee bool) float64 {
	switch classifyTrig(x, -27, ieee) {
	case trigSpecial:
		if x != x {
			return x
		}
		return stdmath.NaN()
	case trigTiny:
		return 1
	case trigKernel:
		return kernelCos(x, 0)
	}
	a := reduce.ReduceWith(x, reduceLevel(ieee))
	switch a.Quadrant {
	case 0:
		return kernelCos(a.A, a.DA)
	case 1:
		return -kernelSin(a.A, a.DA)
	case 2:
		return -kernelCos(a.A, a.DA)
	}
	return kernelSin(a.A, a.DA)
}

func sinCos64(x float64, ieee bool) (s, c float64) {
	switch classifyTrig(x, -27, ieee) {
	case trigSpecial:
		if x != x {
			return x, x
		}
		return stdmath.NaN(), stdmath.NaN()
	case trigTiny:
		return x, 1
	case trigKernel:
		return kernelSin(x, 0), kernelCos(x, 0)
	}
	a := reduce.ReduceWith(x, reduceLevel(ieee))
	ks, kc := kernelSin(a.A, a.DA), kernelCos(a.A, a.DA)
	switch a.Quadrant {
	case 0:
		return ks, kc
	case 1:
		return kc, -ks
	case 2:
		return -ks, -kc
	}
	return -kc, ks
}

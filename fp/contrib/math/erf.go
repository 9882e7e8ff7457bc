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
	"github.com/ajroetker/go-specfun/fp/contrib/dd"
)

// erf(x)/x as polynomials in x^2.
var (
	// Maclaurin series, |x| < 0.125.
	erfMaclaurin = [7]float64{
		+1.1283791670955125738961589031215451716881012586580e+00,
		-3.7612638903183752463205296770718172389603375288600e-01,
		+1.1283791670955125738961589031215451716881012586580e-01,
		-2.6866170645131251759432354836227265992573839491857e-02,
		+5.2239776254421878421118467737108572763338021234167e-03,
		-8.5483270234508528325466583569814028158189489292273e-04,
		+1.2055332981789664251027338708563516791539543361731e-04,
	}

	// Chebyshev fit, 0.125 <= |x| < 1.
	erfChebyshev = [12]float64{
		+1.1283791670955124849729221417042495062358233113712e+00,
		-3.7612638903182824648843587122717143708717045801919e-01,
		+1.1283791670926438759054471783181517556718393172443e-01,
		-2.6866170641014075567916794166599359503695991092998e-02,
		+5.2239775923171535274264124244005143458729940975559e-03,
		-8.5483253735567970597848575977068696543670423761656e-04,
		+1.2055279185329653458904604295658345862349757918905e-04,
		-1.4924467745308758735274997777339385676647640149219e-05,
		+1.6444419566296082937771157879511635103139152729031e-06,
		-1.6187414949452059587524584529136346487576728041821e-07,
		+1.3635860776918529656875941020687253644059118429705e-08,
		-7.6495705819715733731829201232902172942240572385993e-10,
	}
)

// erfWindows[n] approximates erf(2.25 + n/2 + z) for |z| <= 1/4.
var erfWindows = [8][]float64{
	{
		0.9985372834133188, 0.0071423190220182555, -0.016070217799544498, 0.021724553691848125,
		-0.019083383636029665, 0.010657679181541277, -0.002904357151529576, -0.0006704568421018245,
		0.0009994970834755555, -0.0003693572741510865, -1.1539736718627222e-05, 6.484412932240475e-05,
		-2.1894411428366274e-05,
	},
	{
		0.9998993780778804, 0.0005862772470928851, -0.0016122624295482426, 0.0027603887054235207,
		-0.0032581136520601992, 0.0027558083732457483, -0.001657327920621369, 0.0006460429858219936,
		-8.899573855291191e-05, -7.127267813550007e-05, 5.477715688226334e-05, -1.5257484938233753e-05,
	},
	{
		0.9999956972205363, 2.918902538377034e-05, -9.486433243290007e-05, 0.0001958097118747342,
		-0.00028656934965381846, 0.000313797233829797, -0.0002635276912889434, 0.0001699910025126373,
		-8.167272360030753e-05, 2.5923868424212382e-05, -1.9718785781558686e-06, -2.9827176694095196e-06,
	},
	{
		0.9999998862727434, 8.814321912523427e-07, -3.305370719825398e-06, 7.96961605434352e-06,
		-1.3841239368803963e-05, 1.8370975914818733e-05, -1.9272756518979244e-05, 1.6275257365804144e-05,
		-1.1127131642251367e-05, 6.1099830497210315e-06, -2.6192389213319817e-06, 7.624389606022308e-07,
	},
	{
		0.9999999981494259, 1.6143995161114306e-08, -6.861197654950885e-08, 1.8901879873542089e-07,
		-3.787947427558331e-07, 5.872874482452323e-07, -7.309519136420748e-07, 7.46218942851002e-07,
		-6.369461678474822e-07, 4.810043029212351e-07, -2.8652969948032425e-07,
	},
	{
		0.9999999999815149, 1.7934371855502848e-10, -8.518635600408959e-10, 2.6378047978654265e-09,
		-5.983268809967958e-09, 1.057553383525632e-08, -1.5040140473477143e-08, 1.793464274059845e-08,
		-2.0062670512208086e-08, 1.713093181987741e-08,
	},
	{
		0.999999999999887, 1.2081133405529725e-12, -6.3629344845528686e-12, 2.185307228468739e-11,
		-5.362835748333377e-11, 1.0668983967979652e-10, -2.135453324191218e-10, 2.847436915059783e-10,
	},
	{
		0.9999999999999996, 3.9340427279773975e-15, -2.376360008948912e-14, 1.6823275229079023e-13,
		-4.5019575287861106e-13,
	},
}

const (
	// erf(x) rounds to 1 from here on.
	erfSaturate = 5.921875

	// Adding 2^39 - 2 to x in [2, 6) leaves (x-2)*2^13 in the low 16
	// mantissa bits.
	erfWindowShift = 549755813886.0
	erfWindowBase  = 549755813888.0
)

// Erf returns the error function of x.
//
// Special cases are:
//
//	Erf(+Inf) = 1
//	Erf(-Inf) = -1
//	Erf(NaN) = NaN
func Erf[T fp.Floats](x T) T {
	return T(Erf64(float64(x)))
}

type erfRegime int

const (
	erfSmall erfRegime = iota
	erfChebyshevRegime
	erfMidRegime
	erfLarge
	erfSpecial
)

func classifyErf(x float64, ieee bool) erfRegime {
	if ieee {
		e := int(fp.Bits64(x).Exponent())
		switch {
		case e == fp.Float64ExpNaNInf:
			return erfSpecial
		case e < fp.Float64Bias-3:
			return erfSmall
		case e < fp.Float64Bias:
			return erfChebyshevRegime
		case e < fp.Float64Bias+1:
			return erfMidRegime
		}
		return erfLarge
	}
	ax := stdmath.Abs(x)
	switch {
	case ax != ax || ax > stdmath.MaxFloat64:
		return erfSpecial
	case ax < 0.125:
		return erfSmall
	case ax < 1:
		return erfChebyshevRegime
	case ax < 2:
		return erfMidRegime
	}
	return erfLarge
}

func erf64(x float64, ieee bool) float64 {
	switch classifyErf(x, ieee) {
	case erfSpecial:
		if x != x {
			return x
		}
		if x > 0 {
			return 1
		}
		return -1
	case erfSmall:
		return x * dd.Horner(x*x, erfMaclaurin[:])
	case erfChebyshevRegime:
		return x * dd.Horner(x*x, erfChebyshev[:])
	case erfMidRegime:
		if x < 0 {
			return -erfMid64(-x, ieee)
		}
		return erfMid64(x, ieee)
	}
	if x < 0 {
		return -erfLarge64(-x, ieee)
	}
	return erfLarge64(x, ieee)
}

// erfMid64 evaluates erf on [1, 2) as erf(x0) + z*P(z) about the nearest
// center x0 = 1 + (2i+1)/16. z = x - x0 is exact and erf(x0) carries a
// low part added before the final rounding.
func erfMid64(x float64, ieee bool) float64 {
	var i int
	if ieee {
		i = int(fp.Bits64(x).Mantissa() >> (fp.Float64MantissaBits - 3))
	} else {
		i = int((x - 1) * 8)
	}
	z := x - (1 + float64(2*i+1)/16)
	head := erfMidHead[i]
	return head.Hi + (head.Lo + z*dd.Horner(z, erfMidWindows[i][:]))
}

// erfLarge64 evaluates erf on [2, Inf).
func erfLarge64(x float64, ieee bool) float64 {
	if x >= erfSaturate {
		return 1
	}
	shifted := float64(x + erfWindowShift)
	var n int
	if ieee {
		n = int(fp.Bits64(shifted)&0xFFFF) >> 12
	} else {
		n = int(float64(shifted-erfWindowBase) * 2)
	}
	z := x - (2.25 + 0.5*float64(n))
	return dd.Horner(z, erfWindows[n])
}

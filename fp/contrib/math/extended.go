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
	"github.com/ajroetker/go-specfun/fp/contrib/reduce"
)

// 2/sqrt(pi).
var twoOverSqrtPi = fp.DoubleDouble{Hi: 0x1.20dd750429b6dp+0, Lo: 0x1.1ae3a914fed8p-56}

var nanDD = fp.DoubleDouble{Hi: stdmath.NaN()}

// SinDD returns sin(x).
func SinDD(x fp.DoubleDouble) fp.DoubleDouble {
	s, _ := sinCosExt(x, &doubleDoublePrec.trig)
	return s
}

// CosDD returns cos(x).
func CosDD(x fp.DoubleDouble) fp.DoubleDouble {
	_, c := sinCosExt(x, &doubleDoublePrec.trig)
	return c
}

// SinCosDD returns sin(x) and cos(x).
func SinCosDD(x fp.DoubleDouble) (s, c fp.DoubleDouble) {
	return sinCosExt(x, &doubleDoublePrec.trig)
}

// SinCosPiDD returns sin(pi*t) and cos(pi*t).
func SinCosPiDD(t fp.DoubleDouble) (s, c fp.DoubleDouble) {
	return sinCosPiExt(t)
}

// AcosDD returns the arccosine of x. It returns NaN outside [-1, 1].
func AcosDD(x fp.DoubleDouble) fp.DoubleDouble {
	return acosExt(x, &doubleDoublePrec.acos)
}

// ErfDD returns the error function of x.
func ErfDD(x fp.DoubleDouble) fp.DoubleDouble {
	return erfExt(x, &doubleDoublePrec.erf)
}

// NormalizedFresnelCosDD returns C(x), the integral of cos(pi t^2/2) for t
// from 0 to x.
func NormalizedFresnelCosDD(x fp.DoubleDouble) fp.DoubleDouble {
	return fresnelExt(x, &doubleDoublePrec.fresnel)
}

// CbrtDD returns the cube root of x.
func CbrtDD(x fp.DoubleDouble) fp.DoubleDouble {
	return cbrtExt(x)
}

func sinCosExt(x fp.DoubleDouble, cfg *trigConfig) (s, c fp.DoubleDouble) {
	if x.IsNaN() {
		return x, x
	}
	if x.IsInf() {
		return nanDD, nanDD
	}
	if stdmath.Abs(x.Hi) < stdmath.Ldexp(1, cfg.tinyExp) {
		return x, dd.One
	}
	a := reduce.ReduceDD(x)
	r2 := dd.Square(a.R)
	ks := dd.Mul(a.R, dd.HornerDD(r2, sinSeriesDD[:cfg.sinTerms]))
	kc := dd.HornerDD(r2, cosSeriesDD[:cfg.cosTerms])
	switch a.Quadrant {
	case 0:
		return ks, kc
	case 1:
		return kc, dd.Neg(ks)
	case 2:
		return dd.Neg(ks), dd.Neg(kc)
	}
	return dd.Neg(kc), ks
}

// Series lengths for sin(pi f) and cos(pi f) with |f| <= 1/256.
const sinPiTerms = 8

func sinCosPiExt(t fp.DoubleDouble) (s, c fp.DoubleDouble) {
	if t.IsNaN() {
		return t, t
	}
	if t.IsInf() {
		return nanDD, nanDD
	}
	if stdmath.Abs(t.Hi) < 0x1p-54 {
		return dd.Mul(t, dd.Pi), dd.One
	}

	// v = t mod 2, held exactly, then moved into [-1, 1].
	vh, vl := dd.TwoSum(mod2(t.Hi), mod2(t.Lo))
	switch {
	case vh > 1:
		vh -= 2
	case vh < -1:
		vh += 2
	}
	v := fp.Normalize(vh, vl)

	n := stdmath.Round(v.Hi * 128)
	m := int(int64(n) & 255)
	f := fp.Normalize(float64(v.Hi-n/128), v.Lo)

	x := dd.Mul(f, dd.Pi)
	x2 := dd.Square(x)
	sp := dd.Mul(x, dd.HornerDD(x2, sinSeriesDD[:sinPiTerms]))
	cp := dd.HornerDD(x2, cosSeriesDD[:sinPiTerms])

	sk := sinPiEntry(m)
	ck := sinPiEntry(m + 64)
	s = dd.Add(dd.Mul(sk, cp), dd.Mul(ck, sp))
	c = dd.Sub(dd.Mul(ck, cp), dd.Mul(sk, sp))
	if s.IsZero() {
		s = fp.DoubleDouble{Hi: stdmath.Copysign(0, t.Hi)}
	}
	return s, c
}

func acosExt(x fp.DoubleDouble, cfg *acosConfig) fp.DoubleDouble {
	if x.IsNaN() {
		return x
	}
	ax := stdmath.Abs(x.Hi)
	switch {
	case ax < stdmath.Ldexp(1, cfg.tinyExp):
		return dd.PiOver2
	case ax < stdmath.Ldexp(1, cfg.smallExp):
		p := dd.HornerDD(dd.Square(x), cfg.maclaurin)
		return dd.Sub(dd.PiOver2, dd.Mul(x, p))
	case ax < 0.5:
		x2 := dd.Square(x)
		r := dd.Div(dd.HornerDD(x2, cfg.remezP), dd.HornerDD(x2, cfg.remezQ))
		r = dd.Mul(x2, r)
		return dd.Sub(dd.PiOver2, dd.Add(x, dd.Mul(x, r)))
	}
	// The tail needs the sign of the full value, not just Hi.
	switch c := dd.Cmp(dd.Abs(x), dd.One); {
	case c < 0:
		if x.IsNegative() {
			return dd.Sub(dd.Pi, acosTailExt(dd.Neg(x), cfg))
		}
		return acosTailExt(x, cfg)
	case c == 0:
		if x.IsNegative() {
			return dd.Pi
		}
		return dd.Zero
	}
	return nanDD
}

// acosTailExt evaluates acos(x) = 2*asin(sqrt((1-x)/2)) for 0.5 <= x < 1.
func acosTailExt(x fp.DoubleDouble, cfg *acosConfig) fp.DoubleDouble {
	z := dd.Ldexp(dd.Sub(dd.One, x), -1)
	s := dd.Sqrt(z)
	r := dd.Div(dd.HornerDD(z, cfg.tailA), dd.HornerDD(z, cfg.tailB))
	r = dd.Mul(z, r)
	return dd.Ldexp(dd.Add(s, dd.Mul(s, r)), 1)
}

func erfExt(x fp.DoubleDouble, cfg *erfConfig) fp.DoubleDouble {
	if x.IsNaN() {
		return x
	}
	neg := x.IsNegative()
	ax := dd.Abs(x)
	var out fp.DoubleDouble
	switch {
	case ax.Hi < stdmath.Ldexp(1, cfg.tinyExp):
		return dd.Mul(x, twoOverSqrtPi)
	case ax.Hi < cfg.seriesLimit:
		out = erfSeries(ax, cfg)
	case ax.Hi < cfg.saturate:
		out = dd.Sub(dd.One, erfcContinuedFraction(ax, cfg))
	default:
		out = dd.One
	}
	if neg {
		return dd.Neg(out)
	}
	return out
}

// erfSeries sums 2/sqrt(pi) * sum (-1)^n x^(2n+1) / (n! (2n+1)).
func erfSeries(x fp.DoubleDouble, cfg *erfConfig) fp.DoubleDouble {
	x2 := dd.Square(x)
	term := x
	sum := x
	for n := 1; n < 200; n++ {
		term = dd.Neg(dd.DivFloat(dd.Mul(term, x2), float64(n)))
		t := dd.DivFloat(term, float64(2*n+1))
		sum = dd.Add(sum, t)
		if stdmath.Abs(t.Hi) < cfg.seriesEps*stdmath.Abs(sum.Hi) {
			break
		}
	}
	return dd.Mul(sum, twoOverSqrtPi)
}

// erfcContinuedFraction evaluates
//
//	erfc(x) = 2x e^(-x^2) / sqrt(pi) / (2x^2+1 - 1*2/(2x^2+5 - 3*4/(2x^2+9 - ...)))
//
// from the tail, for x >= 2.
func erfcContinuedFraction(x fp.DoubleDouble, cfg *erfConfig) fp.DoubleDouble {
	x2 := dd.Square(x)
	a := dd.Ldexp(x2, 1)
	terms := int(cfg.cfScale/x2.Hi) + cfg.cfExtra

	t := dd.AddFloat(a, float64(4*terms+1))
	for k := terms; k >= 1; k-- {
		num := float64((2*k - 1) * (2 * k))
		t = dd.Sub(dd.AddFloat(a, float64(4*(k-1)+1)), dd.Div(fp.DoubleDouble{Hi: num}, t))
	}
	e := dd.Exp(dd.Neg(x2))
	r := dd.Mul(dd.Mul(x, twoOverSqrtPi), e)
	return dd.Div(r, t)
}

var halfDD = fp.DoubleDouble{Hi: 0.5}

func fresnelExt(x fp.DoubleDouble, cfg *fresnelConfig) fp.DoubleDouble {
	if x.IsNaN() {
		return x
	}
	ax := dd.Abs(x)
	var out fp.DoubleDouble
	switch {
	case ax.Hi < stdmath.Ldexp(1, cfg.tinyExp):
		return x
	case ax.Hi < 1:
		out = fresnelMaclaurinExt(ax, cfg)
	case ax.Hi < 8:
		out = fresnelWindowExt(ax, cfg)
	case ax.Hi < stdmath.Ldexp(1, cfg.limitExp):
		out = fresnelAsymptoticExt(ax, cfg)
	default:
		out = halfDD
	}
	if x.IsNegative() {
		return dd.Neg(out)
	}
	return out
}

// fresnelMaclaurinExt sums x * sum (-1)^n a^n / ((2n)! (4n+1)) with
// a = (pi x^2 / 2)^2, for |x| < 1.
func fresnelMaclaurinExt(x fp.DoubleDouble, cfg *fresnelConfig) fp.DoubleDouble {
	a := dd.Square(dd.Mul(dd.PiOver2, dd.Square(x)))
	pow := x
	sum := x
	for n := 1; n < 100; n++ {
		pow = dd.Neg(dd.DivFloat(dd.Mul(pow, a), float64((2*n-1)*(2*n))))
		t := dd.DivFloat(pow, float64(4*n+1))
		sum = dd.Add(sum, t)
		if stdmath.Abs(t.Hi) < cfg.eps*stdmath.Abs(sum.Hi) {
			break
		}
	}
	return sum
}

// fresnelWindowExt evaluates C on [1, 8) about x0 = 1 + (2i+1)/16. With
// theta = pi x0^2 / 2 and u(z) = exp(i pi (x0 z + z^2/2)),
//
//	C(x0 + z) = C(x0) + Re(exp(i theta) * integral of u from 0 to z),
//
// and u' = i pi (x0 + z) u turns the Taylor terms v_k = u_k z^k into the
// recurrence v_(k+1) = i pi z (x0 v_k + z v_(k-1)) / (k+1).
func fresnelWindowExt(x fp.DoubleDouble, cfg *fresnelConfig) fp.DoubleDouble {
	i := int((x.Hi - 1) * 8)
	x0 := 1 + float64(2*i+1)/16
	z := fp.Normalize(x.Hi-x0, x.Lo)
	piz := dd.Mul(dd.Pi, z)

	// v = vr + i vi is the current term, p = pr + i pim the previous one.
	vr, vi := dd.One, dd.Zero
	pr, pim := dd.Zero, dd.Zero
	sr, si := dd.One, dd.Zero
	for k := 0; k < 80; k++ {
		wr := dd.Add(dd.MulFloat(vr, x0), dd.Mul(z, pr))
		wi := dd.Add(dd.MulFloat(vi, x0), dd.Mul(z, pim))
		f := dd.DivFloat(piz, float64(k+1))
		pr, pim = vr, vi
		vr, vi = dd.Neg(dd.Mul(f, wi)), dd.Mul(f, wr)
		sr = dd.Add(sr, dd.DivFloat(vr, float64(k+2)))
		si = dd.Add(si, dd.DivFloat(vi, float64(k+2)))
		if k >= 2 && stdmath.Abs(vr.Hi)+stdmath.Abs(vi.Hi) < cfg.eps {
			break
		}
	}
	sr = dd.Mul(sr, z)
	si = dd.Mul(si, z)

	// x0^2/2 is exact.
	st, ct := sinCosPiExt(fp.DoubleDouble{Hi: 0.5 * x0 * x0})
	return dd.Add(fresnelCentersDD[i], dd.Sub(dd.Mul(ct, sr), dd.Mul(st, si)))
}

// fresnelAsymptoticExt evaluates C(x) = 1/2 + f sin(pi x^2/2) - g cos(pi x^2/2)
// for x >= 8 with
//
//	f ~ 1/(pi x) * sum (-1)^m (4m-1)!! / (pi x^2)^(2m)
//	g ~ 1/(pi^2 x^3) * sum (-1)^m (4m+1)!! / (pi x^2)^(2m).
//
// The phase x^2/2 is split into exact pieces, each reduced mod 2.
func fresnelAsymptoticExt(x fp.DoubleDouble, cfg *fresnelConfig) fp.DoubleDouble {
	x2 := dd.Square(x)
	y := dd.Mul(dd.Pi, x2)
	inv := dd.Div(dd.One, dd.Square(y))

	tf, sf := dd.One, dd.One
	tg, sg := dd.One, dd.One
	for m := 1; m < 200; m++ {
		tf = dd.MulFloat(dd.Mul(tf, inv), -float64((4*m-3)*(4*m-1)))
		tg = dd.MulFloat(dd.Mul(tg, inv), -float64((4*m-1)*(4*m+1)))
		sf = dd.Add(sf, tf)
		sg = dd.Add(sg, tg)
		if stdmath.Abs(tg.Hi) < cfg.eps*stdmath.Abs(sg.Hi) {
			break
		}
	}
	f := dd.Div(sf, dd.Mul(dd.Pi, x))
	g := dd.Div(sg, dd.Mul(dd.Mul(y, dd.Pi), x))

	// x^2/2 = (p + e)/2 + q + r + (a + b)/2 exactly.
	p, e := dd.TwoSqr(x.Hi)
	q, r := dd.TwoProd(x.Hi, x.Lo)
	a, b := dd.TwoSqr(x.Lo)
	phase := dd.Zero
	for _, v := range [...]float64{0.5 * p, 0.5 * e, q, r, 0.5 * a, 0.5 * b} {
		phase = dd.AddFloat(phase, mod2(v))
	}
	s, c := sinCosPiExt(phase)
	return dd.Add(halfDD, dd.Sub(dd.Mul(f, s), dd.Mul(g, c)))
}

func cbrtExt(x fp.DoubleDouble) fp.DoubleDouble {
	if x.IsNaN() || x.IsInf() || x.IsZero() {
		return x
	}
	ax := dd.Abs(x)
	y := fp.DoubleDouble{Hi: cbrt64(ax.Hi, true)}
	// Two Newton steps, y += (ax - y^3) / (3 y^2).
	for i := 0; i < 2; i++ {
		y2 := dd.Square(y)
		res := dd.Sub(ax, dd.Mul(y2, y))
		y = dd.Add(y, dd.Div(res, dd.MulFloat(y2, 3)))
	}
	if x.IsNegative() {
		return dd.Neg(y)
	}
	return y
}

// SinFloat80 returns sin(x). Arguments of magnitude 2^1024 and above
// return NaN.
func SinFloat80(x fp.Float80) fp.Float80 {
	s, _ := sinCosFormat(x, &float80Format)
	return s
}

// CosFloat80 returns cos(x). Arguments of magnitude 2^1024 and above
// return NaN.
func CosFloat80(x fp.Float80) fp.Float80 {
	_, c := sinCosFormat(x, &float80Format)
	return c
}

// SinCosPiFloat80 returns sin(pi*t) and cos(pi*t).
func SinCosPiFloat80(t fp.Float80) (s, c fp.Float80) {
	return sinCosPiFormat(t, &float80Format)
}

// AcosFloat80 returns the arccosine of x.
func AcosFloat80(x fp.Float80) fp.Float80 {
	return acosFormat(x, &float80Format)
}

// ErfFloat80 returns the error function of x. Results below the smallest
// normal magnitude flush to a signed zero.
func ErfFloat80(x fp.Float80) fp.Float80 {
	return erfFormat(x, &float80Format)
}

// NormalizedFresnelCosFloat80 returns C(x), the integral of cos(pi t^2/2)
// for t from 0 to x.
func NormalizedFresnelCosFloat80(x fp.Float80) fp.Float80 {
	return fresnelFormat(x, &float80Format)
}

// CbrtFloat80 returns the cube root of x.
func CbrtFloat80(x fp.Float80) fp.Float80 {
	return cbrtFormat(x, &float80Format)
}

// SinFloat128 returns sin(x). The argument is rounded to double-double
// before reduction, and magnitudes of 2^1024 and above return NaN.
func SinFloat128(x fp.Float128) fp.Float128 {
	s, _ := sinCosFormat(x, &float128Format)
	return s
}

// CosFloat128 returns cos(x) under the same rules as SinFloat128.
func CosFloat128(x fp.Float128) fp.Float128 {
	_, c := sinCosFormat(x, &float128Format)
	return c
}

// SinCosPiFloat128 returns sin(pi*t) and cos(pi*t).
func SinCosPiFloat128(t fp.Float128) (s, c fp.Float128) {
	return sinCosPiFormat(t, &float128Format)
}

// AcosFloat128 returns the arccosine of x.
func AcosFloat128(x fp.Float128) fp.Float128 {
	return acosFormat(x, &float128Format)
}

// ErfFloat128 returns the error function of x.
func ErfFloat128(x fp.Float128) fp.Float128 {
	return erfFormat(x, &float128Format)
}

// NormalizedFresnelCosFloat128 returns C(x). The argument is rounded to
// double-double first.
func NormalizedFresnelCosFloat128(x fp.Float128) fp.Float128 {
	return fresnelFormat(x, &float128Format)
}

// CbrtFloat128 returns the cube root of x.
func CbrtFloat128(x fp.Float128) fp.Float128 {
	return cbrtFormat(x, &float128Format)
}

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
	"math/big"
	"math/bits"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/dd"
)

// extended is satisfied by the formats evaluated through double-double.
type extended interface {
	fp.Float80 | fp.Float128
	fp.View
	IsZero() bool
	DoubleDouble() fp.DoubleDouble
}

// format maps an extended type onto double-double evaluation.
type format[F extended] struct {
	prec *precision

	fromDD func(fp.DoubleDouble) F

	// parts splits a finite nonzero value into |x| = m * 2^e, m in [1, 2).
	parts func(F) (m fp.DoubleDouble, e int)

	// scale returns fromDD(d) * 2^k, flushing to zero or Inf outside the
	// format's normal range.
	scale func(d fp.DoubleDouble, k int) F

	nan, one, piOver2, pi F

	// evenExp is the binary exponent from which every value is an even
	// integer.
	evenExp int
}

// maxReduceExp bounds the inputs that fit the double-double carrier.
const maxReduceExp = 1024

var float80Format = format[fp.Float80]{
	prec:    &float80Prec,
	fromDD:  fp.Float80FromDoubleDouble,
	parts:   float80Parts,
	scale:   float80Scale,
	nan:     fp.Float80NaN,
	one:     fp.Float80One,
	piOver2: fp.Float80FromDoubleDouble(dd.PiOver2),
	pi:      fp.Float80FromDoubleDouble(dd.Pi),
	evenExp: fp.Float80MantissaBits,
}

var float128Format = format[fp.Float128]{
	prec:    &float128Prec,
	fromDD:  fp.Float128FromDoubleDouble,
	parts:   float128Parts,
	scale:   float128Scale,
	nan:     fp.Float128NaN,
	one:     fp.Float128One,
	piOver2: fp.Float128{Hi: 0x3FFF921FB54442D1, Lo: 0x8469898CC51701B8},
	pi:      fp.Float128{Hi: 0x4000921FB54442D1, Lo: 0x8469898CC51701B8},
	evenExp: fp.Float128MantissaBits + 1,
}

func float80Parts(f fp.Float80) (fp.DoubleDouble, int) {
	e := int(f.Exponent()) - fp.Float80Bias
	if f.Exponent() == 0 {
		e++
	}
	mant := f.Mant
	lz := bits.LeadingZeros64(mant)
	mant <<= uint(lz)
	e -= lz
	hi := float64(mant&^0x7FF) * 0x1p-63
	lo := float64(mant&0x7FF) * 0x1p-63
	return fp.Normalize(hi, lo), e
}

func float80Scale(d fp.DoubleDouble, k int) fp.Float80 {
	r := fp.Float80FromDoubleDouble(d)
	if r.IsZero() || r.IsNaNOrInf() {
		return r
	}
	switch e := int(r.Exponent()) + k; {
	case e <= 0:
		return fp.Float80Zero.SetSign(r.Sign())
	case e >= fp.Float80ExpNaNInf:
		return fp.Float80Inf.SetSign(r.Sign())
	default:
		return r.SetExponent(uint(e))
	}
}

func float128Parts(f fp.Float128) (fp.DoubleDouble, int) {
	m := new(big.Float)
	e := f.BigFloat().MantExp(m)
	m.Abs(m)
	m.SetMantExp(m, 1)
	return fp.DoubleDoubleFromBig(m), e - 1
}

func float128Scale(d fp.DoubleDouble, k int) fp.Float128 {
	r := fp.Float128FromDoubleDouble(d)
	if r.IsZero() || r.IsNaNOrInf() {
		return r
	}
	switch e := int(r.Exponent()) + k; {
	case e <= 0:
		return fp.Float128Zero.SetSign(r.Sign())
	case e >= fp.Float128ExpNaNInf:
		return fp.Float128Inf.SetSign(r.Sign())
	default:
		return r.SetExponent(uint(e))
	}
}

// withSign returns d with the sign of x.
func withSign[F extended](d fp.DoubleDouble, x F) fp.DoubleDouble {
	if x.IsNegative() {
		return dd.Neg(d)
	}
	return d
}

func sinCosFormat[F extended](x F, f *format[F]) (s, c F) {
	switch {
	case x.IsNaN():
		return x, x
	case x.IsInf():
		return f.nan, f.nan
	case x.IsZero():
		return x, f.one
	}
	_, e := f.parts(x)
	switch {
	case e < f.prec.trig.tinyExp:
		return x, f.one
	case e >= maxReduceExp:
		return f.nan, f.nan
	}
	sd, cd := sinCosExt(x.DoubleDouble(), &f.prec.trig)
	return f.fromDD(sd), f.fromDD(cd)
}

func sinCosPiFormat[F extended](t F, f *format[F]) (s, c F) {
	switch {
	case t.IsNaN():
		return t, t
	case t.IsInf():
		return f.nan, f.nan
	case t.IsZero():
		return t, f.one
	}
	m, e := f.parts(t)
	switch {
	case e < f.prec.trig.tinyExp:
		return f.scale(withSign(dd.Mul(m, dd.Pi), t), e), f.one
	case e >= f.evenExp:
		return f.fromDD(withSign(dd.Zero, t)), f.one
	}
	sd, cd := sinCosPiExt(t.DoubleDouble())
	return f.fromDD(sd), f.fromDD(cd)
}

func acosFormat[F extended](x F, f *format[F]) F {
	switch {
	case x.IsNaN():
		return x
	case x.IsInf():
		return f.nan
	}
	if x.IsZero() {
		return f.piOver2
	}
	_, e := f.parts(x)
	switch {
	case e < f.prec.acos.tinyExp:
		return f.piOver2
	case e >= 1:
		return f.nan
	}
	r := acosExt(x.DoubleDouble(), &f.prec.acos)
	// Exact endpoints keep every bit of the format's pi.
	if r.Hi == dd.Pi.Hi && r.Lo == dd.Pi.Lo {
		return f.pi
	}
	return f.fromDD(r)
}

func erfFormat[F extended](x F, f *format[F]) F {
	switch {
	case x.IsNaN(), x.IsZero():
		return x
	case x.IsInf():
		return f.fromDD(withSign(dd.One, x))
	}
	m, e := f.parts(x)
	if e < f.prec.erf.tinyExp {
		return f.scale(withSign(dd.Mul(m, twoOverSqrtPi), x), e)
	}
	if e >= maxReduceExp {
		return f.fromDD(withSign(dd.One, x))
	}
	return f.fromDD(erfExt(x.DoubleDouble(), &f.prec.erf))
}

func cbrtFormat[F extended](x F, f *format[F]) F {
	if x.IsNaN() || x.IsInf() || x.IsZero() {
		return x
	}
	m, e := f.parts(x)
	q, r := e/3, e%3
	if r < 0 {
		r += 3
		q--
	}
	y := cbrtExt(dd.Ldexp(m, r))
	return f.scale(withSign(y, x), q)
}

func fresnelFormat[F extended](x F, f *format[F]) F {
	switch {
	case x.IsNaN(), x.IsZero():
		return x
	case x.IsInf():
		return f.fromDD(withSign(halfDD, x))
	}
	_, e := f.parts(x)
	switch {
	case e < f.prec.fresnel.tinyExp:
		return x
	case e >= f.prec.fresnel.limitExp:
		return f.fromDD(withSign(halfDD, x))
	}
	return f.fromDD(fresnelExt(x.DoubleDouble(), &f.prec.fresnel))
}

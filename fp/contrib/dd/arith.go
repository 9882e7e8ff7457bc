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
	"math"

	"github.com/ajroetker/go-specfun/fp"
)

// DD is shorthand for the value type all operations here work on.
type DD = fp.DoubleDouble

// Double-double constants.
var (
	Zero = DD{}
	One  = DD{Hi: 1}

	Pi      = DD{Hi: 0x1.921fb54442d18p+1, Lo: 0x1.1a62633145c07p-53}
	PiOver2 = DD{Hi: 0x1.921fb54442d18p+0, Lo: 0x1.1a62633145c07p-54}
	Ln2     = DD{Hi: 0x1.62e42fefa39efp-1, Lo: 0x1.abc9e3b39803fp-56}
)

// ln2Tail is ln 2 - Ln2, rounded.
const ln2Tail = 0x1.7b57a079a1934p-111

// Add returns a + b.
func Add(a, b DD) DD {
	s1, s2 := TwoSum(a.Hi, b.Hi)
	t1, t2 := TwoSum(a.Lo, b.Lo)
	s2 = float64(s2 + t1)
	s1, s2 = FastTwoSum(s1, s2)
	s2 = float64(s2 + t2)
	s1, s2 = FastTwoSum(s1, s2)
	return DD{Hi: s1, Lo: s2}
}

// Sub returns a - b.
func Sub(a, b DD) DD {
	return Add(a, Neg(b))
}

// AddFloat returns a + b for a float64 b.
func AddFloat(a DD, b float64) DD {
	s1, s2 := TwoSum(a.Hi, b)
	s2 = float64(s2 + a.Lo)
	s1, s2 = FastTwoSum(s1, s2)
	return DD{Hi: s1, Lo: s2}
}

// Mul returns a * b. The a.Lo*b.Lo term is below the working precision and
// is dropped.
func Mul(a, b DD) DD {
	p, e := TwoProd(a.Hi, b.Hi)
	e = float64(e + float64(float64(a.Hi*b.Lo)+float64(a.Lo*b.Hi)))
	p, e = FastTwoSum(p, e)
	return DD{Hi: p, Lo: e}
}

// MulFloat returns a * b for a float64 b.
func MulFloat(a DD, b float64) DD {
	p, e := TwoProd(a.Hi, b)
	e = float64(e + float64(a.Lo*b))
	p, e = FastTwoSum(p, e)
	return DD{Hi: p, Lo: e}
}

// Square returns a * a.
func Square(a DD) DD {
	p, e := TwoSqr(a.Hi)
	e = float64(e + float64(2*float64(a.Hi*a.Lo)))
	p, e = FastTwoSum(p, e)
	return DD{Hi: p, Lo: e}
}

// Div returns a / b using three correction steps of long division.
func Div(a, b DD) DD {
	q1 := float64(a.Hi / b.Hi)
	r := Sub(a, MulFloat(b, q1))
	q2 := float64(r.Hi / b.Hi)
	r = Sub(r, MulFloat(b, q2))
	q3 := float64(r.Hi / b.Hi)
	q1, q2 = FastTwoSum(q1, q2)
	return AddFloat(DD{Hi: q1, Lo: q2}, q3)
}

// DivFloat returns a / b for a float64 b.
func DivFloat(a DD, b float64) DD {
	q1 := float64(a.Hi / b)
	p, e := TwoProd(q1, b)
	r := float64(float64(float64(a.Hi-p)-e) + a.Lo)
	q2 := float64(r / b)
	q1, q2 = FastTwoSum(q1, q2)
	return DD{Hi: q1, Lo: q2}
}

// Sqrt returns the square root of a, or NaN when a is negative.
func Sqrt(a DD) DD {
	if a.Hi <= 0 {
		if a.Hi == 0 {
			return a
		}
		return DD{Hi: math.NaN()}
	}
	s := math.Sqrt(a.Hi)
	p, e := TwoSqr(s)
	r := Sub(a, DD{Hi: p, Lo: e})
	hi, lo := FastTwoSum(s, float64(r.Hi/float64(2*s)))
	return DD{Hi: hi, Lo: lo}
}

// Neg returns -a.
func Neg(a DD) DD {
	return DD{Hi: -a.Hi, Lo: -a.Lo}
}

// Abs returns |a|.
func Abs(a DD) DD {
	if a.Hi < 0 || (a.Hi == 0 && math.Signbit(a.Hi)) {
		return Neg(a)
	}
	return a
}

// Cmp compares a and b and returns -1, 0 or +1. Both must be normalized and
// neither may be NaN.
func Cmp(a, b DD) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

// Ldexp returns a * 2^k.
func Ldexp(a DD, k int) DD {
	return DD{Hi: math.Ldexp(a.Hi, k), Lo: math.Ldexp(a.Lo, k)}
}

// Exp returns e^a.
//
// a = k*ln2 + r with |r| <= ln2/2, then r is scaled by 2^-8 and
// expm1 of the scaled value is summed to degree 11. Squaring through
// expm1(2s) = expm1(s) * (expm1(s) + 2) keeps the relative error small.
func Exp(a DD) DD {
	switch {
	case math.IsNaN(a.Hi):
		return a
	case a.Hi > 709.79:
		return DD{Hi: math.Inf(1)}
	case a.Hi < -745.2:
		return Zero
	}
	k := math.Round(a.Hi / Ln2.Hi)
	p1, e1 := TwoProd(k, Ln2.Hi)
	p2, e2 := TwoProd(k, Ln2.Lo)
	r := Sub(a, DD{Hi: p1, Lo: e1})
	r = Sub(r, DD{Hi: p2, Lo: e2})
	r = AddFloat(r, -float64(k*ln2Tail))

	const squarings = 8
	s := Ldexp(r, -squarings)
	t := One
	for n := 11; n >= 2; n-- {
		t = AddFloat(DivFloat(Mul(t, s), float64(n)), 1)
	}
	m := Mul(s, t)
	for i := 0; i < squarings; i++ {
		m = Mul(m, AddFloat(m, 2))
	}
	return Ldexp(AddFloat(m, 1), int(k))
}

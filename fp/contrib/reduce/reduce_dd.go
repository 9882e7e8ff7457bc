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

package reduce

import (
	"math"
	"math/bits"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/dd"
)

// AngleDD is a double-double reduced argument, R ~ x - n*pi/2.
type AngleDD struct {
	R        fp.DoubleDouble
	Quadrant int
}

// CodyWaiteLimit bounds the inputs ReduceDD handles by subtracting n times a
// four-part pi/2. Larger inputs, and results that cancel below
// cancellationLimit, go through the fixed-point product with 2/pi.
const CodyWaiteLimit = 0x1p20

const cancellationLimit = 0x1p-30

// pi/2 in four float64 parts, about 2^-216 relative.
var piOver2Parts = [4]float64{
	0x1.921fb54442d18p+0,
	0x1.1a62633145c07p-54,
	-0x1.f1976b7ed8fbcp-110,
	0x1.4cf98e804177dp-164,
}

// twoOverPiWords is twoOverPiDigits repacked into 64-bit words, most
// significant first: word i holds the bits of weight 2^-(64i+1) through
// 2^-(64i+64).
var twoOverPiWords = packDigits(twoOverPiDigits[:])

func packDigits(digits []float64) []uint64 {
	words := make([]uint64, len(digits)*24/64)
	for p := 0; p < len(words)*64; p++ {
		d := uint64(digits[p/24])
		if d>>(23-uint(p%24))&1 != 0 {
			words[p/64] |= 1 << (63 - uint(p%64))
		}
	}
	return words
}

// ReduceDD reduces a finite double-double x.
//
// The result keeps about 2^-105 relative accuracy while |R| stays above
// 2^-80; closer cancellations are limited by the 256-bit fraction kept by the
// fixed-point path.
func ReduceDD(x fp.DoubleDouble) AngleDD {
	ax := math.Abs(x.Hi)
	if ax <= math.Pi/4 {
		return AngleDD{R: x}
	}
	if ax < CodyWaiteLimit {
		if a, ok := reduceCodyWaite(x); ok {
			return a
		}
	}
	return reducePayneHanek(x)
}

// reduceCodyWaite subtracts n*pi/2 with every partial product kept exact.
// It reports false when the result cancels too far for the remaining parts.
func reduceCodyWaite(x fp.DoubleDouble) (AngleDD, bool) {
	n := math.Round(float64(x.Hi * hpInv))
	r := x
	for _, p := range piOver2Parts[:3] {
		hi, lo := dd.TwoProd(n, p)
		r = dd.Sub(r, fp.DoubleDouble{Hi: hi, Lo: lo})
	}
	r = dd.AddFloat(r, -float64(n*piOver2Parts[3]))
	if math.Abs(r.Hi) < cancellationLimit {
		return AngleDD{}, false
	}
	return AngleDD{R: r, Quadrant: int(int64(n) & 3)}, true
}

// reducePayneHanek computes x*2/pi modulo 4 as a 256-bit fixed-point
// fraction (two integer bits, 254 fraction bits), then multiplies the
// centered fraction by pi/2.
func reducePayneHanek(x fp.DoubleDouble) AngleDD {
	f := fixedTwoOverPi(x.Hi)
	if x.Lo != 0 {
		f = add256(f, fixedTwoOverPi(x.Lo))
	}

	// Top two bits are the quadrant; the next bit rounds to the nearest
	// multiple of pi/2.
	q := int(f[0] >> 62)
	frac := f
	frac[0] &= 1<<62 - 1
	neg := frac[0]>>61 != 0
	if neg {
		q = (q + 1) & 3
		frac = neg256(frac)
		frac[0] &= 1<<62 - 1
	}

	r := fixedToDD(frac, 254)
	r = dd.Mul(r, dd.PiOver2)
	if neg {
		r = dd.Neg(r)
	}
	return AngleDD{R: r, Quadrant: q}
}

// fixedTwoOverPi returns v*2/pi/4 modulo 1 as 256 fraction bits.
func fixedTwoOverPi(v float64) [4]uint64 {
	b := fp.Bits64(v)
	m := b.Mantissa()
	e := int(b.Exponent())
	if e == 0 {
		e = 1
	} else {
		m |= 1 << fp.Float64MantissaBits
	}
	// v = m * 2^s * 4 with s = e - bias - 52 - 2. The table bits of weight
	// 2^-k with k <= s only contribute integers, so the window starts at
	// bit s+1 and m*window needs no further shift.
	s := e - fp.Float64Bias - fp.Float64MantissaBits - 2

	var w [5]uint64
	for i := range w {
		w[i] = twoOverPiWindow(s + 1 + 64*i)
	}

	// m * w as six words; the top word is integral and dropped.
	var p [6]uint64
	var carry uint64
	for i := 4; i >= 0; i-- {
		hi, lo := bits.Mul64(m, w[i])
		var c uint64
		p[i+1], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	p[0] = carry

	out := [4]uint64{p[1], p[2], p[3], p[4]}
	if b.IsNegative() {
		out = neg256(out)
	}
	return out
}

// twoOverPiWindow returns the 64 bits of 2/pi starting at the bit of weight
// 2^-k. Bits at k <= 0 are the (zero) integer part.
func twoOverPiWindow(k int) uint64 {
	idx := k - 1
	w := idx >> 6 // floor division
	off := uint(idx - w<<6)
	v := wordAt(w) << off
	if off != 0 {
		v |= wordAt(w+1) >> (64 - off)
	}
	return v
}

func wordAt(i int) uint64 {
	if i < 0 || i >= len(twoOverPiWords) {
		return 0
	}
	return twoOverPiWords[i]
}

func add256(a, b [4]uint64) [4]uint64 {
	var out [4]uint64
	var c uint64
	for i := 3; i >= 0; i-- {
		out[i], c = bits.Add64(a[i], b[i], c)
	}
	return out
}

func neg256(a [4]uint64) [4]uint64 {
	var out [4]uint64
	var borrow uint64
	for i := 3; i >= 0; i-- {
		out[i], borrow = bits.Sub64(0, a[i], borrow)
	}
	return out
}

// fixedToDD returns f / 2^fracBits, f read as a 256-bit integer.
func fixedToDD(f [4]uint64, fracBits int) fp.DoubleDouble {
	i := 0
	for i < 4 && f[i] == 0 {
		i++
	}
	if i == 4 {
		return fp.DoubleDouble{}
	}
	sh := uint(bits.LeadingZeros64(f[i]))
	lz := 64*i + int(sh)
	get := func(j int) uint64 {
		if j < 4 {
			return f[j]
		}
		return 0
	}
	// u1 + u2/2^64 holds the leading 128 bits; f ~ (u1 + u2/2^64) * 2^(192-lz).
	u1 := get(i)<<sh | rsh(get(i+1), 64-sh)
	u2 := get(i+1)<<sh | rsh(get(i+2), 64-sh)

	hi := float64(u1 &^ 0x7FF)
	lo := float64(float64(u1&0x7FF) + float64(float64(u2)*0x1p-64))
	return dd.Ldexp(fp.Normalize(hi, lo), 192-lz-fracBits)
}

func rsh(v uint64, n uint) uint64 {
	if n >= 64 {
		return 0
	}
	return v >> n
}

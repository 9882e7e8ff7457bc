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

// Package dd provides error-free transformations of float64 arithmetic and
// double-double arithmetic built on them.
//
// Every intermediate that must be rounded to float64 is wrapped in an explicit
// float64 conversion. The Go compiler is allowed to fuse x*y + z into a single
// FMA, and an explicit conversion is the only way to forbid it; a fused
// multiply-add silently changes the error term of these transforms.
package dd

import (
	"math"

	"github.com/ajroetker/go-specfun/fp"
)

const (
	// Big52 is 1.5*2^52. For |x| < 2^51, RoundToMultiple(x, Big52) rounds x
	// to the nearest integer.
	Big52 = 0x1.8p52

	// Big54 is 1.5*2^54, rounding to the nearest multiple of 4.
	Big54 = 0x1.8p54

	// Splitter is 2^27 + 1, the Dekker constant that cuts a float64 into
	// two halves of at most 26 significant bits each.
	Splitter = 134217729.0
)

// RoundToMultiple returns (x + c) - c evaluated in float64. With c = 1.5*2^k
// and |x| < 2^(k-1) the result is x rounded to the nearest multiple of
// 2^(k-52), ties to even.
func RoundToMultiple(x, c float64) float64 {
	return float64(float64(x+c) - c)
}

// Split returns hi + lo = x exactly, where hi carries the upper 26 bits of
// the significand. |x| must be below 2^995 so the scaled value cannot
// overflow.
func Split(x float64) (hi, lo float64) {
	return SplitWith(x, Splitter)
}

// SplitWith is Split with a caller-chosen splitter 2^s + 1; hi keeps
// 53 - s significant bits.
func SplitWith(x, splitter float64) (hi, lo float64) {
	t := float64(splitter * x)
	hi = float64(t - float64(t-x))
	lo = float64(x - hi)
	return
}

// TwoSum returns s = fl(a+b) and the exact rounding error e, a + b = s + e.
func TwoSum(a, b float64) (s, e float64) {
	s = float64(a + b)
	bb := float64(s - a)
	e = float64(float64(a-float64(s-bb)) + float64(b-bb))
	return
}

// FastTwoSum is TwoSum for |a| >= |b| (or a == 0).
func FastTwoSum(a, b float64) (s, e float64) {
	s = float64(a + b)
	e = float64(b - float64(s-a))
	return
}

// TwoDiff returns s = fl(a-b) and the exact error, a - b = s + e.
func TwoDiff(a, b float64) (s, e float64) {
	s = float64(a - b)
	bb := float64(s - a)
	e = float64(float64(a-float64(s-bb)) - float64(b+bb))
	return
}

// TwoProd returns p = fl(a*b) and the exact error, a*b = p + e, provided
// no intermediate overflows or underflows.
func TwoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	if fp.HasFMA() {
		e = math.FMA(a, b, -p)
		return
	}
	return p, dekkerError(a, b, p)
}

// TwoSqr is TwoProd(a, a).
func TwoSqr(a float64) (p, e float64) {
	p = float64(a * a)
	if fp.HasFMA() {
		e = math.FMA(a, a, -p)
		return
	}
	hi, lo := Split(a)
	e = float64(float64(float64(float64(hi*hi)-p)+float64(2*float64(hi*lo))) + float64(lo*lo))
	return
}

func dekkerError(a, b, p float64) float64 {
	aHi, aLo := Split(a)
	bHi, bLo := Split(b)
	e := float64(float64(aHi*bHi) - p)
	e = float64(e + float64(aHi*bLo))
	e = float64(e + float64(aLo*bHi))
	return float64(e + float64(aLo*bLo))
}

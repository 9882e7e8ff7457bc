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

import "github.com/ajroetker/go-specfun/fp"

// Horner evaluates c[0] + c[1]*x + ... + c[n-1]*x^(n-1).
//
// Each step is rounded separately: r = r*x + c[i] is written as
// T(r*x) + c[i] so the result does not depend on whether the platform
// fuses the multiply-add.
func Horner[T fp.Floats](x T, c []T) T {
	if len(c) == 0 {
		return 0
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = T(r*x) + c[i]
	}
	return r
}

// HornerDD evaluates the polynomial with double-double coefficients c at x.
func HornerDD(x DD, c []DD) DD {
	if len(c) == 0 {
		return Zero
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = Add(Mul(r, x), c[i])
	}
	return r
}

// HornerDDFloat is HornerDD with float64 coefficients.
func HornerDDFloat(x DD, c []float64) DD {
	if len(c) == 0 {
		return Zero
	}
	r := DD{Hi: c[len(c)-1]}
	for i := len(c) - 2; i >= 0; i-- {
		r = AddFloat(Mul(r, x), c[i])
	}
	return r
}

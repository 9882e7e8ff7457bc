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
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	numTwoOverPiDigits = 75
	sinPiSteps         = 128 // sin(pi*k/sinPiSteps)
	cbrtSteps          = 128 // 1 + k/cbrtSteps
	fresnelNumWindows  = 32
	fresnelNumCoeffs   = 10
	fresnelSeriesTerms = 90
	fresnelNumCenters  = 56 // 1 + (2i+1)/16 covers [1, 8)
	erfNumWindows      = 8  // 1 + (2i+1)/16 covers [1, 2)
	erfNumCoeffs       = 11
)

func reduceTables() []table {
	return []table{{
		name: "twoOverPiDigits",
		doc:  []string{"twoOverPiDigits holds 2/pi in base 2^24: digit i has weight 2^(-24*(i+1))."},
		body: func(prec uint) string {
			digits := twoOverPiDigits(prec, numTwoOverPiDigits)
			vals := make([]string, len(digits))
			for i, d := range digits {
				vals[i] = strconv.FormatInt(d, 10)
			}
			return rowsBody("float64", vals, 5)
		},
	}}
}

// twoOverPiDigits returns the first n base-2^24 digits of 2/pi.
func twoOverPiDigits(prec uint, n int) []int64 {
	v := newFloat(prec).Quo(fromInt(prec, 2), bigPi(prec))
	digits := make([]int64, n)
	for i := range digits {
		v.SetMantExp(v, 24)
		d, _ := v.Int64()
		digits[i] = d
		v.Sub(v, fromInt(prec, d))
	}
	return digits
}

func mathTables() []table {
	tables := []table{
		{
			name:  "sinPiTable",
			doc:   []string{"sinPiTable holds sin(pi*k/128), k = 0..127, as double-double pairs."},
			usesD: true,
			body:  func(prec uint) string { return ddBody(sinPiValues(prec)) },
		},
		{
			name: "cbrtRecip",
			doc:  []string{"cbrtRecip holds 1/(1+k/128), k = 0..127."},
			body: func(uint) string { return rowsBody("float64", floatStrings(cbrtRecipValues()), 4) },
		},
		{
			name: "cbrtRoot",
			doc:  []string{"cbrtRoot holds the cube root of 1+k/128, k = 0..127."},
			body: func(prec uint) string { return rowsBody("float64", floatStrings(cbrtRootValues(prec)), 4) },
		},
		{
			name: "fresnelWindows",
			doc: []string{
				"fresnelWindows holds the Taylor coefficients of the normalized Fresnel",
				"cosine about 1+(2i+1)/64, i = 0..31.",
			},
			body: fresnelBody,
		},
		{
			name:  "fresnelCentersDD",
			doc:   []string{"fresnelCentersDD holds C(1+(2i+1)/16), i = 0..55."},
			usesD: true,
			body: func(prec uint) string {
				return ddBody(sixteenthsValues(prec, fresnelNumCenters, bigFresnelCos))
			},
		},
		{
			name:  "erfMidHead",
			doc:   []string{"erfMidHead holds erf(1+(2i+1)/16), i = 0..7."},
			usesD: true,
			body: func(prec uint) string {
				return ddBody(sixteenthsValues(prec, erfNumWindows, bigErf))
			},
		},
		{
			name: "erfMidWindows",
			doc: []string{
				"erfMidWindows holds the Taylor coefficients of erf of orders 1..11",
				"about 1+(2i+1)/16, i = 0..7.",
			},
			body: erfMidBody,
		},
		{
			name:  "sinSeriesDD",
			doc:   []string{"sinSeriesDD holds (-1)^k/(2k+1)!, k = 0..15."},
			usesD: true,
			body:  func(prec uint) string { return ddBody(factorialSeries(prec, 16, 1)) },
		},
		{
			name:  "cosSeriesDD",
			doc:   []string{"cosSeriesDD holds (-1)^k/(2k)!, k = 0..15."},
			usesD: true,
			body:  func(prec uint) string { return ddBody(factorialSeries(prec, 16, 0)) },
		},
		{
			name: "acosSeriesDD",
			doc: []string{
				"acosSeriesDD holds the Maclaurin coefficients of asin(x)/x in x^2,",
				"(2k)!/(4^k (k!)^2 (2k+1)), k = 0..13.",
			},
			usesD: true,
			body:  func(prec uint) string { return ddBody(asinSeries(prec, 14)) },
		},
	}
	for _, set := range acosCoefficientSets {
		tables = append(tables, table{
			name:  set.name,
			doc:   set.doc,
			usesD: true,
			body: func(prec uint) string {
				vals := make([]*big.Float, len(set.coeffs))
				for i, s := range set.coeffs {
					v, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
					if err != nil {
						panic(fmt.Sprintf("%s[%d]: %v", set.name, i, err))
					}
					vals[i] = v
				}
				return ddBody(vals)
			},
		})
	}
	return tables
}

func sinPiValues(prec uint) []*big.Float {
	pi := bigPi(prec)
	vals := make([]*big.Float, sinPiSteps)
	for k := range vals {
		x := newFloat(prec).Mul(pi, fromInt(prec, int64(k)))
		x.Quo(x, fromInt(prec, sinPiSteps))
		vals[k] = bigSin(x)
	}
	return vals
}

func cbrtRecipValues() []float64 {
	vals := make([]float64, cbrtSteps)
	for k := range vals {
		vals[k] = 1 / (1 + float64(k)/cbrtSteps)
	}
	return vals
}

func cbrtRootValues(prec uint) []float64 {
	vals := make([]float64, cbrtSteps)
	for k := range vals {
		c := ratio(prec, big.NewInt(int64(cbrtSteps+k)), big.NewInt(cbrtSteps))
		vals[k], _ = bigCbrt(c).Float64()
	}
	return vals
}

// factorialSeries returns (-1)^k/(2k+offset)! for k < n.
func factorialSeries(prec uint, n, offset int64) []*big.Float {
	vals := make([]*big.Float, n)
	for k := int64(0); k < n; k++ {
		v := ratio(prec, big.NewInt(1), factorial(2*k+offset))
		if k%2 == 1 {
			v.Neg(v)
		}
		vals[k] = v
	}
	return vals
}

// asinSeries returns (2k)!/(4^k (k!)^2 (2k+1)) for k < n.
func asinSeries(prec uint, n int64) []*big.Float {
	vals := make([]*big.Float, n)
	for k := int64(0); k < n; k++ {
		den := new(big.Int).Lsh(big.NewInt(1), uint(2*k))
		kf := factorial(k)
		den.Mul(den, kf)
		den.Mul(den, kf)
		den.Mul(den, big.NewInt(2*k+1))
		vals[k] = ratio(prec, factorial(2*k), den)
	}
	return vals
}

// fresnelTaylor returns the first n Taylor coefficients of
// C(x) = sum (-1)^m (pi/2)^(2m) x^(4m+1) / ((4m+1) (2m)!) about x0, obtained
// by expanding each power of x binomially.
func fresnelTaylor(prec uint, pi, x0 *big.Float, n int) []*big.Float {
	halfPi := newFloat(prec).Quo(pi, fromInt(prec, 2))
	h2 := newFloat(prec).Mul(halfPi, halfPi)

	a := make([]*big.Float, fresnelSeriesTerms)
	pow := fromInt(prec, 1)
	for m := range a {
		v := ratio(prec, big.NewInt(1), new(big.Int).Mul(factorial(int64(2*m)), big.NewInt(int64(4*m+1))))
		v.Mul(v, pow)
		if m%2 == 1 {
			v.Neg(v)
		}
		a[m] = v
		pow = newFloat(prec).Mul(pow, h2)
	}

	xp := make([]*big.Float, 4*len(a)+1)
	xp[0] = fromInt(prec, 1)
	for j := 1; j < len(xp); j++ {
		xp[j] = newFloat(prec).Mul(xp[j-1], x0)
	}

	coeffs := make([]*big.Float, n)
	for k := range coeffs {
		sum := newFloat(prec)
		for m, am := range a {
			e := 4*m + 1
			if e < k {
				continue
			}
			term := newFloat(prec).SetInt(new(big.Int).Binomial(int64(e), int64(k)))
			term.Mul(term, am)
			term.Mul(term, xp[e-k])
			sum.Add(sum, term)
		}
		coeffs[k] = sum
	}
	return coeffs
}

func fresnelBody(prec uint) string {
	pi := bigPi(prec)
	rows := make([][]float64, fresnelNumWindows)
	for i := range rows {
		// 1 + i/32 + 1/64
		x0 := ratio(prec, big.NewInt(int64(64+2*i+1)), big.NewInt(64))
		rows[i] = make([]float64, fresnelNumCoeffs)
		for k, c := range fresnelTaylor(prec, pi, x0, fresnelNumCoeffs) {
			rows[i][k], _ = c.Float64()
		}
	}
	return windowsBody(rows, fresnelNumCoeffs/2)
}

// sixteenthsValues returns f(pi, 1+(2i+1)/16) for i < n.
func sixteenthsValues(prec uint, n int, f func(pi, x *big.Float) *big.Float) []*big.Float {
	pi := bigPi(prec)
	vals := make([]*big.Float, n)
	for i := range vals {
		vals[i] = f(pi, ratio(prec, big.NewInt(int64(16+2*i+1)), big.NewInt(16)))
	}
	return vals
}

// erfTaylor returns the Taylor coefficients of erf of orders 1..n about x0.
// With g(z) = e^(-(x0+z)^2) = sum g_k z^k, g' = -2(x0+z)g gives
// (k+1) g_(k+1) = -2 (x0 g_k + g_(k-1)), and erf' = 2/sqrt(pi) g.
func erfTaylor(pi, x0 *big.Float, n int) []*big.Float {
	prec := x0.Prec()
	x2 := newFloat(prec).Mul(x0, x0)
	g := make([]*big.Float, n)
	g[0] = bigExp(x2.Neg(x2))
	if n > 1 {
		g[1] = newFloat(prec).Mul(x0, g[0])
		g[1].Mul(g[1], fromInt(prec, -2))
	}
	for k := 1; k+1 < n; k++ {
		v := newFloat(prec).Mul(x0, g[k])
		v.Add(v, g[k-1])
		v.Mul(v, fromInt(prec, -2))
		g[k+1] = v.Quo(v, fromInt(prec, int64(k+1)))
	}
	scale := twoOverSqrtPi(pi)
	coeffs := make([]*big.Float, n)
	for k, gk := range g {
		c := newFloat(prec).Mul(gk, scale)
		coeffs[k] = c.Quo(c, fromInt(prec, int64(k+1)))
	}
	return coeffs
}

func erfMidBody(prec uint) string {
	pi := bigPi(prec)
	rows := make([][]float64, erfNumWindows)
	for i := range rows {
		x0 := ratio(prec, big.NewInt(int64(16+2*i+1)), big.NewInt(16))
		rows[i] = make([]float64, erfNumCoeffs)
		for k, c := range erfTaylor(pi, x0, erfNumCoeffs) {
			rows[i][k], _ = c.Float64()
		}
	}
	return windowsBody(rows, 4)
}

// windowsBody writes one braced block per row, perLine values to a line.
func windowsBody(rows [][]float64, perLine int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d][%d]float64{\n", len(rows), len(rows[0]))
	for _, row := range rows {
		b.WriteString("\t{\n")
		for i := 0; i < len(row); i += perLine {
			end := min(i+perLine, len(row))
			fmt.Fprintf(&b, "\t\t%s,\n", strings.Join(floatStrings(row[i:end]), ", "))
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")
	return b.String()
}

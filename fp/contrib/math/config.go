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

import "github.com/ajroetker/go-specfun/fp"

// trigConfig sizes the sin and cos series on the reduced argument.
type trigConfig struct {
	// |x| < 2^tinyExp returns sin = x, cos = 1.
	tinyExp int

	// Number of sinSeriesDD and cosSeriesDD terms used on |r| <= pi/4.
	sinTerms, cosTerms int
}

// acosConfig holds the regime thresholds and coefficient sets for arccos.
type acosConfig struct {
	// |x| < 2^tinyExp returns pi/2; |x| < 2^smallExp uses the Maclaurin
	// series.
	tinyExp, smallExp int

	maclaurin []fp.DoubleDouble

	// pi/2 - (x + x^3 P(x^2)/Q(x^2)) on [2^smallExp, 0.5).
	remezP, remezQ []fp.DoubleDouble

	// 2*(s + s z A(z)/B(z)), s = sqrt(z), z = (1-x)/2, on [0.5, 1).
	tailA, tailB []fp.DoubleDouble
}

// erfConfig holds the regime thresholds for the error function.
type erfConfig struct {
	// |x| < 2^tinyExp returns 2x/sqrt(pi).
	tinyExp int

	// The Maclaurin series runs below seriesLimit and stops once a term
	// falls under seriesEps times the partial sum.
	seriesLimit float64
	seriesEps   float64

	// The continued fraction for erfc uses int(cfScale/x^2) + cfExtra terms.
	cfScale float64
	cfExtra int

	// erf(x) rounds to 1 at and beyond saturate.
	saturate float64
}

// fresnelConfig holds the regime thresholds for the normalized Fresnel
// cosine.
type fresnelConfig struct {
	// |x| < 2^tinyExp returns x; |x| >= 2^limitExp returns ±1/2.
	tinyExp, limitExp int

	// Series stop once a term falls under eps, relative to the partial
	// sum for the Maclaurin and asymptotic series and absolute for the
	// window series.
	eps float64
}

// precision bundles the records for one extended format.
type precision struct {
	trig    trigConfig
	acos    acosConfig
	erf     erfConfig
	fresnel fresnelConfig
}

var doubleDoublePrec = precision{
	trig: trigConfig{tinyExp: -53, sinTerms: 15, cosTerms: 16},
	acos: acosConfig{
		tinyExp:   -105,
		smallExp:  -4,
		maclaurin: acosSeriesDD[:13],
		remezP:    acosRemezPQuad[:],
		remezQ:    acosRemezQQuad[:],
		tailA:     acosTailADD[:],
		tailB:     acosTailBDD[:],
	},
	erf: erfConfig{
		tinyExp:     -54,
		seriesLimit: 2,
		seriesEps:   0x1p-110,
		cfScale:     480,
		cfExtra:     8,
		saturate:    8.46875,
	},
	fresnel: fresnelConfig{tinyExp: -27, limitExp: 107, eps: 0x1p-110},
}

var float80Prec = precision{
	trig: trigConfig{tinyExp: -33, sinTerms: 11, cosTerms: 11},
	acos: acosConfig{
		tinyExp:   -65,
		smallExp:  -3,
		maclaurin: acosSeriesDD[:10],
		remezP:    acosRemezP80[:],
		remezQ:    acosRemezQ80[:],
		tailA:     acosTailA80[:],
		tailB:     acosTailB80[:],
	},
	erf: erfConfig{
		tinyExp:     -33,
		seriesLimit: 2,
		seriesEps:   0x1p-70,
		cfScale:     240,
		cfExtra:     8,
		saturate:    6.53125,
	},
	fresnel: fresnelConfig{tinyExp: -16, limitExp: 66, eps: 0x1p-70},
}

// float128Prec keeps the quadruple thresholds and coefficient sets; the
// series lengths match double-double since evaluation runs there.
var float128Prec = precision{
	trig: trigConfig{tinyExp: -57, sinTerms: 15, cosTerms: 16},
	acos: acosConfig{
		tinyExp:   -116,
		smallExp:  -4,
		maclaurin: acosSeriesDD[:14],
		remezP:    acosRemezPQuad[:],
		remezQ:    acosRemezQQuad[:],
		tailA:     acosTailAQuad[:],
		tailB:     acosTailBQuad[:],
	},
	erf: erfConfig{
		tinyExp:     -57,
		seriesLimit: 2,
		seriesEps:   0x1p-117,
		cfScale:     480,
		cfExtra:     8,
		saturate:    8.75,
	},
	fresnel: fresnelConfig{tinyExp: -28, limitExp: 113, eps: 0x1p-112},
}

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

// C(x)/x as functions of x^4.
var (
	fresnelMaclaurin = [6]float64{1, -0.24674011002723398, 0.028185500877894225, -0.0016048831356425355, 5.4074133814083916e-05, -1.2000972558600288e-06}

	fresnelPadeP = [6]float64{1, -0.21090942541681898, 0.01995294735482257, -0.0007391112311193338, 1.2274218310026533e-05, -7.809732518584586e-08}
	fresnelPadeQ = [5]float64{1, 0.03583068461041497, 0.0006083135400532564, 5.961461784596081e-06, 2.945588517252337e-08}
)

// Auxiliary functions f and g, C(x) = 1/2 + f(x) sin(pi x^2/2) - g(x) cos(pi x^2/2),
// as rational functions of 1/x on [2, 4) and of 4/x on [4, 2^17).
var (
	fresnelSmallFP = [8]float64{
		+2.5703724299657391880484846679213652814012552703086e-07,
		+3.1830090055989159443079660141643697380527143958367e-01,
		-5.8364360938790173766825869667058317208792477494973e-01,
		+2.1270894621813623233357731534627057397142961709989e+00,
		-1.3707938560959418037898894458374663307834900805917e+00,
		+2.5885155851674980284912655727964308957274722252260e+00,
		+1.1096318379407176910580428607896631060221419264663e-01,
		+1.5677269150255168623117903590862822519021085751393e-01,
	}
	fresnelSmallFQ = [7]float64{
		1,
		-1.8340061067984813713149842839488538605288002066046e+00,
		+6.6862881102108010107333439887856875158324172145474e+00,
		-4.3270587876109819201264786452599507842454214366160e+00,
		+8.4987835739785486837778649463261557667671771347990e+00,
		-2.6581276744363058729791325678478430945922854114764e-01,
		+2.2005566252691005977332094546307120239536233286139e+00,
	}
	fresnelSmallGP = [8]float64{
		-1.5037922851806219733961438088877029730210353047650e-07,
		+5.8825135283577460507410927514017802605784905819186e-06,
		-1.0404950252132407674352474461119774828636605755187e-04,
		+1.0241463717486993400039703075086120344700114645998e-01,
		-1.8819547496642853895882397386460270632119181024707e-01,
		+8.3903448432340481802419018665178495348306087113855e-01,
		-6.1254499526256925705463330744836837221709800954563e-01,
		+1.5116321008288957217408083103517520076531766119719e+00,
	}
	fresnelSmallGQ = [8]float64{
		1,
		-1.7830899368808261165532882721325366394047352626272e+00,
		+7.9327411271741694324594596490129404224576060387241e+00,
		-4.9327126910218758142609575150656502509143664321137e+00,
		+1.4055732441050503326502540808950918539606318078526e+01,
		+7.8731074657517163897183369777297374492877974905501e-01,
		+7.0782106464978070017788685865819834136757486939388e+00,
		+2.6225196697592760185024826482142321645031047869881e+00,
	}

	fresnelLargeFP = [9]float64{
		-2.1447177918579579753388433334911075409571981652522e-17,
		+7.9577471545956793464435579966743818103647044950248e-02,
		-1.2981161608641168980253175509340062024354018232720e-02,
		+3.1265770142568086318447462445674196101423129654279e-03,
		+7.7189914096390976785579606078912825867840834363500e-03,
		+1.2152711327644207051269759240566405273724207890213e-03,
		-4.2580086843249039236789916436456229647180162906877e-04,
		+2.5599751814229062968976494152423993700328342606881e-04,
		-9.2991030649511374603974585631455140488901798820494e-06,
	}
	fresnelLargeFQ = [7]float64{
		1,
		-1.6312608777091934006569688848947319631644210599940e-01,
		+3.9289725286653476885524131750142019793543796155984e-02,
		+9.6999710172863227181034452265627316168021158412569e-02,
		+1.6458875720410357910114941861796832691658504516205e-02,
		-5.5442943302851907019637247635816813200757166309069e-03,
		+3.2629747328741893876385822248293808741755682623822e-03,
	}
	fresnelLargeGP = [9]float64{
		+4.1888470497242228970512655048232789216782855688029e-18,
		-1.9399304561569123981472429874629917184781769350025e-15,
		+1.5079232893754790305784439966341317007503129139523e-13,
		+1.5831434897680803460728630060707251688669525968296e-03,
		-8.5860131430356321612346593614783654305957210855428e-04,
		+4.2520325383513231021011832063304578196045175371085e-04,
		+3.3997508002435750699645210285275720556079846712290e-05,
		-5.5470926830268577613702499017237117454491309503712e-06,
		+7.5271268828364550735383328753338000305964366209750e-06,
	}
	fresnelLargeGQ = [7]float64{
		1,
		-5.4233958725410615801476694071713976580197499138498e-01,
		+2.6858208718351641067450334485612139901006052610880e-01,
		+2.1471758208227504686456421042560514470187040155549e-02,
		+2.4456357033936610541923412853466023983394272209113e-03,
		+1.4961320031496760787440948034839831542661075561170e-03,
		+1.6780659196575798229291066904872309116983197533248e-03,
	}
)

// cos(pi v/2) ~ 1 + cosPhase1 v^2 and sin(pi v/2) ~ v (sinPhase0 + sinPhase1 v^2)
// for the small phase corrections.
const (
	cosPhase1 = -1.2337005501361697
	sinPhase0 = 1.5707963267948966
	sinPhase1 = -0.6459640975062463
)

// NormalizedFresnelCos returns C(x), the integral of cos(pi t^2/2) for t
// from 0 to x.
//
// Special cases are:
//
//	NormalizedFresnelCos(±Inf) = ±0.5
//	NormalizedFresnelCos(NaN) = NaN
func NormalizedFresnelCos[T fp.Floats](x T) T {
	return T(NormalizedFresnelCos64(float64(x)))
}

type fresnelRegime int

const (
	fresnelTiny fresnelRegime = iota
	fresnelMaclaurinRegime
	fresnelPade
	fresnelWindow
	fresnelAuxSmall
	fresnelAuxLarge
	fresnelAsymptotic
	fresnelLimit
)

func classifyFresnel(x float64, ieee bool) fresnelRegime {
	if ieee {
		e := int(fp.Bits64(x).Exponent()) - fp.Float64Bias
		switch {
		case e < -17:
			return fresnelTiny
		case e < -2:
			return fresnelMaclaurinRegime
		case e < 0:
			return fresnelPade
		case e < 1:
			return fresnelWindow
		case e < 2:
			return fresnelAuxSmall
		case e < 17:
			return fresnelAuxLarge
		case e < 52:
			return fresnelAsymptotic
		}
		return fresnelLimit
	}
	ax := stdmath.Abs(x)
	switch {
	case ax < 0x1p-17:
		return fresnelTiny
	case ax < 0.25:
		return fresnelMaclaurinRegime
	case ax < 1:
		return fresnelPade
	case ax < 2:
		return fresnelWindow
	case ax < 4:
		return fresnelAuxSmall
	case ax < 0x1p17:
		return fresnelAuxLarge
	case ax < 0x1p52:
		return fresnelAsymptotic
	}
	return fresnelLimit
}

func fresnelCos64(x float64, ieee bool) float64 {
	if x != x {
		return x
	}
	var out float64
	ax := stdmath.Abs(x)
	switch classifyFresnel(x, ieee) {
	case fresnelTiny:
		return x
	case fresnelMaclaurinRegime:
		x2 := x * x
		return x * dd.Horner(x2*x2, fresnelMaclaurin[:])
	case fresnelPade:
		x2 := x * x
		z := x2 * x2
		return x * dd.Horner(z, fresnelPadeP[:]) / dd.Horner(z, fresnelPadeQ[:])
	case fresnelWindow:
		var i int
		if ieee {
			i = int(fp.Bits64(ax).Mantissa() >> (fp.Float64MantissaBits - 5))
		} else {
			i = int((ax - 1) * 32)
		}
		z := ax - (1 + float64(i)/32 + 1.0/64)
		out = dd.Horner(z, fresnelWindows[i][:])
	case fresnelAuxSmall:
		out = fresnelAuxSmall64(ax, ieee)
	case fresnelAuxLarge:
		out = fresnelAuxLarge64(ax, ieee)
	case fresnelAsymptotic:
		out = fresnelAsymptotic64(ax, ieee)
	default:
		out = 0.5
	}
	if x < 0 {
		return -out
	}
	return out
}

// fresnelAuxSmall64 evaluates C on [2, 4). x = hi + lo with hi*hi exact, so
// the phase splits into pi*hi^2/2, handled by sinCosPi64, and a small
// correction pi*v/2 with v = 2*hi*lo + lo^2.
func fresnelAuxSmall64(x float64, ieee bool) float64 {
	hi, lo := dd.Split(x)
	t := 1 / x
	f := dd.Horner(t, fresnelSmallFP[:]) / dd.Horner(t, fresnelSmallFQ[:])
	g := dd.Horner(t, fresnelSmallGP[:]) / dd.Horner(t, fresnelSmallGQ[:])

	v := 2*hi*lo + lo*lo
	v2 := v * v
	cl := 1 + v2*cosPhase1
	sl := v * (sinPhase0 + v2*sinPhase1)

	sh, ch := sinCosPi64(0.5*hi*hi, ieee)
	cx := ch*cl - sh*sl
	sx := ch*sl + sh*cl
	return 0.5 + (f*sx - g*cx)
}

// fresnelAuxLarge64 evaluates C on [4, 2^17). The phase splits as
// pi*hi^2/2 + pi*hi*lo + pi*lo^2/2, the first two exact arguments to
// sinCosPi64.
func fresnelAuxLarge64(x float64, ieee bool) float64 {
	hi, lo := dd.Split(x)
	l2 := lo * lo
	l4 := l2 * l2
	cl := 1 + l4*cosPhase1
	sl := l2 * (sinPhase0 + l4*sinPhase1)

	t := 4 / x
	f := dd.Horner(t, fresnelLargeFP[:]) / dd.Horner(t, fresnelLargeFQ[:])
	g := dd.Horner(t, fresnelLargeGP[:]) / dd.Horner(t, fresnelLargeGQ[:])

	sh, ch := sinCosPi64(0.5*hi*hi, ieee)
	sm, cm := sinCosPi64(float64(hi*lo), ieee)
	cml := cm*cl - sm*sl
	sml := cm*sl + sm*cl
	cx := ch*cml - sh*sml
	sx := ch*sml + sh*cml
	return 0.5 + (f*sx - g*cx)
}

// fresnelAsymptotic64 evaluates C(x) ~ 1/2 + sin(pi x^2/2)/(pi x) on
// [2^17, 2^52). The phase x^2/2 is kept exact as p + e and reduced mod 2.
func fresnelAsymptotic64(x float64, ieee bool) float64 {
	p, e := dd.TwoSqr(x)
	s := float64(mod2(0.5*p) + mod2(0.5*e))
	sn, _ := sinCosPi64(s, ieee)
	return 0.5 + sn/(stdmath.Pi*x)
}

// mod2 returns v - 2*round(v/2), exact for every finite v.
func mod2(v float64) float64 {
	q := float64(float64(v*0.5+roundBig) - roundBig)
	return float64(v - 2*q)
}

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

// coefficientSet is a published rational approximation, kept as decimal
// strings so that no digit is lost before the double-double split.
type coefficientSet struct {
	name   string
	doc    []string
	coeffs []string
}

// acosCoefficientSets are the minimax fits used by the extended-precision
// arccosine, in the order they appear in the generated file.
var acosCoefficientSets = []coefficientSet{
	{
		name: "acosRemezP80",
		doc: []string{
			"acosRemezP80 and acosRemezQ80 give acos(x) = pi/2 - (x + x^3 P(x^2)/Q(x^2))",
			"on [2^-3, 0.5) to extended precision.",
		},
		coeffs: []string{
			"+1.66666666666666666631E-01",
			"-4.16313987993683104320E-01",
			"+3.69068046323246813704e-01",
			"-1.36213932016738603108E-01",
			"+1.78324189708471965733E-02",
			"-2.19216428382605211588E-04",
			"-7.10526623669075243183E-06",
		},
	},
	{
		name: "acosRemezQ80",
		coeffs: []string{
			"1",
			"-2.94788392796209867269E+00",
			"+3.27309890266528636716E+00",
			"-1.68285799854822427013E+00",
			"+3.90699412641738801874E-01",
			"-3.14365703596053263322E-02",
		},
	},
	{
		name: "acosRemezPQuad",
		doc: []string{
			"acosRemezPQuad and acosRemezQQuad are the same form on [2^-4, 0.5) to",
			"quadruple precision. Double-double shares them.",
		},
		coeffs: []string{
			"+1.66666666666666666666666666666700314E-01",
			"-7.32816946414566252574527475428622708E-01",
			"+1.34215708714992334609030036562143589E+00",
			"-1.32483151677116409805070261790752040E+00",
			"+7.61206183613632558824485341162121989E-01",
			"-2.56165783329023486777386833928147375E-01",
			"+4.80718586374448793411019434585413855E-02",
			"-4.42523267167024279410230886239774718E-03",
			"+1.44551535183911458253205638280410064E-04",
			"-2.10558957916600254061591040482706179E-07",
		},
	},
	{
		name: "acosRemezQQuad",
		coeffs: []string{
			"1",
			"-4.84690167848739751544716485245697428E+00",
			"+9.96619113536172610135016921140206980E+00",
			"-1.13177895428973036660836798461641458E+01",
			"+7.74004374389488266169304117714658761E+00",
			"-3.25871986053534084709023539900339905E+00",
			"+8.27830318881232209752469022352928864E-01",
			"-1.18768052702942805423330715206348004E-01",
			"+8.32600764660522313269101537926539470E-03",
			"-1.99407384882605586705979504567947007E-04",
		},
	},
	{
		name: "acosTailA80",
		doc: []string{
			"acosTailA80 and acosTailB80 give asin(sqrt(z))/sqrt(z) - 1 = z A(z)/B(z)",
			"on (0, 0.25] to extended precision.",
		},
		coeffs: []string{
			"+1.6666666666666666669358251569645684688643237278511E-01",
			"-3.8389959330056732758636509319266298229402893686417E-01",
			"+3.0547782594474706446692132238957214674495279745495E-01",
			"-9.6693903957891911586190023930102559650735648424735E-02",
			"+9.9046992157998326437479057754826461967989551212864E-03",
			"-6.0191388460588721027458992349689449409895145475348E-05",
		},
	},
	{
		name: "acosTailB80",
		coeffs: []string{
			"1",
			"-2.7533975598034038304032842577489084280592940825487E+00",
			"+2.8040387147228523924992805747940733605037960201632E+00",
			"-1.2867553085195036875472887512990417368983501280050E+00",
			"+2.5507476114048228270116995436960640085599958340105E-01",
			"-1.6150977641153863432089856687117703962621376999198E-02",
		},
	},
	{
		name: "acosTailADD",
		doc: []string{
			"acosTailADD and acosTailBDD are the tail fit to double-double precision.",
		},
		coeffs: []string{
			"+1.6666666666666666666666666666664788350189799631388E-01",
			"-6.7953487712343915574629405476556772441017491044686E-01",
			"+1.1355619701185383396809502073437485674503112281478E+00",
			"-9.9979136861031466933084901065494659727226368799419E-01",
			"+4.9542222658058914988889870432900282258468548407047E-01",
			"-1.3619497632729465917010549488509051327066923409678E-01",
			"+1.8893779497378076181367383073424468319568918871776E-02",
			"-1.0127751917585769797088507439230121924663387007820E-03",
			"+4.1609143699953575338552391698200117907397110245559E-06",
			"+6.4696737362761237061122472460464127042098844745215E-08",
		},
	},
	{
		name: "acosTailBDD",
		coeffs: []string{
			"1",
			"-4.5272092627406349344777643288466317806594588091439E+00",
			"+8.5827588460873729014578381443554824724815994789507E+00",
			"-8.8306360208337738451441152531141366926804404474047E+00",
			"+5.3384058738222081336161251070080734212567758116369E+00",
			"-1.9150848930384390299612099877658282688028004983951E+00",
			"+3.9045152646266604165940541749287272445233674531396E-01",
			"-4.0182950418624211402578721577444719860456633216405E-02",
			"+1.5253118366932057306896123733715782641557910872142E-03",
		},
	},
	{
		name: "acosTailAQuad",
		doc: []string{
			"acosTailAQuad and acosTailBQuad are the tail fit to quadruple precision.",
		},
		coeffs: []string{
			"+1.6666666666666666666666666666666694706933946298950E-01",
			"-7.3144709334175817512762531348508944088120313226673E-01",
			"+1.3368369867017129703977436941625958610948526767792E+00",
			"-1.3164457448338078898680515898399898883183856946743E+00",
			"+7.5433447772390026447745048361121104864822141175686E-01",
			"-2.5305623011757570478996213419242526094866179872734E-01",
			"+4.7313332272611269610015425840407483047031537556424E-02",
			"-4.3361995096656108677667878009793595389518727216915E-03",
			"+1.4087190715202195938465702311593468262447436322608E-04",
			"-2.0328626084732569115240530375825287148402561696861E-07",
		},
	},
	{
		name: "acosTailBQuad",
		coeffs: []string{
			"1",
			"-4.8386825600505490507657518809063303704994296482532E+00",
			"+9.9305719293758820380881933667670676755911673699658E+00",
			"-1.1253647818160835284416693673889480035561042302542E+01",
			"+7.6779923143729025203841464458693002845067905250317E+00",
			"-3.2239304092346372000140864131217032195928519148161E+00",
			"+8.1647784902583048535525297530145980584299894277043E-01",
			"-1.1672244212330846346297892822136598340504167438939E-01",
			"+8.1483736398505318670509521365312690155985702378105E-03",
			"-1.9417708181167947671251189418713447040829557241161E-04",
		},
	},
}

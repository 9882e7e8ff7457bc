package math

import "github.com/ajroetker/go-specfun/fp"

// Float64 kernels for the active dispatch level. init installs the kernels
// for fp.CurrentLevel(); UseLevel replaces them.
var (
	Sin64                  func(x float64) float64
	Cos64                  func(x float64) float64
	SinCos64               func(x float64) (s, c float64)
	SinCosPi64             func(t float64) (s, c float64)
	Acos64                 func(x float64) float64
	Erf64                  func(x float64) float64
	NormalizedFresnelCos64 func(x float64) float64
	Cbrt64                 func(x float64) float64
)

var activeLevel fp.DispatchLevel

func init() {
	UseLevel(fp.CurrentLevel())
}

// UseLevel installs the float64 kernels for level. Both levels compute
// identical results; they differ only in how regimes and table indices are
// derived. UseLevel must not run concurrently with evaluations.
func UseLevel(level fp.DispatchLevel) {
	ieee := level == fp.DispatchIEEE754
	activeLevel = level

	Sin64 = func(x float64) float64 { return sin64(x, ieee) }
	Cos64 = func(x float64) float64 { return cos64(x, ieee) }
	SinCos64 = func(x float64) (float64, float64) { return sinCos64(x, ieee) }
	SinCosPi64 = func(t float64) (float64, float64) { return sinCosPi64(t, ieee) }
	Acos64 = func(x float64) float64 { return acos64(x, ieee) }
	Erf64 = func(x float64) float64 { return erf64(x, ieee) }
	NormalizedFresnelCos64 = func(x float64) float64 { return fresnelCos64(x, ieee) }
	Cbrt64 = func(x float64) float64 { return cbrt64(x, ieee) }
}

// Level reports the dispatch level of the installed kernels.
func Level() fp.DispatchLevel {
	return activeLevel
}

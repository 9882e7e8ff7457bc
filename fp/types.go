// Package fp provides the number formats and runtime dispatch shared by the
// special-function packages under fp/contrib.
//
// Every supported format has a value type that exposes its sign, exponent and
// mantissa fields directly:
//
//	import "github.com/ajroetker/go-specfun/fp"
//
//	b := fp.Bits64(x)
//	if b.IsNaNOrInf() {
//		return x
//	}
//	e := int(b.Exponent()) - fp.Float64Bias
//
// The 80-bit and 128-bit formats are stored as raw words and converted to and
// from DoubleDouble, which is the working type for extended precision
// evaluation.
package fp

import "golang.org/x/exp/constraints"

// Floats is a constraint for the hardware floating-point types.
type Floats interface {
	constraints.Float
}

// View is implemented by every bit-pattern type in this package.
type View interface {
	// Sign returns 1 when the sign bit is set and 0 otherwise.
	Sign() uint
	// Exponent returns the biased exponent field.
	Exponent() uint
	IsNaN() bool
	IsInf() bool
	// IsNaNOrInf reports whether the exponent field holds the reserved
	// all-ones pattern.
	IsNaNOrInf() bool
	IsNegative() bool
}

var (
	_ View = Float32Bits(0)
	_ View = Float64Bits(0)
	_ View = Float80{}
	_ View = Float128{}
	_ View = DoubleDouble{}
)

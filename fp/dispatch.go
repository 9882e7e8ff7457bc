package fp

import (
	"os"
	"strconv"
)

// DispatchLevel selects how special functions classify their inputs into
// regimes.
type DispatchLevel int

const (
	// DispatchPortable classifies with ordinary comparisons and integer
	// conversions, never looking at the bit layout of a value.
	DispatchPortable DispatchLevel = iota

	// DispatchIEEE754 reads exponent and mantissa fields directly, e.g. the
	// erf window index from the mantissa of x + (2^39 - 2).
	DispatchIEEE754
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchIEEE754:
		return "ieee754"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current level, including the
// two-product strategy, e.g. "ieee754+fma".
// Set by init() in dispatch_*.go files.
var currentName string

// hasFMA reports whether math.FMA is backed by a hardware instruction.
var hasFMA bool

// CurrentLevel returns the regime classification strategy in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current target.
// For example: "ieee754+fma", "ieee754", "portable".
func CurrentName() string {
	return currentName
}

// HasFMA returns true when exact products should be computed with math.FMA
// rather than a Dekker split.
func HasFMA() bool {
	return hasFMA
}

// PortableEnv checks if the FP_PORTABLE environment variable is set.
// When set, every function classifies inputs by comparison regardless of
// platform, and exact products use the Dekker split.
// This is useful for testing and debugging.
func PortableEnv() bool {
	val := os.Getenv("FP_PORTABLE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setPortableMode() {
	currentLevel = DispatchPortable
	currentName = "portable"
	hasFMA = false
}

func setIEEEMode(fma bool) {
	currentLevel = DispatchIEEE754
	hasFMA = fma
	currentName = "ieee754"
	if fma {
		currentName += "+fma"
	}
}

package champion

import (
	"math"
	"time"
)

// Upper bound of the confidence weight, reached only by a zero-entropy context
const ConfidenceAsymptote float64 = 10

// Learning rate divisor of the least specific (all-wildcard) context,
// every concrete slot on the path divides it by SpecificityGain
const BaseDecay float64 = 81

// Win-rate target for a candidate move that would have tied
const TieTarget float64 = 1.0 / 3.0

// Aggregate entropy is clamped to at least this value before computing the temperature
const MinEntropy float64 = 1e-9

// Hard limit of the lookback depth, independent of the byte budget.
// 4^(2*8) leaf groups is already far beyond any sensible memory budget
const MaxLookback = 8

const (
	// Lookback used by the 'champion' strategy when none is given
	DefaultLookback int = 3
	// Memory budget of the context tree, allows lookback up to 5
	DefaultMaxBytes int64 = 64 << 20
)

// Multiplier applied to the learning weight for each concrete slot matched,
// more specific contexts move faster towards new observations
var SpecificityGain = math.Sqrt(3)

// Uniform win-rate prior and its entropy in bits
var (
	uniformRate    = 1.0 / 3.0
	uniformEntropy = math.Log2(3)
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for engines built without explicit seed,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

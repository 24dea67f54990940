package champion

import (
	"math"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

// Divide by the sum of absolute values, zero vectors are left unchanged
func NormalizeL1(v *[rps.NMoves]float64) {
	total := 0.0
	for _, x := range v {
		total += math.Abs(x)
	}

	if total == 0 {
		return
	}

	for i := range v {
		v[i] /= total
	}
}

// Shannon entropy in bits, zero probabilities contribute nothing
func Entropy(p [rps.NMoves]float64) float64 {
	h := 0.0
	for _, x := range p {
		if x > 0 {
			h -= x * math.Log2(x)
		}
	}
	return h
}

// Turns the cached entropy of a context into its weight in the aggregate.
// Decreasing in 'entropy', bounded by ConfidenceAsymptote so a single
// near-certain context cannot drown out the rest
func ConfidenceWeight(entropy float64) float64 {
	const a = ConfidenceAsymptote
	return a - a*math.Exp(-1/(entropy*entropy*a))
}

// Low entropy (confident aggregate) gives a large exponent to exploit,
// high entropy gives an exponent near or below 1 to explore
func DefaultTemperature(entropy float64) float64 {
	return 1 + 2*(1/entropy-1)
}

// Raise every component to 't'. Components are scaled by the maximum first,
// so the mode stays at 1 even for huge 't'. Result is not normalized
func sharpen(v *[rps.NMoves]float64, t float64) {
	peak := 0.0
	for _, x := range v {
		peak = max(peak, x)
	}

	if peak <= 0 {
		return
	}

	for i := range v {
		v[i] = math.Pow(v[i]/peak, t)
	}
}

// Turn the raw aggregate into the move distribution, returns
// (distribution, entropy of the normalized aggregate, temperature)
func distribution(aggregate [rps.NMoves]float64, temperature TemperatureFnType) ([rps.NMoves]float64, float64, float64) {
	dist := aggregate
	NormalizeL1(&dist)

	h := Entropy(dist)
	t := temperature(max(h, MinEntropy))

	sharpen(&dist, t)
	NormalizeL1(&dist)
	return dist, h, t
}

// Inverse-CDF draw, 'u' should be uniform in [0, 1)
func sample(dist [rps.NMoves]float64, u float64) rps.Move {
	for i, p := range dist {
		if u -= p; u < 0 {
			return rps.Move(i)
		}
	}
	// Rounding or a degenerate (all-zero) distribution
	return rps.NMoves - 1
}

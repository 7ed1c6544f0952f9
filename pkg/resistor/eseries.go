package resistor

import "math"

// e24 is the E24 preferred value series, 24 values per decade.
var e24 = []float64{
	10, 11, 12, 13, 15, 16, 18, 20, 22, 24,
	27, 30, 33, 36, 39, 43, 47, 51, 56, 62,
	68, 75, 82, 91,
}

// snapTieEpsilon absorbs float noise when two E24 neighbors are
// equidistant in log space; ties resolve to the lower value.
const snapTieEpsilon = 1e-9

// SnapE24 returns the nearest E24 standard value to v. Distance is
// measured as absolute log10 ratio, so snapping is scale-invariant and
// idempotent on values already in the series. Non-positive values are
// returned unchanged.
func SnapE24(v float64) float64 {
	if v <= 0 {
		return v
	}

	decade := math.Pow(10, math.Floor(math.Log10(v)))
	norm := v / decade * 10

	best := e24[0]
	bestDist := math.Abs(math.Log10(norm / e24[0]))
	for _, e := range e24[1:] {
		d := math.Abs(math.Log10(norm / e))
		if d < bestDist-snapTieEpsilon {
			best = e
			bestDist = d
		}
	}

	return best / 10 * decade
}

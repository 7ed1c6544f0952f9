package resistor

import (
	"errors"
	"fmt"
)

// DefaultTolerancePct is the conventional tolerance for resistors with no
// tolerance band (3-band parts).
const DefaultTolerancePct = 20.0

// ErrUnrecognizedBands is returned when a band sequence cannot be resolved
// into at least two digits and a multiplier.
var ErrUnrecognizedBands = errors.New("resistor: unrecognized band configuration")

// Reading is the computed result for one band sequence.
type Reading struct {
	ValueOhms    float64
	TolerancePct float64
	SnappedOhms  float64
}

// Calculate computes the resistance encoded by an ordered color sequence.
// Sequences of 3 to 6 colors are supported; a sixth (tempco) band is
// ignored. The sequence must already be oriented with the tolerance band
// last (see Normalize).
func Calculate(colors []Color) (*Reading, error) {
	var (
		value float64
		tol   = DefaultTolerancePct
		err   error
	)

	switch n := len(colors); {
	case n == 3:
		value, err = resolve(colors[0], colors[1], nil, colors[2])
	case n == 4:
		value, err = resolve(colors[0], colors[1], nil, colors[2])
		if err == nil {
			tol = toleranceOrDefault(colors[3])
		}
	case n == 5, n >= 6:
		value, err = resolve(colors[0], colors[1], &colors[2], colors[3])
		if err == nil {
			tol = toleranceOrDefault(colors[4])
		}
	default:
		return nil, fmt.Errorf("%w: %d bands", ErrUnrecognizedBands, len(colors))
	}
	if err != nil {
		return nil, err
	}

	return &Reading{
		ValueOhms:    value,
		TolerancePct: tol,
		SnappedOhms:  SnapE24(value),
	}, nil
}

// resolve concatenates two or three digit bands and applies the multiplier.
func resolve(d1, d2 Color, d3 *Color, mult Color) (float64, error) {
	c1, ok1 := colorCode[d1]
	c2, ok2 := colorCode[d2]
	cm, okm := colorCode[mult]
	if !ok1 || !ok2 || !okm || !c1.hasDigit || !c2.hasDigit || !cm.hasMult {
		return 0, fmt.Errorf("%w: %v", ErrUnrecognizedBands, describe(d1, d2, d3, mult))
	}

	digits := float64(c1.digit*10 + c2.digit)
	if d3 != nil {
		c3, ok3 := colorCode[*d3]
		if !ok3 || !c3.hasDigit {
			return 0, fmt.Errorf("%w: %v", ErrUnrecognizedBands, describe(d1, d2, d3, mult))
		}
		digits = float64(c1.digit*100 + c2.digit*10 + c3.digit)
	}

	return digits * cm.multiplier, nil
}

// toleranceOrDefault looks up the tolerance for a color, falling back to
// the no-band default when the color has no tolerance entry.
func toleranceOrDefault(c Color) float64 {
	if code, ok := colorCode[c]; ok && code.hasTol {
		return code.tolerance
	}
	return DefaultTolerancePct
}

func describe(d1, d2 Color, d3 *Color, mult Color) []Color {
	out := []Color{d1, d2}
	if d3 != nil {
		out = append(out, *d3)
	}
	return append(out, mult)
}

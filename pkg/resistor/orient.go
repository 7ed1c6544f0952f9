package resistor

// Normalize corrects band orientation. A tolerance-colored band belongs at
// the right end; when the left end is tolerance-colored and the right end
// is not, the sequence was read backwards and is reversed. When no
// tolerance band is identifiable the orientation is ambiguous and the
// input order is kept.
func Normalize(colors []Color) []Color {
	out := make([]Color, len(colors))
	copy(out, colors)

	if len(out) < 2 {
		return out
	}

	leftTol := out[0].IsTolerance()
	rightTol := out[len(out)-1].IsTolerance()
	if leftTol && !rightTol {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

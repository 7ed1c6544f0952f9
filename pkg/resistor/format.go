package resistor

import "fmt"

// formatScales are checked largest first.
var formatScales = []struct {
	unit  string
	scale float64
}{
	{"GΩ", 1e9},
	{"MΩ", 1e6},
	{"kΩ", 1e3},
	{"Ω", 1.0},
}

// FormatOhms renders a resistance value as a human-readable string with
// the appropriate SI unit, e.g. 4700 -> "4.70 kΩ".
func FormatOhms(v float64) string {
	for _, s := range formatScales {
		if v >= s.scale {
			return fmt.Sprintf("%.2f %s", v/s.scale, s.unit)
		}
	}
	return fmt.Sprintf("%.2f Ω", v)
}

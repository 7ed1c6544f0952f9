// Package resistor converts resistor color band sequences into resistance
// values using the standard IEC 60062 color code tables.
package resistor

import "strings"

// Color is a standard resistor band color.
type Color string

// The twelve standard band colors.
const (
	Black  Color = "black"
	Brown  Color = "brown"
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Violet Color = "violet"
	Grey   Color = "grey"
	White  Color = "white"
	Gold   Color = "gold"
	Silver Color = "silver"
)

// Role is the semantic meaning assigned to a detected band.
type Role string

const (
	RoleDigit      Role = "digit"
	RoleMultiplier Role = "multiplier"
	RoleTolerance  Role = "tolerance"
	RoleTempco     Role = "tempco"
)

// Band is a single detected color band.
type Band struct {
	Color      Color   `json:"color"`
	Role       Role    `json:"role"`
	Confidence float64 `json:"confidence"`
}

// code holds the table values for one color. Absent entries are flagged
// rather than zeroed because black legitimately encodes digit 0.
type code struct {
	digit      int
	hasDigit   bool
	multiplier float64
	hasMult    bool
	tolerance  float64
	hasTol     bool
}

// colorCode is the standard color code table. Never mutated.
var colorCode = map[Color]code{
	Black:  {digit: 0, hasDigit: true, multiplier: 1e0, hasMult: true},
	Brown:  {digit: 1, hasDigit: true, multiplier: 1e1, hasMult: true, tolerance: 1.0, hasTol: true},
	Red:    {digit: 2, hasDigit: true, multiplier: 1e2, hasMult: true, tolerance: 2.0, hasTol: true},
	Orange: {digit: 3, hasDigit: true, multiplier: 1e3, hasMult: true},
	Yellow: {digit: 4, hasDigit: true, multiplier: 1e4, hasMult: true},
	Green:  {digit: 5, hasDigit: true, multiplier: 1e5, hasMult: true, tolerance: 0.5, hasTol: true},
	Blue:   {digit: 6, hasDigit: true, multiplier: 1e6, hasMult: true, tolerance: 0.25, hasTol: true},
	Violet: {digit: 7, hasDigit: true, multiplier: 1e7, hasMult: true, tolerance: 0.1, hasTol: true},
	Grey:   {digit: 8, hasDigit: true, multiplier: 1e8, hasMult: true, tolerance: 0.05, hasTol: true},
	White:  {digit: 9, hasDigit: true, multiplier: 1e9, hasMult: true},
	Gold:   {multiplier: 1e-1, hasMult: true, tolerance: 5.0, hasTol: true},
	Silver: {multiplier: 1e-2, hasMult: true, tolerance: 10.0, hasTol: true},
}

// aliases maps common model wordings to canonical color names.
var aliases = map[string]Color{
	"gray":         Grey,
	"purple":       Violet,
	"golden":       Gold,
	"silver color": Silver,
	"orange-brown": Orange,
	"reddish":      Red,
	"brownish":     Brown,
}

// NormalizeColor lowercases, trims, and resolves aliases in a color name.
// Unknown names pass through unchanged so callers can surface them in errors.
func NormalizeColor(name string) Color {
	c := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[c]; ok {
		return canonical
	}
	return Color(c)
}

// IsValid reports whether the color appears in the code table.
func (c Color) IsValid() bool {
	_, ok := colorCode[c]
	return ok
}

// IsTolerance reports whether the color belongs to the standard tolerance
// palette.
func (c Color) IsTolerance() bool {
	code, ok := colorCode[c]
	return ok && code.hasTol
}

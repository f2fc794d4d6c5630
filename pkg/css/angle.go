package css

import (
	"math"
	"strings"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// Degrees per unit for the CSS <angle> units.
var degreesPerUnit = map[string]float64{
	"":     1, // bare <number> hues are degrees
	"deg":  1,
	"grad": 360.0 / 400.0,
	"rad":  180 / math.Pi,
	"turn": 360,
}

// ParseHue parses a CSS <hue> token: a plain number (degrees) or an
// <angle> with one of the units deg, grad, rad or turn. The result is
// normalized to [0, 360).
func ParseHue(tok string) (float64, error) {
	number, unit, ok := SplitUnit(tok)
	if !ok {
		return 0, errors.InvalidSyntax("%q is not a valid hue", tok)
	}
	factor, known := degreesPerUnit[strings.ToLower(unit)]
	if !known {
		return 0, errors.InvalidSyntax("unexpected hue unit %q", unit)
	}
	v, err := ParseNumber(number)
	if err != nil {
		return 0, err
	}
	return NormalizeHue(v * factor), nil
}

// NormalizeHue maps any angle in degrees onto [0, 360).
func NormalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// FormatHue formats a hue in degrees as a CSS <angle> (e.g. "180deg").
// Hues that round up to a full turn print as "0deg".
func FormatHue(deg float64) string {
	h := Round(NormalizeHue(deg))
	if h >= 360 {
		h -= 360
	}
	return FormatNumber(h) + "deg"
}

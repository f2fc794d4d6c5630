// Package css implements the CSS numeric primitives shared by every color
// notation: <number>, <percentage> and <angle> parsing, hue normalization,
// clamping and compact decimal formatting.
//
// Parsing follows the CSS Values and Units grammar for numbers
// (https://www.w3.org/TR/css-values-4/#numbers); the leading-dot form
// (".5") and exponents are accepted, a trailing dot ("1.") is not.
//
// All values are IEEE-754 float64. Formatting rounds to [Precision] decimal
// places and drops trailing zeros, so values read back with [ParseNumber] are
// equal to the original within 0.5e-6.
package css

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// Precision is the number of decimal places kept by the formatters.
const Precision = 6

// numberExpr matches a CSS <number> without unit.
const numberExpr = `[+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?`

var (
	numberRe = regexp.MustCompile(`^` + numberExpr + `$`)
	// dimensionRe splits a numeric token into its number and unit parts.
	dimensionRe = regexp.MustCompile(`^(` + numberExpr + `)(%|[A-Za-z]+)?$`)
)

// ParseNumber parses a CSS <number> token (e.g. "1.2" as 1.2).
// Tokens outside the CSS grammar or outside the float64 range fail with a
// NUMBER_CONVERSION_FAILED error wrapping the *strconv.NumError.
func ParseNumber(tok string) (float64, error) {
	if !numberRe.MatchString(tok) {
		return 0, errors.NumberConversion(&strconv.NumError{Func: "ParseFloat", Num: tok, Err: strconv.ErrSyntax}, tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.NumberConversion(err, tok)
	}
	return v, nil
}

// IsPercentage reports whether tok is written as a CSS <percentage>.
func IsPercentage(tok string) bool {
	return strings.HasSuffix(tok, "%")
}

// ParsePercentage parses a CSS <percentage> token (e.g. "60%" as 0.6).
func ParsePercentage(tok string) (float64, error) {
	if !IsPercentage(tok) {
		return 0, errors.InvalidSyntax("%q is not a percentage", tok)
	}
	v, err := ParseNumber(strings.TrimSuffix(tok, "%"))
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// SplitUnit separates a numeric token into number and unit ("90deg" into
// "90" and "deg"). The unit is empty for plain numbers and "%" for
// percentages. ok is false if tok is not a number followed by an optional
// alphabetic unit.
func SplitUnit(tok string) (number, unit string, ok bool) {
	m := dimensionRe.FindStringSubmatch(tok)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit limits v to [0, 1].
func ClampUnit(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round rounds v to Precision decimal places.
func Round(v float64) float64 {
	const factor = 1e6
	r := math.Round(v*factor) / factor
	if r == 0 {
		// Avoid printing "-0".
		return 0
	}
	return r
}

// FormatNumber formats v as a CSS <number> (e.g. 0.6 as "0.6").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}

// FormatPercentage formats v as a CSS <percentage> (e.g. 0.6 as "60%").
func FormatPercentage(v float64) string {
	return FormatNumber(v*100) + "%"
}

// FloorDecimals rounds v towards negative infinity, keeping n decimals.
// Values within 1e-9 of the next grid point snap to it first, so
// float noise like 20.999999999999996 does not lose a whole step.
func FloorDecimals(v float64, n int) float64 {
	factor := math.Pow(10, float64(n))
	return math.Floor(v*factor+1e-9) / factor
}

// ParseNumberOrPercentage parses tok as either a <number>, divided by scale,
// or a <percentage>, divided by 100. Any other unit is INVALID_SYNTAX.
// The result is not clamped.
func ParseNumberOrPercentage(tok string, scale float64) (v float64, percentage bool, err error) {
	number, unit, ok := SplitUnit(tok)
	if !ok {
		return 0, false, errors.InvalidSyntax("unexpected token %q", tok)
	}
	switch unit {
	case "":
		v, err = ParseNumber(number)
		return v / scale, false, err
	case "%":
		v, err = ParsePercentage(tok)
		return v, true, err
	default:
		return 0, false, errors.InvalidSyntax("unexpected unit %q in %q", unit, tok)
	}
}

// ParseAlpha parses a CSS <alpha-value>: a <number> in [0, 1] or a
// <percentage>. Out-of-range values are clamped, never rejected.
func ParseAlpha(tok string) (float64, error) {
	v, _, err := ParseNumberOrPercentage(tok, 1)
	if err != nil {
		return 0, err
	}
	return ClampUnit(v), nil
}

// Package contrast computes WCAG 2.0 relative luminance and contrast ratios
// (https://www.w3.org/TR/WCAG20/#contrast-ratiodef) and classifies ratios
// into the conformance levels they reach.
//
// Luminance is computed on the color channels only; alpha is ignored, as
// WCAG 2.0 defines contrast for opaque colors.
package contrast

import (
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/css"
)

// Minimum contrast ratios of the WCAG 2.0 success criteria 1.4.3 and 1.4.6.
const (
	MinRatioLargeAA  = 3.0
	MinRatioAA       = 4.5
	MinRatioLargeAAA = 4.5
	MinRatioAAA      = 7.0
)

// Ratios lie in [MinRatio, MaxRatio].
const (
	MinRatio = 1.0
	MaxRatio = 21.0
)

// RelativeLuminance returns the WCAG 2.0 relative luminance of c in [0, 1]:
// 0 for black, 1 for white.
func RelativeLuminance(c color.Color) float64 {
	return 0.2126*linearize(c.Red().Value()) +
		0.7152*linearize(c.Green().Value()) +
		0.0722*linearize(c.Blue().Value())
}

// linearize undoes the sRGB transfer function with the WCAG 2.0 breakpoint.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between a and b. It is symmetric and lies
// in [1, 21].
func Ratio(a, b color.Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// LevelsReached returns the levels met by the contrast between a and b.
func LevelsReached(a, b color.Color) []Level {
	return LevelsForRatio(Ratio(a, b))
}

// LevelsForRatio returns the levels met by ratio, in presentation order
// (see [Levels]). A level is met when ratio is at least its threshold.
func LevelsForRatio(ratio float64) []Level {
	var reached []Level
	for _, l := range Levels() {
		if ratio >= l.MinRatio() {
			reached = append(reached, l)
		}
	}
	return reached
}

// BestContrast returns the candidate with the highest contrast to base and
// its ratio. Ties go to the earlier candidate. It panics if candidates is
// empty.
func BestContrast(base color.Color, candidates ...color.Color) (color.Color, float64) {
	if len(candidates) == 0 {
		panic("contrast: BestContrast needs at least one candidate")
	}
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = Ratio(base, c)
	}
	best := slices.Index(scores, slices.Max(scores))
	return candidates[best], scores[best]
}

// FormatRatio formats ratio rounded down to decimals places, e.g. 4.499 as
// "4.49", so the printed value never claims a level that was not reached.
// A negative decimals prints the ratio at full formatting precision.
func FormatRatio(ratio float64, decimals int) string {
	if decimals < 0 {
		return css.FormatNumber(ratio)
	}
	return strconv.FormatFloat(css.FloorDecimals(ratio, decimals), 'f', decimals, 64)
}

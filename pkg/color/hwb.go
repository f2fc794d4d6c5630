package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorutils/pkg/css"
)

// ParseHWBFunction parses CSS hwb() notation:
//
//	hwb(<hue> <whiteness> <blackness>[ / <alpha>])
//
// Whiteness and blackness are percentages (plain numbers on the 0-100
// scale) clamped to [0%, 100%]. When they add up to 100% or more the
// result is the gray whiteness / (whiteness + blackness).
func ParseHWBFunction(s string) (Color, error) {
	fn, err := css.ParseFunction(s)
	if err != nil {
		return Color{}, err
	}
	if err := fn.Expect("hwb", 3); err != nil {
		return Color{}, err
	}

	h, white, black, alpha, err := parseHueFunction(fn)
	if err != nil {
		return Color{}, err
	}
	if white+black >= 1 {
		gray := white / (white + black)
		return fromValues(gray, gray, gray, alpha), nil
	}

	// Scale the fully saturated hue into the band left by white and black.
	pure := colorful.Hsv(h, 1, 1)
	scale := 1 - white - black
	return fromValues(
		pure.R*scale+white,
		pure.G*scale+white,
		pure.B*scale+white,
		alpha,
	), nil
}

// HWBFunction formats c in CSS hwb() notation. Whiteness and blackness are
// always percentages; opts.ColorUnit is ignored.
func (c Color) HWBFunction(opts FunctionOptions) string {
	h, _, _ := c.toColorful().Hsv()
	white := math.Min(c.red.value, math.Min(c.green.value, c.blue.value))
	black := 1 - math.Max(c.red.value, math.Max(c.green.value, c.blue.value))
	return formatFunction("hwb", [3]string{
		css.FormatHue(h),
		css.FormatPercentage(white),
		css.FormatPercentage(black),
	}, c, opts)
}

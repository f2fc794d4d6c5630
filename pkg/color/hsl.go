package color

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorutils/pkg/css"
)

// ParseHSLFunction parses CSS hsl() notation in the space-separated syntax:
//
//	hsl(<hue> <saturation> <lightness>[ / <alpha>])
//
// Hue is a number of degrees or an angle (deg, grad, rad, turn) and is
// normalized to [0, 360). Saturation and lightness are percentages (plain
// numbers are read on the same 0-100 scale) and are clamped to [0%, 100%].
func ParseHSLFunction(s string) (Color, error) {
	fn, err := css.ParseFunction(s)
	if err != nil {
		return Color{}, err
	}
	if err := fn.Expect("hsl", 3); err != nil {
		return Color{}, err
	}

	h, sat, light, alpha, err := parseHueFunction(fn)
	if err != nil {
		return Color{}, err
	}
	rgb := colorful.Hsl(h, sat, light)
	return fromValues(rgb.R, rgb.G, rgb.B, alpha), nil
}

// HSLFunction formats c in CSS hsl() notation. Saturation and lightness
// are always percentages; opts.ColorUnit is ignored.
func (c Color) HSLFunction(opts FunctionOptions) string {
	h, s, l := c.toColorful().Hsl()
	return formatFunction("hsl", [3]string{
		css.FormatHue(h),
		css.FormatPercentage(s),
		css.FormatPercentage(l),
	}, c, opts)
}

// parseHueFunction reads the <hue> <pct> <pct> [/ <alpha>] arguments shared
// by hsl() and hwb().
func parseHueFunction(fn css.Function) (hue, a, b, alpha float64, err error) {
	if hue, err = css.ParseHue(fn.Args[0]); err != nil {
		return 0, 0, 0, 0, err
	}
	if a, _, err = css.ParseNumberOrPercentage(fn.Args[1], 100); err != nil {
		return 0, 0, 0, 0, err
	}
	if b, _, err = css.ParseNumberOrPercentage(fn.Args[2], 100); err != nil {
		return 0, 0, 0, 0, err
	}
	alpha = 1
	if fn.HasAlpha {
		if alpha, err = css.ParseAlpha(fn.Alpha); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return hue, css.ClampUnit(a), css.ClampUnit(b), alpha, nil
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.red.value, G: c.green.value, B: c.blue.value}
}

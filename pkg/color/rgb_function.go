package color

import (
	"fmt"

	"github.com/matzehuels/colorutils/pkg/css"
	"github.com/matzehuels/colorutils/pkg/errors"
)

// ParseRGBFunction parses CSS rgb() notation in the space-separated syntax:
//
//	rgb(<red> <green> <blue>[ / <alpha>])
//
// Color channels are either all plain numbers on the 0-255 scale or all
// percentages; mixing them is INVALID_SYNTAX. Alpha is a number in [0, 1]
// or a percentage. Out-of-range values are clamped, so "rgb(0 255 999)" has
// a blue channel of 255. The comma syntax and the rgba() name are not
// supported.
func ParseRGBFunction(s string) (Color, error) {
	fn, err := css.ParseFunction(s)
	if err != nil {
		return Color{}, err
	}
	if err := fn.Expect("rgb", 3); err != nil {
		return Color{}, err
	}

	var values [3]float64
	var percentages [3]bool
	for i, tok := range fn.Args {
		values[i], percentages[i], err = css.ParseNumberOrPercentage(tok, ByteMax)
		if err != nil {
			return Color{}, err
		}
	}
	if percentages[0] != percentages[1] || percentages[0] != percentages[2] {
		return Color{}, errors.InvalidSyntax("unexpected combination of percentage and absolute values")
	}

	alpha := 1.0
	if fn.HasAlpha {
		if alpha, err = css.ParseAlpha(fn.Alpha); err != nil {
			return Color{}, err
		}
	}
	return fromValues(values[0], values[1], values[2], alpha), nil
}

// RGBFunction formats c in CSS rgb() notation.
func (c Color) RGBFunction(opts FunctionOptions) string {
	return formatFunction("rgb", [3]string{
		formatColorChannel(c.red, opts.ColorUnit),
		formatColorChannel(c.green, opts.ColorUnit),
		formatColorChannel(c.blue, opts.ColorUnit),
	}, c, opts)
}

func formatColorChannel(ch Component, unit ChannelUnit) string {
	if unit == Percentage {
		return css.FormatPercentage(ch.value)
	}
	return css.FormatNumber(ch.value * ByteMax)
}

func formatAlphaChannel(ch Component, unit ChannelUnit) string {
	if unit == Percentage {
		return css.FormatPercentage(ch.value)
	}
	return css.FormatNumber(ch.value)
}

// formatFunction assembles name(a b c[ / alpha]) following the alpha policy.
func formatFunction(name string, channels [3]string, c Color, opts FunctionOptions) string {
	if opts.OmitAlpha.omit(c) {
		return fmt.Sprintf("%s(%s %s %s)", name, channels[0], channels[1], channels[2])
	}
	return fmt.Sprintf("%s(%s %s %s / %s)", name, channels[0], channels[1], channels[2], formatAlphaChannel(c.alpha, opts.AlphaUnit))
}

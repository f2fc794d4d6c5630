// Package color implements the RGB color model and its CSS notations.
//
// A [Color] is four [Component] channels (red, green, blue, alpha), each a
// float64 in [0, 1]. Colors are immutable values: they are created by a
// parser or a constructor and are safe to share between goroutines.
//
// # Notations
//
// Each supported notation has a parser and a formatter:
//
//	ParseHex("#1FA")                     (Color).Hex(HexOptions)
//	ParseRGBFunction("rgb(0 255 0)")      (Color).RGBFunction(FunctionOptions)
//	ParseHSLFunction("hsl(120 50% 50%)")  (Color).HSLFunction(FunctionOptions)
//	ParseHWBFunction("hwb(120 0% 0%)")    (Color).HWBFunction(FunctionOptions)
//	ParseNamed("steelblue")              (Color).Name()
//
// Parsers report failures as *errors.Error values with one of the codes
// INVALID_SYNTAX, NUMBER_CONVERSION_FAILED or UNSUPPORTED_VALUE. They never
// panic on malformed input.
//
// # Precision
//
// Channels are float64. Converting to the 8-bit byte view either rounds
// towards positive infinity ([Component.ToByteRounded]) or fails with
// RANGE_ERROR when the value is not on the byte grid
// ([Component.ToByteExact]). The default string form (String) prefers hex
// notation and falls back to rgb() when hex would lose precision.
package color

// Color is an RGB color with an alpha channel.
type Color struct {
	red, green, blue, alpha Component
}

// opaque is the alpha channel of a fully opaque color.
var opaque = Component{value: 1}

// FromChannels creates an opaque color.
func FromChannels(red, green, blue Component) Color {
	return FromChannelsWithAlpha(red, green, blue, opaque)
}

// FromChannelsWithAlpha creates a color with an explicit alpha channel.
func FromChannelsWithAlpha(red, green, blue, alpha Component) Color {
	return Color{red: red, green: green, blue: blue, alpha: alpha}
}

// RGB creates an opaque color from byte channel values.
func RGB(red, green, blue uint8) Color {
	return FromChannels(ComponentFromByte(red), ComponentFromByte(green), ComponentFromByte(blue))
}

// RGBA creates a color from byte channel values including alpha.
func RGBA(red, green, blue, alpha uint8) Color {
	return FromChannelsWithAlpha(
		ComponentFromByte(red),
		ComponentFromByte(green),
		ComponentFromByte(blue),
		ComponentFromByte(alpha),
	)
}

// fromValues clamps continuous channel values into range.
func fromValues(red, green, blue, alpha float64) Color {
	return FromChannelsWithAlpha(
		clampedComponent(red),
		clampedComponent(green),
		clampedComponent(blue),
		clampedComponent(alpha),
	)
}

func (c Color) Red() Component   { return c.red }
func (c Color) Green() Component { return c.green }
func (c Color) Blue() Component  { return c.blue }
func (c Color) Alpha() Component { return c.alpha }

// IsOpaque reports whether alpha is exactly at its maximum.
func (c Color) IsOpaque() bool {
	return c.alpha.value == 1
}

// ChannelsFitInByte reports whether all four channels are exactly
// representable as bytes, i.e. whether hex notation is lossless.
func (c Color) ChannelsFitInByte() bool {
	return c.red.FitsInByte() &&
		c.green.FitsInByte() &&
		c.blue.FitsInByte() &&
		c.alpha.FitsInByte()
}

// Bytes returns the rounded byte values of all four channels.
func (c Color) Bytes() (red, green, blue, alpha uint8) {
	return c.red.ToByteRounded(), c.green.ToByteRounded(), c.blue.ToByteRounded(), c.alpha.ToByteRounded()
}

// WithoutAlpha returns the same color, fully opaque.
func (c Color) WithoutAlpha() Color {
	return FromChannels(c.red, c.green, c.blue)
}

// String returns the default textual form: uppercase hex notation
// (shorthand when possible, alpha omitted when opaque) if every channel fits
// in a byte, rgb() notation with plain numbers otherwise.
func (c Color) String() string {
	if c.ChannelsFitInByte() {
		return c.Hex(DefaultHexOptions())
	}
	return c.RGBFunction(DefaultFunctionOptions())
}

package color

import (
	"strings"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// OmitAlphaChannel controls whether formatters may drop the alpha channel.
type OmitAlphaChannel int

const (
	// OmitAlphaIfOpaque drops alpha when the color is fully opaque.
	OmitAlphaIfOpaque OmitAlphaChannel = iota
	// OmitAlphaNever always prints alpha.
	OmitAlphaNever
)

// ShorthandNotation controls 3/4-digit hex output.
type ShorthandNotation int

const (
	// ShorthandIfPossible shortens every printed channel when all of them
	// consist of two identical hex digits.
	ShorthandIfPossible ShorthandNotation = iota
	// ShorthandNever always prints two digits per channel.
	ShorthandNever
)

// LetterCase selects the case of hex digits.
type LetterCase int

const (
	Uppercase LetterCase = iota
	Lowercase
)

// ChannelUnit selects the CSS type used to print a function channel.
type ChannelUnit int

const (
	// Number prints color channels on the 0-255 scale and alpha in [0, 1].
	Number ChannelUnit = iota
	// Percentage prints a %-suffixed value.
	Percentage
)

// HexOptions configures hex notation output.
type HexOptions struct {
	OmitAlpha  OmitAlphaChannel
	Shorthand  ShorthandNotation
	LetterCase LetterCase
}

// DefaultHexOptions returns uppercase shorthand output without opaque alpha.
func DefaultHexOptions() HexOptions {
	return HexOptions{OmitAlpha: OmitAlphaIfOpaque, Shorthand: ShorthandIfPossible, LetterCase: Uppercase}
}

// FunctionOptions configures rgb(), hsl() and hwb() output.
// ColorUnit only applies to rgb(); hsl() and hwb() always print their
// saturation, lightness, whiteness and blackness as percentages.
type FunctionOptions struct {
	OmitAlpha OmitAlphaChannel
	ColorUnit ChannelUnit
	AlphaUnit ChannelUnit
}

// DefaultFunctionOptions returns plain-number output without opaque alpha.
func DefaultFunctionOptions() FunctionOptions {
	return FunctionOptions{OmitAlpha: OmitAlphaIfOpaque, ColorUnit: Number, AlphaUnit: Number}
}

// omit reports whether alpha is dropped for c under this policy.
func (o OmitAlphaChannel) omit(c Color) bool {
	return o == OmitAlphaIfOpaque && c.IsOpaque()
}

func (o OmitAlphaChannel) String() string {
	if o == OmitAlphaNever {
		return "never"
	}
	return "if-opaque"
}

func (s ShorthandNotation) String() string {
	if s == ShorthandNever {
		return "never"
	}
	return "if-possible"
}

func (l LetterCase) String() string {
	if l == Lowercase {
		return "lower"
	}
	return "upper"
}

func (u ChannelUnit) String() string {
	if u == Percentage {
		return "percentage"
	}
	return "number"
}

// ParseOmitAlphaChannel parses "never" or "if-opaque".
func ParseOmitAlphaChannel(s string) (OmitAlphaChannel, error) {
	switch strings.ToLower(s) {
	case "if-opaque":
		return OmitAlphaIfOpaque, nil
	case "never":
		return OmitAlphaNever, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid alpha omission %q (want never or if-opaque)", s)
}

// ParseShorthandNotation parses "never" or "if-possible".
func ParseShorthandNotation(s string) (ShorthandNotation, error) {
	switch strings.ToLower(s) {
	case "if-possible":
		return ShorthandIfPossible, nil
	case "never":
		return ShorthandNever, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid shorthand notation %q (want never or if-possible)", s)
}

// ParseLetterCase parses "upper" or "lower".
func ParseLetterCase(s string) (LetterCase, error) {
	switch strings.ToLower(s) {
	case "upper", "uppercase":
		return Uppercase, nil
	case "lower", "lowercase":
		return Lowercase, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid letter case %q (want upper or lower)", s)
}

// ParseChannelUnit parses "number" or "percentage".
func ParseChannelUnit(s string) (ChannelUnit, error) {
	switch strings.ToLower(s) {
	case "number":
		return Number, nil
	case "percentage", "percent":
		return Percentage, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid channel unit %q (want number or percentage)", s)
}

package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// ParseHex parses CSS hex notation (https://www.w3.org/TR/css-color-4/#hex-notation).
//
// The input must start with '#' followed by 3, 4, 6 or 8 hex digits. In the
// 3 and 4 digit forms every digit is doubled ("#1FA" is "#11FFAA"). Without
// an alpha digit the color is opaque.
//
// A missing '#' or a wrong digit count is INVALID_SYNTAX; a non-hex digit is
// NUMBER_CONVERSION_FAILED.
func ParseHex(s string) (Color, error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, errors.InvalidSyntax("missing '#'")
	}

	var channels []string
	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			channels = append(channels, strings.Repeat(digits[i:i+1], 2))
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			channels = append(channels, digits[i:i+2])
		}
	default:
		return Color{}, errors.InvalidSyntax("unexpected length: must have 3, 4, 6 or 8 hexadecimal digits, found %d", len(digits))
	}

	bytes := make([]uint8, 0, 4)
	for _, ch := range channels {
		b, err := strconv.ParseUint(ch, 16, 8)
		if err != nil {
			return Color{}, errors.NumberConversion(err, ch)
		}
		bytes = append(bytes, uint8(b))
	}

	if len(bytes) == 3 {
		return RGB(bytes[0], bytes[1], bytes[2]), nil
	}
	return RGBA(bytes[0], bytes[1], bytes[2], bytes[3]), nil
}

// Hex formats c in CSS hex notation.
//
// Channels are converted with [Component.ToByteRounded], so values off the
// byte grid lose precision; check [Color.ChannelsFitInByte] beforehand to
// warn about it. Shorthand applies only if every printed channel (alpha
// included, unless omitted) has two identical digits.
func (c Color) Hex(opts HexOptions) string {
	r, g, b, a := c.Bytes()
	channels := []string{formatHexByte(r), formatHexByte(g), formatHexByte(b)}
	if !opts.OmitAlpha.omit(c) {
		channels = append(channels, formatHexByte(a))
	}

	if opts.Shorthand == ShorthandIfPossible && canShorthand(channels) {
		for i, ch := range channels {
			channels[i] = ch[:1]
		}
	}

	out := "#" + strings.Join(channels, "")
	if opts.LetterCase == Lowercase {
		return strings.ToLower(out)
	}
	return out
}

func formatHexByte(b uint8) string {
	return fmt.Sprintf("%02X", b)
}

func canShorthand(channels []string) bool {
	for _, ch := range channels {
		if ch[0] != ch[1] {
			return false
		}
	}
	return true
}

package color

import (
	"regexp"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// Functions that are valid CSS but outside the RGB family handled here.
var unsupportedFunctions = []string{"lab", "lch", "oklab", "oklch", "color", "color-mix", "device-cmyk"}

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z-]*$`)

// ParseNamed parses a CSS color keyword such as "steelblue" (case
// insensitive), including "transparent".
//
// The keyword "currentcolor" and the advanced color functions (lab(),
// oklch(), color(), ...) are UNSUPPORTED_VALUE; unknown keywords and any
// other input are INVALID_SYNTAX.
func ParseNamed(s string) (Color, error) {
	name := strings.ToLower(s)
	switch name {
	case "transparent":
		return RGBA(0, 0, 0, 0), nil
	case "currentcolor":
		return Color{}, errors.Unsupported("'currentcolor' is not supported in this context")
	}

	if rgba, ok := colornames.Map[name]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}

	for _, fn := range unsupportedFunctions {
		if strings.HasPrefix(name, fn+"(") {
			return Color{}, errors.Unsupported("the %s() color function is not supported", fn)
		}
	}
	if identRe.MatchString(s) {
		return Color{}, errors.InvalidSyntax("unknown color keyword %q", s)
	}
	return Color{}, errors.InvalidSyntax("%q is not a color keyword", s)
}

// Name returns the CSS keyword for c, if one matches exactly. Only opaque,
// byte-exact colors can match; where several keywords share a value (gray
// and grey) the alphabetically first one is returned.
func (c Color) Name() (string, bool) {
	if !c.IsOpaque() || !c.ChannelsFitInByte() {
		return "", false
	}
	r, g, b, _ := c.Bytes()
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		if rgba.R == r && rgba.G == g && rgba.B == b {
			return name, true
		}
	}
	return "", false
}

// Package notation selects a color notation by name and dispatches parsing
// and formatting to the matching codec in package color.
//
// [Auto] tries every concrete notation in a fixed order when parsing and
// picks the most precise lossless notation when formatting.
package notation

import (
	"math"
	"strings"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/errors"
)

// Format identifies a color notation.
type Format int

const (
	Auto Format = iota
	RGBHex
	RGBFunction
	HSLFunction
	HWBFunction
	Named
)

var formatNames = map[Format]string{
	Auto:        "auto",
	RGBHex:      "rgb-hex",
	RGBFunction: "rgb-function",
	HSLFunction: "hsl-function",
	HWBFunction: "hwb-function",
	Named:       "named",
}

// autoOrder is the order in which Auto tries the concrete notations.
var autoOrder = []Format{RGBHex, RGBFunction, HSLFunction, HWBFunction, Named}

// Formats returns all formats in display order, Auto first.
func Formats() []Format {
	return append([]Format{Auto}, autoOrder...)
}

// Names returns the names of all formats, for flag help and completion.
func Names() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat returns the format with the given name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Options bundles the formatting options of all notations.
type Options struct {
	Hex      color.HexOptions
	Function color.FunctionOptions
}

// DefaultOptions returns the default options of every notation.
func DefaultOptions() Options {
	return Options{Hex: color.DefaultHexOptions(), Function: color.DefaultFunctionOptions()}
}

// Parse parses s, with surrounding whitespace removed, in format f.
func Parse(s string, f Format) (color.Color, error) {
	return ParseTraced(s, f, nil)
}

// ParseTraced is Parse with a callback invoked for every notation Auto
// tries and rejects. trace may be nil.
//
// When no notation accepts the input, Auto returns the error of the last
// notation tried.
func ParseTraced(s string, f Format, trace func(Format, error)) (color.Color, error) {
	s = strings.TrimSpace(s)
	if f != Auto {
		return f.Parse(s)
	}

	var err error
	for _, candidate := range autoOrder {
		var c color.Color
		if c, err = candidate.Parse(s); err == nil {
			return c, nil
		}
		if trace != nil {
			trace(candidate, err)
		}
	}
	return color.Color{}, err
}

// Parse parses s in format f. Auto behaves like the package-level Parse.
func (f Format) Parse(s string) (color.Color, error) {
	switch f {
	case RGBHex:
		return color.ParseHex(s)
	case RGBFunction:
		return color.ParseRGBFunction(s)
	case HSLFunction:
		return color.ParseHSLFunction(s)
	case HWBFunction:
		return color.ParseHWBFunction(s)
	case Named:
		return color.ParseNamed(s)
	case Auto:
		return ParseTraced(s, Auto, nil)
	}
	return color.Color{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %d", int(f))
}

// Format formats c in format f.
//
// Auto uses hex notation when every channel fits in a byte and rgb()
// notation otherwise. Named falls back to hex notation for colors without
// a keyword.
func (f Format) Format(c color.Color, opts Options) string {
	switch f {
	case RGBHex:
		return c.Hex(opts.Hex)
	case RGBFunction:
		return c.RGBFunction(opts.Function)
	case HSLFunction:
		return c.HSLFunction(opts.Function)
	case HWBFunction:
		return c.HWBFunction(opts.Function)
	case Named:
		if name, ok := c.Name(); ok {
			return name
		}
		return c.Hex(opts.Hex)
	}
	if c.ChannelsFitInByte() {
		return c.Hex(opts.Hex)
	}
	return c.RGBFunction(opts.Function)
}

// lossTolerance is the largest per-channel difference, in [0, 1] units,
// between a color and its re-parsed output that still counts as lossless.
const lossTolerance = 1e-6

// Lossless reports whether formatting c in f with opts preserves every
// channel: the output parses back to c, up to the printed precision for
// channels off the byte grid.
func (f Format) Lossless(c color.Color, opts Options) bool {
	got, err := Parse(f.Format(c, opts), Auto)
	if err != nil {
		return false
	}
	return sameChannels(c, got)
}

func sameChannels(a, b color.Color) bool {
	pairs := [][2]color.Component{
		{a.Red(), b.Red()},
		{a.Green(), b.Green()},
		{a.Blue(), b.Blue()},
		{a.Alpha(), b.Alpha()},
	}
	for _, p := range pairs {
		if math.Abs(p[0].Value()-p[1].Value()) > lossTolerance {
			return false
		}
	}
	return true
}

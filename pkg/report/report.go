// Package report builds the serializable results of the details and
// contrast commands and encodes them as JSON or YAML.
//
// Reports are plain data: every value is already formatted with the
// notation options in effect, so encoders never see a [color.Color].
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/contrast"
	"github.com/matzehuels/colorutils/pkg/css"
	"github.com/matzehuels/colorutils/pkg/errors"
	"github.com/matzehuels/colorutils/pkg/notation"
)

// Mode selects how a report is written.
type Mode string

const (
	Text Mode = "text"
	JSON Mode = "json"
	YAML Mode = "yaml"
)

// Modes lists the supported output modes.
var Modes = []Mode{Text, JSON, YAML}

// ModeNames returns the names of [Modes] in order.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return names
}

// ParseMode validates an output mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(s))
	if slices.Contains(Modes, m) {
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output %q (valid: %s)", s, strings.Join(ModeNames(), ", "))
}

// Notation is one rendering of a color.
type Notation struct {
	Format  notation.Format `json:"format" yaml:"format"`
	Value   string          `json:"value" yaml:"value"`
	Rounded bool            `json:"rounded,omitempty" yaml:"rounded,omitempty"`
}

// Channel is the breakdown of one color channel.
type Channel struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	Byte       uint8   `json:"byte" yaml:"byte"`
	Exact      bool    `json:"exact" yaml:"exact"`
	Percentage string  `json:"percentage" yaml:"percentage"`
}

// Details describes a single color.
type Details struct {
	Input      string     `json:"input" yaml:"input"`
	Color      string     `json:"color" yaml:"color"`
	Opaque     bool       `json:"opaque" yaml:"opaque"`
	FitsInByte bool       `json:"fits_in_byte" yaml:"fits_in_byte"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Notations  []Notation `json:"notations" yaml:"notations"`
	Channels   []Channel  `json:"channels" yaml:"channels"`
}

// NewDetails builds the details report of c. The color itself is printed in
// format f; Notations lists every concrete notation.
func NewDetails(input string, c color.Color, f notation.Format, opts notation.Options) Details {
	d := Details{
		Input:      input,
		Color:      f.Format(c, opts),
		Opaque:     c.IsOpaque(),
		FitsInByte: c.ChannelsFitInByte(),
	}
	if name, ok := c.Name(); ok {
		d.Name = name
	}
	for _, nf := range notation.Formats()[1:] {
		if nf == notation.Named && d.Name == "" {
			continue
		}
		d.Notations = append(d.Notations, Notation{
			Format:  nf,
			Value:   nf.Format(c, opts),
			Rounded: !nf.Lossless(c, opts),
		})
	}
	for _, ch := range []struct {
		name string
		c    color.Component
	}{
		{"red", c.Red()},
		{"green", c.Green()},
		{"blue", c.Blue()},
		{"alpha", c.Alpha()},
	} {
		d.Channels = append(d.Channels, Channel{
			Name:       ch.name,
			Value:      css.Round(ch.c.Value()),
			Byte:       ch.c.ToByteRounded(),
			Exact:      ch.c.FitsInByte(),
			Percentage: css.FormatPercentage(ch.c.Value()),
		})
	}
	return d
}

// Contrast describes the contrast between two colors.
type Contrast struct {
	First     string           `json:"first" yaml:"first"`
	Second    string           `json:"second" yaml:"second"`
	Ratio     float64          `json:"ratio" yaml:"ratio"`
	RatioText string           `json:"ratio_text" yaml:"ratio_text"`
	Levels    []contrast.Level `json:"levels" yaml:"levels"`
}

// NewContrast builds the contrast report of a and b. The ratio text is
// rounded down to decimals places (see [contrast.FormatRatio]).
func NewContrast(a, b color.Color, f notation.Format, opts notation.Options, decimals int) Contrast {
	ratio := contrast.Ratio(a, b)
	levels := contrast.LevelsForRatio(ratio)
	if levels == nil {
		levels = []contrast.Level{}
	}
	return Contrast{
		First:     f.Format(a, opts),
		Second:    f.Format(b, opts),
		Ratio:     css.Round(ratio),
		RatioText: contrast.FormatRatio(ratio, decimals),
		Levels:    levels,
	}
}

// Write encodes v to w as JSON or YAML. Text output is rendered by the
// caller and is rejected here.
func Write(w io.Writer, v any, mode Mode) error {
	switch mode {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "cannot encode report as %q", string(mode))
}

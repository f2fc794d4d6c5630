package report

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/contrast"
	"github.com/matzehuels/colorutils/pkg/errors"
	"github.com/matzehuels/colorutils/pkg/notation"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(strings.ToUpper(string(m)))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if got := strings.Join(ModeNames(), ","); got != "text,json,yaml" {
		t.Errorf("ModeNames() = %q, want %q", got, "text,json,yaml")
	}
	if _, err := ParseMode("xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseMode(xml) error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestNewDetails(t *testing.T) {
	d := NewDetails("lime", color.RGB(0, 255, 0), notation.Auto, notation.DefaultOptions())

	if d.Input != "lime" || d.Color != "#0F0" {
		t.Errorf("Input, Color = %q, %q, want lime, #0F0", d.Input, d.Color)
	}
	if !d.Opaque || !d.FitsInByte {
		t.Errorf("Opaque = %v, FitsInByte = %v, want both true", d.Opaque, d.FitsInByte)
	}
	if d.Name != "lime" {
		t.Errorf("Name = %q, want lime", d.Name)
	}

	want := []Notation{
		{Format: notation.RGBHex, Value: "#0F0"},
		{Format: notation.RGBFunction, Value: "rgb(0 255 0)"},
		{Format: notation.HSLFunction, Value: "hsl(120deg 100% 50%)"},
		{Format: notation.HWBFunction, Value: "hwb(120deg 0% 0%)"},
		{Format: notation.Named, Value: "lime"},
	}
	if !slices.Equal(d.Notations, want) {
		t.Errorf("Notations = %+v, want %+v", d.Notations, want)
	}

	wantChannels := []Channel{
		{Name: "red", Value: 0, Byte: 0, Exact: true, Percentage: "0%"},
		{Name: "green", Value: 1, Byte: 255, Exact: true, Percentage: "100%"},
		{Name: "blue", Value: 0, Byte: 0, Exact: true, Percentage: "0%"},
		{Name: "alpha", Value: 1, Byte: 255, Exact: true, Percentage: "100%"},
	}
	if !slices.Equal(d.Channels, wantChannels) {
		t.Errorf("Channels = %+v, want %+v", d.Channels, wantChannels)
	}
}

func TestNewDetailsOffGrid(t *testing.T) {
	c, err := color.ParseRGBFunction("rgb(127.5 0 0 / 50%)")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetails("x", c, notation.RGBHex, notation.DefaultOptions())

	if d.FitsInByte || d.Opaque {
		t.Errorf("FitsInByte = %v, Opaque = %v, want both false", d.FitsInByte, d.Opaque)
	}
	if d.Color != "#80000080" {
		t.Errorf("Color = %q, want %q", d.Color, "#80000080")
	}
	if d.Name != "" {
		t.Errorf("Name = %q, want empty", d.Name)
	}
	if len(d.Notations) != 4 {
		t.Fatalf("len(Notations) = %d, want 4 (no keyword)", len(d.Notations))
	}
	if !d.Notations[0].Rounded {
		t.Error("hex notation should be marked rounded")
	}
	for _, n := range d.Notations[1:] {
		if n.Rounded {
			t.Errorf("%v notation should not be marked rounded", n.Format)
		}
	}
	if d.Channels[0].Exact || d.Channels[0].Byte != 128 || d.Channels[0].Percentage != "50%" {
		t.Errorf("red channel = %+v", d.Channels[0])
	}
}

func TestNewContrast(t *testing.T) {
	r := NewContrast(color.RGB(0, 0, 0), color.RGB(255, 255, 255), notation.RGBFunction, notation.DefaultOptions(), 2)

	if r.First != "rgb(0 0 0)" || r.Second != "rgb(255 255 255)" {
		t.Errorf("First, Second = %q, %q", r.First, r.Second)
	}
	if r.Ratio != 21 || r.RatioText != "21.00" {
		t.Errorf("Ratio, RatioText = %v, %q, want 21, 21.00", r.Ratio, r.RatioText)
	}
	if !slices.Equal(r.Levels, contrast.Levels()) {
		t.Errorf("Levels = %v, want %v", r.Levels, contrast.Levels())
	}
}

func TestNewContrastWithoutLevels(t *testing.T) {
	r := NewContrast(color.RGB(0, 0, 0), color.RGB(0x17, 0x17, 0x17), notation.Auto, notation.DefaultOptions(), 2)
	if r.Levels == nil || len(r.Levels) != 0 {
		t.Errorf("Levels = %#v, want empty non-nil slice", r.Levels)
	}
	if r.RatioText != "1.17" {
		t.Errorf("RatioText = %q, want 1.17", r.RatioText)
	}
}

func TestWriteJSON(t *testing.T) {
	r := NewContrast(color.RGB(0, 0, 0), color.RGB(0x5C, 0x5C, 0x5C), notation.Auto, notation.DefaultOptions(), 2)

	var buf bytes.Buffer
	if err := Write(&buf, r, JSON); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got struct {
		First  string   `json:"first"`
		Ratio  float64  `json:"ratio"`
		Levels []string `json:"levels"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.First != "#000" {
		t.Errorf("first = %q, want #000", got.First)
	}
	if !slices.Equal(got.Levels, []string{"AA (Large Text)"}) {
		t.Errorf("levels = %v, want [AA (Large Text)]", got.Levels)
	}
	if !strings.Contains(buf.String(), "\n  \"first\"") {
		t.Errorf("output is not indented:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	d := NewDetails("#F00", color.RGB(255, 0, 0), notation.Auto, notation.DefaultOptions())

	var buf bytes.Buffer
	if err := Write(&buf, d, YAML); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if got["color"] != "#F00" || got["name"] != "red" {
		t.Errorf("color, name = %v, %v", got["color"], got["name"])
	}
	if !strings.Contains(buf.String(), "format: rgb-hex") {
		t.Errorf("formats should be written by name:\n%s", buf.String())
	}
}

func TestWriteRejectsText(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Details{}, Text); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Write(Text) error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
	}
}

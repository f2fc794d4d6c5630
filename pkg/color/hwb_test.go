package color

import (
	"testing"

	"github.com/matzehuels/colorutils/pkg/errors"
)

func TestParseHWBFunction(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a uint8
	}{
		{"hwb(120 0% 0%)", 0, 255, 0, 255},
		{"hwb(120deg 0 0)", 0, 255, 0, 255},
		{"hwb(0 100% 0%)", 255, 255, 255, 255},
		{"hwb(0 0% 100%)", 0, 0, 0, 255},
		{"hwb(0 20% 20%)", 204, 51, 51, 255},
		{"hwb(240deg 0% 0% / 0)", 0, 0, 255, 0},
		{"hwb(0 -10% 100%)", 0, 0, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHWBFunction(tt.in)
			if err != nil {
				t.Fatalf("ParseHWBFunction(%q) error: %v", tt.in, err)
			}
			checkBytes(t, got, tt.r, tt.g, tt.b, tt.a)
		})
	}
}

func TestParseHWBFunctionGray(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"hwb(0 50% 50%)", 0.5},
		{"hwb(90 80% 80%)", 0.5},
		{"hwb(0 60% 40%)", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHWBFunction(tt.in)
			if err != nil {
				t.Fatalf("ParseHWBFunction(%q) error: %v", tt.in, err)
			}
			for _, ch := range []Component{got.Red(), got.Green(), got.Blue()} {
				if ch.Value() != tt.want {
					t.Errorf("channel = %v, want %v", ch.Value(), tt.want)
				}
			}
		})
	}
}

func TestParseHWBFunctionErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"too many channels", "hwb(0 0% 0% 0%)", errors.ErrCodeInvalidSyntax},
		{"too few channels", "hwb(0 0%)", errors.ErrCodeInvalidSyntax},
		{"not a function", "hwb", errors.ErrCodeInvalidSyntax},
		{"none", "hwb(0 none 0%)", errors.ErrCodeUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHWBFunction(tt.in)
			if !errors.Is(err, tt.code) {
				t.Errorf("ParseHWBFunction(%q) error = %v, want code %v", tt.in, err, tt.code)
			}
		})
	}
}

func TestHWBFunction(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		opts FunctionOptions
		want string
	}{
		{"green", RGB(0, 255, 0), DefaultFunctionOptions(), "hwb(120deg 0% 0%)"},
		{"tinted red", RGB(204, 51, 51), DefaultFunctionOptions(), "hwb(0deg 20% 20%)"},
		{"gray", RGB(128, 128, 128), DefaultFunctionOptions(), "hwb(0deg 50.196078% 49.803922%)"},
		{"white", RGB(255, 255, 255), DefaultFunctionOptions(), "hwb(0deg 100% 0%)"},
		{"alpha", RGBA(0, 255, 0, 0), FunctionOptions{AlphaUnit: Percentage}, "hwb(120deg 0% 0% / 0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.HWBFunction(tt.opts); got != tt.want {
				t.Errorf("HWBFunction() = %q, want %q", got, tt.want)
			}
		})
	}
}

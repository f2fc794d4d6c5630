package color

import "testing"

// checkBytes fails unless c lies exactly on the byte grid with the given
// channel values.
func checkBytes(t *testing.T, c Color, r, g, b, a uint8) {
	t.Helper()
	if !c.ChannelsFitInByte() {
		t.Errorf("color %v does not fit in bytes", c)
	}
	gr, gg, gb, ga := c.Bytes()
	if gr != r || gg != g || gb != b || ga != a {
		t.Errorf("Bytes() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", gr, gg, gb, ga, r, g, b, a)
	}
}

func TestIsOpaque(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want bool
	}{
		{"rgb", RGB(1, 2, 3), true},
		{"full alpha", RGBA(1, 2, 3, 255), true},
		{"almost opaque", RGBA(1, 2, 3, 254), false},
		{"transparent", RGBA(0, 0, 0, 0), false},
		{"off grid", fromValues(0, 0, 0, 0.99999), false},
		{"printed alpha snaps", fromValues(0, 0, 0, 0.9999999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.IsOpaque(); got != tt.want {
				t.Errorf("IsOpaque() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChannelsFitInByte(t *testing.T) {
	if !RGBA(17, 255, 10, 212).ChannelsFitInByte() {
		t.Error("byte constructed color should fit in bytes")
	}
	for _, c := range []Color{
		fromValues(0.5, 0, 0, 1),
		fromValues(0, 0.5, 0, 1),
		fromValues(0, 0, 0.5, 1),
		fromValues(0, 0, 0, 0.5),
	} {
		if c.ChannelsFitInByte() {
			t.Errorf("%v should not fit in bytes", c)
		}
	}
}

func TestFromValuesClamps(t *testing.T) {
	c := fromValues(-1, 2, 0.5, 3)
	if c.Red().Value() != 0 || c.Green().Value() != 1 || c.Blue().Value() != 0.5 || c.Alpha().Value() != 1 {
		t.Errorf("fromValues did not clamp: %v", c)
	}
}

func TestWithoutAlpha(t *testing.T) {
	c := RGBA(1, 2, 3, 4).WithoutAlpha()
	checkBytes(t, c, 1, 2, 3, 255)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want string
	}{
		{"shorthand", RGB(0x11, 0xFF, 0x00), "#1F0"},
		{"full", RGB(0x12, 0x34, 0x56), "#123456"},
		{"alpha", RGBA(0x12, 0x34, 0x56, 0x78), "#12345678"},
		{"off grid", fromValues(0.5, 0, 1, 1), "rgb(127.5 0 255)"},
		{"off grid alpha", fromValues(1, 1, 1, 0.5), "rgb(255 255 255 / 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

package color

import (
	"testing"

	"github.com/matzehuels/colorutils/pkg/errors"
)

func TestNewComponent(t *testing.T) {
	c := NewComponent(1)
	if c.Value() != 1 {
		t.Errorf("Value() = %v, want 1", c.Value())
	}
}

func TestNewComponentPanicsOutOfRange(t *testing.T) {
	for _, v := range []float64{-0.1, 1.0000001, 255} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewComponent(%v) did not panic", v)
				}
			}()
			NewComponent(v)
		}()
	}
}

func TestComponentFromByte(t *testing.T) {
	tests := []struct {
		in   uint8
		want float64
	}{
		{0, 0},
		{255, 1},
		{51, 0.2},
	}

	for _, tt := range tests {
		if got := ComponentFromByte(tt.in).Value(); got != tt.want {
			t.Errorf("ComponentFromByte(%d).Value() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComponentByteRoundTrip(t *testing.T) {
	for b := 0; b <= 255; b++ {
		c := ComponentFromByte(uint8(b))
		got, err := c.ToByteExact()
		if err != nil {
			t.Fatalf("ComponentFromByte(%d).ToByteExact() error: %v", b, err)
		}
		if int(got) != b {
			t.Errorf("ComponentFromByte(%d).ToByteExact() = %d", b, got)
		}
		if int(c.ToByteRounded()) != b {
			t.Errorf("ComponentFromByte(%d).ToByteRounded() = %d", b, c.ToByteRounded())
		}
	}
}

func TestFitsInByte(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want bool
	}{
		{"max", 1, true},
		{"min", 0, true},
		{"within grid tolerance", 0.0000000001, true},
		{"just off the grid", 0.00001, false},
		{"half step", 0.5, false},
		{"third of a byte step", 1.0 / 765, false},
		{"tenth", 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewComponent(tt.in).FitsInByte(); got != tt.want {
				t.Errorf("FitsInByte() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToByteRoundedRoundsUp(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{1, 255},
		{0.0001, 1},
		{0.5, 128},
		{1.0 / 765, 1},
		{127.99 / 255, 128},
		{0.4999, 128},
	}

	for _, tt := range tests {
		if got := NewComponent(tt.in).ToByteRounded(); got != tt.want {
			t.Errorf("NewComponent(%v).ToByteRounded() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToByteExact(t *testing.T) {
	got, err := NewComponent(1).ToByteExact()
	if err != nil {
		t.Fatalf("ToByteExact() error: %v", err)
	}
	if got != 255 {
		t.Errorf("ToByteExact() = %d, want 255", got)
	}

	_, err = NewComponent(0.0001).ToByteExact()
	if !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("ToByteExact() error = %v, want code %v", err, errors.ErrCodeRange)
	}
}

func TestOffGridFailsExactButRounds(t *testing.T) {
	c := NewComponent(0.1)
	if _, err := c.ToByteExact(); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("ToByteExact() error = %v, want code %v", err, errors.ErrCodeRange)
	}
	if got := c.ToByteRounded(); got != 26 {
		t.Errorf("ToByteRounded() = %d, want 26", got)
	}
}

func TestClampedComponentSnapsToGrid(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{182.000003 / 255, 182.0 / 255},
		{0.831373, 212.0 / 255},
		{0.356862745, 91.0 / 255},
		{127.5 / 255, 127.5 / 255},
	}

	for _, tt := range tests {
		if got := clampedComponent(tt.in).Value(); got != tt.want {
			t.Errorf("clampedComponent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampedComponent(t *testing.T) {
	if got := clampedComponent(2).Value(); got != 1 {
		t.Errorf("clampedComponent(2) = %v, want 1", got)
	}
	if got := clampedComponent(-1).Value(); got != 0 {
		t.Errorf("clampedComponent(-1) = %v, want 0", got)
	}
}

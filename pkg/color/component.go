package color

import (
	"fmt"
	"math"

	"github.com/matzehuels/colorutils/pkg/errors"
)

// ByteMax is the largest value of the single-byte channel representation.
const ByteMax = 255

// byteTolerance is the distance on the 0-255 scale within which a scaled
// value is treated as lying on the byte grid. It is larger than the error
// added by printing any notation with six decimals (at most about 1.3e-4,
// for an alpha number) and far below the 0.5 of a half step.
const byteTolerance = 1e-3

// Component is a single color channel with a continuous value in [0, 1].
//
// The byte view maps 0 to 0 and 1 to 255. Not every continuous value lies on
// that grid; [Component.FitsInByte] reports whether it does, and the two
// conversion methods choose between lossy and exact conversion.
type Component struct {
	value float64
}

// NewComponent creates a channel from a continuous value.
// It panics if v is outside [0, 1]: callers clamp or validate first.
func NewComponent(v float64) Component {
	if !(v >= 0 && v <= 1) {
		panic(fmt.Sprintf("color: component value %v out of range [0, 1]", v))
	}
	return Component{value: v}
}

// ComponentFromByte creates a channel from its single-byte value.
func ComponentFromByte(b uint8) Component {
	return Component{value: float64(b) / ByteMax}
}

// clampedComponent clamps v into [0, 1] before construction. Values within
// byteTolerance of the byte grid are snapped onto it, so parsing printed
// output yields the channel it was printed from.
func clampedComponent(v float64) Component {
	if math.IsNaN(v) {
		v = 0
	}
	c := NewComponent(math.Max(0, math.Min(1, v)))
	if s, exact := c.scaled(); exact {
		c.value = s / ByteMax
	}
	return c
}

// Value returns the continuous channel value.
func (c Component) Value() float64 {
	return c.value
}

// scaled returns the value on the 0-255 scale and whether it lies on the
// integer grid. Grid values are returned snapped.
func (c Component) scaled() (float64, bool) {
	s := c.value * ByteMax
	if r := math.Round(s); math.Abs(s-r) <= byteTolerance {
		return r, true
	}
	return s, false
}

// FitsInByte reports whether the value is exactly representable as a byte.
func (c Component) FitsInByte() bool {
	_, exact := c.scaled()
	return exact
}

// ToByteRounded returns the byte value, rounding towards positive infinity
// when the value is between two grid points (the CSS rule for converting
// channel numbers to bytes). Precision may be lost; see FitsInByte.
func (c Component) ToByteRounded() uint8 {
	s, exact := c.scaled()
	if !exact {
		s = math.Ceil(s)
	}
	return uint8(s)
}

// ToByteExact returns the byte value, or a RANGE_ERROR if the conversion
// would lose precision.
func (c Component) ToByteExact() (uint8, error) {
	s, exact := c.scaled()
	if !exact {
		return 0, errors.New(errors.ErrCodeRange, "value %v does not fit into 1 byte", c.value)
	}
	return uint8(s), nil
}

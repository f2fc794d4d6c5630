package contrast

import "github.com/matzehuels/colorutils/pkg/errors"

// Level is a WCAG 2.0 conformance level for text contrast.
type Level int

const (
	// AA is level AA for normal text (1.4.3, ratio 4.5).
	AA Level = iota
	// AAA is level AAA for normal text (1.4.6, ratio 7).
	AAA
	// LargeAA is level AA for large text (1.4.3, ratio 3).
	LargeAA
	// LargeAAA is level AAA for large text (1.4.6, ratio 4.5).
	LargeAAA
)

// Levels returns all levels in presentation order.
func Levels() []Level {
	return []Level{AA, AAA, LargeAA, LargeAAA}
}

// MinRatio returns the minimum contrast ratio required for l.
func (l Level) MinRatio() float64 {
	switch l {
	case AA:
		return MinRatioAA
	case AAA:
		return MinRatioAAA
	case LargeAA:
		return MinRatioLargeAA
	case LargeAAA:
		return MinRatioLargeAAA
	}
	return MaxRatio
}

func (l Level) String() string {
	switch l {
	case AA:
		return "AA"
	case AAA:
		return "AAA"
	case LargeAA:
		return "AA (Large Text)"
	case LargeAAA:
		return "AAA (Large Text)"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l < AA || l > LargeAAA {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown contrast level %d", int(l))
	}
	return []byte(l.String()), nil
}

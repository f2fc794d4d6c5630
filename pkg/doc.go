// Package pkg provides the core libraries of colorutils.
//
// # Overview
//
// Colorutils parses CSS color notations into an RGB model, re-serializes
// colors into any supported notation and computes WCAG 2.0 contrast ratios.
// The pkg directory is organized bottom-up:
//
//  1. [errors] - Error taxonomy shared by every package
//  2. [css] - CSS numeric primitives (numbers, percentages, angles, functions)
//  3. [color] - The color model and its notation codecs
//  4. [notation] - Format selection, auto-detection and dispatch
//  5. [contrast] - Relative luminance, contrast ratio and conformance levels
//  6. [report] - Serializable results for the CLI
//  7. [config] - The TOML configuration file
//
// # Architecture
//
// The typical data flow:
//
//	"hsl(120deg 100% 50%)"
//	         ↓
//	    [notation] package (pick a codec, or try them all)
//	         ↓
//	    [color] package (Color with float64 channels)
//	         ↓
//	    [contrast] package (luminance + ratio + levels)
//	         ↓
//	    [report] package (text / JSON / YAML)
//
// # Quick Start
//
// Parse two colors and check their contrast:
//
//	import (
//	    "github.com/matzehuels/colorutils/pkg/contrast"
//	    "github.com/matzehuels/colorutils/pkg/notation"
//	)
//
//	fg, _ := notation.Parse("#757575", notation.Auto)
//	bg, _ := notation.Parse("white", notation.Auto)
//	ratio := contrast.Ratio(fg, bg)
//	fmt.Println(contrast.FormatRatio(ratio, 2), contrast.LevelsForRatio(ratio))
//
// Convert between notations:
//
//	c, _ := notation.Parse("rgb(70 130 180)", notation.Auto)
//	fmt.Println(notation.HSLFunction.Format(c, notation.DefaultOptions()))
//
// # Precision
//
// Channels are float64 values in [0, 1]. A channel "fits in a byte" when its
// value times 255 is within 1e-3 of an integer, and parsers snap such values
// onto the grid. Hex output rounds towards positive infinity; function output
// prints up to six decimals, which is enough for every notation to parse back
// to the byte color it was printed from.
//
// # Testing
//
// Run tests:
//
//	go test ./...                # All tests
//	go test ./pkg/color/...      # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [errors]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/errors
// [css]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/css
// [color]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/color
// [notation]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/notation
// [contrast]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/contrast
// [report]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/report
// [config]: https://pkg.go.dev/github.com/matzehuels/colorutils/pkg/config
package pkg

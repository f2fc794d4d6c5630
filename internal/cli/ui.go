package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/contrast"
	"github.com/matzehuels/colorutils/pkg/notation"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - reached levels
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - failed checks
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// swatch foregrounds, picked by contrast to the background.
var (
	swatchBlack = color.RGB(0, 0, 0)
	swatchWhite = color.RGB(255, 255, 255)
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled text to one output stream. Styles come from a
// renderer bound to that stream, so colors are dropped when it is not a
// terminal.
type printer struct {
	w io.Writer

	title   lipgloss.Style
	dim     lipgloss.Style
	number  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	plain   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		number:  r.NewStyle().Foreground(colorCyan),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		failure: r.NewStyle().Foreground(colorRed),
		plain:   r.NewStyle(),
	}
}

// swatch renders text on the opaque version of c, in black or white,
// whichever contrasts more.
func (p *printer) swatch(c color.Color, text string) string {
	bg := c.WithoutAlpha()
	fg, _ := contrast.BestContrast(bg, swatchBlack, swatchWhite)
	return p.plain.
		Background(lipgloss.Color(termHex(bg))).
		Foreground(lipgloss.Color(termHex(fg))).
		Render(text)
}

// colorValue renders c in format f on its own swatch.
func (p *printer) colorValue(c color.Color, f notation.Format, opts notation.Options) string {
	return p.swatch(c, f.Format(c, opts))
}

// termHex formats c as the six digit hex lipgloss expects.
func termHex(c color.Color) string {
	return c.Hex(color.HexOptions{OmitAlpha: color.OmitAlphaIfOpaque, Shorthand: color.ShorthandNever})
}

// =============================================================================
// Line Output
// =============================================================================

func (p *printer) println(parts ...string) {
	for _, s := range parts {
		fmt.Fprint(p.w, s)
	}
	fmt.Fprintln(p.w)
}

// section prints a section heading.
func (p *printer) section(name string) {
	p.println(p.title.Render(name + ":"))
}

// item prints an indented line of a section.
func (p *printer) item(parts ...string) {
	p.println(append([]string{"\t"}, parts...)...)
}

// flag renders a boolean check result.
func (p *printer) flag(ok bool) string {
	if ok {
		return p.success.Render("true")
	}
	return p.failure.Render("false")
}

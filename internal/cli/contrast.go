package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/report"
)

// contrastCommand creates the contrast command.
func (c *CLI) contrastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <color> <color>",
		Short: "Show the WCAG 2.0 contrast ratio of two colors",
		Long: `Show the WCAG 2.0 contrast ratio of two colors and the conformance levels
(AA, AAA and their large text variants) it reaches.

The ratio is rounded down to two decimals so it never claims a level that
was missed. Use -v to print it at full precision. Alpha is ignored.`,
		Example: `  colorutils contrast '#000' '#FFF'
  colorutils contrast 'rgb(144 181 172)' '#662270'
  colorutils -v contrast navy white`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeColorNames(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.resolveSettings(cmd)
			if err != nil {
				return err
			}
			first, err := parseColor(cmd, args[0], s.format)
			if err != nil {
				return err
			}
			second, err := parseColor(cmd, args[1], s.format)
			if err != nil {
				return err
			}
			r := report.NewContrast(first, second, s.format, s.opts, s.decimals)
			if s.output != report.Text {
				return report.Write(cmd.OutOrStdout(), r, s.output)
			}
			printContrast(newPrinter(cmd.OutOrStdout()), first, second, r)
			return nil
		},
	}
}

func printContrast(p *printer, first, second color.Color, r report.Contrast) {
	p.println(
		"WCAG 2.0 contrast ratio for ", p.swatch(first, r.First),
		" to ", p.swatch(second, r.Second),
		" is ", p.number.Render(r.RatioText), ".",
	)

	levels := p.failure.Render("None")
	if len(r.Levels) > 0 {
		names := make([]string, len(r.Levels))
		for i, l := range r.Levels {
			names[i] = l.String()
		}
		levels = p.success.Render(strings.Join(names, ", "))
	}
	p.println("Contrast level(s) reached: ", levels, ".")
}

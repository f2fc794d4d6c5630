package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/css"
	"github.com/matzehuels/colorutils/pkg/notation"
	"github.com/matzehuels/colorutils/pkg/report"
)

// detailsCommand creates the details command.
func (c *CLI) detailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details <color>",
		Short: "Show details of a color",
		Long: `Show whether a color is opaque and fits in bytes, its value in every
notation and the breakdown of its channels.`,
		Example: `  colorutils details '#ABCDEF'
  colorutils details 'hsl(120deg 100% 50% / 50%)'
  colorutils --format rgb-function --color-unit percentage details steelblue
  colorutils details -o json teal`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeColorNames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.resolveSettings(cmd)
			if err != nil {
				return err
			}
			col, err := parseColor(cmd, args[0], s.format)
			if err != nil {
				return err
			}
			d := report.NewDetails(args[0], col, s.format, s.opts)
			if s.output != report.Text {
				return report.Write(cmd.OutOrStdout(), d, s.output)
			}
			printDetails(newPrinter(cmd.OutOrStdout()), col, d, s)
			return nil
		},
	}
}

var notationLabels = map[notation.Format]string{
	notation.RGBHex:      "In RGB hexadecimal notation",
	notation.RGBFunction: "In RGB function notation",
	notation.HSLFunction: "In HSL function notation",
	notation.HWBFunction: "In HWB function notation",
	notation.Named:       "As CSS color keyword",
}

func printDetails(p *printer, col color.Color, d report.Details, s settings) {
	p.println("Details for color ", p.colorValue(col, s.format, s.opts), ":")
	p.println("-------")

	p.section("General")
	p.item("Is opaque: ", p.flag(d.Opaque), ".")
	p.item("Every channel can be represented by a single byte: ", p.flag(d.FitsInByte), ".")

	p.section("Formats")
	for _, n := range d.Notations {
		line := []string{notationLabels[n.Format], ": ", p.swatch(col, n.Value)}
		if n.Rounded {
			line = append(line, " ", p.warning.Render("(Warning: Channel values were rounded)"))
		}
		p.item(append(line, ".")...)
	}

	p.section("Channels")
	for _, ch := range d.Channels {
		exact := ""
		if !ch.Exact {
			exact = p.dim.Render(", rounded")
		}
		p.item(
			channelLabel(ch.Name), ": ",
			p.number.Render(css.FormatNumber(ch.Value)),
			p.dim.Render(" (byte "), p.number.Render(byteString(ch.Byte)), exact,
			p.dim.Render(", "), p.number.Render(ch.Percentage), p.dim.Render(")"), ".",
		)
	}
}

func channelLabel(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

func byteString(b uint8) string {
	return strconv.Itoa(int(b))
}

// completeColorNames completes color keywords for the first n arguments.
func completeColorNames(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, name := range colornames.Names {
			if strings.HasPrefix(name, strings.ToLower(toComplete)) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/config"
	"github.com/matzehuels/colorutils/pkg/notation"
	"github.com/matzehuels/colorutils/pkg/report"
)

// =============================================================================
// Global Flags
// =============================================================================

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	format     string
	output     string
	verbose    int

	letterCase string
	shorthand  string
	omitAlpha  string
	colorUnit  string
	alphaUnit  string
}

func (c *CLI) bindFlags(root *cobra.Command) {
	f := &c.flags
	pf := root.PersistentFlags()

	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorutils/config.toml)")
	pf.StringVarP(&f.format, "format", "f", notation.Auto.String(), "color notation for input and output: "+strings.Join(notation.Names(), ", "))
	pf.StringVarP(&f.output, "output", "o", string(report.Text), "output mode: "+strings.Join(report.ModeNames(), ", "))
	pf.CountVarP(&f.verbose, "verbose", "v", "print full ratio precision (-v) and debug logs (-vv)")

	pf.StringVar(&f.letterCase, "letter-case", "", "hex digit case: upper, lower")
	pf.StringVar(&f.shorthand, "shorthand", "", "3/4 digit hex notation: if-possible, never")
	pf.StringVar(&f.omitAlpha, "omit-alpha", "", "omit the alpha channel: if-opaque, never")
	pf.StringVar(&f.colorUnit, "color-unit", "", "rgb() channel unit: number, percentage")
	pf.StringVar(&f.alphaUnit, "alpha-unit", "", "alpha channel unit: number, percentage")

	completions := map[string][]string{
		"format":      notation.Names(),
		"output":      report.ModeNames(),
		"letter-case": {"upper", "lower"},
		"shorthand":   {"if-possible", "never"},
		"omit-alpha":  {"if-opaque", "never"},
		"color-unit":  {"number", "percentage"},
		"alpha-unit":  {"number", "percentage"},
	}
	for name, values := range completions {
		_ = root.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
}

// =============================================================================
// Settings Resolution
// =============================================================================

// settings are the validated options a command runs with.
type settings struct {
	format   notation.Format
	opts     notation.Options
	output   report.Mode
	decimals int
}

// configPath returns the --config value or the default location.
func (c *CLI) configPath() (string, error) {
	if c.flags.configPath != "" {
		return c.flags.configPath, nil
	}
	return config.DefaultPath()
}

// effectiveConfig loads the config file and applies flags set on cmd.
// Precedence is defaults, then the file, then flags.
func (c *CLI) effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := config.Default()
	path, err := c.configPath()
	if err != nil {
		logger.Debug("no config location", "err", err)
	} else {
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		logger.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	override := func(name string, dst ...*string) {
		if !flags.Changed(name) {
			return
		}
		v, _ := flags.GetString(name)
		for _, d := range dst {
			*d = v
		}
	}
	override("format", &cfg.Format)
	override("letter-case", &cfg.Hex.LetterCase)
	override("shorthand", &cfg.Hex.Shorthand)
	override("omit-alpha", &cfg.Hex.OmitAlpha, &cfg.Function.OmitAlpha)
	override("color-unit", &cfg.Function.ColorUnit)
	override("alpha-unit", &cfg.Function.AlphaUnit)
	return cfg, nil
}

// resolveSettings resolves and validates the options for cmd.
func (c *CLI) resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := c.effectiveConfig(cmd)
	if err != nil {
		return settings{}, err
	}

	var s settings
	if s.format, err = cfg.ParsedFormat(); err != nil {
		return s, err
	}
	if s.opts, err = cfg.Options(); err != nil {
		return s, err
	}
	if s.output, err = report.ParseMode(c.flags.output); err != nil {
		return s, err
	}
	s.decimals = defaultRatioDecimals
	if c.flags.verbose > 0 {
		s.decimals = -1
	}
	return s, nil
}

// parseColor parses s in the selected format, tracing rejected notations.
func parseColor(cmd *cobra.Command, s string, f notation.Format) (color.Color, error) {
	logger := loggerFromContext(cmd.Context())
	c, err := notation.ParseTraced(s, f, func(tried notation.Format, err error) {
		logger.Debug("could not parse as "+tried.String(), "input", s, "err", err)
	})
	if err != nil {
		return color.Color{}, err
	}
	logger.Debug("parsed color", "input", s, "color", c.String())
	return c, nil
}

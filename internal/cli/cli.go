// Package cli implements the colorutils command-line interface.
//
// # Commands
//
//   - details: Print every notation and the channel breakdown of a color
//   - contrast: Print the WCAG 2.0 contrast ratio of two colors and the
//     conformance levels it reaches
//   - config: Inspect and create the configuration file
//   - completion: Generate shell completion scripts
//
// # Output
//
// Text output is written to the command's output stream and colored with
// lipgloss when it is a terminal. --output json|yaml writes the same data
// as a structured report.
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log. The logger is passed
// through context.Context; -vv enables debug logging, which traces every
// notation tried while parsing in auto mode.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/colorutils/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "colorutils"

	// defaultRatioDecimals is the number of decimals the contrast ratio is
	// floored to at default verbosity.
	defaultRatioDecimals = 2
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	flags  rootFlags
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Colorutils inspects CSS colors and their contrast",
		Long: `Colorutils parses CSS color notations (hex, rgb(), hsl(), hwb() and color
keywords), converts between them and computes WCAG 2.0 contrast ratios.`,
		Version:           buildinfo.Get().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.bindFlags(root)

	// Register all subcommands
	root.AddCommand(c.detailsCommand())
	root.AddCommand(c.contrastCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// preRun applies the verbosity and attaches the logger to the context.
func (c *CLI) preRun(cmd *cobra.Command, args []string) error {
	level := LogInfo
	if c.flags.verbose >= 2 {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

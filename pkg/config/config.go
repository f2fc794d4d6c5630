// Package config loads the optional colorutils configuration file.
//
// The file is TOML and sets default formatting options:
//
//	format = "auto"
//
//	[hex]
//	letter_case = "upper"     # upper | lower
//	shorthand = "if-possible" # if-possible | never
//	omit_alpha = "if-opaque"  # if-opaque | never
//
//	[function]
//	color_unit = "number"     # number | percentage
//	alpha_unit = "number"     # number | percentage
//	omit_alpha = "if-opaque"  # if-opaque | never
//
// Missing keys keep their defaults; unknown keys are rejected.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/colorutils/pkg/color"
	"github.com/matzehuels/colorutils/pkg/errors"
	"github.com/matzehuels/colorutils/pkg/notation"
)

const (
	appName  = "colorutils"
	fileName = "config.toml"
)

// Config holds the settings of a configuration file. Values are kept as
// strings so command-line flags can override them before validation.
type Config struct {
	Format   string         `toml:"format"`
	Hex      HexConfig      `toml:"hex"`
	Function FunctionConfig `toml:"function"`
}

// HexConfig configures hex output.
type HexConfig struct {
	LetterCase string `toml:"letter_case"`
	Shorthand  string `toml:"shorthand"`
	OmitAlpha  string `toml:"omit_alpha"`
}

// FunctionConfig configures rgb(), hsl() and hwb() output.
type FunctionConfig struct {
	ColorUnit string `toml:"color_unit"`
	AlphaUnit string `toml:"alpha_unit"`
	OmitAlpha string `toml:"omit_alpha"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := notation.DefaultOptions()
	return Config{
		Format: notation.Auto.String(),
		Hex: HexConfig{
			LetterCase: opts.Hex.LetterCase.String(),
			Shorthand:  opts.Hex.Shorthand.String(),
			OmitAlpha:  opts.Hex.OmitAlpha.String(),
		},
		Function: FunctionConfig{
			ColorUnit: opts.Function.ColorUnit.String(),
			AlphaUnit: opts.Function.AlphaUnit.String(),
			OmitAlpha: opts.Function.OmitAlpha.String(),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/colorutils/config.toml, or
// ~/.config/colorutils/config.toml when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults. Malformed files, unknown keys and invalid
// values are INVALID_CONFIG errors.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read config file")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid setting in %s", path)
	}
	return cfg, nil
}

// Validate checks that every value names a known setting.
func (c Config) Validate() error {
	if _, err := c.ParsedFormat(); err != nil {
		return err
	}
	_, err := c.Options()
	return err
}

// ParsedFormat returns the configured notation.
func (c Config) ParsedFormat() (notation.Format, error) {
	return notation.ParseFormat(c.Format)
}

// Options converts the configuration into formatting options.
func (c Config) Options() (notation.Options, error) {
	var (
		opts notation.Options
		err  error
	)
	if opts.Hex.LetterCase, err = color.ParseLetterCase(c.Hex.LetterCase); err != nil {
		return opts, err
	}
	if opts.Hex.Shorthand, err = color.ParseShorthandNotation(c.Hex.Shorthand); err != nil {
		return opts, err
	}
	if opts.Hex.OmitAlpha, err = color.ParseOmitAlphaChannel(c.Hex.OmitAlpha); err != nil {
		return opts, err
	}
	if opts.Function.ColorUnit, err = color.ParseChannelUnit(c.Function.ColorUnit); err != nil {
		return opts, err
	}
	if opts.Function.AlphaUnit, err = color.ParseChannelUnit(c.Function.AlphaUnit); err != nil {
		return opts, err
	}
	if opts.Function.OmitAlpha, err = color.ParseOmitAlphaChannel(c.Function.OmitAlpha); err != nil {
		return opts, err
	}
	return opts, nil
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes the configuration to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Package config loads rpdiff settings from YAML with validated defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rpdiff/align"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration document.
//
// Thread Safety: safe to read concurrently; do not modify after Load.
type Config struct {
	Align  AlignConfig  `yaml:"align"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// AlignConfig mirrors align.Options.
type AlignConfig struct {
	MaxLinks int    `yaml:"max_links" validate:"gte=1,lte=100000"`
	TieBreak string `yaml:"tie_break" validate:"oneof=mismatch legacy"`
}

// OutputConfig selects the compare output.
type OutputConfig struct {
	Format  string `yaml:"format" validate:"oneof=text json"`
	Color   bool   `yaml:"color"`
	Summary bool   `yaml:"summary"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Align:  AlignConfig{MaxLinks: align.DefaultMaxLinks, TieBreak: align.TieBreakMismatch.String()},
		Output: OutputConfig{Format: "text", Color: true, Summary: true},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints declared in struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, f.Namespace(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// AlignOptions converts the align section into align.Options.
func (c Config) AlignOptions() align.Options {
	opts := align.Options{MaxLinks: c.Align.MaxLinks, TieBreak: align.TieBreakMismatch}
	if c.Align.TieBreak == align.TieBreakLegacy.String() {
		opts.TieBreak = align.TieBreakLegacy
	}

	return opts
}

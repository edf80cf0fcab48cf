// Package config loads cipherlab settings from TOML with built-in defaults and
// environment overrides.
//
// Configuration file locations (first hit wins):
//   - the --config flag
//   - $CIPHERLAB_CONFIG
//   - ~/.cipherlab/config.toml
//   - built-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CIPHERLAB_"

// ErrInvalid indicates a value Validate rejected.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete cipherlab configuration.
type Config struct {
	// Cipher preselects the cipher; empty means ask.
	Cipher string `toml:"cipher"`
	// Direction preselects "encrypt" or "decrypt"; empty means ask.
	Direction string `toml:"direction"`
	// Verbose turns on the step-by-step trace.
	Verbose bool `toml:"verbose"`

	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
	Hill    HillConfig    `toml:"hill"`
	Output  OutputConfig  `toml:"output"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// HistoryConfig controls the JSON-lines run history.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	// Path defaults to ~/.cipherlab/history.jsonl.
	Path string `toml:"path"`
}

// HillConfig selects the opt-in Hill behaviours.
type HillConfig struct {
	StrictKey      bool `toml:"strict_key"`
	MinimalPadding bool `toml:"minimal_padding"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "warn"},
		History: HistoryConfig{Enabled: false},
		Output:  OutputConfig{Color: "auto"},
	}
}

// Dir returns ~/.cipherlab.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".cipherlab"), nil
}

// DefaultPath returns ~/.cipherlab/config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.toml"), nil
}

// Load resolves the config file, decodes it over the defaults, applies
// environment overrides and validates the result. explicit is the --config
// value; a missing explicit file is an error, a missing default file is not.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	path, required := explicit, explicit != ""
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
		required = path != ""
	}
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		} else if required {
			return nil, fmt.Errorf("config file %s: %w", path, statErr)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadTOML decodes path over cfg. Unknown keys are rejected so that a typo
// does not silently fall back to a default.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	return nil
}

// Decode parses TOML text over cfg without the unknown-key check of LoadTOML.
func Decode(cfg *Config, data string) error {
	if _, err := toml.Decode(data, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML: %w", err)
	}

	return nil
}

// WriteTOML encodes cfg to w.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}

	return nil
}

// ApplyEnvOverrides applies CIPHERLAB_* variables:
//   - CIPHERLAB_CIPHER: overrides cipher
//   - CIPHERLAB_VERBOSE: overrides verbose (1/true/yes)
//   - CIPHERLAB_LOG_LEVEL: overrides log.level
//   - CIPHERLAB_HISTORY: overrides history.enabled
//   - CIPHERLAB_NO_COLOR / NO_COLOR: forces output.color = never
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvPrefix + "CIPHER"); v != "" {
		c.Cipher = v
	}
	if v := os.Getenv(EnvPrefix + "VERBOSE"); v != "" {
		c.Verbose = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "HISTORY"); v != "" {
		c.History.Enabled = parseBool(v)
	}
	if os.Getenv(EnvPrefix+"NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		c.Output.Color = "never"
	}
}

func parseBool(s string) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	return strings.EqualFold(s, "yes") || strings.EqualFold(s, "y")
}

// SetDefaults fills empty fields and normalises case.
func (c *Config) SetDefaults() {
	c.Cipher = strings.ToLower(strings.TrimSpace(c.Cipher))
	c.Direction = strings.ToLower(strings.TrimSpace(c.Direction))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.History.Path == "" {
		if dir, err := Dir(); err == nil {
			c.History.Path = filepath.Join(dir, "history.jsonl")
		}
	}
}

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value '%s', must be one of: %s", value, strings.Join(allowed, ", ")),
		})
	}
	check("cipher", c.Cipher, "", "playfair", "hill", "railfence")
	check("direction", c.Direction, "", "encrypt", "decrypt")
	check("log.level", c.Log.Level, "debug", "info", "warn", "error")
	check("output.color", c.Output.Color, "auto", "always", "never")

	return errors.Join(errs...)
}

// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"printquote/core/money"
	"printquote/internal/errors"
	"printquote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency of the built-in rate card; HCL rate cards declare their own
	Currency money.Currency `json:"currency" env:"PRINTQUOTE_CURRENCY"`

	// RateCardPath points at an HCL rate card; empty means the built-in card
	RateCardPath string `json:"rate_card_path" env:"PRINTQUOTE_RATE_CARD"`

	// BannerBreakpointFloor enables the banner breakpoint floor
	BannerBreakpointFloor bool `json:"banner_breakpoint_floor" env:"PRINTQUOTE_BANNER_BREAKPOINT_FLOOR"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" env:"PRINTQUOTE_OUTPUT_FORMAT"`

	// ShowDetails shows the priced components of a quote
	ShowDetails bool `json:"show_details"`

	// NoColor disables ANSI colors in cli output
	NoColor bool `json:"no_color"`

	// NoColorEnv holds NO_COLOR; any non-empty value disables colors
	NoColorEnv string `json:"-" env:"NO_COLOR"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency: money.RON,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.printquote.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".printquote.json")
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, errors.Config("invalid config file "+path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Config("cannot read config file "+path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Config("invalid environment override", err)
	}
	if cfg.Output.NoColorEnv != "" {
		cfg.Output.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return errors.Newf(errors.TypeConfig, "unsupported output format %q (use cli or json)", c.Output.DefaultFormat)
	}
	if c.Pricing.Currency == "" {
		return errors.New(errors.TypeConfig, "pricing currency must not be empty")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

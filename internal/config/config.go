// Package config loads runtime settings from the environment. A .env file
// in the working directory is read first when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/text/language"

	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/profile"
	"github.com/shubham-kumr/portfolio/internal/splash"
)

// Config is the full set of settings for both hosts.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	TimeZone      string        `env:"PORTFOLIO_TIMEZONE" envDefault:"Asia/Kolkata"`
	Locale        string        `env:"PORTFOLIO_LOCALE" envDefault:"en-IN"`
	Tick          time.Duration `env:"PORTFOLIO_TICK" envDefault:"40ms"`
	Settle        time.Duration `env:"PORTFOLIO_SETTLE" envDefault:"500ms"`
	ClockInterval time.Duration `env:"PORTFOLIO_CLOCK_INTERVAL" envDefault:"1s"`
	ProfilePath   string        `env:"PORTFOLIO_PROFILE"`
	StaticDir     string        `env:"PORTFOLIO_STATIC_DIR" envDefault:"./static"`
	ImagesDir     string        `env:"PORTFOLIO_IMAGES_DIR" envDefault:"./images"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would break the splash screen.
func (c *Config) Validate() error {
	if c.Tick <= 0 || c.Settle <= 0 || c.ClockInterval <= 0 {
		return fmt.Errorf("config: tick, settle and clock interval must be positive")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: locale %q: %w", c.Locale, err)
	}
	if _, err := localtime.NewFormatter(c.TimeZone); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Timings returns the splash durations.
func (c *Config) Timings() splash.Timings {
	return splash.Timings{
		Tick:          c.Tick,
		Settle:        c.Settle,
		ClockInterval: c.ClockInterval,
	}
}

// Formatter returns the clock formatter for the configured zone.
func (c *Config) Formatter() (*localtime.Formatter, error) {
	return localtime.NewFormatter(c.TimeZone)
}

// Language returns the canonical BCP 47 tag for the page's lang attribute.
func (c *Config) Language() string {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English.String()
	}
	return tag.String()
}

// Profile returns the profile override if one is configured, otherwise
// the built-in profile.
func (c *Config) Profile() (*profile.Profile, error) {
	if c.ProfilePath == "" {
		return profile.Default(), nil
	}
	return profile.Load(c.ProfilePath)
}

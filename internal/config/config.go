// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the portfolio service.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	VisitTTL      time.Duration `env:"VISIT_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"VISIT_SWEEP_INTERVAL" envDefault:"1m"`
	MaxVisits     int           `env:"VISIT_MAX" envDefault:"10000"`

	SplashHandOffDelay time.Duration `env:"SPLASH_HANDOFF_DELAY" envDefault:"500ms"`
	ContactSubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"2s"`
	ContactResetDelay  time.Duration `env:"CONTACT_RESET_DELAY" envDefault:"3s"`

	AnalyticsEnabled   bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsDSN       string        `env:"ANALYTICS_DSN" envDefault:":memory:"`
	AnalyticsSalt      string        `env:"ANALYTICS_SALT"`
	AnalyticsRetention time.Duration `env:"ANALYTICS_RETENTION" envDefault:"8760h"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.VisitTTL <= 0 {
		errs = append(errs, errors.New("visit ttl must be positive"))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("visit sweep interval must be positive"))
	}
	if c.MaxVisits <= 0 {
		errs = append(errs, errors.New("visit max must be positive"))
	}
	if c.SplashHandOffDelay < 0 {
		errs = append(errs, errors.New("splash hand-off delay must not be negative"))
	}
	if c.ContactSubmitDelay <= 0 || c.ContactResetDelay <= 0 {
		errs = append(errs, errors.New("contact delays must be positive"))
	}
	if c.AnalyticsEnabled && strings.TrimSpace(c.AnalyticsDSN) == "" {
		errs = append(errs, errors.New("analytics dsn is required when analytics is enabled"))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown gin mode %q", c.GinMode))
	}
	return errors.Join(errs...)
}

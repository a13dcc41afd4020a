package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/libcirc/circulation-go/circulation/core"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CIRCULATION_"

var (
	// ErrReadingConfigFileFailed is returned when the YAML file cannot be read or parsed.
	ErrReadingConfigFileFailed = errors.New("reading config file failed")

	// ErrParsingEnvironmentFailed is returned when an environment variable has a malformed value.
	ErrParsingEnvironmentFailed = errors.New("parsing environment variables failed")

	// ErrInvalidLogLevel is returned for a log level slog does not know.
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error")

	// ErrEmptyServiceName is returned when observability is enabled without a service name.
	ErrEmptyServiceName = errors.New("service name must not be empty")
)

// Config holds the runtime settings. Build it with Default or Load.
type Config struct {
	LoanLimit            int    `yaml:"loan_limit"            env:"LOAN_LIMIT"`
	LoanPeriodDays       int    `yaml:"loan_period_days"      env:"LOAN_PERIOD_DAYS"`
	LogLevel             string `yaml:"log_level"             env:"LOG_LEVEL"`
	ObservabilityEnabled bool   `yaml:"observability_enabled" env:"OBSERVABILITY_ENABLED"`
	ServiceName          string `yaml:"service_name"          env:"SERVICE_NAME"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		LoanLimit:      core.DefaultLoanLimit,
		LoanPeriodDays: core.DefaultLoanPeriodDays,
		LogLevel:       "info",
		ServiceName:    "circulation",
	}
}

// Load applies the YAML file at path (skipped when path is empty) and then the environment
// on top of Default, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Join(ErrReadingConfigFileFailed, err)
		}

		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Join(ErrReadingConfigFileFailed, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingEnvironmentFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the lending policy, the log level and the service name.
func (c Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.ObservabilityEnabled && strings.TrimSpace(c.ServiceName) == "" {
		return ErrEmptyServiceName
	}

	return nil
}

// Policy returns the lending policy the settings describe.
func (c Config) Policy() core.Policy {
	return core.Policy{
		LoanLimit:      c.LoanLimit,
		LoanPeriodDays: c.LoanPeriodDays,
	}
}

// SlogLevel parses LogLevel, case-insensitively.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

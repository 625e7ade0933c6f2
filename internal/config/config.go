// Package config loads service configuration from the environment
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-statgen/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the runtime configuration of the statgen service
type Config struct {
	Port     int    `env:"STATGEN_PORT" envDefault:"50051"`
	RedisURL string `env:"STATGEN_REDIS_URL" envDefault:"redis://localhost:6379"`

	SessionTTL          time.Duration `env:"STATGEN_SESSION_TTL" envDefault:"30m"`
	HardcoreMaxAttempts int           `env:"STATGEN_HARDCORE_MAX_ATTEMPTS" envDefault:"10000"`

	LogLevel  string `env:"STATGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"STATGEN_LOG_FORMAT" envDefault:"text"`

	// Tracing is off when the endpoint is empty
	OTelEndpoint string `env:"STATGEN_OTEL_ENDPOINT"`
	ServiceName  string `env:"STATGEN_SERVICE_NAME" envDefault:"rpg-statgen"`
}

// Load reads an optional .env file and parses the environment
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("STATGEN_PORT", c.Port, 1, 65535, vb)
	errors.ValidateRequired("STATGEN_REDIS_URL", c.RedisURL, vb)
	errors.ValidateRequired("STATGEN_SERVICE_NAME", c.ServiceName, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("STATGEN_SESSION_TTL", "must be positive")
	}
	if c.HardcoreMaxAttempts <= 0 {
		vb.InvalidField("STATGEN_HARDCORE_MAX_ATTEMPTS", "must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("STATGEN_LOG_LEVEL", err.Error())
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		vb.InvalidField("STATGEN_LOG_FORMAT", fmt.Sprintf("unknown format %q", c.LogFormat))
	}

	return vb.Build()
}

// Address is the gRPC listen address
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", level)
	}
	return l, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv is the SSH server configuration read from the environment.
// Command-line flags take precedence over these values.
type ServerEnv struct {
	Address     string        `env:"HUEHUNT_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"HUEHUNT_HOST_KEY"`
	DBPath      string        `env:"HUEHUNT_DB_PATH" envDefault:"~/.huehunt/scores.db"`
	IdleTimeout time.Duration `env:"HUEHUNT_IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel    string        `env:"HUEHUNT_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerEnv reads ServerEnv from the environment.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := ParseEnv(&cfg); err != nil {
		return ServerEnv{}, err
	}
	return cfg, nil
}

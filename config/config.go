// Package config loads and validates the application configuration used by
// composition roots that embed the router.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xraph/frankie/errors"
	"github.com/xraph/frankie/logger"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host" env:"FRANKIE_HOST"`
	Port            int           `yaml:"port" env:"FRANKIE_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Address returns the host:port pair for net/http.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig         `yaml:"server"`
	Logging logger.LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: logger.LoggingConfig{
			Level:       "info",
			Format:      "console",
			Environment: "development",
			Output:      "stdout",
		},
	}
}

// LoadFile reads a YAML configuration file over the defaults and validates
// the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrConfigError(fmt.Sprintf("read config file %s", path), err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ErrConfigError(fmt.Sprintf("parse config file %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.ErrInvalidConfig("server.port", fmt.Errorf("port %d out of range", c.Server.Port))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.ErrInvalidConfig("logging.level", fmt.Errorf("unknown level %q", c.Logging.Level))
	}

	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
// Everything comes from environment variables, optionally seeded from a .env file.
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir string `envconfig:"STATIC_DIR"`
}

// ServerConfig reads SERVER_PORT, SERVER_HOST, ... and falls back to the
// unprefixed PORT, HOST, ... names.
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"5000"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"15"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"15"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`
	// RequestTimeout bounds handler work and must stay below WriteTimeout
	RequestTimeout int `envconfig:"REQUEST_TIMEOUT" default:"10"`
}

type MongoConfig struct {
	URI            string `split_words:"true" required:"true"`
	Database       string `split_words:"true" default:"neolayer-store"`
	ConnectTimeout int    `split_words:"true" default:"10"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %d", c.Server.RequestTimeout)
	}

	if c.Server.WriteTimeout > 0 && c.Server.RequestTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("REQUEST_TIMEOUT (%d) must be less than WRITE_TIMEOUT (%d)", c.Server.RequestTimeout, c.Server.WriteTimeout)
	}

	if strings.TrimSpace(c.Mongo.URI) == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DATABASE must not be empty")
	}

	if c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive, got %d", c.Mongo.ConnectTimeout)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the host:port the HTTP server listens on
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

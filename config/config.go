package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Authentication & Security Configuration
	JWT  JWTConfig
	Auth AuthConfig

	// Billing Notification Configuration
	Sweep SweepConfig
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"condopay"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// JWTConfig is the configuration for the JWT token manager.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// AuthConfig holds the administrator login credentials.
// AdminPasswordHash is a bcrypt hash; plaintext passwords are never configured.
type AuthConfig struct {
	AdminUsername     string `env:"AUTH_ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"AUTH_ADMIN_PASSWORD_HASH"`
}

// SweepConfig is the configuration for the due-date sweep.
type SweepConfig struct {
	Interval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	DueSoonWindow  time.Duration `env:"SWEEP_DUE_SOON_WINDOW" envDefault:"120h"`
	NotifyCooldown time.Duration `env:"SWEEP_NOTIFY_COOLDOWN" envDefault:"20h"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}

	if cfg.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("AUTH_ADMIN_PASSWORD_HASH is required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if cfg.Sweep.Interval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if cfg.Sweep.DueSoonWindow <= 0 {
		return fmt.Errorf("SWEEP_DUE_SOON_WINDOW must be positive")
	}
	if cfg.Sweep.NotifyCooldown <= 0 {
		return fmt.Errorf("SWEEP_NOTIFY_COOLDOWN must be positive")
	}

	return nil
}

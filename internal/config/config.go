package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	App      AppConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// URL, when set, takes precedence over the discrete connection fields.
	URL                string
	Host               string `validate:"required_without=URL"`
	Port               string
	User               string
	Password           string
	DBName             string `validate:"required_without=URL"`
	SSLMode            string `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	ConnMaxLifetime    time.Duration
	SlowQueryThreshold time.Duration `validate:"gte=0"`
	MaxOpenConns       int           `validate:"gte=1"`
	MaxIdleConns       int           `validate:"gte=0"`
	AutoSchema         bool
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	IdempotencyTTL time.Duration `validate:"gt=0"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAs("SERVER_READ_TIMEOUT", 15*time.Second, time.ParseDuration),
			WriteTimeout: getEnvAs("SERVER_WRITE_TIMEOUT", 15*time.Second, time.ParseDuration),
			IdleTimeout:  getEnvAs("SERVER_IDLE_TIMEOUT", time.Minute, time.ParseDuration),
		},
		Database: DatabaseConfig{
			URL:                os.Getenv("DATABASE_URL"),
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "postgres"),
			Password:           getEnv("DB_PASSWORD", "postgres"),
			DBName:             getEnv("DB_NAME", "accounts"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvAs("DB_MAX_OPEN_CONNS", 25, strconv.Atoi),
			MaxIdleConns:       getEnvAs("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
			ConnMaxLifetime:    getEnvAs("DB_CONN_MAX_LIFETIME", 5*time.Minute, time.ParseDuration),
			SlowQueryThreshold: getEnvAs("DB_SLOW_QUERY_THRESHOLD", 200*time.Millisecond, time.ParseDuration),
			AutoSchema:         getEnvAs("DB_AUTO_SCHEMA", true, strconv.ParseBool),
		},
		App: AppConfig{
			IdempotencyTTL: getEnvAs("IDEMPOTENCY_TTL", 24*time.Hour, time.ParseDuration),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks struct-level constraints and the few rules that span fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("max idle conns (%d) must be <= max open conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAs parses the variable with parse. Unset or unparseable values
// yield defaultValue.
func getEnvAs[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := parse(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

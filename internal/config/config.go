package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"

	"github.com/osse101/crimson/internal/domain"
)

// Config holds the application configuration
type Config struct {
	// Ticket store
	DatabaseURL  string        `validate:"required"`
	DBMaxConns   int           `validate:"gt=0"`
	QueryTimeout time.Duration `validate:"gt=0"`

	// User directory
	DirectoryBaseURL string        `validate:"required,url"`
	DirectoryAPIKey  string        `validate:"required"`
	DirectoryTimeout time.Duration `validate:"gt=0"`
	DirectoryRPS     float64       `validate:"gt=0"`

	// Logging
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string
	Version     string

	// MetricsFile, when set, receives a Prometheus textfile after each run
	MetricsFile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv(EnvDatabaseURL),
		DirectoryBaseURL: os.Getenv(EnvDirectoryBaseURL),
		DirectoryAPIKey:  os.Getenv(EnvDirectoryAPIKey),
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		MetricsFile:      getEnv(EnvMetricsFile, ""),
	}

	var errs []error
	var err error
	if cfg.DBMaxConns, err = getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		errs = append(errs, err)
	}
	if cfg.QueryTimeout, err = getEnvAsDuration(EnvQueryTimeout, DefaultQueryTimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.DirectoryTimeout, err = getEnvAsDuration(EnvDirectoryTimeout, DefaultDirectoryTimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.DirectoryRPS, err = getEnvAsFloat(EnvDirectoryRPS, DefaultDirectoryRPS); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and the connection string, and reports
// every failing field by its environment variable name.
func (c *Config) Validate() error {
	var msgs []string

	if err := GetValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
		}
		for _, fe := range verrs {
			name := fe.Field()
			if env, ok := fieldEnvNames[fe.Field()]; ok {
				name = env
			}
			msgs = append(msgs, fmt.Sprintf("%s failed '%s' check", name, fe.Tag()))
		}
	}

	// The parse error can quote the password, so only the variable is named
	if c.DatabaseURL != "" {
		if _, err := pgconn.ParseConfig(c.DatabaseURL); err != nil {
			msgs = append(msgs, fmt.Sprintf(ErrMsgInvalidConnString, EnvDatabaseURL))
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrConfiguration, strings.Join(msgs, "; "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

// getEnvAsFloat parses a floating point environment variable
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return f, nil
}

// getEnvAsDuration parses a Go duration string such as "30s"
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return d, nil
}

package config

import "time"

// Environment variable names
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvDirectoryBaseURL = "FLAVORTOWN_API_BASE"
	EnvDirectoryAPIKey  = "FLAVORTOWN_API_KEY"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvQueryTimeout     = "DB_QUERY_TIMEOUT"
	EnvDirectoryTimeout = "DIRECTORY_TIMEOUT"
	EnvDirectoryRPS     = "DIRECTORY_RPS"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvMetricsFile      = "METRICS_FILE"
)

// Defaults for optional settings
const (
	DefaultDBMaxConns       = 4
	DefaultQueryTimeout     = 30 * time.Second
	DefaultDirectoryTimeout = 10 * time.Second
	DefaultDirectoryRPS     = 5.0
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "crimson"
	DefaultVersion          = "dev"
)

// ErrMsgInvalidConnString is reported when DATABASE_URL does not parse
const ErrMsgInvalidConnString = "%s is not a valid PostgreSQL connection string"

// fieldEnvNames maps Config fields to the variables that set them, so
// validation errors name something the operator can fix.
var fieldEnvNames = map[string]string{
	"DatabaseURL":      EnvDatabaseURL,
	"DBMaxConns":       EnvDBMaxConns,
	"QueryTimeout":     EnvQueryTimeout,
	"DirectoryBaseURL": EnvDirectoryBaseURL,
	"DirectoryAPIKey":  EnvDirectoryAPIKey,
	"DirectoryTimeout": EnvDirectoryTimeout,
	"DirectoryRPS":     EnvDirectoryRPS,
	"LogLevel":         EnvLogLevel,
	"LogFormat":        EnvLogFormat,
	"Environment":      EnvEnvironment,
}

package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvEnvironment      = "ENVIRONMENT"
	EnvAPIKey           = "API_KEY"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvSessionCacheSize = "SESSION_CACHE_SIZE"
	EnvSessionTTL       = "SESSION_TTL"
	EnvDefaultSeed      = "DEFAULT_SEED"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvLogDir           = "LOG_DIR"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultServiceName      = "tcg-tourney"
	DefaultVersion          = "dev"
	DefaultEnvironment      = "dev"
	DefaultSessionCacheSize = 256
	DefaultSessionTTL       = time.Hour
	DefaultSeed             = "PUGLAR"
	DefaultShutdownTimeout  = 10 * time.Second
)

// EnvironmentProduction is the ENVIRONMENT value that tightens warnings
const EnvironmentProduction = "prod"

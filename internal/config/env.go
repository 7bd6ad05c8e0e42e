package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., REMOTE_SERVER_URL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.omrest
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/omrest.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ServerName is reported by the service info endpoint.
	// Env: SERVER_NAME (default: omrest)
	ServerName string `envconfig:"SERVER_NAME" default:"omrest"`

	// APIKeys is a comma-separated list of valid API keys.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ALLOWED_ORIGINS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// RateLimitPerMinute caps requests per client IP. Zero disables it.
	// Env: RATE_LIMIT_PER_MINUTE (default: 0)
	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"0"`

	// DefaultPageSize is used when a request gives no pageSize.
	// Env: DEFAULT_PAGE_SIZE (default: 100)
	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"100"`

	// MaxPageSize is the largest pageSize a request may ask for.
	// Env: MAX_PAGE_SIZE (default: 1000)
	MaxPageSize int `envconfig:"MAX_PAGE_SIZE" default:"1000"`

	// PathCacheTTLSeconds is the path name cache lifetime. Zero disables it.
	// Env: PATH_CACHE_TTL_SECONDS (default: 300)
	PathCacheTTLSeconds float64 `envconfig:"PATH_CACHE_TTL_SECONDS" default:"300"`

	// Remote configures remote server connection.
	Remote RemoteEnv `envconfig:"REMOTE"`
}

// RemoteEnv holds environment configuration for remote server.
type RemoteEnv struct {
	// ServerURL is the remote server URL.
	// Env: REMOTE_SERVER_URL
	ServerURL string `envconfig:"SERVER_URL"`

	// APIKey is the API key for authentication.
	// Env: REMOTE_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: REMOTE_TIMEOUT (default: 30)
	Timeout float64 `envconfig:"TIMEOUT" default:"30"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "OMREST" would require OMREST_DATA_DIR instead of DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize trims surrounding whitespace from free-form string values.
func (e EnvConfig) Normalize() EnvConfig {
	e.Host = strings.TrimSpace(e.Host)
	e.DataDir = strings.TrimSpace(e.DataDir)
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.LogLevel = strings.ToUpper(strings.TrimSpace(e.LogLevel))
	e.LogFormat = strings.TrimSpace(e.LogFormat)
	e.ServerName = strings.TrimSpace(e.ServerName)
	e.Remote.ServerURL = strings.TrimSpace(e.Remote.ServerURL)
	return e
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	cfg = applyOption(cfg, WithServerName(e.ServerName))

	if e.APIKeys != "" {
		cfg = applyOption(cfg, WithAPIKeys(ParseAPIKeys(e.APIKeys)))
	}
	if e.CORSAllowedOrigins != "" {
		cfg = applyOption(cfg, WithCORSAllowedOrigins(ParseList(e.CORSAllowedOrigins)))
	}
	cfg = applyOption(cfg, WithRateLimitPerMinute(e.RateLimitPerMinute))

	paging := NewPagingConfig().
		WithMaxSize(e.MaxPageSize).
		WithDefaultSize(e.DefaultPageSize)
	cfg = applyOption(cfg, WithPagingConfig(paging))

	cfg = applyOption(cfg, WithPathCacheTTL(seconds(e.PathCacheTTLSeconds)))

	if e.Remote.IsConfigured() {
		cfg = applyOption(cfg, WithRemoteConfig(e.Remote.ToRemoteConfig()))
	}

	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// IsConfigured returns true if remote server URL is configured.
func (r RemoteEnv) IsConfigured() bool {
	return r.ServerURL != ""
}

// ToRemoteConfig converts RemoteEnv to RemoteConfig.
func (r RemoteEnv) ToRemoteConfig() RemoteConfig {
	opts := []RemoteConfigOption{
		WithRemoteTimeout(seconds(r.Timeout)),
	}

	if r.ServerURL != "" {
		opts = append(opts, WithServerURL(r.ServerURL))
	}
	if r.APIKey != "" {
		opts = append(opts, WithRemoteAPIKey(r.APIKey))
	}

	return NewRemoteConfigWithOptions(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

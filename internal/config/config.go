// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost               = "0.0.0.0"
	DefaultPort               = 8080
	DefaultLogLevel           = "INFO"
	DefaultServerName         = "omrest"
	DefaultDBFile             = "omrest.db"
	DefaultPageSize           = 100
	DefaultMaxPageSize        = 1000
	DefaultPathCacheTTL       = 5 * time.Minute
	DefaultRateLimitPerMinute = 0
	DefaultRemoteTimeout      = 30 * time.Second
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// PagingConfig bounds the page sizes accepted by list endpoints.
type PagingConfig struct {
	defaultSize int
	maxSize     int
}

// NewPagingConfig creates a new PagingConfig with defaults.
func NewPagingConfig() PagingConfig {
	return PagingConfig{
		defaultSize: DefaultPageSize,
		maxSize:     DefaultMaxPageSize,
	}
}

// DefaultSize returns the page size used when a request names none.
func (p PagingConfig) DefaultSize() int { return p.defaultSize }

// MaxSize returns the largest page size a request may ask for.
func (p PagingConfig) MaxSize() int { return p.maxSize }

// WithDefaultSize returns a new config with the specified default size.
// Non-positive values are ignored.
func (p PagingConfig) WithDefaultSize(n int) PagingConfig {
	if n > 0 {
		p.defaultSize = n
	}
	if p.defaultSize > p.maxSize {
		p.maxSize = p.defaultSize
	}
	return p
}

// WithMaxSize returns a new config with the specified maximum size.
// Non-positive values are ignored.
func (p PagingConfig) WithMaxSize(n int) PagingConfig {
	if n > 0 {
		p.maxSize = n
	}
	if p.defaultSize > p.maxSize {
		p.defaultSize = p.maxSize
	}
	return p
}

// RemoteConfig configures the connection to a remote omrest server.
type RemoteConfig struct {
	serverURL string
	apiKey    string
	timeout   time.Duration
}

// NewRemoteConfig creates a new RemoteConfig with defaults.
func NewRemoteConfig() RemoteConfig {
	return RemoteConfig{
		timeout: DefaultRemoteTimeout,
	}
}

// ServerURL returns the remote server URL.
func (r RemoteConfig) ServerURL() string { return r.serverURL }

// APIKey returns the API key sent to the remote server.
func (r RemoteConfig) APIKey() string { return r.apiKey }

// Timeout returns the request timeout.
func (r RemoteConfig) Timeout() time.Duration { return r.timeout }

// IsConfigured returns true if a server URL is set.
func (r RemoteConfig) IsConfigured() bool {
	return r.serverURL != ""
}

// RemoteConfigOption is a functional option for RemoteConfig.
type RemoteConfigOption func(*RemoteConfig)

// WithServerURL sets the server URL.
func WithServerURL(url string) RemoteConfigOption {
	return func(r *RemoteConfig) { r.serverURL = strings.TrimRight(url, "/") }
}

// WithRemoteAPIKey sets the API key.
func WithRemoteAPIKey(key string) RemoteConfigOption {
	return func(r *RemoteConfig) { r.apiKey = key }
}

// WithRemoteTimeout sets the request timeout.
func WithRemoteTimeout(d time.Duration) RemoteConfigOption {
	return func(r *RemoteConfig) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRemoteConfigWithOptions creates a RemoteConfig with functional options.
func NewRemoteConfigWithOptions(opts ...RemoteConfigOption) RemoteConfig {
	r := NewRemoteConfig()
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host               string
	port               int
	dataDir            string
	dbURL              string
	logLevel           string
	logFormat          LogFormat
	serverName         string
	apiKeys            []string
	corsAllowedOrigins []string
	rateLimitPerMinute int
	paging             PagingConfig
	pathCacheTTL       time.Duration
	remote             RemoteConfig
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".omrest"
	}
	return filepath.Join(home, ".omrest")
}

// DefaultLogger returns the default slog logger for library consumers.
func DefaultLogger() *slog.Logger {
	return slog.Default()
}

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:               DefaultHost,
		port:               DefaultPort,
		dataDir:            dataDir,
		dbURL:              "sqlite:///" + filepath.Join(dataDir, DefaultDBFile),
		logLevel:           DefaultLogLevel,
		logFormat:          LogFormatPretty,
		serverName:         DefaultServerName,
		apiKeys:            []string{},
		corsAllowedOrigins: []string{},
		rateLimitPerMinute: DefaultRateLimitPerMinute,
		paging:             NewPagingConfig(),
		pathCacheTTL:       DefaultPathCacheTTL,
		remote:             NewRemoteConfig(),
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ServerName returns the name reported by the service info endpoint.
func (c AppConfig) ServerName() string { return c.serverName }

// APIKeys returns the configured API keys.
func (c AppConfig) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// CORSAllowedOrigins returns the origins allowed by the CORS middleware.
// An empty list disables CORS handling.
func (c AppConfig) CORSAllowedOrigins() []string {
	origins := make([]string, len(c.corsAllowedOrigins))
	copy(origins, c.corsAllowedOrigins)
	return origins
}

// RateLimitPerMinute returns the per-IP request limit. Zero disables it.
func (c AppConfig) RateLimitPerMinute() int { return c.rateLimitPerMinute }

// Paging returns the paging config.
func (c AppConfig) Paging() PagingConfig { return c.paging }

// PathCacheTTL returns how long resolved path names are cached.
func (c AppConfig) PathCacheTTL() time.Duration { return c.pathCacheTTL }

// Remote returns the remote config.
func (c AppConfig) Remote() RemoteConfig { return c.remote }

// IsRemote returns true if running in remote mode.
func (c AppConfig) IsRemote() bool {
	return c.remote.IsConfigured()
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Keep the default database inside the data directory.
		if c.dbURL == "" || strings.HasSuffix(c.dbURL, "/"+DefaultDBFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithServerName sets the server name.
func WithServerName(name string) AppConfigOption {
	return func(c *AppConfig) {
		if name != "" {
			c.serverName = name
		}
	}
}

// WithAPIKeys sets the API keys.
func WithAPIKeys(keys []string) AppConfigOption {
	return func(c *AppConfig) {
		c.apiKeys = make([]string, len(keys))
		copy(c.apiKeys, keys)
	}
}

// WithCORSAllowedOrigins sets the allowed CORS origins.
func WithCORSAllowedOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		c.corsAllowedOrigins = make([]string, len(origins))
		copy(c.corsAllowedOrigins, origins)
	}
}

// WithRateLimitPerMinute sets the per-IP request limit.
func WithRateLimitPerMinute(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n >= 0 {
			c.rateLimitPerMinute = n
		}
	}
}

// WithPagingConfig sets the paging config.
func WithPagingConfig(p PagingConfig) AppConfigOption {
	return func(c *AppConfig) { c.paging = p }
}

// WithPathCacheTTL sets the path cache lifetime. Zero disables the cache.
func WithPathCacheTTL(d time.Duration) AppConfigOption {
	return func(c *AppConfig) { c.pathCacheTTL = d }
}

// WithRemoteConfig sets the remote config.
func WithRemoteConfig(r RemoteConfig) AppConfigOption {
	return func(c *AppConfig) { c.remote = r }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// Sensitive values like API keys are masked or shown as counts.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("server_name", c.serverName),
		slog.String("data_dir", c.dataDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.Int("api_keys_count", len(c.apiKeys)),
		slog.Int("cors_origins_count", len(c.corsAllowedOrigins)),
		slog.Int("rate_limit_per_minute", c.rateLimitPerMinute),
		slog.Int("default_page_size", c.paging.DefaultSize()),
		slog.Int("max_page_size", c.paging.MaxSize()),
		slog.Duration("path_cache_ttl", c.pathCacheTTL),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}

// ParseList parses a comma-separated string, dropping blank entries.
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ParseAPIKeys parses a comma-separated string of API keys.
func ParseAPIKeys(s string) []string {
	return ParseList(s)
}

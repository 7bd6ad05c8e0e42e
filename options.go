package omrest

import (
	"io"
	"log/slog"
	"time"

	"github.com/openmeta/omrest/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
)

func (d databaseType) String() string {
	switch d {
	case databaseSQLite:
		return "sqlite"
	case databasePostgres:
		return "postgres"
	default:
		return "unset"
	}
}

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	database     databaseType
	dbPath       string
	dbDSN        string
	dataDir      string
	logger       *slog.Logger
	apiKeys      []string
	pathCacheTTL time.Duration
	closers      []io.Closer
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:      config.DefaultDataDir(),
		pathCacheTTL: config.DefaultPathCacheTTL,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database. Use ":memory:" for a
// private in-memory database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDatabaseURL configures the database from a URL of the form
// sqlite:///path or postgres://... as accepted by the DB_URL setting.
// Unrecognised URLs leave the database unset.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		if path, ok := sqlitePath(url); ok {
			c.database = databaseSQLite
			c.dbPath = path
			return
		}
		if isPostgresURL(url) {
			c.database = databasePostgres
			c.dbDSN = url
			return
		}
		c.database = databaseUnset
	}
}

// WithDataDir sets the data directory holding the default SQLite database.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithAPIKeys sets the API keys for HTTP API authentication.
func WithAPIKeys(keys ...string) Option {
	return func(c *clientConfig) {
		c.apiKeys = keys
	}
}

// WithPathCacheTTL sets how long resolved path names are cached.
// Zero disables the cache.
func WithPathCacheTTL(d time.Duration) Option {
	return func(c *clientConfig) {
		c.pathCacheTTL = d
	}
}

// WithCloser registers a resource to be closed when the Client shuts down.
func WithCloser(c io.Closer) Option {
	return func(cfg *clientConfig) {
		cfg.closers = append(cfg.closers, c)
	}
}

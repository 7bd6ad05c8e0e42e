// Package omrest provides an open metadata folder service.
//
// The Client owns the database connection and the folder service. It backs
// both the REST server and in-process use:
//
//	client, err := omrest.New(
//	    omrest.WithSQLite(".omrest/omrest.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	finance, err := client.Folders.Create(ctx, "", folder.Properties{
//	    DisplayName: "finance",
//	})
//
//	f, err := client.Folders.GetByPathName(ctx, "/finance", false)
package omrest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/openmeta/omrest/application/service"
	"github.com/openmeta/omrest/infrastructure/persistence"
	"github.com/openmeta/omrest/internal/config"
	"github.com/openmeta/omrest/internal/database"
)

// Client is the main entry point for the omrest library.
//
// Access resources via struct fields:
//
//	client.Folders.Get(ctx, guid, false)
//	client.Folders.FindBySearchString(ctx, query, filter, page)
type Client struct {
	Folders *service.Folder

	db      database.Database
	closers []io.Closer

	logger  *slog.Logger
	dataDir string
	apiKeys []string
	closed  atomic.Bool
	mu      sync.Mutex
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("build database url: %w", err)
	}

	// File-backed SQLite needs its directory to exist.
	if cfg.database == databaseSQLite && cfg.dbPath != ":memory:" {
		if _, err := config.PrepareDataDir(filepath.Dir(cfg.dbPath)); err != nil {
			return nil, err
		}
	}

	ctx := context.Background()
	db, err := database.NewDatabaseWithLogger(ctx, dbURL, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	folderStore := persistence.NewFolderStore(db)

	client := &Client{
		db:      db,
		closers: cfg.closers,
		logger:  logger,
		dataDir: cfg.dataDir,
		apiKeys: cfg.apiKeys,
	}

	client.Folders = service.NewFolder(folderStore, logger, service.WithPathCacheTTL(cfg.pathCacheTTL))

	logger.Info("omrest client ready",
		slog.String("database", cfg.database.String()),
		slog.Duration("path_cache_ttl", cfg.pathCacheTTL),
	)

	return client, nil
}

// Close releases all resources.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Close registered resources
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			c.logger.Error("failed to close resource", slog.Any("error", err))
		}
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("omrest client closed")
	return nil
}

// Closed reports whether Close has been called.
func (c *Client) Closed() bool {
	return c.closed.Load()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the keys that unlock mutating API calls.
func (c *Client) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// DataDir returns the data directory.
func (c *Client) DataDir() string {
	return c.dataDir
}

// Ping verifies the database is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	sqlDB, err := c.db.GORM().DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

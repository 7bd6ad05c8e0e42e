package omrest

import (
	"errors"
	"strings"

	"github.com/openmeta/omrest/application/service"
)

// ErrNoDatabase indicates no database was configured.
var ErrNoDatabase = errors.New("omrest: no database configured, use WithSQLite, WithPostgres or WithDatabaseURL")

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = service.ErrClientClosed

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databasePostgres:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}

func sqlitePath(url string) (string, bool) {
	path, ok := strings.CutPrefix(url, "sqlite:///")
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

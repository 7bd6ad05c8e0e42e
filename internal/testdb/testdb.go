// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/persistence"
	"github.com/openmeta/omrest/internal/database"
)

// New creates an in-memory SQLite database with all migrations applied.
// The database is automatically closed when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedFolders stores the given folders and returns them as persisted.
func SeedFolders(t *testing.T, db database.Database, folders ...folder.Folder) []folder.Folder {
	t.Helper()
	ctx := context.Background()
	store := persistence.NewFolderStore(db)
	saved := make([]folder.Folder, len(folders))
	for i, f := range folders {
		s, err := store.Save(ctx, f)
		if err != nil {
			t.Fatalf("testdb.SeedFolders: save %s: %v", f.PathName(), err)
		}
		saved[i] = s
	}
	return saved
}

package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openmeta/omrest/domain"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/persistence"
	"github.com/openmeta/omrest/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFolder(guid, parentGUID, parentPath, name, description string) folder.Folder {
	return folder.NewFolder(guid, parentGUID, folder.ChildPath(parentPath, name), folder.Properties{
		DisplayName: name,
		Description: description,
	})
}

func TestFolderStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFolderStore(testdb.New(t))

	f := newFolder("g-1", "", "", "finance", "Finance data")
	f = f.WithProperties(folder.Properties{AdditionalProperties: map[string]string{"owner": "ops"}}, true)

	saved, err := store.Save(ctx, f)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID())

	got, err := store.FindOne(ctx, folder.WithGUID("g-1"))
	require.NoError(t, err)
	assert.Equal(t, "/finance", got.PathName())
	assert.Equal(t, "Folder::/finance", got.QualifiedName())
	assert.Equal(t, folder.StatusActive, got.Status())
	assert.Equal(t, map[string]string{"owner": "ops"}, got.AdditionalProperties())

	updated, err := store.Save(ctx, got.WithDescription("changed"))
	require.NoError(t, err)
	assert.Equal(t, saved.ID(), updated.ID())

	got, err = store.FindOne(ctx, folder.WithGUID("g-1"))
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description())
	assert.Equal(t, int64(3), got.Version())
}

func TestFolderStore_FindOneNotFound(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFolderStore(testdb.New(t))

	_, err := store.FindOne(ctx, folder.WithGUID("missing"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFolderStore_DuplicatePathConflicts(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFolderStore(testdb.New(t))

	_, err := store.Save(ctx, newFolder("g-1", "", "", "finance", ""))
	require.NoError(t, err)

	_, err = store.Save(ctx, newFolder("g-2", "", "", "finance", ""))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestFolderStore_SearchAndDescendants(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewFolderStore(db)

	testdb.SeedFolders(t, db,
		newFolder("g-1", "", "", "finance", "Finance data"),
		newFolder("g-2", "g-1", "/finance", "reports", "Quarterly reports"),
		newFolder("g-3", "g-2", "/finance/reports", "2024", ""),
		newFolder("g-4", "", "", "finance_old", "Archived"),
	)

	found, err := store.Find(ctx, folder.WithDescendantsOf("/finance"), folder.WithOrderByPath())
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "/finance/reports", found[0].PathName())
	assert.Equal(t, "/finance/reports/2024", found[1].PathName())

	count, err := store.Count(ctx, folder.WithSearch(folder.SearchQuery{Text: "report"}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.Count(ctx, folder.WithSearch(folder.SearchQuery{Text: "FINANCE"}))
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = store.Count(ctx, folder.WithSearch(folder.SearchQuery{Text: "FINANCE", IgnoreCase: true}))
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// The underscore is matched literally.
	count, err = store.Count(ctx, folder.WithSearch(folder.SearchQuery{Text: "e_o"}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Count(ctx, folder.WithSearch(folder.SearchQuery{Text: "*"}))
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestFolderStore_StatusFilter(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewFolderStore(db)

	seeded := testdb.SeedFolders(t, db,
		newFolder("g-1", "", "", "a", ""),
		newFolder("g-2", "", "", "b", ""),
	)
	_, err := store.Save(ctx, seeded[1].WithStatus(folder.StatusDeleted))
	require.NoError(t, err)

	count, err := store.Count(ctx, folder.WithStatusIn(folder.VisibleStatuses(false)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Count(ctx, folder.WithStatusIn(folder.VisibleStatuses(true)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFolderStore_Atomically(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFolderStore(testdb.New(t))

	boom := errors.New("boom")
	err := store.Atomically(ctx, func(tx folder.Store) error {
		if err := tx.SaveAll(ctx, []folder.Folder{
			newFolder("g-1", "", "", "a", ""),
			newFolder("g-2", "", "", "b", ""),
		}); err != nil {
			return err
		}
		n, err := tx.Count(ctx)
		if err != nil {
			return err
		}
		if n != 2 {
			return errors.New("transaction does not see its own writes")
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	err = store.Atomically(ctx, func(tx folder.Store) error {
		_, err := tx.Save(ctx, newFolder("g-1", "", "", "a", ""))
		return err
	})
	require.NoError(t, err)

	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFolderStore_SaveAllRollsBackOnConflict(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFolderStore(testdb.New(t))

	err := store.SaveAll(ctx, []folder.Folder{
		newFolder("g-1", "", "", "a", ""),
		newFolder("g-2", "", "", "a", ""),
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFolderStore_DeleteBy(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewFolderStore(db)

	testdb.SeedFolders(t, db,
		newFolder("g-1", "", "", "a", ""),
		newFolder("g-2", "", "", "b", ""),
	)

	require.NoError(t, store.DeleteBy(ctx, folder.WithGUIDIn([]string{"g-1"})))

	ok, err := store.Exists(ctx, folder.WithGUID("g-1"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Exists(ctx, folder.WithGUID("g-2"))
	require.NoError(t, err)
	assert.True(t, ok)
}

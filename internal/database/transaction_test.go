package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countWidgets(t *testing.T, db Database) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Session(context.Background()).Model(&widget{}).Count(&count).Error)
	return count
}

func TestTransaction_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	txn, err := NewTransaction(ctx, db)
	require.NoError(t, err)
	require.NoError(t, txn.Session().Create(&widget{Code: "kept"}).Error)
	require.NoError(t, txn.Commit())
	// Rollback after commit is a no-op.
	require.NoError(t, txn.Rollback())

	txn, err = NewTransaction(ctx, db)
	require.NoError(t, err)
	require.NoError(t, txn.Session().Create(&widget{Code: "dropped"}).Error)
	require.NoError(t, txn.Rollback())

	assert.Equal(t, int64(1), countWidgets(t, db))
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		return tx.Create(&widget{Code: "a"}).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTransaction(ctx, db, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{Code: "b"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, int64(1), countWidgets(t, db))
}

func TestRunInTransaction_BindsRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewRepository[widget, widget](db, identityMapper{}, "widget")

	err := RunInTransaction(ctx, db, func(tx Database) error {
		bound := repo.Bind(tx)
		if err := bound.DB(ctx).Create(&widget{Code: "a"}).Error; err != nil {
			return err
		}
		n, err := bound.Count(ctx)
		if err != nil {
			return err
		}
		if n != 1 {
			return errors.New("bound repository does not see its own write")
		}
		return errors.New("rollback")
	})
	require.Error(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openmeta/omrest/domain"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/domain/repository"
	"github.com/openmeta/omrest/internal/database"
	"gorm.io/gorm"
)

// FolderStore implements folder.Store using GORM.
type FolderStore struct {
	database.Repository[folder.Folder, FolderModel]
}

// NewFolderStore creates a new FolderStore.
func NewFolderStore(db database.Database) FolderStore {
	return FolderStore{
		Repository: database.NewRepository[folder.Folder, FolderModel](db, FolderMapper{}, "folder"),
	}
}

// FindOne retrieves a single folder matching the given options.
func (s FolderStore) FindOne(ctx context.Context, options ...repository.Option) (folder.Folder, error) {
	f, err := s.Repository.FindOne(ctx, options...)
	if errors.Is(err, database.ErrNotFound) {
		return folder.Folder{}, fmt.Errorf("%w: folder", domain.ErrNotFound)
	}
	return f, err
}

// Save creates or updates a folder.
func (s FolderStore) Save(ctx context.Context, f folder.Folder) (folder.Folder, error) {
	model := s.Mapper().ToModel(f)
	if err := saveModel(s.DB(ctx), &model); err != nil {
		return folder.Folder{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// SaveAll creates or updates the given folders in one transaction.
func (s FolderStore) SaveAll(ctx context.Context, folders []folder.Folder) error {
	if len(folders) == 0 {
		return nil
	}
	// Transaction nests as a savepoint when the store is already bound to one.
	return s.DB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, f := range folders {
			model := s.Mapper().ToModel(f)
			if err := saveModel(tx, &model); err != nil {
				return err
			}
		}
		return nil
	})
}

// Atomically runs fn against a store bound to a single transaction.
func (s FolderStore) Atomically(ctx context.Context, fn func(folder.Store) error) error {
	return database.RunInTransaction(ctx, s.Database(), func(tx database.Database) error {
		return fn(FolderStore{Repository: s.Bind(tx)})
	})
}

func saveModel(db *gorm.DB, model *FolderModel) error {
	now := time.Now()
	var result *gorm.DB
	if model.ID == 0 {
		if model.CreatedAt.IsZero() {
			model.CreatedAt = now
		}
		if model.UpdatedAt.IsZero() {
			model.UpdatedAt = now
		}
		result = db.Create(model)
	} else {
		if model.UpdatedAt.IsZero() {
			model.UpdatedAt = now
		}
		result = db.Save(model)
	}
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return fmt.Errorf("%w: folder %s already exists", domain.ErrConflict, model.PathName)
		}
		return fmt.Errorf("save folder: %w", result.Error)
	}
	return nil
}

package folder

import (
	"context"

	"github.com/openmeta/omrest/domain/repository"
)

// Store persists and retrieves folders.
type Store interface {
	repository.Store[Folder]

	// Save creates or updates a folder.
	Save(ctx context.Context, f Folder) (Folder, error)

	// SaveAll creates or updates the given folders in one transaction.
	SaveAll(ctx context.Context, folders []Folder) error

	// DeleteBy removes folders matching the given options.
	DeleteBy(ctx context.Context, options ...repository.Option) error

	// Atomically runs fn against a store bound to a single transaction.
	// Any error returned by fn rolls the transaction back.
	Atomically(ctx context.Context, fn func(Store) error) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/samber/lo"

	"github.com/openmeta/omrest/domain"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/domain/repository"
)

// DefaultPathCacheTTL is how long a resolved path stays cached.
const DefaultPathCacheTTL = 5 * time.Minute

const pathCacheCapacity = 10000

// StatusFilter restricts results by element status. An empty Statuses list
// admits every status except DELETED; ForLineage re-admits DELETED.
type StatusFilter struct {
	Statuses   []folder.Status
	ForLineage bool
}

func (f StatusFilter) statuses() []folder.Status {
	if len(f.Statuses) > 0 {
		return lo.Uniq(f.Statuses)
	}
	return folder.VisibleStatuses(f.ForLineage)
}

func (f StatusFilter) admits(s folder.Status) bool {
	return lo.Contains(f.statuses(), s)
}

// Page selects a window of results. A zero Limit returns everything.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) options() []repository.Option {
	return repository.WithPagination(max(p.Limit, 0), max(p.Offset, 0))
}

// DeleteParams configures Delete.
type DeleteParams struct {
	Method  folder.DeleteMethod
	Cascade bool
}

// Folder manages the folder hierarchy.
// Embeds Collection for Find/Get/Count; bespoke methods enforce hierarchy rules.
type Folder struct {
	repository.Collection[folder.Folder]
	store  folder.Store
	paths  *ttlcache.Cache[string, string]
	logger *slog.Logger
}

// FolderOption configures a Folder service.
type FolderOption func(*Folder)

// WithPathCacheTTL sets how long resolved paths are cached. A non-positive
// TTL disables caching.
func WithPathCacheTTL(ttl time.Duration) FolderOption {
	return func(s *Folder) {
		if ttl <= 0 {
			s.paths = nil
			return
		}
		s.paths = newPathCache(ttl)
	}
}

// NewFolder creates a new Folder service.
func NewFolder(store folder.Store, logger *slog.Logger, opts ...FolderOption) *Folder {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Folder{
		Collection: repository.NewCollection[folder.Folder](store),
		store:      store,
		paths:      newPathCache(DefaultPathCacheTTL),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newPathCache(ttl time.Duration) *ttlcache.Cache[string, string] {
	return ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithCapacity[string, string](pathCacheCapacity),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
}

// Create adds a folder below parentGUID, or at the root when parentGUID is empty.
func (s *Folder) Create(ctx context.Context, parentGUID string, props folder.Properties) (folder.Folder, error) {
	props.DisplayName = strings.TrimSpace(props.DisplayName)
	if err := validateDisplayName(props.DisplayName); err != nil {
		return folder.Folder{}, err
	}

	var created folder.Folder
	err := s.store.Atomically(ctx, func(store folder.Store) error {
		parentPath := ""
		if parentGUID != "" {
			parent, err := s.visible(ctx, store, parentGUID, false)
			if err != nil {
				return fmt.Errorf("parent: %w", err)
			}
			parentPath = parent.PathName()
		}

		path := folder.ChildPath(parentPath, props.DisplayName)
		taken, err := store.Exists(ctx, folder.WithPathName(path))
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: folder %s already exists", domain.ErrConflict, path)
		}

		created, err = store.Save(ctx, folder.NewFolder(uuid.NewString(), parentGUID, path, props))
		return err
	})
	if err != nil {
		return folder.Folder{}, err
	}

	s.invalidate()
	s.logger.InfoContext(ctx, "folder created",
		slog.String("guid", created.GUID()),
		slog.String("path", created.PathName()),
	)
	return created, nil
}

// Get returns the folder with the given GUID. DELETED folders are only
// returned when forLineage is set.
func (s *Folder) Get(ctx context.Context, guid string, forLineage bool) (folder.Folder, error) {
	return s.visible(ctx, s.store, guid, forLineage)
}

// Update replaces or merges the folder's properties. A display name change
// moves the folder and all of its descendants to the new path.
func (s *Folder) Update(ctx context.Context, guid string, props folder.Properties, merge bool) (folder.Folder, error) {
	props.DisplayName = strings.TrimSpace(props.DisplayName)
	if !merge || props.DisplayName != "" {
		if err := validateDisplayName(props.DisplayName); err != nil {
			return folder.Folder{}, err
		}
	}

	var updated folder.Folder
	err := s.store.Atomically(ctx, func(store folder.Store) error {
		current, err := s.visible(ctx, store, guid, false)
		if err != nil {
			return err
		}

		updated = current.WithProperties(props, merge)
		if updated.DisplayName() == current.DisplayName() {
			updated, err = store.Save(ctx, updated)
			return err
		}

		updated, err = s.move(ctx, store, updated, folder.ChildPath(parentPath(current.PathName()), updated.DisplayName()))
		return err
	})
	if err != nil {
		return folder.Folder{}, err
	}

	s.invalidate()
	return updated, nil
}

// move saves f at newPath and rewrites the paths of its descendants.
func (s *Folder) move(ctx context.Context, store folder.Store, f folder.Folder, newPath string) (folder.Folder, error) {
	oldPath := f.PathName()

	taken, err := store.Exists(ctx, folder.WithPathName(newPath))
	if err != nil {
		return folder.Folder{}, err
	}
	if taken {
		return folder.Folder{}, fmt.Errorf("%w: folder %s already exists", domain.ErrConflict, newPath)
	}

	descendants, err := store.Find(ctx, folder.WithDescendantsOf(oldPath), folder.WithOrderByPath())
	if err != nil {
		return folder.Folder{}, err
	}

	moved := lo.Map(descendants, func(d folder.Folder, _ int) folder.Folder {
		return d.WithPathName(newPath + strings.TrimPrefix(d.PathName(), oldPath))
	})

	f, err = store.Save(ctx, f.WithPathName(newPath))
	if err != nil {
		return folder.Folder{}, err
	}
	if err := store.SaveAll(ctx, moved); err != nil {
		return folder.Folder{}, err
	}

	s.logger.InfoContext(ctx, "folder moved",
		slog.String("guid", f.GUID()),
		slog.String("from", oldPath),
		slog.String("to", newPath),
		slog.Int("descendants", len(moved)),
	)
	return f, nil
}

// SetDescription replaces the folder's description.
func (s *Folder) SetDescription(ctx context.Context, guid, description string) error {
	return s.mutate(ctx, guid, func(f folder.Folder) folder.Folder {
		return f.WithDescription(description)
	})
}

// SetDeprecated marks the folder DEPRECATED, or ACTIVE again when flag is false.
func (s *Folder) SetDeprecated(ctx context.Context, guid string, flag bool) error {
	status := folder.StatusActive
	if flag {
		status = folder.StatusDeprecated
	}
	return s.mutate(ctx, guid, func(f folder.Folder) folder.Folder {
		return f.WithStatus(status)
	})
}

func (s *Folder) mutate(ctx context.Context, guid string, fn func(folder.Folder) folder.Folder) error {
	err := s.store.Atomically(ctx, func(store folder.Store) error {
		current, err := s.visible(ctx, store, guid, false)
		if err != nil {
			return err
		}
		_, err = store.Save(ctx, fn(current))
		return err
	})
	if err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Delete removes the folder. A folder with children is only removed when
// Cascade is set, in which case its whole subtree goes with it.
func (s *Folder) Delete(ctx context.Context, guid string, params DeleteParams) error {
	method := params.Method
	if method == "" {
		method = folder.DeleteSoft
	}

	var removed int
	err := s.store.Atomically(ctx, func(store folder.Store) error {
		// A soft-deleted folder may still be purged.
		current, err := s.visible(ctx, store, guid, method.Purges())
		if err != nil {
			return err
		}

		descendants, err := store.Find(ctx, folder.WithDescendantsOf(current.PathName()))
		if err != nil {
			return err
		}
		visible := lo.Filter(descendants, func(d folder.Folder, _ int) bool { return !d.IsDeleted() })
		if len(visible) > 0 && !params.Cascade {
			return fmt.Errorf("%w: folder %s has %d descendants and cascadedDelete is not set",
				domain.ErrValidation, current.PathName(), len(visible))
		}

		// Purging also removes soft-deleted descendants.
		children := visible
		if method.Purges() {
			children = descendants
		}
		removed = len(children) + 1

		if method.Purges() {
			guids := append(lo.Map(children, func(c folder.Folder, _ int) string { return c.GUID() }), current.GUID())
			return store.DeleteBy(ctx, folder.WithGUIDIn(guids))
		}

		all := append(children, current)
		return store.SaveAll(ctx, lo.Map(all, func(f folder.Folder, _ int) folder.Folder {
			return f.WithStatus(folder.StatusDeleted)
		}))
	})
	if err != nil {
		return err
	}

	s.invalidate()
	s.logger.InfoContext(ctx, "folder deleted",
		slog.String("guid", guid),
		slog.String("method", string(method)),
		slog.Int("removed", removed),
	)
	return nil
}

// FindBySearchString returns folders whose qualified name, display name or
// description matches the query, ordered by path.
func (s *Folder) FindBySearchString(ctx context.Context, query folder.SearchQuery, filter StatusFilter, page Page) ([]folder.Folder, error) {
	opts := []repository.Option{
		folder.WithSearch(query),
		folder.WithStatusIn(filter.statuses()),
		folder.WithOrderByPath(),
	}
	return s.store.Find(ctx, append(opts, page.options()...)...)
}

// CountBySearchString counts the folders FindBySearchString would return without paging.
func (s *Folder) CountBySearchString(ctx context.Context, query folder.SearchQuery, filter StatusFilter) (int64, error) {
	return s.store.Count(ctx,
		folder.WithSearch(query),
		folder.WithStatusIn(filter.statuses()),
	)
}

// FindByName returns folders whose qualified name or display name equals name.
func (s *Folder) FindByName(ctx context.Context, name string, filter StatusFilter, page Page) ([]folder.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	opts := []repository.Option{
		folder.WithName(name),
		folder.WithStatusIn(filter.statuses()),
		folder.WithOrderByPath(),
	}
	return s.store.Find(ctx, append(opts, page.options()...)...)
}

// GetByPathName resolves a full path such as /finance/reports.
func (s *Folder) GetByPathName(ctx context.Context, path string, forLineage bool) (folder.Folder, error) {
	path = folder.NormalizePath(path)
	if path == "" {
		return folder.Folder{}, fmt.Errorf("%w: path name is required", domain.ErrValidation)
	}
	filter := StatusFilter{ForLineage: forLineage}

	if guid, ok := s.cachedPath(path); ok {
		f, err := s.store.FindOne(ctx, folder.WithGUID(guid))
		if err == nil && f.PathName() == path && filter.admits(f.Status()) {
			return f, nil
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return folder.Folder{}, err
		}
		s.paths.Delete(path)
	}

	f, err := s.store.FindOne(ctx, folder.WithPathName(path))
	if err != nil {
		return folder.Folder{}, err
	}
	if !filter.admits(f.Status()) {
		return folder.Folder{}, fmt.Errorf("%w: folder %s", domain.ErrNotFound, path)
	}
	if s.paths != nil {
		s.paths.Set(path, f.GUID(), ttlcache.DefaultTTL)
	}
	return f, nil
}

// PathExists reports whether a visible folder exists at path.
func (s *Folder) PathExists(ctx context.Context, path string) (bool, error) {
	_, err := s.GetByPathName(ctx, path, false)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChildGUIDs returns the GUIDs of the folder's visible direct children.
func (s *Folder) ChildGUIDs(ctx context.Context, guid string, page Page) ([]string, error) {
	children, err := s.children(ctx, guid, page)
	if err != nil {
		return nil, err
	}
	return lo.Map(children, func(c folder.Folder, _ int) string { return c.GUID() }), nil
}

// ChildNames returns the display names of the folder's visible direct children.
func (s *Folder) ChildNames(ctx context.Context, guid string, page Page) ([]string, error) {
	children, err := s.children(ctx, guid, page)
	if err != nil {
		return nil, err
	}
	return lo.Map(children, func(c folder.Folder, _ int) string { return c.DisplayName() }), nil
}

func (s *Folder) children(ctx context.Context, guid string, page Page) ([]folder.Folder, error) {
	if _, err := s.Get(ctx, guid, false); err != nil {
		return nil, err
	}
	opts := []repository.Option{
		folder.WithParentGUID(guid),
		folder.WithStatusIn(folder.VisibleStatuses(false)),
		folder.WithOrderByPath(),
	}
	return s.store.Find(ctx, append(opts, page.options()...)...)
}

// LastUpdated returns when the folder was last changed.
func (s *Folder) LastUpdated(ctx context.Context, guid string) (time.Time, error) {
	f, err := s.Get(ctx, guid, false)
	if err != nil {
		return time.Time{}, err
	}
	return f.UpdatedAt(), nil
}

// PathName returns the folder's full path.
func (s *Folder) PathName(ctx context.Context, guid string) (string, error) {
	f, err := s.Get(ctx, guid, false)
	if err != nil {
		return "", err
	}
	return f.PathName(), nil
}

func (s *Folder) visible(ctx context.Context, store folder.Store, guid string, forLineage bool) (folder.Folder, error) {
	f, err := store.FindOne(ctx, folder.WithGUID(guid))
	if err != nil {
		return folder.Folder{}, fmt.Errorf("folder %s: %w", guid, err)
	}
	if f.IsDeleted() && !forLineage {
		return folder.Folder{}, fmt.Errorf("folder %s: %w", guid, domain.ErrNotFound)
	}
	return f, nil
}

func (s *Folder) cachedPath(path string) (string, bool) {
	if s.paths == nil {
		return "", false
	}
	item := s.paths.Get(path)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

// invalidate drops every cached path. Renames and cascaded deletes change
// many paths at once.
func (s *Folder) invalidate() {
	if s.paths != nil {
		s.paths.DeleteAll()
	}
}

func parentPath(path string) string {
	i := strings.LastIndex(path, folder.PathSeparator)
	if i <= 0 {
		return ""
	}
	return path[:i]
}

func validateDisplayName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: display name is required", domain.ErrValidation)
	case strings.Contains(name, folder.PathSeparator):
		return fmt.Errorf("%w: display name %q must not contain %q", domain.ErrValidation, name, folder.PathSeparator)
	}
	return nil
}

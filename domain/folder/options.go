package folder

import (
	"strings"

	"github.com/openmeta/omrest/domain/repository"
)

// WithGUID filters by the "guid" column.
func WithGUID(guid string) repository.Option {
	return repository.WithCondition("guid", guid)
}

// WithGUIDIn filters by the "guid" column using IN.
func WithGUIDIn(guids []string) repository.Option {
	return repository.WithConditionIn("guid", guids)
}

// WithParentGUID filters by the "parent_guid" column.
func WithParentGUID(guid string) repository.Option {
	return repository.WithCondition("parent_guid", guid)
}

// WithPathName filters by the "path_name" column.
func WithPathName(path string) repository.Option {
	return repository.WithCondition("path_name", path)
}

// WithDescendantsOf matches every folder below the given path.
func WithDescendantsOf(path string) repository.Option {
	return repository.WithWhere(`path_name LIKE ? ESCAPE '\'`, escapeLike(path)+PathSeparator+"%")
}

// WithName matches folders whose qualified or display name equals name.
func WithName(name string) repository.Option {
	return repository.WithWhere("(qualified_name = ? OR display_name = ?)", name, name)
}

// WithStatusIn filters by the "status" column using IN.
func WithStatusIn(statuses []Status) repository.Option {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return repository.WithConditionIn("status", values)
}

// WithOrderByPath orders results by path name.
func WithOrderByPath() repository.Option {
	return repository.WithOrderAsc("path_name")
}

// SearchQuery describes a search over folder names and descriptions.
type SearchQuery struct {
	Text       string
	StartsWith bool
	EndsWith   bool
	IgnoreCase bool
}

// MatchesAll reports whether the query selects every folder.
func (q SearchQuery) MatchesAll() bool {
	t := strings.TrimSpace(q.Text)
	return t == "" || t == "*" || t == ".*"
}

// Pattern returns the LIKE pattern for the query.
func (q SearchQuery) Pattern() string {
	p := escapeLike(q.Text)
	if !q.StartsWith {
		p = "%" + p
	}
	if !q.EndsWith {
		p += "%"
	}
	return p
}

// WithSearch matches the qualified name, display name or description against q.
func WithSearch(q SearchQuery) repository.Option {
	if q.MatchesAll() {
		return func(query repository.Query) repository.Query { return query }
	}
	pattern := q.Pattern()
	if q.IgnoreCase {
		return repository.WithWhere(
			`(LOWER(qualified_name) LIKE LOWER(?) ESCAPE '\' OR LOWER(display_name) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}
	return repository.WithWhere(
		`(qualified_name LIKE ? ESCAPE '\' OR display_name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`,
		pattern, pattern, pattern,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package folder

import (
	"testing"

	"github.com/openmeta/omrest/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_MatchesAll(t *testing.T) {
	for _, text := range []string{"", " ", "*", ".*"} {
		assert.True(t, SearchQuery{Text: text}.MatchesAll(), "text %q", text)
	}
	assert.False(t, SearchQuery{Text: "fin"}.MatchesAll())
}

func TestSearchQuery_Pattern(t *testing.T) {
	assert.Equal(t, "%fin%", SearchQuery{Text: "fin"}.Pattern())
	assert.Equal(t, "fin%", SearchQuery{Text: "fin", StartsWith: true}.Pattern())
	assert.Equal(t, "%fin", SearchQuery{Text: "fin", EndsWith: true}.Pattern())
	assert.Equal(t, "fin", SearchQuery{Text: "fin", StartsWith: true, EndsWith: true}.Pattern())
	assert.Equal(t, `%100\%\_a\\b%`, SearchQuery{Text: `100%_a\b`}.Pattern())
}

func TestWithSearch_MatchAllAddsNoClause(t *testing.T) {
	q := repository.Build(WithSearch(SearchQuery{Text: "*"}))
	assert.Empty(t, q.Clauses())
}

func TestWithSearch_IgnoreCase(t *testing.T) {
	q := repository.Build(WithSearch(SearchQuery{Text: "Fin", IgnoreCase: true}))
	require.Len(t, q.Clauses(), 1)
	assert.Contains(t, q.Clauses()[0].SQL(), "LOWER(qualified_name)")
	assert.Equal(t, []any{"%Fin%", "%Fin%", "%Fin%"}, q.Clauses()[0].Args())
}

func TestWithStatusIn(t *testing.T) {
	q := repository.Build(WithStatusIn([]Status{StatusActive, StatusDraft}))
	require.Len(t, q.Conditions(), 1)
	c := q.Conditions()[0]
	assert.True(t, c.In())
	assert.Equal(t, "status", c.Field())
	assert.Equal(t, []string{"ACTIVE", "DRAFT"}, c.Value())
}

func TestWithDescendantsOf(t *testing.T) {
	q := repository.Build(WithDescendantsOf("/a_b"))
	require.Len(t, q.Clauses(), 1)
	assert.Equal(t, []any{`/a\_b/%`}, q.Clauses()[0].Args())
}

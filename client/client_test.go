package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/client"
	"github.com/openmeta/omrest/infrastructure/api"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
	"github.com/openmeta/omrest/internal/log"
)

const apiKey = "client-test-key"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	backend, err := omrest.New(omrest.WithSQLite(":memory:"), omrest.WithAPIKeys(apiKey))
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	srv := httptest.NewServer(api.NewAPIServer(backend).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, opts ...client.Option) *client.Client {
	t.Helper()
	c, err := client.New(srv.URL, append([]client.Option{client.WithAPIKey(apiKey)}, opts...)...)
	require.NoError(t, err)
	return c
}

func folderBody(parent, name string) dto.NewFolderRequestBody {
	return dto.NewFolderRequestBody{
		ParentGUID: parent,
		Properties: &dto.FolderProperties{DisplayName: name},
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "localhost:8080", "/api"} {
		_, err := client.New(raw)
		assert.Error(t, err, raw)
	}

	c, err := client.New("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
}

func TestClient_FolderLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newServer(t))

	finance, err := c.CreateFolder(ctx, folderBody("", "finance"))
	require.NoError(t, err)
	reports, err := c.CreateFolder(ctx, folderBody(finance, "reports"))
	require.NoError(t, err)
	budgets, err := c.CreateFolder(ctx, folderBody(finance, "budgets"))
	require.NoError(t, err)

	element, err := c.GetFolder(ctx, reports, false)
	require.NoError(t, err)
	want := &dto.FolderProperties{
		QualifiedName: "Folder::/finance/reports",
		DisplayName:   "reports",
		PathName:      "/finance/reports",
	}
	assert.Empty(t, cmp.Diff(want, element.Properties))
	assert.Equal(t, finance, element.ParentGUID)

	path, err := c.FolderPathName(ctx, budgets)
	require.NoError(t, err)
	assert.Equal(t, "/finance/budgets", path)

	guids, err := c.ChildFolderGUIDs(ctx, finance, client.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{budgets, reports}, guids)

	names, err := c.ChildFolderNames(ctx, finance, client.Page{StartFrom: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"reports"}, names)

	require.NoError(t, c.SetFolderDescription(ctx, reports, "quarterly"))
	require.NoError(t, c.SetFolderDeprecated(ctx, reports, true))
	element, err = c.GetFolder(ctx, reports, false)
	require.NoError(t, err)
	assert.Equal(t, "quarterly", element.Properties.Description)
	assert.Equal(t, dto.StatusDeprecated, element.ElementHeader.Status)

	updated, err := c.FolderLastUpdated(ctx, reports)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), updated, time.Minute)

	require.NoError(t, c.UpdateFolder(ctx, finance, dto.UpdateFolderRequestBody{
		UpdateElementRequestBody: dto.UpdateElementRequestBody{MergeUpdate: true},
		Properties:               &dto.FolderProperties{DisplayName: "accounts"},
	}))
	exists, err := c.FolderPathExists(ctx, "/accounts/reports")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = c.FolderPathExists(ctx, "/finance/reports")
	require.NoError(t, err)
	assert.False(t, exists)

	byPath, err := c.FolderByPathName(ctx, dto.PathNameRequestBody{FullPath: "/accounts"})
	require.NoError(t, err)
	assert.Equal(t, finance, byPath.ElementHeader.GUID)

	byName, err := c.FoldersByName(ctx, dto.FilterRequestBody{Filter: "budgets"}, client.Page{})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, budgets, byName[0].ElementHeader.GUID)

	found, err := c.FindFolders(ctx, dto.SearchStringRequestBody{SearchString: "accounts", StartsWith: false}, client.Page{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, found, 3)

	count, err := c.CountFolders(ctx, dto.SearchStringRequestBody{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, c.DeleteFolder(ctx, finance, dto.DeleteOptions{CascadedDelete: true}))
	_, err = c.GetFolder(ctx, finance, false)
	assert.ErrorIs(t, err, client.ErrNotFound)

	element, err = c.GetFolder(ctx, finance, true)
	require.NoError(t, err)
	assert.Equal(t, dto.StatusDeleted, element.ElementHeader.Status)
}

func TestClient_ExceptionErrors(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t)
	c := newClient(t, srv)

	_, err := c.GetFolder(ctx, "00000000-0000-4000-8000-000000000000", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.ErrorIs(t, err, client.ErrInvalidParameter)

	var exc *client.ExceptionError
	require.True(t, errors.As(err, &exc))
	assert.Equal(t, http.StatusNotFound, exc.StatusCode())
	assert.Equal(t, "OMREST-404-001", exc.Response().ExceptionErrorMessageID)
	assert.Equal(t, "getFolderByGUID", exc.Response().ActionDescription)

	_, err = c.CreateFolder(ctx, dto.NewFolderRequestBody{})
	assert.ErrorIs(t, err, client.ErrInvalidParameter)
	assert.NotErrorIs(t, err, client.ErrNotFound)

	anonymous, err := client.New(srv.URL)
	require.NoError(t, err)
	_, err = anonymous.CreateFolder(ctx, folderBody("", "finance"))
	assert.ErrorIs(t, err, client.ErrUserNotAuthorized)

	// Reads need no key.
	count, err := anonymous.CountFolders(ctx, dto.SearchStringRequestBody{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClient_NonEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.FolderPathName(context.Background(), "00000000-0000-4000-8000-000000000000")

	var exc *client.ExceptionError
	require.True(t, errors.As(err, &exc))
	assert.Equal(t, http.StatusBadGateway, exc.StatusCode())
	assert.Contains(t, exc.Error(), "upstream exploded")
}

func TestClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(url, client.WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = c.CountFolders(context.Background(), dto.SearchStringRequestBody{})

	var connErr *client.ConnectionError
	require.True(t, errors.As(err, &connErr), "got %v", err)
	assert.Contains(t, connErr.URL(), "/api/v1/folders/by-search-string/count")
}

func TestClient_SendsHeaders(t *testing.T) {
	var gotKey, gotCorrelation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotCorrelation = r.Header.Get("X-Correlation-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"relatedHTTPCode":200,"flag":true}`))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL, client.WithAPIKey("k"), client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctx := log.WithCorrelationID(context.Background(), "corr-1")
	exists, err := c.FolderPathExists(ctx, "/finance")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "k", gotKey)
	assert.Equal(t, "corr-1", gotCorrelation)
}

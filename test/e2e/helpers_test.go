package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/api"
	apimiddleware "github.com/openmeta/omrest/infrastructure/api/middleware"
	"github.com/openmeta/omrest/infrastructure/persistence"
	"github.com/openmeta/omrest/internal/database"
)

const testAPIKey = "e2e-secret"

// TestServer wraps the API server for e2e testing.
type TestServer struct {
	t          *testing.T
	client     *omrest.Client
	db         database.Database
	httpServer *httptest.Server

	// Store for direct DB manipulation in tests
	folderStore persistence.FolderStore
}

// NewTestServer creates a new test server with all dependencies wired up.
// Creates an omrest.Client backed by SQLite and a separate DB handle for test data seeding.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	client, err := omrest.New(
		omrest.WithSQLite(dbPath),
		omrest.WithDataDir(tmpDir),
		omrest.WithAPIKeys(testAPIKey),
	)
	if err != nil {
		t.Fatalf("create omrest client: %v", err)
	}

	// Open a separate DB handle for seeding test data
	db, err := database.NewDatabase(ctx, "sqlite:///"+dbPath)
	if err != nil {
		t.Fatalf("create database: %v", err)
	}

	logger := client.Logger()
	apiServer := api.NewAPIServer(client)
	router := apiServer.Router()
	router.Use(apimiddleware.CorrelationID)
	router.Use(apimiddleware.Logging(logger))
	apiServer.MountRoutes()

	server := api.NewServer(":0", logger)
	server.Router().Mount("/", router)

	httpServer := httptest.NewServer(server.Router())

	ts := &TestServer{
		t:           t,
		client:      client,
		db:          db,
		httpServer:  httpServer,
		folderStore: persistence.NewFolderStore(db),
	}

	t.Cleanup(func() {
		ts.Close()
	})

	return ts
}

// URL returns the base URL of the test server.
func (ts *TestServer) URL() string {
	return ts.httpServer.URL
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.httpServer.Close()
	_ = ts.client.Close()
	_ = ts.db.Close()
}

// GET performs a GET request and returns the response.
func (ts *TestServer) GET(path string) *http.Response {
	ts.t.Helper()
	resp, err := http.Get(ts.URL() + path)
	if err != nil {
		ts.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST performs a POST request with JSON body and returns the response.
// Extra arguments are header name/value pairs.
func (ts *TestServer) POST(path string, body any, headers ...string) *http.Response {
	ts.t.Helper()
	jsonBody, err := json.Marshal(body)
	if err != nil {
		ts.t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, ts.URL()+path, bytes.NewReader(jsonBody))
	if err != nil {
		ts.t.Fatalf("create POST request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// AdminPOST performs a POST request carrying the test API key.
func (ts *TestServer) AdminPOST(path string, body any) *http.Response {
	ts.t.Helper()
	return ts.POST(path, body, "X-API-KEY", testAPIKey)
}

// DecodeJSON decodes the response body as JSON into v.
func (ts *TestServer) DecodeJSON(resp *http.Response, v any) {
	ts.t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		ts.t.Fatalf("decode response: %v", err)
	}
}

// ReadBody reads and returns the response body as a string.
func (ts *TestServer) ReadBody(resp *http.Response) string {
	ts.t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ts.t.Fatalf("read body: %v", err)
	}
	return string(body)
}

// CreateFolder creates a folder in the database directly.
func (ts *TestServer) CreateFolder(parent *folder.Folder, name string) folder.Folder {
	ts.t.Helper()
	ctx := context.Background()

	parentGUID, parentPath := "", ""
	if parent != nil {
		parentGUID, parentPath = parent.GUID(), parent.PathName()
	}
	f := folder.NewFolder(uuid.NewString(), parentGUID, folder.ChildPath(parentPath, name), folder.Properties{
		DisplayName: name,
	})
	saved, err := ts.folderStore.Save(ctx, f)
	if err != nil {
		ts.t.Fatalf("save folder: %v", err)
	}
	return saved
}

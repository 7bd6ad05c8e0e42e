package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestNewServer(t *testing.T) {
	server := NewServer(":8080", slog.Default())

	assert.Equal(t, ":8080", server.Addr())
	assert.NotNil(t, server.Router())
}

func TestNewServer_NilLogger(t *testing.T) {
	server := NewServer(":0", nil)
	assert.NotNil(t, server.logger)
}

func TestServer_RecoversPanics(t *testing.T) {
	server := NewServer(":0", slog.Default())
	server.Router().Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_NotFound(t *testing.T) {
	server := NewServer(":0", slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	server := NewServer(":0", slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, server.Shutdown(ctx))
}

func TestDocsRouter(t *testing.T) {
	routes := NewDocsRouter("/docs/openapi.json").Routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `url: "/docs/openapi.json"`)

	req = httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	req.Host = "meta.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"url": "https://meta.example.com/api/v1"`)
	assert.Contains(t, w.Body.String(), `"/folders/{guid}/children/names"`)
}

func TestSwaggerInfo_Registered(t *testing.T) {
	doc, err := swag.ReadDoc(DocsInstanceName)
	require.NoError(t, err)

	assert.Contains(t, doc, `"openapi": "3.0.3"`)
	assert.Contains(t, doc, `"url": "//localhost:8080/api/v1"`)
}

func TestServer_StartAfterShutdown(t *testing.T) {
	server := NewServer("127.0.0.1:0", slog.Default())
	require.NoError(t, server.Shutdown(context.Background()))

	assert.NoError(t, server.Start())
}

package api_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/infrastructure/api"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

func newTestClient(t *testing.T, opts ...omrest.Option) *omrest.Client {
	t.Helper()
	opts = append([]omrest.Option{omrest.WithSQLite(":memory:")}, opts...)
	client, err := omrest.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func do(handler http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAPIServer_ReadEndpointsOpen_WriteEndpointsProtected(t *testing.T) {
	client := newTestClient(t, omrest.WithAPIKeys("test-secret-key"))
	handler := api.NewAPIServer(client).Handler()

	t.Run("GET /docs/ returns 200 without API key", func(t *testing.T) {
		w := do(handler, http.MethodGet, "/docs/", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("POST /api/v1/folders without key returns 401", func(t *testing.T) {
		w := do(handler, http.MethodPost, "/api/v1/folders", `{"properties":{"displayName":"finance"}}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	var guid string
	t.Run("POST /api/v1/folders with valid key creates", func(t *testing.T) {
		w := do(handler, http.MethodPost, "/api/v1/folders", `{"properties":{"displayName":"finance"}}`,
			"X-API-KEY", "test-secret-key")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp dto.GUIDResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		guid = resp.Result()
		assert.NotEmpty(t, guid)
	})

	t.Run("GET /api/v1/folders/{guid} returns 200 without API key", func(t *testing.T) {
		w := do(handler, http.MethodGet, "/api/v1/folders/"+guid, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("POST /api/v1/folders/by-search-string without key returns 200", func(t *testing.T) {
		w := do(handler, http.MethodPost, "/api/v1/folders/by-search-string", `{"searchString":"fin"}`)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("POST /api/v1/folders/{guid}/delete without key returns 401", func(t *testing.T) {
		w := do(handler, http.MethodPost, "/api/v1/folders/"+guid+"/delete", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func TestAPIServer_HealthAndInfo(t *testing.T) {
	client := newTestClient(t)
	handler := api.NewAPIServer(client, api.WithServiceInfo("meta-east", "1.2.3")).Handler()

	for _, path := range []string{"/health", "/healthz"} {
		w := do(handler, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	}

	w := do(handler, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"meta-east","version":"1.2.3","docs":"/docs"}`, w.Body.String())
}

func TestAPIServer_HealthUnavailableAfterClose(t *testing.T) {
	client, err := omrest.New(omrest.WithSQLite(":memory:"))
	require.NoError(t, err)
	handler := api.NewAPIServer(client).Handler()
	require.NoError(t, client.Close())

	w := do(handler, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"unhealthy"`)
}

func TestAPIServer_Metrics(t *testing.T) {
	client := newTestClient(t)
	reg := prometheus.NewRegistry()
	handler := api.NewAPIServer(client, api.WithRegistry(reg)).Handler()

	w := do(handler, http.MethodPost, "/api/v1/folders/by-search-string/count", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(handler, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "omrest_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/folders/by-search-string/count"`)
}

func TestAPIServer_CORS(t *testing.T) {
	client := newTestClient(t)
	handler := api.NewAPIServer(client, api.WithCORSOrigins([]string{"https://ui.example.com"})).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/folders/by-name", nil)
	req.Header.Set("Origin", "https://ui.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "https://ui.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/folders/00000000-0000-4000-8000-000000000000", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIServer_RateLimit(t *testing.T) {
	client := newTestClient(t)
	handler := api.NewAPIServer(client, api.WithRateLimit(2)).Handler()

	for range 2 {
		w := do(handler, http.MethodPost, "/api/v1/folders/by-search-string/count", "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(handler, http.MethodPost, "/api/v1/folders/by-search-string/count", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp dto.VoidResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusTooManyRequests, resp.RelatedHTTPCode)
	assert.Equal(t, "PropertyServerException", resp.ExceptionClassName)
	assert.Equal(t, "rateLimit", resp.ActionDescription)

	// Health is outside the limited group.
	w = do(handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIServer_MCPInitialize(t *testing.T) {
	client := newTestClient(t, omrest.WithAPIKeys("test-secret-key"))
	handler := api.NewAPIServer(client, api.WithServiceInfo("meta-east", "1.2.3")).Handler()

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	w := do(handler, http.MethodPost, "/mcp", body, "Accept", "application/json, text/event-stream")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"meta-east"`)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestAPIServer_ListenAndServe(t *testing.T) {
	client := newTestClient(t)
	apiServer := api.NewAPIServer(client, api.WithServiceInfo("meta-east", "1.2.3"))
	addr := freeAddr(t)

	done := make(chan error, 1)
	go func() { done <- apiServer.ListenAndServe(addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get("http://" + addr + "/api/v1/folders/not-a-guid")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, apiServer.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after Shutdown")
	}
}

func TestAPIServer_ShutdownBeforeListen(t *testing.T) {
	apiServer := api.NewAPIServer(newTestClient(t))

	require.NoError(t, apiServer.Shutdown(context.Background()))
	assert.NoError(t, apiServer.ListenAndServe(freeAddr(t)))
}

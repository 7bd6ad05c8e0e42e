package e2e_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.GET("/healthz")
	body := ts.ReadBody(resp)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(body, `"healthy"`) {
		t.Errorf("body = %s, want healthy status", body)
	}
}

func TestMetricsCountRequests(t *testing.T) {
	ts := NewTestServer(t)

	_ = ts.ReadBody(ts.GET("/api/v1/folders/not-a-guid"))

	body := ts.ReadBody(ts.GET("/metrics"))
	if !strings.Contains(body, "omrest_http_requests_total") {
		t.Errorf("metrics missing request counter:\n%s", body)
	}
}

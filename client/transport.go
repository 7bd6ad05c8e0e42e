package client

import (
	"net/http"

	"github.com/openmeta/omrest/internal/log"
)

const correlationIDHeader = "X-Correlation-ID"

// headerTransport is an http.RoundTripper that adds the API key and the
// caller's correlation ID to every request.
type headerTransport struct {
	inner  http.RoundTripper
	apiKey string
}

// newHeaderTransport wraps inner. If inner is nil, http.DefaultTransport is used.
func newHeaderTransport(inner http.RoundTripper, apiKey string) *headerTransport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &headerTransport{inner: inner, apiKey: apiKey}
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := log.CorrelationID(req.Context())
	if t.apiKey == "" && id == "" {
		return t.inner.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	if t.apiKey != "" {
		req.Header.Set(apiKeyHeader, t.apiKey)
	}
	if id != "" && req.Header.Get(correlationIDHeader) == "" {
		req.Header.Set(correlationIDHeader, id)
	}
	return t.inner.RoundTrip(req)
}

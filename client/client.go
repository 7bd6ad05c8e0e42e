// Package client is a typed HTTP client for the omrest folder API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

const (
	defaultTimeout = 30 * time.Second
	apiKeyHeader   = "X-API-KEY"
	foldersPath    = "/api/v1/folders"
)

// Client calls an omrest server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	apiKey     string
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sends key in the X-API-KEY header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of each request. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must include scheme and host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	hc.Transport = newHeaderTransport(hc.Transport, c.apiKey)
	c.httpClient = &hc

	return c, nil
}

// BaseURL returns the server URL.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// envelope is a pointer to a response type that carries FFDC fields.
type envelope[T any] interface {
	*T
	dto.Response
}

// do sends body (when non-nil) and decodes the reply into a new T. A failed
// envelope or non-2xx status becomes an *ExceptionError.
func do[T any, P envelope[T]](ctx context.Context, c *Client, method, path string, query url.Values, body any) (P, error) {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{url: target.String(), cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{url: target.String(), cause: fmt.Errorf("read response: %w", err)}
	}

	c.logger.DebugContext(ctx, "omrest request",
		slog.String("method", method),
		slog.String("url", target.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	out := P(new(T))
	if len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			if resp.StatusCode >= http.StatusMultipleChoices {
				return nil, newExceptionError(resp.StatusCode, &dto.FFDCResponseBase{
					RelatedHTTPCode:       resp.StatusCode,
					ExceptionErrorMessage: strings.TrimSpace(string(data)),
				})
			}
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	ffdc := out.FFDC()
	if ffdc.Failed() || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newExceptionError(resp.StatusCode, ffdc)
	}
	return out, nil
}

// folderPath styles guid as an OpenAPI simple path parameter below the
// folders collection.
func folderPath(guid string, parts ...string) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, "guid", runtime.ParamLocationPath, guid)
	if err != nil {
		return "", fmt.Errorf("guid parameter: %w", err)
	}
	return foldersPath + "/" + styled + strings.Join(parts, ""), nil
}

// addQuery styles value as an OpenAPI form query parameter and adds it to q.
func addQuery(q url.Values, name string, value any) error {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("%s parameter: %w", name, err)
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return fmt.Errorf("%s parameter: %w", name, err)
	}
	for k, vs := range parsed {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return nil
}

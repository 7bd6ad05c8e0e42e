package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openmeta/omrest"
	apimiddleware "github.com/openmeta/omrest/infrastructure/api/middleware"
	v1 "github.com/openmeta/omrest/infrastructure/api/v1"
	"github.com/openmeta/omrest/internal/mcp"
)

const actionRateLimit = "rateLimit"

// APIServer provides an HTTP API backed by an omrest Client.
type APIServer struct {
	client       *omrest.Client
	paging       v1.Paging
	corsOrigins  []string
	ratePerMin   int
	registry     *prometheus.Registry
	name         string
	version      string
	mu           sync.Mutex
	server       *Server
	closed       bool
	router       chi.Router
	routerCalled bool
	logger       *slog.Logger
}

// APIServerOption configures an APIServer.
type APIServerOption func(*APIServer)

// WithPaging sets the page size limits of list endpoints.
func WithPaging(p v1.Paging) APIServerOption {
	return func(a *APIServer) { a.paging = p }
}

// WithCORSOrigins enables CORS for the given origins.
func WithCORSOrigins(origins []string) APIServerOption {
	return func(a *APIServer) { a.corsOrigins = append([]string(nil), origins...) }
}

// WithRateLimit limits each client IP to n API requests per minute.
// Zero disables the limit.
func WithRateLimit(n int) APIServerOption {
	return func(a *APIServer) {
		if n >= 0 {
			a.ratePerMin = n
		}
	}
}

// WithRegistry exposes metrics from reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) APIServerOption {
	return func(a *APIServer) {
		if reg != nil {
			a.registry = reg
		}
	}
}

// WithServiceInfo sets the name and version reported at the root endpoint.
func WithServiceInfo(name, version string) APIServerOption {
	return func(a *APIServer) {
		if name != "" {
			a.name = name
		}
		if version != "" {
			a.version = version
		}
	}
}

// NewAPIServer creates a new APIServer wired to the given omrest Client.
// Write protection comes from the client's API keys: folder mutations
// require a valid key while queries, health, metrics, docs and the read-only
// MCP endpoint remain open.
func NewAPIServer(client *omrest.Client, opts ...APIServerOption) *APIServer {
	a := &APIServer{
		client:  client,
		paging:  v1.DefaultPaging(),
		name:    "omrest",
		version: "dev",
		logger:  client.Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return a
}

// Router returns the chi router for customization before starting.
// Call this first, add custom middleware with router.Use(), then call MountRoutes().
// If not called, ListenAndServe creates a default router with all standard routes.
func (a *APIServer) Router() chi.Router {
	if a.router != nil {
		return a.router
	}

	a.router = chi.NewRouter()
	a.routerCalled = true
	return a.router
}

// MountRoutes wires up the API, health, metrics and docs routes on the router.
// Call this after adding any custom middleware via Router().Use().
func (a *APIServer) MountRoutes() {
	if a.router == nil {
		a.Router()
	}
	a.mountRoutes(a.router)
}

func (a *APIServer) mountRoutes(router chi.Router) {
	metrics := apimiddleware.NewMetrics(a.registry)
	folders := v1.NewFoldersRouter(a.client, a.paging)

	router.Group(func(r chi.Router) {
		r.Use(metrics.Handler)
		if len(a.corsOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   a.corsOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-KEY", apimiddleware.CorrelationIDHeader},
				ExposedHeaders:   []string{apimiddleware.CorrelationIDHeader},
				AllowCredentials: false,
				MaxAge:           300,
			}))
		}
		if a.ratePerMin > 0 {
			r.Use(httprate.Limit(a.ratePerMin, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(a.rateLimited),
			))
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(chimiddleware.Timeout(60 * time.Second))
			r.Mount("/folders", folders.Routes())
		})
	})

	router.Get("/health", a.health)
	router.Get("/healthz", a.health)
	router.Get("/", a.info)
	router.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	router.Mount("/docs", a.DocsRouter("/docs/openapi.json").Routes())

	// MCP streamable HTTP endpoint, outside the /api/v1 timeout.
	mcpSrv := mcp.NewServer(a.client.Folders, a.name, a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

// DocsRouter returns a router for Swagger UI and OpenAPI spec.
func (a *APIServer) DocsRouter(specURL string) *DocsRouter {
	return NewDocsRouter(specURL)
}

// ListenAndServe starts the HTTP server on the given address and blocks
// until Shutdown. It returns nil at once if Shutdown already ran.
func (a *APIServer) ListenAndServe(addr string) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	server := NewServer(addr, a.logger)
	a.server = &server
	a.mu.Unlock()

	if a.routerCalled && a.router != nil {
		server.Router().Mount("/", a.router)
	} else {
		router := server.Router()
		router.Use(apimiddleware.CorrelationID)
		router.Use(apimiddleware.Logging(a.logger))
		a.mountRoutes(router)
	}

	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	a.closed = true
	server := a.server
	a.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.Router()
		a.MountRoutes()
	}
	return a.router
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (a *APIServer) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
		apimiddleware.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Error: err.Error()})
		return
	}
	apimiddleware.WriteJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

type infoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

func (a *APIServer) info(w http.ResponseWriter, _ *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, infoResponse{Name: a.name, Version: a.version, Docs: "/docs"})
}

func (a *APIServer) rateLimited(w http.ResponseWriter, r *http.Request) {
	err := apimiddleware.NewServerError(http.StatusTooManyRequests, "rate limit exceeded")
	apimiddleware.WriteError(w, r, actionRateLimit, err, a.logger)
}

package middleware

import (
	"net/http"
)

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	apiKeys map[string]struct{}
	enabled bool
}

// NewAuthConfigWithKeys creates a new AuthConfig with multiple API keys.
// Empty keys are ignored; with no keys left authentication is disabled.
func NewAuthConfigWithKeys(apiKeys []string) AuthConfig {
	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}
	if len(keys) == 0 {
		return AuthConfig{enabled: false}
	}
	return AuthConfig{
		apiKeys: keys,
		enabled: true,
	}
}

// Enabled returns true if authentication is enabled.
func (c AuthConfig) Enabled() bool { return c.enabled }

// Valid reports whether key is one of the configured API keys.
func (c AuthConfig) Valid(key string) bool {
	_, ok := c.apiKeys[key]
	return ok
}

// WriteProtect returns a middleware that requires a valid X-API-KEY header on
// mutating methods. GET, HEAD and OPTIONS always pass, as does everything
// when authentication is disabled.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.enabled {
				next.ServeHTTP(w, r)
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-KEY")
			if apiKey == "" {
				WriteError(w, r, "writeProtect", NewAuthenticationError("X-API-KEY header is required"), nil)
				return
			}
			if !config.Valid(apiKey) {
				WriteError(w, r, "writeProtect", NewAuthenticationError("invalid API key"), nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

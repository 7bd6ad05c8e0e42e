package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openmeta/omrest/client"
	"github.com/openmeta/omrest/internal/log"
)

const defaultServerURL = "http://localhost:8080"

// remoteFlags are shared by commands that talk to a running server.
type remoteFlags struct {
	envFile string
	server  string
	apiKey  string
	timeout time.Duration
	output  string
}

func (f *remoteFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.envFile, "env-file", "", "Path to .env file")
	flags.StringVar(&f.server, "server", "", "Server URL (default: REMOTE_SERVER_URL or "+defaultServerURL+")")
	flags.StringVar(&f.apiKey, "api-key", "", "API key for write operations (default: REMOTE_API_KEY)")
	flags.DurationVar(&f.timeout, "timeout", 0, "Request timeout (default: REMOTE_TIMEOUT or 30s)")
	flags.StringVarP(&f.output, "output", "o", "json", "Output format: json, yaml")
}

// client builds an API client from the flags, falling back to the REMOTE_*
// configuration.
func (f *remoteFlags) client() (*client.Client, error) {
	cfg, err := loadConfig(f.envFile)
	if err != nil {
		return nil, err
	}
	remote := cfg.Remote()

	server := f.server
	if server == "" {
		server = remote.ServerURL()
	}
	if server == "" {
		server = defaultServerURL
	}
	apiKey := f.apiKey
	if apiKey == "" {
		apiKey = remote.APIKey()
	}
	timeout := f.timeout
	if timeout == 0 {
		timeout = remote.Timeout()
	}

	logger := log.NewLogger(cfg).Slog()
	return client.New(server,
		client.WithAPIKey(apiKey),
		client.WithTimeout(timeout),
		client.WithLogger(logger),
	)
}

// print writes v in the selected output format.
func (f *remoteFlags) print(w io.Writer, v any) error {
	switch f.output {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Round-trip through JSON so the wire field names and epoch times are kept.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", f.output)
	}
}

// describe appends the server's suggested user action to API failures.
func describe(err error) error {
	var exc *client.ExceptionError
	if errors.As(err, &exc) {
		resp := exc.Response()
		if resp.ExceptionUserAction != "" {
			return fmt.Errorf("%w (%s)", err, resp.ExceptionUserAction)
		}
	}
	return err
}

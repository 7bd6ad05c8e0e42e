package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/internal/log"
	"github.com/openmeta/omrest/internal/mcp"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants look up and search folders without the HTTP server.
Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Logs go to stderr; stdout carries the protocol.
	slogger := log.NewLogger(cfg).Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := omrest.New(clientOptions(cfg, slogger)...)
	if err != nil {
		return fmt.Errorf("create omrest client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close omrest client", slog.Any("error", err))
		}
	}()

	mcpServer := mcp.NewServer(client.Folders, cfg.ServerName(), version, slogger)
	return mcpServer.ServeStdio()
}

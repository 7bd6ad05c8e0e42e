// Package mcp exposes read-only folder queries over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openmeta/omrest/application/service"
	"github.com/openmeta/omrest/domain"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/domain/repository"
	v1 "github.com/openmeta/omrest/infrastructure/api/v1"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// FolderReader provides the folder lookups used by the MCP tools.
type FolderReader interface {
	Get(ctx context.Context, guid string, forLineage bool) (folder.Folder, error)
	GetByPathName(ctx context.Context, path string, forLineage bool) (folder.Folder, error)
	FindBySearchString(ctx context.Context, query folder.SearchQuery, filter service.StatusFilter, page service.Page) ([]folder.Folder, error)
	Find(ctx context.Context, options ...repository.Option) ([]folder.Folder, error)
}

// Server wraps the MCP server with folder tools.
type Server struct {
	mcpServer *server.MCPServer
	folders   FolderReader
	logger    *slog.Logger
}

// NewServer creates a new MCP server backed by folders.
func NewServer(folders FolderReader, name, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		folders: folders,
		logger:  logger,
	}

	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	getFolderTool := mcp.NewTool("get_folder",
		mcp.WithDescription("Get a folder by its unique identifier"),
		mcp.WithString("guid",
			mcp.Required(),
			mcp.Description("The folder GUID"),
		),
		mcp.WithBoolean("for_lineage",
			mcp.Description("Also return deleted folders (default: false)"),
		),
	)
	mcpServer.AddTool(getFolderTool, s.handleGetFolder)

	byPathTool := mcp.NewTool("get_folder_by_path",
		mcp.WithDescription("Get a folder by its path name, for example /finance/reports"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("The folder path name"),
		),
	)
	mcpServer.AddTool(byPathTool, s.handleGetFolderByPath)

	searchTool := mcp.NewTool("search_folders",
		mcp.WithDescription("Search folders by qualified name, display name or description"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to look for; * matches every folder"),
		),
		mcp.WithBoolean("starts_with",
			mcp.Description("Only match names that start with the query"),
		),
		mcp.WithBoolean("ends_with",
			mcp.Description("Only match names that end with the query"),
		),
		mcp.WithBoolean("ignore_case",
			mcp.Description("Case-insensitive match"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results to return (default: 20)"),
		),
	)
	mcpServer.AddTool(searchTool, s.handleSearchFolders)

	childrenTool := mcp.NewTool("list_child_folders",
		mcp.WithDescription("List the direct children of a folder"),
		mcp.WithString("guid",
			mcp.Required(),
			mcp.Description("The parent folder GUID"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results to return (default: 20)"),
		),
	)
	mcpServer.AddTool(childrenTool, s.handleListChildFolders)
}

func (s *Server) handleGetFolder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guid, err := request.RequireString("guid")
	if err != nil {
		return mcp.NewToolResultError("guid is required"), nil
	}

	f, err := s.folders.Get(ctx, guid, request.GetBool("for_lineage", false))
	if err != nil {
		return s.failure("get folder", err), nil
	}
	return jsonResult(v1.FolderToDTO(f))
}

func (s *Server) handleGetFolderByPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	f, err := s.folders.GetByPathName(ctx, path, false)
	if err != nil {
		return s.failure("get folder by path", err), nil
	}
	return jsonResult(v1.FolderToDTO(f))
}

func (s *Server) handleSearchFolders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	query := folder.SearchQuery{
		Text:       text,
		StartsWith: request.GetBool("starts_with", false),
		EndsWith:   request.GetBool("ends_with", false),
		IgnoreCase: request.GetBool("ignore_case", false),
	}
	page := service.Page{Limit: limit(request)}

	found, err := s.folders.FindBySearchString(ctx, query, service.StatusFilter{}, page)
	if err != nil {
		return s.failure("search folders", err), nil
	}
	return jsonResult(elements(found))
}

func (s *Server) handleListChildFolders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guid, err := request.RequireString("guid")
	if err != nil {
		return mcp.NewToolResultError("guid is required"), nil
	}

	parent, err := s.folders.Get(ctx, guid, false)
	if err != nil {
		return s.failure("list child folders", err), nil
	}

	children, err := s.folders.Find(ctx,
		folder.WithParentGUID(parent.GUID()),
		folder.WithStatusIn(folder.VisibleStatuses(false)),
		folder.WithOrderByPath(),
		repository.WithLimit(limit(request)),
	)
	if err != nil {
		return s.failure("list child folders", err), nil
	}
	return jsonResult(elements(children))
}

// failure turns err into a tool error. Lookup and validation failures are
// reported as-is; anything else is logged.
func (s *Server) failure(op string, err error) *mcp.CallToolResult {
	if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrValidation) {
		s.logger.Error(op+" failed", slog.Any("error", err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", op, err))
}

func limit(request mcp.CallToolRequest) int {
	n := request.GetInt("limit", defaultLimit)
	if n <= 0 {
		return defaultLimit
	}
	return min(n, maxLimit)
}

func elements(folders []folder.Folder) []dto.FolderElement {
	out := make([]dto.FolderElement, len(folders))
	for i, f := range folders {
		out[i] = v1.FolderToDTO(f)
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

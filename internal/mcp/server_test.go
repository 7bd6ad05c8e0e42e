package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/application/service"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

type fixture struct {
	srv     *Server
	finance string
	reports string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client, err := omrest.New(omrest.WithSQLite(":memory:"))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	finance, err := client.Folders.Create(ctx, "", folder.Properties{DisplayName: "finance", Description: "Money matters"})
	if err != nil {
		t.Fatalf("create finance: %v", err)
	}
	reports, err := client.Folders.Create(ctx, finance.GUID(), folder.Properties{DisplayName: "reports"})
	if err != nil {
		t.Fatalf("create reports: %v", err)
	}
	if _, err := client.Folders.Create(ctx, finance.GUID(), folder.Properties{DisplayName: "budgets"}); err != nil {
		t.Fatalf("create budgets: %v", err)
	}

	return fixture{
		srv:     NewServer(client.Folders, "omrest", "0.1.0-test", nil),
		finance: finance.GUID(),
		reports: reports.GUID(),
	}
}

// sendMessage marshals a JSON-RPC request, sends it through HandleMessage,
// and returns the JSONRPCResponse.
func sendMessage(t *testing.T, srv *Server, method string, id int, params map[string]any) mcp.JSONRPCResponse {
	t.Helper()

	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		msg["params"] = params
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	result := srv.MCPServer().HandleMessage(context.Background(), raw)

	resp, ok := result.(mcp.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T: %+v", result, result)
	}
	return resp
}

// resultJSON re-marshals the Result field through JSON into dst.
func resultJSON(t *testing.T, resp mcp.JSONRPCResponse, dst any) {
	t.Helper()
	b, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		t.Fatalf("unmarshal result into %T: %v", dst, err)
	}
}

func initializeParams() map[string]any {
	return map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "test-client",
			"version": "0.0.1",
		},
	}
}

// callTool initializes the session, calls the named tool and returns the
// result text.
func callTool(t *testing.T, srv *Server, name string, args map[string]any) (string, bool) {
	t.Helper()
	sendMessage(t, srv, "initialize", 1, initializeParams())

	resp := sendMessage(t, srv, "tools/call", 2, map[string]any{
		"name":      name,
		"arguments": args,
	})

	var result mcp.CallToolResult
	resultJSON(t, resp, &result)
	return textFromContent(t, result), result.IsError
}

func textFromContent(t *testing.T, result mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	b, err := json.Marshal(result.Content[0])
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	var tc struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &tc); err != nil {
		t.Fatalf("unmarshal text content: %v", err)
	}
	return tc.Text
}

func TestServer_Initialize(t *testing.T) {
	f := newFixture(t)
	resp := sendMessage(t, f.srv, "initialize", 1, initializeParams())

	var result mcp.InitializeResult
	resultJSON(t, resp, &result)

	if result.ServerInfo.Name != "omrest" {
		t.Errorf("expected server name omrest, got %s", result.ServerInfo.Name)
	}
	if result.ServerInfo.Version != "0.1.0-test" {
		t.Errorf("expected version 0.1.0-test, got %s", result.ServerInfo.Version)
	}
	if result.Capabilities.Tools == nil {
		t.Error("expected tools capability to be present")
	}
}

func TestServer_ListTools(t *testing.T) {
	f := newFixture(t)
	sendMessage(t, f.srv, "initialize", 1, initializeParams())

	resp := sendMessage(t, f.srv, "tools/list", 2, nil)

	var result mcp.ListToolsResult
	resultJSON(t, resp, &result)

	tools := map[string]bool{}
	for _, tool := range result.Tools {
		tools[tool.Name] = true
	}
	for _, name := range []string{"get_folder", "get_folder_by_path", "search_folders", "list_child_folders"} {
		if !tools[name] {
			t.Errorf("expected tool %s to be registered", name)
		}
	}
	if len(result.Tools) != 4 {
		t.Errorf("expected 4 tools, got %d", len(result.Tools))
	}
}

func TestServer_GetFolder(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "get_folder", map[string]any{"guid": f.reports})
	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}

	var element dto.FolderElement
	if err := json.Unmarshal([]byte(text), &element); err != nil {
		t.Fatalf("unmarshal element: %v", err)
	}
	if element.Properties.PathName != "/finance/reports" {
		t.Errorf("expected path /finance/reports, got %s", element.Properties.PathName)
	}
	if element.ParentGUID != f.finance {
		t.Errorf("expected parent %s, got %s", f.finance, element.ParentGUID)
	}
}

func TestServer_GetFolder_Unknown(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "get_folder", map[string]any{"guid": "8f6c9e5e-0d4e-4a35-9a53-3c1b7a2c9e11"})
	if !isError {
		t.Fatal("expected error response")
	}
	if !strings.Contains(text, "not found") {
		t.Errorf("expected not found error, got: %s", text)
	}
}

func TestServer_GetFolder_MissingGUID(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "get_folder", map[string]any{})
	if !isError {
		t.Fatal("expected error response")
	}
	if !strings.Contains(text, "guid is required") {
		t.Errorf("expected 'guid is required', got: %s", text)
	}
}

func TestServer_GetFolderByPath(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "get_folder_by_path", map[string]any{"path": "finance/reports/"})
	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}

	var element dto.FolderElement
	if err := json.Unmarshal([]byte(text), &element); err != nil {
		t.Fatalf("unmarshal element: %v", err)
	}
	if element.ElementHeader.GUID != f.reports {
		t.Errorf("expected %s, got %s", f.reports, element.ElementHeader.GUID)
	}
}

func TestServer_SearchFolders(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "search_folders", map[string]any{"query": "money", "ignore_case": true})
	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}

	var found []dto.FolderElement
	if err := json.Unmarshal([]byte(text), &found); err != nil {
		t.Fatalf("unmarshal elements: %v", err)
	}
	if len(found) != 1 || found[0].Properties.DisplayName != "finance" {
		t.Errorf("expected only finance, got %+v", found)
	}
}

func TestServer_SearchFolders_Limit(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "search_folders", map[string]any{"query": "*", "limit": 2})
	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}

	var found []dto.FolderElement
	if err := json.Unmarshal([]byte(text), &found); err != nil {
		t.Fatalf("unmarshal elements: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 results, got %d", len(found))
	}
}

func TestServer_ListChildFolders(t *testing.T) {
	f := newFixture(t)

	text, isError := callTool(t, f.srv, "list_child_folders", map[string]any{"guid": f.finance})
	if isError {
		t.Fatalf("expected success, got error: %s", text)
	}

	var children []dto.FolderElement
	if err := json.Unmarshal([]byte(text), &children); err != nil {
		t.Fatalf("unmarshal elements: %v", err)
	}
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.Properties.DisplayName
	}
	if strings.Join(names, ",") != "budgets,reports" {
		t.Errorf("expected budgets,reports, got %v", names)
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		args map[string]any
		want int
	}{
		{map[string]any{}, defaultLimit},
		{map[string]any{"limit": 0}, defaultLimit},
		{map[string]any{"limit": 5}, 5},
		{map[string]any{"limit": 5000}, maxLimit},
	}

	for _, tt := range tests {
		var req mcp.CallToolRequest
		req.Params.Arguments = tt.args
		if got := limit(req); got != tt.want {
			t.Errorf("limit(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

var _ FolderReader = (*service.Folder)(nil)

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bizbook/internal/service"
)

// Server is the MCP server for the bizbook directory.
// It exposes tools so AI agents can drive the same service operations
// as the dialogs, with identical validation and cache semantics.
type Server struct {
	mcp       *server.MCPServer
	emitter   service.EventEmitter
	directory *service.DirectoryService
}

// Deps holds the dependencies passed from the app layer.
type Deps struct {
	Emitter   service.EventEmitter
	Directory *service.DirectoryService
}

// New creates and configures an MCP server with all directory tools.
func New(ctx context.Context, deps Deps) *Server {
	s := &Server{
		emitter:   deps.Emitter,
		directory: deps.Directory,
	}

	s.mcp = server.NewMCPServer(
		"bizbook-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerDirectoryTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// intArg reads an integer tool argument (JSON numbers arrive as float64).
func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	return int(v), nil
}

func boolPtr(b bool) *bool { return &b }

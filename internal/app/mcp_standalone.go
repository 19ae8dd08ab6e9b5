package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bizbook/internal/api"
	"bizbook/internal/config"
	mcpserver "bizbook/internal/mcp"
	"bizbook/internal/service"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout
// with no GUI, driving the remote directory service directly.
func ServeMCP() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, _ := config.Load("")
	cfg, err := config.Load(config.EnvPath(cfg.DataDir))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	emitter := noopEmitter{}
	client := api.New(cfg.APIBaseURL)
	directory := service.NewDirectoryService(client, emitter)
	directory.SetPageSize(cfg.PageSize)

	mcpSrv := mcpserver.New(ctx, mcpserver.Deps{
		Emitter:   emitter,
		Directory: directory,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

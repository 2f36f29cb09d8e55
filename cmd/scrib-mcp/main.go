package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"scrib"
	mcpadapter "scrib/pkg/adapters/mcp"
)

func main() {
	vaultFlag := flag.String("vault", ".", "path to the vault")
	readOnly := flag.Bool("read-only", false, "expose read tools only")
	snapshot := flag.String("snapshot", "", "serve a published snapshot (URL or file) instead of a local vault")
	flag.Parse()

	opts := []scrib.Option{scrib.WithAutoInit(true), scrib.WithReadOnly(*readOnly)}
	if *snapshot != "" {
		opts = append(opts, scrib.WithSnapshot(*snapshot))
	}

	svc, err := scrib.New(*vaultFlag, opts...)
	if err != nil {
		log.Fatalf("scrib-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"scrib-mcp",
		scrib.Version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc)

	// A published snapshot is inherently read-only.
	if !*readOnly && *snapshot == "" {
		mcpadapter.RegisterWriteTools(mcpServer, svc)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("scrib-mcp: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "phonecentral/internal/adapters/mcp"
	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/config"
	"phonecentral/internal/domain"
)

func main() {
	dataFlag := flag.String("data", config.DataDir(), "path to the data directory")
	flag.Parse()

	loader := textfile.NewLoader(
		config.PhonesPath(*dataFlag),
		config.CallsPath(*dataFlag),
		config.BlockedPath(*dataFlag),
	)

	snap, _, err := loader.Load()
	if err != nil {
		log.Fatalf("phonecentral-mcp: %v", err)
	}
	central := domain.BuildCentral(snap.Contacts, snap.Calls, snap.Blocked)

	mcpServer := server.NewMCPServer(
		"phonecentral-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, central)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("phonecentral-mcp: %v", err)
	}
}

// ABOUTME: MCP server setup for Whoop data tools.
// ABOUTME: Wraps the MCP server with a Whoop session client.
package mcp

import (
	"context"

	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WhoopAPI is the slice of the session client the tools need. Tests provide
// a fake; production passes *whoop.Client.
type WhoopAPI interface {
	GetHome(ctx context.Context, date string) (*whoop.HomeResponse, error)
	GetSleepDeepDive(ctx context.Context, date string) (*whoop.DeepDive, error)
	GetRecoveryDeepDive(ctx context.Context, date string) (*whoop.DeepDive, error)
	GetStrainDeepDive(ctx context.Context, date string) (*whoop.DeepDive, error)
	GetHealthspan(ctx context.Context, date string) (*whoop.HealthspanResponse, error)
}

// Server wraps the MCP server with Whoop API access.
type Server struct {
	mcpServer *mcp.Server
	client    WhoopAPI
}

// NewServer creates an MCP server with all five Whoop tools registered.
func NewServer(client WhoopAPI) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "whoop-mcp-server",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
	}

	s.registerTools()

	return s
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// MCP exposes the underlying server for HTTP transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}

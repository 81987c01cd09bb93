// ABOUTME: CLI command for serving MCP over stdio.
// ABOUTME: The transport Claude Desktop launches as a subprocess.
package main

import (
	"github.com/harperreed/whoop-mcp/internal/mcp"
	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/spf13/cobra"
)

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Long: `Start the MCP server on the stdio transport for AI assistant
integration.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "whoop": {
        "command": "whoop-mcp",
        "args": ["stdio"],
        "env": {
          "WHOOP_EMAIL": "you@example.com",
          "WHOOP_PASSWORD": "..."
        }
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateCredentials(); err != nil {
			return err
		}
		return mcp.NewServer(newWhoopClient()).Run(cmd.Context())
	},
}

// newWhoopClient builds a session client from the loaded configuration.
func newWhoopClient() *whoop.Client {
	opts := []whoop.Option{
		whoop.WithClientID(cfg.ClientID),
		whoop.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, whoop.WithBaseURL(cfg.BaseURL))
	}
	return whoop.NewClient(cfg.Email, cfg.Password, opts...)
}

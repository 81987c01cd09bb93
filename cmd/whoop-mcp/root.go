// ABOUTME: Root Cobra command for the whoop-mcp server.
// ABOUTME: Loads .env and environment configuration for all subcommands.
package main

import (
	"os"

	"github.com/harperreed/whoop-mcp/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "whoop-mcp",
	Short: "MCP server for Whoop fitness data",
	Long: `whoop-mcp exposes Whoop fitness data (sleep, recovery, strain, and
biological age) as Model Context Protocol tools.

CONFIGURATION (environment variables, .env supported):

  WHOOP_EMAIL                 Whoop account email
  WHOOP_PASSWORD              Whoop account password
  WHOOP_CLIENT_ID             Cognito client id sent on login (optional)
  PORT                        HTTP listen port (default 3000)
  MCP_PATH                    HTTP path for the MCP endpoint (default /mcp)
  MCP_AUTH_TOKEN              Inbound bearer token gate (optional)
  ALLOW_REQUEST_CREDENTIALS   Accept email/password query parameters (default false)

AVAILABLE TOOLS:

  whoop_get_overview    Daily overview with live metrics and score gauges
  whoop_get_sleep       Sleep performance, contributors, and insight
  whoop_get_recovery    Recovery score with HRV, RHR and contributors
  whoop_get_strain      Strain score with contributors and activities
  whoop_get_healthspan  WHOOP Age (biological age) and pace of aging`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		cfg = config.Load()
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(fetchCmd)
}

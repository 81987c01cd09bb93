// ABOUTME: CLI command for serving MCP over streamable HTTP.
// ABOUTME: Validates configuration up front and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/whoop-mcp/internal/httpserver"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over streamable HTTP",
	Long: `Start the MCP server on an HTTP listener.

The server mounts a single MCP endpoint (default /mcp) plus a /healthz
heartbeat. Credentials come from WHOOP_EMAIL/WHOOP_PASSWORD, or — with
ALLOW_REQUEST_CREDENTIALS=true — from email/password query parameters on
each request, in which case every request gets its own isolated session.

Set MCP_AUTH_TOKEN to require "Authorization: Bearer <token>" on inbound
requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:        ":" + cfg.Port,
			Handler:     httpserver.New(cfg, logger).Handler(),
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 120 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info().
				Str("addr", srv.Addr).
				Str("path", cfg.MCPPath).
				Bool("auth_gate", cfg.AuthToken != "").
				Bool("request_credentials", cfg.AllowRequestCredentials).
				Msg("whoop-mcp server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

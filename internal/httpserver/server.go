// ABOUTME: HTTP transport for the MCP server: routing, auth gate, credential resolution.
// ABOUTME: Mounts the streamable HTTP handler on a chi router.
package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/harperreed/whoop-mcp/internal/config"
	whoopmcp "github.com/harperreed/whoop-mcp/internal/mcp"
	"github.com/harperreed/whoop-mcp/internal/whoop"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server serves the MCP endpoint over streamable HTTP.
type Server struct {
	cfg    *config.Config
	logger zerolog.Logger

	// shared serves every request in the fixed-credential deployment; nil
	// when only per-request credentials are configured.
	shared  *whoopmcp.Server
	handler http.Handler
}

// New builds the HTTP server. When fixed credentials are configured a single
// session client is shared across requests; the per-request variant builds
// an isolated client from query parameters instead.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Email != "" && cfg.Password != "" {
		s.shared = whoopmcp.NewServer(s.newClient(cfg.Email, cfg.Password))
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) newClient(email, password string) *whoop.Client {
	opts := []whoop.Option{
		whoop.WithClientID(s.cfg.ClientID),
		whoop.WithLogger(s.logger),
	}
	if s.cfg.BaseURL != "" {
		opts = append(opts, whoop.WithBaseURL(s.cfg.BaseURL))
	}
	return whoop.NewClient(email, password, opts...)
}

func (s *Server) routes() http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(
		s.serverForRequest,
		&mcp.StreamableHTTPOptions{JSONResponse: true},
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Heartbeat("/healthz"))

	r.Group(func(r chi.Router) {
		r.Use(bearerGate(s.cfg.AuthToken))
		r.Use(s.requireCredentials)
		r.Handle(s.cfg.MCPPath, mcpHandler)
	})

	return r
}

// serverForRequest picks the MCP server for one inbound request: a fresh,
// fully isolated one when query credentials are supplied, otherwise the
// shared instance. requireCredentials has already rejected requests that
// resolve to nothing.
func (s *Server) serverForRequest(r *http.Request) *mcp.Server {
	if s.cfg.AllowRequestCredentials {
		email := r.URL.Query().Get("email")
		password := r.URL.Query().Get("password")
		if email != "" && password != "" {
			return whoopmcp.NewServer(s.newClient(email, password)).MCP()
		}
	}
	if s.shared == nil {
		return nil
	}
	return s.shared.MCP()
}

// requireCredentials rejects a request whose credential resolution comes up
// empty, before it reaches tool dispatch.
func (s *Server) requireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.resolveCredentials(r); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) resolveCredentials(r *http.Request) error {
	if s.cfg.AllowRequestCredentials {
		email := r.URL.Query().Get("email")
		password := r.URL.Query().Get("password")
		if email != "" && password != "" {
			return nil
		}
	}
	if s.shared != nil {
		return nil
	}
	if s.cfg.AllowRequestCredentials {
		return fmt.Errorf("missing credentials: supply email and password query parameters")
	}
	return fmt.Errorf("missing credentials: WHOOP_EMAIL and WHOOP_PASSWORD are not configured")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}

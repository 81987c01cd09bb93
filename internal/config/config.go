// ABOUTME: Application configuration from environment variables.
// ABOUTME: Credentials are validated up front so misconfiguration fails fast.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all server configuration.
type Config struct {
	// Email and Password are the Whoop account credentials.
	Email    string
	Password string

	// ClientID is the Cognito client id sent on login.
	ClientID string

	// BaseURL overrides the upstream Whoop host (tests, proxies).
	BaseURL string

	// Port and MCPPath shape the HTTP listener.
	Port    string
	MCPPath string

	// AuthToken, when set, gates inbound requests behind a bearer token.
	AuthToken string

	// AllowRequestCredentials accepts email/password query parameters and
	// builds a per-request client instead of requiring env credentials.
	AllowRequestCredentials bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Email:                   getEnv("WHOOP_EMAIL", ""),
		Password:                getEnv("WHOOP_PASSWORD", ""),
		ClientID:                getEnv("WHOOP_CLIENT_ID", ""),
		BaseURL:                 getEnv("WHOOP_BASE_URL", ""),
		Port:                    getEnv("PORT", "3000"),
		MCPPath:                 getEnv("MCP_PATH", "/mcp"),
		AuthToken:               getEnv("MCP_AUTH_TOKEN", ""),
		AllowRequestCredentials: getEnvBool("ALLOW_REQUEST_CREDENTIALS", false),
	}
}

// Validate checks that the configuration can serve requests. Fixed
// credentials may be absent only when per-request credentials are enabled.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.MCPPath == "" || !strings.HasPrefix(c.MCPPath, "/") {
		return fmt.Errorf("MCP_PATH must start with /")
	}
	if c.AllowRequestCredentials {
		return nil
	}
	return c.ValidateCredentials()
}

// ValidateCredentials checks that fixed account credentials are present.
func (c *Config) ValidateCredentials() error {
	if c.Email == "" || c.Password == "" {
		return fmt.Errorf("WHOOP_EMAIL and WHOOP_PASSWORD are required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

// ABOUTME: Session client for the unofficial Whoop mobile API.
// ABOUTME: Owns the single live token and the retry-once-on-401 request policy.
package whoop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Whoop API host.
	DefaultBaseURL = "https://api.prod.whoop.com"

	// refreshMargin is the safety window: a token expiring sooner than this
	// is renewed before it is used.
	refreshMargin = 5 * time.Minute

	loginPath      = "/auth-service/v3/whoop"
	homePath       = "/home-service/v1/home"
	deepDivePath   = "/home-service/v1/deep-dive/"
	healthspanPath = "/healthspan-service/v1/healthspan/bff"

	devicePlatform  = "iOS"
	requestLocale   = "en_US"
	requestCurrency = "USD"
)

// tokenState classifies the held token. Refreshing is implicit: it is the
// time spent inside login while holding the client lock.
type tokenState int

const (
	stateNoToken tokenState = iota
	stateValid
	stateExpiring
)

// Client talks to the Whoop mobile API on behalf of one account. Credentials
// are fixed at construction; the token is replaced wholesale on every login.
// Safe for concurrent use: token state is guarded by a mutex and login keeps
// last-write-wins semantics.
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	password   string
	clientID   string
	timezone   string
	logger     zerolog.Logger
	now        func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream host (tests point this at a fake).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithClientID sets the Cognito client id sent on login.
func WithClientID(id string) Option {
	return func(c *Client) { c.clientID = id }
}

// WithTimeZone overrides the IANA timezone sent on every request.
func WithTimeZone(tz string) Option {
	return func(c *Client) { c.timezone = tz }
}

// WithLogger attaches a structured logger. Credentials are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for one account. No network activity happens
// until the first request or an explicit Login.
func NewClient(email, password string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		email:      email,
		password:   password,
		timezone:   localTimeZone(),
		logger:     zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges the account credentials for a fresh token, replacing any
// token currently held. A failed login is reported immediately, no retries.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginLocked(ctx)
}

func (c *Client) loginLocked(ctx context.Context) error {
	if c.email == "" || c.password == "" {
		return &AuthError{Message: "email and password are required"}
	}

	payload, err := json.Marshal(loginRequest{
		AuthParameters: loginParameters{Username: c.email, Password: c.password},
		ClientID:       c.clientID,
		AuthFlow:       "USER_PASSWORD_AUTH",
	})
	if err != nil {
		return fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	req.Header.Set("X-Amz-Target", "AWSCognitoIdentityProviderService.InitiateAuth")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AuthError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AuthError{StatusCode: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &AuthError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var login LoginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return &AuthError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode login response: %v", err)}
	}
	if login.AuthenticationResult == nil || login.AuthenticationResult.AccessToken == "" {
		return &AuthError{StatusCode: resp.StatusCode, Message: "no authentication result received"}
	}

	c.token = login.AuthenticationResult.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(login.AuthenticationResult.ExpiresIn) * time.Second)

	c.logger.Info().
		Time("token_expiry", c.tokenExpiry).
		Msg("whoop session authenticated")
	return nil
}

// state classifies the held token. Callers must hold c.mu.
func (c *Client) state(now time.Time) tokenState {
	switch {
	case c.token == "":
		return stateNoToken
	case c.tokenExpiry.Sub(now) < refreshMargin:
		return stateExpiring
	default:
		return stateValid
	}
}

// ensureValidToken is the sole gate every authenticated request passes
// through: it logs in when no token is held or the held one is expiring,
// and returns the token to use.
func (c *Client) ensureValidToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state(c.now()) {
	case stateNoToken, stateExpiring:
		if err := c.loginLocked(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// get issues an authenticated GET for one domain path and date. On a 401 or
// a transport failure it forces exactly one re-login and retries once; any
// further failure, or any other non-2xx status, surfaces as an error.
func (c *Client) get(ctx context.Context, path, date string) ([]byte, error) {
	day, err := resolveDate(date, c.now())
	if err != nil {
		return nil, err
	}
	url := c.baseURL + path + "?date=" + day

	retried := false
	for {
		token, err := c.ensureValidToken(ctx)
		if err != nil {
			return nil, err
		}

		body, status, reqErr := c.doGet(ctx, url, token)
		switch {
		case reqErr != nil:
			if retried {
				return nil, fmt.Errorf("whoop request failed: %w", reqErr)
			}
		case status == http.StatusUnauthorized:
			if retried {
				return nil, &APIError{StatusCode: status, Reason: http.StatusText(status)}
			}
		case status < 200 || status > 299:
			return nil, &APIError{StatusCode: status, Reason: http.StatusText(status)}
		default:
			return body, nil
		}

		// First failure that qualifies for recovery: force a fresh login and
		// go around exactly once.
		retried = true
		c.logger.Debug().Str("path", path).Msg("retrying after forced re-login")
		if err := c.Login(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *Client) doGet(ctx context.Context, url, token string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", devicePlatform)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-WHOOP-Device-Platform", devicePlatform)
	req.Header.Set("X-WHOOP-Time-Zone", c.timezone)
	req.Header.Set("Locale", requestLocale)
	req.Header.Set("Currency", requestCurrency)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// GetHome fetches the home overview for a date (YYYY-MM-DD, default today).
func (c *Client) GetHome(ctx context.Context, date string) (*HomeResponse, error) {
	body, err := c.get(ctx, homePath, date)
	if err != nil {
		return nil, err
	}
	var home HomeResponse
	if err := json.Unmarshal(body, &home); err != nil {
		return nil, fmt.Errorf("decode home payload: %w", err)
	}
	return &home, nil
}

// GetSleepDeepDive fetches the sleep breakdown for a date.
func (c *Client) GetSleepDeepDive(ctx context.Context, date string) (*DeepDive, error) {
	return c.getDeepDive(ctx, "sleep", date)
}

// GetRecoveryDeepDive fetches the recovery breakdown for a date.
func (c *Client) GetRecoveryDeepDive(ctx context.Context, date string) (*DeepDive, error) {
	return c.getDeepDive(ctx, "recovery", date)
}

// GetStrainDeepDive fetches the strain breakdown for a date.
func (c *Client) GetStrainDeepDive(ctx context.Context, date string) (*DeepDive, error) {
	return c.getDeepDive(ctx, "strain", date)
}

func (c *Client) getDeepDive(ctx context.Context, domain, date string) (*DeepDive, error) {
	body, err := c.get(ctx, deepDivePath+domain, date)
	if err != nil {
		return nil, err
	}
	var dive DeepDive
	if err := json.Unmarshal(body, &dive); err != nil {
		return nil, fmt.Errorf("decode %s deep dive: %w", domain, err)
	}
	return &dive, nil
}

// GetHealthspan fetches the biological-age payload for a date.
func (c *Client) GetHealthspan(ctx context.Context, date string) (*HealthspanResponse, error) {
	body, err := c.get(ctx, healthspanPath, date)
	if err != nil {
		return nil, err
	}
	var hs HealthspanResponse
	if err := json.Unmarshal(body, &hs); err != nil {
		return nil, fmt.Errorf("decode healthspan payload: %w", err)
	}
	return &hs, nil
}

// resolveDate validates an optional YYYY-MM-DD date, defaulting to today.
func resolveDate(date string, now time.Time) (string, error) {
	if date == "" {
		return now.Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return date, nil
}

// localTimeZone resolves the IANA zone name sent upstream. time.Local's
// String() is the useless literal "Local" unless TZ is set, so fall back
// through TZ and end at UTC.
func localTimeZone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Local.String(); name != "Local" {
		return name
	}
	return "UTC"
}

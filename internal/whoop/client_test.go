// ABOUTME: Tests for the session client: login, token refresh, retry policy.
// ABOUTME: A fake upstream counts calls so retry bounds are asserted exactly.
package whoop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream is a scriptable fake of the Whoop API.
type upstream struct {
	mu             sync.Mutex
	loginCalls     int
	loginStatus    int // 0 means 200
	loginBody      string
	expiresIn      int // 0 means 3600
	domainCalls    int
	domainStatuses []int // consumed one per call; empty means 200
	domainBody     string
	lastHeader     http.Header
	lastQuery      url.Values
	lastPath       string
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth-service/v3/whoop", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.loginCalls++
		n, status, body, exp := u.loginCalls, u.loginStatus, u.loginBody, u.expiresIn
		u.mu.Unlock()
		if status == 0 {
			status = http.StatusOK
		}
		if exp == 0 {
			exp = 3600
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		if body == "" {
			body = fmt.Sprintf(`{"AuthenticationResult":{"AccessToken":"tok-%d","ExpiresIn":%d,"TokenType":"Bearer"}}`, n, exp)
		}
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.domainCalls++
		u.lastHeader = r.Header.Clone()
		u.lastQuery = r.URL.Query()
		u.lastPath = r.URL.Path
		status := http.StatusOK
		if len(u.domainStatuses) > 0 {
			status = u.domainStatuses[0]
			u.domainStatuses = u.domainStatuses[1:]
		}
		body := u.domainBody
		u.mu.Unlock()
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		if body == "" {
			body = "{}"
		}
		_, _ = w.Write([]byte(body))
	})
	return mux
}

func (u *upstream) counts() (logins, domains int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loginCalls, u.domainCalls
}

func newTestClient(t *testing.T, u *upstream, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(u.handler())
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL), WithTimeZone("America/Chicago")}, opts...)
	return NewClient("user@example.com", "hunter2", opts...)
}

func TestLoginStoresTokenAndExpiry(t *testing.T) {
	u := &upstream{expiresIn: 3600}
	c := newTestClient(t, u)
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NoError(t, c.Login(context.Background()))

	assert.Equal(t, "tok-1", c.token)
	assert.Equal(t, base.Add(time.Hour), c.tokenExpiry)
}

func TestLoginRejectedByUpstream(t *testing.T) {
	u := &upstream{loginStatus: http.StatusForbidden}
	c := newTestClient(t, u)

	err := c.Login(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusForbidden, authErr.StatusCode)
	assert.Empty(t, c.token)
}

func TestLoginWithoutAuthenticationResult(t *testing.T) {
	u := &upstream{loginBody: `{"ChallengeName":null}`}
	c := newTestClient(t, u)

	err := c.Login(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "no authentication result")
}

func TestMissingCredentialsMakeNoNetworkCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected network call with missing credentials")
	}))
	t.Cleanup(srv.Close)
	c := NewClient("", "", WithBaseURL(srv.URL))

	var authErr *AuthError
	require.ErrorAs(t, c.Login(context.Background()), &authErr)
	_, err := c.GetHome(context.Background(), "")
	require.ErrorAs(t, err, &authErr)
}

func TestFreshTokenIsNotRefreshed(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)

	require.NoError(t, c.Login(context.Background()))
	_, err := c.GetHome(context.Background(), "2026-08-27")
	require.NoError(t, err)

	logins, domains := u.counts()
	assert.Equal(t, 1, logins, "fresh token must not trigger a second login")
	assert.Equal(t, 1, domains)
}

func TestExpiringTokenTriggersExactlyOneLogin(t *testing.T) {
	u := &upstream{expiresIn: 3600}
	c := newTestClient(t, u)
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NoError(t, c.Login(context.Background()))

	// 4 minutes of lifetime left: under the 5-minute margin.
	c.now = func() time.Time { return base.Add(56 * time.Minute) }
	_, err := c.GetHome(context.Background(), "2026-08-27")
	require.NoError(t, err)

	logins, _ := u.counts()
	assert.Equal(t, 2, logins)
	assert.Equal(t, "tok-2", c.token)
}

func TestUnauthorizedRetriesExactlyOnce(t *testing.T) {
	u := &upstream{domainStatuses: []int{http.StatusUnauthorized}}
	c := newTestClient(t, u)

	home, err := c.GetHome(context.Background(), "2026-08-27")
	require.NoError(t, err, "success after one retry must look like a first-attempt success")
	assert.NotNil(t, home)

	logins, domains := u.counts()
	assert.Equal(t, 2, domains)
	assert.Equal(t, 2, logins, "one login for the token, one forced by the 401")
}

func TestSecondUnauthorizedFailsWithoutThirdAttempt(t *testing.T) {
	u := &upstream{domainStatuses: []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusUnauthorized}}
	c := newTestClient(t, u)

	_, err := c.GetHome(context.Background(), "2026-08-27")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	_, domains := u.counts()
	assert.Equal(t, 2, domains, "a second 401 must not trigger a third request")
}

func TestOtherStatusesDoNotRetry(t *testing.T) {
	u := &upstream{domainStatuses: []int{http.StatusInternalServerError}}
	c := newTestClient(t, u)

	_, err := c.GetHome(context.Background(), "2026-08-27")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	_, domains := u.counts()
	assert.Equal(t, 1, domains)
}

// flakyTransport fails the first n GETs, then delegates.
type flakyTransport struct {
	inner    http.RoundTripper
	mu       sync.Mutex
	failures int
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodGet {
		f.mu.Lock()
		fail := f.failures > 0
		if fail {
			f.failures--
		}
		f.mu.Unlock()
		if fail {
			return nil, errors.New("connection reset")
		}
	}
	return f.inner.RoundTrip(req)
}

func TestTransportErrorRetriesOnce(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u, WithHTTPClient(&http.Client{
		Transport: &flakyTransport{inner: http.DefaultTransport, failures: 1},
	}))

	_, err := c.GetHome(context.Background(), "2026-08-27")
	require.NoError(t, err)

	logins, domains := u.counts()
	assert.Equal(t, 2, logins)
	assert.Equal(t, 1, domains, "only the successful retry reaches the upstream")
}

func TestRepeatedTransportErrorSurfaces(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u, WithHTTPClient(&http.Client{
		Transport: &flakyTransport{inner: http.DefaultTransport, failures: 2},
	}))

	_, err := c.GetHome(context.Background(), "2026-08-27")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRequestHeaderSet(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)

	_, err := c.GetHome(context.Background(), "2026-08-27")
	require.NoError(t, err)

	h := u.lastHeader
	assert.Equal(t, "Bearer tok-1", h.Get("Authorization"))
	assert.Equal(t, "iOS", h.Get("User-Agent"))
	assert.Equal(t, "iOS", h.Get("X-WHOOP-Device-Platform"))
	assert.Equal(t, "America/Chicago", h.Get("X-WHOOP-Time-Zone"))
	assert.Equal(t, "en_US", h.Get("Locale"))
	assert.Equal(t, "USD", h.Get("Currency"))
}

func TestDateDefaultsToToday(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)
	c.now = func() time.Time { return time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC) }

	_, err := c.GetHome(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", u.lastQuery.Get("date"))
}

func TestInvalidDateIsRejectedBeforeAnyRequest(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)

	_, err := c.GetHome(context.Background(), "08/27/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	logins, domains := u.counts()
	assert.Zero(t, logins)
	assert.Zero(t, domains)
}

func TestDomainPaths(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
		path string
	}{
		{"sleep", func(c *Client) error { _, err := c.GetSleepDeepDive(context.Background(), "2026-08-27"); return err }, "/home-service/v1/deep-dive/sleep"},
		{"recovery", func(c *Client) error { _, err := c.GetRecoveryDeepDive(context.Background(), "2026-08-27"); return err }, "/home-service/v1/deep-dive/recovery"},
		{"strain", func(c *Client) error { _, err := c.GetStrainDeepDive(context.Background(), "2026-08-27"); return err }, "/home-service/v1/deep-dive/strain"},
		{"healthspan", func(c *Client) error { _, err := c.GetHealthspan(context.Background(), "2026-08-27"); return err }, "/healthspan-service/v1/healthspan/bff"},
		{"home", func(c *Client) error { _, err := c.GetHome(context.Background(), "2026-08-27"); return err }, "/home-service/v1/home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &upstream{}
			c := newTestClient(t, u)
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.path, u.lastPath)
		})
	}
}

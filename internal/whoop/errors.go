// ABOUTME: Typed errors for the Whoop session client.
// ABOUTME: Callers branch on error type and status code, never on message text.
package whoop

import "fmt"

// AuthError reports a rejected login: the identity endpoint returned a
// non-success status or a response without an authentication result.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("whoop login failed: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("whoop login failed: %s", e.Message)
}

// APIError reports a non-2xx response from a domain endpoint after the
// single permitted re-login retry has been exhausted.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whoop api error: %d %s", e.StatusCode, e.Reason)
}

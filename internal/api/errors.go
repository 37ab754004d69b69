package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors forming the uniform error surface for all higher
// layers. The messages are what the presentation layer shows, so they
// are written for humans rather than for logs.
var (
	// ErrInvalidIdentifier is returned when free-text input cannot be
	// normalized into a GitHub username.
	ErrInvalidIdentifier = errors.New("enter a valid GitHub username or profile URL")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("user not found on GitHub")

	// ErrRateLimited maps HTTP 403 (GitHub reports quota exhaustion as 403).
	ErrRateLimited = errors.New("GitHub API rate limit exceeded, try again later")

	// ErrRemoteUnavailable maps HTTP 5xx.
	ErrRemoteUnavailable = errors.New("GitHub is experiencing issues, try again")

	// ErrNetworkUnreachable maps transport-level failures.
	ErrNetworkUnreachable = errors.New("network connection lost, check your internet")
)

// translateStatus converts a non-2xx response into the domain error
// taxonomy. Statuses outside the taxonomy pass the response body
// through so the underlying message is not lost.
func translateStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusForbidden:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return ErrRemoteUnavailable
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(body))
	}
}

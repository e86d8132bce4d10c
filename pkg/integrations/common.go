package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when access to a resource is denied (HTTP 403).
	ErrForbidden = errors.New("access forbidden")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// unexpected status codes, undecodable bodies).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A zero or negative timeout uses the 10 second default.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = httpTimeout
	}
	return &http.Client{Timeout: timeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

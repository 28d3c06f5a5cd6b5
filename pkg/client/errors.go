package client

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned when SWAPI answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("SWAPI %s error (status %d) for %s: %s",
			classifyStatus(e.StatusCode), e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("SWAPI %s error (status %d) for %s",
		classifyStatus(e.StatusCode), e.StatusCode, e.URL)
}

// TransportError is returned when a request never produced a usable
// response: timeouts, DNS failures, refused connections, unreadable bodies.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("SWAPI %s error for %s: %v", ErrorClassNetwork, e.URL, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the upstream status carried by err, or 0 when err is
// not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

package client

import "fmt"

// TransportError marks a connectivity-level failure (connection refused,
// timeout, DNS). It is the only failure the caching layer recovers from.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed error response from the server. It propagates to
// callers unchanged; it never triggers cache fallback.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

package backend

import (
	"fmt"
)

// ConnectionError means the backend could not be reached at all
// (refused connection, timeout, DNS failure, broken response stream).
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error [%s]: %s", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError means the backend answered, but not with HTTP 200,
// or with a 200 that does not carry JSON.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%s]: %d - %s", e.Endpoint, e.StatusCode, e.Body)
}

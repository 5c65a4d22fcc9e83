package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrBadResponse = errors.New("unexpected server response")
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap reports a 503 as ErrUnavailable so callers can retry it.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusServiceUnavailable {
		return ErrUnavailable
	}
	return nil
}

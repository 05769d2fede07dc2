package api

import "fmt"

// AuthenticationError is a server rejection of sign-in or sign-up
// (non-2xx status). Message carries the server-provided explanation when
// the body had one, otherwise a status-text fallback.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NetworkError is a transport-level failure (DNS, connection refused,
// timeout) before any HTTP status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

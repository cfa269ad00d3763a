package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrStatus matches every *StatusError.
	ErrStatus = errors.New("http_client: unexpected response status")

	// ErrNetwork matches every *NetworkError.
	ErrNetwork = errors.New("http_client: network failure")
)

// StatusError is returned when the gateway answers outside the 2xx range.
// Body holds the response as received.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, string(e.Body))
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// NetworkError wraps connection, timeout and cancellation failures.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

package api

import (
	"fmt"
	"net/http"
)

// StatusError indicates the server answered with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("server returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
	}
	return fmt.Sprintf("server returned %d %s", e.Code, http.StatusText(e.Code))
}

// TransportError indicates the request never produced a response
// (connection failure, timeout, cancelled context).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates a 2xx response whose body could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid server response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

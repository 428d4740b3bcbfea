package api

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned when an endpoint cannot be resolved against
// the configured base URL.
var ErrInvalidURL = errors.New("invalid request URL")

// ErrNoContent marks a 204/205 response. It only surfaces as a failure
// when the caller expected a body; endpoints that declare an empty
// result treat it as success.
var ErrNoContent = errors.New("no content")

// StatusError is a response outside the success range, carrying the
// status code and the raw body text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.Code, e.Body)
}

// DecodeError is a success-range response whose body did not match the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Failure is an API-level failure: a 2xx response whose envelope
// carried success=false. Message is empty when the server sent none.
type Failure struct {
	Message string
}

func (e *Failure) Error() string {
	return fmt.Sprintf("api failure: %s", e.Message)
}

// RequestError wraps any other failure (transport errors and the
// like). No raw transport error escapes the client without it.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages.
const (
	MsgServiceError   = "service error"
	MsgSessionExpired = "session expired, please log in again"
)

// StatusUnknown is reported when no HTTP status could be obtained.
const StatusUnknown = http.StatusInternalServerError

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrBodyTooLarge = errors.New("response body too large")
)

// BusinessError is an envelope with a code other than CodeOK: the backend
// processed the request and rejected it.
type BusinessError struct {
	Code     int
	Message  string
	Envelope Envelope[json.RawMessage]
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("business error %d", e.Code)
	}
	return fmt.Sprintf("business error %d: %s", e.Code, e.Message)
}

// TransportError means no usable envelope came back: the network failed, the
// HTTP status was not 2xx, or the body was not an envelope.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transport error: http %d", e.Status)
	}
	return fmt.Sprintf("transport error: http %d: %v", e.Status, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrUnavailable:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}

// DecodeError is the cause of a TransportError whose body could not be read
// as an envelope or whose payload did not fit the expected type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

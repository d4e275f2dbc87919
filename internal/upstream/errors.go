package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

const defaultErrorMessage = "An error occurred"

// User-facing messages for transport failures.
const (
	TimeoutMessage = "Request timeout - Celler Hut API not responding"
	NetworkMessage = "Network error - Unable to reach Celler Hut API"
)

var (
	// ErrTimeout is returned when the upstream did not answer within the
	// configured timeout or the caller's deadline expired.
	ErrTimeout = errors.New("celler hut api request timed out")

	// ErrNetworkUnreachable is returned when no response was received at all,
	// including when the circuit breaker rejected the call.
	ErrNetworkUnreachable = errors.New("celler hut api unreachable")
)

// Error is a non-2xx response from the Celler Hut API.
type Error struct {
	StatusCode int
	Message    string
	Errors     map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("celler hut api: status %d: %s", e.StatusCode, e.Message)
}

// parseError builds an Error from a response body shaped like
// {status:"error", message, errors}. Bodies that are not JSON keep the
// default message.
func parseError(status int, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Message:    defaultErrorMessage,
		Errors:     map[string]any{},
	}

	var payload struct {
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}
	if payload.Message != "" {
		e.Message = payload.Message
	}
	if len(payload.Errors) > 0 {
		var fields map[string]any
		if err := json.Unmarshal(payload.Errors, &fields); err == nil && fields != nil {
			e.Errors = fields
		}
	}
	return e
}

// StatusCode returns the upstream HTTP status carried by err, or 0 when err
// is not an upstream response error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsTransport reports whether err means the upstream could not be reached
// or did not answer in time.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetworkUnreachable)
}

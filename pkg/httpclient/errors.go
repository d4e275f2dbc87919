package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// maxErrorBody caps how much of an error response body is retained.
const maxErrorBody = 1 << 20

// StatusError is returned for responses the caller must treat as failures.
// The body is kept so callers can decode structured error envelopes.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded with status %d", e.StatusCode)
}

// NewStatusError reads and closes resp.Body, returning a StatusError that
// carries at most 1 MB of the body.
func NewStatusError(resp *http.Response) *StatusError {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		body = nil
	}
	return &StatusError{StatusCode: resp.StatusCode, Body: body}
}

// IsTimeout reports whether err is a client timeout or an expired deadline.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}

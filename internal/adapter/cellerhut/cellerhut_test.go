package cellerhut

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestUpstream starts a fake Celler Hut API and returns a client for it.
func newTestUpstream(t *testing.T, h http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := upstream.NewClient(upstream.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil, newTestLogger())
	require.NoError(t, err)
	return c
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func requireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %T: %v", err, err)
	return appErr
}

// --- Error mapping ---

func TestMapError(t *testing.T) {
	table := messages{http.StatusUnauthorized: "Invalid email or password"}

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		hasField bool
	}{
		{
			name:    "table hit",
			err:     &upstream.Error{StatusCode: 401, Message: "Unauthenticated."},
			status:  http.StatusUnauthorized,
			code:    "UNAUTHORIZED",
			message: "Invalid email or password",
		},
		{
			name:     "other 4xx keeps upstream message and fields",
			err:      &upstream.Error{StatusCode: 422, Message: "The email has already been taken.", Errors: map[string]any{"email": []any{"taken"}}},
			status:   http.StatusUnprocessableEntity,
			code:     "VALIDATION_FAILED",
			message:  "The email has already been taken.",
			hasField: true,
		},
		{
			name:    "not found",
			err:     &upstream.Error{StatusCode: 404, Message: "No query results"},
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "No query results",
		},
		{
			name:    "unlisted 4xx",
			err:     &upstream.Error{StatusCode: 418, Message: "teapot"},
			status:  418,
			code:    "UPSTREAM_REJECTED",
			message: "teapot",
		},
		{
			name:    "5xx uses fallback",
			err:     &upstream.Error{StatusCode: 502, Message: "Bad gateway"},
			status:  http.StatusServiceUnavailable,
			code:    "SERVICE_UNAVAILABLE",
			message: "Login failed",
		},
		{
			name:    "timeout",
			err:     fmt.Errorf("%w: deadline", upstream.ErrTimeout),
			status:  http.StatusServiceUnavailable,
			code:    "SERVICE_UNAVAILABLE",
			message: upstream.TimeoutMessage,
		},
		{
			name:    "network",
			err:     fmt.Errorf("%w: refused", upstream.ErrNetworkUnreachable),
			status:  http.StatusServiceUnavailable,
			code:    "SERVICE_UNAVAILABLE",
			message: upstream.NetworkMessage,
		},
		{
			name:    "anything else",
			err:     errors.New("decode failed"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := requireAppError(t, mapError(tt.err, table, "Login failed"))
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			if tt.hasField {
				assert.Contains(t, appErr.Fields, "email")
			} else {
				assert.Empty(t, appErr.Fields)
			}
		})
	}
}

func TestMapError_NilAndCanceled(t *testing.T) {
	assert.NoError(t, mapError(nil, nil, "x"))

	err := mapError(fmt.Errorf("call: %w", context.Canceled), nil, "x")
	assert.ErrorIs(t, err, context.Canceled)
	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestMapError_KeepsCause(t *testing.T) {
	err := mapError(fmt.Errorf("%w: refused", upstream.ErrNetworkUnreachable), nil, "x")
	assert.ErrorIs(t, err, upstream.ErrNetworkUnreachable)
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavail)
}

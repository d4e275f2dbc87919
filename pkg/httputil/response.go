package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/validator"
)

// ErrorResponse is the JSON body written for every failed request. The
// storefront reads statusCode and message; errors carries field-level
// messages when the upstream or the validator produced them.
type ErrorResponse struct {
	StatusCode int            `json:"statusCode"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Errors     map[string]any `json:"errors,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// WriteJSON writes v as a bare JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardized error response based on the error type.
// It prefers the request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}
	requestID := logger.CorrelationIDFromContext(r.Context())

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		fields := make(map[string]any, len(valErr.Fields()))
		for k, v := range valErr.Fields() {
			fields[k] = v
		}
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "VALIDATION_ERROR",
			Message:    "request validation failed",
			Errors:     fields,
			RequestID:  requestID,
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logServerError(l, r, err)
		}
		WriteJSON(w, appErr.Status, ErrorResponse{
			StatusCode: appErr.Status,
			Code:       appErr.Code,
			Message:    appErr.Message,
			Errors:     appErr.Fields,
			RequestID:  requestID,
		})
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code, message = "NOT_FOUND", "resource not found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code, message = "INVALID_INPUT", err.Error()
	case errors.Is(err, apperrors.ErrTokenRequired):
		code, message = "TOKEN_REQUIRED", "Authentication token required"
	case errors.Is(err, apperrors.ErrServiceUnavail):
		code, message = "SERVICE_UNAVAILABLE", "service unavailable"
	}

	if status >= http.StatusInternalServerError {
		logServerError(l, r, err)
	}

	WriteJSON(w, status, ErrorResponse{
		StatusCode: status,
		Code:       code,
		Message:    message,
		RequestID:  requestID,
	})
}

func logServerError(l *slog.Logger, r *http.Request, err error) {
	l.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

// DecodeAndValidate decodes the JSON request body into dst and runs struct
// validation. The returned error is ready for WriteError.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := validator.DecodeAndValidate(r, dst); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return err
		}
		return apperrors.InvalidInput(err.Error())
	}
	return nil
}

// QueryInt returns the positive integer query parameter key, or def when it
// is absent, malformed or not positive.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// QueryBool reports whether the query parameter key is "true" or "1".
func QueryBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.URL.Query().Get(key)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

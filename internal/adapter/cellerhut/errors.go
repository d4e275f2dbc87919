package cellerhut

import (
	"context"
	"errors"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// messages overrides the user-facing message for specific upstream statuses
// of one operation.
type messages map[int]string

var (
	registerMessages = messages{
		http.StatusUnprocessableEntity: "Email already exists or invalid data provided",
		http.StatusConflict:            "User already exists",
	}
	loginMessages = messages{
		http.StatusUnauthorized:    "Invalid email or password",
		http.StatusTooManyRequests: "Too many login attempts",
	}
	changePasswordMessages = messages{
		http.StatusBadRequest: "Current password is incorrect",
	}
	forgotPasswordMessages = messages{
		http.StatusNotFound: "Email address not found",
	}
	resetTokenMessages = messages{
		http.StatusBadRequest: "Invalid or expired token",
	}
	otpMessages = messages{
		http.StatusBadRequest: "Invalid OTP code",
	}
	addressMessages = messages{
		http.StatusNotFound: "Address not found",
	}
)

// mapError converts a client error into an AppError. Upstream 4xx statuses
// listed in table use its message; other 4xx keep the upstream message.
// 5xx responses and transport failures become 503 with fallback or the
// transport message.
func mapError(err error, table messages, fallback string) error {
	if err == nil {
		return nil
	}

	var apiErr *upstream.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return apperrors.ServiceUnavailable(fallback, err)
		}
		msg := apiErr.Message
		if m, ok := table[apiErr.StatusCode]; ok {
			msg = m
		}
		appErr := clientError(apiErr.StatusCode, msg)
		if len(apiErr.Errors) > 0 {
			appErr = appErr.WithFields(apiErr.Errors)
		}
		return appErr
	}

	switch {
	case errors.Is(err, upstream.ErrTimeout):
		return apperrors.ServiceUnavailable(upstream.TimeoutMessage, err)
	case errors.Is(err, upstream.ErrNetworkUnreachable):
		return apperrors.ServiceUnavailable(upstream.NetworkMessage, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return apperrors.Internal(err)
	}
}

func clientError(status int, msg string) *apperrors.AppError {
	switch status {
	case http.StatusBadRequest:
		return apperrors.InvalidInput(msg)
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(msg)
	case http.StatusForbidden:
		return apperrors.Forbidden(msg)
	case http.StatusNotFound:
		return apperrors.NotFound(msg)
	case http.StatusConflict:
		return apperrors.Conflict(msg)
	case http.StatusUnprocessableEntity:
		return apperrors.Unprocessable(msg)
	case http.StatusTooManyRequests:
		return apperrors.RateLimited(msg)
	default:
		return &apperrors.AppError{
			Code:    "UPSTREAM_REJECTED",
			Message: msg,
			Status:  status,
			Err:     apperrors.ErrInvalidInput,
		}
	}
}

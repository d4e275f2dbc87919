package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// Tokens returned when a social or OTP sign-in cannot reach the upstream.
const (
	DemoSocialToken = "demo_social_jwt_token"
	DemoOTPToken    = "demo_otp_jwt_token"
)

const (
	logoutMessage = "Logged out successfully"
	otpProvider   = "sms"
)

// AuthService implements the sign-in, password and profile operations.
type AuthService struct {
	auth   adapter.AuthAdapter
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(auth adapter.AuthAdapter, logger *slog.Logger) *AuthService {
	return &AuthService{
		auth:   auth,
		logger: logger,
	}
}

// Register creates an account. Errors are returned as mapped.
func (s *AuthService) Register(ctx context.Context, in storefront.RegisterInput) (storefront.AuthResponse, error) {
	return s.auth.Register(ctx, in)
}

// Login signs in with email and password. Errors are returned as mapped.
func (s *AuthService) Login(ctx context.Context, in storefront.LoginInput) (storefront.AuthResponse, error) {
	return s.auth.Login(ctx, in)
}

// Refresh exchanges a refresh token. Errors are returned as mapped.
func (s *AuthService) Refresh(ctx context.Context, in storefront.RefreshTokenInput) (storefront.AuthResponse, error) {
	return s.auth.Refresh(ctx, in)
}

// Logout always reports success. The upstream session is ended when the
// caller sent a token.
func (s *AuthService) Logout(ctx context.Context) storefront.CoreResponse {
	if upstream.TokenFromContext(ctx) != "" {
		if err := s.auth.Logout(ctx); err != nil {
			fallback(ctx, s.logger, "logout", err)
		}
	}
	return storefront.CoreResponse{Success: true, Message: logoutMessage}
}

// ChangePassword changes the caller's password.
func (s *AuthService) ChangePassword(ctx context.Context, in storefront.ChangePasswordInput) storefront.CoreResponse {
	return s.core(ctx, "change_password", s.auth.ChangePassword(ctx, in),
		"Password changed successfully", "Password change failed")
}

// ForgetPassword sends a password reset link.
func (s *AuthService) ForgetPassword(ctx context.Context, in storefront.ForgetPasswordInput) storefront.CoreResponse {
	return s.core(ctx, "forget_password", s.auth.ForgotPassword(ctx, in),
		"Password reset link sent to your email", "Forgot password request failed")
}

// VerifyForgetPasswordToken checks a password reset token.
func (s *AuthService) VerifyForgetPasswordToken(ctx context.Context, in storefront.VerifyForgetPasswordTokenInput) storefront.CoreResponse {
	return s.core(ctx, "verify_reset_token", s.auth.VerifyResetToken(ctx, in),
		"Token verified successfully", "Token verification failed")
}

// ResetPassword sets a new password with a reset token.
func (s *AuthService) ResetPassword(ctx context.Context, in storefront.ResetPasswordInput) storefront.CoreResponse {
	return s.core(ctx, "reset_password", s.auth.ResetPassword(ctx, in),
		"Password reset successfully", "Password reset failed")
}

// VerifyOTP checks a one-time code.
func (s *AuthService) VerifyOTP(ctx context.Context, in storefront.VerifyOTPInput) storefront.CoreResponse {
	return s.core(ctx, "verify_otp", s.auth.VerifyOTP(ctx, in),
		"OTP verified successfully", "OTP verification failed")
}

// SocialLogin signs in with a third-party token, falling back to a demo
// customer identity.
func (s *AuthService) SocialLogin(ctx context.Context, in storefront.SocialLoginInput) storefront.AuthResponse {
	resp, err := s.auth.SocialLogin(ctx, in)
	if err != nil {
		fallback(ctx, s.logger, "social_login", err)
		return transform.FallbackAuth(DemoSocialToken)
	}
	return resp
}

// OTPLogin signs in with a one-time code, falling back to a demo customer
// identity.
func (s *AuthService) OTPLogin(ctx context.Context, in storefront.OTPLoginInput) storefront.AuthResponse {
	resp, err := s.auth.OTPLogin(ctx, in)
	if err != nil {
		fallback(ctx, s.logger, "otp_login", err)
		return transform.FallbackAuth(DemoOTPToken)
	}
	return resp
}

// SendOTP sends a one-time code. A failure is reported in the response.
func (s *AuthService) SendOTP(ctx context.Context, in storefront.SendOTPInput) storefront.OTPResponse {
	resp, err := s.auth.SendOTP(ctx, in)
	if err != nil {
		fallback(ctx, s.logger, "send_otp", err)
		return storefront.OTPResponse{
			Message:     "Failed to send OTP",
			Success:     false,
			PhoneNumber: in.PhoneNumber,
			Provider:    otpProvider,
		}
	}
	return resp
}

// Me returns the caller's profile. Anonymous callers get the demo user
// without an upstream call, as do callers whose lookup fails.
func (s *AuthService) Me(ctx context.Context) (storefront.User, error) {
	if upstream.TokenFromContext(ctx) == "" {
		return transform.DemoUser(), nil
	}
	u, err := s.auth.Me(ctx)
	if err != nil {
		fallback(ctx, s.logger, "me", err)
		return transform.DemoUser(), nil
	}
	return u, nil
}

// UpdateProfile updates the caller's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, in storefront.UpdateUserInput) (storefront.User, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.User{}, err
	}
	return s.auth.UpdateProfile(ctx, in)
}

// AgeVerification reports whether a user is of legal drinking age. Failures
// read as not verified.
func (s *AuthService) AgeVerification(ctx context.Context, userID int64) storefront.AgeVerification {
	v, err := s.auth.AgeVerification(ctx, userID)
	if err != nil {
		fallback(ctx, s.logger, "age_verification", err)
		return storefront.AgeVerification{IsOfLegalAge: false}
	}
	return v
}

// PurchaseHistory returns a user's recent purchases, or none on failure.
func (s *AuthService) PurchaseHistory(ctx context.Context, userID int64, p adapter.PurchaseHistoryParams) []json.RawMessage {
	items, err := s.auth.PurchaseHistory(ctx, userID, p)
	if err != nil {
		fallback(ctx, s.logger, "purchase_history", err)
		return []json.RawMessage{}
	}
	return items
}

// core turns the result of a password or OTP call into a CoreResponse. A
// rejected request keeps the mapped message; an unreachable upstream gets
// failed.
func (s *AuthService) core(ctx context.Context, op string, err error, succeeded, failed string) storefront.CoreResponse {
	if err == nil {
		return storefront.CoreResponse{Success: true, Message: succeeded}
	}

	fallback(ctx, s.logger, op, err)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		return storefront.CoreResponse{Success: false, Message: appErr.Message}
	}
	return storefront.CoreResponse{Success: false, Message: failed}
}

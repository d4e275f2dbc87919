package cellerhut

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
)

const (
	otpProvider           = "sms"
	defaultHistoryLimit   = 10
	registerFailed        = "Registration failed"
	loginFailed           = "Login failed"
	changePasswordFailed  = "Failed to change password. Please try again."
	forgotPasswordFailed  = "Failed to send reset link. Please try again."
	verifyTokenFailed     = "Token verification failed"
	resetPasswordFailed   = "Password reset failed. Please try again."
	socialLoginFailed     = "Social login failed"
	otpLoginFailed        = "OTP login failed"
	sendOTPFailed         = "Failed to send OTP. Please try again."
	verifyOTPFailed       = "OTP verification failed"
	profileFailed         = "Failed to get user profile"
	refreshFailed         = "Token refresh failed. Please login again."
	updateProfileFailed   = "Failed to update profile"
	ageVerificationFailed = "Failed to verify age"
	purchaseHistoryFailed = "Failed to get purchase history"
)

// AuthAdapter implements adapter.AuthAdapter.
type AuthAdapter struct {
	client *upstream.Client
}

var _ adapter.AuthAdapter = (*AuthAdapter)(nil)

// NewAuthAdapter creates an auth adapter.
func NewAuthAdapter(client *upstream.Client) *AuthAdapter {
	return &AuthAdapter{client: client}
}

func (a *AuthAdapter) signIn(ctx context.Context, path string, body any, table messages, fallback string) (storefront.AuthResponse, error) {
	var payload celler.AuthPayload
	if err := a.client.Post(ctx, authPath+path, body, &payload); err != nil {
		return storefront.AuthResponse{}, mapError(err, table, fallback)
	}
	return transform.Auth(payload), nil
}

// Register creates an account and signs it in.
func (a *AuthAdapter) Register(ctx context.Context, in storefront.RegisterInput) (storefront.AuthResponse, error) {
	body := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
	}
	return a.signIn(ctx, "/register", body, registerMessages, registerFailed)
}

// Login signs in with email and password.
func (a *AuthAdapter) Login(ctx context.Context, in storefront.LoginInput) (storefront.AuthResponse, error) {
	body := map[string]string{
		"email":    in.Email,
		"password": in.Password,
	}
	return a.signIn(ctx, "/login", body, loginMessages, loginFailed)
}

// ChangePassword changes the caller's password.
func (a *AuthAdapter) ChangePassword(ctx context.Context, in storefront.ChangePasswordInput) error {
	body := map[string]string{
		"current_password": in.OldPassword,
		"new_password":     in.NewPassword,
	}
	err := a.client.Post(ctx, authPath+"/change-password", body, nil)
	return mapError(err, changePasswordMessages, changePasswordFailed)
}

// ForgotPassword starts the reset flow for an email address.
func (a *AuthAdapter) ForgotPassword(ctx context.Context, in storefront.ForgetPasswordInput) error {
	body := map[string]string{"email": in.Email}
	err := a.client.Post(ctx, authPath+"/forgot-password", body, nil)
	return mapError(err, forgotPasswordMessages, forgotPasswordFailed)
}

// VerifyResetToken checks a password reset token.
func (a *AuthAdapter) VerifyResetToken(ctx context.Context, in storefront.VerifyForgetPasswordTokenInput) error {
	body := map[string]string{
		"token": in.Token,
		"email": in.Email,
	}
	err := a.client.Post(ctx, authPath+"/verify-reset-token", body, nil)
	return mapError(err, resetTokenMessages, verifyTokenFailed)
}

// ResetPassword sets a new password using a reset token.
func (a *AuthAdapter) ResetPassword(ctx context.Context, in storefront.ResetPasswordInput) error {
	body := map[string]string{
		"token":    in.Token,
		"email":    in.Email,
		"password": in.Password,
	}
	err := a.client.Post(ctx, authPath+"/reset-password", body, nil)
	return mapError(err, resetTokenMessages, resetPasswordFailed)
}

// SocialLogin signs in with a third-party access token.
func (a *AuthAdapter) SocialLogin(ctx context.Context, in storefront.SocialLoginInput) (storefront.AuthResponse, error) {
	body := map[string]string{
		"provider":     in.Provider,
		"access_token": in.AccessToken,
	}
	return a.signIn(ctx, "/social-login", body, nil, socialLoginFailed)
}

// OTPLogin signs in with a one-time code.
func (a *AuthAdapter) OTPLogin(ctx context.Context, in storefront.OTPLoginInput) (storefront.AuthResponse, error) {
	body := map[string]string{
		"phone_number": in.PhoneNumber,
		"otp_code":     in.Code,
		"otp_id":       in.OTPID,
	}
	if in.Name != "" {
		body["name"] = in.Name
	}
	if in.Email != "" {
		body["email"] = in.Email
	}
	return a.signIn(ctx, "/otp-login", body, otpMessages, otpLoginFailed)
}

// SendOTP sends a one-time code to a phone number.
func (a *AuthAdapter) SendOTP(ctx context.Context, in storefront.SendOTPInput) (storefront.OTPResponse, error) {
	var sent celler.OTPSent
	body := map[string]string{"phone_number": in.PhoneNumber}
	if err := a.client.Post(ctx, authPath+"/send-otp", body, &sent); err != nil {
		return storefront.OTPResponse{}, mapError(err, nil, sendOTPFailed)
	}
	return storefront.OTPResponse{
		ID:             sent.OTPID.String(),
		Message:        "OTP sent successfully",
		Success:        true,
		PhoneNumber:    in.PhoneNumber,
		Provider:       otpProvider,
		IsContactExist: sent.UserExists,
	}, nil
}

// VerifyOTP checks a one-time code.
func (a *AuthAdapter) VerifyOTP(ctx context.Context, in storefront.VerifyOTPInput) error {
	body := map[string]string{
		"phone_number": in.PhoneNumber,
		"otp_code":     in.Code,
		"otp_id":       in.OTPID,
	}
	err := a.client.Post(ctx, authPath+"/verify-otp", body, nil)
	return mapError(err, otpMessages, verifyOTPFailed)
}

// Me returns the caller's profile with permissions and addresses.
func (a *AuthAdapter) Me(ctx context.Context) (storefront.User, error) {
	var u celler.User
	if err := a.client.Get(ctx, authPath+"/me", nil, &u); err != nil {
		return storefront.User{}, mapError(err, nil, profileFailed)
	}
	return transform.Me(u), nil
}

// Logout ends the caller's upstream session.
func (a *AuthAdapter) Logout(ctx context.Context) error {
	err := a.client.Post(ctx, authPath+"/logout", struct{}{}, nil)
	return mapError(err, nil, "Logout failed")
}

// Refresh exchanges a refresh token for a new access token.
func (a *AuthAdapter) Refresh(ctx context.Context, in storefront.RefreshTokenInput) (storefront.AuthResponse, error) {
	body := map[string]string{"refresh_token": in.RefreshToken}
	return a.signIn(ctx, "/refresh", body, nil, refreshFailed)
}

// UpdateProfile updates the caller's profile. contact is sent as phone.
func (a *AuthAdapter) UpdateProfile(ctx context.Context, in storefront.UpdateUserInput) (storefront.User, error) {
	var u celler.User
	if err := a.client.Put(ctx, authPath+"/profile", transform.ProfileUpdate(in), &u); err != nil {
		return storefront.User{}, mapError(err, nil, updateProfileFailed)
	}
	return transform.Me(u), nil
}

// AgeVerification reports whether a user is of legal drinking age.
func (a *AuthAdapter) AgeVerification(ctx context.Context, userID int64) (storefront.AgeVerification, error) {
	var v celler.AgeVerification
	if err := a.client.Get(ctx, idPath(usersPath, userID, "age-verification"), nil, &v); err != nil {
		return storefront.AgeVerification{}, mapError(err, nil, ageVerificationFailed)
	}
	return storefront.AgeVerification{
		IsOfLegalAge: v.IsOfLegalAge,
		Age:          v.Age,
		LegalAge:     v.LegalAge,
		Message:      v.Message,
	}, nil
}

// PurchaseHistory returns a user's recent purchases.
func (a *AuthAdapter) PurchaseHistory(ctx context.Context, userID int64, p adapter.PurchaseHistoryParams) ([]json.RawMessage, error) {
	q := limitQuery(p.Limit, defaultHistoryLimit)
	q.Set("liquor_only", strconv.FormatBool(p.LiquorOnly))

	list, err := fetchList[json.RawMessage](ctx, a.client, idPath(usersPath, userID, "purchase-history"), q)
	if err != nil {
		return nil, mapError(err, nil, purchaseHistoryFailed)
	}
	return list.Items, nil
}

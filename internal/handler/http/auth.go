package http

import (
	"log/slog"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
)

// AuthHandler handles the sign-in, password and profile endpoints.
type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in storefront.RegisterInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.Register(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in storefront.LoginInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.Login(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Refresh handles POST /refresh-token
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in storefront.RefreshTokenInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.Refresh(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusCreated, h.service.Logout(r.Context()))
}

// SocialLogin handles POST /social-login-token
func (h *AuthHandler) SocialLogin(w http.ResponseWriter, r *http.Request) {
	var in storefront.SocialLoginInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.SocialLogin(r.Context(), in))
}

// OTPLogin handles POST /otp-login
func (h *AuthHandler) OTPLogin(w http.ResponseWriter, r *http.Request) {
	var in storefront.OTPLoginInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.OTPLogin(r.Context(), in))
}

// SendOTP handles POST /send-otp-code
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var in storefront.SendOTPInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.SendOTP(r.Context(), in))
}

// VerifyOTP handles POST /verify-otp-code
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var in storefront.VerifyOTPInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.VerifyOTP(r.Context(), in))
}

// ChangePassword handles POST /change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in storefront.ChangePasswordInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.ChangePassword(r.Context(), in))
}

// ForgetPassword handles POST /forget-password
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var in storefront.ForgetPasswordInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.ForgetPassword(r.Context(), in))
}

// VerifyForgetPasswordToken handles POST /verify-forget-password-token
func (h *AuthHandler) VerifyForgetPasswordToken(w http.ResponseWriter, r *http.Request) {
	var in storefront.VerifyForgetPasswordTokenInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.VerifyForgetPasswordToken(r.Context(), in))
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in storefront.ResetPasswordInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.service.ResetPassword(r.Context(), in))
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Me(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

// UpdateMe handles PUT /me
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var in storefront.UpdateUserInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

// AgeVerification handles GET /users/{id}/age-verification
func (h *AuthHandler) AgeVerification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.AgeVerification(r.Context(), id))
}

// PurchaseHistory handles GET /users/{id}/purchase-history
func (h *AuthHandler) PurchaseHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	p := adapter.PurchaseHistoryParams{
		Limit:      httputil.QueryInt(r, "limit", 0),
		LiquorOnly: httputil.QueryBool(r, "liquor_only"),
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.PurchaseHistory(r.Context(), id, p))
}

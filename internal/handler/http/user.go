package http

import (
	"log/slog"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/pagination"
)

const defaultUserLimit = 30

// UserHandler handles HTTP requests for user administration and profiles.
type UserHandler struct {
	service *service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user HTTP handler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// List returns a handler listing users for route. Each role listing is
// mounted at its own path and its paginator links point back there.
func (h *UserHandler) List(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pg := pagination.FromRequest(r, defaultUserLimit)
		page := h.service.List(r.Context(), adapter.UserListParams{
			Page:   pg.Page,
			Limit:  pg.Limit,
			Search: r.URL.Query().Get("search"),
			Route:  route,
		})
		httputil.WriteJSON(w, http.StatusOK, page)
	}
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in storefront.CreateUserInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.Create(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

// UpdateProfile handles PUT /users/{id}, POST /profiles and PUT
// /profiles/{id}. The upstream only updates the caller's own profile, so
// the path id is not forwarded.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
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

	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, u)
}

// Delete handles DELETE /users/{id} and DELETE /profiles/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Block handles POST /users/block-user
func (h *UserHandler) Block(w http.ResponseWriter, r *http.Request) {
	var in storefront.UserIDInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.Block(r.Context(), in.ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

// Unblock handles POST /users/unblock-user
func (h *UserHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	var in storefront.UserIDInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.Unblock(r.Context(), in.ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

// MakeAdmin handles POST /users/make-admin
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var in storefront.MakeAdminInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	u, err := h.service.MakeAdmin(r.Context(), in.UserID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

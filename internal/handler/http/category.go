package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/pagination"
)

const defaultCategoryLimit = 15

// CategoryHandler handles HTTP requests for category endpoints.
type CategoryHandler struct {
	service *service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category HTTP handler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	pg := pagination.FromRequest(r, defaultCategoryLimit)
	q := r.URL.Query()

	page := h.service.List(r.Context(), adapter.CategoryListParams{
		Page:   pg.Page,
		Limit:  pg.Limit,
		Search: q.Get("search"),
		Parent: q.Get("parent"),
	})
	httputil.WriteJSON(w, http.StatusOK, page)
}

// Liquor handles GET /categories/liquor
func (h *CategoryHandler) Liquor(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Liquor(r.Context(), httputil.QueryInt(r, "limit", 0)))
}

// Hierarchy handles GET /categories/hierarchy
func (h *CategoryHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Hierarchy(r.Context()))
}

// Parents handles GET /categories/parents
func (h *CategoryHandler) Parents(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Parents(r.Context()))
}

// ByType handles GET /categories/type/{liquorType}
func (h *CategoryHandler) ByType(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ByType(r.Context(), chi.URLParam(r, "liquorType")))
}

// Search handles GET /categories/search/{query}
func (h *CategoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := adapter.CategorySearchParams{
		Query:       chi.URLParam(r, "query"),
		LiquorType:  q.Get("liquor_type"),
		Origin:      q.Get("origin"),
		HasProducts: q.Get("has_products"),
		Limit:       httputil.QueryInt(r, "limit", 0),
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Search(r.Context(), p))
}

// Children handles GET /categories/{id}/children
func (h *CategoryHandler) Children(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Children(r.Context(), id))
}

// Stats handles GET /categories/{id}/stats
func (h *CategoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Stats(r.Context(), id))
}

// Get handles GET /categories/{id}, where id may also be a slug.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("language"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in storefront.CategoryInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	c, err := h.service.Create(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

// Update handles PUT /categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var in storefront.CategoryInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	c, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

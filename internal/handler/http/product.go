package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/pagination"
)

const defaultProductLimit = 30

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

func productListParams(r *http.Request) adapter.ProductListParams {
	pg := pagination.FromRequest(r, defaultProductLimit)
	return adapter.ProductListParams{
		Page:   pg.Page,
		Limit:  pg.Limit,
		Search: r.URL.Query().Get("search"),
	}
}

func rankedParams(r *http.Request) adapter.RankedProductParams {
	return adapter.RankedProductParams{
		Limit:    httputil.QueryInt(r, "limit", 0),
		TypeSlug: r.URL.Query().Get("type_slug"),
	}
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.List(r.Context(), productListParams(r)))
}

// LowStock handles GET /products-stock
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.LowStock(r.Context(), productListParams(r)))
}

// Drafts handles GET /draft-products
func (h *ProductHandler) Drafts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Drafts(r.Context(), productListParams(r)))
}

// Popular handles GET /popular-products
func (h *ProductHandler) Popular(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Popular(r.Context(), rankedParams(r)))
}

// BestSelling handles GET /best-selling-products
func (h *ProductHandler) BestSelling(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.BestSelling(r.Context(), rankedParams(r)))
}

// Search handles GET /products/search
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		query = q.Get("search")
	}

	p := adapter.ProductSearchParams{
		Query:             query,
		AlcoholContentMin: q.Get("alcohol_content_min"),
		AlcoholContentMax: q.Get("alcohol_content_max"),
		Volume:            q.Get("volume"),
		Origin:            q.Get("origin"),
		Vintage:           q.Get("vintage"),
		PriceMin:          q.Get("price_min"),
		PriceMax:          q.Get("price_max"),
		Limit:             httputil.QueryInt(r, "limit", 0),
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Search(r.Context(), p))
}

// BySlug handles GET /products/{slug}
func (h *ProductHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

package service

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/cache"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
)

// ProductService implements the product operations.
type ProductService struct {
	products  adapter.ProductAdapter
	snapshots snapshots
	logger    *slog.Logger
}

// NewProductService creates a new product service. store may be nil.
func NewProductService(products adapter.ProductAdapter, store cache.Store, logger *slog.Logger) *ProductService {
	return &ProductService{
		products:  products,
		snapshots: newSnapshots(store, logger),
		logger:    logger,
	}
}

// List returns a page of products.
func (s *ProductService) List(ctx context.Context, p adapter.ProductListParams) storefront.Page[storefront.Product] {
	return s.page(ctx, "products", p, s.products.List)
}

// LowStock returns a page of products running low on stock. It is an
// admin listing and is never served from a snapshot.
func (s *ProductService) LowStock(ctx context.Context, p adapter.ProductListParams) storefront.Page[storefront.Product] {
	return s.private(ctx, "products_stock", p, s.products.LowStock)
}

// Drafts returns a page of unpublished products. It is an admin listing and
// is never served from a snapshot.
func (s *ProductService) Drafts(ctx context.Context, p adapter.ProductListParams) storefront.Page[storefront.Product] {
	return s.private(ctx, "products_draft", p, s.products.Drafts)
}

// BySlug returns a product with its related products.
func (s *ProductService) BySlug(ctx context.Context, slug string) (storefront.ProductDetail, error) {
	return s.products.BySlug(ctx, slug)
}

// Popular returns the most viewed products.
func (s *ProductService) Popular(ctx context.Context, p adapter.RankedProductParams) []storefront.Product {
	return s.all(ctx, "products_popular", rankedQuery(p), func() ([]storefront.Product, error) {
		return s.products.Popular(ctx, p)
	})
}

// BestSelling returns the best selling products.
func (s *ProductService) BestSelling(ctx context.Context, p adapter.RankedProductParams) []storefront.Product {
	return s.all(ctx, "products_best_selling", rankedQuery(p), func() ([]storefront.Product, error) {
		return s.products.BestSelling(ctx, p)
	})
}

// Search finds products by text and liquor attributes.
func (s *ProductService) Search(ctx context.Context, p adapter.ProductSearchParams) []storefront.Product {
	q := query(
		"q", p.Query,
		"alcohol_content_min", p.AlcoholContentMin,
		"alcohol_content_max", p.AlcoholContentMax,
		"volume", p.Volume,
		"origin", p.Origin,
		"vintage", p.Vintage,
		"price_min", p.PriceMin,
		"price_max", p.PriceMax,
		"limit", strconv.Itoa(p.Limit),
	)
	return s.all(ctx, "products_search", q, func() ([]storefront.Product, error) {
		return s.products.Search(ctx, p)
	})
}

type productPageFunc func(context.Context, adapter.ProductListParams) (storefront.Page[storefront.Product], error)

func (s *ProductService) page(ctx context.Context, resource string, p adapter.ProductListParams, fetch productPageFunc) storefront.Page[storefront.Product] {
	q := query(
		"page", strconv.Itoa(p.Page),
		"limit", strconv.Itoa(p.Limit),
		"search", p.Search,
	)
	return readThrough(ctx, s.snapshots, resource, q,
		func() (storefront.Page[storefront.Product], error) { return fetch(ctx, p) },
		transform.EmptyPage[storefront.Product](transform.RouteProducts),
	)
}

func (s *ProductService) private(ctx context.Context, op string, p adapter.ProductListParams, fetch productPageFunc) storefront.Page[storefront.Product] {
	return degrade(ctx, s.logger, op,
		func() (storefront.Page[storefront.Product], error) { return fetch(ctx, p) },
		transform.EmptyPage[storefront.Product](transform.RouteProducts),
	)
}

func (s *ProductService) all(ctx context.Context, resource string, q url.Values, fetch func() ([]storefront.Product, error)) []storefront.Product {
	return readThrough(ctx, s.snapshots, resource, q, fetch, []storefront.Product{})
}

func rankedQuery(p adapter.RankedProductParams) url.Values {
	return query("limit", strconv.Itoa(p.Limit), "type", p.TypeSlug)
}

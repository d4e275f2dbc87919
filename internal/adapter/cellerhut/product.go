package cellerhut

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/search"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
)

const (
	defaultProductLimit = 30
	rankedProductLimit  = 10
	relatedLimit        = 10
	maxRelated          = 20
	productSearchLimit  = 50

	productsFailed = "Failed to fetch products from Celler Hut API"
)

// ProductAdapter implements adapter.ProductAdapter.
type ProductAdapter struct {
	client *upstream.Client
}

var _ adapter.ProductAdapter = (*ProductAdapter)(nil)

// NewProductAdapter creates a product adapter.
func NewProductAdapter(client *upstream.Client) *ProductAdapter {
	return &ProductAdapter{client: client}
}

// List returns a page of products.
func (a *ProductAdapter) List(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return a.page(ctx, p, nil)
}

// LowStock returns a page of products running low on stock.
func (a *ProductAdapter) LowStock(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return a.page(ctx, p, url.Values{"low_stock": {"true"}})
}

// Drafts returns a page of unpublished products.
func (a *ProductAdapter) Drafts(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return a.page(ctx, p, url.Values{"status": {"draft"}})
}

func (a *ProductAdapter) page(ctx context.Context, p adapter.ProductListParams, fixed url.Values) (storefront.Page[storefront.Product], error) {
	q := pageQuery(p.Page, p.Limit, defaultProductLimit)
	applySearch(ctx, q, p.Search, search.Products)
	for k, v := range fixed {
		q[k] = v
	}

	list, err := fetchList[celler.Product](ctx, a.client, productsPath, q)
	if err != nil {
		return storefront.Page[storefront.Product]{}, mapError(err, nil, productsFailed)
	}
	return transform.Page(list, transform.RouteProducts, transform.Product), nil
}

// BySlug returns a product with up to maxRelated products from the same
// category. A failed related lookup leaves the related list empty.
func (a *ProductAdapter) BySlug(ctx context.Context, slug string) (storefront.ProductDetail, error) {
	var p celler.Product
	if err := a.client.Get(ctx, productsPath+"/"+url.PathEscape(slug), nil, &p); err != nil {
		return storefront.ProductDetail{}, mapError(err, messages{
			http.StatusNotFound: fmt.Sprintf("Product with slug %q not found", slug),
		}, productsFailed)
	}

	related, err := a.related(ctx, p)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "related products lookup failed",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		related = []storefront.Product{}
	}

	return storefront.ProductDetail{
		Product:         transform.Product(p),
		RelatedProducts: related,
	}, nil
}

func (a *ProductAdapter) related(ctx context.Context, p celler.Product) ([]storefront.Product, error) {
	q := limitQuery(relatedLimit, relatedLimit)
	q.Set("exclude", strconv.FormatInt(p.ID, 10))
	setIf(q, "category", p.CategorySlug())

	list, err := fetchList[celler.Product](ctx, a.client, productsPath, q)
	if err != nil {
		return nil, err
	}
	items := list.Items
	if len(items) > maxRelated {
		items = items[:maxRelated]
	}
	return transform.Map(items, transform.Product), nil
}

// Popular returns the most viewed products.
func (a *ProductAdapter) Popular(ctx context.Context, p adapter.RankedProductParams) ([]storefront.Product, error) {
	return a.ranked(ctx, "popular", p)
}

// BestSelling returns the best selling products.
func (a *ProductAdapter) BestSelling(ctx context.Context, p adapter.RankedProductParams) ([]storefront.Product, error) {
	return a.ranked(ctx, "best_selling", p)
}

func (a *ProductAdapter) ranked(ctx context.Context, flag string, p adapter.RankedProductParams) ([]storefront.Product, error) {
	q := limitQuery(p.Limit, rankedProductLimit)
	q.Set(flag, "true")
	setIf(q, "category", p.TypeSlug)
	return a.all(ctx, productsPath, q)
}

// Search finds products by text and liquor attributes.
func (a *ProductAdapter) Search(ctx context.Context, p adapter.ProductSearchParams) ([]storefront.Product, error) {
	q := limitQuery(p.Limit, productSearchLimit)
	q.Set("search", p.Query)
	setIf(q, "alcohol_content_min", p.AlcoholContentMin)
	setIf(q, "alcohol_content_max", p.AlcoholContentMax)
	setIf(q, "volume", p.Volume)
	setIf(q, "origin", p.Origin)
	setIf(q, "vintage", p.Vintage)
	setIf(q, "price_min", p.PriceMin)
	setIf(q, "price_max", p.PriceMax)
	return a.all(ctx, productsPath+"/search", q)
}

func (a *ProductAdapter) all(ctx context.Context, path string, q url.Values) ([]storefront.Product, error) {
	list, err := fetchList[celler.Product](ctx, a.client, path, q)
	if err != nil {
		return nil, mapError(err, nil, productsFailed)
	}
	return transform.Map(list.Items, transform.Product), nil
}

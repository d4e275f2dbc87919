package cellerhut

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/search"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
)

const (
	defaultCategoryLimit = 15
	liquorCategoryLimit  = 50
	categoryTypeLimit    = 100
	parentCategoryLimit  = 50
	childCategoryLimit   = 100
	categorySearchLimit  = 50

	categoriesFailed = "Failed to fetch categories from Celler Hut API"
)

// CategoryAdapter implements adapter.CategoryAdapter.
type CategoryAdapter struct {
	client *upstream.Client
}

var _ adapter.CategoryAdapter = (*CategoryAdapter)(nil)

// NewCategoryAdapter creates a category adapter.
func NewCategoryAdapter(client *upstream.Client) *CategoryAdapter {
	return &CategoryAdapter{client: client}
}

// List returns a page of categories.
func (a *CategoryAdapter) List(ctx context.Context, p adapter.CategoryListParams) (storefront.Page[storefront.Category], error) {
	q := pageQuery(p.Page, p.Limit, defaultCategoryLimit)
	applySearch(ctx, q, p.Search, search.Categories)
	switch p.Parent {
	case "":
	case search.NullLiteral:
		q.Del("parent_id")
	default:
		q.Set("parent_id", p.Parent)
	}

	list, err := fetchList[celler.Category](ctx, a.client, categoriesPath, q)
	if err != nil {
		return storefront.Page[storefront.Category]{}, mapError(err, nil, categoriesFailed)
	}
	return transform.Page(list, transform.RouteCategories, transform.Category), nil
}

// Get returns a category by id or slug.
func (a *CategoryAdapter) Get(ctx context.Context, param, language string) (storefront.Category, error) {
	q := url.Values{}
	setIf(q, "language", language)

	var c celler.Category
	if err := a.client.Get(ctx, categoriesPath+"/"+url.PathEscape(param), q, &c); err != nil {
		return storefront.Category{}, mapError(err, messages{
			http.StatusNotFound: fmt.Sprintf("Category with identifier %q not found", param),
		}, categoriesFailed)
	}
	return transform.Category(c), nil
}

// Create adds a category.
func (a *CategoryAdapter) Create(ctx context.Context, in storefront.CategoryInput) (storefront.Category, error) {
	var c celler.Category
	if err := a.client.Post(ctx, categoriesPath, transform.CategoryInput(in), &c); err != nil {
		return storefront.Category{}, mapError(err, nil, "Failed to create category in Celler Hut API")
	}
	return transform.Category(c), nil
}

// Update replaces a category.
func (a *CategoryAdapter) Update(ctx context.Context, id int64, in storefront.CategoryInput) (storefront.Category, error) {
	var c celler.Category
	if err := a.client.Put(ctx, idPath(categoriesPath, id), transform.CategoryInput(in), &c); err != nil {
		return storefront.Category{}, mapError(err, nil, fmt.Sprintf("Failed to update category %d in Celler Hut API", id))
	}
	return transform.Category(c), nil
}

// Delete removes a category.
func (a *CategoryAdapter) Delete(ctx context.Context, id int64) error {
	err := a.client.Delete(ctx, idPath(categoriesPath, id), nil)
	return mapError(err, nil, fmt.Sprintf("Failed to remove category %d from Celler Hut API", id))
}

// Liquor returns categories flagged as liquor.
func (a *CategoryAdapter) Liquor(ctx context.Context, limit int) ([]storefront.Category, error) {
	q := limitQuery(limit, liquorCategoryLimit)
	q.Set("liquor_only", "true")
	return a.all(ctx, categoriesPath, q)
}

// Hierarchy returns the category tree.
func (a *CategoryAdapter) Hierarchy(ctx context.Context) ([]storefront.Category, error) {
	return a.all(ctx, categoriesPath+"/hierarchy", nil)
}

// ByType returns the categories of one liquor type.
func (a *CategoryAdapter) ByType(ctx context.Context, liquorType string) ([]storefront.Category, error) {
	q := limitQuery(categoryTypeLimit, categoryTypeLimit)
	q.Set("liquor_type", liquorType)
	return a.all(ctx, categoriesPath, q)
}

// Parents returns the root categories.
func (a *CategoryAdapter) Parents(ctx context.Context) ([]storefront.Category, error) {
	q := limitQuery(parentCategoryLimit, parentCategoryLimit)
	q.Set("parent_only", "true")
	return a.all(ctx, categoriesPath, q)
}

// Children returns the direct children of a category.
func (a *CategoryAdapter) Children(ctx context.Context, parentID int64) ([]storefront.Category, error) {
	q := limitQuery(childCategoryLimit, childCategoryLimit)
	q.Set("parent_id", strconv.FormatInt(parentID, 10))
	return a.all(ctx, categoriesPath, q)
}

// Search finds categories by text and liquor filters.
func (a *CategoryAdapter) Search(ctx context.Context, p adapter.CategorySearchParams) ([]storefront.Category, error) {
	q := limitQuery(p.Limit, categorySearchLimit)
	q.Set("search", p.Query)
	setIf(q, "liquor_type", p.LiquorType)
	setIf(q, "origin", p.Origin)
	setIf(q, "has_products", p.HasProducts)
	return a.all(ctx, categoriesPath+"/search", q)
}

// Stats returns product statistics for a category.
func (a *CategoryAdapter) Stats(ctx context.Context, id int64) (storefront.CategoryStats, error) {
	var s celler.CategoryStats
	if err := a.client.Get(ctx, idPath(categoriesPath, id, "stats"), nil, &s); err != nil {
		return storefront.CategoryStats{}, mapError(err, nil, "Failed to get category stats")
	}
	return transform.CategoryStats(s), nil
}

func (a *CategoryAdapter) all(ctx context.Context, path string, q url.Values) ([]storefront.Category, error) {
	list, err := fetchList[celler.Category](ctx, a.client, path, q)
	if err != nil {
		return nil, mapError(err, nil, categoriesFailed)
	}
	return transform.Map(list.Items, transform.Category), nil
}

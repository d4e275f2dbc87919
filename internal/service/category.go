package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/cache"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
)

// CategoryService implements the category operations.
type CategoryService struct {
	categories adapter.CategoryAdapter
	snapshots  snapshots
	logger     *slog.Logger
}

// NewCategoryService creates a new category service. store may be nil.
func NewCategoryService(categories adapter.CategoryAdapter, store cache.Store, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		snapshots:  newSnapshots(store, logger),
		logger:     logger,
	}
}

// List returns a page of categories. It never fails.
func (s *CategoryService) List(ctx context.Context, p adapter.CategoryListParams) storefront.Page[storefront.Category] {
	q := query(
		"page", strconv.Itoa(p.Page),
		"limit", strconv.Itoa(p.Limit),
		"search", p.Search,
		"parent", p.Parent,
	)
	return readThrough(ctx, s.snapshots, "categories", q,
		func() (storefront.Page[storefront.Category], error) { return s.categories.List(ctx, p) },
		transform.EmptyPage[storefront.Category](transform.RouteCategories),
	)
}

// Get returns a category by id or slug.
func (s *CategoryService) Get(ctx context.Context, param, language string) (storefront.Category, error) {
	return s.categories.Get(ctx, param, language)
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, in storefront.CategoryInput) (storefront.Category, error) {
	return s.categories.Create(ctx, in)
}

// Update replaces a category.
func (s *CategoryService) Update(ctx context.Context, id int64, in storefront.CategoryInput) (storefront.Category, error) {
	return s.categories.Update(ctx, id, in)
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int64) (storefront.CoreResponse, error) {
	if err := s.categories.Delete(ctx, id); err != nil {
		return storefront.CoreResponse{}, err
	}
	return storefront.CoreResponse{
		Success: true,
		Message: fmt.Sprintf("Category #%d has been successfully removed", id),
	}, nil
}

// Liquor returns the liquor categories.
func (s *CategoryService) Liquor(ctx context.Context, limit int) []storefront.Category {
	return s.all(ctx, "categories_liquor", query("limit", strconv.Itoa(limit)), func() ([]storefront.Category, error) {
		return s.categories.Liquor(ctx, limit)
	})
}

// Hierarchy returns the category tree.
func (s *CategoryService) Hierarchy(ctx context.Context) []storefront.Category {
	return s.all(ctx, "categories_hierarchy", nil, func() ([]storefront.Category, error) {
		return s.categories.Hierarchy(ctx)
	})
}

// ByType returns the categories of one liquor type.
func (s *CategoryService) ByType(ctx context.Context, liquorType string) []storefront.Category {
	return s.all(ctx, "categories_type", query("type", liquorType), func() ([]storefront.Category, error) {
		return s.categories.ByType(ctx, liquorType)
	})
}

// Parents returns the root categories.
func (s *CategoryService) Parents(ctx context.Context) []storefront.Category {
	return s.all(ctx, "categories_parents", nil, func() ([]storefront.Category, error) {
		return s.categories.Parents(ctx)
	})
}

// Children returns the direct children of a category.
func (s *CategoryService) Children(ctx context.Context, parentID int64) []storefront.Category {
	q := query("parent", strconv.FormatInt(parentID, 10))
	return s.all(ctx, "categories_children", q, func() ([]storefront.Category, error) {
		return s.categories.Children(ctx, parentID)
	})
}

// Search finds categories by text and liquor filters.
func (s *CategoryService) Search(ctx context.Context, p adapter.CategorySearchParams) []storefront.Category {
	q := query(
		"q", p.Query,
		"liquor_type", p.LiquorType,
		"origin", p.Origin,
		"has_products", p.HasProducts,
		"limit", strconv.Itoa(p.Limit),
	)
	return s.all(ctx, "categories_search", q, func() ([]storefront.Category, error) {
		return s.categories.Search(ctx, p)
	})
}

// Stats returns product statistics for a category, or zeros when the
// upstream cannot answer.
func (s *CategoryService) Stats(ctx context.Context, id int64) storefront.CategoryStats {
	stats, err := s.categories.Stats(ctx, id)
	if err != nil {
		fallback(ctx, s.logger, "category_stats", err)
		return storefront.CategoryStats{}
	}
	return stats
}

func (s *CategoryService) all(ctx context.Context, resource string, q url.Values, fetch func() ([]storefront.Category, error)) []storefront.Category {
	return readThrough(ctx, s.snapshots, resource, q, fetch, []storefront.Category{})
}

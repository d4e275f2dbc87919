package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/cache"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

func newTestStore(t *testing.T) cache.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisStore(client, time.Minute)
}

func unavailable() error {
	return apperrors.ServiceUnavailable(upstream.NetworkMessage, upstream.ErrNetworkUnreachable)
}

func categoryPage(names ...string) storefront.Page[storefront.Category] {
	p := storefront.Page[storefront.Category]{Data: []storefront.Category{}}
	for i, n := range names {
		p.Data = append(p.Data, storefront.Category{ID: int64(i + 1), Name: n, Slug: n})
	}
	p.Total, p.Count, p.CurrentPage, p.LastPage, p.PerPage = len(names), len(names), 1, 1, 15
	return p
}

func TestCategoryService_ListServesSnapshotAfterFailure(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, newTestStore(t), newTestLogger())
	ctx := context.Background()
	params := adapter.CategoryListParams{Page: 1, Limit: 15, Parent: "null"}

	fresh := categoryPage("wine", "whisky")
	categories.On("List", ctx, params).Return(fresh, nil).Once()
	categories.On("List", ctx, params).Return(storefront.Page[storefront.Category]{}, unavailable()).Once()

	before := testutil.ToFloat64(fallbacksTotal.WithLabelValues("categories"))

	assert.Equal(t, fresh, svc.List(ctx, params))
	got := svc.List(ctx, params)

	assert.Equal(t, fresh, got)
	assert.Equal(t, before+1, testutil.ToFloat64(fallbacksTotal.WithLabelValues("categories")))
	categories.AssertExpectations(t)
}

func TestCategoryService_ListEmptyWithoutSnapshot(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, nil, newTestLogger())
	ctx := context.Background()
	params := adapter.CategoryListParams{Page: 3, Search: "name:gin"}

	categories.On("List", ctx, params).Return(storefront.Page[storefront.Category]{}, unavailable())

	got := svc.List(ctx, params)

	require.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, "/categories?page=1", got.FirstPageURL)
}

func TestCategoryService_SnapshotsAreKeyedByQuery(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, newTestStore(t), newTestLogger())
	ctx := context.Background()

	categories.On("ByType", ctx, "red").Return([]storefront.Category{{ID: 1, Name: "Merlot"}}, nil).Once()
	categories.On("ByType", ctx, "white").Return(nil, unavailable()).Once()

	assert.Len(t, svc.ByType(ctx, "red"), 1)
	got := svc.ByType(ctx, "white")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoryService_ArrayReadsFallBackToEmpty(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, nil, newTestLogger())
	ctx := context.Background()

	categories.On("Liquor", ctx, 50).Return(nil, unavailable())
	categories.On("Hierarchy", ctx).Return(nil, unavailable())
	categories.On("Parents", ctx).Return(nil, unavailable())
	categories.On("Children", ctx, int64(4)).Return(nil, unavailable())
	categories.On("Search", ctx, mock.Anything).Return(nil, unavailable())

	for name, got := range map[string][]storefront.Category{
		"liquor":    svc.Liquor(ctx, 50),
		"hierarchy": svc.Hierarchy(ctx),
		"parents":   svc.Parents(ctx),
		"children":  svc.Children(ctx, 4),
		"search":    svc.Search(ctx, adapter.CategorySearchParams{Query: "rum"}),
	} {
		assert.NotNil(t, got, name)
		assert.Empty(t, got, name)
	}
	categories.AssertExpectations(t)
}

func TestCategoryService_StatsFallBackToZeros(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, nil, newTestLogger())
	ctx := context.Background()

	categories.On("Stats", ctx, int64(3)).Return(storefront.CategoryStats{}, unavailable())

	assert.Equal(t, storefront.CategoryStats{}, svc.Stats(ctx, 3))
}

func TestCategoryService_GetPropagatesError(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, nil, newTestLogger())
	ctx := context.Background()

	categories.On("Get", ctx, "ghost", "").Return(storefront.Category{}, apperrors.NotFound(`Category with identifier "ghost" not found`))

	_, err := svc.Get(ctx, "ghost", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_Delete(t *testing.T) {
	categories := new(mockCategoryAdapter)
	svc := NewCategoryService(categories, nil, newTestLogger())
	ctx := context.Background()

	categories.On("Delete", ctx, int64(6)).Return(nil)

	got, err := svc.Delete(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, storefront.CoreResponse{Success: true, Message: "Category #6 has been successfully removed"}, got)
}

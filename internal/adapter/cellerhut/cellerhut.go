// Package cellerhut implements the resource adapters against the Celler Hut
// e-commerce API.
package cellerhut

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/search"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
)

const (
	authPath       = "/ecommerce/auth"
	usersPath      = "/ecommerce/users"
	categoriesPath = "/ecommerce/categories"
	productsPath   = "/ecommerce/products"
	ordersPath     = "/ecommerce/orders"
)

// fetchList reads a list and fills pagination the upstream left out from the
// page and limit that were asked for.
func fetchList[T any](ctx context.Context, c *upstream.Client, path string, q url.Values) (celler.List[T], error) {
	raw, err := c.List(ctx, path, q)
	if err != nil {
		return celler.List[T]{}, err
	}
	list, err := celler.DecodeList[T](raw)
	if err != nil {
		return celler.List[T]{}, err
	}
	list.Meta = list.Meta.WithRequest(intParam(q, "page"), intParam(q, "limit"))
	return list, nil
}

func pageQuery(page, limit, defaultLimit int) url.Values {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

func limitQuery(limit, defaultLimit int) url.Values {
	if limit <= 0 {
		limit = defaultLimit
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func intParam(q url.Values, key string) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return 0
	}
	return v
}

func setIf(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// applySearch parses a search DSL string into q. Rejected keys are logged
// and dropped.
func applySearch(ctx context.Context, q url.Values, input string, table search.Table) {
	if input == "" {
		return
	}
	params, rejected := search.Parse(input, table)
	params.Apply(q)
	if len(rejected) > 0 {
		logger.FromContext(ctx).DebugContext(ctx, "search filters dropped",
			slog.Any("keys", rejected),
		)
	}
}

func idPath(base string, id int64, suffix ...string) string {
	p := base + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

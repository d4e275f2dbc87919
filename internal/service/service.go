// Package service applies the storefront fallback policy on top of the
// upstream adapters. List reads degrade to cached or empty results; single
// reads and writes return the mapped upstream error.
package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/cache"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
)

var fallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_fallbacks_total",
		Help: "Storefront responses served from a fallback after an upstream failure",
	},
	[]string{"operation"},
)

// fallback records that op answered with a fallback value because err.
func fallback(ctx context.Context, l *slog.Logger, op string, err error) {
	fallbacksTotal.WithLabelValues(op).Inc()
	logger.WithContext(ctx, l).WarnContext(ctx, "upstream call failed, serving fallback",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// requireToken rejects calls that would reach a protected upstream endpoint
// without a caller token.
func requireToken(ctx context.Context) error {
	if upstream.TokenFromContext(ctx) == "" {
		return apperrors.TokenRequired()
	}
	return nil
}

// snapshots wraps a cache.Store with logging. Cache failures never fail a
// request.
type snapshots struct {
	store  cache.Store
	logger *slog.Logger
}

func newSnapshots(store cache.Store, l *slog.Logger) snapshots {
	if store == nil {
		store = cache.Noop{}
	}
	return snapshots{store: store, logger: l}
}

func (s snapshots) save(ctx context.Context, resource string, q url.Values, v any) {
	if err := s.store.Save(ctx, cache.Key(resource, q), v); err != nil {
		logger.WithContext(ctx, s.logger).DebugContext(ctx, "snapshot save failed",
			slog.String("resource", resource),
			slog.String("error", err.Error()),
		)
	}
}

func (s snapshots) load(ctx context.Context, resource string, q url.Values, dst any) bool {
	found, err := s.store.Load(ctx, cache.Key(resource, q), dst)
	if err != nil {
		logger.WithContext(ctx, s.logger).DebugContext(ctx, "snapshot load failed",
			slog.String("resource", resource),
			slog.String("error", err.Error()),
		)
		found = false
	}
	cache.RecordLookup(resource, found)
	return found
}

// outage reports whether err means the upstream could not answer, as
// opposed to turning the caller away.
func outage(err error) bool {
	return apperrors.HTTPStatus(err) >= http.StatusInternalServerError
}

// readThrough runs fetch, keeps a snapshot of each success and answers an
// outage with the last snapshot for the same query. Rejections and misses
// get empty.
func readThrough[T any](ctx context.Context, s snapshots, resource string, q url.Values, fetch func() (T, error), empty T) T {
	v, err := fetch()
	if err == nil {
		s.save(ctx, resource, q, v)
		return v
	}

	fallback(ctx, s.logger, resource, err)
	var cached T
	if outage(err) && s.load(ctx, resource, q, &cached) {
		return cached
	}
	return empty
}

// degrade runs fetch and answers any failure with empty. Nothing is
// snapshotted, so results that depend on the caller's role stay with them.
func degrade[T any](ctx context.Context, l *slog.Logger, op string, fetch func() (T, error), empty T) T {
	v, err := fetch()
	if err != nil {
		fallback(ctx, l, op, err)
		return empty
	}
	return v
}

// query builds a snapshot query from non-empty values given as key, value
// pairs.
func query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	return q
}

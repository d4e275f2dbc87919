// Package cache keeps last-known-good snapshots of list reads so a failed
// upstream call can still be answered with recent data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "snapshot:"

var snapshotLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_snapshot_lookups_total",
		Help: "Snapshot cache lookups made after an upstream failure, by result",
	},
	[]string{"resource", "result"},
)

// Store saves and loads list snapshots.
type Store interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, dst any) (bool, error)
}

// Key builds a snapshot key from the resource name and the upstream query.
// url.Values encodes in sorted key order, so equal queries share a key.
func Key(resource string, query url.Values) string {
	return keyPrefix + resource + ":" + query.Encode()
}

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Save stores v under key with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}

	return nil
}

// Load decodes the snapshot under key into dst. It reports false when no
// snapshot exists.
func (s *RedisStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get snapshot: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return true, nil
}

// Noop is a Store that keeps nothing. It is used when Redis is not
// configured.
type Noop struct{}

// Save discards v.
func (Noop) Save(context.Context, string, any) error { return nil }

// Load never finds a snapshot.
func (Noop) Load(context.Context, string, any) (bool, error) { return false, nil }

// RecordLookup counts a fallback snapshot lookup.
func RecordLookup(resource string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	snapshotLookupsTotal.WithLabelValues(resource, result).Inc()
}

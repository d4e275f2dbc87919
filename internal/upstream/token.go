package upstream

import (
	"context"
	"sync"
)

type tokenKey struct{}

// WithToken returns a copy of ctx carrying the bearer token to forward on
// upstream calls made with it. An empty token leaves ctx unchanged.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the per-request bearer token, if any.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

// TokenStore holds the process-wide default token used when a request
// carries none. It is set at startup and read concurrently afterwards.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates a store seeded with token.
func NewTokenStore(token string) *TokenStore {
	return &TokenStore{token: token}
}

// Token returns the stored token.
func (s *TokenStore) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// resolveToken picks the token for a call: the request's own token wins
// over the store default.
func resolveToken(ctx context.Context, store *TokenStore) string {
	if t := TokenFromContext(ctx); t != "" {
		return t
	}
	return store.Token()
}

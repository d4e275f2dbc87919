package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKeyType string

const (
	tokenKey  contextKeyType = "bearer_token"
	userIDKey contextKeyType = "user_id"
	roleKey   contextKeyType = "role"
)

// Claims are the identity fields read from an upstream-issued bearer token.
// The signature is never checked here; the upstream API stays the authority.
type Claims struct {
	UserID string
	Role   string
}

// BearerToken captures the bearer token from the Authorization header and
// stores it in the request context for outbound calls. Requests without a
// token pass through untouched.
//
// When the token parses as a JWT, its subject and role are added to the
// context so request logs can be attributed. Malformed tokens are forwarded
// as-is; the upstream decides whether they are valid.
func BearerToken(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, token)
			if claims, err := ParseClaims(token); err == nil {
				ctx = context.WithValue(ctx, userIDKey, claims.UserID)
				ctx = context.WithValue(ctx, roleKey, claims.Role)
			} else {
				l.DebugContext(ctx, "bearer token is not a readable jwt", slog.String("error", err.Error()))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseClaims extracts the subject and role from a JWT without verifying it.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, err
	}

	c := Claims{UserID: stringClaim(mc, "sub"), Role: stringClaim(mc, "role")}
	if c.UserID == "" {
		c.UserID = stringClaim(mc, "user_id")
	}
	return c, nil
}

func stringClaim(mc jwt.MapClaims, key string) string {
	switch v := mc[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func tokenFromHeader(h string) string {
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// TokenFromContext returns the bearer token captured by BearerToken.
func TokenFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey).(string); ok {
		return t
	}
	return ""
}

// UserIDFromContext extracts the user ID from the request context.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// RoleFromContext extracts the user role from the request context.
func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

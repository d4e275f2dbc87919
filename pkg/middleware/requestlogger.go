package middleware

import (
	"log/slog"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/logger"
)

// RequestLogger builds a request-scoped logger enriched with correlation_id,
// user_id, role, trace_id and span_id, and stores it in the context for
// logger.FromContext.
//
// Mount it after RequestLogging, Tracing and BearerToken.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := UserIDFromContext(ctx); userID != "" {
				ctx = logger.WithUserID(ctx, userID)
			}

			enriched := logger.WithContext(ctx, base)
			if role := RoleFromContext(ctx); role != "" {
				enriched = enriched.With(slog.String("role", role))
			}

			ctx = logger.NewContext(ctx, enriched)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

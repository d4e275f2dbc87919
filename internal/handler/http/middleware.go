package http

import (
	"net/http"
	"strings"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/middleware"
)

// ForwardToken hands the caller's bearer token, captured by
// middleware.BearerToken, to the upstream client for calls made while
// serving the request.
func ForwardToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := middleware.TokenFromContext(r.Context())
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(upstream.WithToken(r.Context(), token)))
	})
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.ErrorResponse{
					StatusCode: http.StatusUnsupportedMediaType,
					Code:       "UNSUPPORTED_MEDIA_TYPE",
					Message:    "Content-Type must be application/json",
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

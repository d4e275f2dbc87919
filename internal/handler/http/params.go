package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// pathID reads a positive integer route parameter.
func pathID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s: %q", key, raw))
	}
	return id, nil
}

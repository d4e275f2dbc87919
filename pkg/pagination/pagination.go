package pagination

import (
	"net/http"
	"strconv"
)

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Params holds the page and page size read from a storefront query string.
type Params struct {
	Page  int
	Limit int
}

// FromRequest reads "page" and "limit" from the query string. Missing,
// malformed or out-of-range values fall back to page 1 and defaultLimit;
// limits above MaxLimit are clamped.
func FromRequest(r *http.Request, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}
	q := r.URL.Query()

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}

	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = min(v, MaxLimit)
	}

	return p
}

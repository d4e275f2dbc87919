package transform

import (
	"fmt"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// Storefront routes used when synthesizing paginator URLs.
const (
	RouteProducts   = "/products"
	RouteCategories = "/categories"
	RouteOrders     = "/orders"
	RouteUsers      = "/users"
	RouteAddresses  = "/address"
	RouteDownloads  = "/downloads"
	RouteStatuses   = "/order-status"
)

const (
	defaultCurrentPage = 1
	defaultPerPage     = 15
)

func firstSet(vals ...*int) (int, bool) {
	for _, v := range vals {
		if v != nil && *v > 0 {
			return *v, true
		}
	}
	return 0, false
}

// Pagination reconciles upstream pagination into the storefront paginator.
// itemCount stands in for total when the upstream sent none.
func Pagination(meta celler.PageMeta, itemCount int, route string) storefront.Paginator {
	current, ok := firstSet(meta.CurrentPage, meta.CurrentPageCamel, meta.Page)
	if !ok {
		current = defaultCurrentPage
	}
	perPage, ok := firstSet(meta.PerPage, meta.PerPageCamel, meta.Limit)
	if !ok {
		perPage = defaultPerPage
	}

	total := itemCount
	if meta.Total != nil && *meta.Total >= 0 {
		total = *meta.Total
	}

	lastPage, ok := firstSet(meta.LastPage, meta.LastPageCamel, meta.TotalPages)
	if !ok {
		lastPage = max(1, (total+perPage-1)/perPage)
	}

	// A page past the end is reported as the last page. Upstream item
	// bounds only hold for the page it actually served.
	clamped := current > lastPage
	current = min(current, lastPage)

	firstItem, lastItem := 0, 0
	if total > 0 {
		if v, ok := firstSet(meta.FirstItemSnake, meta.FirstItem); ok && !clamped {
			firstItem = v
		} else {
			firstItem = (current-1)*perPage + 1
		}
		if v, ok := firstSet(meta.LastItemSnake, meta.LastItem); ok && !clamped {
			lastItem = v
		} else {
			lastItem = min(current*perPage, total)
		}
	}

	p := storefront.Paginator{
		Count:        total,
		CurrentPage:  current,
		FirstItem:    firstItem,
		LastItem:     lastItem,
		LastPage:     lastPage,
		PerPage:      perPage,
		Total:        total,
		FirstPageURL: pageURL(route, 1),
		LastPageURL:  pageURL(route, lastPage),
	}
	if current < lastPage {
		next := pageURL(route, current+1)
		p.NextPageURL = &next
	}
	if current > 1 {
		prev := pageURL(route, current-1)
		p.PrevPageURL = &prev
	}
	return p
}

func pageURL(route string, page int) string {
	return fmt.Sprintf("%s?page=%d", route, page)
}

// Page maps every item of an upstream list and attaches the reconciled
// paginator.
func Page[U, S any](list celler.List[U], route string, fn func(U) S) storefront.Page[S] {
	return storefront.Page[S]{
		Data:      Map(list.Items, fn),
		Paginator: Pagination(list.Meta, len(list.Items), route),
	}
}

// EmptyPage is the valid empty result returned when a list read fails.
func EmptyPage[S any](route string) storefront.Page[S] {
	return storefront.Page[S]{
		Data:      []S{},
		Paginator: Pagination(celler.PageMeta{}, 0, route),
	}
}

// Map applies fn to every element and never returns nil.
func Map[U, S any](in []U, fn func(U) S) []S {
	out := make([]S, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

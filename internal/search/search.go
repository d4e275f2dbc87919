// Package search parses the storefront's key:value;key:value filter strings
// into typed upstream query parameters. Each resource has a fixed table of
// accepted keys; anything else is dropped and reported to the caller.
package search

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var errNonFinite = errors.New("search: non-finite number")

// Kind is how a filter value is parsed.
type Kind int

const (
	String Kind = iota
	Int
	Float
	// Nullable is a string where the literal "null" means an actual null.
	Nullable
)

// NullLiteral is the value that stands for null in a Nullable filter.
const NullLiteral = "null"

// Filter maps a storefront key to its upstream parameter.
type Filter struct {
	Upstream string
	Kind     Kind
}

// Table is the accepted filter set for one resource.
type Table map[string]Filter

// Resource filter tables.
var (
	Products = Table{
		"name":            {Upstream: "search", Kind: String},
		"categories":      {Upstream: "category", Kind: String},
		"type":            {Upstream: "type", Kind: String},
		"status":          {Upstream: "status", Kind: String},
		"shop_id":         {Upstream: "shop_id", Kind: Int},
		"price_min":       {Upstream: "price_min", Kind: Float},
		"price_max":       {Upstream: "price_max", Kind: Float},
		"alcohol_content": {Upstream: "alcohol_content", Kind: Float},
		"vintage":         {Upstream: "vintage", Kind: Int},
		"volume":          {Upstream: "volume", Kind: String},
		"origin":          {Upstream: "origin", Kind: String},
		"slug":            {Upstream: "slug", Kind: String},
		"tags":            {Upstream: "tags", Kind: String},
		"manufacturer":    {Upstream: "manufacturer", Kind: String},
		"author":          {Upstream: "author", Kind: String},
	}

	Categories = Table{
		"name":     {Upstream: "search", Kind: String},
		"type":     {Upstream: "liquor_type", Kind: String},
		"parent":   {Upstream: "parent_id", Kind: Nullable},
		"slug":     {Upstream: "slug", Kind: String},
		"language": {Upstream: "language", Kind: String},
	}

	Orders = Table{
		"tracking_number": {Upstream: "tracking_number", Kind: String},
		"customer_id":     {Upstream: "customer_id", Kind: Int},
		"shop_id":         {Upstream: "shop_id", Kind: Int},
		"name":            {Upstream: "search", Kind: String},
	}

	Users = Table{
		"name":  {Upstream: "search", Kind: String},
		"email": {Upstream: "email", Kind: String},
	}
)

// Value is a parsed filter value.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Null  bool
}

// Encode renders the value for a query string. Floats use the shortest
// representation and null renders empty.
func (v Value) Encode() string {
	switch {
	case v.Null:
		return ""
	case v.Kind == Int:
		return strconv.FormatInt(v.Int, 10)
	case v.Kind == Float:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Str
	}
}

// Params are parsed filters keyed by upstream parameter name.
type Params map[string]Value

// Apply writes every parameter into q, replacing existing values. A null
// value removes its key so the upstream sees no parameter at all.
func (p Params) Apply(q url.Values) {
	for k, v := range p {
		if v.Null {
			q.Del(k)
			continue
		}
		q.Set(k, v.Encode())
	}
}

// Has reports whether the upstream parameter key was set.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Parse reads a filter string against table. Segments without ':' are
// skipped; only the first ':' splits so values may contain colons. Unknown
// keys and values that fail to parse are returned in rejected.
func Parse(input string, table Table) (params Params, rejected []string) {
	params = Params{}
	for _, segment := range strings.Split(input, ";") {
		key, raw, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		raw = strings.TrimSpace(raw)
		if key == "" || raw == "" {
			continue
		}

		filter, known := table[key]
		if !known {
			rejected = append(rejected, key)
			continue
		}

		v, err := parseValue(raw, filter.Kind)
		if err != nil {
			rejected = append(rejected, key)
			continue
		}
		params[filter.Upstream] = v
	}
	return params, rejected
}

func parseValue(raw string, kind Kind) (Value, error) {
	v := Value{Kind: kind, Str: raw}
	switch kind {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		v.Int = n
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, errNonFinite
		}
		v.Float = f
	case Nullable:
		v.Null = raw == NullLiteral
	}
	return v, nil
}

package celler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const maxListDepth = 4

// PageMeta is upstream pagination. The upstream is inconsistent about
// spelling, so both snake_case and camelCase are captured.
type PageMeta struct {
	CurrentPage      *int `json:"current_page,omitempty"`
	CurrentPageCamel *int `json:"currentPage,omitempty"`
	Page             *int `json:"page,omitempty"`
	PerPage          *int `json:"per_page,omitempty"`
	PerPageCamel     *int `json:"perPage,omitempty"`
	Limit            *int `json:"limit,omitempty"`
	Total            *int `json:"total,omitempty"`
	LastPage         *int `json:"last_page,omitempty"`
	LastPageCamel    *int `json:"lastPage,omitempty"`
	TotalPages       *int `json:"totalPages,omitempty"`
	FirstItem        *int `json:"firstItem,omitempty"`
	FirstItemSnake   *int `json:"first_item,omitempty"`
	LastItem         *int `json:"lastItem,omitempty"`
	LastItemSnake    *int `json:"last_item,omitempty"`
}

func (m *PageMeta) merge(o *PageMeta) {
	if o == nil {
		return
	}
	set := func(dst **int, src *int) {
		if src != nil {
			*dst = src
		}
	}
	set(&m.CurrentPage, o.CurrentPage)
	set(&m.CurrentPageCamel, o.CurrentPageCamel)
	set(&m.Page, o.Page)
	set(&m.PerPage, o.PerPage)
	set(&m.PerPageCamel, o.PerPageCamel)
	set(&m.Limit, o.Limit)
	set(&m.Total, o.Total)
	set(&m.LastPage, o.LastPage)
	set(&m.LastPageCamel, o.LastPageCamel)
	set(&m.TotalPages, o.TotalPages)
	set(&m.FirstItem, o.FirstItem)
	set(&m.FirstItemSnake, o.FirstItemSnake)
	set(&m.LastItem, o.LastItem)
	set(&m.LastItemSnake, o.LastItemSnake)
}

// List is a decoded upstream list with whatever pagination came with it.
type List[T any] struct {
	Items []T
	Meta  PageMeta
}

type listLevel struct {
	PageMeta
	Data       json.RawMessage `json:"data"`
	Pagination *PageMeta       `json:"pagination"`
	Meta       *PageMeta       `json:"meta"`
}

var errListShape = errors.New("unexpected list shape")

// DecodeList accepts a bare array, {data:[...], ...pagination} or the same
// nested under further data keys, collecting pagination from every level.
func DecodeList[T any](raw json.RawMessage) (List[T], error) {
	out := List[T]{Items: []T{}}
	cur := bytes.TrimSpace(raw)

	for depth := 0; depth < maxListDepth; depth++ {
		if len(cur) == 0 || bytes.Equal(cur, []byte("null")) {
			return out, nil
		}

		switch cur[0] {
		case '[':
			if err := json.Unmarshal(cur, &out.Items); err != nil {
				return out, fmt.Errorf("decode list items: %w", err)
			}
			if out.Items == nil {
				out.Items = []T{}
			}
			return out, nil
		case '{':
			var level listLevel
			if err := json.Unmarshal(cur, &level); err != nil {
				return out, fmt.Errorf("decode list: %w", err)
			}
			out.Meta.merge(&level.PageMeta)
			out.Meta.merge(level.Pagination)
			out.Meta.merge(level.Meta)
			cur = bytes.TrimSpace(level.Data)
		default:
			return out, errListShape
		}
	}
	return out, errListShape
}

// WithRequest fills the page number and size from the outbound request when
// the upstream echoed neither spelling back.
func (m PageMeta) WithRequest(page, limit int) PageMeta {
	if m.CurrentPage == nil && m.CurrentPageCamel == nil && m.Page == nil && page > 0 {
		m.Page = &page
	}
	if m.PerPage == nil && m.PerPageCamel == nil && m.Limit == nil && limit > 0 {
		m.Limit = &limit
	}
	return m
}

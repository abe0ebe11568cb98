// Package listview implements the client-side half of every resource
// list screen: case-insensitive substring search, stable ordering and
// fixed-size pagination over a freshly fetched collection. Everything is
// pure so the screens can recompute from the base collection on each
// keystroke without mutating it.
package listview

import (
	"sort"
	"strings"
)

const DefaultPageSize = 10

// Filter keeps the items whose searched fields contain query,
// case-insensitively. An empty query keeps everything. The input slice
// is never mutated.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append(out, items...)
	}
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// SortStable returns a stably sorted copy. Applied before Filter so
// pagination indices stay consistent across re-filtering.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := append(make([]T, 0, len(items)), items...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Page is one fixed-size slice of a filtered collection.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageCount  int  `json:"page_count"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate slices items into pages of size and returns the requested
// page, clamped into [1, pageCount]. Page count is ceil(len/size) and
// never less than 1, so an empty collection still renders page 1 of 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	pageCount := (len(items) + size - 1) / size
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      append(make([]T, 0, end-start), items[start:end]...),
		Page:       page,
		PageCount:  pageCount,
		PageSize:   size,
		TotalItems: len(items),
		HasPrev:    page > 1,
		HasNext:    page < pageCount,
	}
}

package usecase

import "math"

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Page is one fixed-size slice of a stable-ordered result set plus the
// navigation metadata clients page with.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// normalizePage applies the defaults for absent or non-positive paging
// parameters and returns the limit/offset pair for the repo query.
func normalizePage(page, pageSize int) (p, size, limit, offset int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// NewPage wraps an already-sliced result set with its metadata. A page
// past the end yields empty items with correct metadata, not an error.
func NewPage[T any](items []T, page, pageSize int, total int64) Page[T] {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if items == nil {
		items = []T{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return Page[T]{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

package models

import (
	"errors"
	"fmt"
	"math"
)

// Pagination describes where a page sits in a listing.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

var ErrInconsistentPagination = errors.New("inconsistent pagination")

// NewPagination derives every field from the requested page, the page size
// and the total number of items. page and limit below 1 are treated as 1; a
// page past the end is moved to the last page.
func NewPagination(page, limit, total int) Pagination {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	page = min(page, max(pages, 1))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < pages,
		HasPrevPage:  page > 1,
	}
}

// Offset is the index of the first item on the current page. It saturates at
// math.MaxInt instead of overflowing.
func (p Pagination) Offset() int {
	if p.CurrentPage <= 1 || p.ItemsPerPage <= 0 {
		return 0
	}
	if p.CurrentPage-1 > math.MaxInt/p.ItemsPerPage {
		return math.MaxInt
	}
	return (p.CurrentPage - 1) * p.ItemsPerPage
}

// Validate checks the internal consistency of p. An empty listing (no items,
// no pages) on page 1 is accepted.
func (p Pagination) Validate() error {
	empty := p.TotalItems == 0 && p.TotalPages == 0 && p.CurrentPage <= 1
	if p.CurrentPage > p.TotalPages && !empty {
		return fmt.Errorf("%w: page %d of %d", ErrInconsistentPagination, p.CurrentPage, p.TotalPages)
	}
	if p.HasNextPage != (p.CurrentPage < p.TotalPages) {
		return fmt.Errorf("%w: hasNextPage=%t on page %d of %d", ErrInconsistentPagination, p.HasNextPage, p.CurrentPage, p.TotalPages)
	}
	if p.HasPrevPage != (p.CurrentPage > 1) {
		return fmt.Errorf("%w: hasPrevPage=%t on page %d", ErrInconsistentPagination, p.HasPrevPage, p.CurrentPage)
	}
	return nil
}

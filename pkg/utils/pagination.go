package utils

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultItemPerPage is the page size used by every paginated book view.
const DefaultItemPerPage = 10

// PageLast selects the final page where a view allows it.
const PageLast = "last"

var (
	ErrPageNotInteger = errors.New("page number is not an integer")
	ErrPageTooSmall   = errors.New("page number is less than 1")
	ErrPageEmpty      = errors.New("page contains no results")
)

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// Paginator splits Count items into pages of PerPage. An empty collection
// still has a single, empty first page.
type Paginator struct {
	Count   int64
	PerPage int
}

func NewPaginator(count int64, perPage int) Paginator {
	if perPage < 1 {
		perPage = DefaultItemPerPage
	}
	return Paginator{Count: count, PerPage: perPage}
}

func (p Paginator) NumPages() int {
	pages := CalculateTotalPages(p.Count, p.PerPage)
	if pages == 0 {
		return 1
	}
	return pages
}

// Page validates a raw page parameter. Empty means page 1. When allowLast is
// set the literal "last" resolves to NumPages.
func (p Paginator) Page(raw string, allowLast bool) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	if allowLast && raw == PageLast {
		return p.NumPages(), nil
	}

	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrPageNotInteger
	}
	if number < 1 {
		return 0, ErrPageTooSmall
	}
	if number > p.NumPages() {
		return 0, ErrPageEmpty
	}
	return number, nil
}

func (p Paginator) Offset(page int) int {
	return CalculateOffset(page, p.PerPage)
}

func (p Paginator) Limit() int {
	return p.PerPage
}

// StartIndex is the 1-based index of the first item on page, 0 when empty.
func (p Paginator) StartIndex(page int) int64 {
	if p.Count == 0 {
		return 0
	}
	return int64(p.Offset(page)) + 1
}

// EndIndex is the 1-based index of the last item on page.
func (p Paginator) EndIndex(page int) int64 {
	if page == p.NumPages() {
		return p.Count
	}
	return int64(page * p.PerPage)
}

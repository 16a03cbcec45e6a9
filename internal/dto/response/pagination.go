package response

import "book-catalog/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta describes one page of a paginated collection.
type PaginationMeta struct {
	Total        int64 `json:"total"`
	Page         int   `json:"page"`
	PerPage      int   `json:"per_page"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
	StartIndex   int64 `json:"start_index"`
	EndIndex     int64 `json:"end_index"`
}

func NewPaginationMeta(p utils.Paginator, page int) PaginationMeta {
	meta := PaginationMeta{
		Total:       p.Count,
		Page:        page,
		PerPage:     p.PerPage,
		TotalPages:  p.NumPages(),
		HasNext:     page < p.NumPages(),
		HasPrevious: page > 1,
		StartIndex:  p.StartIndex(page),
		EndIndex:    p.EndIndex(page),
	}

	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	if meta.HasPrevious {
		prev := page - 1
		meta.PreviousPage = &prev
	}

	return meta
}

func NewPaginatedResponse[T any](data []T, p utils.Paginator, page int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data:       data,
		Pagination: NewPaginationMeta(p, page),
	}
}

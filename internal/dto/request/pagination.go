package request

// PaginatedRequest carries the raw page query parameter; the paginator owning
// the collection decides whether it is valid.
type PaginatedRequest struct {
	Page      string `json:"page"`
	AllowLast bool   `json:"-"`
}

package request

import "strings"

// BookRequest is the create/update form. The owner is not part of it and is
// always taken from the authenticated caller.
type BookRequest struct {
	Title     string `json:"title" validate:"required,notblank,max=255"`
	Text      string `json:"text" validate:"required,notblank"`
	Thumbnail string `json:"thumbnail" validate:"required,notblank,max=255"`
	Category  string `json:"category" validate:"required,notblank,max=100"`
}

// Normalize strips surrounding whitespace so blank input fails validation
// and stored values carry no padding.
func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
	r.Thumbnail = strings.TrimSpace(r.Thumbnail)
	r.Category = strings.TrimSpace(r.Category)
}

// BookFormFields lists the editable book fields in form order.
var BookFormFields = []string{"title", "text", "thumbnail", "category"}

package request

import "strings"

// CreateReviewRequest is the review form. The target book comes from the URL
// and the owner from the session.
type CreateReviewRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
	Text  string `json:"text" validate:"required,notblank"`
	Rate  int    `json:"rate" validate:"required,min=1,max=5"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
}

var ReviewFormFields = []string{"book", "title", "text", "rate"}

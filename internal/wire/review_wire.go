package wire

import (
	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReview registers review creation on the authenticated /books subrouter.
// The book comes from the path, the owner from the session.
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Get("/{id}/review", reviewHandler.ReviewForm)
	r.Post("/{id}/review", reviewHandler.CreateReview)
}

package wire

import (
	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireIndex(r chi.Router, indexHandler *adaptor.IndexHandler) {
	// GET / - Newest books and rating ranking (public)
	r.Get("/", indexHandler.Index)
}

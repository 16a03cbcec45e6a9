package wire

import (
	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBook registers the book routes on the authenticated /books subrouter.
func wireBook(r chi.Router, bookHandler *adaptor.BookHandler) {
	r.Get("/", bookHandler.ListBooks)

	r.Get("/create", bookHandler.CreateForm)
	r.Post("/create", bookHandler.CreateBook)

	r.Get("/{id}", bookHandler.GetBook)

	// Owner only, checked in the service
	r.Get("/{id}/update", bookHandler.UpdateForm)
	r.Post("/{id}/update", bookHandler.UpdateBook)
	r.Put("/{id}/update", bookHandler.UpdateBook)

	r.Get("/{id}/delete", bookHandler.DeleteConfirm)
	r.Post("/{id}/delete", bookHandler.DeleteBook)
	r.Delete("/{id}/delete", bookHandler.DeleteBook)
}

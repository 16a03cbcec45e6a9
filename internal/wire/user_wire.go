package wire

import (
	"net/http"

	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	// GET /user/profile - Own profile with book and review counts
	r.With(auth).Get("/user/profile", userHandler.GetProfile)
}

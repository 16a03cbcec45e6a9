package wire

import (
	"net/http"

	"book-catalog/internal/adaptor"
	"book-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/logout", authHandler.Logout)
}

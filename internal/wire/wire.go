package wire

import (
	"context"
	"net/http"
	"time"

	"book-catalog/internal/adaptor"
	"book-catalog/internal/data/repository"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/middleware"
	"book-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the assembled router and the background workers it depends on.
type App struct {
	Router         *chi.Mux
	RateLimiter    *middleware.RateLimiter
	SessionSweeper *usecase.SessionSweeper
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit, logger)

	auth := middleware.AuthSession(repo.Session, config.App.LoginURL, config.Session.CookieName, logger)

	return &App{
		Router:         setupRouter(handler, auth, limiter, repo, config, logger),
		RateLimiter:    limiter,
		SessionSweeper: usecase.NewSessionSweeper(repo, config.Session, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	auth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	if config.App.TrustProxy {
		// Only when a reverse proxy owns the forwarding headers
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "Method not allowed", nil, nil)
	})

	// Apply routes
	wireIndex(r, handler.Index)
	wireAuth(r, handler.Auth, auth, limiter)
	wireUser(r, handler.User, auth)
	r.Route("/books", func(r chi.Router) {
		r.Use(auth)

		wireBook(r, handler.Book)
		wireReview(r, handler.Review)
	})
	wireHealth(r, db, logger)

	return r
}

func wireHealth(r chi.Router, db Pinger, logger *zap.Logger) {
	// Liveness
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Readiness
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}

		utils.ResponseSuccess(w, "ready", nil)
	})
}

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"book-catalog/internal/data/repository"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession resolves the session token from the Authorization header or the
// session cookie. Callers without a valid session are redirected to loginURL
// with the requested path in the next parameter.
func AuthSession(sessionRepo repository.SessionRepository, loginURL, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				redirectToLogin(w, r, loginURL)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				redirectToLogin(w, r, loginURL)
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers "Authorization: Bearer <token>" over the cookie.
func extractToken(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginURL string) {
	target := loginURL + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusFound)
}

package adaptor

import (
	"net/http"
	"strings"
	"time"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/middleware"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	session utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, session utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: session,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	auth, err := h.service.Register(r.Context(), &req, clientMeta(r))
	if err != nil {
		// never echo the password back
		req.Password = ""
		handleServiceError(w, h.log, err, "register", req)
		return
	}

	h.setSessionCookie(w, auth)
	utils.ResponseCreated(w, "Registration successful", auth)
}

// Login handles POST /login. A local ?next= path turns the answer into a
// redirect back to the page that required authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	auth, err := h.service.Login(r.Context(), &req, clientMeta(r))
	if err != nil {
		req.Password = ""
		handleServiceError(w, h.log, err, "login", req)
		return
	}

	h.setSessionCookie(w, auth)

	if next := r.URL.Query().Get("next"); isLocalPath(next) {
		utils.ResponseSeeOther(w, next, "Login successful", auth)
		return
	}

	utils.ResponseSuccess(w, "Login successful", auth)
}

// Logout handles POST /logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Logout successful", nil)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, auth *response.AuthResponse) {
	if auth == nil || auth.Token == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		MaxAge:   int(time.Until(auth.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clientMeta(r *http.Request) usecase.ClientMeta {
	return usecase.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: middleware.ClientIP(r),
	}
}

// isLocalPath rejects absolute and protocol-relative URLs so next cannot
// send the client off-site.
func isLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.Contains(path, "\\")
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/mocks"
	"book-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		token, ok := utils.GetTokenFromContext(r.Context())
		assert.True(t, ok)

		w.Header().Set("X-User", userID.String())
		w.Header().Set("X-Token", token)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	token := uuid.New().String()
	session := &entity.Session{UserID: userID}

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		setupMock      func(m *mocks.SessionRepository)
		expectedStatus int
		expectedLoc    string
	}{
		{
			name: "bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			setupMock: func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(session, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "session cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session_token", Value: token})
			},
			setupMock: func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(session, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "anonymous is redirected to login",
			setupRequest:   func(r *http.Request) {},
			setupMock:      func(m *mocks.SessionRepository) {},
			expectedStatus: http.StatusFound,
			expectedLoc:    "/login?next=%2Fbooks%3Fpage%3D2",
		},
		{
			name: "malformed header is anonymous",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Token "+token)
			},
			setupMock:      func(m *mocks.SessionRepository) {},
			expectedStatus: http.StatusFound,
			expectedLoc:    "/login?next=%2Fbooks%3Fpage%3D2",
		},
		{
			name: "expired session is redirected",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			setupMock: func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(nil, nil)
			},
			expectedStatus: http.StatusFound,
			expectedLoc:    "/login?next=%2Fbooks%3Fpage%3D2",
		},
		{
			name: "store failure",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			setupMock: func(m *mocks.SessionRepository) {
				m.On("FindValidSession", mock.Anything, token).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(mocks.SessionRepository)
			tt.setupMock(sessions)

			handler := AuthSession(sessions, "/login", "session_token", zap.NewNop())(echoUser(t))

			req := httptest.NewRequest(http.MethodGet, "/books?page=2", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedLoc != "" {
				assert.Equal(t, tt.expectedLoc, w.Header().Get("Location"))
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Header().Get("X-User"))
				assert.Equal(t, token, w.Header().Get("X-Token"))
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestExtractToken_HeaderWinsOverCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	req.Header.Set("Authorization", "bearer header-token")
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})

	assert.Equal(t, "header-token", extractToken(req, "session_token"))
}

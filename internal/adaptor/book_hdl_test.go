package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/internal/usecase"
	"book-catalog/internal/usecase/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var validBookBody = map[string]any{
	"title":     "Concurrency in Go",
	"text":      "Tools and techniques",
	"thumbnail": "cig.png",
	"category":  "programming",
}

func TestBookHandler_ListBooks(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(m *mocks.BookService)
		expectedStatus int
	}{
		{
			name:   "success with last page",
			target: "/books?page=last",
			setupMock: func(m *mocks.BookService) {
				m.On("ListBooks", mock.Anything, &request.PaginatedRequest{Page: "last", AllowLast: true}).
					Return(&response.PaginatedResponse[response.BookResponse]{Data: []response.BookResponse{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "invalid page is not found",
			target: "/books?page=abc",
			setupMock: func(m *mocks.BookService) {
				m.On("ListBooks", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: page number is not an integer", usecase.ErrInvalidPage))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "store failure",
			target: "/books",
			setupMock: func(m *mocks.BookService) {
				m.On("ListBooks", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mocks.BookService)
			tt.setupMock(service)
			h := NewBookHandler(service, zap.NewNop())

			w := httptest.NewRecorder()
			h.ListBooks(w, newRequest(t, http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestBookHandler_GetBook(t *testing.T) {
	t.Run("non numeric id is not found", func(t *testing.T) {
		service := new(mocks.BookService)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.GetBook(w, withID(newRequest(t, http.MethodGet, "/books/abc", nil), "abc"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		service.AssertNotCalled(t, "GetBook", mock.Anything, mock.Anything)
	})

	t.Run("missing book", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("GetBook", mock.Anything, int64(9)).Return(nil, fmt.Errorf("book 9 %w", usecase.ErrNotFound))
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.GetBook(w, withID(newRequest(t, http.MethodGet, "/books/9", nil), "9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("GetBook", mock.Anything, int64(1)).Return(&response.BookDetailResponse{
			BookResponse: response.BookResponse{ID: 1, Title: "Go"},
		}, nil)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.GetBook(w, withID(newRequest(t, http.MethodGet, "/books/1", nil), "1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResponse(t, w).Status)
	})
}

func TestBookHandler_CreateBook(t *testing.T) {
	caller := uuid.New()

	t.Run("redirects to list", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("CreateBook", mock.Anything, caller, mock.MatchedBy(func(req *request.BookRequest) bool {
			return req.Title == "Concurrency in Go"
		})).Return(&response.BookResponse{ID: 5}, nil)
		h := NewBookHandler(service, zap.NewNop())

		body := map[string]any{"user_id": uuid.New().String()}
		for k, v := range validBookBody {
			body[k] = v
		}

		w := httptest.NewRecorder()
		h.CreateBook(w, withUser(newRequest(t, http.MethodPost, "/books/create", body), caller))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/books", w.Header().Get("Location"))
		service.AssertExpectations(t)
	})

	t.Run("validation failure echoes the form", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("CreateBook", mock.Anything, caller, mock.Anything).
			Return(nil, &usecase.ValidationError{Fields: map[string]string{"title": "This field is required"}})
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.CreateBook(w, withUser(newRequest(t, http.MethodPost, "/books/create", map[string]any{"text": "draft"}), caller))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Status)
		assert.Equal(t, "draft", resp.Data.(map[string]any)["text"])
		assert.Equal(t, "This field is required", resp.Errors.(map[string]any)["title"])
	})

	t.Run("malformed body", func(t *testing.T) {
		service := new(mocks.BookService)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.CreateBook(w, withUser(newRequest(t, http.MethodPost, "/books/create", "{"), caller))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookHandler_UpdateBook(t *testing.T) {
	caller := uuid.New()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "owner", err: nil, expectedStatus: http.StatusSeeOther},
		{name: "non owner", err: fmt.Errorf("book 1: %w", usecase.ErrForbidden), expectedStatus: http.StatusForbidden},
		{name: "missing", err: fmt.Errorf("book 1 %w", usecase.ErrNotFound), expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mocks.BookService)
			if tt.err != nil {
				service.On("UpdateBook", mock.Anything, int64(1), caller, mock.Anything).Return(nil, tt.err)
			} else {
				service.On("UpdateBook", mock.Anything, int64(1), caller, mock.Anything).Return(&response.BookResponse{ID: 1}, nil)
			}
			h := NewBookHandler(service, zap.NewNop())

			req := withUser(withID(newRequest(t, http.MethodPut, "/books/1/update", validBookBody), "1"), caller)
			w := httptest.NewRecorder()
			h.UpdateBook(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/books/1", w.Header().Get("Location"))
			}
		})
	}
}

func TestBookHandler_UpdateForm(t *testing.T) {
	caller := uuid.New()

	service := new(mocks.BookService)
	service.On("GetBookForUpdate", mock.Anything, int64(1), caller).Return(nil, usecase.ErrForbidden)
	h := NewBookHandler(service, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateForm(w, withUser(withID(newRequest(t, http.MethodGet, "/books/1/update", nil), "1"), caller))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookHandler_Delete(t *testing.T) {
	caller := uuid.New()

	t.Run("confirmation does not delete", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("GetBookForDelete", mock.Anything, int64(1), caller).
			Return(&response.BookDeleteConfirmResponse{ReviewCount: 2}, nil)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.DeleteConfirm(w, withUser(withID(newRequest(t, http.MethodGet, "/books/1/delete", nil), "1"), caller))

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertNotCalled(t, "DeleteBook", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("commit redirects to list", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("DeleteBook", mock.Anything, int64(1), caller).Return(nil)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.DeleteBook(w, withUser(withID(newRequest(t, http.MethodPost, "/books/1/delete", nil), "1"), caller))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/books", w.Header().Get("Location"))
	})

	t.Run("non owner", func(t *testing.T) {
		service := new(mocks.BookService)
		service.On("DeleteBook", mock.Anything, int64(1), caller).Return(usecase.ErrForbidden)
		h := NewBookHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.DeleteBook(w, withUser(withID(newRequest(t, http.MethodDelete, "/books/1/delete", nil), "1"), caller))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

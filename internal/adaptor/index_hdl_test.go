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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestIndexHandler_Index(t *testing.T) {
	t.Run("passes the raw page through", func(t *testing.T) {
		service := new(mocks.IndexService)
		service.On("GetIndex", mock.Anything, &request.PaginatedRequest{Page: "2"}).
			Return(&response.IndexResponse{}, nil)
		h := NewIndexHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.Index(w, newRequest(t, http.MethodGet, "/?page=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		service.AssertExpectations(t)
	})

	t.Run("page beyond range", func(t *testing.T) {
		service := new(mocks.IndexService)
		service.On("GetIndex", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: page contains no results", usecase.ErrInvalidPage))
		h := NewIndexHandler(service, zap.NewNop())

		w := httptest.NewRecorder()
		h.Index(w, newRequest(t, http.MethodGet, "/?page=99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decodeResponse(t, w).Message, "page contains no results")
	})
}

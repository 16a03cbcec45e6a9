package adaptor

import (
	"net/http"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type IndexHandler struct {
	service usecase.IndexService
	log     *zap.Logger
}

func NewIndexHandler(service usecase.IndexService, log *zap.Logger) *IndexHandler {
	return &IndexHandler{
		service: service,
		log:     log.With(zap.String("handler", "index")),
	}
}

// Index handles GET / (public)
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{Page: r.URL.Query().Get("page")}

	index, err := h.service.GetIndex(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get index", nil)
		return
	}

	utils.ResponseSuccess(w, "success", index)
}

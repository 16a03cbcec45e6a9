package adaptor

import (
	"net/http"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ReviewForm handles GET /books/{id}/review (protected)
func (h *ReviewHandler) ReviewForm(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	form, err := h.service.GetReviewForm(r.Context(), bookID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review form", nil)
		return
	}

	utils.ResponseSuccess(w, "success", form)
}

// CreateReview handles POST /books/{id}/review (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), bookID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review", req)
		return
	}

	utils.ResponseSeeOther(w, bookDetailPath(bookID), "Review created", review)
}

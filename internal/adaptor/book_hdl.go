package adaptor

import (
	"fmt"
	"net/http"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

const bookListPath = "/books"

func bookDetailPath(id int64) string {
	return fmt.Sprintf("/books/%d", id)
}

type BookHandler struct {
	service usecase.BookService
	log     *zap.Logger
}

func NewBookHandler(service usecase.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		log:     log.With(zap.String("handler", "book")),
	}
}

// ListBooks handles GET /books (protected)
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:      r.URL.Query().Get("page"),
		AllowLast: true,
	}

	books, err := h.service.ListBooks(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list books", nil)
		return
	}

	utils.ResponseSuccess(w, "success", books)
}

// GetBook handles GET /books/{id} (protected)
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	book, err := h.service.GetBook(r.Context(), bookID)
	if err != nil {
		handleServiceError(w, h.log, err, "get book", nil)
		return
	}

	utils.ResponseSuccess(w, "success", book)
}

// CreateForm handles GET /books/create (protected)
func (h *BookHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.BookFormResponse{
		Fields: request.BookFormFields,
	})
}

// CreateBook handles POST /books/create (protected)
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	book, err := h.service.CreateBook(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create book", req)
		return
	}

	utils.ResponseSeeOther(w, bookListPath, "Book created", book)
}

// UpdateForm handles GET /books/{id}/update (owner only)
func (h *BookHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	form, err := h.service.GetBookForUpdate(r.Context(), bookID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get book form", nil)
		return
	}

	utils.ResponseSuccess(w, "success", form)
}

// UpdateBook handles POST|PUT /books/{id}/update (owner only)
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.BookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	book, err := h.service.UpdateBook(r.Context(), bookID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update book", req)
		return
	}

	utils.ResponseSeeOther(w, bookDetailPath(bookID), "Book updated", book)
}

// DeleteConfirm handles GET /books/{id}/delete (owner only)
func (h *BookHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	confirm, err := h.service.GetBookForDelete(r.Context(), bookID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm book delete", nil)
		return
	}

	utils.ResponseSuccess(w, "success", confirm)
}

// DeleteBook handles POST|DELETE /books/{id}/delete (owner only)
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(r.Context(), bookID, userID); err != nil {
		handleServiceError(w, h.log, err, "delete book", nil)
		return
	}

	utils.ResponseSeeOther(w, bookListPath, "Book deleted", nil)
}

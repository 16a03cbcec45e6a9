package adaptor

import (
	"book-catalog/internal/usecase"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Index  *IndexHandler
	Book   *BookHandler
	Review *ReviewHandler
	Auth   *AuthHandler
	User   *UserHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Index:  NewIndexHandler(service.Index, log),
		Book:   NewBookHandler(service.Book, log),
		Review: NewReviewHandler(service.Review, log),
		Auth:   NewAuthHandler(service.Auth, config.Session, log),
		User:   NewUserHandler(service.User, log),
	}
}

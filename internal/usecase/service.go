package usecase

import (
	"book-catalog/internal/data/repository"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Book   BookService
	Index  IndexService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config.Session, log),
		User:   NewUserService(repo, log),
		Book:   NewBookService(repo, config.App.ItemPerPage, log),
		Index:  NewIndexService(repo, config.App.ItemPerPage, log),
		Review: NewReviewService(repo, log),
	}
}

package usecase

import (
	"context"
	"fmt"

	"book-catalog/internal/data/repository"
	"book-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s %w", userID.String(), ErrNotFound)
	}

	profile := response.UserToResponse(user)

	profile.BookCount, err = us.repo.Book.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user books: %w", err)
	}

	profile.ReviewCount, err = us.repo.Review.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user reviews: %w", err)
	}

	us.log.Debug("Profile retrieved",
		zap.String("user_id", userID.String()),
		zap.Int64("book_count", profile.BookCount),
		zap.Int64("review_count", profile.ReviewCount),
	)

	return &profile, nil
}

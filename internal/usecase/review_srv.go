package usecase

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/data/repository"
	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService covers review creation; reviews cannot be edited or removed
// on their own.
type ReviewService interface {
	GetReviewForm(ctx context.Context, bookID int64) (*response.ReviewFormResponse, error)
	CreateReview(ctx context.Context, bookID int64, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviewForm(ctx context.Context, bookID int64) (*response.ReviewFormResponse, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return &response.ReviewFormResponse{
		Book:   response.BookToResponse(book),
		Fields: request.ReviewFormFields,
	}, nil
}

func (s *reviewService) CreateReview(ctx context.Context, bookID int64, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Check if book exists
	if _, err := s.findBook(ctx, bookID); err != nil {
		return nil, err
	}

	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	review := &entity.Review{
		SerialSimple: entity.SerialSimple{
			CreatedAt: time.Now(),
		},
		BookID: bookID,
		Title:  req.Title,
		Text:   req.Text,
		Rate:   req.Rate,
		UserID: userID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("book_id", bookID),
		zap.String("user_id", userID.String()),
		zap.Int("rate", review.Rate),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) findBook(ctx context.Context, bookID int64) (*entity.Book, error) {
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %d %w", bookID, ErrNotFound)
	}
	return book, nil
}

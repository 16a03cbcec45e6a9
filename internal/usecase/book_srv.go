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

type BookService interface {
	ListBooks(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookResponse], error)
	GetBook(ctx context.Context, bookID int64) (*response.BookDetailResponse, error)
	CreateBook(ctx context.Context, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error)

	// Owner only
	GetBookForUpdate(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookFormResponse, error)
	UpdateBook(ctx context.Context, bookID int64, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error)
	GetBookForDelete(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookDeleteConfirmResponse, error)
	DeleteBook(ctx context.Context, bookID int64, userID uuid.UUID) error
}

type bookService struct {
	repo        *repository.Repository
	itemPerPage int
	log         *zap.Logger
}

func NewBookService(repo *repository.Repository, itemPerPage int, log *zap.Logger) BookService {
	return &bookService{
		repo:        repo,
		itemPerPage: itemPerPage,
		log:         log.With(zap.String("service", "book")),
	}
}

func (s *bookService) ListBooks(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookResponse], error) {
	total, err := s.repo.Book.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}

	paginator := utils.NewPaginator(total, s.itemPerPage)
	page, err := paginator.Page(req.Page, req.AllowLast)
	if err != nil {
		s.log.Warn("Invalid book list page",
			zap.String("page", req.Page),
			zap.Int64("total", total),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}

	books, err := s.repo.Book.FindAll(ctx, paginator.Limit(), paginator.Offset(page))
	if err != nil {
		s.log.Error("Failed to get books",
			zap.Error(err),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("get books: %w", err)
	}

	s.log.Info("Books retrieved",
		zap.Int("count", len(books)),
		zap.Int64("total", total),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(response.BooksToResponse(books), paginator, page), nil
}

func (s *bookService) GetBook(ctx context.Context, bookID int64) (*response.BookDetailResponse, error) {
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book by id: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %d %w", bookID, ErrNotFound)
	}

	detail := &response.BookDetailResponse{
		BookResponse: response.BookToResponse(book),
		Reviews:      []response.ReviewResponse{},
	}

	owner, err := s.repo.User.FindByID(ctx, book.UserID)
	if err != nil {
		return nil, fmt.Errorf("get book owner: %w", err)
	}
	if owner != nil {
		detail.Username = owner.Username
	}

	avgRating, reviewCount, err := s.repo.Review.GetBookReviewStats(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book review stats: %w", err)
	}
	detail.AvgRating = avgRating
	detail.ReviewCount = reviewCount

	reviews, err := s.repo.Review.FindByBookID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book reviews: %w", err)
	}
	detail.Reviews = response.ReviewsToResponse(reviews)

	s.log.Debug("Book retrieved",
		zap.Int64("book_id", bookID),
		zap.Int64("review_count", reviewCount),
	)

	return detail, nil
}

func (s *bookService) CreateBook(ctx context.Context, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create book validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	now := time.Now()
	book := &entity.Book{
		Serial: entity.Serial{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:     req.Title,
		Text:      req.Text,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
		UserID:    userID,
	}

	if err := s.repo.Book.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.Info("Book created",
		zap.Int64("book_id", book.ID),
		zap.String("title", book.Title),
		zap.String("user_id", userID.String()),
	)

	resp := response.BookToResponse(book)
	return &resp, nil
}

func (s *bookService) GetBookForUpdate(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookFormResponse, error) {
	book, err := s.findOwned(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}

	current := response.BookToResponse(book)
	return &response.BookFormResponse{
		Book:   &current,
		Form:   response.BookToForm(book),
		Fields: request.BookFormFields,
	}, nil
}

func (s *bookService) UpdateBook(ctx context.Context, bookID int64, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error) {
	book, err := s.findOwned(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update book validation failed",
			zap.Int64("book_id", bookID),
			zap.Any("errors", errs),
		)
		return nil, newValidationError(errs)
	}

	book.Title = req.Title
	book.Text = req.Text
	book.Thumbnail = req.Thumbnail
	book.Category = req.Category
	book.UpdatedAt = time.Now()

	if err := s.repo.Book.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.log.Info("Book updated",
		zap.Int64("book_id", bookID),
		zap.String("user_id", userID.String()),
	)

	resp := response.BookToResponse(book)
	return &resp, nil
}

func (s *bookService) GetBookForDelete(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookDeleteConfirmResponse, error) {
	book, err := s.findOwned(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}

	_, reviewCount, err := s.repo.Review.GetBookReviewStats(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book review stats: %w", err)
	}

	return &response.BookDeleteConfirmResponse{
		Book:        response.BookToResponse(book),
		ReviewCount: reviewCount,
	}, nil
}

func (s *bookService) DeleteBook(ctx context.Context, bookID int64, userID uuid.UUID) error {
	book, err := s.findOwned(ctx, bookID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Book.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.Info("Book deleted",
		zap.Int64("book_id", bookID),
		zap.String("title", book.Title),
		zap.String("user_id", userID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// findOwned loads a book and checks that userID owns it. Existence is checked
// first so a missing book is reported as not found, never as forbidden.
func (s *bookService) findOwned(ctx context.Context, bookID int64, userID uuid.UUID) (*entity.Book, error) {
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %d %w", bookID, ErrNotFound)
	}

	if !CanMutate(userID, book.UserID) {
		s.log.Warn("Non-owner tried to modify book",
			zap.Int64("book_id", bookID),
			zap.String("user_id", userID.String()),
			zap.String("owner_id", book.UserID.String()),
		)
		return nil, fmt.Errorf("book %d: %w", bookID, ErrForbidden)
	}

	return book, nil
}

// Package mocks holds testify mocks of the usecase service interfaces.
package mocks

import (
	"context"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ==================== INDEX ====================

type IndexService struct {
	mock.Mock
}

func (m *IndexService) GetIndex(ctx context.Context, req *request.PaginatedRequest) (*response.IndexResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.IndexResponse), args.Error(1)
}

// ==================== BOOK ====================

type BookService struct {
	mock.Mock
}

func (m *BookService) ListBooks(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.BookResponse]), args.Error(1)
}

func (m *BookService) GetBook(ctx context.Context, bookID int64) (*response.BookDetailResponse, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookDetailResponse), args.Error(1)
}

func (m *BookService) CreateBook(ctx context.Context, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookResponse), args.Error(1)
}

func (m *BookService) GetBookForUpdate(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookFormResponse, error) {
	args := m.Called(ctx, bookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookFormResponse), args.Error(1)
}

func (m *BookService) UpdateBook(ctx context.Context, bookID int64, userID uuid.UUID, req *request.BookRequest) (*response.BookResponse, error) {
	args := m.Called(ctx, bookID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookResponse), args.Error(1)
}

func (m *BookService) GetBookForDelete(ctx context.Context, bookID int64, userID uuid.UUID) (*response.BookDeleteConfirmResponse, error) {
	args := m.Called(ctx, bookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookDeleteConfirmResponse), args.Error(1)
}

func (m *BookService) DeleteBook(ctx context.Context, bookID int64, userID uuid.UUID) error {
	args := m.Called(ctx, bookID, userID)
	return args.Error(0)
}

// ==================== REVIEW ====================

type ReviewService struct {
	mock.Mock
}

func (m *ReviewService) GetReviewForm(ctx context.Context, bookID int64) (*response.ReviewFormResponse, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewFormResponse), args.Error(1)
}

func (m *ReviewService) CreateReview(ctx context.Context, bookID int64, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, bookID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

// ==================== AUTH ====================

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, req *request.RegisterRequest, meta usecase.ClientMeta) (*response.AuthResponse, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, req *request.LoginRequest, meta usecase.ClientMeta) (*response.AuthResponse, error) {
	args := m.Called(ctx, req, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// ==================== USER ====================

type UserService struct {
	mock.Mock
}

func (m *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

// NewService groups fresh service mocks.
func NewService() (*usecase.Service, *Services) {
	m := &Services{
		Auth:   new(AuthService),
		User:   new(UserService),
		Book:   new(BookService),
		Index:  new(IndexService),
		Review: new(ReviewService),
	}

	return &usecase.Service{
		Auth:   m.Auth,
		User:   m.User,
		Book:   m.Book,
		Index:  m.Index,
		Review: m.Review,
	}, m
}

type Services struct {
	Auth   *AuthService
	User   *UserService
	Book   *BookService
	Index  *IndexService
	Review *ReviewService
}

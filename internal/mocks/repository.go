// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// NewRepository groups fresh mocks the way repository.NewRepository groups
// the postgres implementations.
func NewRepository() (*repository.Repository, *Repositories) {
	m := &Repositories{
		User:    new(UserRepository),
		Session: new(SessionRepository),
		Book:    new(BookRepository),
		Review:  new(ReviewRepository),
	}

	return &repository.Repository{
		User:    m.User,
		Session: m.Session,
		Book:    m.Book,
		Review:  m.Review,
	}, m
}

type Repositories struct {
	User    *UserRepository
	Session *SessionRepository
	Book    *BookRepository
	Review  *ReviewRepository
}

// AssertExpectations checks every grouped mock.
func (m *Repositories) AssertExpectations(t mock.TestingT) {
	m.User.AssertExpectations(t)
	m.Session.AssertExpectations(t)
	m.Book.AssertExpectations(t)
	m.Review.AssertExpectations(t)
}

// ==================== USER ====================

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// ==================== SESSION ====================

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *SessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *SessionRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// ==================== BOOK ====================

type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) Create(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *BookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Book), args.Error(1)
}

func (m *BookRepository) Update(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *BookRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BookRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Book), args.Error(1)
}

func (m *BookRepository) FindAllNewestFirst(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Book), args.Error(1)
}

func (m *BookRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookRepository) FindRanking(ctx context.Context, limit, offset int) ([]*entity.RankedBook, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RankedBook), args.Error(1)
}

// ==================== REVIEW ====================

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) FindByBookID(ctx context.Context, bookID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *ReviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReviewRepository) GetBookReviewStats(ctx context.Context, bookID int64) (*float64, int64, error) {
	args := m.Called(ctx, bookID)
	var avg *float64
	if v := args.Get(0); v != nil {
		avg = v.(*float64)
	}
	return avg, args.Get(1).(int64), args.Error(2)
}

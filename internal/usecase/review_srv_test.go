package usecase

import (
	"context"
	"testing"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/dto/request"
	"book-catalog/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewService_GetReviewForm(t *testing.T) {
	ctx := context.Background()

	repo, m := mocks.NewRepository()
	s := NewReviewService(repo, zap.NewNop())

	m.Book.On("FindByID", ctx, int64(1)).Return(newTestBook(1, uuid.New()), nil)
	m.Book.On("FindByID", ctx, int64(2)).Return(nil, nil)

	form, err := s.GetReviewForm(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), form.Book.ID)
	assert.Equal(t, request.ReviewFormFields, form.Fields)

	_, err = s.GetReviewForm(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()
	caller := uuid.New()

	t.Run("book and owner come from the request context", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewReviewService(repo, zap.NewNop())

		m.Book.On("FindByID", ctx, int64(1)).Return(newTestBook(1, uuid.New()), nil)
		m.Review.On("Create", ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.BookID == 1 && r.UserID == caller && r.Rate == 4
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Review).ID = 12
		}).Return(nil)

		review, err := s.CreateReview(ctx, 1, caller, &request.CreateReviewRequest{
			Title: "Solid",
			Text:  "Worth reading",
			Rate:  4,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), review.ID)
		assert.Equal(t, int64(1), review.BookID)
		m.AssertExpectations(t)
	})

	t.Run("missing book", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewReviewService(repo, zap.NewNop())

		m.Book.On("FindByID", ctx, int64(5)).Return(nil, nil)

		_, err := s.CreateReview(ctx, 5, caller, &request.CreateReviewRequest{Title: "x", Text: "y", Rate: 3})
		assert.ErrorIs(t, err, ErrNotFound)
		m.Review.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	for _, rate := range []int{0, 6, -1} {
		t.Run("rate out of range", func(t *testing.T) {
			repo, m := mocks.NewRepository()
			s := NewReviewService(repo, zap.NewNop())

			m.Book.On("FindByID", ctx, int64(1)).Return(newTestBook(1, uuid.New()), nil)

			_, err := s.CreateReview(ctx, 1, caller, &request.CreateReviewRequest{Title: "x", Text: "y", Rate: rate})
			assert.ErrorIs(t, err, ErrValidation)
			m.Review.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("book removed concurrently", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewReviewService(repo, zap.NewNop())

		m.Book.On("FindByID", ctx, int64(1)).Return(newTestBook(1, uuid.New()), nil)
		m.Review.On("Create", ctx, mock.Anything).Return(ErrNotFound)

		_, err := s.CreateReview(ctx, 1, caller, &request.CreateReviewRequest{Title: "x", Text: "y", Rate: 3})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewService_CreateReview_BlankFields(t *testing.T) {
	ctx := context.Background()
	repo, m := mocks.NewRepository()
	s := NewReviewService(repo, zap.NewNop())

	m.Book.On("FindByID", ctx, int64(1)).Return(newTestBook(1, uuid.New()), nil)

	_, err := s.CreateReview(ctx, 1, uuid.New(), &request.CreateReviewRequest{Title: "  ", Text: "\n", Rate: 4})
	require.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "title")
	assert.Contains(t, validationErr.Fields, "text")
	m.Review.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

package usecase

import (
	"context"
	"testing"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("profile with counts", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewUserService(repo, zap.NewNop())

		user := &entity.User{Username: "gopher", Email: "gopher@example.com"}
		user.ID = userID

		m.User.On("FindByID", ctx, userID).Return(user, nil)
		m.Book.On("CountByUserID", ctx, userID).Return(int64(3), nil)
		m.Review.On("CountByUserID", ctx, userID).Return(int64(5), nil)

		profile, err := s.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "gopher", profile.Username)
		assert.Equal(t, int64(3), profile.BookCount)
		assert.Equal(t, int64(5), profile.ReviewCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewUserService(repo, zap.NewNop())

		m.User.On("FindByID", ctx, userID).Return(nil, nil)

		_, err := s.GetProfile(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

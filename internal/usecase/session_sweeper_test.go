package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-catalog/internal/mocks"
	"book-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	config := utils.SessionConfig{RetentionHours: 24, PurgeMinutes: 1}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("purges sessions older than retention", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewSessionSweeper(repo, config, zap.NewNop())
		s.now = func() time.Time { return now }

		m.Session.On("PurgeExpired", ctx, now.Add(-24*time.Hour)).Return(int64(4), nil)

		purged, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), purged)
		m.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		repo, m := mocks.NewRepository()
		s := NewSessionSweeper(repo, config, zap.NewNop())

		m.Session.On("PurgeExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("connection reset"))

		_, err := s.Sweep(ctx)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestSessionSweeper_RunStopsOnCancel(t *testing.T) {
	repo, _ := mocks.NewRepository()
	s := NewSessionSweeper(repo, utils.SessionConfig{RetentionHours: 1, PurgeMinutes: 60}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/data/repository"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

// SessionSweeper periodically deletes sessions that expired or were revoked
// longer ago than the configured retention.
type SessionSweeper struct {
	repo      *repository.Repository
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewSessionSweeper(repo *repository.Repository, config utils.SessionConfig, log *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		repo:      repo,
		interval:  config.PurgeInterval(),
		retention: config.Retention(),
		now:       time.Now,
		log:       log.With(zap.String("service", "session_sweeper")),
	}
}

// Sweep runs one purge pass and returns the number of deleted sessions.
func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)

	purged, err := s.repo.Session.PurgeExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	if purged > 0 {
		s.log.Info("Expired sessions purged",
			zap.Int64("count", purged),
			zap.Time("cutoff", cutoff),
		)
	}

	return purged, nil
}

// Run sweeps on every tick until ctx is done. A failed pass is logged and
// retried on the next tick.
func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.log.Error("Session sweep failed", zap.Error(err))
			}
		}
	}
}

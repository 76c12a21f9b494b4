package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionExpirer interface {
	ExpireStale(ctx context.Context, ttl time.Duration) (bool, error)
}

// Scheduler periodically clears the persisted session once it outlives ttl.
type Scheduler struct {
	sessionService sessionExpirer
	interval       time.Duration
	ttl            time.Duration
	logger         logger.Logger
}

func New(
	sessionService sessionExpirer,
	interval time.Duration,
	ttl time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessionService: sessionService,
		interval:       interval,
		ttl:            ttl,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
		logger.Duration("ttl", s.ttl),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.sessionService.ExpireStale(ctx, s.ttl)
	if err != nil {
		s.logger.Error("failed to expire stale session",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired {
		s.logger.Info("session expired", logger.Duration("ttl", s.ttl))
	}
}

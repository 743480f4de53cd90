package airtable

import (
	"context"
	"time"

	"github.com/akostin/punchpass/internal/service/syncservice"
	"go.uber.org/zap"
)

type SyncEngine interface {
	SyncPendingMembers(ctx context.Context) (*syncservice.SyncReport, error)
}

// Service drives the reconciliation engine on a timer. One run at a
// time: a tick that arrives while a sync is still in flight is skipped
// by the ticker's own backpressure.
type Service struct {
	engine   SyncEngine
	interval time.Duration
}

func NewService(engine SyncEngine, interval time.Duration) *Service {
	return &Service{
		engine:   engine,
		interval: interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Airtable sync service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sync service")
			return
		case <-ticker.C:
			if _, err := s.engine.SyncPendingMembers(ctx); err != nil {
				zap.L().Error("Scheduled sync failed", zap.Error(err))
			}
		}
	}
}

// Package expiry cancels trades that stayed pending for longer than the configured TTL.
package expiry

//go:generate mockgen -source=expiry.go -destination=mock_expiry.go -package=expiry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit   = 1000
	defaultWorkers = 10
)

type Repo interface {
	FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.Trade, error)
}

type Canceler interface {
	CancelTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
}

type Service struct {
	tradeRepo      Repo
	canceler       Canceler
	ttl            time.Duration
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	inFlight       sync.Map
}

func New(cfg *config.Config, tradeRepo Repo, canceler Canceler) *Service {
	return &Service{
		tradeRepo:      tradeRepo,
		canceler:       canceler,
		ttl:            cfg.TradeTTL,
		limit:          defaultLimit,
		workerPool:     NewWorkerPool(defaultWorkers),
		updateInterval: cfg.ExpireInterval,
	}
}

// Start runs the sweep loop until ctx is cancelled. It does nothing when no TTL is set.
func (s *Service) Start(ctx context.Context) {
	if s.ttl <= 0 || s.updateInterval <= 0 {
		zap.L().Info("Trade expiry disabled")
		return
	}
	zap.L().Info("Trade expiry started", zap.Duration("ttl", s.ttl), zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping trade expiry")
			return
		case <-ticker.C:
			s.expireTrades(ctx)
		}
	}
}

func (s *Service) expireTrades(ctx context.Context) {
	before := time.Now().Add(-s.ttl)
	trades, err := s.tradeRepo.FindStalePending(ctx, before, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch stale trades", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, trade := range trades {
		trade := trade

		if _, loaded := s.inFlight.LoadOrStore(trade.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(trade.ID)
				return s.expireTrade(ctx, trade.ID)
			})
			if err != nil {
				s.inFlight.Delete(trade.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring trades", zap.Error(err))
	}
}

// expireTrade cancels one trade. A trade resolved by its parties in the meantime is skipped.
func (s *Service) expireTrade(ctx context.Context, id uuid.UUID) error {
	_, err := s.canceler.CancelTrade(ctx, id)
	switch {
	case err == nil:
		zap.L().Info("Trade expired", zap.String("trade_id", id.String()))
		return nil
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrNotFound):
		zap.L().Debug("Trade already resolved, skipping", zap.String("trade_id", id.String()))
		return nil
	default:
		return err
	}
}

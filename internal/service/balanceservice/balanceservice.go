package balanceservice

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

import (
	"context"
	"strconv"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/scoring"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}
type TradeStatsRepo interface {
	CountByStatus(ctx context.Context, userID int) (domain.TradeStats, error)
}

type Service struct {
	userRepo  UserRepo
	statsRepo TradeStatsRepo
}

func New(userRepo UserRepo, statsRepo TradeStatsRepo) *Service {
	return &Service{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

type Balance struct {
	Tokens         int64
	AllwainBalance decimal.Decimal
	Trades         domain.TradeStats
	Reputation     scoring.Reputation
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*Balance, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, domain.Internal("get user", err)
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(userID)}
	}

	stats, err := s.statsRepo.CountByStatus(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count trades", zap.Error(err))
		return nil, domain.Internal("count trades", err)
	}

	return &Balance{
		Tokens:         user.Tokens,
		AllwainBalance: user.AllwainBalance,
		Trades:         stats,
		Reputation:     scoring.ReputationOf(stats),
	}, nil
}

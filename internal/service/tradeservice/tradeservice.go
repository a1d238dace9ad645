package tradeservice

//go:generate mockgen -source=tradeservice.go -destination=mock_tradeservice.go -package=tradeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TradeRepo interface {
	Create(ctx context.Context, trade *domain.Trade) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Trade, error)
	Settle(ctx context.Context, id uuid.UUID, resolvedAt time.Time) (*domain.Trade, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.TradeStatus, resolvedAt time.Time) (*domain.Trade, error)
}

type OfferRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
}

type Service struct {
	tradeRepo TradeRepo
	offerRepo OfferRepo
}

func New(tradeRepo TradeRepo, offerRepo OfferRepo) *Service {
	return &Service{
		tradeRepo: tradeRepo,
		offerRepo: offerRepo,
	}
}

// CreateTrade proposes a trade against an offer.
// The initiator's balance is checked only at acceptance.
func (s *Service) CreateTrade(ctx context.Context, fromUserID, toUserID int, offerID uuid.UUID, tokens *int64) (*domain.Trade, error) {
	if fromUserID <= 0 {
		return nil, &domain.ValidationError{Field: "from_user_id", Reason: "must be positive"}
	}
	if toUserID <= 0 {
		return nil, &domain.ValidationError{Field: "to_user_id", Reason: "must be positive"}
	}
	if toUserID == fromUserID {
		return nil, &domain.ValidationError{Field: "to_user_id", Reason: "cannot trade with yourself"}
	}
	if tokens != nil && *tokens < 0 {
		return nil, &domain.InvalidTokenAmountError{Offered: *tokens}
	}

	offer, err := s.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		zap.L().Error("failed to get offer", zap.Error(err))
		return nil, domain.Internal("find offer", err)
	}
	if offer == nil {
		return nil, &domain.NotFoundError{Entity: "offer", ID: offerID.String()}
	}

	amount, err := tradeAmount(offer, tokens)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domain.Internal("generate trade id", err)
	}
	trade := &domain.Trade{
		ID:         id,
		OfferID:    offer.ID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Tokens:     amount,
		Status:     domain.TradePending,
		CreatedAt:  time.Now(),
	}
	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		zap.L().Error("failed to create trade", zap.Error(err))
		return nil, domain.Internal("create trade", err)
	}

	zap.L().Info("trade proposed", zap.String("trade_id", trade.ID.String()))
	return trade, nil
}

// tradeAmount resolves the tokens of a new trade. An explicit token price on the
// offer wins and must match what the caller supplied.
func tradeAmount(offer *domain.Offer, tokens *int64) (int64, error) {
	if offer.Tokens != nil {
		expected := *offer.Tokens
		if tokens != nil && *tokens != expected {
			return 0, &domain.InvalidTokenAmountError{Offered: *tokens, Expected: &expected}
		}
		return expected, nil
	}
	if tokens != nil {
		return *tokens, nil
	}
	return 0, nil
}

func (s *Service) GetTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	trade, err := s.tradeRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get trade", zap.Error(err))
		return nil, domain.Internal("get trade", err)
	}
	if trade == nil {
		return nil, &domain.NotFoundError{Entity: "trade", ID: id.String()}
	}
	return trade, nil
}

// AcceptTrade settles a pending trade: the initiator pays the counterparty.
func (s *Service) AcceptTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	trade, err := s.tradeRepo.Settle(ctx, id, time.Now())
	if err != nil {
		return nil, s.resolveFailed("accept", id, err)
	}
	zap.L().Info("trade accepted", zap.String("trade_id", id.String()))
	return trade, nil
}

func (s *Service) RejectTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	return s.resolve(ctx, id, domain.TradeRejected)
}

func (s *Service) CancelTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	return s.resolve(ctx, id, domain.TradeCancelled)
}

func (s *Service) resolve(ctx context.Context, id uuid.UUID, status domain.TradeStatus) (*domain.Trade, error) {
	trade, err := s.tradeRepo.Resolve(ctx, id, status, time.Now())
	if err != nil {
		return nil, s.resolveFailed(string(status), id, err)
	}
	zap.L().Info("trade resolved", zap.String("trade_id", id.String()), zap.String("status", string(status)))
	return trade, nil
}

func (s *Service) resolveFailed(action string, id uuid.UUID, err error) error {
	err = domain.Internal(fmt.Sprintf("%s trade", action), err)
	if domain.IsInternal(err) {
		zap.L().Error("failed to resolve trade", zap.String("trade_id", id.String()), zap.String("action", action), zap.Error(err))
	} else {
		zap.L().Info("trade not resolved", zap.String("trade_id", id.String()), zap.String("action", action), zap.Error(err))
	}
	return err
}

func (s *Service) ListTradesForUser(ctx context.Context, userID int) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list trades", zap.Error(err))
		return nil, domain.Internal("list trades", err)
	}
	return trades, nil
}

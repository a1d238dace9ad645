package offerservice

//go:generate mockgen -source=offerservice.go -destination=mock_offerservice.go -package=offerservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, offer *domain.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	FindByApp(ctx context.Context, app domain.OwnerApp, excludeUserID *int) ([]domain.Offer, error)
}

type Service struct {
	offerRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		offerRepo: repo,
	}
}

func (s *Service) CreateOffer(ctx context.Context, ownerUserID int, input domain.NewOffer) (*domain.Offer, error) {
	if ownerUserID <= 0 {
		return nil, &domain.ValidationError{Field: "owner_user_id", Reason: "must be positive"}
	}
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if err := validateOffer(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domain.Internal("generate offer id", err)
	}
	offer := &domain.Offer{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		App:         input.App,
		OwnerUserID: ownerUserID,
		Tokens:      input.Tokens,
		Price:       input.Price,
		ProductID:   input.ProductID,
		Meta:        input.Meta,
		CreatedAt:   time.Now(),
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		zap.L().Error("failed to create offer", zap.Error(err))
		return nil, domain.Internal("create offer", err)
	}

	zap.L().Info("offer created", zap.String("offer_id", offer.ID.String()), zap.String("app", string(offer.App)))
	return offer, nil
}

// Prices are stored as NUMERIC(14,2).
const maxPriceScale = 2

var maxPrice = decimal.New(1, 12)

// validateOffer checks that an offer is priced the way its app expects:
// barter offers in tokens, shop offers in currency.
func validateOffer(input domain.NewOffer) error {
	if input.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if input.Description == "" {
		return &domain.ValidationError{Field: "description", Reason: "must not be empty"}
	}

	switch input.App {
	case domain.AppTrueqia:
		if input.Tokens == nil || *input.Tokens < 0 {
			return &domain.ValidationError{Field: "tokens", Reason: "trueqia offers need a non-negative token amount"}
		}
		if input.Price.Valid {
			return &domain.ValidationError{Field: "price", Reason: "trueqia offers are priced in tokens"}
		}
	case domain.AppAllwain:
		if !input.Price.Valid || input.Price.Decimal.IsNegative() {
			return &domain.ValidationError{Field: "price", Reason: "allwain offers need a non-negative price"}
		}
		if !input.Price.Decimal.Equal(input.Price.Decimal.Truncate(maxPriceScale)) {
			return &domain.ValidationError{Field: "price", Reason: "must have at most 2 decimal places"}
		}
		if input.Price.Decimal.GreaterThanOrEqual(maxPrice) {
			return &domain.ValidationError{Field: "price", Reason: "must be less than 1000000000000"}
		}
		if input.Tokens != nil {
			return &domain.ValidationError{Field: "tokens", Reason: "allwain offers are priced in currency"}
		}
	default:
		return &domain.ValidationError{Field: "app", Reason: "must be trueqia or allwain"}
	}
	return nil
}

func (s *Service) ListOffers(ctx context.Context, app domain.OwnerApp, excludeUserID *int) ([]domain.Offer, error) {
	if !app.Valid() {
		return nil, &domain.ValidationError{Field: "app", Reason: "must be trueqia or allwain"}
	}
	offers, err := s.offerRepo.FindByApp(ctx, app, excludeUserID)
	if err != nil {
		zap.L().Error("failed to list offers", zap.Error(err))
		return nil, domain.Internal("list offers", err)
	}
	return offers, nil
}

func (s *Service) GetOffer(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get offer", zap.Error(err))
		return nil, domain.Internal("get offer", err)
	}
	if offer == nil {
		return nil, &domain.NotFoundError{Entity: "offer", ID: id.String()}
	}
	return offer, nil
}

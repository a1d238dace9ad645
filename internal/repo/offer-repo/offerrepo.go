package offerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOffer(row scanner) (*domain.Offer, error) {
	var (
		offer domain.Offer
		app   string
	)
	err := row.Scan(&offer.ID, &offer.Title, &offer.Description, &app, &offer.OwnerUserID,
		&offer.Tokens, &offer.Price, &offer.ProductID, &offer.Meta, &offer.CreatedAt)
	if err != nil {
		return nil, err
	}
	offer.App = domain.OwnerApp(app)
	return &offer, nil
}

func (r *Repository) Create(ctx context.Context, offer *domain.Offer) error {
	query := `
		INSERT INTO offers (id, title, description, owner_app, owner_user_id, tokens, price, product_id, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	meta := offer.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	_, err := r.db.Exec(ctx, query, offer.ID, offer.Title, offer.Description, string(offer.App), offer.OwnerUserID,
		offer.Tokens, offer.Price, offer.ProductID, meta, offer.CreatedAt)
	if err != nil {
		zap.L().Error("can't save offer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	query := `
		SELECT id, title, description, owner_app, owner_user_id, tokens, price, product_id, meta, created_at
		FROM offers
		WHERE id = $1
	`
	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find offer", zap.Error(err))
		return nil, err
	}
	return offer, nil
}

// FindByApp lists the offers of one sub-application in insertion order.
// Offers of excludeUserID are skipped when it is set.
func (r *Repository) FindByApp(ctx context.Context, app domain.OwnerApp, excludeUserID *int) ([]domain.Offer, error) {
	query := `
		SELECT id, title, description, owner_app, owner_user_id, tokens, price, product_id, meta, created_at
		FROM offers
		WHERE owner_app = $1 AND ($2::int IS NULL OR owner_user_id <> $2)
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, string(app), excludeUserID)
	if err != nil {
		zap.L().Error("can't get offers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			zap.L().Error("can't scan offer row", zap.Error(err))
			return nil, err
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate offer rows", zap.Error(err))
		return nil, err
	}
	return offers, nil
}

package offerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var offerColumns = []string{"id", "title", "description", "owner_app", "owner_user_id", "tokens", "price", "product_id", "meta", "created_at"}

const selectOffer = `SELECT id, title, description, owner_app, owner_user_id, tokens, price, product_id, meta, created_at FROM offers`

func int64Ptr(v int64) *int64 { return &v }

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	insert := regexp.QuoteMeta(`INSERT INTO offers (id, title, description, owner_app, owner_user_id, tokens, price, product_id, meta, created_at)`)
	createdAt := time.Now()
	offer := &domain.Offer{
		ID:          uuid.New(),
		Title:       "Bike repair",
		Description: "One hour of bike repair",
		App:         domain.AppTrueqia,
		OwnerUserID: 2,
		Tokens:      int64Ptr(40),
		CreatedAt:   createdAt,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Offer saved",
			mockSetup: func() {
				mock.ExpectExec(insert).
					WithArgs(offer.ID, "Bike repair", "One hour of bike repair", "trueqia", 2,
						offer.Tokens, decimal.NullDecimal{}, (*string)(nil), map[string]string{}, createdAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(insert).
					WithArgs(offer.ID, "Bike repair", "One hour of bike repair", "trueqia", 2,
						offer.Tokens, decimal.NullDecimal{}, (*string)(nil), map[string]string{}, createdAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), offer)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	createdAt := time.Now()
	price := decimal.NullDecimal{Decimal: decimal.RequireFromString("12.50"), Valid: true}
	productID := "sku-1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Offer
	}{
		{
			name: "Offer found",
			mockSetup: func() {
				rows := pgxmock.NewRows(offerColumns).
					AddRow(id, "Lamp", "Desk lamp", "allwain", 3, nil, price, &productID, map[string]string{"color": "red"}, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(selectOffer + " WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(rows)
			},
			result: &domain.Offer{
				ID:          id,
				Title:       "Lamp",
				Description: "Desk lamp",
				App:         domain.AppAllwain,
				OwnerUserID: 3,
				Price:       price,
				ProductID:   &productID,
				Meta:        map[string]string{"color": "red"},
				CreatedAt:   createdAt,
			},
		},
		{
			name: "Offer not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOffer + " WHERE id = $1")).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectOffer + " WHERE id = $1")).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByApp(t *testing.T) {
	repo, mock := NewMock(t)
	first, second := uuid.New(), uuid.New()
	createdAt := time.Now()
	exclude := 1
	query := regexp.QuoteMeta(selectOffer + " WHERE owner_app = $1 AND ($2::int IS NULL OR owner_user_id <> $2) ORDER BY created_at ASC, id ASC")

	tests := []struct {
		name      string
		exclude   *int
		mockSetup func()
		expectErr bool
		result    []domain.Offer
	}{
		{
			name:    "Offers in insertion order",
			exclude: &exclude,
			mockSetup: func() {
				rows := pgxmock.NewRows(offerColumns).
					AddRow(first, "A", "a", "trueqia", 2, int64Ptr(10), decimal.NullDecimal{}, nil, map[string]string{}, createdAt).
					AddRow(second, "B", "b", "trueqia", 3, int64Ptr(20), decimal.NullDecimal{}, nil, map[string]string{}, createdAt)
				mock.ExpectQuery(query).
					WithArgs("trueqia", &exclude).
					WillReturnRows(rows)
			},
			result: []domain.Offer{
				{ID: first, Title: "A", Description: "a", App: domain.AppTrueqia, OwnerUserID: 2, Tokens: int64Ptr(10), Meta: map[string]string{}, CreatedAt: createdAt},
				{ID: second, Title: "B", Description: "b", App: domain.AppTrueqia, OwnerUserID: 3, Tokens: int64Ptr(20), Meta: map[string]string{}, CreatedAt: createdAt},
			},
		},
		{
			name: "No offers",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("trueqia", (*int)(nil)).
					WillReturnRows(pgxmock.NewRows(offerColumns))
			},
			result: []domain.Offer{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("trueqia", (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByApp(context.Background(), domain.AppTrueqia, tt.exclude)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

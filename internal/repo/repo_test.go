package repo

import (
	"testing"

	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/GlebRadaev/trueqia/internal/repo/memrepo"
	offerrepo "github.com/GlebRadaev/trueqia/internal/repo/offer-repo"
	traderepo "github.com/GlebRadaev/trueqia/internal/repo/trade-repo"
	userrepo "github.com/GlebRadaev/trueqia/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.OfferRepo)
	assert.NotNil(t, repo.TradeRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &offerrepo.Repository{}, repo.OfferRepo)
	assert.IsType(t, &traderepo.Repository{}, repo.TradeRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewInMemory(t *testing.T) {
	repo := NewInMemory()

	assert.IsType(t, &memrepo.UserRepository{}, repo.UserRepo)
	assert.IsType(t, &memrepo.OfferRepository{}, repo.OfferRepo)
	assert.IsType(t, &memrepo.TradeRepository{}, repo.TradeRepo)
}

package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/repo/memrepo"
	"github.com/GlebRadaev/trueqia/internal/service/tradeservice"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(&config.Config{TradeTTL: 0, ExpireInterval: time.Millisecond}, NewMockRepo(ctrl), NewMockCanceler(ctrl))
	defer service.workerPool.Close()

	service.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
}

func TestService_expireTrades(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		trades      []domain.Trade
		findErr     error
		addTaskErr  error
		cancelErr   error
		expectCalls int
	}{
		{
			name:        "Cancels every stale trade",
			trades:      []domain.Trade{{ID: first}, {ID: second}},
			expectCalls: 2,
		},
		{
			name:        "Tolerates trades resolved in the meantime",
			trades:      []domain.Trade{{ID: first}},
			cancelErr:   &domain.InvalidStateError{TradeID: first.String(), Status: domain.TradeAccepted},
			expectCalls: 1,
		},
		{
			name:        "Logs cancellation failures",
			trades:      []domain.Trade{{ID: first}},
			cancelErr:   errors.New("db error"),
			expectCalls: 1,
		},
		{
			name:    "Fails when finding trades",
			findErr: errors.New("db error"),
		},
		{
			name:       "Error in worker pool AddTask",
			trades:     []domain.Trade{{ID: first}},
			addTaskErr: errors.New("pool closed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			canceler := NewMockCanceler(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			repo.EXPECT().
				FindStalePending(gomock.Any(), gomock.Any(), uint32(defaultLimit)).
				Return(tt.trades, tt.findErr).
				Times(1)
			if tt.findErr == nil {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task Task) error {
						if tt.addTaskErr != nil {
							return tt.addTaskErr
						}
						return task()
					}).
					Times(len(tt.trades))
			}
			canceler.EXPECT().
				CancelTrade(gomock.Any(), gomock.Any()).
				Return(nil, tt.cancelErr).
				Times(tt.expectCalls)

			service := &Service{
				tradeRepo:  repo,
				canceler:   canceler,
				ttl:        time.Minute,
				limit:      defaultLimit,
				workerPool: workerPool,
			}
			service.expireTrades(context.Background())

			for _, trade := range tt.trades {
				_, busy := service.inFlight.Load(trade.ID)
				assert.False(t, busy)
			}
		})
	}
}

func TestService_SkipsTradesInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := NewMockRepo(ctrl)
	repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Trade{{ID: id}}, nil)

	service := &Service{
		tradeRepo:  repo,
		canceler:   NewMockCanceler(ctrl),
		ttl:        time.Minute,
		limit:      defaultLimit,
		workerPool: NewMockWorkerPoolI(ctrl),
	}
	service.inFlight.Store(id, struct{}{})

	service.expireTrades(context.Background())
}

func TestService_ExpiresOnlyOldTrades(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memrepo.New()
	trades := tradeservice.New(store.Trades, store.Offers)
	from, err := store.Users.Create(ctx, &domain.User{Login: "alice", Tokens: 100})
	require.NoError(t, err)
	to, err := store.Users.Create(ctx, &domain.User{Login: "bob"})
	require.NoError(t, err)
	price := int64(10)
	offer := &domain.Offer{ID: uuid.New(), Title: "t", Description: "d", App: domain.AppTrueqia, OwnerUserID: to.ID, Tokens: &price}
	require.NoError(t, store.Offers.Create(ctx, offer))

	stale, err := trades.CreateTrade(ctx, from.ID, to.ID, offer.ID, nil)
	require.NoError(t, err)
	accepted, err := trades.CreateTrade(ctx, from.ID, to.ID, offer.ID, nil)
	require.NoError(t, err)
	_, err = trades.AcceptTrade(ctx, accepted.ID)
	require.NoError(t, err)

	ttl := 50 * time.Millisecond
	time.Sleep(ttl + 10*time.Millisecond)
	fresh, err := trades.CreateTrade(ctx, from.ID, to.ID, offer.ID, nil)
	require.NoError(t, err)

	service := New(&config.Config{TradeTTL: ttl, ExpireInterval: 5 * time.Millisecond}, store.Trades, trades)
	service.expireTrades(ctx)

	assert.Eventually(t, func() bool {
		trade, _ := trades.GetTrade(ctx, stale.ID)
		return trade.Status == domain.TradeCancelled
	}, time.Second, 5*time.Millisecond)
	service.workerPool.Close()

	current, err := trades.GetTrade(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradePending, current.Status)
	current, err = trades.GetTrade(ctx, accepted.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeAccepted, current.Status)

	user, err := store.Users.FindByID(ctx, from.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), user.Tokens)
}

func TestService_StartStops(t *testing.T) {
	store := memrepo.New()
	trades := tradeservice.New(store.Trades, store.Offers)
	service := New(&config.Config{TradeTTL: time.Millisecond, ExpireInterval: 5 * time.Millisecond}, store.Trades, trades)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

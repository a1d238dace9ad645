// Package memrepo keeps users, offers and trades in process memory.
//
// It mirrors the PostgreSQL repositories method for method. One mutex guards
// the whole store, which makes every operation, settlement included, a single
// atomic unit. It backs the "memory" database mode and the property tests.
package memrepo

import (
	"context"
	"maps"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/ledger"
	"github.com/google/uuid"
)

type state struct {
	mu sync.Mutex

	nextUserID int
	users      map[int]*domain.User
	logins     map[string]int

	offers     map[uuid.UUID]*domain.Offer
	offerOrder []uuid.UUID

	trades     map[uuid.UUID]*domain.Trade
	tradeOrder []uuid.UUID
}

type Store struct {
	Users  *UserRepository
	Offers *OfferRepository
	Trades *TradeRepository
}

func New() *Store {
	s := &state{
		nextUserID: 1,
		users:      make(map[int]*domain.User),
		logins:     make(map[string]int),
		offers:     make(map[uuid.UUID]*domain.Offer),
		trades:     make(map[uuid.UUID]*domain.Trade),
	}
	return &Store{
		Users:  &UserRepository{s: s},
		Offers: &OfferRepository{s: s},
		Trades: &TradeRepository{s: s},
	}
}

type UserRepository struct {
	s *state
}

func (r *UserRepository) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.logins[login]
	if !ok {
		return nil, nil
	}
	user := *r.s.users[id]
	return &user, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user.Tokens < 0 || user.AllwainBalance.IsNegative() {
		return nil, &domain.ValidationError{Field: "balance", Reason: "must not be negative"}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.logins[user.Login]; ok {
		return nil, domain.ErrLoginTaken
	}
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	r.s.nextUserID++

	stored := *user
	r.s.users[user.ID] = &stored
	r.s.logins[user.Login] = user.ID
	return user, nil
}

type OfferRepository struct {
	s *state
}

func (r *OfferRepository) Create(_ context.Context, offer *domain.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneOffer(offer)
	r.s.offers[offer.ID] = &stored
	r.s.offerOrder = append(r.s.offerOrder, offer.ID)
	return nil
}

func (r *OfferRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offer, ok := r.s.offers[id]
	if !ok {
		return nil, nil
	}
	found := cloneOffer(offer)
	return &found, nil
}

func (r *OfferRepository) FindByApp(_ context.Context, app domain.OwnerApp, excludeUserID *int) ([]domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offers := make([]domain.Offer, 0)
	for _, id := range r.s.offerOrder {
		offer := r.s.offers[id]
		if offer.App != app {
			continue
		}
		if excludeUserID != nil && offer.OwnerUserID == *excludeUserID {
			continue
		}
		offers = append(offers, cloneOffer(offer))
	}
	return offers, nil
}

// cloneOffer copies an offer so that callers never share its meta map with the store.
func cloneOffer(offer *domain.Offer) domain.Offer {
	c := *offer
	c.Meta = maps.Clone(offer.Meta)
	return c
}

type TradeRepository struct {
	s *state
}

func (r *TradeRepository) Create(_ context.Context, trade *domain.Trade) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, userID := range []int{trade.FromUserID, trade.ToUserID} {
		if _, ok := r.s.users[userID]; !ok {
			return &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(userID)}
		}
	}
	stored := *trade
	r.s.trades[trade.ID] = &stored
	r.s.tradeOrder = append(r.s.tradeOrder, trade.ID)
	return nil
}

func (r *TradeRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trade, ok := r.s.trades[id]
	if !ok {
		return nil, nil
	}
	found := *trade
	return &found, nil
}

func (r *TradeRepository) FindByUserID(_ context.Context, userID int) ([]domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trades := make([]domain.Trade, 0)
	for _, id := range r.s.tradeOrder {
		if trade := r.s.trades[id]; trade.Involves(userID) {
			trades = append(trades, *trade)
		}
	}
	return trades, nil
}

func (r *TradeRepository) FindStalePending(_ context.Context, before time.Time, limit uint32) ([]domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trades := make([]domain.Trade, 0)
	for _, id := range r.s.tradeOrder {
		trade := r.s.trades[id]
		if trade.Status == domain.TradePending && trade.CreatedAt.Before(before) {
			trades = append(trades, *trade)
		}
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].CreatedAt.Before(trades[j].CreatedAt)
	})
	if uint32(len(trades)) > limit {
		trades = trades[:limit]
	}
	return trades, nil
}

func (r *TradeRepository) CountByStatus(_ context.Context, userID int) (domain.TradeStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var stats domain.TradeStats
	for _, trade := range r.s.trades {
		if !trade.Involves(userID) {
			continue
		}
		switch trade.Status {
		case domain.TradePending:
			stats.Pending++
		case domain.TradeAccepted:
			stats.Accepted++
		case domain.TradeRejected:
			stats.Rejected++
		case domain.TradeCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (r *TradeRepository) Resolve(_ context.Context, id uuid.UUID, status domain.TradeStatus, resolvedAt time.Time) (*domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trade, err := r.pending(id)
	if err != nil {
		return nil, err
	}
	return r.resolve(trade, status, resolvedAt), nil
}

func (r *TradeRepository) Settle(_ context.Context, id uuid.UUID, resolvedAt time.Time) (*domain.Trade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	trade, err := r.pending(id)
	if err != nil {
		return nil, err
	}
	fromUser, ok := r.s.users[trade.FromUserID]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(trade.FromUserID)}
	}
	toUser, ok := r.s.users[trade.ToUserID]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(trade.ToUserID)}
	}

	from, to, err := ledger.Transfer(
		ledger.Account{UserID: fromUser.ID, Tokens: fromUser.Tokens},
		ledger.Account{UserID: toUser.ID, Tokens: toUser.Tokens},
		trade.Tokens,
	)
	if err != nil {
		return nil, err
	}
	fromUser.Tokens = from.Tokens
	toUser.Tokens = to.Tokens
	return r.resolve(trade, domain.TradeAccepted, resolvedAt), nil
}

// pending must be called with the lock held.
func (r *TradeRepository) pending(id uuid.UUID) (*domain.Trade, error) {
	trade, ok := r.s.trades[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "trade", ID: id.String()}
	}
	if trade.Status != domain.TradePending {
		return nil, &domain.InvalidStateError{TradeID: id.String(), Status: trade.Status}
	}
	return trade, nil
}

func (r *TradeRepository) resolve(trade *domain.Trade, status domain.TradeStatus, resolvedAt time.Time) *domain.Trade {
	at := resolvedAt
	trade.Status = status
	trade.ResolvedAt = &at
	resolved := *trade
	return &resolved
}

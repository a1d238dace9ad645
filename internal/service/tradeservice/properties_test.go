package tradeservice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/repo/memrepo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TradeFlowSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memrepo.Store
	service *Service
}

func (s *TradeFlowSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memrepo.New()
	s.service = New(s.store.Trades, s.store.Offers)
}

func (s *TradeFlowSuite) user(login string, tokens int64) int {
	user, err := s.store.Users.Create(s.ctx, &domain.User{Login: login, Tokens: tokens})
	s.Require().NoError(err)
	return user.ID
}

func (s *TradeFlowSuite) tokens(userID int) int64 {
	user, err := s.store.Users.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().NotNil(user)
	return user.Tokens
}

func (s *TradeFlowSuite) offer(ownerID int, tokens int64) *domain.Offer {
	offer := &domain.Offer{
		ID:          uuid.New(),
		Title:       "Guitar lessons",
		Description: "One hour",
		App:         domain.AppTrueqia,
		OwnerUserID: ownerID,
		Tokens:      &tokens,
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.store.Offers.Create(s.ctx, offer))
	return offer
}

func (s *TradeFlowSuite) propose(from, to int, offer *domain.Offer) *domain.Trade {
	trade, err := s.service.CreateTrade(s.ctx, from, to, offer.ID, nil)
	s.Require().NoError(err)
	return trade
}

func (s *TradeFlowSuite) TestAcceptScenario() {
	a := s.user("alice", 100)
	b := s.user("bob", 0)
	trade := s.propose(a, b, s.offer(b, 40))
	s.Equal(domain.TradePending, trade.Status)

	accepted, err := s.service.AcceptTrade(s.ctx, trade.ID)
	s.Require().NoError(err)
	s.Equal(domain.TradeAccepted, accepted.Status)
	s.NotNil(accepted.ResolvedAt)
	s.Equal(int64(60), s.tokens(a))
	s.Equal(int64(40), s.tokens(b))

	_, err = s.service.AcceptTrade(s.ctx, trade.ID)
	s.ErrorIs(err, domain.ErrInvalidState)
}

func (s *TradeFlowSuite) TestInsufficientTokensScenario() {
	a := s.user("alice", 10)
	b := s.user("bob", 0)
	trade := s.propose(a, b, s.offer(b, 40))

	_, err := s.service.AcceptTrade(s.ctx, trade.ID)
	s.ErrorIs(err, domain.ErrInsufficientTokens)

	stored, err := s.service.GetTrade(s.ctx, trade.ID)
	s.Require().NoError(err)
	s.Equal(domain.TradePending, stored.Status)
	s.Nil(stored.ResolvedAt)
	s.Equal(int64(10), s.tokens(a))
	s.Equal(int64(0), s.tokens(b))
}

func (s *TradeFlowSuite) TestUnknownOfferCreatesNothing() {
	a := s.user("alice", 100)
	b := s.user("bob", 0)

	_, err := s.service.CreateTrade(s.ctx, a, b, uuid.New(), nil)
	s.ErrorIs(err, domain.ErrNotFound)

	trades, err := s.service.ListTradesForUser(s.ctx, a)
	s.Require().NoError(err)
	s.Empty(trades)
}

func (s *TradeFlowSuite) TestListRoundTrip() {
	a := s.user("alice", 100)
	b := s.user("bob", 0)
	c := s.user("carol", 0)
	offers := []*domain.Offer{s.offer(b, 5), s.offer(c, 7), s.offer(b, 0)}

	var created []*domain.Trade
	for i, offer := range offers {
		if i == 1 {
			created = append(created, s.propose(a, c, offer))
			continue
		}
		created = append(created, s.propose(a, b, offer))
	}
	s.propose(c, b, offers[0])

	trades, err := s.service.ListTradesForUser(s.ctx, a)
	s.Require().NoError(err)
	s.Require().Len(trades, len(created))
	for i, trade := range trades {
		s.Equal(created[i].ID, trade.ID)
		s.Equal(created[i].OfferID, trade.OfferID)
		s.Equal(created[i].FromUserID, trade.FromUserID)
		s.Equal(created[i].ToUserID, trade.ToUserID)
		s.Equal(created[i].Tokens, trade.Tokens)
		s.Equal(domain.TradePending, trade.Status)
	}
}

func (s *TradeFlowSuite) TestTerminalStatesAreFinal() {
	a := s.user("alice", 100)
	b := s.user("bob", 0)
	offer := s.offer(b, 10)

	resolvers := map[domain.TradeStatus]func(context.Context, uuid.UUID) (*domain.Trade, error){
		domain.TradeAccepted:  s.service.AcceptTrade,
		domain.TradeRejected:  s.service.RejectTrade,
		domain.TradeCancelled: s.service.CancelTrade,
	}
	for status, resolve := range resolvers {
		trade := s.propose(a, b, offer)
		resolved, err := resolve(s.ctx, trade.ID)
		s.Require().NoError(err)
		s.Equal(status, resolved.Status)

		for _, again := range resolvers {
			_, err := again(s.ctx, trade.ID)
			s.ErrorIs(err, domain.ErrInvalidState)
		}
		stored, err := s.service.GetTrade(s.ctx, trade.ID)
		s.Require().NoError(err)
		s.Equal(status, stored.Status)
		s.Equal(resolved.ResolvedAt, stored.ResolvedAt)
	}
}

func (s *TradeFlowSuite) TestRejectAndCancelKeepBalances() {
	a := s.user("alice", 100)
	b := s.user("bob", 3)
	offer := s.offer(b, 25)

	rejected, err := s.service.RejectTrade(s.ctx, s.propose(a, b, offer).ID)
	s.Require().NoError(err)
	s.Equal(domain.TradeRejected, rejected.Status)

	cancelled, err := s.service.CancelTrade(s.ctx, s.propose(a, b, offer).ID)
	s.Require().NoError(err)
	s.Equal(domain.TradeCancelled, cancelled.Status)

	_, err = s.service.CancelTrade(s.ctx, cancelled.ID)
	s.ErrorIs(err, domain.ErrInvalidState)

	s.Equal(int64(100), s.tokens(a))
	s.Equal(int64(3), s.tokens(b))
}

func (s *TradeFlowSuite) TestConservation() {
	a := s.user("alice", 1000)
	b := s.user("bob", 17)
	for _, price := range []int64{0, 1, 33, 250, 716} {
		beforeA, beforeB := s.tokens(a), s.tokens(b)
		trade := s.propose(a, b, s.offer(b, price))

		_, err := s.service.AcceptTrade(s.ctx, trade.ID)
		s.Require().NoError(err)
		s.Equal(beforeA-price, s.tokens(a))
		s.Equal(beforeB+price, s.tokens(b))
		s.Equal(beforeA+beforeB, s.tokens(a)+s.tokens(b))
	}

	trade := s.propose(a, b, s.offer(b, 1))
	_, err := s.service.AcceptTrade(s.ctx, trade.ID)
	s.ErrorIs(err, domain.ErrInsufficientTokens)
	s.Equal(int64(0), s.tokens(a))
}

func (s *TradeFlowSuite) TestConcurrentAcceptReject() {
	a := s.user("alice", 100)
	b := s.user("bob", 0)

	for round := 0; round < 20; round++ {
		trade := s.propose(a, b, s.offer(b, 1))
		beforeA, beforeB := s.tokens(a), s.tokens(b)

		var (
			wg      sync.WaitGroup
			results [2]error
		)
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, results[0] = s.service.AcceptTrade(s.ctx, trade.ID)
		}()
		go func() {
			defer wg.Done()
			<-start
			_, results[1] = s.service.RejectTrade(s.ctx, trade.ID)
		}()
		close(start)
		wg.Wait()

		stored, err := s.service.GetTrade(s.ctx, trade.ID)
		s.Require().NoError(err)
		switch {
		case results[0] == nil:
			s.ErrorIs(results[1], domain.ErrInvalidState)
			s.Equal(domain.TradeAccepted, stored.Status)
			s.Equal(beforeA-1, s.tokens(a))
			s.Equal(beforeB+1, s.tokens(b))
		case results[1] == nil:
			s.ErrorIs(results[0], domain.ErrInvalidState)
			s.Equal(domain.TradeRejected, stored.Status)
			s.Equal(beforeA, s.tokens(a))
			s.Equal(beforeB, s.tokens(b))
		default:
			s.Failf("no winner", "accept: %v, reject: %v", results[0], results[1])
		}
	}
}

func TestTradeFlowSuite(t *testing.T) {
	suite.Run(t, new(TradeFlowSuite))
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/GlebRadaev/trueqia/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New(&config.Config{})
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestStart_InvalidLogLevel() {
	s.app = New(&config.Config{LogLvl: "verbose", Database: config.MemoryDatabase})

	err := s.app.Start(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't init logger")
}

func (s *ApplicationSuite) TestStart_UnreachableDatabase() {
	s.app = New(&config.Config{LogLvl: "error", Database: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"})

	err := s.app.Start(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestStart_InMemoryTradeFlow() {
	address := s.freeAddress()
	s.app = New(&config.Config{
		Address:        address,
		Database:       config.MemoryDatabase,
		LogLvl:         "error",
		JWTSecret:      "secret",
		InitialTokens:  100,
		ExpireInterval: time.Minute,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.app.Start(ctx))
	s.True(s.app.ready)
	baseURL := "http://" + address
	s.Require().Eventually(func() bool {
		resp, err := http.Get(baseURL + "/api/user/balance")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 2*time.Second, 10*time.Millisecond)

	alice := s.register(baseURL, "alice")
	bob := s.register(baseURL, "bob")

	var created dto.CreateOfferResponseDTO
	s.call(baseURL, http.MethodPost, "/api/offers", bob,
		`{"title":"Guitar lessons","description":"One hour per week, beginners welcome","owner_app":"trueqia","tokens":40}`,
		http.StatusCreated, &created)
	s.False(created.Moderation.Flagged)

	var trade dto.TradeResponseDTO
	s.call(baseURL, http.MethodPost, "/api/trades", alice, `{"offer_id":"`+created.Offer.ID+`"}`, http.StatusCreated, &trade)
	s.Equal(created.Offer.OwnerUserID, trade.ToUserID)
	s.Equal(int64(40), trade.Tokens)

	s.call(baseURL, http.MethodPost, "/api/trades/"+trade.ID+"/accept", alice, "", http.StatusForbidden, nil)

	var accepted dto.AcceptTradeResponseDTO
	s.call(baseURL, http.MethodPost, "/api/trades/"+trade.ID+"/accept", bob, "", http.StatusOK, &accepted)
	s.Equal("accepted", accepted.Trade.Status)
	s.True(strings.HasPrefix(accepted.Contract, "TRADE AGREEMENT "+trade.ID))

	s.call(baseURL, http.MethodPost, "/api/trades/"+trade.ID+"/cancel", alice, "", http.StatusConflict, nil)

	var balance dto.BalanceResponseDTO
	s.call(baseURL, http.MethodGet, "/api/user/balance", alice, "", http.StatusOK, &balance)
	s.Equal(int64(60), balance.Tokens)
	s.Equal(1, balance.Trades.Accepted)
	s.call(baseURL, http.MethodGet, "/api/user/balance", bob, "", http.StatusOK, &balance)
	s.Equal(int64(140), balance.Tokens)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_RemoteContractService() {
	var pinged atomic.Bool
	contracts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			pinged.Store(true)
			w.WriteHeader(http.StatusOK)
		case "/api/contracts":
			_, _ = w.Write([]byte(`{"text":"signed by the contract service"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer contracts.Close()

	address := s.freeAddress()
	s.app = New(&config.Config{
		Address:         address,
		Database:        config.MemoryDatabase,
		LogLvl:          "error",
		JWTSecret:       "secret",
		InitialTokens:   100,
		PasswordCost:    4,
		ContractAddress: contracts.URL,
		ContractTimeout: time.Second,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.app.Start(ctx))
	s.True(pinged.Load())
	baseURL := "http://" + address
	s.Require().Eventually(func() bool {
		resp, err := http.Get(baseURL + "/api/offers")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 2*time.Second, 10*time.Millisecond)

	alice := s.register(baseURL, "alice")
	bob := s.register(baseURL, "bob")

	var created dto.CreateOfferResponseDTO
	s.call(baseURL, http.MethodPost, "/api/offers", bob,
		`{"title":"Bike repair","description":"Brakes and gears tuned at home","owner_app":"trueqia","tokens":15}`,
		http.StatusCreated, &created)

	var trade dto.TradeResponseDTO
	s.call(baseURL, http.MethodPost, "/api/trades", alice, `{"offer_id":"`+created.Offer.ID+`"}`, http.StatusCreated, &trade)

	var accepted dto.AcceptTradeResponseDTO
	s.call(baseURL, http.MethodPost, "/api/trades/"+trade.ID+"/accept", bob, "", http.StatusOK, &accepted)
	s.Equal("signed by the contract service", accepted.Contract)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) freeAddress() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer l.Close()
	return l.Addr().String()
}

func (s *ApplicationSuite) register(baseURL, login string) string {
	body := `{"login":"` + login + `","password":"password123"}`
	resp, err := http.Post(baseURL+"/api/user/register", "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	token := resp.Header.Get("Authorization")
	s.Require().True(strings.HasPrefix(token, "Bearer "))
	return token
}

func (s *ApplicationSuite) call(baseURL, method, path, token, body string, status int, out any) {
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader([]byte(body)))
	s.Require().NoError(err)
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(status, resp.StatusCode, "%s %s", method, path)
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
}

package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/trueqia/docs"
	authhandlers "github.com/GlebRadaev/trueqia/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/trueqia/internal/handlers/balance"
	offershandlers "github.com/GlebRadaev/trueqia/internal/handlers/offers"
	tradeshandlers "github.com/GlebRadaev/trueqia/internal/handlers/trades"
	"github.com/GlebRadaev/trueqia/internal/service"
	"github.com/GlebRadaev/trueqia/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type OfferHandler interface {
	CreateOffer(w http.ResponseWriter, r *http.Request)
	ListOffers(w http.ResponseWriter, r *http.Request)
	GetOffer(w http.ResponseWriter, r *http.Request)
}

type TradeHandler interface {
	CreateTrade(w http.ResponseWriter, r *http.Request)
	GetTrades(w http.ResponseWriter, r *http.Request)
	GetTrade(w http.ResponseWriter, r *http.Request)
	AcceptTrade(w http.ResponseWriter, r *http.Request)
	RejectTrade(w http.ResponseWriter, r *http.Request)
	CancelTrade(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	OfferHandler   OfferHandler
	TradeHandler   TradeHandler
	JWTService     auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		OfferHandler:   offershandlers.New(s.OfferService),
		TradeHandler:   tradeshandlers.New(s.TradeService, s.OfferService, s.ContractGenerator),
		JWTService:     s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))
			r.Get("/user/balance", h.BalanceHandler.GetBalance)
			r.Route("/offers", func(r chi.Router) {
				r.Post("/", h.OfferHandler.CreateOffer)
				r.Get("/", h.OfferHandler.ListOffers)
				r.Get("/{id}", h.OfferHandler.GetOffer)
			})
			r.Route("/trades", func(r chi.Router) {
				r.Post("/", h.TradeHandler.CreateTrade)
				r.Get("/", h.TradeHandler.GetTrades)
				r.Get("/{id}", h.TradeHandler.GetTrade)
				r.Post("/{id}/accept", h.TradeHandler.AcceptTrade)
				r.Post("/{id}/reject", h.TradeHandler.RejectTrade)
				r.Post("/{id}/cancel", h.TradeHandler.CancelTrade)
			})
		})
	})

	return r
}

package service

import (
	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/GlebRadaev/trueqia/internal/contractgen"
	"github.com/GlebRadaev/trueqia/internal/handlers/auth"
	"github.com/GlebRadaev/trueqia/internal/handlers/balance"
	"github.com/GlebRadaev/trueqia/internal/handlers/offers"
	"github.com/GlebRadaev/trueqia/internal/handlers/trades"
	"github.com/GlebRadaev/trueqia/pkg/clients"

	pkgauth "github.com/GlebRadaev/trueqia/pkg/auth"

	"github.com/GlebRadaev/trueqia/internal/repo"
	authservice "github.com/GlebRadaev/trueqia/internal/service/authservice"
	balanceservice "github.com/GlebRadaev/trueqia/internal/service/balanceservice"
	offerservice "github.com/GlebRadaev/trueqia/internal/service/offerservice"
	tradeservice "github.com/GlebRadaev/trueqia/internal/service/tradeservice"
)

type Services struct {
	AuthService       auth.Service
	BalanceService    balance.Service
	OfferService      offers.Service
	TradeService      trades.Service
	JWTService        pkgauth.JWTServiceInterface
	ContractGenerator contractgen.Generator
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(cfg.PasswordCost), jwtService, cfg.InitialTokens)
	balanceService := balanceservice.New(repo.UserRepo, repo.TradeRepo)
	offerService := offerservice.New(repo.OfferRepo)
	tradeService := tradeservice.New(repo.TradeRepo, repo.OfferRepo)

	return &Services{
		AuthService:       authService,
		BalanceService:    balanceService,
		OfferService:      offerService,
		TradeService:      tradeService,
		JWTService:        jwtService,
		ContractGenerator: contractgen.New(cfg.ContractAddress, clients.NewHTTPClient(cfg.ContractTimeout)),
	}
}

package repo

import (
	"github.com/GlebRadaev/trueqia/internal/expiry"
	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/GlebRadaev/trueqia/internal/repo/memrepo"
	offerrepo "github.com/GlebRadaev/trueqia/internal/repo/offer-repo"
	traderepo "github.com/GlebRadaev/trueqia/internal/repo/trade-repo"
	userrepo "github.com/GlebRadaev/trueqia/internal/repo/user-repo"
	"github.com/GlebRadaev/trueqia/internal/service/authservice"
	"github.com/GlebRadaev/trueqia/internal/service/balanceservice"
	"github.com/GlebRadaev/trueqia/internal/service/offerservice"
	"github.com/GlebRadaev/trueqia/internal/service/tradeservice"
)

type UserRepo interface {
	authservice.Repo
	balanceservice.UserRepo
}

type TradeRepo interface {
	tradeservice.TradeRepo
	balanceservice.TradeStatsRepo
	expiry.Repo
}

type Repositories struct {
	UserRepo  UserRepo
	OfferRepo offerservice.Repo
	TradeRepo TradeRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	offerRepo := offerrepo.New(conn)
	tradeRepo := traderepo.New(conn, txManager)

	return &Repositories{
		UserRepo:  userRepo,
		OfferRepo: offerRepo,
		TradeRepo: tradeRepo,
	}
}

// NewInMemory backs every repository with one in-process store.
func NewInMemory() *Repositories {
	store := memrepo.New()

	return &Repositories{
		UserRepo:  store.Users,
		OfferRepo: store.Offers,
		TradeRepo: store.Trades,
	}
}

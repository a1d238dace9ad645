package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID             int             `db:"id"`
	Login          string          `db:"login"`
	PasswordHash   string          `db:"password_hash"`
	Tokens         int64           `db:"tokens"`
	AllwainBalance decimal.Decimal `db:"allwain_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}

// OwnerApp tells which sub-application an offer belongs to and therefore how it is priced.
type OwnerApp string

const (
	// AppTrueqia barter offers, priced in tokens.
	AppTrueqia OwnerApp = "trueqia"
	// AppAllwain shop offers, priced in currency.
	AppAllwain OwnerApp = "allwain"
)

func (a OwnerApp) Valid() bool {
	return a == AppTrueqia || a == AppAllwain
}

type Offer struct {
	ID          uuid.UUID           `db:"id"`
	Title       string              `db:"title"`
	Description string              `db:"description"`
	App         OwnerApp            `db:"owner_app"`
	OwnerUserID int                 `db:"owner_user_id"`
	Tokens      *int64              `db:"tokens"`
	Price       decimal.NullDecimal `db:"price"`
	ProductID   *string             `db:"product_id"`
	Meta        map[string]string   `db:"meta"`
	CreatedAt   time.Time           `db:"created_at"`
}

// NewOffer is the caller supplied part of an offer.
type NewOffer struct {
	Title       string
	Description string
	App         OwnerApp
	Tokens      *int64
	Price       decimal.NullDecimal
	ProductID   *string
	Meta        map[string]string
}

type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeRejected  TradeStatus = "rejected"
	TradeCancelled TradeStatus = "cancelled"
)

func (s TradeStatus) Terminal() bool {
	return s == TradeAccepted || s == TradeRejected || s == TradeCancelled
}

type Trade struct {
	ID         uuid.UUID   `db:"id"`
	OfferID    uuid.UUID   `db:"offer_id"`
	FromUserID int         `db:"from_user_id"`
	ToUserID   int         `db:"to_user_id"`
	Tokens     int64       `db:"tokens"`
	Status     TradeStatus `db:"status"`
	CreatedAt  time.Time   `db:"created_at"`
	ResolvedAt *time.Time  `db:"resolved_at"`
}

// Involves reports whether the user is either party of the trade.
func (t *Trade) Involves(userID int) bool {
	return t.FromUserID == userID || t.ToUserID == userID
}

// TradeStats counts a user's trades by status, both as initiator and counterparty.
type TradeStats struct {
	Pending   int
	Accepted  int
	Rejected  int
	Cancelled int
}

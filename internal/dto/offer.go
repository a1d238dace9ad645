package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOfferRequestDTO struct {
	Title       string              `json:"title" example:"Guitar lessons"`
	Description string              `json:"description" example:"One hour per week, beginners welcome"`
	App         string              `json:"owner_app" example:"trueqia"`
	Tokens      *int64              `json:"tokens,omitempty" example:"40"`
	Price       decimal.NullDecimal `json:"price" swaggertype:"string" example:"19.99"`
	ProductID   *string             `json:"product_id,omitempty"`
	Meta        map[string]string   `json:"meta,omitempty"`
}

type OfferResponseDTO struct {
	ID          string              `json:"id" example:"01929b6e-7c1a-7d3e-9a51-5f8b3c2d1e0f"`
	Title       string              `json:"title" example:"Guitar lessons"`
	Description string              `json:"description" example:"One hour per week, beginners welcome"`
	App         string              `json:"owner_app" example:"trueqia"`
	OwnerUserID int                 `json:"owner_user_id" example:"2"`
	Tokens      *int64              `json:"tokens,omitempty" example:"40"`
	Price       decimal.NullDecimal `json:"price" swaggertype:"string"`
	ProductID   *string             `json:"product_id,omitempty"`
	Meta        map[string]string   `json:"meta,omitempty"`
	CreatedAt   time.Time           `json:"created_at" example:"2024-10-15T16:09:57Z"`
}

type ModerationDTO struct {
	Score   float64  `json:"score" example:"0.3"`
	Flagged bool     `json:"flagged" example:"false"`
	Reasons []string `json:"reasons"`
}

type CreateOfferResponseDTO struct {
	Offer      OfferResponseDTO `json:"offer"`
	Moderation ModerationDTO    `json:"moderation"`
}

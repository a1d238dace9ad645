package dto

import "time"

type CreateTradeRequestDTO struct {
	OfferID  string `json:"offer_id" example:"01929b6e-7c1a-7d3e-9a51-5f8b3c2d1e0f"`
	ToUserID int    `json:"to_user_id,omitempty" example:"2"`
	Tokens   *int64 `json:"tokens,omitempty" example:"40"`
}

type TradeResponseDTO struct {
	ID         string     `json:"id" example:"01929b6f-0a4c-7b21-8d3e-2c6f9e1a5b7d"`
	OfferID    string     `json:"offer_id" example:"01929b6e-7c1a-7d3e-9a51-5f8b3c2d1e0f"`
	FromUserID int        `json:"from_user_id" example:"1"`
	ToUserID   int        `json:"to_user_id" example:"2"`
	Tokens     int64      `json:"tokens" example:"40"`
	Status     string     `json:"status" example:"pending"`
	CreatedAt  time.Time  `json:"created_at" example:"2024-10-15T16:09:57Z"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type AcceptTradeResponseDTO struct {
	Trade    TradeResponseDTO `json:"trade"`
	Contract string           `json:"contract,omitempty"`
}

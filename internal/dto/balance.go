package dto

import "github.com/shopspring/decimal"

type TradeCountsDTO struct {
	Pending   int `json:"pending" example:"1"`
	Accepted  int `json:"accepted" example:"7"`
	Rejected  int `json:"rejected" example:"2"`
	Cancelled int `json:"cancelled" example:"0"`
}

type ReputationDTO struct {
	Score int    `json:"score" example:"78"`
	Level string `json:"level" example:"trusted"`
}

type BalanceResponseDTO struct {
	Tokens         int64           `json:"tokens" example:"100"`
	AllwainBalance decimal.Decimal `json:"allwain_balance" swaggertype:"string" example:"12.50"`
	Trades         TradeCountsDTO  `json:"trades"`
	Reputation     ReputationDTO   `json:"reputation"`
}

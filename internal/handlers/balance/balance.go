package balance

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/trueqia/internal/dto"
	"github.com/GlebRadaev/trueqia/internal/handlers/httperr"
	balanceservice "github.com/GlebRadaev/trueqia/internal/service/balanceservice"
	"github.com/GlebRadaev/trueqia/pkg/auth"
	"github.com/GlebRadaev/trueqia/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*balanceservice.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the token balance, the Allwain balance, trade counts and reputation of the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Balances and reputation"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Tokens:         balance.Tokens,
		AllwainBalance: balance.AllwainBalance,
		Trades: dto.TradeCountsDTO{
			Pending:   balance.Trades.Pending,
			Accepted:  balance.Trades.Accepted,
			Rejected:  balance.Trades.Rejected,
			Cancelled: balance.Trades.Cancelled,
		},
		Reputation: dto.ReputationDTO{
			Score: balance.Reputation.Score,
			Level: string(balance.Reputation.Level),
		},
	})
}

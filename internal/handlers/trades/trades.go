package trades

//go:generate mockgen -source=trades.go -destination=mock_trades.go -package=trades

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/trueqia/internal/contractgen"
	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/dto"
	"github.com/GlebRadaev/trueqia/internal/handlers/httperr"
	"github.com/GlebRadaev/trueqia/pkg/auth"
	"github.com/GlebRadaev/trueqia/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateTrade(ctx context.Context, fromUserID, toUserID int, offerID uuid.UUID, tokens *int64) (*domain.Trade, error)
	GetTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	AcceptTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	RejectTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	CancelTrade(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	ListTradesForUser(ctx context.Context, userID int) ([]domain.Trade, error)
}

type OfferService interface {
	GetOffer(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
}

type TradeHandler struct {
	tradeService Service
	offerService OfferService
	contracts    contractgen.Generator
}

func New(tradeService Service, offerService OfferService, contracts contractgen.Generator) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
		offerService: offerService,
		contracts:    contracts,
	}
}

// CreateTrade godoc
//
//	@Summary		Propose a trade
//	@Description	Propose a trade against an offer. The caller is the initiator and pays the tokens on acceptance.
//	@Description	When to_user_id is omitted the offer owner is the counterparty.
//	@Tags			Trades
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTradeRequestDTO	true	"Trade proposal"
//	@Success		201		{object}	dto.TradeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid proposal"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Offer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/trades [post]
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateTradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offer id")
		return
	}

	toUserID := req.ToUserID
	if toUserID == 0 {
		offer, err := h.offerService.GetOffer(r.Context(), offerID)
		if err != nil {
			httperr.Respond(w, err)
			return
		}
		toUserID = offer.OwnerUserID
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), userID, toUserID, offerID, req.Tokens)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTradeDTO(trade))
}

// GetTrades godoc
//
//	@Summary		List the caller's trades
//	@Description	List trades where the caller is either party, oldest first.
//	@Tags			Trades
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TradeResponseDTO
//	@Success		204	{object}	utils.Response	"No trades"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/trades [get]
func (h *TradeHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trades, err := h.tradeService.ListTradesForUser(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(trades) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Trades not found")
		return
	}

	response := make([]dto.TradeResponseDTO, len(trades))
	for i := range trades {
		response[i] = toTradeDTO(&trades[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTrade godoc
//
//	@Summary	Get a trade
//	@Tags		Trades
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Trade id"
//	@Success	200	{object}	dto.TradeResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid trade id"
//	@Failure	403	{object}	utils.Response	"Caller is not a party of the trade"
//	@Failure	404	{object}	utils.Response	"Trade not found"
//	@Router		/api/trades/{id} [get]
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	trade, ok := h.loadTrade(w, r, func(t *domain.Trade, userID int) bool { return t.Involves(userID) })
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTradeDTO(trade))
}

// AcceptTrade godoc
//
//	@Summary		Accept a trade
//	@Description	Accept a pending trade addressed to the caller. Tokens move from the initiator to the caller
//	@Description	and the response carries the contract text.
//	@Tags			Trades
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Trade id"
//	@Success		200	{object}	dto.AcceptTradeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid trade id"
//	@Failure		402	{object}	utils.Response	"Initiator has insufficient tokens"
//	@Failure		403	{object}	utils.Response	"Caller is not the counterparty"
//	@Failure		404	{object}	utils.Response	"Trade not found"
//	@Failure		409	{object}	utils.Response	"Trade is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/trades/{id}/accept [post]
func (h *TradeHandler) AcceptTrade(w http.ResponseWriter, r *http.Request) {
	trade, ok := h.loadTrade(w, r, isCounterparty)
	if !ok {
		return
	}

	accepted, err := h.tradeService.AcceptTrade(r.Context(), trade.ID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AcceptTradeResponseDTO{
		Trade:    toTradeDTO(accepted),
		Contract: h.contractText(r.Context(), accepted),
	})
}

// RejectTrade godoc
//
//	@Summary	Reject a trade
//	@Tags		Trades
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Trade id"
//	@Success	200	{object}	dto.TradeResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid trade id"
//	@Failure	403	{object}	utils.Response	"Caller is not the counterparty"
//	@Failure	404	{object}	utils.Response	"Trade not found"
//	@Failure	409	{object}	utils.Response	"Trade is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/trades/{id}/reject [post]
func (h *TradeHandler) RejectTrade(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, isCounterparty, h.tradeService.RejectTrade)
}

// CancelTrade godoc
//
//	@Summary	Cancel a trade
//	@Tags		Trades
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Trade id"
//	@Success	200	{object}	dto.TradeResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid trade id"
//	@Failure	403	{object}	utils.Response	"Caller is not the initiator"
//	@Failure	404	{object}	utils.Response	"Trade not found"
//	@Failure	409	{object}	utils.Response	"Trade is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/trades/{id}/cancel [post]
func (h *TradeHandler) CancelTrade(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, isInitiator, h.tradeService.CancelTrade)
}

func (h *TradeHandler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	allowed func(*domain.Trade, int) bool,
	action func(context.Context, uuid.UUID) (*domain.Trade, error),
) {
	trade, ok := h.loadTrade(w, r, allowed)
	if !ok {
		return
	}

	resolved, err := action(r.Context(), trade.ID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTradeDTO(resolved))
}

// loadTrade fetches the trade named in the path and checks that the caller may act on it.
// It writes the error response itself and reports whether the handler should go on.
func (h *TradeHandler) loadTrade(w http.ResponseWriter, r *http.Request, allowed func(*domain.Trade, int) bool) (*domain.Trade, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trade id")
		return nil, false
	}

	trade, err := h.tradeService.GetTrade(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return nil, false
	}
	if !allowed(trade, userID) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return nil, false
	}
	return trade, true
}

// contractText is best effort: the trade is already settled, so failures only drop the text.
func (h *TradeHandler) contractText(ctx context.Context, trade *domain.Trade) string {
	offer, err := h.offerService.GetOffer(ctx, trade.OfferID)
	if err != nil {
		zap.L().Warn("can't load offer for contract", zap.String("trade_id", trade.ID.String()), zap.Error(err))
		return ""
	}

	resolvedAt := time.Now()
	if trade.ResolvedAt != nil {
		resolvedAt = *trade.ResolvedAt
	}
	text, err := h.contracts.Generate(ctx, contractgen.Summary{
		TradeID:    trade.ID,
		OfferTitle: offer.Title,
		FromUserID: trade.FromUserID,
		ToUserID:   trade.ToUserID,
		Tokens:     trade.Tokens,
		ResolvedAt: resolvedAt,
	})
	if err != nil {
		zap.L().Warn("can't generate contract", zap.String("trade_id", trade.ID.String()), zap.Error(err))
		return ""
	}
	return text
}

func isCounterparty(trade *domain.Trade, userID int) bool {
	return trade.ToUserID == userID
}

func isInitiator(trade *domain.Trade, userID int) bool {
	return trade.FromUserID == userID
}

func toTradeDTO(trade *domain.Trade) dto.TradeResponseDTO {
	return dto.TradeResponseDTO{
		ID:         trade.ID.String(),
		OfferID:    trade.OfferID.String(),
		FromUserID: trade.FromUserID,
		ToUserID:   trade.ToUserID,
		Tokens:     trade.Tokens,
		Status:     string(trade.Status),
		CreatedAt:  trade.CreatedAt,
		ResolvedAt: trade.ResolvedAt,
	}
}

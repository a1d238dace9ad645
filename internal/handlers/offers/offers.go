package offers

//go:generate mockgen -source=offers.go -destination=mock_offers.go -package=offers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/dto"
	"github.com/GlebRadaev/trueqia/internal/handlers/httperr"
	"github.com/GlebRadaev/trueqia/internal/scoring"
	"github.com/GlebRadaev/trueqia/pkg/auth"
	"github.com/GlebRadaev/trueqia/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateOffer(ctx context.Context, ownerUserID int, input domain.NewOffer) (*domain.Offer, error)
	ListOffers(ctx context.Context, app domain.OwnerApp, excludeUserID *int) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
}

type OfferHandler struct {
	offerService Service
}

func New(offerService Service) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// CreateOffer godoc
//
//	@Summary		Publish an offer
//	@Description	Publish a barter offer priced in tokens (trueqia) or a shop offer priced in currency (allwain).
//	@Description	The response carries a moderation verdict. Flagged offers are still published.
//	@Tags			Offers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOfferRequestDTO	true	"Offer"
//	@Success		201		{object}	dto.CreateOfferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid offer"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/offers [post]
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateOfferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	offer, err := h.offerService.CreateOffer(r.Context(), userID, domain.NewOffer{
		Title:       req.Title,
		Description: req.Description,
		App:         domain.OwnerApp(req.App),
		Tokens:      req.Tokens,
		Price:       req.Price,
		ProductID:   req.ProductID,
		Meta:        req.Meta,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	verdict := scoring.Moderate(offer.Title, offer.Description)
	if verdict.Flagged {
		zap.L().Info("offer flagged for review",
			zap.String("offer_id", offer.ID.String()),
			zap.Float64("score", verdict.Score),
			zap.Strings("reasons", verdict.Reasons))
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOfferResponseDTO{
		Offer: toOfferDTO(offer),
		Moderation: dto.ModerationDTO{
			Score:   verdict.Score,
			Flagged: verdict.Flagged,
			Reasons: verdict.Reasons,
		},
	})
}

// ListOffers godoc
//
//	@Summary		List offers of an app
//	@Description	List the offers published in trueqia or allwain, oldest first.
//	@Tags			Offers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			app			query		string	true	"trueqia or allwain"
//	@Param			exclude_mine	query		bool	false	"Hide the caller's own offers"
//	@Success		200			{array}		dto.OfferResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/offers [get]
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var excludeUserID *int
	if raw := r.URL.Query().Get("exclude_mine"); raw != "" {
		excludeMine, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid exclude_mine value")
			return
		}
		if excludeMine {
			excludeUserID = &userID
		}
	}

	offers, err := h.offerService.ListOffers(r.Context(), domain.OwnerApp(r.URL.Query().Get("app")), excludeUserID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.OfferResponseDTO, len(offers))
	for i := range offers {
		response[i] = toOfferDTO(&offers[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOffer godoc
//
//	@Summary		Get an offer
//	@Tags			Offers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Offer id"
//	@Success		200	{object}	dto.OfferResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid offer id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Offer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/offers/{id} [get]
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offer id")
		return
	}

	offer, err := h.offerService.GetOffer(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOfferDTO(offer))
}

func toOfferDTO(offer *domain.Offer) dto.OfferResponseDTO {
	return dto.OfferResponseDTO{
		ID:          offer.ID.String(),
		Title:       offer.Title,
		Description: offer.Description,
		App:         string(offer.App),
		OwnerUserID: offer.OwnerUserID,
		Tokens:      offer.Tokens,
		Price:       offer.Price,
		ProductID:   offer.ProductID,
		Meta:        offer.Meta,
		CreatedAt:   offer.CreatedAt,
	}
}

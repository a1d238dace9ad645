// Package httperr maps domain error kinds to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/pkg/utils"
	"go.uber.org/zap"
)

const internalMessage = "Internal server error"

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrLoginTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientTokens):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its mapped status. Internal failures never leak their cause.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, internalMessage)
		return
	}
	utils.RespondWithError(w, status, err.Error())
}

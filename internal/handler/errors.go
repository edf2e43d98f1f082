package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player ID"

	ErrMsgCreatePlayerFailed = "Failed to create player"
	ErrMsgGetPlayerFailed    = "Failed to get player"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgAddItemFailed      = "Failed to add item"
	ErrMsgUseItemFailed      = "Failed to use item"
	ErrMsgUseGachaFailed     = "Failed to perform gacha"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is busy. Please try again."

	ErrMsgPlayerNotFoundError   = "Player not found"
	ErrMsgNoItemsRemainingError = "No items remaining"
	ErrMsgUnknownItemError      = "Unknown item"
	ErrMsgStatAlreadyMaxError   = "Stat is already at max"
	ErrMsgHPAlreadyMaxError     = "HP is already at max"
	ErrMsgMPAlreadyMaxError     = "MP is already at max"
	ErrMsgNotEnoughMoneyError   = "Not enough money to perform Gacha."
	ErrMsgInsufficientItemsErr  = "Not enough items"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Rule rejections are client errors; storage faults never leak their cause.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var maxErr *domain.StatAlreadyMaxError
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrNoItemsRemaining):
		return http.StatusBadRequest, ErrMsgNoItemsRemainingError
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemError
	case errors.As(err, &maxErr):
		switch maxErr.Stat {
		case domain.StatHP:
			return http.StatusBadRequest, ErrMsgHPAlreadyMaxError
		case domain.StatMP:
			return http.StatusBadRequest, ErrMsgMPAlreadyMaxError
		}
		return http.StatusBadRequest, ErrMsgStatAlreadyMaxError
	case errors.Is(err, domain.ErrStatAlreadyMax):
		return http.StatusBadRequest, ErrMsgStatAlreadyMaxError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrTransactionFailed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

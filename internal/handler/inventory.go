package handler

import (
	"net/http"

	"github.com/osse101/PotionGacha_Go/internal/inventory"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// AddItemRequest grants count units of an item
type AddItemRequest struct {
	ItemID int `json:"itemId" validate:"gt=0"`
	Count  int `json:"count" validate:"gte=0,lte=10000"`
}

// UseItemRequest consumes one unit of an item
type UseItemRequest struct {
	ItemID int `json:"itemId" validate:"gt=0"`
}

// UseGachaRequest buys count gacha draws
type UseGachaRequest struct {
	Count int `json:"count" validate:"gt=0"`
}

// HandleAddItem grants items to a player
// @Summary Add item to inventory
// @Description Add count units of an item to a player's inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body AddItemRequest true "Item details"
// @Success 200 {object} domain.GrantResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /players/{id}/addItem [post]
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		result, err := svc.Grant(r.Context(), playerID, req.ItemID, req.Count)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Item added", "player_id", playerID, "item_id", req.ItemID, "count", result.Count)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUseItem consumes one item and applies its effect
// @Summary Use item
// @Description Consume one unit of an item and restore the stat it targets
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body UseItemRequest true "Item to use"
// @Success 200 {object} domain.ConsumeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /players/{id}/useItem [post]
func HandleUseItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		result, err := svc.Consume(r.Context(), playerID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgUseItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUseGacha charges for and settles a batch of gacha draws
// @Summary Use gacha
// @Description Spend currency on count weighted draws and credit the winnings
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body UseGachaRequest true "Number of draws"
// @Success 200 {object} domain.GachaResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /players/{id}/useGacha [post]
func HandleUseGacha(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		var req UseGachaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use gacha"); err != nil {
			return
		}

		result, err := svc.DrawGacha(r.Context(), playerID, req.Count)
		if err != nil {
			respondServiceError(w, r, ErrMsgUseGachaFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

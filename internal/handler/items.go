package handler

import (
	"net/http"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// ItemLister exposes the static item catalog
type ItemLister interface {
	Items() []domain.ItemDefinition
}

// ItemsResponse lists the catalog
type ItemsResponse struct {
	Items []domain.ItemDefinition `json:"items"`
}

// HandleListItems returns every catalog item
// @Summary List items
// @Description Static item catalog with effects and gacha weights
// @Tags items
// @Produce json
// @Success 200 {object} ItemsResponse
// @Router /items [get]
func HandleListItems(items ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ItemsResponse{Items: items.Items()})
	}
}

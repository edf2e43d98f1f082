package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// PlayerRegistry creates and reads players and their item rows
type PlayerRegistry interface {
	CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error)
	GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error)
}

// CreatePlayerRequest holds the starting stats of a new player
type CreatePlayerRequest struct {
	HP       int `json:"hp" validate:"gte=0"`
	MP       int `json:"mp" validate:"gte=0"`
	Currency int `json:"currency" validate:"gte=0"`
}

// PlayerItemsResponse lists every item row of a player
type PlayerItemsResponse struct {
	PlayerID int64              `json:"playerId"`
	Items    []domain.ItemCount `json:"items"`
}

// HandleCreatePlayer creates a player
// @Summary Create player
// @Description Create a player with starting HP, MP and currency
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Starting stats"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [post]
func HandleCreatePlayer(reg PlayerRegistry, limits domain.Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}
		if req.HP > limits.MaxHP || req.MP > limits.MaxMP {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error: ErrMsgInvalidRequestSummary,
				Fields: map[string]string{
					"hp": fmt.Sprintf("Must be at most %d", limits.MaxHP),
					"mp": fmt.Sprintf("Must be at most %d", limits.MaxMP),
				},
			})
			return
		}

		player, err := reg.CreatePlayer(r.Context(), domain.Player{HP: req.HP, MP: req.MP, Currency: req.Currency})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreatePlayerFailed, err)
			return
		}

		log.Info("Player created", "player_id", player.ID)
		respondJSON(w, http.StatusCreated, player)
	}
}

// HandleGetPlayer returns a player's stats
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{id} [get]
func HandleGetPlayer(reg PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		player, err := reg.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, player)
	}
}

// HandleGetPlayerItems returns every item a player holds, ordered by item id
// @Summary Get player items
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/items [get]
func HandleGetPlayerItems(reg PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		rows, err := reg.GetPlayerItems(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
			return
		}

		items := make([]domain.ItemCount, len(rows))
		for i, row := range rows {
			items[i] = domain.ItemCount{ItemID: row.ItemID, Count: row.Count}
		}
		respondJSON(w, http.StatusOK, PlayerItemsResponse{PlayerID: playerID, Items: items})
	}
}

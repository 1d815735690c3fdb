package handlers

import (
	"net/http"

	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
)

// PlayerHandler looks up rated players
type PlayerHandler struct {
	players interfaces.PlayerService
}

// NewPlayerHandler creates a player handler
func NewPlayerHandler(players interfaces.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// GetPlayer godoc
// @Summary Look up a rated player
// @Description Fetches the federation rating record used for rated_player custom data
// @Tags players
// @Produce json
// @Param player_id path string true "Federation player ID"
// @Success 200 {object} responses.PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /players/{player_id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	if _, ok := requireSession(c); !ok {
		return
	}

	player, err := h.players.GetPlayer(c.Request.Context(), c.Param("player_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.PlayerResponse{
		PlayerID:   player.PlayerID,
		Name:       player.Name,
		Federation: player.Federation,
		Rating:     player.Rating,
		Title:      player.Title,
	})
}

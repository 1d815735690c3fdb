package handlers

import (
	"net/http"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParticipantHandler lists an event's participants and moves them between sections
type ParticipantHandler struct {
	participants interfaces.ParticipantService
}

// NewParticipantHandler creates a participant handler
func NewParticipantHandler(participants interfaces.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participants: participants}
}

// ListParticipants godoc
// @Summary List an event's participants
// @Tags participants
// @Produce json
// @Param event_id path string true "Event ID"
// @Param search query string false "Matches name or email"
// @Param status query string false "Participant status"
// @Param section_id query string false "Section ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/participants [get]
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	p := params.ListParticipantsParams{
		EventID: eventID,
		Search:  strings.TrimSpace(c.Query("search")),
		Status:  strings.TrimSpace(c.Query("status")),
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	if raw := c.Query("section_id"); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid section ID format", err)
			return
		}
		p.SectionID = &sectionID
	}

	participants, total, err := h.participants.ListParticipants(c.Request.Context(), session, p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendPaginated(c, toParticipantResponses(participants), page, total)
}

// TransferParticipants godoc
// @Summary Move participants between sections
// @Description Accepts one move or a batch; either every move is applied or none
// @Tags participants
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.TransferParticipantsRequest true "Moves"
// @Success 200 {object} responses.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/participants/transfer [post]
func (h *ParticipantHandler) TransferParticipants(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	var req requests.TransferParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	raw := req.Moves()
	if len(raw) == 0 {
		sendError(c, http.StatusBadRequest, "participantId and newSectionId are required", nil)
		return
	}

	moves := make([]params.TransferParams, 0, len(raw))
	for _, m := range raw {
		participantID, err := uuid.Parse(m.ParticipantID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid participant ID format", err)
			return
		}
		sectionID, err := uuid.Parse(m.NewSectionID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid section ID format", err)
			return
		}
		moves = append(moves, params.TransferParams{ParticipantID: participantID, NewSectionID: sectionID})
	}

	moved, err := h.participants.TransferParticipants(c.Request.Context(), session, eventID, moves)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.TransferResponse{
		Success:     true,
		Transferred: len(moved),
		Data:        toParticipantResponses(moved),
	})
}

func toParticipantResponses(in []db.Participant) []responses.ParticipantResponse {
	out := make([]responses.ParticipantResponse, len(in))
	for i, p := range in {
		out[i] = helpers.ToParticipantResponse(p)
	}
	return out
}

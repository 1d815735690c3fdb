package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DiscountHandler manages event discounts and evaluates them for a booking
type DiscountHandler struct {
	discounts interfaces.DiscountService
	now       func() time.Time
}

// NewDiscountHandler creates a discount handler
func NewDiscountHandler(discounts interfaces.DiscountService) *DiscountHandler {
	return &DiscountHandler{discounts: discounts, now: time.Now}
}

// ListDiscounts godoc
// @Summary List an event's discounts
// @Tags discounts
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} responses.DiscountResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	discounts, err := h.discounts.ListDiscounts(c.Request.Context(), session, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	out := make([]responses.DiscountResponse, len(discounts))
	for i, d := range discounts {
		out[i] = helpers.ToDiscountResponse(d)
	}
	sendList(c, out)
}

// CreateDiscount godoc
// @Summary Create a discount
// @Description Creates a code, participant-based or seat-based discount together with its rules
// @Tags discounts
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.DiscountRequest true "Discount"
// @Success 201 {object} responses.DiscountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	h.saveDiscount(c, false)
}

// UpdateDiscount godoc
// @Summary Replace a discount
// @Description Replaces the discount and its full rule set
// @Tags discounts
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param discount_id path string true "Discount ID"
// @Param body body requests.DiscountRequest true "Discount"
// @Success 200 {object} responses.DiscountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/discounts/{discount_id} [put]
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	h.saveDiscount(c, true)
}

func (h *DiscountHandler) saveDiscount(c *gin.Context, update bool) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	p := params.SaveDiscountParams{EventID: eventID, IsActive: true}
	if update {
		discountID, ok := parseUUIDParam(c, "discount_id", "discount")
		if !ok {
			return
		}
		p.DiscountID = &discountID
	}

	var req requests.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := fillDiscountParams(&p, req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	discount, err := h.discounts.SaveDiscount(c.Request.Context(), session, p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if update {
		status = http.StatusOK
	}
	sendSuccess(c, status, helpers.ToDiscountResponse(*discount))
}

func fillDiscountParams(p *params.SaveDiscountParams, req requests.DiscountRequest) error {
	p.Code = req.Code
	p.DiscountType = req.DiscountType
	p.ValueType = req.ValueType
	p.Value = req.Value
	p.MaxUses = req.MaxUses
	p.ValidFrom = req.ValidFrom
	p.ValidTo = req.ValidTo
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	for i, r := range req.ParticipantRules {
		rule := params.ParticipantRuleParams{
			FieldName:  r.FieldName,
			Operator:   r.Operator,
			FieldValue: r.FieldValue,
		}
		if r.RelatedEventID != nil && *r.RelatedEventID != "" {
			id, err := uuid.Parse(*r.RelatedEventID)
			if err != nil {
				return fmt.Errorf("participant_rules[%d]: invalid related_event_id", i)
			}
			rule.RelatedEventID = &id
		}
		p.ParticipantRules = append(p.ParticipantRules, rule)
	}

	for _, r := range req.SeatRules {
		p.SeatRules = append(p.SeatRules, params.SeatRuleParams{
			MinSeats:           r.MinSeats,
			MaxSeats:           r.MaxSeats,
			DiscountAmount:     r.DiscountAmount,
			DiscountPercentage: r.DiscountPercentage,
		})
	}
	return nil
}

// DeleteDiscount godoc
// @Summary Delete a discount
// @Tags discounts
// @Param event_id path string true "Event ID"
// @Param discount_id path string true "Discount ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/discounts/{discount_id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	if err := h.discounts.DeleteDiscount(c.Request.Context(), session, eventID, discountID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EvaluateDiscount godoc
// @Summary Price a prospective booking
// @Description Applies a discount code, or the best automatic discount when no code is given
// @Tags discounts
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.EvaluateDiscountRequest true "Booking to price"
// @Success 200 {object} responses.DiscountApplicationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id}/discounts/evaluate [post]
func (h *DiscountHandler) EvaluateDiscount(c *gin.Context) {
	if _, ok := requireSession(c); !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	var req requests.EvaluateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.discounts.ApplyDiscount(c.Request.Context(), params.DiscountApplicationParams{
		EventID:      eventID,
		DiscountCode: strings.TrimSpace(req.Code),
		Quantity:     req.Quantity,
		AmountCents:  req.TotalCents,
		Currency:     req.Currency,
		Participant:  req.Participant,
		Now:          h.now(),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

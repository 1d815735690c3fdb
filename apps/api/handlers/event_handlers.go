package handlers

import (
	"net/http"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler serves organizer event management
type EventHandler struct {
	events interfaces.EventService
}

// NewEventHandler creates an event handler
func NewEventHandler(events interfaces.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents godoc
// @Summary List events
// @Description Events owned by the caller; admins see all events
// @Tags events
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} PaginatedResponse
// @Security BearerAuth
// @Router /organizer/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	events, total, err := h.events.ListEvents(c.Request.Context(), session, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]responses.EventResponse, len(events))
	for i, e := range events {
		out[i] = helpers.ToEventResponse(e)
	}
	sendPaginated(c, out, page, total)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} responses.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), session, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToEventResponse(*event))
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body requests.CreateEventRequest true "Event"
// @Success 201 {object} responses.EventResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req requests.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p := params.CreateEventParams{
		OrganizerID:     session.UserID,
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          req.Status,
		MaxParticipants: req.MaxParticipants,
	}
	if req.Settings != nil {
		p.Settings = *req.Settings
	}

	event, err := h.events.CreateEvent(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToEventResponse(*event))
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Omitted fields keep their current value
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.UpdateEventRequest true "Fields to change"
// @Success 200 {object} responses.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	var req requests.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	event, err := h.events.UpdateEvent(c.Request.Context(), session, params.UpdateEventParams{
		EventID:         eventID,
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          req.Status,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToEventResponse(*event))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param event_id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	if err := h.events.DeleteEvent(c.Request.Context(), session, eventID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRefundTimeline godoc
// @Summary Get an event's refund policy
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} responses.RefundTimelineResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/refund-timeline [get]
func (h *EventHandler) GetRefundTimeline(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	settings, err := h.events.GetRefundTimeline(c.Request.Context(), session, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRefundTimelineResponse(eventID, settings))
}

// UpdateRefundTimeline godoc
// @Summary Replace an event's refund policy
// @Description Entries are checked in order; the first whose window contains the current time applies
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.UpdateRefundTimelineRequest true "Refund timeline"
// @Success 200 {object} responses.RefundTimelineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/refund-timeline [put]
func (h *EventHandler) UpdateRefundTimeline(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	var req requests.UpdateRefundTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid refund timeline", err)
		return
	}

	settings, err := h.events.UpdateRefundTimeline(c.Request.Context(), session, eventID, req.RefundTimeline, req.AllowRefunds)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRefundTimelineResponse(eventID, settings))
}

func toRefundTimelineResponse(eventID uuid.UUID, s *business.EventSettings) responses.RefundTimelineResponse {
	timeline := s.RefundTimeline
	if timeline == nil {
		timeline = []business.RefundTimelineEntry{}
	}
	return responses.RefundTimelineResponse{
		EventID:        eventID.String(),
		RefundTimeline: timeline,
		AllowRefunds:   s.AllowRefunds,
	}
}

// ListPricing godoc
// @Summary List pricing tiers
// @Tags pricing
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} responses.PricingResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/pricing [get]
func (h *EventHandler) ListPricing(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	tiers, err := h.events.ListPricing(c.Request.Context(), session, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	out := make([]responses.PricingResponse, len(tiers))
	for i, p := range tiers {
		out[i] = helpers.ToPricingResponse(p)
	}
	sendList(c, out)
}

// CreatePricing godoc
// @Summary Create a pricing tier
// @Tags pricing
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.PricingRequest true "Pricing tier"
// @Success 201 {object} responses.PricingResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/pricing [post]
func (h *EventHandler) CreatePricing(c *gin.Context) {
	h.savePricing(c, false)
}

// UpdatePricing godoc
// @Summary Replace a pricing tier
// @Tags pricing
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param pricing_id path string true "Pricing tier ID"
// @Param body body requests.PricingRequest true "Pricing tier"
// @Success 200 {object} responses.PricingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/pricing/{pricing_id} [put]
func (h *EventHandler) UpdatePricing(c *gin.Context) {
	h.savePricing(c, true)
}

func (h *EventHandler) savePricing(c *gin.Context, update bool) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	p := params.PricingParams{EventID: eventID, IsActive: true}
	if update {
		pricingID, ok := parseUUIDParam(c, "pricing_id", "pricing")
		if !ok {
			return
		}
		p.PricingID = &pricingID
	}

	var req requests.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	p.Name = req.Name
	p.Price = req.Price
	p.Currency = req.Currency
	p.QuantityAvailable = req.QuantityAvailable
	p.ValidFrom = req.ValidFrom
	p.ValidTo = req.ValidTo
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	tier, err := h.events.SavePricing(c.Request.Context(), session, p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if update {
		status = http.StatusOK
	}
	sendSuccess(c, status, helpers.ToPricingResponse(*tier))
}

// DeletePricing godoc
// @Summary Delete a pricing tier
// @Tags pricing
// @Param event_id path string true "Event ID"
// @Param pricing_id path string true "Pricing tier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/pricing/{pricing_id} [delete]
func (h *EventHandler) DeletePricing(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}
	pricingID, ok := parseUUIDParam(c, "pricing_id", "pricing")
	if !ok {
		return
	}

	if err := h.events.DeletePricing(c.Request.Context(), session, eventID, pricingID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSections godoc
// @Summary List sections
// @Tags sections
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} responses.SectionResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/sections [get]
func (h *EventHandler) ListSections(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	sections, err := h.events.ListSections(c.Request.Context(), session, eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	out := make([]responses.SectionResponse, len(sections))
	for i, s := range sections {
		out[i] = helpers.ToSectionResponse(s)
	}
	sendList(c, out)
}

// CreateSection godoc
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body requests.SectionRequest true "Section"
// @Success 201 {object} responses.SectionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/sections [post]
func (h *EventHandler) CreateSection(c *gin.Context) {
	h.saveSection(c, false)
}

// UpdateSection godoc
// @Summary Replace a section
// @Tags sections
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param section_id path string true "Section ID"
// @Param body body requests.SectionRequest true "Section"
// @Success 200 {object} responses.SectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/sections/{section_id} [put]
func (h *EventHandler) UpdateSection(c *gin.Context) {
	h.saveSection(c, true)
}

func (h *EventHandler) saveSection(c *gin.Context, update bool) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}

	p := params.SectionParams{EventID: eventID}
	if update {
		sectionID, ok := parseUUIDParam(c, "section_id", "section")
		if !ok {
			return
		}
		p.SectionID = &sectionID
	}

	var req requests.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	p.Name = req.Name
	p.Description = req.Description
	p.MaxParticipants = req.MaxParticipants
	p.MinRating = req.MinRating
	p.MaxRating = req.MaxRating
	p.SortOrder = req.SortOrder

	section, err := h.events.SaveSection(c.Request.Context(), session, p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	status := http.StatusCreated
	if update {
		status = http.StatusOK
	}
	sendSuccess(c, status, helpers.ToSectionResponse(*section))
}

// DeleteSection godoc
// @Summary Delete a section
// @Tags sections
// @Param event_id path string true "Event ID"
// @Param section_id path string true "Section ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/sections/{section_id} [delete]
func (h *EventHandler) DeleteSection(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "event_id", "event")
	if !ok {
		return
	}
	sectionID, ok := parseUUIDParam(c, "section_id", "section")
	if !ok {
		return
	}

	if err := h.events.DeleteSection(c.Request.Context(), session, eventID, sectionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

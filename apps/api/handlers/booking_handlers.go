package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
)

var bookingSortFields = []string{"booking_date", "total_amount", "event_date"}

// BookingHandler serves the attendee booking dashboard and the refund flow
type BookingHandler struct {
	bookings interfaces.BookingService
	refunds  interfaces.RefundService
}

// NewBookingHandler creates a booking handler
func NewBookingHandler(bookings interfaces.BookingService, refunds interfaces.RefundService) *BookingHandler {
	return &BookingHandler{bookings: bookings, refunds: refunds}
}

// ListBookings godoc
// @Summary List the caller's bookings
// @Description Bookings of the authenticated user with an event summary and current refund quote
// @Tags bookings
// @Produce json
// @Param search query string false "Matches event title or location"
// @Param status query string false "Booking status"
// @Param sort query string false "booking_date, total_amount or event_date"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	sort, err := helpers.ParseSortParams(c, bookingSortFields, "booking_date")
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	bookings, total, err := h.bookings.ListUserBookings(c.Request.Context(), params.ListBookingsParams{
		UserID:   session.UserID,
		Search:   strings.TrimSpace(c.Query("search")),
		Status:   strings.TrimSpace(c.Query("status")),
		SortBy:   sort.Field,
		SortDesc: sort.Desc,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendPaginated(c, bookings, page, total)
}

// GetBooking godoc
// @Summary Get a booking
// @Description One booking with its refund quote; visible to its owner and the event organizer
// @Tags bookings
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} responses.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), session, bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, booking)
}

// GetTicket godoc
// @Summary Get a booking's ticket
// @Description Check-in QR code of a confirmed booking as a PNG image
// @Tags bookings
// @Produce png
// @Param booking_id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/ticket [get]
func (h *BookingHandler) GetTicket(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	png, err := h.bookings.GetTicketQRCode(c.Request.Context(), session, bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}

// GetRefundQuote godoc
// @Summary Quote a refund
// @Description The refund the caller would receive if they requested it now
// @Tags refunds
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} business.RefundQuote
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/refund-quote [get]
func (h *BookingHandler) GetRefundQuote(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	quote, err := h.refunds.GetRefundQuote(c.Request.Context(), session, bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, quote)
}

// RequestRefund godoc
// @Summary Request a refund
// @Description Records a refund request for the caller's booking at the currently active refund tier
// @Tags refunds
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param body body requests.RefundRequest false "Optional reason"
// @Success 200 {object} responses.RefundResponse
// @Failure 400 {object} responses.RefundResponse
// @Failure 403 {object} responses.RefundResponse
// @Failure 404 {object} responses.RefundResponse
// @Security BearerAuth
// @Router /bookings/{booking_id}/refund [post]
func (h *BookingHandler) RequestRefund(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	// the body is optional; an empty one, chunked or not, decodes to io.EOF
	var req requests.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logRequestError(c, http.StatusBadRequest, "Invalid request body", err)
		c.JSON(http.StatusBadRequest, responses.RefundResponse{Error: "Invalid request body"})
		return
	}

	_, quote, err := h.refunds.RequestRefund(c.Request.Context(), params.RequestRefundParams{
		BookingID: bookingID,
		UserID:    session.UserID,
		Reason:    req.Reason,
	})
	if err != nil {
		status, message := errorStatus(err)
		logRequestError(c, status, message, err)
		c.JSON(status, responses.RefundResponse{Error: message})
		return
	}

	c.JSON(http.StatusOK, responses.RefundResponse{
		Success:      true,
		RefundAmount: quote.AmountCents,
		Percentage:   quote.Percentage,
	})
}

// ApproveRefund godoc
// @Summary Approve a refund
// @Description Issues the requested refund through the payment provider
// @Tags refunds
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} responses.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/bookings/{booking_id}/refund/approve [post]
func (h *BookingHandler) ApproveRefund(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	booking, err := h.refunds.ApproveRefund(c.Request.Context(), session, bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToBookingResponse(*booking))
}

// DenyRefund godoc
// @Summary Deny a refund
// @Description Marks the requested refund as failed with the organizer's reason
// @Tags refunds
// @Accept json
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Param body body requests.DenyRefundRequest true "Reason"
// @Success 200 {object} responses.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/bookings/{booking_id}/refund/deny [post]
func (h *BookingHandler) DenyRefund(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	bookingID, ok := parseUUIDParam(c, "booking_id", "booking")
	if !ok {
		return
	}

	var req requests.DenyRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "A reason is required", err)
		return
	}

	booking, err := h.refunds.DenyRefund(c.Request.Context(), session, bookingID, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToBookingResponse(*booking))
}

// ListEventBookings godoc
// @Summary List an event's bookings
// @Tags bookings
// @Produce json
// @Param event_id path string true "Event ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} PaginatedResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/events/{event_id}/bookings [get]
func (h *BookingHandler) ListEventBookings(c *gin.Context) {
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

	bookings, total, err := h.bookings.ListEventBookings(c.Request.Context(), session, eventID, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendPaginated(c, bookings, page, total)
}

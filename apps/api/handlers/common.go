package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/middleware"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse = responses.ErrorResponse

// SuccessResponse represents a standard success response
type SuccessResponse = responses.SuccessResponse

// PaginatedResponse represents a paginated list response
type PaginatedResponse = responses.PaginatedResponse

type errorBody struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// sendError logs err and answers with {"error": message}
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logRequestError(c, statusCode, message, err)
	c.JSON(statusCode, errorBody{Error: message, CorrelationID: middleware.GetCorrelationID(c)})
}

// logRequestError logs server errors at error level and client errors at debug
func logRequestError(c *gin.Context, statusCode int, message string, err error) {
	log := logger.L().With(
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	)
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err))
	} else {
		log.Debug(message, zap.Error(err))
	}
}

// errorStatus maps service errors onto HTTP statuses. The returned message is
// safe to show to the caller.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, clientMessage(err)
	case errors.Is(err, services.ErrRefundNotEligible),
		errors.Is(err, services.ErrRefundNotRequested),
		errors.Is(err, services.ErrNoPaymentIntent),
		errors.Is(err, services.ErrSectionFull):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "You do not have access to this resource"
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrDiscountNotFound),
		errors.Is(err, services.ErrParticipantNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrPricingNotFound),
		errors.Is(err, services.ErrCampaignNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrCampaignClaimed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrNotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, constants.GenericErrorMessage
	}
}

// clientMessage strips the sentinel prefix from a wrapped validation error
func clientMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, services.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}

// handleServiceError answers with the status errorStatus picks
func handleServiceError(c *gin.Context, err error) {
	status, message := errorStatus(err)
	sendError(c, status, message, err)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends an unpaginated list
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// sendPaginated sends one page of a list with its metadata
func sendPaginated(c *gin.Context, items interface{}, page helpers.PaginationParams, total int64) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    items,
		Object:  "list",
		HasMore: int64(page.Offset)+int64(page.Limit) < total,
		Pagination: responses.Pagination{
			CurrentPage: int(page.Page),
			PerPage:     int(page.Limit),
			TotalItems:  int(total),
			TotalPages:  int(helpers.TotalPages(total, page.Limit)),
		},
	})
}

// requireSession returns the authenticated caller or answers 401
func requireSession(c *gin.Context) (auth.Session, bool) {
	session, ok := auth.GetSession(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, auth.ErrMissingToken.Error(), nil)
		return auth.Session{}, false
	}
	return session, true
}

// parseUUIDParam reads a UUID path parameter or answers 400
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+label+" ID format", err)
		return uuid.Nil, false
	}
	return id, true
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
)

// EmailHandler serves organizer email campaigns and recipient resolution
type EmailHandler struct {
	campaigns interfaces.EmailCampaignService
	contexts  interfaces.EmailContextService
}

// NewEmailHandler creates an email handler
func NewEmailHandler(campaigns interfaces.EmailCampaignService, contexts interfaces.EmailContextService) *EmailHandler {
	return &EmailHandler{campaigns: campaigns, contexts: contexts}
}

// SendEmail godoc
// @Summary Send or schedule an email
// @Description Sends a Markdown message to the recipients now, or stores it for scheduledDate
// @Tags email
// @Accept json
// @Produce json
// @Param body body requests.SendEmailRequest true "Email"
// @Success 200 {object} responses.SendEmailResponse
// @Failure 400 {object} responses.SendEmailResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizer/send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req requests.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p := params.SendEmailParams{
		Recipients:  req.Recipients,
		Subject:     req.Subject,
		Message:     req.Message,
		Context:     req.Context,
		Attachments: req.Attachments,
	}
	if req.ScheduledDate != nil && strings.TrimSpace(*req.ScheduledDate) != "" {
		at, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.ScheduledDate))
		if err != nil {
			h.sendFailure(c, http.StatusBadRequest, "scheduledDate must be an RFC 3339 timestamp", err)
			return
		}
		p.ScheduledDate = &at
	}

	campaign, err := h.campaigns.SendEmail(c.Request.Context(), session, p)
	if err != nil {
		status, message := errorStatus(err)
		h.sendFailure(c, status, message, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.SendEmailResponse{
		Success:    true,
		CampaignID: campaign.ID.String(),
		Status:     campaign.Status,
		Sent:       int(campaign.SentCount),
	})
}

func (h *EmailHandler) sendFailure(c *gin.Context, status int, message string, err error) {
	logRequestError(c, status, message, err)
	c.JSON(status, responses.SendEmailResponse{Success: false, Error: message})
}

// ResolveEmailContext godoc
// @Summary Resolve recipients for an addressing context
// @Description Accepts {contextKey, contextValue} or a free-form input such as "section:<id>" or a bare event ID
// @Tags email
// @Accept json
// @Produce json
// @Param body body requests.EmailContextRequest true "Context"
// @Success 200 {object} responses.EmailContextResponse
// @Failure 400 {object} responses.EmailContextResponse
// @Failure 403 {object} responses.EmailContextResponse
// @Security BearerAuth
// @Router /organizer/email-context [post]
func (h *EmailHandler) ResolveEmailContext(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req requests.EmailContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.contextFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	key, value := req.ContextKey, req.ContextValue
	if key == "" {
		var err error
		key, value, err = services.ParseEmailContextInput(req.Input)
		if err != nil {
			status, message := errorStatus(err)
			h.contextFailure(c, status, message, err)
			return
		}
	}

	ec, recipients, err := h.contexts.Resolve(c.Request.Context(), session, key, value)
	if err != nil {
		status, message := errorStatus(err)
		h.contextFailure(c, status, message, err)
		return
	}
	if recipients == nil {
		recipients = []business.EmailRecipient{}
	}
	sendSuccess(c, http.StatusOK, responses.EmailContextResponse{
		Success:    true,
		Context:    ec,
		Recipients: recipients,
	})
}

func (h *EmailHandler) contextFailure(c *gin.Context, status int, message string, err error) {
	logRequestError(c, status, message, err)
	c.JSON(status, responses.EmailContextResponse{
		Success:    false,
		Recipients: []business.EmailRecipient{},
		Error:      message,
	})
}

// ListCampaigns godoc
// @Summary List the caller's email campaigns
// @Tags email
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} PaginatedResponse
// @Security BearerAuth
// @Router /organizer/email-campaigns [get]
func (h *EmailHandler) ListCampaigns(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	campaigns, total, err := h.campaigns.ListCampaigns(c.Request.Context(), session, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	out := make([]responses.EmailCampaignResponse, len(campaigns))
	for i, cp := range campaigns {
		out[i] = helpers.ToEmailCampaignResponse(cp)
	}
	sendPaginated(c, out, page, total)
}

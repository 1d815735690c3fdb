package helpers

import (
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
)

// ToEmailCampaignResponse converts database campaign model to API response
func ToEmailCampaignResponse(c db.EmailCampaign) responses.EmailCampaignResponse {
	recipients := c.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	return responses.EmailCampaignResponse{
		ID:           c.ID.String(),
		Object:       "email_campaign",
		Subject:      c.Subject,
		Status:       c.Status,
		Recipients:   recipients,
		SentCount:    c.SentCount,
		ScheduledFor: UnixPtr(c.ScheduledFor),
		SentAt:       UnixPtr(c.SentAt),
		Error:        c.Error.String,
		CreatedAt:    c.CreatedAt.Time.Unix(),
	}
}

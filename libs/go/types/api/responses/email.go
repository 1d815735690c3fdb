package responses

import "github.com/chessclub/club-events-api/libs/go/types/business"

// SendEmailResponse keeps the {success, error} contract of the send-email endpoint
type SendEmailResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaign_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Sent       int    `json:"sent,omitempty"`
	Error      string `json:"error,omitempty"`
}

// EmailContextResponse is the resolved recipient list for a context
type EmailContextResponse struct {
	Success    bool                      `json:"success"`
	Context    *business.EmailContext    `json:"context,omitempty"`
	Recipients []business.EmailRecipient `json:"recipients"`
	Error      string                    `json:"error,omitempty"`
}

// EmailCampaignResponse represents a stored campaign
type EmailCampaignResponse struct {
	ID           string   `json:"id"`
	Object       string   `json:"object"`
	Subject      string   `json:"subject"`
	Status       string   `json:"status"`
	Recipients   []string `json:"recipients"`
	SentCount    int32    `json:"sent_count"`
	ScheduledFor *int64   `json:"scheduled_for,omitempty"`
	SentAt       *int64   `json:"sent_at,omitempty"`
	Error        string   `json:"error,omitempty"`
	CreatedAt    int64    `json:"created_at"`
}

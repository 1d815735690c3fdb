package requests

import (
	"encoding/json"

	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// SendEmailRequest is the body of POST /organizer/send-email
type SendEmailRequest struct {
	Recipients    []string                   `json:"recipients"`
	Subject       string                     `json:"subject"`
	Message       string                     `json:"message"`
	Context       json.RawMessage            `json:"context,omitempty" swaggertype:"object"`
	ScheduledDate *string                    `json:"scheduledDate"`
	Attachments   []business.EmailAttachment `json:"attachments,omitempty"`
}

// EmailContextRequest resolves a recipient list from either a key/value pair or a free-form input
type EmailContextRequest struct {
	ContextKey   string `json:"contextKey,omitempty"`
	ContextValue string `json:"contextValue,omitempty"`
	Input        string `json:"input,omitempty"`
}

package params

import (
	"encoding/json"
	"time"

	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// SendEmailParams contains an organizer's email send as received
type SendEmailParams struct {
	Recipients    []string
	Subject       string
	Message       string
	Context       json.RawMessage
	ScheduledDate *time.Time
	Attachments   []business.EmailAttachment
}

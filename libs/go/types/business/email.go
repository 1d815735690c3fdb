package business

import "time"

// EmailAttachment references a file hosted elsewhere; it is fetched by the
// email provider, never stored here.
type EmailAttachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// EmailRecipient is one resolved address with the data used to fill placeholders.
type EmailRecipient struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// EmailContext is what a campaign was addressed to, e.g. {key: "event", value: "<uuid>"}.
type EmailContext struct {
	Key        string     `json:"key"`
	Value      string     `json:"value"`
	EventID    string     `json:"event_id,omitempty"`
	EventTitle string     `json:"event_title,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	Label      string     `json:"label,omitempty"`
}

// EmailTemplateData fills the placeholders of one rendered message.
type EmailTemplateData struct {
	FirstName  string
	LastName   string
	EventTitle string
	EventDate  string
}

// EmailCampaignMessage is the body placed on the email queue.
type EmailCampaignMessage struct {
	CampaignID string `json:"campaign_id"`
}

// OutgoingEmail is one message handed to the email provider.
type OutgoingEmail struct {
	To          []string
	Subject     string
	HTML        string
	Text        string
	ReplyTo     string
	Attachments []EmailAttachment
	Tags        map[string]string
	RefID       string
}

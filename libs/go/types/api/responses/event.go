package responses

import (
	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// EventResponse represents the standardized API response for an event
type EventResponse struct {
	ID              string                 `json:"id"`
	Object          string                 `json:"object"`
	OrganizerID     string                 `json:"organizer_id"`
	Title           string                 `json:"title"`
	Slug            string                 `json:"slug"`
	Description     string                 `json:"description,omitempty"`
	Location        string                 `json:"location,omitempty"`
	StartDate       *int64                 `json:"start_date,omitempty"`
	EndDate         *int64                 `json:"end_date,omitempty"`
	Status          string                 `json:"status"`
	MaxParticipants *int32                 `json:"max_participants,omitempty"`
	Settings        business.EventSettings `json:"settings" swaggertype:"object"`
	CreatedAt       int64                  `json:"created_at"`
	UpdatedAt       int64                  `json:"updated_at"`
}

// RefundTimelineResponse is the refund policy of one event
type RefundTimelineResponse struct {
	EventID        string                         `json:"event_id"`
	RefundTimeline []business.RefundTimelineEntry `json:"refund_timeline" swaggertype:"array,object"`
	AllowRefunds   *bool                          `json:"allow_refunds,omitempty"`
}

// PricingResponse represents a pricing tier
type PricingResponse struct {
	ID                string `json:"id"`
	Object            string `json:"object"`
	EventID           string `json:"event_id"`
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	Currency          string `json:"currency"`
	QuantityAvailable *int32 `json:"quantity_available,omitempty"`
	ValidFrom         *int64 `json:"valid_from,omitempty"`
	ValidTo           *int64 `json:"valid_to,omitempty"`
	IsActive          bool   `json:"is_active"`
}

// SectionResponse represents an event section
type SectionResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	EventID         string `json:"event_id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	MaxParticipants *int32 `json:"max_participants,omitempty"`
	MinRating       *int32 `json:"min_rating,omitempty"`
	MaxRating       *int32 `json:"max_rating,omitempty"`
	SortOrder       int32  `json:"sort_order"`
}

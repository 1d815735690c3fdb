package requests

import (
	"time"

	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title           string                  `json:"title" binding:"required"`
	Slug            string                  `json:"slug"`
	Description     string                  `json:"description"`
	Location        string                  `json:"location"`
	StartDate       *time.Time              `json:"start_date"`
	EndDate         *time.Time              `json:"end_date"`
	Status          string                  `json:"status"`
	MaxParticipants *int32                  `json:"max_participants"`
	Settings        *business.EventSettings `json:"settings,omitempty" swaggertype:"object"`
}

// UpdateEventRequest represents the request body for updating an event.
// Omitted fields keep their current value.
type UpdateEventRequest struct {
	Title           *string    `json:"title,omitempty"`
	Slug            *string    `json:"slug,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Location        *string    `json:"location,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	MaxParticipants *int32     `json:"max_participants,omitempty"`
}

// UpdateRefundTimelineRequest replaces an event's refund policy
type UpdateRefundTimelineRequest struct {
	RefundTimeline []business.RefundTimelineEntry `json:"refund_timeline" swaggertype:"array,object"`
	AllowRefunds   *bool                          `json:"allow_refunds,omitempty"`
}

// PricingRequest is the body for creating or replacing a pricing tier
type PricingRequest struct {
	Name              string     `json:"name" binding:"required"`
	Price             int64      `json:"price"`
	Currency          string     `json:"currency"`
	QuantityAvailable *int32     `json:"quantity_available"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidTo           *time.Time `json:"valid_to"`
	IsActive          *bool      `json:"is_active"`
}

// SectionRequest is the body for creating or replacing a section
type SectionRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	MaxParticipants *int32 `json:"max_participants"`
	MinRating       *int32 `json:"min_rating"`
	MaxRating       *int32 `json:"max_rating"`
	SortOrder       int32  `json:"sort_order"`
}

package params

import (
	"time"

	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
)

// CreateEventParams contains parameters for creating an event
type CreateEventParams struct {
	OrganizerID     uuid.UUID
	Title           string
	Slug            string
	Description     string
	Location        string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          string
	MaxParticipants *int32
	Settings        business.EventSettings
}

// UpdateEventParams contains the fields to change; nil keeps the current value
type UpdateEventParams struct {
	EventID         uuid.UUID
	Title           *string
	Slug            *string
	Description     *string
	Location        *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	MaxParticipants *int32
}

// ListParticipantsParams contains filters for an event's participant list
type ListParticipantsParams struct {
	EventID   uuid.UUID
	Search    string
	Status    string
	SectionID *uuid.UUID
	Limit     int32
	Offset    int32
}

// TransferParams is one participant move
type TransferParams struct {
	ParticipantID uuid.UUID
	NewSectionID  uuid.UUID
}

// PricingParams creates or replaces a pricing tier; PricingID nil means create
type PricingParams struct {
	EventID           uuid.UUID
	PricingID         *uuid.UUID
	Name              string
	Price             int64
	Currency          string
	QuantityAvailable *int32
	ValidFrom         *time.Time
	ValidTo           *time.Time
	IsActive          bool
}

// SectionParams creates or replaces a section; SectionID nil means create
type SectionParams struct {
	EventID         uuid.UUID
	SectionID       *uuid.UUID
	Name            string
	Description     string
	MaxParticipants *int32
	MinRating       *int32
	MaxRating       *int32
	SortOrder       int32
}

package requests

import (
	"time"

	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// DiscountRequest is the body for creating or replacing a discount with its rules
type DiscountRequest struct {
	Code             *string                  `json:"code"`
	DiscountType     string                   `json:"discount_type" binding:"required"`
	ValueType        string                   `json:"value_type"`
	Value            int64                    `json:"value"`
	MaxUses          *int32                   `json:"max_uses"`
	ValidFrom        *time.Time               `json:"valid_from"`
	ValidTo          *time.Time               `json:"valid_to"`
	IsActive         *bool                    `json:"is_active"`
	ParticipantRules []ParticipantRuleRequest `json:"participant_rules,omitempty"`
	SeatRules        []SeatRuleRequest        `json:"seat_rules,omitempty"`
}

// ParticipantRuleRequest is either a related-event rule (related_event_id set)
// or a custom field rule (operator set).
type ParticipantRuleRequest struct {
	RelatedEventID *string `json:"related_event_id"`
	FieldName      string  `json:"field_name"`
	Operator       *string `json:"operator"`
	FieldValue     string  `json:"field_value"`
}

// SeatRuleRequest describes one quantity band of a seat-based discount
type SeatRuleRequest struct {
	MinSeats           int32    `json:"min_seats"`
	MaxSeats           *int32   `json:"max_seats"`
	DiscountAmount     int64    `json:"discount_amount"`
	DiscountPercentage *float64 `json:"discount_percentage"`
}

// EvaluateDiscountRequest asks what a booking would pay with a code or automatic discounts
type EvaluateDiscountRequest struct {
	Code        string                         `json:"code"`
	Quantity    int32                          `json:"quantity" binding:"required"`
	TotalCents  int64                          `json:"total_cents"`
	Currency    string                         `json:"currency"`
	Participant *business.ParticipantCandidate `json:"participant,omitempty"`
}

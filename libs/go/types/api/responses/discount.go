package responses

import (
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
)

// DiscountApplicationResult contains the result of applying a discount
type DiscountApplicationResult struct {
	DiscountCode        string                   `json:"discount_code,omitempty"`
	DiscountID          *uuid.UUID               `json:"discount_id,omitempty"`
	OriginalAmountCents int64                    `json:"original_amount_cents"`
	DiscountAmountCents int64                    `json:"discount_amount_cents"`
	FinalAmountCents    int64                    `json:"final_amount_cents"`
	DiscountPercentage  float64                  `json:"discount_percentage"`
	IsValid             bool                     `json:"is_valid"`
	ReasonForInvalidity *string                  `json:"reason_for_invalidity,omitempty"`
	ApplicationDetails  business.DiscountDetails `json:"application_details"`
}

// DiscountResponse represents a discount with its rules
type DiscountResponse struct {
	ID               string                    `json:"id"`
	Object           string                    `json:"object"`
	EventID          string                    `json:"event_id"`
	Code             *string                   `json:"code,omitempty"`
	DiscountType     string                    `json:"discount_type"`
	ValueType        string                    `json:"value_type"`
	Value            int64                     `json:"value"`
	MaxUses          *int32                    `json:"max_uses,omitempty"`
	UsedCount        int32                     `json:"used_count"`
	ValidFrom        *int64                    `json:"valid_from,omitempty"`
	ValidTo          *int64                    `json:"valid_to,omitempty"`
	IsActive         bool                      `json:"is_active"`
	ParticipantRules []ParticipantRuleResponse `json:"participant_rules"`
	SeatRules        []SeatRuleResponse        `json:"seat_rules"`
	CreatedAt        int64                     `json:"created_at"`
}

// ParticipantRuleResponse represents one participant-based rule
type ParticipantRuleResponse struct {
	ID             string  `json:"id"`
	RelatedEventID *string `json:"related_event_id,omitempty"`
	FieldName      string  `json:"field_name"`
	Operator       *string `json:"operator,omitempty"`
	FieldValue     string  `json:"field_value"`
}

// SeatRuleResponse represents one seat-based rule
type SeatRuleResponse struct {
	ID                 string   `json:"id"`
	MinSeats           int32    `json:"min_seats"`
	MaxSeats           *int32   `json:"max_seats,omitempty"`
	DiscountAmount     int64    `json:"discount_amount"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
}

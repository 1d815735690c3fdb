package business

import (
	"time"

	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/google/uuid"
)

// Discount application methods
const (
	ApplicationMethodCode      = "code"
	ApplicationMethodAutomatic = "automatic"
)

// DiscountDetails contains detailed information about the discount application
type DiscountDetails struct {
	AppliedAt         time.Time  `json:"applied_at"`
	ApplicationMethod string     `json:"application_method"` // "code" or "automatic"
	DiscountType      string     `json:"discount_type"`
	ValueType         string     `json:"value_type,omitempty"`
	MatchedSeatRuleID *uuid.UUID `json:"matched_seat_rule_id,omitempty"`
	MatchedRuleCount  int        `json:"matched_rule_count,omitempty"`
}

// SeatRuleResult is the outcome of evaluating seat-based rules for a quantity.
type SeatRuleResult struct {
	DiscountAmountCents int64      `json:"discount_amount_cents"`
	MatchedRuleID       *uuid.UUID `json:"matched_rule_id,omitempty"`
}

// ParticipantCandidate is the attendee a participant-based discount is checked against.
type ParticipantCandidate struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	DateOfBirth *Date      `json:"date_of_birth,omitempty"`
	PlayerID    string     `json:"player_id,omitempty"`
	CustomData  CustomData `json:"custom_data,omitempty"`
}

// DiscountWithRules is a discount together with its child rule rows.
type DiscountWithRules struct {
	Discount         db.EventDiscount
	ParticipantRules []db.ParticipantDiscountRule
	SeatRules        []db.SeatDiscountRule
}

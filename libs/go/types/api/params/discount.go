package params

import (
	"time"

	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
)

// DiscountApplicationParams contains parameters for applying a discount
type DiscountApplicationParams struct {
	EventID      uuid.UUID
	DiscountCode string
	Quantity     int32
	AmountCents  int64
	Currency     string
	Participant  *business.ParticipantCandidate
	Now          time.Time
}

// SaveDiscountParams contains a discount and its full rule set
type SaveDiscountParams struct {
	EventID          uuid.UUID
	DiscountID       *uuid.UUID
	Code             *string
	DiscountType     string
	ValueType        string
	Value            int64
	MaxUses          *int32
	ValidFrom        *time.Time
	ValidTo          *time.Time
	IsActive         bool
	ParticipantRules []ParticipantRuleParams
	SeatRules        []SeatRuleParams
}

// ParticipantRuleParams is one participant-based rule
type ParticipantRuleParams struct {
	RelatedEventID *uuid.UUID
	FieldName      string
	Operator       *string
	FieldValue     string
}

// SeatRuleParams is one seat-based rule
type SeatRuleParams struct {
	MinSeats           int32
	MaxSeats           *int32
	DiscountAmount     int64
	DiscountPercentage *float64
}

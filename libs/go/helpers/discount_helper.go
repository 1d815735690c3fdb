package helpers

import (
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// ToDiscountResponse converts a discount and its rules to API response
func ToDiscountResponse(d business.DiscountWithRules) responses.DiscountResponse {
	participantRules := make([]responses.ParticipantRuleResponse, len(d.ParticipantRules))
	for i, r := range d.ParticipantRules {
		var related *string
		if r.RelatedEventID.Valid {
			s := NullableUUIDToPtr(r.RelatedEventID).String()
			related = &s
		}
		participantRules[i] = responses.ParticipantRuleResponse{
			ID:             r.ID.String(),
			RelatedEventID: related,
			FieldName:      r.FieldName,
			Operator:       NullableTextToPtr(r.Operator),
			FieldValue:     r.FieldValue,
		}
	}
	seatRules := make([]responses.SeatRuleResponse, len(d.SeatRules))
	for i, r := range d.SeatRules {
		seatRules[i] = responses.SeatRuleResponse{
			ID:                 r.ID.String(),
			MinSeats:           r.MinSeats,
			MaxSeats:           NullableInt4ToPtr(r.MaxSeats),
			DiscountAmount:     r.DiscountAmount,
			DiscountPercentage: NullableFloat8ToPtr(r.DiscountPercentage),
		}
	}

	disc := d.Discount
	return responses.DiscountResponse{
		ID:               disc.ID.String(),
		Object:           "event_discount",
		EventID:          disc.EventID.String(),
		Code:             NullableTextToPtr(disc.Code),
		DiscountType:     disc.DiscountType,
		ValueType:        disc.ValueType,
		Value:            disc.Value,
		MaxUses:          NullableInt4ToPtr(disc.MaxUses),
		UsedCount:        disc.UsedCount,
		ValidFrom:        UnixPtr(disc.ValidFrom),
		ValidTo:          UnixPtr(disc.ValidTo),
		IsActive:         disc.IsActive,
		ParticipantRules: participantRules,
		SeatRules:        seatRules,
		CreatedAt:        disc.CreatedAt.Time.Unix(),
	}
}

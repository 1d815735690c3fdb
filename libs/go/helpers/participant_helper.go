package helpers

import (
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"go.uber.org/zap"
)

// ToParticipantResponse converts database participant model to API response
func ToParticipantResponse(p db.Participant) responses.ParticipantResponse {
	custom, err := business.ParseCustomData(p.CustomData)
	if err != nil {
		logger.L().Warn("Participant custom data could not be decoded",
			zap.String("participant_id", p.ID.String()),
			zap.Error(err))
	}
	var section *string
	if id := NullableUUIDToPtr(p.SectionID); id != nil {
		s := id.String()
		section = &s
	}
	var dob string
	if p.DateOfBirth.Valid {
		dob = p.DateOfBirth.Time.Format("2006-01-02")
	}
	return responses.ParticipantResponse{
		ID:          p.ID.String(),
		Object:      "participant",
		BookingID:   p.BookingID.String(),
		EventID:     p.EventID.String(),
		SectionID:   section,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email.String,
		DateOfBirth: dob,
		PlayerID:    p.PlayerID.String,
		Status:      p.Status,
		CustomData:  custom,
		CreatedAt:   p.CreatedAt.Time.Unix(),
	}
}

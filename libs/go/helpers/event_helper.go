package helpers

import (
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"go.uber.org/zap"
)

// ToEventResponse converts database event model to API response
func ToEventResponse(e db.Event) responses.EventResponse {
	settings, err := business.ParseEventSettings(e.Settings)
	if err != nil {
		logger.L().Warn("Stored event settings are not valid JSON",
			zap.String("event_id", e.ID.String()),
			zap.Error(err))
	}
	return responses.EventResponse{
		ID:              e.ID.String(),
		Object:          "event",
		OrganizerID:     e.OrganizerID.String(),
		Title:           e.Title,
		Slug:            e.Slug,
		Description:     e.Description.String,
		Location:        e.Location.String,
		StartDate:       UnixPtr(e.StartDate),
		EndDate:         UnixPtr(e.EndDate),
		Status:          e.Status,
		MaxParticipants: NullableInt4ToPtr(e.MaxParticipants),
		Settings:        settings,
		CreatedAt:       e.CreatedAt.Time.Unix(),
		UpdatedAt:       e.UpdatedAt.Time.Unix(),
	}
}

// ToPricingResponse converts database pricing model to API response
func ToPricingResponse(p db.EventPricing) responses.PricingResponse {
	return responses.PricingResponse{
		ID:                p.ID.String(),
		Object:            "event_pricing",
		EventID:           p.EventID.String(),
		Name:              p.Name,
		Price:             p.Price,
		Currency:          p.Currency,
		QuantityAvailable: NullableInt4ToPtr(p.QuantityAvailable),
		ValidFrom:         UnixPtr(p.ValidFrom),
		ValidTo:           UnixPtr(p.ValidTo),
		IsActive:          p.IsActive,
	}
}

// ToSectionResponse converts database section model to API response
func ToSectionResponse(s db.EventSection) responses.SectionResponse {
	return responses.SectionResponse{
		ID:              s.ID.String(),
		Object:          "event_section",
		EventID:         s.EventID.String(),
		Name:            s.Name,
		Description:     s.Description.String,
		MaxParticipants: NullableInt4ToPtr(s.MaxParticipants),
		MinRating:       NullableInt4ToPtr(s.MinRating),
		MaxRating:       NullableInt4ToPtr(s.MaxRating),
		SortOrder:       s.SortOrder,
	}
}

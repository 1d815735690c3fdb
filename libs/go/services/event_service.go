package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// EventService handles business logic for events and the rows that hang off them
type EventService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(queries db.Querier) *EventService {
	return &EventService{
		queries: queries,
		logger:  logger.L(),
	}
}

var validEventStatuses = map[string]bool{
	constants.EventStatusDraft:     true,
	constants.EventStatusPublished: true,
	constants.EventStatusCancelled: true,
	constants.EventStatusCompleted: true,
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// AuthorizeEvent loads an event and checks the caller may manage it.
func (s *EventService) AuthorizeEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*db.Event, error) {
	event, err := authorizeEvent(ctx, s.queries, caller, eventID)
	if errors.Is(err, ErrForbidden) {
		s.logger.Warn("Caller does not own event",
			zap.String("event_id", eventID.String()),
			zap.String("user_id", caller.UserID.String()))
	}
	return event, err
}

func authorizeEvent(ctx context.Context, q db.Querier, caller auth.Session, eventID uuid.UUID) (*db.Event, error) {
	event, err := q.GetEvent(ctx, eventID)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound, "get event")
	}
	if !caller.CanManage(event.OrganizerID) {
		return nil, ErrForbidden
	}
	return &event, nil
}

// ListEvents lists the caller's events; admins see every event.
func (s *EventService) ListEvents(ctx context.Context, caller auth.Session, limit, offset int32) ([]db.Event, int64, error) {
	organizer := helpers.UUIDToNullableUUID(caller.UserID)
	if caller.IsAdmin() {
		organizer = pgtype.UUID{}
	}
	events, err := s.queries.ListEvents(ctx, db.ListEventsParams{
		OrganizerID: organizer,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	total, err := s.queries.CountEvents(ctx, organizer)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	return events, total, nil
}

// GetEvent returns one event the caller may manage
func (s *EventService) GetEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*db.Event, error) {
	return s.AuthorizeEvent(ctx, caller, eventID)
}

// CreateEvent validates and stores a new event
func (s *EventService) CreateEvent(ctx context.Context, params params.CreateEventParams) (*db.Event, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, validationError("title is required")
	}
	status := params.Status
	if status == "" {
		status = constants.EventStatusDraft
	}
	if !validEventStatuses[status] {
		return nil, validationError("unknown event status %q", status)
	}
	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return nil, validationError("end_date must not be before start_date")
	}
	if err := ValidateRefundTimeline(params.Settings.RefundTimeline); err != nil {
		return nil, validationError("%v", err)
	}
	slug := params.Slug
	if slug == "" {
		slug = Slugify(params.Title)
	}
	settings, err := json.Marshal(params.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event settings: %w", err)
	}

	event, err := s.queries.CreateEvent(ctx, db.CreateEventParams{
		OrganizerID:     params.OrganizerID,
		Title:           strings.TrimSpace(params.Title),
		Slug:            slug,
		Description:     helpers.StringToNullableText(params.Description),
		Location:        helpers.StringToNullableText(params.Location),
		StartDate:       helpers.TimePtrToNullableTimestamptz(params.StartDate),
		EndDate:         helpers.TimePtrToNullableTimestamptz(params.EndDate),
		Status:          status,
		MaxParticipants: helpers.Int32PtrToNullableInt4(params.MaxParticipants),
		Settings:        settings,
	})
	if err != nil {
		s.logger.Error("Failed to create event",
			zap.String("organizer_id", params.OrganizerID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// UpdateEvent applies the non-nil fields of params
func (s *EventService) UpdateEvent(ctx context.Context, caller auth.Session, params params.UpdateEventParams) (*db.Event, error) {
	current, err := s.AuthorizeEvent(ctx, caller, params.EventID)
	if err != nil {
		return nil, err
	}

	update := db.UpdateEventParams{
		ID:              current.ID,
		Title:           current.Title,
		Slug:            current.Slug,
		Description:     current.Description,
		Location:        current.Location,
		StartDate:       current.StartDate,
		EndDate:         current.EndDate,
		Status:          current.Status,
		MaxParticipants: current.MaxParticipants,
	}
	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, validationError("title must not be empty")
		}
		update.Title = strings.TrimSpace(*params.Title)
	}
	if params.Slug != nil {
		update.Slug = *params.Slug
	}
	if params.Description != nil {
		update.Description = helpers.StringToNullableText(*params.Description)
	}
	if params.Location != nil {
		update.Location = helpers.StringToNullableText(*params.Location)
	}
	if params.StartDate != nil {
		update.StartDate = helpers.TimeToNullableTimestamptz(*params.StartDate)
	}
	if params.EndDate != nil {
		update.EndDate = helpers.TimeToNullableTimestamptz(*params.EndDate)
	}
	if params.Status != nil {
		if !validEventStatuses[*params.Status] {
			return nil, validationError("unknown event status %q", *params.Status)
		}
		update.Status = *params.Status
	}
	if params.MaxParticipants != nil {
		update.MaxParticipants = helpers.Int32PtrToNullableInt4(params.MaxParticipants)
	}
	if update.StartDate.Valid && update.EndDate.Valid && update.EndDate.Time.Before(update.StartDate.Time) {
		return nil, validationError("end_date must not be before start_date")
	}

	event, err := s.queries.UpdateEvent(ctx, update)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound, "update event")
	}
	return &event, nil
}

// DeleteEvent removes an event the caller owns
func (s *EventService) DeleteEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) error {
	if _, err := s.AuthorizeEvent(ctx, caller, eventID); err != nil {
		return err
	}
	if err := s.queries.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.logger.Info("Event deleted", zap.String("event_id", eventID.String()))
	return nil
}

// GetRefundTimeline returns the event's settings, refund policy included
func (s *EventService) GetRefundTimeline(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*business.EventSettings, error) {
	event, err := s.AuthorizeEvent(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	settings, err := business.ParseEventSettings(event.Settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateRefundTimeline replaces the refund policy, leaving other settings untouched
func (s *EventService) UpdateRefundTimeline(ctx context.Context, caller auth.Session, eventID uuid.UUID, timeline []business.RefundTimelineEntry, allowRefunds *bool) (*business.EventSettings, error) {
	if err := ValidateRefundTimeline(timeline); err != nil {
		return nil, validationError("%v", err)
	}
	event, err := s.AuthorizeEvent(ctx, caller, eventID)
	if err != nil {
		return nil, err
	}
	settings, err := business.ParseEventSettings(event.Settings)
	if err != nil {
		return nil, err
	}
	settings.RefundTimeline = timeline
	if allowRefunds != nil {
		settings.AllowRefunds = allowRefunds
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event settings: %w", err)
	}
	if _, err := s.queries.UpdateEventSettings(ctx, db.UpdateEventSettingsParams{ID: eventID, Settings: raw}); err != nil {
		return nil, notFound(err, ErrEventNotFound, "update event settings")
	}
	s.logger.Info("Refund timeline updated",
		zap.String("event_id", eventID.String()),
		zap.Int("entries", len(timeline)))
	return &settings, nil
}

// ListPricing lists an event's pricing tiers
func (s *EventService) ListPricing(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]db.EventPricing, error) {
	if _, err := s.AuthorizeEvent(ctx, caller, eventID); err != nil {
		return nil, err
	}
	tiers, err := s.queries.ListEventPricing(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}
	return tiers, nil
}

// SavePricing creates a tier, or replaces one when params.PricingID is set
func (s *EventService) SavePricing(ctx context.Context, caller auth.Session, params params.PricingParams) (*db.EventPricing, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, validationError("name is required")
	}
	if params.Price < 0 {
		return nil, validationError("price must not be negative")
	}
	if params.ValidFrom != nil && params.ValidTo != nil && params.ValidTo.Before(*params.ValidFrom) {
		return nil, validationError("valid_to must not be before valid_from")
	}
	if _, err := s.AuthorizeEvent(ctx, caller, params.EventID); err != nil {
		return nil, err
	}
	currency := strings.ToUpper(params.Currency)
	if currency == "" {
		currency = constants.USDCurrency
	}

	if params.PricingID == nil {
		tier, err := s.queries.CreateEventPricing(ctx, db.CreateEventPricingParams{
			EventID:           params.EventID,
			Name:              strings.TrimSpace(params.Name),
			Price:             params.Price,
			Currency:          currency,
			QuantityAvailable: helpers.Int32PtrToNullableInt4(params.QuantityAvailable),
			ValidFrom:         helpers.TimePtrToNullableTimestamptz(params.ValidFrom),
			ValidTo:           helpers.TimePtrToNullableTimestamptz(params.ValidTo),
			IsActive:          params.IsActive,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create pricing: %w", err)
		}
		return &tier, nil
	}

	tier, err := s.queries.UpdateEventPricing(ctx, db.UpdateEventPricingParams{
		ID:                *params.PricingID,
		EventID:           params.EventID,
		Name:              strings.TrimSpace(params.Name),
		Price:             params.Price,
		Currency:          currency,
		QuantityAvailable: helpers.Int32PtrToNullableInt4(params.QuantityAvailable),
		ValidFrom:         helpers.TimePtrToNullableTimestamptz(params.ValidFrom),
		ValidTo:           helpers.TimePtrToNullableTimestamptz(params.ValidTo),
		IsActive:          params.IsActive,
	})
	if err != nil {
		return nil, notFound(err, ErrPricingNotFound, "update pricing")
	}
	return &tier, nil
}

// DeletePricing removes a tier of an event the caller owns
func (s *EventService) DeletePricing(ctx context.Context, caller auth.Session, eventID, pricingID uuid.UUID) error {
	if _, err := s.AuthorizeEvent(ctx, caller, eventID); err != nil {
		return err
	}
	rows, err := s.queries.DeleteEventPricing(ctx, db.DeleteEventPricingParams{ID: pricingID, EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to delete pricing: %w", err)
	}
	if rows == 0 {
		return ErrPricingNotFound
	}
	return nil
}

// ListSections lists an event's sections in display order
func (s *EventService) ListSections(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]db.EventSection, error) {
	if _, err := s.AuthorizeEvent(ctx, caller, eventID); err != nil {
		return nil, err
	}
	sections, err := s.queries.ListEventSections(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// SaveSection creates a section, or replaces one when params.SectionID is set
func (s *EventService) SaveSection(ctx context.Context, caller auth.Session, params params.SectionParams) (*db.EventSection, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, validationError("name is required")
	}
	if params.MaxParticipants != nil && *params.MaxParticipants < 0 {
		return nil, validationError("max_participants must not be negative")
	}
	if params.MinRating != nil && params.MaxRating != nil && *params.MinRating > *params.MaxRating {
		return nil, validationError("min_rating must not exceed max_rating")
	}
	if _, err := s.AuthorizeEvent(ctx, caller, params.EventID); err != nil {
		return nil, err
	}

	if params.SectionID == nil {
		section, err := s.queries.CreateEventSection(ctx, db.CreateEventSectionParams{
			EventID:         params.EventID,
			Name:            strings.TrimSpace(params.Name),
			Description:     helpers.StringToNullableText(params.Description),
			MaxParticipants: helpers.Int32PtrToNullableInt4(params.MaxParticipants),
			MinRating:       helpers.Int32PtrToNullableInt4(params.MinRating),
			MaxRating:       helpers.Int32PtrToNullableInt4(params.MaxRating),
			SortOrder:       params.SortOrder,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create section: %w", err)
		}
		return &section, nil
	}

	section, err := s.queries.UpdateEventSection(ctx, db.UpdateEventSectionParams{
		ID:              *params.SectionID,
		EventID:         params.EventID,
		Name:            strings.TrimSpace(params.Name),
		Description:     helpers.StringToNullableText(params.Description),
		MaxParticipants: helpers.Int32PtrToNullableInt4(params.MaxParticipants),
		MinRating:       helpers.Int32PtrToNullableInt4(params.MinRating),
		MaxRating:       helpers.Int32PtrToNullableInt4(params.MaxRating),
		SortOrder:       params.SortOrder,
	})
	if err != nil {
		return nil, notFound(err, ErrSectionNotFound, "update section")
	}
	return &section, nil
}

// DeleteSection removes a section of an event the caller owns
func (s *EventService) DeleteSection(ctx context.Context, caller auth.Session, eventID, sectionID uuid.UUID) error {
	if _, err := s.AuthorizeEvent(ctx, caller, eventID); err != nil {
		return err
	}
	rows, err := s.queries.DeleteEventSection(ctx, db.DeleteEventSectionParams{ID: sectionID, EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if rows == 0 {
		return ErrSectionNotFound
	}
	return nil
}

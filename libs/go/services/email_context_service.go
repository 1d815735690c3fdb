package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Email context keys
const (
	ContextKeyEvent           = "event"
	ContextKeySection         = "section"
	ContextKeyBookingStatus   = "booking_status"
	ContextKeyMailingList     = "mailing_list"
	ContextKeyRefundRequested = "refund_requested"
)

var bookingStatuses = map[string]bool{
	constants.BookingStatusPending:   true,
	constants.BookingStatusConfirmed: true,
	constants.BookingStatusVerified:  true,
	constants.BookingStatusCancelled: true,
	constants.BookingStatusRefunded:  true,
}

// EmailContextService resolves what an organizer wants to write to into a
// deduplicated recipient list
type EmailContextService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewEmailContextService creates a new email context service
func NewEmailContextService(queries db.Querier) *EmailContextService {
	return &EmailContextService{
		queries: queries,
		logger:  logger.L(),
	}
}

// ParseEmailContextInput accepts "key:value" or a bare event id.
func ParseEmailContextInput(input string) (string, string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", validationError("context input is empty")
	}
	if _, err := uuid.Parse(input); err == nil {
		return ContextKeyEvent, input, nil
	}
	key, value, ok := strings.Cut(input, ":")
	if !ok {
		return "", "", validationError("context input must be key:value or an event id")
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), nil
}

// Resolve returns the context description and its recipients. Organizers may
// only resolve contexts of their own events and mailing list.
func (s *EmailContextService) Resolve(ctx context.Context, caller auth.Session, key, value string) (*business.EmailContext, []business.EmailRecipient, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	ec := &business.EmailContext{Key: key, Value: value}

	var (
		recipients []business.EmailRecipient
		err        error
	)
	switch key {
	case ContextKeyEvent:
		recipients, err = s.resolveEvent(ctx, caller, ec)
	case ContextKeySection:
		recipients, err = s.resolveSection(ctx, caller, ec)
	case ContextKeyBookingStatus:
		recipients, err = s.resolveBookingStatus(ctx, caller, ec)
	case ContextKeyMailingList:
		recipients, err = s.resolveMailingList(ctx, caller, ec)
	case ContextKeyRefundRequested:
		recipients, err = s.resolveRefundRequested(ctx, caller, ec)
	default:
		return nil, nil, validationError("unknown context key %q", key)
	}
	if err != nil {
		return nil, nil, err
	}

	recipients = dedupeRecipients(recipients)
	s.logger.Debug("Email context resolved",
		zap.String("key", key),
		zap.String("value", value),
		zap.Int("recipients", len(recipients)))
	return ec, recipients, nil
}

func (s *EmailContextService) eventFor(ctx context.Context, caller auth.Session, raw string, ec *business.EmailContext) (*db.Event, error) {
	eventID, err := uuid.Parse(raw)
	if err != nil {
		return nil, validationError("%q is not a valid event id", raw)
	}
	event, err := authorizeEvent(ctx, s.queries, caller, eventID)
	if err != nil {
		return nil, err
	}
	ec.EventID = event.ID.String()
	ec.EventTitle = event.Title
	ec.EventDate = helpers.NullableTimestamptzToPtr(event.StartDate)
	return event, nil
}

func (s *EmailContextService) resolveEvent(ctx context.Context, caller auth.Session, ec *business.EmailContext) ([]business.EmailRecipient, error) {
	event, err := s.eventFor(ctx, caller, ec.Value, ec)
	if err != nil {
		return nil, err
	}
	ec.Label = "Participants of " + event.Title
	participants, err := s.queries.ListContactableParticipants(ctx, db.ListContactableParticipantsParams{EventID: event.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participantRecipients(participants), nil
}

func (s *EmailContextService) resolveSection(ctx context.Context, caller auth.Session, ec *business.EmailContext) ([]business.EmailRecipient, error) {
	sectionID, err := uuid.Parse(ec.Value)
	if err != nil {
		return nil, validationError("%q is not a valid section id", ec.Value)
	}
	section, err := s.queries.GetEventSection(ctx, sectionID)
	if err != nil {
		return nil, notFound(err, ErrSectionNotFound, "get section")
	}
	event, err := s.eventFor(ctx, caller, section.EventID.String(), ec)
	if err != nil {
		return nil, err
	}
	ec.Label = fmt.Sprintf("Section %s of %s", section.Name, event.Title)
	participants, err := s.queries.ListContactableParticipants(ctx, db.ListContactableParticipantsParams{
		EventID:   event.ID,
		SectionID: helpers.UUIDToNullableUUID(section.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list section participants: %w", err)
	}
	return participantRecipients(participants), nil
}

func (s *EmailContextService) resolveBookingStatus(ctx context.Context, caller auth.Session, ec *business.EmailContext) ([]business.EmailRecipient, error) {
	rawEvent, status, ok := strings.Cut(ec.Value, ":")
	status = strings.ToLower(strings.TrimSpace(status))
	if !ok || !bookingStatuses[status] {
		return nil, validationError("booking_status context must be <event_id>:<status>")
	}
	event, err := s.eventFor(ctx, caller, strings.TrimSpace(rawEvent), ec)
	if err != nil {
		return nil, err
	}
	ec.Label = fmt.Sprintf("%s bookings of %s", status, event.Title)
	rows, err := s.queries.ListBookerContactsByStatus(ctx, db.ListBookerContactsByStatusParams{
		EventID: event.ID,
		Status:  status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookers: %w", err)
	}
	out := make([]business.EmailRecipient, 0, len(rows))
	for _, r := range rows {
		out = append(out, namedRecipient(r.Email, r.FullName.String))
	}
	return out, nil
}

func (s *EmailContextService) resolveMailingList(ctx context.Context, caller auth.Session, ec *business.EmailContext) ([]business.EmailRecipient, error) {
	organizerID := caller.UserID
	if ec.Value != "" {
		id, err := uuid.Parse(ec.Value)
		if err != nil {
			return nil, validationError("%q is not a valid organizer id", ec.Value)
		}
		if !caller.CanManage(id) {
			return nil, ErrForbidden
		}
		organizerID = id
	}
	ec.Label = "Mailing list"
	entries, err := s.queries.ListSubscribedMailingList(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mailing list: %w", err)
	}
	out := make([]business.EmailRecipient, 0, len(entries))
	for _, e := range entries {
		out = append(out, namedRecipient(e.Email, e.Name.String))
	}
	return out, nil
}

func (s *EmailContextService) resolveRefundRequested(ctx context.Context, caller auth.Session, ec *business.EmailContext) ([]business.EmailRecipient, error) {
	event, err := s.eventFor(ctx, caller, ec.Value, ec)
	if err != nil {
		return nil, err
	}
	ec.Label = "Pending refund requests of " + event.Title
	rows, err := s.queries.ListRefundRequestedBookers(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list refund requests: %w", err)
	}
	out := make([]business.EmailRecipient, 0, len(rows))
	for _, r := range rows {
		out = append(out, namedRecipient(r.Email, r.FullName.String))
	}
	return out, nil
}

func participantRecipients(participants []db.Participant) []business.EmailRecipient {
	out := make([]business.EmailRecipient, 0, len(participants))
	for _, p := range participants {
		if !p.Email.Valid {
			continue
		}
		out = append(out, business.EmailRecipient{
			Email:     p.Email.String,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}
	return out
}

func namedRecipient(email, fullName string) business.EmailRecipient {
	r := business.EmailRecipient{Email: email}
	if fields := strings.Fields(fullName); len(fields) > 0 {
		r.FirstName = fields[0]
		r.LastName = strings.Join(fields[1:], " ")
	}
	return r
}

// dedupeRecipients keeps the first entry per address, compared case-insensitively.
func dedupeRecipients(in []business.EmailRecipient) []business.EmailRecipient {
	seen := make(map[string]bool, len(in))
	out := make([]business.EmailRecipient, 0, len(in))
	for _, r := range in {
		key := helpers.NormalizeEmail(r.Email)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		r.Email = strings.TrimSpace(r.Email)
		out = append(out, r)
	}
	return out
}

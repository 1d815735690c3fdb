package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sort fields accepted by the bookings dashboard
var BookingSortFields = []string{"booking_date", "total_amount", "event_date"}

// BookingService serves booking reads for attendees and organizers
type BookingService struct {
	queries    db.Querier
	calculator *RefundCalculator
	logger     *zap.Logger
	now        func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(queries db.Querier) *BookingService {
	return &BookingService{
		queries:    queries,
		calculator: NewRefundCalculator(),
		logger:     logger.L(),
		now:        time.Now,
	}
}

// ListUserBookings returns the caller's bookings with their event and current refund quote
func (s *BookingService) ListUserBookings(ctx context.Context, params params.ListBookingsParams) ([]responses.BookingResponse, int64, error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "booking_date"
	}
	if !slices.Contains(BookingSortFields, sortBy) {
		return nil, 0, validationError("unsupported sort field %q", sortBy)
	}

	rows, err := s.queries.ListUserBookings(ctx, db.ListUserBookingsParams{
		UserID:   params.UserID,
		Status:   helpers.StringToNullableText(params.Status),
		Search:   helpers.StringToNullableText(params.Search),
		SortBy:   sortBy,
		SortDesc: params.SortDesc,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		s.logger.Error("Failed to list user bookings",
			zap.String("user_id", params.UserID.String()),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	total, err := s.queries.CountUserBookings(ctx, db.CountUserBookingsParams{
		UserID: params.UserID,
		Status: helpers.StringToNullableText(params.Status),
		Search: helpers.StringToNullableText(params.Search),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	now := s.now()
	events := make(map[uuid.UUID]*db.Event)
	out := make([]responses.BookingResponse, len(rows))
	for i, row := range rows {
		booking := helpers.UserBookingRowToBooking(row)
		resp := helpers.ToBookingResponse(booking)
		resp.Event = &responses.BookingEventSummary{
			Title:     row.EventTitle,
			Slug:      row.EventSlug,
			StartDate: helpers.UnixPtr(row.EventStartDate),
			Location:  row.EventLocation.String,
		}

		event, ok := events[row.EventID]
		if !ok {
			e, err := s.queries.GetEvent(ctx, row.EventID)
			if err != nil {
				return nil, 0, notFound(err, ErrEventNotFound, "get event")
			}
			event = &e
			events[row.EventID] = event
		}
		quote := quoteBooking(s.calculator, booking, *event, now, s.logger)
		resp.RefundQuote = &quote
		out[i] = resp
	}
	return out, total, nil
}

// GetBooking returns one booking visible to the caller: its owner, the event's organizer or an admin
func (s *BookingService) GetBooking(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*responses.BookingResponse, error) {
	booking, event, err := loadBookingForCaller(ctx, s.queries, caller, bookingID)
	if err != nil {
		return nil, err
	}
	resp := helpers.ToBookingResponse(*booking)
	resp.Event = helpers.ToBookingEventSummary(*event)
	quote := quoteBooking(s.calculator, *booking, *event, s.now(), s.logger)
	resp.RefundQuote = &quote
	return &resp, nil
}

// ListEventBookings lists the bookings of an event the caller manages
func (s *BookingService) ListEventBookings(ctx context.Context, caller auth.Session, eventID uuid.UUID, limit, offset int32) ([]responses.BookingResponse, int64, error) {
	if _, err := authorizeEvent(ctx, s.queries, caller, eventID); err != nil {
		return nil, 0, err
	}
	bookings, err := s.queries.ListEventBookings(ctx, db.ListEventBookingsParams{
		EventID: eventID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list event bookings: %w", err)
	}
	total, err := s.queries.CountEventBookings(ctx, eventID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count event bookings: %w", err)
	}
	out := make([]responses.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = helpers.ToBookingResponse(b)
	}
	return out, total, nil
}

// loadBookingForCaller loads a booking and its event, enforcing read access.
func loadBookingForCaller(ctx context.Context, q db.Querier, caller auth.Session, bookingID uuid.UUID) (*db.Booking, *db.Event, error) {
	booking, err := q.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, notFound(err, ErrBookingNotFound, "get booking")
	}
	event, err := q.GetEvent(ctx, booking.EventID)
	if err != nil {
		return nil, nil, notFound(err, ErrEventNotFound, "get event")
	}
	if booking.UserID != caller.UserID && !caller.CanManage(event.OrganizerID) {
		return nil, nil, ErrForbidden
	}
	return &booking, &event, nil
}

// quoteBooking runs the refund calculator for a stored booking. Unreadable
// settings are treated as having no refund policy.
func quoteBooking(calc *RefundCalculator, booking db.Booking, event db.Event, now time.Time, log *zap.Logger) business.RefundQuote {
	settings, err := business.ParseEventSettings(event.Settings)
	if err != nil {
		log.Warn("Ignoring unreadable event settings",
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
		settings = business.EventSettings{}
	}
	return calc.Quote(RefundInput{
		BookingStatus: booking.Status,
		RefundStatus:  booking.RefundStatus,
		TotalCents:    booking.TotalAmount,
		Settings:      settings,
		EventStart:    helpers.NullableTimestamptzToPtr(event.StartDate),
		Now:           now,
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/metrics"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RefundService handles refund quotes, attendee requests and organizer decisions
type RefundService struct {
	queries    db.Querier
	tx         helpers.TxRunner
	calculator *RefundCalculator
	gateway    interfaces.RefundGateway
	mailer     interfaces.EmailSender
	renderer   *EmailRenderer
	metrics    *metrics.Collector
	logger     *logger.StructuredLogger
	now        func() time.Time
}

// NewRefundService creates a new refund service. gateway and mailer may be nil:
// without a gateway refunds cannot be approved, without a mailer nobody is notified.
func NewRefundService(queries db.Querier, tx helpers.TxRunner, gateway interfaces.RefundGateway, mailer interfaces.EmailSender, collector *metrics.Collector) *RefundService {
	return &RefundService{
		queries:    queries,
		tx:         tx,
		calculator: NewRefundCalculator(),
		gateway:    gateway,
		mailer:     mailer,
		renderer:   NewEmailRenderer(),
		metrics:    collector,
		logger:     logger.NewStructuredLogger(logger.ComponentRefund),
		now:        time.Now,
	}
}

// GetRefundQuote resolves the refund the booking would get right now
func (s *RefundService) GetRefundQuote(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*business.RefundQuote, error) {
	booking, event, err := loadBookingForCaller(ctx, s.queries, caller, bookingID)
	if err != nil {
		return nil, err
	}
	quote := quoteBooking(s.calculator, *booking, *event, s.now(), s.logger.Logger())
	return &quote, nil
}

// RequestRefund re-quotes the booking with its row locked and records the
// request when it is eligible. The organizer is notified afterwards; a failed
// notification does not fail the request.
func (s *RefundService) RequestRefund(ctx context.Context, params params.RequestRefundParams) (*db.Booking, *business.RefundQuote, error) {
	var (
		booking db.Booking
		event   db.Event
		quote   business.RefundQuote
	)
	reason := strings.TrimSpace(params.Reason)

	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		b, err := q.GetBookingForUpdate(ctx, params.BookingID)
		if err != nil {
			return notFound(err, ErrBookingNotFound, "lock booking")
		}
		if b.UserID != params.UserID {
			return ErrForbidden
		}
		event, err = q.GetEvent(ctx, b.EventID)
		if err != nil {
			return notFound(err, ErrEventNotFound, "get event")
		}
		quote = quoteBooking(s.calculator, b, event, s.now(), s.logger.Logger())
		if !quote.Eligible {
			return fmt.Errorf("%w: %s", ErrRefundNotEligible, quote.Reason)
		}
		booking, err = q.MarkBookingRefundRequested(ctx, db.MarkBookingRefundRequestedParams{
			ID:           b.ID,
			RefundAmount: helpers.Int64ToNullableInt8(quote.AmountCents),
			RefundReason: helpers.StringToNullableText(reason),
		})
		if err != nil {
			return fmt.Errorf("failed to record refund request: %w", err)
		}
		return nil
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, ErrRefundNotEligible) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrBookingNotFound) {
			outcome = "rejected"
		}
		s.metrics.RefundEvent("requested", outcome)
		return nil, nil, err
	}

	s.metrics.RefundEvent("requested", "success")
	s.logger.WithUserID(params.UserID.String()).
		WithEventID(event.ID.String()).
		LogRefundEvent(booking.ID.String(), booking.RefundStatus, quote.AmountCents, reason)

	s.notifyOrganizer(ctx, booking, event, quote, reason)
	return &booking, &quote, nil
}

// ApproveRefund moves a requested refund to processing, issues it through the
// payment gateway and completes the booking. A gateway failure leaves the
// refund failed.
func (s *RefundService) ApproveRefund(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*db.Booking, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("refund gateway: %w", ErrNotConfigured)
	}

	var booking db.Booking
	var event *db.Event
	settled := false
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		b, e, err := s.lockRequestedRefund(ctx, q, caller, bookingID)
		if err != nil {
			return err
		}
		event = e
		// nothing to send back; no gateway call
		if b.RefundAmount.Int64 == 0 {
			booking, err = q.CompleteBookingRefund(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("failed to complete refund: %w", err)
			}
			settled = true
			return nil
		}
		if !b.PaymentIntentID.Valid || b.PaymentIntentID.String == "" {
			return ErrNoPaymentIntent
		}
		booking, err = q.UpdateBookingRefundStatus(ctx, db.UpdateBookingRefundStatusParams{
			ID:           b.ID,
			RefundStatus: constants.RefundStatusProcessing,
		})
		if err != nil {
			return fmt.Errorf("failed to mark refund processing: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.RefundEvent("approved", "rejected")
		return nil, err
	}
	if settled {
		s.metrics.RefundEvent("approved", "success")
		s.logger.WithEventID(event.ID.String()).LogRefundEvent(booking.ID.String(), booking.RefundStatus, 0, "")
		s.notifyAttendee(ctx, booking, *event, true, "")
		return &booking, nil
	}

	result, gwErr := s.gateway.CreateRefund(ctx, interfaces.RefundGatewayParams{
		PaymentIntentID: booking.PaymentIntentID.String,
		AmountCents:     booking.RefundAmount.Int64,
		Reason:          booking.RefundReason.String,
		IdempotencyKey:  "booking-refund-" + booking.ID.String(),
		Metadata: map[string]string{
			"booking_id": booking.ID.String(),
			"event_id":   booking.EventID.String(),
		},
	})
	if gwErr != nil {
		s.logger.WithEventID(event.ID.String()).Error("Refund gateway failed", gwErr)
		if _, err := s.queries.UpdateBookingRefundStatus(ctx, db.UpdateBookingRefundStatusParams{
			ID:           booking.ID,
			RefundStatus: constants.RefundStatusFailed,
		}); err != nil {
			s.logger.Error("Failed to mark refund failed", err)
		}
		s.metrics.RefundEvent("approved", "error")
		return nil, fmt.Errorf("refund gateway failed: %w", gwErr)
	}

	completed, err := s.queries.CompleteBookingRefund(ctx, booking.ID)
	if err != nil {
		// The money has moved; the row must be reconciled from the gateway refund id.
		s.logger.WithField("gateway_refund_id", result.RefundID).Error("Failed to complete refunded booking", err)
		return nil, fmt.Errorf("failed to complete refund: %w", err)
	}
	s.metrics.RefundEvent("approved", "success")
	s.logger.WithEventID(event.ID.String()).
		WithField("gateway_refund_id", result.RefundID).
		LogRefundEvent(completed.ID.String(), completed.RefundStatus, completed.RefundAmount.Int64, "")

	s.notifyAttendee(ctx, completed, *event, true, "")
	return &completed, nil
}

// DenyRefund rejects a requested refund with the organizer's reason
func (s *RefundService) DenyRefund(ctx context.Context, caller auth.Session, bookingID uuid.UUID, reason string) (*db.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationError("reason is required")
	}

	var booking db.Booking
	var event *db.Event
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		b, e, err := s.lockRequestedRefund(ctx, q, caller, bookingID)
		if err != nil {
			return err
		}
		event = e
		booking, err = q.UpdateBookingRefundStatus(ctx, db.UpdateBookingRefundStatusParams{
			ID:           b.ID,
			RefundStatus: constants.RefundStatusFailed,
			RefundReason: helpers.StringToNullableText(reason),
		})
		if err != nil {
			return fmt.Errorf("failed to deny refund: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.RefundEvent("denied", "rejected")
		return nil, err
	}
	s.metrics.RefundEvent("denied", "success")
	s.logger.WithEventID(event.ID.String()).
		LogRefundEvent(booking.ID.String(), booking.RefundStatus, 0, reason)

	s.notifyAttendee(ctx, booking, *event, false, reason)
	return &booking, nil
}

// lockRequestedRefund locks the booking row and checks the caller manages its
// event and that a refund is awaiting a decision.
func (s *RefundService) lockRequestedRefund(ctx context.Context, q db.Querier, caller auth.Session, bookingID uuid.UUID) (*db.Booking, *db.Event, error) {
	b, err := q.GetBookingForUpdate(ctx, bookingID)
	if err != nil {
		return nil, nil, notFound(err, ErrBookingNotFound, "lock booking")
	}
	event, err := authorizeEvent(ctx, q, caller, b.EventID)
	if err != nil {
		return nil, nil, err
	}
	if b.RefundStatus != constants.RefundStatusRequested {
		return nil, nil, ErrRefundNotRequested
	}
	return &b, event, nil
}

func (s *RefundService) notifyOrganizer(ctx context.Context, booking db.Booking, event db.Event, quote business.RefundQuote, reason string) {
	if s.mailer == nil {
		return
	}
	to := ""
	if settings, err := business.ParseEventSettings(event.Settings); err == nil {
		to = settings.ContactEmail
	}
	if to == "" {
		profile, err := s.queries.GetProfile(ctx, event.OrganizerID)
		if err != nil {
			s.logger.Warn("Could not load organizer for refund notification", zap.Error(err))
			return
		}
		to = profile.Email
	}

	if reason == "" {
		reason = "_No reason given._"
	}
	body := fmt.Sprintf("A refund of **%s** (%.0f%%) was requested for booking `%s` of **%s**.\n\nReason: %s",
		helpers.FormatCents(quote.AmountCents, booking.Currency), quote.Percentage, booking.ID, PlaceholderEventTitle, reason)
	s.send(ctx, to, "Refund requested: "+event.Title, body, business.EmailTemplateData{EventTitle: event.Title}, "refund_requested")
}

func (s *RefundService) notifyAttendee(ctx context.Context, booking db.Booking, event db.Event, approved bool, reason string) {
	if s.mailer == nil {
		return
	}
	profile, err := s.queries.GetProfile(ctx, booking.UserID)
	if err != nil {
		s.logger.Warn("Could not load attendee for refund notification", zap.Error(err))
		return
	}

	data := business.EmailTemplateData{EventTitle: event.Title}
	if names := strings.Fields(profile.FullName.String); len(names) > 0 {
		data.FirstName = names[0]
	}
	var subject, body string
	if approved {
		subject = "Your refund for " + event.Title + " was approved"
		body = fmt.Sprintf("Hi %s,\n\nYour refund of **%s** for **%s** has been issued. It may take a few days to appear on your statement.",
			PlaceholderFirstName, helpers.FormatCents(booking.RefundAmount.Int64, booking.Currency), PlaceholderEventTitle)
	} else {
		subject = "Your refund request for " + event.Title
		body = fmt.Sprintf("Hi %s,\n\nYour refund request for **%s** was declined.\n\nReason: %s", PlaceholderFirstName, PlaceholderEventTitle, reason)
	}
	s.send(ctx, profile.Email, subject, body, data, "refund_decision")
}

func (s *RefundService) send(ctx context.Context, to, subject, markdown string, data business.EmailTemplateData, category string) {
	html, err := s.renderer.Render(markdown, data)
	if err != nil {
		s.logger.Warn("Failed to render refund notification", zap.Error(err))
		return
	}
	if _, err := s.mailer.Send(ctx, business.OutgoingEmail{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		Text:    s.renderer.RenderText(markdown, data),
		Tags:    map[string]string{"category": category},
	}); err != nil {
		s.metrics.EmailsSent("failed", 1)
		s.logger.Warn("Refund notification failed", zap.String("to", to), zap.Error(err))
		return
	}
	s.metrics.EmailsSent("sent", 1)
}

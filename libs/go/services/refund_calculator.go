package services

import (
	"fmt"
	"math"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// RefundCalculator resolves which refund tier applies to a booking at a given
// instant and how much it pays out. It has no dependencies and never errors.
type RefundCalculator struct{}

// NewRefundCalculator creates a new refund calculator
func NewRefundCalculator() *RefundCalculator {
	return &RefundCalculator{}
}

// RefundInput is everything the calculator needs about one booking.
type RefundInput struct {
	BookingStatus string
	RefundStatus  string
	TotalCents    int64
	Settings      business.EventSettings
	EventStart    *time.Time
	Now           time.Time
}

// Quote resolves the refund for in.Now.
//
// The first timeline entry whose window contains Now is the quote, whether or
// not the booking can actually be refunded; eligibility is then decided on
// that same entry. Ineligibility reasons are checked in this order: booking
// status, refund status, missing policy, no active window, zero-value window.
func (rc *RefundCalculator) Quote(in RefundInput) business.RefundQuote {
	quote := business.RefundQuote{ActiveIndex: -1}

	timeline := in.Settings.RefundTimeline
	if idx := rc.ActiveEntryIndex(timeline, in.EventStart, in.Now); idx >= 0 {
		entry := timeline[idx]
		quote.ActiveIndex = idx
		quote.Type = entry.Type
		quote.Value = entry.Value
		quote.AmountCents = rc.EntryAmount(entry, in.TotalCents)
		quote.Percentage = helpers.EffectivePercentage(quote.AmountCents, in.TotalCents)
		if end, bounded := entryUpperBound(entry, in.EventStart); bounded {
			quote.WindowEnds = &end
		}
	}

	switch {
	case in.BookingStatus != constants.BookingStatusConfirmed && in.BookingStatus != constants.BookingStatusVerified:
		quote.Reason = business.RefundReasonBookingStatus
	case in.RefundStatus != "" && in.RefundStatus != constants.RefundStatusNone:
		quote.Reason = business.RefundReasonRefundStatus
	case len(timeline) == 0 || (in.Settings.AllowRefunds != nil && !*in.Settings.AllowRefunds):
		quote.Reason = business.RefundReasonNoPolicy
	case quote.ActiveIndex < 0:
		quote.Reason = business.RefundReasonNoActiveWindow
	case quote.Value <= 0:
		quote.Reason = business.RefundReasonZeroValueWindow
	default:
		quote.Eligible = true
	}
	return quote
}

// ActiveEntryIndex returns the index of the first entry whose window contains
// now, or -1. A window is [from_date, to_date] inclusive; a missing from_date is
// unbounded below and a missing to_date falls back to the event start, or is
// unbounded above when the event has no start.
func (rc *RefundCalculator) ActiveEntryIndex(timeline []business.RefundTimelineEntry, eventStart *time.Time, now time.Time) int {
	for i, entry := range timeline {
		if entry.FromDate != nil && now.Before(entry.FromDate.Start()) {
			continue
		}
		if end, bounded := entryUpperBound(entry, eventStart); bounded && now.After(end) {
			continue
		}
		return i
	}
	return -1
}

// EntryAmount is the refund an entry pays on total: a rounded percentage, or a
// fixed amount of whole cents capped at the total.
func (rc *RefundCalculator) EntryAmount(entry business.RefundTimelineEntry, totalCents int64) int64 {
	if totalCents <= 0 || entry.Value <= 0 {
		return 0
	}
	switch entry.Type {
	case constants.RefundTypePercentage:
		return min(helpers.PercentOfCents(totalCents, entry.Value), totalCents)
	case constants.RefundTypeFixed:
		return min(int64(math.Round(entry.Value)), totalCents)
	default:
		return 0
	}
}

func entryUpperBound(entry business.RefundTimelineEntry, eventStart *time.Time) (time.Time, bool) {
	if entry.ToDate != nil {
		return entry.ToDate.End(), true
	}
	if eventStart != nil {
		return *eventStart, true
	}
	return time.Time{}, false
}

// ValidateRefundTimeline checks an organizer-supplied policy before it is stored.
func ValidateRefundTimeline(timeline []business.RefundTimelineEntry) error {
	for i, entry := range timeline {
		switch entry.Type {
		case constants.RefundTypePercentage:
			if entry.Value > 100 {
				return fmt.Errorf("refund_timeline[%d]: percentage value must be at most 100", i)
			}
		case constants.RefundTypeFixed:
			if entry.Value != math.Trunc(entry.Value) {
				return fmt.Errorf("refund_timeline[%d]: fixed value must be whole cents", i)
			}
		default:
			return fmt.Errorf("refund_timeline[%d]: type must be %q or %q", i, constants.RefundTypePercentage, constants.RefundTypeFixed)
		}
		if entry.Value < 0 {
			return fmt.Errorf("refund_timeline[%d]: value must not be negative", i)
		}
		if entry.FromDate != nil && entry.ToDate != nil && entry.FromDate.Start().After(entry.ToDate.End()) {
			return fmt.Errorf("refund_timeline[%d]: from_date must not be after to_date", i)
		}
	}
	return nil
}

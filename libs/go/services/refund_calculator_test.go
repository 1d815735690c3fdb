package services_test

import (
	"math"
	"testing"
	"testing/quick"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundCalculator_Quote(t *testing.T) {
	rc := services.NewRefundCalculator()
	eventStart := time.Date(2025, 1, 20, 18, 0, 0, 0, time.UTC)

	fullUntil10th := []business.RefundTimelineEntry{
		{ToDate: mustTimelineDate(t, "2025-01-10"), Type: constants.RefundTypePercentage, Value: 100},
	}
	tiered := []business.RefundTimelineEntry{
		{ToDate: mustTimelineDate(t, "2025-01-10"), Type: constants.RefundTypePercentage, Value: 100},
		{FromDate: mustTimelineDate(t, "2025-01-11"), ToDate: mustTimelineDate(t, "2025-01-15"), Type: constants.RefundTypePercentage, Value: 50},
		{FromDate: mustTimelineDate(t, "2025-01-16"), Type: constants.RefundTypeFixed, Value: 2500},
	}

	tests := []struct {
		name         string
		input        services.RefundInput
		wantEligible bool
		wantReason   string
		wantIndex    int
		wantAmount   int64
		wantPct      float64
	}{
		{
			name: "full refund before the cutoff",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				RefundStatus:  constants.RefundStatusNone,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th},
				EventStart:    &eventStart,
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    0,
			wantAmount:   10000,
			wantPct:      100,
		},
		{
			name: "date-only to_date covers the whole day",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusVerified,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th},
				Now:           time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    0,
			wantAmount:   10000,
			wantPct:      100,
		},
		{
			name: "middle tier pays half",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    4999,
				Settings:      business.EventSettings{RefundTimeline: tiered},
				EventStart:    &eventStart,
				Now:           time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    1,
			wantAmount:   2500,
			wantPct:      float64(2500) / float64(4999) * 100,
		},
		{
			name: "open-ended tier closes at event start",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: tiered},
				EventStart:    &eventStart,
				Now:           eventStart.Add(time.Minute),
			},
			wantReason: business.RefundReasonNoActiveWindow,
			wantIndex:  -1,
		},
		{
			name: "fixed tier capped at total",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    1000,
				Settings:      business.EventSettings{RefundTimeline: tiered},
				EventStart:    &eventStart,
				Now:           time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    2,
			wantAmount:   1000,
			wantPct:      100,
		},
		{
			name: "pending booking is quoted but not eligible",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusPending,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th},
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantReason: business.RefundReasonBookingStatus,
			wantIndex:  0,
			wantAmount: 10000,
			wantPct:    100,
		},
		{
			name: "refund already requested",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				RefundStatus:  constants.RefundStatusRequested,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th},
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantReason: business.RefundReasonRefundStatus,
			wantIndex:  0,
			wantAmount: 10000,
			wantPct:    100,
		},
		{
			name: "no timeline",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    10000,
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantReason: business.RefundReasonNoPolicy,
			wantIndex:  -1,
		},
		{
			name: "refunds switched off",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    10000,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th, AllowRefunds: boolPtr(false)},
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantReason: business.RefundReasonNoPolicy,
			wantIndex:  0,
			wantAmount: 10000,
			wantPct:    100,
		},
		{
			name: "zero-value window",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    10000,
				Settings: business.EventSettings{RefundTimeline: []business.RefundTimelineEntry{
					{Type: constants.RefundTypePercentage, Value: 0},
				}},
				Now: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantReason: business.RefundReasonZeroValueWindow,
			wantIndex:  0,
		},
		{
			name: "fractional percentage tier",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    10000,
				Settings: business.EventSettings{RefundTimeline: []business.RefundTimelineEntry{
					{Type: constants.RefundTypePercentage, Value: 12.5},
				}},
				Now: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    0,
			wantAmount:   1250,
			wantPct:      12.5,
		},
		{
			name: "free booking under a paying tier",
			input: services.RefundInput{
				BookingStatus: constants.BookingStatusConfirmed,
				TotalCents:    0,
				Settings:      business.EventSettings{RefundTimeline: fullUntil10th},
				Now:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantEligible: true,
			wantIndex:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := rc.Quote(tt.input)
			assert.Equal(t, tt.wantEligible, quote.Eligible)
			assert.Equal(t, tt.wantReason, quote.Reason)
			assert.Equal(t, tt.wantIndex, quote.ActiveIndex)
			assert.Equal(t, tt.wantAmount, quote.AmountCents)
			assert.InDelta(t, tt.wantPct, quote.Percentage, 0.0001)
		})
	}
}

func TestRefundCalculator_ActiveEntryIndex_FirstMatchWins(t *testing.T) {
	rc := services.NewRefundCalculator()
	overlapping := []business.RefundTimelineEntry{
		{ToDate: mustTimelineDate(t, "2025-01-10"), Type: constants.RefundTypePercentage, Value: 80},
		{ToDate: mustTimelineDate(t, "2025-01-20"), Type: constants.RefundTypePercentage, Value: 100},
	}

	assert.Equal(t, 0, rc.ActiveEntryIndex(overlapping, nil, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, rc.ActiveEntryIndex(overlapping, nil, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, rc.ActiveEntryIndex(overlapping, nil, time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)))

	// Any instant covered by both entries resolves to the first one.
	prop := func(offsetHours uint16) bool {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(offsetHours%(24*25)) * time.Hour)
		idx := rc.ActiveEntryIndex(overlapping, nil, now)
		switch {
		case !now.After(overlapping[0].ToDate.End()):
			return idx == 0
		case !now.After(overlapping[1].ToDate.End()):
			return idx == 1
		default:
			return idx == -1
		}
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestRefundCalculator_EntryAmount(t *testing.T) {
	rc := services.NewRefundCalculator()

	percentage := func(total uint32, value uint8) bool {
		v := float64(value%201) / 2
		tot := int64(total % 10_000_000)
		got := rc.EntryAmount(business.RefundTimelineEntry{Type: constants.RefundTypePercentage, Value: v}, tot)
		return got == int64(math.Round(float64(tot)*v/100))
	}
	assert.NoError(t, quick.Check(percentage, nil))

	fixed := func(total, value uint32) bool {
		got := rc.EntryAmount(business.RefundTimelineEntry{Type: constants.RefundTypeFixed, Value: float64(value)}, int64(total))
		if total == 0 || value == 0 {
			return got == 0
		}
		return got == min(int64(value), int64(total))
	}
	assert.NoError(t, quick.Check(fixed, nil))

	assert.Zero(t, rc.EntryAmount(business.RefundTimelineEntry{Type: "credit", Value: 50}, 1000))
}

func TestRefundCalculator_IneligibleRegardlessOfTimeline(t *testing.T) {
	rc := services.NewRefundCalculator()
	timeline := []business.RefundTimelineEntry{{Type: constants.RefundTypePercentage, Value: 100}}
	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	for _, status := range []string{constants.BookingStatusPending, constants.BookingStatusCancelled, constants.BookingStatusRefunded} {
		q := rc.Quote(services.RefundInput{BookingStatus: status, TotalCents: 100, Settings: business.EventSettings{RefundTimeline: timeline}, Now: now})
		assert.False(t, q.Eligible, status)
	}
	for _, rs := range []string{constants.RefundStatusRequested, constants.RefundStatusProcessing, constants.RefundStatusCompleted, constants.RefundStatusFailed} {
		q := rc.Quote(services.RefundInput{BookingStatus: constants.BookingStatusConfirmed, RefundStatus: rs, TotalCents: 100, Settings: business.EventSettings{RefundTimeline: timeline}, Now: now})
		assert.False(t, q.Eligible, rs)
	}
}

func TestValidateRefundTimeline(t *testing.T) {
	tests := []struct {
		name     string
		timeline []business.RefundTimelineEntry
		wantErr  string
	}{
		{name: "empty is fine"},
		{
			name: "valid tiers",
			timeline: []business.RefundTimelineEntry{
				{ToDate: mustTimelineDate(t, "2025-01-10"), Type: constants.RefundTypePercentage, Value: 100},
				{FromDate: mustTimelineDate(t, "2025-01-11"), Type: constants.RefundTypeFixed, Value: 500},
			},
		},
		{
			name:     "percentage above 100",
			timeline: []business.RefundTimelineEntry{{Type: constants.RefundTypePercentage, Value: 120}},
			wantErr:  "refund_timeline[0]: percentage value must be at most 100",
		},
		{
			name:     "fractional percentage",
			timeline: []business.RefundTimelineEntry{{Type: constants.RefundTypePercentage, Value: 12.5}},
		},
		{
			name:     "fixed amount in fractional cents",
			timeline: []business.RefundTimelineEntry{{Type: constants.RefundTypeFixed, Value: 12.5}},
			wantErr:  "refund_timeline[0]: fixed value must be whole cents",
		},
		{
			name:     "unknown type",
			timeline: []business.RefundTimelineEntry{{Type: "voucher", Value: 10}},
			wantErr:  "refund_timeline[0]: type must be",
		},
		{
			name:     "negative value",
			timeline: []business.RefundTimelineEntry{{Type: constants.RefundTypeFixed, Value: -1}},
			wantErr:  "refund_timeline[0]: value must not be negative",
		},
		{
			name: "inverted window",
			timeline: []business.RefundTimelineEntry{
				{Type: constants.RefundTypeFixed, Value: 1},
				{FromDate: mustTimelineDate(t, "2025-02-01"), ToDate: mustTimelineDate(t, "2025-01-01"), Type: constants.RefundTypeFixed, Value: 1},
			},
			wantErr: "refund_timeline[1]: from_date must not be after to_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateRefundTimeline(tt.timeline)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseEventSettings_FractionalPercentage(t *testing.T) {
	settings, err := business.ParseEventSettings([]byte(`{"refund_timeline":[{"to_date":"2025-01-10","type":"percentage","value":12.5},{"type":"fixed","value":1500}]}`))
	require.NoError(t, err)
	require.Len(t, settings.RefundTimeline, 2)
	assert.Equal(t, 12.5, settings.RefundTimeline[0].Value)
	assert.NoError(t, services.ValidateRefundTimeline(settings.RefundTimeline))

	rc := services.NewRefundCalculator()
	assert.Equal(t, int64(1250), rc.EntryAmount(settings.RefundTimeline[0], 10000))
	assert.Equal(t, int64(1500), rc.EntryAmount(settings.RefundTimeline[1], 10000))
}

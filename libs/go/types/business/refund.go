package business

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// TimelineDate is a refund timeline bound. It accepts either a calendar date
// ("2025-01-10") or an RFC3339 timestamp. Calendar dates are UTC days.
type TimelineDate struct {
	Time     time.Time
	DateOnly bool
}

// ParseTimelineDate parses a calendar date or an RFC3339 timestamp.
func ParseTimelineDate(s string) (TimelineDate, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return TimelineDate{Time: t.UTC(), DateOnly: true}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return TimelineDate{}, fmt.Errorf("invalid timeline date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return TimelineDate{Time: t}, nil
}

// Start is the first instant covered by the bound.
func (d TimelineDate) Start() time.Time {
	return d.Time
}

// End is the last instant covered by the bound. A calendar date covers its whole UTC day.
func (d TimelineDate) End() time.Time {
	if d.DateOnly {
		return d.Time.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return d.Time
}

func (d TimelineDate) String() string {
	if d.DateOnly {
		return d.Time.Format(dateOnlyLayout)
	}
	return d.Time.Format(time.RFC3339)
}

func (d TimelineDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *TimelineDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timeline date must be a string: %w", err)
	}
	parsed, err := ParseTimelineDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RefundTimelineEntry is one tier of an event's refund policy. Value is a
// percentage (fractions allowed) or a fixed amount in whole cents.
type RefundTimelineEntry struct {
	FromDate *TimelineDate `json:"from_date,omitempty"`
	ToDate   *TimelineDate `json:"to_date,omitempty"`
	Type     string        `json:"type"`
	Value    float64       `json:"value"`
}

// EventSettings is the jsonb settings column of an event.
type EventSettings struct {
	RefundTimeline []RefundTimelineEntry      `json:"refund_timeline"`
	AllowRefunds   *bool                      `json:"allow_refunds,omitempty"`
	ContactEmail   string                     `json:"contact_email,omitempty"`
	Extra          map[string]json.RawMessage `json:"-"`
}

var eventSettingsKnownKeys = []string{"refund_timeline", "allow_refunds", "contact_email"}

// UnmarshalJSON keeps unknown keys so a round trip through the API never drops them.
func (s *EventSettings) UnmarshalJSON(b []byte) error {
	type alias EventSettings
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, k := range eventSettingsKnownKeys {
		delete(raw, k)
	}
	*s = EventSettings(a)
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s EventSettings) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}
	timeline := s.RefundTimeline
	if timeline == nil {
		timeline = []RefundTimelineEntry{}
	}
	out["refund_timeline"] = timeline
	if s.AllowRefunds != nil {
		out["allow_refunds"] = *s.AllowRefunds
	}
	if s.ContactEmail != "" {
		out["contact_email"] = s.ContactEmail
	}
	return json.Marshal(out)
}

// ParseEventSettings decodes the settings column; an empty column is an empty policy.
func ParseEventSettings(raw []byte) (EventSettings, error) {
	var s EventSettings
	if len(raw) == 0 || string(raw) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("invalid event settings: %w", err)
	}
	return s, nil
}

// Refund ineligibility reasons
const (
	RefundReasonBookingStatus   = "booking_status"
	RefundReasonRefundStatus    = "refund_status"
	RefundReasonNoPolicy        = "no_refund_policy"
	RefundReasonNoActiveWindow  = "no_active_window"
	RefundReasonZeroValueWindow = "zero_value_window"
)

// RefundQuote is the resolved refund for a booking at a given instant.
// ActiveIndex is -1 when no timeline entry covers the instant.
type RefundQuote struct {
	Eligible    bool       `json:"eligible"`
	Reason      string     `json:"reason,omitempty"`
	ActiveIndex int        `json:"active_index"`
	Type        string     `json:"type,omitempty"`
	Value       float64    `json:"value"`
	AmountCents int64      `json:"amount_cents"`
	Percentage  float64    `json:"percentage"`
	WindowEnds  *time.Time `json:"window_ends,omitempty"`
}

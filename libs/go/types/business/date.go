package business

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date. It decodes from "2006-01-02" or an RFC3339
// timestamp, keeping only the date part, and always encodes as "2006-01-02".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return NewDate(y, m, d), nil
}

// SameDay compares calendar dates, ignoring time of day and location.
func (d Date) SameDay(t time.Time) bool {
	ay, am, ad := d.Time.Date()
	by, bm, bd := t.Date()
	return ay == by && am == bm && ad == bd
}

func (d Date) String() string {
	return d.Time.Format(dateOnlyLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

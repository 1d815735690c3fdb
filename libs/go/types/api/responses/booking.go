package responses

import "github.com/chessclub/club-events-api/libs/go/types/business"

// BookingResponse represents a booking as seen by its owner or the event organizer
type BookingResponse struct {
	ID                string                `json:"id"`
	Object            string                `json:"object"`
	EventID           string                `json:"event_id"`
	UserID            string                `json:"user_id"`
	Status            string                `json:"status"`
	TotalAmount       int64                 `json:"total_amount"`
	Currency          string                `json:"currency"`
	Quantity          int32                 `json:"quantity"`
	DiscountAmount    int64                 `json:"discount_amount"`
	RefundStatus      string                `json:"refund_status"`
	RefundAmount      *int64                `json:"refund_amount,omitempty"`
	RefundReason      string                `json:"refund_reason,omitempty"`
	RefundRequestedAt *int64                `json:"refund_requested_at,omitempty"`
	BookingDate       int64                 `json:"booking_date"`
	CreatedAt         int64                 `json:"created_at"`
	UpdatedAt         int64                 `json:"updated_at"`
	Event             *BookingEventSummary  `json:"event,omitempty"`
	RefundQuote       *business.RefundQuote `json:"refund_quote,omitempty"`
}

// BookingEventSummary is the slice of an event shown next to a booking
type BookingEventSummary struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	StartDate *int64 `json:"start_date,omitempty"`
	Location  string `json:"location,omitempty"`
}

// RefundResponse keeps the {success, refund_amount, percentage} contract of the refund endpoint
type RefundResponse struct {
	Success      bool    `json:"success"`
	RefundAmount int64   `json:"refund_amount,omitempty"`
	Percentage   float64 `json:"percentage,omitempty"`
	Error        string  `json:"error,omitempty"`
}

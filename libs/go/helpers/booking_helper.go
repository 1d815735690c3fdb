package helpers

import (
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/jackc/pgx/v5/pgtype"
)

// UnixPtr returns the unix seconds of a nullable timestamp.
func UnixPtr(t pgtype.Timestamptz) *int64 {
	if !t.Valid {
		return nil
	}
	v := t.Time.Unix()
	return &v
}

// ToBookingResponse converts database booking model to API response
func ToBookingResponse(b db.Booking) responses.BookingResponse {
	return responses.BookingResponse{
		ID:                b.ID.String(),
		Object:            "booking",
		EventID:           b.EventID.String(),
		UserID:            b.UserID.String(),
		Status:            b.Status,
		TotalAmount:       b.TotalAmount,
		Currency:          b.Currency,
		Quantity:          b.Quantity,
		DiscountAmount:    b.DiscountAmount,
		RefundStatus:      b.RefundStatus,
		RefundAmount:      NullableInt8ToPtr(b.RefundAmount),
		RefundReason:      b.RefundReason.String,
		RefundRequestedAt: UnixPtr(b.RefundRequestedAt),
		BookingDate:       b.BookingDate.Time.Unix(),
		CreatedAt:         b.CreatedAt.Time.Unix(),
		UpdatedAt:         b.UpdatedAt.Time.Unix(),
	}
}

// UserBookingRowToBooking strips the joined event columns off a dashboard row.
func UserBookingRowToBooking(r db.ListUserBookingsRow) db.Booking {
	return db.Booking{
		ID:                r.ID,
		EventID:           r.EventID,
		UserID:            r.UserID,
		Status:            r.Status,
		TotalAmount:       r.TotalAmount,
		Currency:          r.Currency,
		Quantity:          r.Quantity,
		RefundStatus:      r.RefundStatus,
		RefundAmount:      r.RefundAmount,
		RefundReason:      r.RefundReason,
		RefundRequestedAt: r.RefundRequestedAt,
		PaymentIntentID:   r.PaymentIntentID,
		DiscountID:        r.DiscountID,
		DiscountAmount:    r.DiscountAmount,
		BookingDate:       r.BookingDate,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// ToBookingEventSummary builds the event block shown on a booking
func ToBookingEventSummary(e db.Event) *responses.BookingEventSummary {
	return &responses.BookingEventSummary{
		Title:     e.Title,
		Slug:      e.Slug,
		StartDate: UnixPtr(e.StartDate),
		Location:  e.Location.String,
	}
}

package params

import "github.com/google/uuid"

// ListBookingsParams contains filters for a user's bookings dashboard
type ListBookingsParams struct {
	UserID   uuid.UUID
	Search   string
	Status   string
	SortBy   string
	SortDesc bool
	Limit    int32
	Offset   int32
}

// RequestRefundParams contains parameters for a refund request by the booking owner
type RequestRefundParams struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Reason    string
}

package requests

// RefundRequest is the body of POST /bookings/{booking_id}/refund
type RefundRequest struct {
	Reason string `json:"reason"`
}

// DenyRefundRequest is the body of POST /organizer/bookings/{booking_id}/refund/deny
type DenyRefundRequest struct {
	Reason string `json:"reason" binding:"required"`
}

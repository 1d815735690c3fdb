package services

import (
	"context"
	"fmt"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// TicketQRSize is the edge length in pixels of rendered ticket codes
const TicketQRSize = 256

// TicketPayload is the text encoded into a booking's check-in code
func TicketPayload(bookingID uuid.UUID) string {
	return "club-events:booking:" + bookingID.String()
}

// GetTicketQRCode renders the check-in QR code of a confirmed booking as PNG
func (s *BookingService) GetTicketQRCode(ctx context.Context, caller auth.Session, bookingID uuid.UUID) ([]byte, error) {
	booking, _, err := loadBookingForCaller(ctx, s.queries, caller, bookingID)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case constants.BookingStatusConfirmed, constants.BookingStatusVerified:
	default:
		return nil, validationError("booking %s is %s; only confirmed bookings have a ticket", booking.ID, booking.Status)
	}

	qr, err := qrcode.New(TicketPayload(booking.ID), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(TicketQRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

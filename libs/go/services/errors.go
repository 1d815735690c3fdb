package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrDiscountNotFound    = errors.New("discount not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrPricingNotFound     = errors.New("pricing tier not found")
	ErrCampaignNotFound    = errors.New("email campaign not found")
	ErrPlayerNotFound      = errors.New("player not found")

	// ErrForbidden means the caller is authenticated but does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation wraps every input error a handler should answer with 400.
	ErrValidation = errors.New("invalid input")

	ErrRefundNotEligible  = errors.New("booking is not eligible for a refund")
	ErrRefundNotRequested = errors.New("no refund has been requested for this booking")
	ErrNoPaymentIntent    = errors.New("booking has no captured payment to refund")
	ErrSectionFull        = errors.New("section is full")
	ErrCampaignClaimed    = errors.New("email campaign is already being delivered")

	// ErrNotConfigured means an optional upstream (payments, ratings) is not set up.
	ErrNotConfigured = errors.New("service is not configured")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// notFound maps pgx.ErrNoRows to sentinel and wraps anything else.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

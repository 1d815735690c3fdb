package interfaces

import (
	"context"

	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// EmailSender delivers rendered messages through the email provider
type EmailSender interface {
	Send(ctx context.Context, email business.OutgoingEmail) (string, error)
	SendBatch(ctx context.Context, emails []business.OutgoingEmail) ([]string, error)
}

// QueueClient publishes messages to the email queue
type QueueClient interface {
	SendMessage(ctx context.Context, body string) (string, error)
}

// RefundGateway issues refunds against the payment provider
type RefundGateway interface {
	CreateRefund(ctx context.Context, params RefundGatewayParams) (*RefundGatewayResult, error)
}

// RefundGatewayParams contains parameters for refunding a captured payment
type RefundGatewayParams struct {
	PaymentIntentID string
	AmountCents     int64
	Reason          string
	IdempotencyKey  string
	Metadata        map[string]string
}

// RefundGatewayResult contains the provider's view of the refund
type RefundGatewayResult struct {
	RefundID string
	Status   string
}

// RatingsClient looks up rated players in the federation ratings service
type RatingsClient interface {
	GetPlayer(ctx context.Context, playerID string) (*business.RatedPlayer, error)
}

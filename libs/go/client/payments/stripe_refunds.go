package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// maxRefundAttempts bounds retries of transient provider failures.
const maxRefundAttempts = 3

type createRefundFunc func(ctx context.Context, params *stripe.RefundCreateParams) (*stripe.Refund, error)

// StripeRefunds issues booking refunds through Stripe
type StripeRefunds struct {
	create  createRefundFunc
	backoff func() backoff.BackOff
	logger  *zap.Logger
}

// NewStripeRefunds creates a refund gateway for the given secret key
func NewStripeRefunds(apiKey string) (*StripeRefunds, error) {
	if apiKey == "" {
		return nil, errors.New("stripe API key is required")
	}
	client := stripe.NewClient(apiKey, nil)
	return newStripeRefunds(client.V1Refunds.Create), nil
}

func newStripeRefunds(create createRefundFunc) *StripeRefunds {
	return &StripeRefunds{
		create: create,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
		logger: logger.L().With(zap.String("provider", constants.StripeProvider)),
	}
}

// CreateRefund refunds AmountCents of the payment intent. The idempotency key
// makes repeated approvals of the same booking collapse into one refund.
func (s *StripeRefunds) CreateRefund(ctx context.Context, p interfaces.RefundGatewayParams) (*interfaces.RefundGatewayResult, error) {
	if p.PaymentIntentID == "" {
		return nil, errors.New("payment intent ID is required to create a refund")
	}
	if p.AmountCents <= 0 {
		return nil, fmt.Errorf("refund amount must be positive, got %d", p.AmountCents)
	}

	var refund *stripe.Refund
	attempt := 0
	operation := func() error {
		attempt++
		params := buildRefundParams(p)
		r, err := s.create(ctx, params)
		if err != nil {
			if !isTransient(err) {
				return backoff.Permanent(err)
			}
			s.logger.Warn("Transient Stripe refund failure",
				zap.Error(err),
				zap.String("payment_intent", p.PaymentIntentID),
				zap.Int("attempt", attempt))
			return err
		}
		refund = r
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.backoff(), maxRefundAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		s.logger.Error("Failed to create Stripe refund",
			zap.Error(err),
			zap.String("payment_intent", p.PaymentIntentID),
			zap.Int64("amount", p.AmountCents))
		return nil, fmt.Errorf("stripe refund: %w", err)
	}

	s.logger.Info("Created Stripe refund",
		zap.String("refund_id", refund.ID),
		zap.String("status", string(refund.Status)))
	return &interfaces.RefundGatewayResult{
		RefundID: refund.ID,
		Status:   string(refund.Status),
	}, nil
}

func buildRefundParams(p interfaces.RefundGatewayParams) *stripe.RefundCreateParams {
	params := &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(p.PaymentIntentID),
		Amount:        stripe.Int64(p.AmountCents),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if p.Reason != "" {
		params.AddMetadata("reason", p.Reason)
	}
	return params
}

// isTransient reports whether the provider failure is worth retrying
func isTransient(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	switch {
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests:
		return true
	case stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

var _ interfaces.RefundGateway = (*StripeRefunds)(nil)

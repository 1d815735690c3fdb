package payments

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func init() {
	logger.InitLogger("test")
}

func newTestRefunds(create createRefundFunc) *StripeRefunds {
	s := newStripeRefunds(create)
	s.backoff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return s
}

func TestStripeRefunds_CreateRefund(t *testing.T) {
	params := interfaces.RefundGatewayParams{
		PaymentIntentID: "pi_123",
		AmountCents:     2500,
		Reason:          "cannot attend",
		IdempotencyKey:  "booking-refund-abc",
		Metadata:        map[string]string{"booking_id": "abc"},
	}

	t.Run("sends params and maps result", func(t *testing.T) {
		var got *stripe.RefundCreateParams
		s := newTestRefunds(func(ctx context.Context, p *stripe.RefundCreateParams) (*stripe.Refund, error) {
			got = p
			return &stripe.Refund{ID: "re_1", Status: stripe.RefundStatusSucceeded}, nil
		})

		res, err := s.CreateRefund(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "re_1", res.RefundID)
		assert.Equal(t, "succeeded", res.Status)

		require.NotNil(t, got)
		assert.Equal(t, "pi_123", *got.PaymentIntent)
		assert.Equal(t, int64(2500), *got.Amount)
		assert.Equal(t, string(stripe.RefundReasonRequestedByCustomer), *got.Reason)
		assert.Equal(t, "booking-refund-abc", *got.IdempotencyKey)
		assert.Equal(t, "abc", got.Metadata["booking_id"])
		assert.Equal(t, "cannot attend", got.Metadata["reason"])
	})

	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		s := newTestRefunds(func(ctx context.Context, p *stripe.RefundCreateParams) (*stripe.Refund, error) {
			calls++
			if calls < 3 {
				return nil, &stripe.Error{HTTPStatusCode: http.StatusServiceUnavailable}
			}
			return &stripe.Refund{ID: "re_2", Status: stripe.RefundStatusPending}, nil
		})

		res, err := s.CreateRefund(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, "pending", res.Status)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		s := newTestRefunds(func(ctx context.Context, p *stripe.RefundCreateParams) (*stripe.Refund, error) {
			calls++
			return nil, &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests}
		})

		_, err := s.CreateRefund(context.Background(), params)
		require.Error(t, err)
		assert.Equal(t, maxRefundAttempts, calls)
	})

	t.Run("card errors are not retried", func(t *testing.T) {
		calls := 0
		s := newTestRefunds(func(ctx context.Context, p *stripe.RefundCreateParams) (*stripe.Refund, error) {
			calls++
			return nil, &stripe.Error{HTTPStatusCode: http.StatusBadRequest, Msg: "charge already refunded"}
		})

		_, err := s.CreateRefund(context.Background(), params)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		var stripeErr *stripe.Error
		assert.True(t, errors.As(err, &stripeErr))
	})

	t.Run("rejects incomplete params", func(t *testing.T) {
		s := newTestRefunds(func(ctx context.Context, p *stripe.RefundCreateParams) (*stripe.Refund, error) {
			t.Fatal("provider must not be called")
			return nil, nil
		})

		_, err := s.CreateRefund(context.Background(), interfaces.RefundGatewayParams{AmountCents: 100})
		assert.Error(t, err)
		_, err = s.CreateRefund(context.Background(), interfaces.RefundGatewayParams{PaymentIntentID: "pi_1"})
		assert.Error(t, err)
	})
}

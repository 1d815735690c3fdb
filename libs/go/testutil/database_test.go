package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, tdb *TestDB) db.Booking {
	t.Helper()
	ctx := context.Background()
	organizerID, userID := uuid.New(), uuid.New()
	_, err := tdb.Pool().Exec(ctx,
		"INSERT INTO profiles (id, email, role) VALUES ($1, 'td@example.com', 'organizer'), ($2, 'player@example.com', 'user')",
		organizerID, userID)
	require.NoError(t, err)

	event, err := tdb.Queries().CreateEvent(ctx, db.CreateEventParams{
		OrganizerID: organizerID,
		Title:       "Club Championship",
		Slug:        "club-championship-" + organizerID.String()[:8],
		StartDate:   pgtype.Timestamptz{Time: time.Now().Add(72 * time.Hour), Valid: true},
		Status:      constants.EventStatusPublished,
		Settings:    []byte(`{"refund_timeline":[]}`),
	})
	require.NoError(t, err)

	var bookingID uuid.UUID
	err = tdb.Pool().QueryRow(ctx,
		"INSERT INTO bookings (event_id, user_id, status, total_amount) VALUES ($1, $2, 'confirmed', 10000) RETURNING id",
		event.ID, userID).Scan(&bookingID)
	require.NoError(t, err)

	booking, err := tdb.Queries().GetBooking(ctx, bookingID)
	require.NoError(t, err)
	return booking
}

func TestTestDB_PoolTxRunnerCommits(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	tdb := NewTestDB(t)
	tdb.SetupSchema()
	booking := seedBooking(t, tdb)

	ctx := context.Background()
	runner := helpers.NewPoolTxRunner(tdb.Pool())
	err := runner.RunInTx(ctx, func(q db.Querier) error {
		locked, err := q.GetBookingForUpdate(ctx, booking.ID)
		if err != nil {
			return err
		}
		_, err = q.MarkBookingRefundRequested(ctx, db.MarkBookingRefundRequestedParams{
			ID:           locked.ID,
			RefundAmount: helpers.Int64ToNullableInt8(locked.TotalAmount),
			RefundReason: helpers.StringToNullableText("cannot attend"),
		})
		return err
	})
	require.NoError(t, err)

	got, err := tdb.Queries().GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RefundStatusRequested, got.RefundStatus)
	assert.Equal(t, int64(10000), got.RefundAmount.Int64)
	assert.True(t, got.RefundRequestedAt.Valid)
}

func TestTestDB_PoolTxRunnerRollsBack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	tdb := NewTestDB(t)
	tdb.SetupSchema()
	booking := seedBooking(t, tdb)

	ctx := context.Background()
	boom := errors.New("boom")
	err := helpers.NewPoolTxRunner(tdb.Pool()).RunInTx(ctx, func(q db.Querier) error {
		if _, err := q.MarkBookingRefundRequested(ctx, db.MarkBookingRefundRequestedParams{ID: booking.ID}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := tdb.Queries().GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RefundStatusNone, got.RefundStatus)
}

func TestTestDB_Truncate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	tdb := NewTestDB(t)
	tdb.SetupSchema()
	seedBooking(t, tdb)

	tdb.Truncate("bookings")

	var count int
	require.NoError(t, tdb.Pool().QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings").Scan(&count))
	assert.Zero(t, count)
}

func TestFakeTxRunner(t *testing.T) {
	m := NewMockDatabase(t)

	called := false
	err := m.Tx.RunInTx(context.Background(), func(q db.Querier) error {
		called = true
		assert.Same(t, m.Querier, q)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	m.Tx.Err = errors.New("begin failed")
	err = m.Tx.RunInTx(context.Background(), func(db.Querier) error {
		t.Fatal("work must not run when the transaction cannot start")
		return nil
	})
	assert.EqualError(t, err, "begin failed")
	assert.Equal(t, 2, m.Tx.Calls)
}

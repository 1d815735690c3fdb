package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseEmailContextInput(t *testing.T) {
	eventID := uuid.New()
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{name: "bare event id", input: " " + eventID.String() + " ", wantKey: services.ContextKeyEvent, wantValue: eventID.String()},
		{name: "key and value", input: "Section: abc", wantKey: services.ContextKeySection, wantValue: "abc"},
		{name: "value keeps later colons", input: "booking_status:" + eventID.String() + ":confirmed", wantKey: services.ContextKeyBookingStatus, wantValue: eventID.String() + ":confirmed"},
		{name: "empty mailing list value", input: "mailing_list:", wantKey: services.ContextKeyMailingList, wantValue: ""},
		{name: "empty", input: "   ", wantErr: true},
		{name: "no separator", input: "everyone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := services.ParseEmailContextInput(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestEmailContextService_Resolve(t *testing.T) {
	ctx := context.Background()
	organizer := organizerSession()
	start := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	event := testutil.CreateTestEvent(organizer.UserID, start)

	t.Run("event participants are deduplicated", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().ListContactableParticipants(ctx, db.ListContactableParticipantsParams{EventID: event.ID}).
			Return([]db.Participant{
				testutil.CreateTestParticipant(event.ID, nil, "Hikaru", "Nakamura", "hikaru@example.com"),
				testutil.CreateTestParticipant(event.ID, nil, "H", "N", " HIKARU@example.com"),
				testutil.CreateTestParticipant(event.ID, nil, "Judit", "Polgar", ""),
				testutil.CreateTestParticipant(event.ID, nil, "Fabiano", "Caruana", "fabi@example.com"),
			}, nil)

		svc := services.NewEmailContextService(m.Querier)
		ec, recipients, err := svc.Resolve(ctx, organizer, " Event ", event.ID.String())
		require.NoError(t, err)

		assert.Equal(t, services.ContextKeyEvent, ec.Key)
		assert.Equal(t, event.ID.String(), ec.EventID)
		assert.Equal(t, "Spring Rapid Open", ec.EventTitle)
		require.NotNil(t, ec.EventDate)
		assert.True(t, start.Equal(*ec.EventDate))
		assert.Equal(t, "Participants of Spring Rapid Open", ec.Label)
		assert.Equal(t, []business.EmailRecipient{
			{Email: "hikaru@example.com", FirstName: "Hikaru", LastName: "Nakamura"},
			{Email: "fabi@example.com", FirstName: "Fabiano", LastName: "Caruana"},
		}, recipients)
	})

	t.Run("section resolves through its event", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		section := testutil.CreateTestSection(event.ID, "U1400", 0)
		m.Querier.EXPECT().GetEventSection(ctx, section.ID).Return(section, nil)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().ListContactableParticipants(ctx, db.ListContactableParticipantsParams{
			EventID:   event.ID,
			SectionID: pgtype.UUID{Bytes: section.ID, Valid: true},
		}).Return(nil, nil)

		svc := services.NewEmailContextService(m.Querier)
		ec, recipients, err := svc.Resolve(ctx, organizer, services.ContextKeySection, section.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Section U1400 of Spring Rapid Open", ec.Label)
		assert.Empty(t, recipients)
	})

	t.Run("missing section", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		id := uuid.New()
		m.Querier.EXPECT().GetEventSection(ctx, id).Return(db.EventSection{}, pgx.ErrNoRows)

		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, organizer, services.ContextKeySection, id.String())
		assert.ErrorIs(t, err, services.ErrSectionNotFound)
	})

	t.Run("booking status splits full names", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().ListBookerContactsByStatus(ctx, db.ListBookerContactsByStatusParams{
			EventID: event.ID,
			Status:  constants.BookingStatusConfirmed,
		}).Return([]db.ListBookerContactsByStatusRow{
			{UserID: uuid.New(), Email: "anna@example.com", FullName: pgtype.Text{String: "Anna Maria Muzychuk", Valid: true}},
			{UserID: uuid.New(), Email: "solo@example.com"},
		}, nil)

		svc := services.NewEmailContextService(m.Querier)
		ec, recipients, err := svc.Resolve(ctx, organizer, services.ContextKeyBookingStatus, event.ID.String()+":Confirmed")
		require.NoError(t, err)
		assert.Equal(t, "confirmed bookings of Spring Rapid Open", ec.Label)
		assert.Equal(t, []business.EmailRecipient{
			{Email: "anna@example.com", FirstName: "Anna", LastName: "Maria Muzychuk"},
			{Email: "solo@example.com"},
		}, recipients)
	})

	t.Run("booking status rejects unknown status", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, organizer, services.ContextKeyBookingStatus, event.ID.String()+":waitlisted")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("mailing list defaults to the caller", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.Querier.EXPECT().ListSubscribedMailingList(ctx, organizer.UserID).Return([]db.MailingList{
			{ID: uuid.New(), OrganizerID: organizer.UserID, Email: "fan@example.com", Name: pgtype.Text{String: "Chess Fan", Valid: true}, Subscribed: true},
		}, nil)

		svc := services.NewEmailContextService(m.Querier)
		_, recipients, err := svc.Resolve(ctx, organizer, services.ContextKeyMailingList, "")
		require.NoError(t, err)
		assert.Equal(t, []business.EmailRecipient{{Email: "fan@example.com", FirstName: "Chess", LastName: "Fan"}}, recipients)
	})

	t.Run("another organizer's mailing list is forbidden", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, organizer, services.ContextKeyMailingList, uuid.New().String())
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("admins may read any mailing list", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		other := uuid.New()
		m.Querier.EXPECT().ListSubscribedMailingList(ctx, other).Return(nil, nil)

		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, adminSession(), services.ContextKeyMailingList, other.String())
		require.NoError(t, err)
	})

	t.Run("refund requested", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().ListRefundRequestedBookers(ctx, event.ID).Return([]db.ListRefundRequestedBookersRow{
			{UserID: uuid.New(), Email: "refund@example.com", FullName: pgtype.Text{String: "Ian Nepo", Valid: true}},
		}, nil)

		svc := services.NewEmailContextService(m.Querier)
		ec, recipients, err := svc.Resolve(ctx, organizer, services.ContextKeyRefundRequested, event.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Pending refund requests of Spring Rapid Open", ec.Label)
		assert.Len(t, recipients, 1)
	})

	t.Run("other organizer's event is forbidden", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, organizerSession(), services.ContextKeyEvent, event.ID.String())
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("bad input", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.Querier.EXPECT().GetEvent(gomock.Any(), gomock.Any()).Times(0)

		svc := services.NewEmailContextService(m.Querier)
		_, _, err := svc.Resolve(ctx, organizer, "everyone", "")
		assert.ErrorIs(t, err, services.ErrValidation)
		_, _, err = svc.Resolve(ctx, organizer, services.ContextKeyEvent, "not-a-uuid")
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

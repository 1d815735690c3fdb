package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	Tx      *FakeTxRunner
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing. Work run
// through Tx goes to the same Querier.
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	querier := mocks.NewMockQuerier(ctrl)
	return &MockDatabase{
		ctrl:    ctrl,
		Querier: querier,
		Tx:      &FakeTxRunner{Querier: querier},
		t:       t,
	}
}

// Controller exposes the gomock controller for other mocks in the same test
func (m *MockDatabase) Controller() *gomock.Controller {
	return m.ctrl
}

// FakeTxRunner runs transactional work directly against Querier and counts
// calls. Err, when set, is returned without running the work.
type FakeTxRunner struct {
	Querier db.Querier
	Err     error
	Calls   int
}

func (f *FakeTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	f.Calls++
	if f.Err != nil {
		return f.Err
	}
	return fn(f.Querier)
}

// ExpectEventExists sets up expectation for an event lookup
func (m *MockDatabase) ExpectEventExists(event *db.Event, id uuid.UUID) {
	if event != nil {
		m.Querier.EXPECT().
			GetEvent(gomock.Any(), id).
			Return(*event, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetEvent(gomock.Any(), id).
			Return(db.Event{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectBookingExists sets up expectation for a booking lookup
func (m *MockDatabase) ExpectBookingExists(booking *db.Booking, id uuid.UUID) {
	if booking != nil {
		m.Querier.EXPECT().
			GetBooking(gomock.Any(), id).
			Return(*booking, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetBooking(gomock.Any(), id).
			Return(db.Booking{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectBookingLocked sets up expectation for a SELECT ... FOR UPDATE of a booking
func (m *MockDatabase) ExpectBookingLocked(booking db.Booking) {
	m.Querier.EXPECT().
		GetBookingForUpdate(gomock.Any(), booking.ID).
		Return(booking, nil).
		Times(1)
}

// ExpectProfile sets up expectation for a profile lookup
func (m *MockDatabase) ExpectProfile(profile db.Profile) {
	m.Querier.EXPECT().
		GetProfile(gomock.Any(), profile.ID).
		Return(profile, nil).
		AnyTimes()
}

// ExpectDiscountRules sets up expectation for loading both rule sets of a discount
func (m *MockDatabase) ExpectDiscountRules(discountID uuid.UUID, participant []db.ParticipantDiscountRule, seat []db.SeatDiscountRule) {
	m.Querier.EXPECT().
		ListParticipantDiscountRules(gomock.Any(), discountID).
		Return(participant, nil).
		Times(1)
	m.Querier.EXPECT().
		ListSeatDiscountRules(gomock.Any(), discountID).
		Return(seat, nil).
		Times(1)
}

// CreateTestEvent creates an event owned by organizerID with the given refund policy
func CreateTestEvent(organizerID uuid.UUID, start time.Time, timeline ...business.RefundTimelineEntry) db.Event {
	settings, _ := json.Marshal(business.EventSettings{RefundTimeline: timeline})
	return db.Event{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		Title:       "Spring Rapid Open",
		Slug:        "spring-rapid-open",
		StartDate:   pgtype.Timestamptz{Time: start, Valid: true},
		Status:      constants.EventStatusPublished,
		Settings:    settings,
		CreatedAt:   pgtype.Timestamptz{Time: start.AddDate(0, -1, 0), Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: start.AddDate(0, -1, 0), Valid: true},
	}
}

// CreateTestBooking creates a confirmed booking with no refund activity
func CreateTestBooking(eventID, userID uuid.UUID, totalCents int64) db.Booking {
	return db.Booking{
		ID:           uuid.New(),
		EventID:      eventID,
		UserID:       userID,
		Status:       constants.BookingStatusConfirmed,
		TotalAmount:  totalCents,
		Currency:     constants.USDCurrency,
		Quantity:     1,
		RefundStatus: constants.RefundStatusNone,
		BookingDate:  pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), Valid: true},
		CreatedAt:    pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), Valid: true},
	}
}

// CreateTestSection creates a section of eventID; a zero capacity means unlimited
func CreateTestSection(eventID uuid.UUID, name string, capacity int32) db.EventSection {
	return db.EventSection{
		ID:              uuid.New(),
		EventID:         eventID,
		Name:            name,
		MaxParticipants: pgtype.Int4{Int32: capacity, Valid: capacity > 0},
	}
}

// CreateTestParticipant creates a confirmed participant of eventID
func CreateTestParticipant(eventID uuid.UUID, sectionID *uuid.UUID, first, last, email string) db.Participant {
	p := db.Participant{
		ID:        uuid.New(),
		BookingID: uuid.New(),
		EventID:   eventID,
		FirstName: first,
		LastName:  last,
		Email:     pgtype.Text{String: email, Valid: email != ""},
		Status:    constants.ParticipantStatusConfirmed,
		CreatedAt: pgtype.Timestamptz{Time: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true},
	}
	if sectionID != nil {
		p.SectionID = pgtype.UUID{Bytes: *sectionID, Valid: true}
	}
	return p
}

// CreateTestDiscount creates an active discount with no usage limit or validity window
func CreateTestDiscount(eventID uuid.UUID, discountType, valueType string, value int64) db.EventDiscount {
	return db.EventDiscount{
		ID:           uuid.New(),
		EventID:      eventID,
		DiscountType: discountType,
		ValueType:    valueType,
		Value:        value,
		IsActive:     true,
		CreatedAt:    pgtype.Timestamptz{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

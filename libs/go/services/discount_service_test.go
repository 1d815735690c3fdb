package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestDiscountService_ApplyDiscount_Code(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	percent := testutil.CreateTestDiscount(eventID, constants.DiscountTypeCode, constants.ValueTypePercentage, 15)
	percent.Code = pgtype.Text{String: "KNIGHT15", Valid: true}

	expired := testutil.CreateTestDiscount(eventID, constants.DiscountTypeCode, constants.ValueTypeFixed, 500)
	expired.ValidTo = pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}

	usedUp := testutil.CreateTestDiscount(eventID, constants.DiscountTypeCode, constants.ValueTypeFixed, 500)
	usedUp.MaxUses = pgtype.Int4{Int32: 10, Valid: true}
	usedUp.UsedCount = 10

	bigFixed := testutil.CreateTestDiscount(eventID, constants.DiscountTypeCode, constants.ValueTypeFixed, 99999)

	tests := []struct {
		name       string
		code       string
		discount   *db.EventDiscount
		lookupErr  error
		wantValid  bool
		wantAmount int64
		wantReason string
		wantErr    bool
	}{
		{name: "percentage code", code: " KNIGHT15 ", discount: &percent, wantValid: true, wantAmount: 1500},
		{name: "unknown code", code: "NOPE", lookupErr: pgx.ErrNoRows, wantReason: services.DiscountReasonCodeNotFound},
		{name: "expired code", code: "OLD", discount: &expired, wantReason: services.DiscountReasonExpired},
		{name: "usage limit reached", code: "GONE", discount: &usedUp, wantReason: services.DiscountReasonUsageLimit},
		{name: "fixed capped at total", code: "ALL", discount: &bigFixed, wantValid: true, wantAmount: 10000},
		{name: "lookup failure", code: "ERR", lookupErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.NewMockDatabase(t)
			var found db.EventDiscount
			if tt.discount != nil {
				found = *tt.discount
			}
			m.Querier.EXPECT().
				GetEventDiscountByCode(ctx, db.GetEventDiscountByCodeParams{EventID: eventID, Code: strings.TrimSpace(tt.code)}).
				Return(found, tt.lookupErr)

			svc := services.NewDiscountService(m.Querier, m.Tx, nil)
			result, err := svc.ApplyDiscount(ctx, params.DiscountApplicationParams{
				EventID:      eventID,
				DiscountCode: tt.code,
				Quantity:     2,
				AmountCents:  10000,
				Now:          now,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantAmount, result.DiscountAmountCents)
			assert.Equal(t, int64(10000)-tt.wantAmount, result.FinalAmountCents)
			assert.Equal(t, int64(10000), result.OriginalAmountCents)
			assert.Equal(t, business.ApplicationMethodCode, result.ApplicationDetails.ApplicationMethod)
			if tt.wantReason != "" {
				require.NotNil(t, result.ReasonForInvalidity)
				assert.Equal(t, tt.wantReason, *result.ReasonForInvalidity)
			} else {
				assert.Nil(t, result.ReasonForInvalidity)
			}
		})
	}
}

func TestDiscountService_ApplyDiscount_AutomaticPicksLargest(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	m := testutil.NewMockDatabase(t)

	seat := testutil.CreateTestDiscount(eventID, constants.DiscountTypeSeatBased, constants.ValueTypeFixed, 0)
	small := seatRule(2, int32Ptr(4), 1000)
	large := seatRule(5, nil, 2000)

	member := testutil.CreateTestDiscount(eventID, constants.DiscountTypeParticipantBased, constants.ValueTypePercentage, 10)
	inactive := testutil.CreateTestDiscount(eventID, constants.DiscountTypeCode, constants.ValueTypeFixed, 5000)
	inactive.IsActive = false

	m.Querier.EXPECT().ListAutomaticEventDiscounts(ctx, eventID).Return([]db.EventDiscount{member, seat, inactive}, nil)
	m.Querier.EXPECT().ListParticipantDiscountRules(ctx, member.ID).Return([]db.ParticipantDiscountRule{
		customRule("club", "", "Marshall"),
	}, nil)
	m.Querier.EXPECT().ListSeatDiscountRules(ctx, seat.ID).Return([]db.SeatDiscountRule{small, large}, nil)

	svc := services.NewDiscountService(m.Querier, m.Tx, nil)
	result, err := svc.ApplyDiscount(ctx, params.DiscountApplicationParams{
		EventID:     eventID,
		Quantity:    6,
		AmountCents: 12000,
		Participant: &business.ParticipantCandidate{
			FirstName:  "Fabiano",
			CustomData: business.CustomData{"club": business.ScalarValue("marshall")},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	require.NotNil(t, result.DiscountID)
	assert.Equal(t, seat.ID, *result.DiscountID)
	assert.Equal(t, int64(2000), result.DiscountAmountCents)
	assert.Equal(t, int64(10000), result.FinalAmountCents)
	require.NotNil(t, result.ApplicationDetails.MatchedSeatRuleID)
	assert.Equal(t, large.ID, *result.ApplicationDetails.MatchedSeatRuleID)
	assert.Equal(t, business.ApplicationMethodAutomatic, result.ApplicationDetails.ApplicationMethod)
}

func TestDiscountService_ApplyDiscount_NoneApplicable(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	m := testutil.NewMockDatabase(t)

	member := testutil.CreateTestDiscount(eventID, constants.DiscountTypeParticipantBased, constants.ValueTypeFixed, 500)
	m.Querier.EXPECT().ListAutomaticEventDiscounts(ctx, eventID).Return([]db.EventDiscount{member}, nil)

	svc := services.NewDiscountService(m.Querier, m.Tx, nil)
	result, err := svc.ApplyDiscount(ctx, params.DiscountApplicationParams{EventID: eventID, Quantity: 1, AmountCents: 3000})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	require.NotNil(t, result.ReasonForInvalidity)
	assert.Equal(t, services.DiscountReasonNoneApplicable, *result.ReasonForInvalidity)
	assert.Equal(t, int64(3000), result.FinalAmountCents)
}

func TestDiscountService_ApplyDiscount_Validation(t *testing.T) {
	m := testutil.NewMockDatabase(t)
	svc := services.NewDiscountService(m.Querier, m.Tx, nil)

	_, err := svc.ApplyDiscount(context.Background(), params.DiscountApplicationParams{EventID: uuid.New(), Quantity: 0, AmountCents: 100})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.ApplyDiscount(context.Background(), params.DiscountApplicationParams{EventID: uuid.New(), Quantity: 1, AmountCents: -1})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestDiscountService_ListDiscounts(t *testing.T) {
	ctx := context.Background()
	organizer := organizerSession()
	event := testutil.CreateTestEvent(organizer.UserID, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	t.Run("each discount carries its rules", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		seat := testutil.CreateTestDiscount(event.ID, constants.DiscountTypeSeatBased, constants.ValueTypeFixed, 0)
		member := testutil.CreateTestDiscount(event.ID, constants.DiscountTypeParticipantBased, constants.ValueTypePercentage, 10)
		m.Querier.EXPECT().ListEventDiscounts(ctx, event.ID).Return([]db.EventDiscount{seat, member}, nil)
		m.ExpectDiscountRules(seat.ID, nil, []db.SeatDiscountRule{seatRule(2, nil, 500)})
		m.ExpectDiscountRules(member.ID, []db.ParticipantDiscountRule{customRule("club", "", "Marshall")}, nil)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		discounts, err := svc.ListDiscounts(ctx, organizer, event.ID)
		require.NoError(t, err)
		require.Len(t, discounts, 2)
		assert.Equal(t, seat.ID, discounts[0].Discount.ID)
		assert.Len(t, discounts[0].SeatRules, 1)
		assert.Empty(t, discounts[0].ParticipantRules)
		assert.Equal(t, member.ID, discounts[1].Discount.ID)
		assert.Len(t, discounts[1].ParticipantRules, 1)
	})

	t.Run("another organizer's event is forbidden", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.ListDiscounts(ctx, organizerSession(), event.ID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestDiscountService_SaveDiscount(t *testing.T) {
	ctx := context.Background()
	organizer := organizerSession()
	event := testutil.CreateTestEvent(organizer.UserID, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	t.Run("creates discount with seat rules in one transaction", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		created := testutil.CreateTestDiscount(event.ID, constants.DiscountTypeSeatBased, constants.ValueTypeFixed, 0)
		m.Querier.EXPECT().CreateEventDiscount(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateEventDiscountParams) (db.EventDiscount, error) {
				assert.Equal(t, event.ID, arg.EventID)
				assert.Equal(t, constants.ValueTypeFixed, arg.ValueType)
				assert.False(t, arg.Code.Valid)
				return created, nil
			})
		m.Querier.EXPECT().CreateSeatDiscountRule(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateSeatDiscountRuleParams) (db.SeatDiscountRule, error) {
				return db.SeatDiscountRule{ID: uuid.New(), DiscountID: arg.DiscountID, MinSeats: arg.MinSeats, MaxSeats: arg.MaxSeats, DiscountAmount: arg.DiscountAmount}, nil
			}).Times(2)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		saved, err := svc.SaveDiscount(ctx, organizer, params.SaveDiscountParams{
			EventID:      event.ID,
			DiscountType: constants.DiscountTypeSeatBased,
			IsActive:     true,
			SeatRules: []params.SeatRuleParams{
				{MinSeats: 2, MaxSeats: int32Ptr(4), DiscountAmount: 1000},
				{MinSeats: 5, DiscountAmount: 2000},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, saved.Discount.ID)
		assert.Len(t, saved.SeatRules, 2)
		assert.Empty(t, saved.ParticipantRules)
		assert.Equal(t, 1, m.Tx.Calls)
	})

	t.Run("update replaces rules", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		existing := testutil.CreateTestDiscount(event.ID, constants.DiscountTypeCode, constants.ValueTypePercentage, 20)
		gomock.InOrder(
			m.Querier.EXPECT().UpdateEventDiscount(ctx, gomock.Any()).Return(existing, nil),
			m.Querier.EXPECT().DeleteParticipantDiscountRules(ctx, existing.ID).Return(nil),
			m.Querier.EXPECT().DeleteSeatDiscountRules(ctx, existing.ID).Return(nil),
		)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		saved, err := svc.SaveDiscount(ctx, organizer, params.SaveDiscountParams{
			EventID:      event.ID,
			DiscountID:   &existing.ID,
			Code:         strPtr("ROOK20"),
			DiscountType: constants.DiscountTypeCode,
			ValueType:    constants.ValueTypePercentage,
			Value:        20,
			IsActive:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, saved.Discount.ID)
	})

	t.Run("update of missing discount", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().UpdateEventDiscount(ctx, gomock.Any()).Return(db.EventDiscount{}, pgx.ErrNoRows)

		id := uuid.New()
		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizer, params.SaveDiscountParams{
			EventID:      event.ID,
			DiscountID:   &id,
			Code:         strPtr("X"),
			DiscountType: constants.DiscountTypeCode,
		})
		assert.ErrorIs(t, err, services.ErrDiscountNotFound)
	})

	t.Run("other organizer is forbidden", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizerSession(), params.SaveDiscountParams{
			EventID:      event.ID,
			Code:         strPtr("X"),
			DiscountType: constants.DiscountTypeCode,
		})
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Zero(t, m.Tx.Calls)
	})

	participantRuleParams := func(related uuid.UUID) params.SaveDiscountParams {
		return params.SaveDiscountParams{
			EventID:      event.ID,
			DiscountType: constants.DiscountTypeParticipantBased,
			ValueType:    constants.ValueTypePercentage,
			Value:        10,
			IsActive:     true,
			ParticipantRules: []params.ParticipantRuleParams{
				{RelatedEventID: &related, FieldName: "first_name,last_name", FieldValue: "confirmed"},
				{RelatedEventID: &related, FieldName: "email", FieldValue: "any"},
			},
		}
	}

	t.Run("related event of another organizer is forbidden", func(t *testing.T) {
		foreign := testutil.CreateTestEvent(uuid.New(), time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC))
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.ExpectEventExists(&foreign, foreign.ID)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizer, participantRuleParams(foreign.ID))
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("unknown related event", func(t *testing.T) {
		missing := uuid.New()
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.ExpectEventExists(nil, missing)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizer, participantRuleParams(missing))
		assert.ErrorIs(t, err, services.ErrEventNotFound)
	})

	t.Run("own related event is looked up once", func(t *testing.T) {
		previous := testutil.CreateTestEvent(organizer.UserID, time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC))
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.ExpectEventExists(&previous, previous.ID)

		created := testutil.CreateTestDiscount(event.ID, constants.DiscountTypeParticipantBased, constants.ValueTypePercentage, 10)
		m.Querier.EXPECT().CreateEventDiscount(ctx, gomock.Any()).Return(created, nil)
		m.Querier.EXPECT().CreateParticipantDiscountRule(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateParticipantDiscountRuleParams) (db.ParticipantDiscountRule, error) {
				assert.Equal(t, previous.ID, uuid.UUID(arg.RelatedEventID.Bytes))
				return db.ParticipantDiscountRule{ID: uuid.New(), DiscountID: arg.DiscountID, RelatedEventID: arg.RelatedEventID, FieldName: arg.FieldName, FieldValue: arg.FieldValue}, nil
			}).Times(2)

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		saved, err := svc.SaveDiscount(ctx, organizer, participantRuleParams(previous.ID))
		require.NoError(t, err)
		assert.Len(t, saved.ParticipantRules, 2)
	})

	t.Run("code already used by the event", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		m.ExpectEventExists(&event, event.ID)
		m.Querier.EXPECT().CreateEventDiscount(ctx, gomock.Any()).
			Return(db.EventDiscount{}, &pgconn.PgError{Code: "23505", ConstraintName: "idx_event_discounts_code"})

		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizer, params.SaveDiscountParams{
			EventID:      event.ID,
			Code:         strPtr("rook20"),
			DiscountType: constants.DiscountTypeCode,
			ValueType:    constants.ValueTypePercentage,
			Value:        20,
			IsActive:     true,
		})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), `"rook20" is already used`)
	})

	t.Run("invalid input touches nothing", func(t *testing.T) {
		m := testutil.NewMockDatabase(t)
		svc := services.NewDiscountService(m.Querier, m.Tx, nil)
		_, err := svc.SaveDiscount(ctx, organizer, params.SaveDiscountParams{
			EventID:      event.ID,
			DiscountType: constants.DiscountTypeSeatBased,
		})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestValidateDiscount(t *testing.T) {
	relatedID := uuid.New()
	tests := []struct {
		name    string
		params  params.SaveDiscountParams
		wantErr string
	}{
		{
			name:   "valid code discount",
			params: params.SaveDiscountParams{DiscountType: constants.DiscountTypeCode, Code: strPtr("PAWN"), ValueType: constants.ValueTypeFixed, Value: 500},
		},
		{
			name:    "unknown type",
			params:  params.SaveDiscountParams{DiscountType: "loyalty"},
			wantErr: `unknown discount_type "loyalty"`,
		},
		{
			name:    "percentage over 100",
			params:  params.SaveDiscountParams{DiscountType: constants.DiscountTypeCode, Code: strPtr("A"), ValueType: constants.ValueTypePercentage, Value: 150},
			wantErr: "percentage value must be at most 100",
		},
		{
			name:    "code discount without code",
			params:  params.SaveDiscountParams{DiscountType: constants.DiscountTypeCode, Code: strPtr("  ")},
			wantErr: "code discounts need a code",
		},
		{
			name: "inverted seat band",
			params: params.SaveDiscountParams{
				DiscountType: constants.DiscountTypeSeatBased,
				SeatRules:    []params.SeatRuleParams{{MinSeats: 5, MaxSeats: int32Ptr(3)}},
			},
			wantErr: "seat_rules[0]: max_seats must not be below min_seats",
		},
		{
			name: "related rule with bad field",
			params: params.SaveDiscountParams{
				DiscountType:     constants.DiscountTypeParticipantBased,
				ParticipantRules: []params.ParticipantRuleParams{{RelatedEventID: &relatedID, FieldName: "rating"}},
			},
			wantErr: "participant_rules[0]",
		},
		{
			name: "related rule with bad participation",
			params: params.SaveDiscountParams{
				DiscountType:     constants.DiscountTypeParticipantBased,
				ParticipantRules: []params.ParticipantRuleParams{{RelatedEventID: &relatedID, FieldName: "email", FieldValue: "attended"}},
			},
			wantErr: "field_value must be any, confirmed or verified",
		},
		{
			name: "custom rule with bad operator",
			params: params.SaveDiscountParams{
				DiscountType:     constants.DiscountTypeParticipantBased,
				ParticipantRules: []params.ParticipantRuleParams{{FieldName: "club", Operator: strPtr("like"), FieldValue: "x"}},
			},
			wantErr: `unknown operator "like"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateDiscount(tt.params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDiscountValueAmount(t *testing.T) {
	pct := db.EventDiscount{ValueType: constants.ValueTypePercentage, Value: 250}
	assert.Equal(t, int64(4000), services.DiscountValueAmount(pct, 4000), "percentage capped at 100")

	fixed := db.EventDiscount{ValueType: constants.ValueTypeFixed, Value: 750}
	assert.Equal(t, int64(750), services.DiscountValueAmount(fixed, 4000))
	assert.Zero(t, services.DiscountValueAmount(fixed, 0))
}

package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/requests"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscountHandler_EvaluateDiscount(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	discounts := mocks.NewMockDiscountService(ctrl)
	discounts.EXPECT().
		ApplyDiscount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p params.DiscountApplicationParams) (*responses.DiscountApplicationResult, error) {
			assert.Equal(t, testEventID, p.EventID)
			assert.Equal(t, "EARLY", p.DiscountCode)
			assert.Equal(t, int32(4), p.Quantity)
			assert.Equal(t, int64(20000), p.AmountCents)
			assert.True(t, now.Equal(p.Now))
			require.NotNil(t, p.Participant)
			assert.Equal(t, "Judit", p.Participant.FirstName)
			return &responses.DiscountApplicationResult{
				DiscountCode:        "EARLY",
				OriginalAmountCents: 20000,
				DiscountAmountCents: 2000,
				FinalAmountCents:    18000,
				DiscountPercentage:  10,
				IsValid:             true,
				ApplicationDetails: business.DiscountDetails{
					AppliedAt:         now,
					ApplicationMethod: business.ApplicationMethodCode,
					DiscountType:      constants.DiscountTypeCode,
				},
			}, nil
		})

	h := NewDiscountHandler(discounts)
	h.now = func() time.Time { return now }
	r := newTestRouter(attendeeSession())
	r.POST("/events/:event_id/discounts/evaluate", h.EvaluateDiscount)

	w := performRequest(t, r, http.MethodPost, "/events/"+testEventID.String()+"/discounts/evaluate", map[string]interface{}{
		"code":        " EARLY ",
		"quantity":    4,
		"total_cents": 20000,
		"currency":    "USD",
		"participant": map[string]string{"first_name": "Judit", "last_name": "Polgar"},
	})
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var got responses.DiscountApplicationResult
	testutil.DecodeJSON(t, w, &got)
	assert.True(t, got.IsValid)
	assert.Equal(t, int64(18000), got.FinalAmountCents)
}

func TestDiscountHandler_EvaluateDiscount_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	discounts := mocks.NewMockDiscountService(ctrl)
	discounts.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any()).Return(nil, services.ErrDiscountNotFound)

	h := NewDiscountHandler(discounts)
	r := newTestRouter(attendeeSession())
	r.POST("/events/:event_id/discounts/evaluate", h.EvaluateDiscount)

	w := performRequest(t, r, http.MethodPost, "/events/"+testEventID.String()+"/discounts/evaluate", map[string]interface{}{
		"code":     "NOPE",
		"quantity": 1,
	})
	testutil.AssertStatusCode(t, w, http.StatusNotFound)
}

func TestDiscountHandler_CreateDiscount(t *testing.T) {
	relatedID := testSectionID.String()

	tests := []struct {
		name       string
		body       map[string]interface{}
		expectCall bool
		wantStatus int
	}{
		{
			name: "seat based with rules",
			body: map[string]interface{}{
				"discount_type": constants.DiscountTypeSeatBased,
				"seat_rules": []map[string]interface{}{
					{"min_seats": 2, "max_seats": 3, "discount_amount": 500},
					{"min_seats": 4, "discount_amount": 1200},
				},
			},
			expectCall: true,
			wantStatus: http.StatusCreated,
		},
		{
			name: "participant based with related event",
			body: map[string]interface{}{
				"discount_type": constants.DiscountTypeParticipantBased,
				"value_type":    constants.ValueTypePercentage,
				"value":         15,
				"participant_rules": []map[string]interface{}{
					{"related_event_id": relatedID, "field_name": "email"},
				},
			},
			expectCall: true,
			wantStatus: http.StatusCreated,
		},
		{
			name: "bad related event id",
			body: map[string]interface{}{
				"discount_type": constants.DiscountTypeParticipantBased,
				"participant_rules": []map[string]interface{}{
					{"related_event_id": "nope", "field_name": "email"},
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing type",
			body:       map[string]interface{}{"value": 10},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			discounts := mocks.NewMockDiscountService(ctrl)
			if tt.expectCall {
				discounts.EXPECT().
					SaveDiscount(gomock.Any(), *organizerSession(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, p params.SaveDiscountParams) (*business.DiscountWithRules, error) {
						assert.Nil(t, p.DiscountID)
						assert.True(t, p.IsActive)
						d := testutil.CreateTestDiscount(p.EventID, p.DiscountType, p.ValueType, p.Value)
						return &business.DiscountWithRules{Discount: d}, nil
					})
			}

			h := NewDiscountHandler(discounts)
			r := newTestRouter(organizerSession())
			r.POST("/organizer/events/:event_id/discounts", h.CreateDiscount)

			w := performRequest(t, r, http.MethodPost, "/organizer/events/"+testEventID.String()+"/discounts", tt.body)
			testutil.AssertStatusCode(t, w, tt.wantStatus)
		})
	}
}

func TestFillDiscountParams(t *testing.T) {
	related := testEventID.String()
	op := "equals"
	maxSeats := int32(5)
	inactive := false

	var p params.SaveDiscountParams
	err := fillDiscountParams(&p, requestsDiscount(related, op, maxSeats, inactive))
	require.NoError(t, err)

	assert.False(t, p.IsActive)
	require.Len(t, p.ParticipantRules, 2)
	require.NotNil(t, p.ParticipantRules[0].RelatedEventID)
	assert.Equal(t, testEventID, *p.ParticipantRules[0].RelatedEventID)
	assert.Nil(t, p.ParticipantRules[1].RelatedEventID)
	assert.Equal(t, &op, p.ParticipantRules[1].Operator)
	require.Len(t, p.SeatRules, 1)
	assert.Equal(t, &maxSeats, p.SeatRules[0].MaxSeats)
}

func requestsDiscount(related, op string, maxSeats int32, active bool) requests.DiscountRequest {
	return requests.DiscountRequest{
		DiscountType: constants.DiscountTypeParticipantBased,
		IsActive:     &active,
		ParticipantRules: []requests.ParticipantRuleRequest{
			{RelatedEventID: &related, FieldName: "email"},
			{FieldName: "club", Operator: &op, FieldValue: "Marshall"},
		},
		SeatRules: []requests.SeatRuleRequest{{MinSeats: 2, MaxSeats: &maxSeats, DiscountAmount: 300}},
	}
}

package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventHandler_CreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventService(ctrl)

	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	created := testutil.CreateTestEvent(testOrganizerID, start)
	events.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p params.CreateEventParams) (*db.Event, error) {
			assert.Equal(t, testOrganizerID, p.OrganizerID)
			assert.Equal(t, "Spring Rapid Open", p.Title)
			require.NotNil(t, p.StartDate)
			assert.True(t, start.Equal(*p.StartDate))
			return &created, nil
		})

	h := NewEventHandler(events)
	r := newTestRouter(organizerSession())
	r.POST("/organizer/events", h.CreateEvent)

	w := performRequest(t, r, http.MethodPost, "/organizer/events", map[string]interface{}{
		"title":      "Spring Rapid Open",
		"start_date": start.Format(time.RFC3339),
	})
	testutil.AssertStatusCode(t, w, http.StatusCreated)

	var got responses.EventResponse
	testutil.DecodeJSON(t, w, &got)
	assert.Equal(t, created.ID.String(), got.ID)
	assert.Equal(t, testOrganizerID.String(), got.OrganizerID)
}

func TestEventHandler_CreateEvent_MissingTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewEventHandler(mocks.NewMockEventService(ctrl))
	r := newTestRouter(organizerSession())
	r.POST("/organizer/events", h.CreateEvent)

	w := performRequest(t, r, http.MethodPost, "/organizer/events", map[string]string{"slug": "x"})
	testutil.AssertStatusCode(t, w, http.StatusBadRequest)
}

func TestEventHandler_GetEvent_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventService(ctrl)
	events.EXPECT().GetEvent(gomock.Any(), *organizerSession(), testEventID).Return(nil, services.ErrForbidden)

	h := NewEventHandler(events)
	r := newTestRouter(organizerSession())
	r.GET("/organizer/events/:event_id", h.GetEvent)

	w := performRequest(t, r, http.MethodGet, "/organizer/events/"+testEventID.String(), nil)
	testutil.AssertStatusCode(t, w, http.StatusForbidden)
}

func TestEventHandler_UpdateRefundTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventService(ctrl)

	allow := true
	events.EXPECT().
		UpdateRefundTimeline(gomock.Any(), *organizerSession(), testEventID, gomock.Len(2), &allow).
		DoAndReturn(func(_ interface{}, _ interface{}, _ interface{}, timeline []business.RefundTimelineEntry, allowRefunds *bool) (*business.EventSettings, error) {
			assert.Equal(t, constants.RefundTypePercentage, timeline[0].Type)
			assert.Equal(t, float64(100), timeline[0].Value)
			return &business.EventSettings{RefundTimeline: timeline, AllowRefunds: allowRefunds}, nil
		})

	h := NewEventHandler(events)
	r := newTestRouter(organizerSession())
	r.PUT("/organizer/events/:event_id/refund-timeline", h.UpdateRefundTimeline)

	w := performRequest(t, r, http.MethodPut, "/organizer/events/"+testEventID.String()+"/refund-timeline", `{
		"allow_refunds": true,
		"refund_timeline": [
			{"to_date": "2025-05-01", "type": "percentage", "value": 100},
			{"from_date": "2025-05-02", "to_date": "2025-06-01", "type": "fixed", "value": 1000}
		]
	}`)
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var got responses.RefundTimelineResponse
	testutil.DecodeJSON(t, w, &got)
	assert.Equal(t, testEventID.String(), got.EventID)
	assert.Len(t, got.RefundTimeline, 2)
	require.NotNil(t, got.AllowRefunds)
	assert.True(t, *got.AllowRefunds)
}

func TestEventHandler_GetRefundTimeline_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventService(ctrl)
	events.EXPECT().GetRefundTimeline(gomock.Any(), gomock.Any(), testEventID).Return(&business.EventSettings{}, nil)

	h := NewEventHandler(events)
	r := newTestRouter(organizerSession())
	r.GET("/organizer/events/:event_id/refund-timeline", h.GetRefundTimeline)

	w := performRequest(t, r, http.MethodGet, "/organizer/events/"+testEventID.String()+"/refund-timeline", nil)
	testutil.AssertStatusCode(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"refund_timeline":[]`)
}

func TestEventHandler_SaveSection(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantUpdate bool
	}{
		{
			name:       "create",
			method:     http.MethodPost,
			path:       "/organizer/events/" + testEventID.String() + "/sections",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "update",
			method:     http.MethodPut,
			path:       "/organizer/events/" + testEventID.String() + "/sections/" + testSectionID.String(),
			wantStatus: http.StatusOK,
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			events := mocks.NewMockEventService(ctrl)
			events.EXPECT().
				SaveSection(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, _ interface{}, p params.SectionParams) (*db.EventSection, error) {
					assert.Equal(t, testEventID, p.EventID)
					assert.Equal(t, tt.wantUpdate, p.SectionID != nil)
					assert.Equal(t, "Open", p.Name)
					require.NotNil(t, p.MinRating)
					assert.Equal(t, int32(1800), *p.MinRating)
					section := testutil.CreateTestSection(testEventID, p.Name, 40)
					return &section, nil
				})

			h := NewEventHandler(events)
			r := newTestRouter(organizerSession())
			r.POST("/organizer/events/:event_id/sections", h.CreateSection)
			r.PUT("/organizer/events/:event_id/sections/:section_id", h.UpdateSection)

			w := performRequest(t, r, tt.method, tt.path, map[string]interface{}{
				"name":             "Open",
				"max_participants": 40,
				"min_rating":       1800,
			})
			testutil.AssertStatusCode(t, w, tt.wantStatus)
		})
	}
}

func TestEventHandler_DeletePricing(t *testing.T) {
	pricingID := testSectionID

	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventService(ctrl)
	events.EXPECT().DeletePricing(gomock.Any(), gomock.Any(), testEventID, pricingID).Return(nil)

	h := NewEventHandler(events)
	r := newTestRouter(organizerSession())
	r.DELETE("/organizer/events/:event_id/pricing/:pricing_id", h.DeletePricing)

	w := performRequest(t, r, http.MethodDelete, "/organizer/events/"+testEventID.String()+"/pricing/"+pricingID.String(), nil)
	testutil.AssertStatusCode(t, w, http.StatusNoContent)
}

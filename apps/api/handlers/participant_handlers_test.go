package handlers

import (
	"net/http"
	"testing"

	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParticipantHandler_TransferParticipants(t *testing.T) {
	p1 := uuid.MustParse("51234567-89ab-cdef-0123-456789abcdef")
	p2 := uuid.MustParse("61234567-89ab-cdef-0123-456789abcdef")
	path := "/events/" + testEventID.String() + "/participants/transfer"

	tests := []struct {
		name       string
		body       interface{}
		wantMoves  []params.TransferParams
		serviceErr error
		wantStatus int
	}{
		{
			name:       "single move",
			body:       map[string]string{"participantId": p1.String(), "newSectionId": testSectionID.String()},
			wantMoves:  []params.TransferParams{{ParticipantID: p1, NewSectionID: testSectionID}},
			wantStatus: http.StatusOK,
		},
		{
			name: "batch",
			body: map[string]interface{}{"transfers": []map[string]string{
				{"participantId": p1.String(), "newSectionId": testSectionID.String()},
				{"participantId": p2.String(), "newSectionId": testSectionID.String()},
			}},
			wantMoves: []params.TransferParams{
				{ParticipantID: p1, NewSectionID: testSectionID},
				{ParticipantID: p2, NewSectionID: testSectionID},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "section full rejects whole batch",
			body:       map[string]string{"participantId": p1.String(), "newSectionId": testSectionID.String()},
			wantMoves:  []params.TransferParams{{ParticipantID: p1, NewSectionID: testSectionID}},
			serviceErr: services.ErrSectionFull,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad participant id",
			body:       map[string]string{"participantId": "x", "newSectionId": testSectionID.String()},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			participants := mocks.NewMockParticipantService(ctrl)
			if tt.wantMoves != nil {
				var moved []db.Participant
				if tt.serviceErr == nil {
					for _, m := range tt.wantMoves {
						p := testutil.CreateTestParticipant(testEventID, &m.NewSectionID, "Magnus", "C", "")
						p.ID = m.ParticipantID
						moved = append(moved, p)
					}
				}
				participants.EXPECT().
					TransferParticipants(gomock.Any(), *organizerSession(), testEventID, tt.wantMoves).
					Return(moved, tt.serviceErr)
			}

			h := NewParticipantHandler(participants)
			r := newTestRouter(organizerSession())
			r.POST("/events/:event_id/participants/transfer", h.TransferParticipants)

			w := performRequest(t, r, http.MethodPost, path, tt.body)
			testutil.AssertStatusCode(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusOK {
				var got responses.TransferResponse
				testutil.DecodeJSON(t, w, &got)
				assert.True(t, got.Success)
				assert.Equal(t, len(tt.wantMoves), got.Transferred)
			}
		})
	}
}

func TestParticipantHandler_ListParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	participants := mocks.NewMockParticipantService(ctrl)

	sectionID := testSectionID
	participants.EXPECT().
		ListParticipants(gomock.Any(), gomock.Any(), params.ListParticipantsParams{
			EventID:   testEventID,
			Search:    "carlsen",
			Status:    "confirmed",
			SectionID: &sectionID,
			Limit:     10,
			Offset:    0,
		}).
		Return([]db.Participant{testutil.CreateTestParticipant(testEventID, &sectionID, "Magnus", "Carlsen", "mc@example.com")}, int64(1), nil)

	h := NewParticipantHandler(participants)
	r := newTestRouter(organizerSession())
	r.GET("/organizer/events/:event_id/participants", h.ListParticipants)

	w := performRequest(t, r, http.MethodGet, "/organizer/events/"+testEventID.String()+"/participants?search=carlsen&status=confirmed&section_id="+sectionID.String(), nil)
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var got responses.PaginatedResponse
	testutil.DecodeJSON(t, w, &got)
	assert.False(t, got.HasMore)
	assert.Equal(t, 1, got.Pagination.TotalItems)
}

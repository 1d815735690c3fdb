package handlers

import (
	"context"
	"fmt"
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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmailHandler_SendEmail(t *testing.T) {
	campaignID := uuid.MustParse("71234567-89ab-cdef-0123-456789abcdef")

	tests := []struct {
		name       string
		body       interface{}
		setup      func(m *mocks.MockEmailCampaignService)
		wantStatus int
		want       responses.SendEmailResponse
	}{
		{
			name: "sent now",
			body: map[string]interface{}{
				"recipients":    []string{"a@example.com"},
				"subject":       "Round 1 pairings",
				"message":       "Hello {{first_name}}",
				"scheduledDate": nil,
			},
			setup: func(m *mocks.MockEmailCampaignService) {
				m.EXPECT().
					SendEmail(gomock.Any(), *organizerSession(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, p params.SendEmailParams) (*db.EmailCampaign, error) {
						assert.Nil(t, p.ScheduledDate)
						assert.Equal(t, []string{"a@example.com"}, p.Recipients)
						return &db.EmailCampaign{ID: campaignID, Status: constants.CampaignStatusSent, SentCount: 1}, nil
					})
			},
			wantStatus: http.StatusOK,
			want:       responses.SendEmailResponse{Success: true, CampaignID: campaignID.String(), Status: constants.CampaignStatusSent, Sent: 1},
		},
		{
			name: "scheduled",
			body: map[string]interface{}{
				"recipients":    []string{"a@example.com"},
				"subject":       "Reminder",
				"message":       "See you Saturday",
				"scheduledDate": "2030-01-02T15:04:05Z",
			},
			setup: func(m *mocks.MockEmailCampaignService) {
				m.EXPECT().
					SendEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ interface{}, p params.SendEmailParams) (*db.EmailCampaign, error) {
						require.NotNil(t, p.ScheduledDate)
						assert.True(t, time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC).Equal(*p.ScheduledDate))
						return &db.EmailCampaign{ID: campaignID, Status: constants.CampaignStatusScheduled}, nil
					})
			},
			wantStatus: http.StatusOK,
			want:       responses.SendEmailResponse{Success: true, CampaignID: campaignID.String(), Status: constants.CampaignStatusScheduled},
		},
		{
			name: "unparseable scheduledDate",
			body: map[string]interface{}{
				"recipients":    []string{"a@example.com"},
				"subject":       "Reminder",
				"message":       "x",
				"scheduledDate": "next tuesday",
			},
			setup:      func(m *mocks.MockEmailCampaignService) {},
			wantStatus: http.StatusBadRequest,
			want:       responses.SendEmailResponse{Error: "scheduledDate must be an RFC 3339 timestamp"},
		},
		{
			name: "validation error keeps contract",
			body: map[string]interface{}{"recipients": []string{}},
			setup: func(m *mocks.MockEmailCampaignService) {
				m.EXPECT().
					SendEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: at least one recipient is required", services.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
			want:       responses.SendEmailResponse{Error: "at least one recipient is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			campaigns := mocks.NewMockEmailCampaignService(ctrl)
			tt.setup(campaigns)

			h := NewEmailHandler(campaigns, mocks.NewMockEmailContextService(ctrl))
			r := newTestRouter(organizerSession())
			r.POST("/organizer/send-email", h.SendEmail)

			w := performRequest(t, r, http.MethodPost, "/organizer/send-email", tt.body)
			testutil.AssertStatusCode(t, w, tt.wantStatus)

			var got responses.SendEmailResponse
			testutil.DecodeJSON(t, w, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailHandler_ResolveEmailContext(t *testing.T) {
	recipients := []business.EmailRecipient{{Email: "a@example.com", FirstName: "Ana"}}

	tests := []struct {
		name       string
		body       map[string]string
		wantKey    string
		wantValue  string
		resolveErr error
		wantStatus int
	}{
		{
			name:       "key and value",
			body:       map[string]string{"contextKey": "section", "contextValue": testSectionID.String()},
			wantKey:    "section",
			wantValue:  testSectionID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "bare event id input",
			body:       map[string]string{"input": testEventID.String()},
			wantKey:    services.ContextKeyEvent,
			wantValue:  testEventID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unparseable input",
			body:       map[string]string{"input": "everyone"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "someone else's event",
			body:       map[string]string{"input": "event:" + testEventID.String()},
			wantKey:    services.ContextKeyEvent,
			wantValue:  testEventID.String(),
			resolveErr: services.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			contexts := mocks.NewMockEmailContextService(ctrl)
			if tt.wantKey != "" {
				if tt.resolveErr != nil {
					contexts.EXPECT().Resolve(gomock.Any(), gomock.Any(), tt.wantKey, tt.wantValue).Return(nil, nil, tt.resolveErr)
				} else {
					contexts.EXPECT().
						Resolve(gomock.Any(), gomock.Any(), tt.wantKey, tt.wantValue).
						Return(&business.EmailContext{Key: tt.wantKey, Value: tt.wantValue}, recipients, nil)
				}
			}

			h := NewEmailHandler(mocks.NewMockEmailCampaignService(ctrl), contexts)
			r := newTestRouter(organizerSession())
			r.POST("/organizer/email-context", h.ResolveEmailContext)

			w := performRequest(t, r, http.MethodPost, "/organizer/email-context", tt.body)
			testutil.AssertStatusCode(t, w, tt.wantStatus)

			var got responses.EmailContextResponse
			testutil.DecodeJSON(t, w, &got)
			assert.Equal(t, tt.wantStatus == http.StatusOK, got.Success)
			if got.Success {
				require.NotNil(t, got.Context)
				assert.Equal(t, tt.wantKey, got.Context.Key)
				assert.Equal(t, recipients, got.Recipients)
			} else {
				assert.NotEmpty(t, got.Error)
				assert.NotNil(t, got.Recipients)
			}
		})
	}
}

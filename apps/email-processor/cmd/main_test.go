package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger("test")
	os.Exit(m.Run())
}

func sqsRecord(id, body string) events.SQSMessage {
	return events.SQSMessage{MessageId: id, Body: body}
}

func TestHandleSQSEvent(t *testing.T) {
	delivered := uuid.New()
	claimed := uuid.New()
	broken := uuid.New()
	gone := uuid.New()

	ctrl := gomock.NewController(t)
	campaigns := mocks.NewMockEmailCampaignService(ctrl)
	campaigns.EXPECT().DeliverCampaign(gomock.Any(), delivered).Return(&db.EmailCampaign{ID: delivered, SentCount: 3}, nil)
	campaigns.EXPECT().DeliverCampaign(gomock.Any(), claimed).Return(nil, services.ErrCampaignClaimed)
	campaigns.EXPECT().DeliverCampaign(gomock.Any(), broken).Return(nil, errors.New("resend: 500"))
	campaigns.EXPECT().DeliverCampaign(gomock.Any(), gone).Return(nil, services.ErrCampaignNotFound)

	app := &Application{campaigns: campaigns}
	resp, err := app.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsRecord("m1", `{"campaign_id":"`+delivered.String()+`"}`),
		sqsRecord("m2", `{"campaign_id":"`+claimed.String()+`"}`),
		sqsRecord("m3", `{"campaign_id":"`+broken.String()+`"}`),
		sqsRecord("m4", `{"campaign_id":"`+gone.String()+`"}`),
		sqsRecord("m5", `not json`),
		sqsRecord("m6", `{"campaign_id":"nope"}`),
	}})
	require.NoError(t, err)

	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "m3", resp.BatchItemFailures[0].ItemIdentifier)
}

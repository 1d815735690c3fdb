package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/chessclub/club-events-api/libs/go/worker"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Application holds the processor dependencies
type Application struct {
	campaigns interfaces.EmailCampaignService
}

// HandleSQSEvent delivers one campaign per message. Failed messages are
// reported individually so SQS only redelivers those.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger.Info("Email processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var resp events.SQSEventResponse
	for _, record := range event.Records {
		if err := app.processRecord(ctx, record); err != nil {
			logger.Error("Failed to deliver email campaign",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	logger.Info("Email processing completed",
		zap.Int("total", len(event.Records)),
		zap.Int("failed", len(resp.BatchItemFailures)))
	return resp, nil
}

func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) error {
	var msg business.EmailCampaignMessage
	if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
		// redelivery cannot fix a malformed body
		logger.Error("Dropping malformed queue message",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		return nil
	}
	campaignID, err := uuid.Parse(msg.CampaignID)
	if err != nil {
		logger.Error("Dropping queue message with invalid campaign id",
			zap.String("message_id", record.MessageId),
			zap.String("campaign_id", msg.CampaignID))
		return nil
	}

	campaign, err := app.campaigns.DeliverCampaign(ctx, campaignID)
	switch {
	case errors.Is(err, services.ErrCampaignClaimed):
		logger.Info("Campaign already claimed, skipping", zap.String("campaign_id", campaignID.String()))
		return nil
	case errors.Is(err, services.ErrCampaignNotFound):
		logger.Warn("Campaign no longer exists, skipping", zap.String("campaign_id", campaignID.String()))
		return nil
	case err != nil:
		return fmt.Errorf("campaign %s: %w", campaignID, err)
	}

	logger.Info("Email campaign delivered",
		zap.String("campaign_id", campaign.ID.String()),
		zap.Int32("sent", campaign.SentCount))
	return nil
}

func main() {
	stage, err := worker.Stage()
	if err != nil {
		log.Fatal(err)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing email processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	deps, err := worker.Bootstrap(context.Background(), stage, false)
	if err != nil {
		logger.Fatal("Failed to initialize email processor", zap.Error(err))
	}
	defer deps.Close()

	app := &Application{campaigns: deps.Campaigns}
	lambda.Start(app.HandleSQSEvent)
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/worker"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

// Application holds the scheduler dependencies
type Application struct {
	campaigns interfaces.EmailCampaignService
	now       func() time.Time
}

// HandleScheduledEvent dispatches every scheduled campaign that has come due.
// It runs on an EventBridge schedule.
func (app *Application) HandleScheduledEvent(ctx context.Context, event events.CloudWatchEvent) error {
	now := app.now()
	logger.Info("Email scheduler triggered",
		zap.String("event_id", event.ID),
		zap.Time("now", now))

	dispatched, err := app.campaigns.EnqueueDueCampaigns(ctx, now)
	if err != nil {
		logger.Error("Some due campaigns could not be dispatched",
			zap.Int("dispatched", dispatched),
			zap.Error(err))
		return err
	}

	logger.Info("Email scheduler completed", zap.Int("dispatched", dispatched))
	return nil
}

func main() {
	stage, err := worker.Stage()
	if err != nil {
		log.Fatal(err)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing email scheduler for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	deps, err := worker.Bootstrap(context.Background(), stage, true)
	if err != nil {
		logger.Fatal("Failed to initialize email scheduler", zap.Error(err))
	}
	defer deps.Close()

	app := &Application{campaigns: deps.Campaigns, now: time.Now}
	lambda.Start(app.HandleScheduledEvent)
}

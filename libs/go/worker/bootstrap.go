// Package worker wires the services shared by the email Lambdas.
package worker

import (
	"context"
	"fmt"
	"os"

	awsclient "github.com/chessclub/club-events-api/libs/go/client/aws"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/metrics"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Dependencies are the pieces an email worker needs
type Dependencies struct {
	Pool      *pgxpool.Pool
	Campaigns *services.EmailCampaignService
}

// Close releases the database pool
func (d *Dependencies) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// Stage reads and validates STAGE, defaulting to local
func Stage() (string, error) {
	stage, _, err := helpers.StageFromEnv()
	return stage, err
}

// Bootstrap connects to the database and builds the campaign service. The
// queue is only wired when withQueue is set; the processor consumes the
// queue and sends directly.
func Bootstrap(ctx context.Context, stage string, withQueue bool) (*Dependencies, error) {
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS Secrets Manager client: %w", err)
	}

	var dsn string
	if helpers.IsDeployedStage(stage) {
		dsn, err = secretsClient.GetDatabaseURL(ctx, "RDS_SECRET_ARN", "", os.Getenv("DB_SSLMODE"))
	} else {
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database connection string: %w", err)
	}

	pool, err := helpers.NewPool(ctx, dsn, helpers.WorkerPoolSettings)
	if err != nil {
		return nil, err
	}
	queries := db.New(pool)

	var mailer interfaces.EmailSender
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Warn("Resend API key unavailable, campaigns will be marked failed", zap.Error(err))
	} else {
		mailer = services.NewEmailService(resendAPIKey,
			envOr("EMAIL_FROM_ADDRESS", "events@chessclub.org"),
			envOr("EMAIL_FROM_NAME", "Chess Club Events"),
			logger.L())
	}

	var queue interfaces.QueueClient
	if withQueue {
		if queueURL := os.Getenv("EMAIL_QUEUE_URL"); queueURL != "" {
			sqsQueue, err := awsclient.NewSQSQueue(ctx, queueURL)
			if err != nil {
				pool.Close()
				return nil, fmt.Errorf("failed to create email queue client: %w", err)
			}
			queue = sqsQueue
		}
	}

	// nothing scrapes a Lambda, so counters go to a private registry
	collector := metrics.NewWithRegistry(prometheus.NewRegistry())
	contexts := services.NewEmailContextService(queries)
	return &Dependencies{
		Pool:      pool,
		Campaigns: services.NewEmailCampaignService(queries, contexts, mailer, queue, collector),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"go.uber.org/zap"
)

// MessageSource tags every message so consumers can tell producers apart
const MessageSource = "club-events-api"

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSQueue publishes email campaign messages to an SQS queue
type SQSQueue struct {
	client   sqsAPI
	queueURL string
}

// NewSQSQueue creates a queue client using the default AWS configuration chain
func NewSQSQueue(ctx context.Context, queueURL string) (*SQSQueue, error) {
	if queueURL == "" {
		return nil, errors.New("SQS queue URL is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SQSQueue{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// SendMessage enqueues body and returns the SQS message ID
func (q *SQSQueue) SendMessage(ctx context.Context, body string) (string, error) {
	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"Source": {
				StringValue: aws.String(MessageSource),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message to SQS: %w", err)
	}

	messageID := aws.ToString(out.MessageId)
	logger.Debug("Queued message", zap.String("message_id", messageID))
	return messageID, nil
}

var _ interfaces.QueueClient = (*SQSQueue)(nil)

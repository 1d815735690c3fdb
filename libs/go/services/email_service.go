package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendBatchSize is the most messages Resend accepts in one batch call.
const ResendBatchSize = 100

// resendEmails and resendBatch are the parts of the Resend client this service uses.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendBatch interface {
	SendWithContext(ctx context.Context, params []*resend.SendEmailRequest) (*resend.BatchEmailResponse, error)
}

// EmailService delivers messages through Resend
type EmailService struct {
	emails    resendEmails
	batch     resendBatch
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)
	return newEmailService(client.Emails, client.Batch, fromEmail, fromName, logger)
}

func newEmailService(emails resendEmails, batch resendBatch, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailService{
		emails:    emails,
		batch:     batch,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *EmailService) from() string {
	if s.fromName == "" {
		return s.fromEmail
	}
	return fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
}

func (s *EmailService) toRequest(email business.OutgoingEmail) *resend.SendEmailRequest {
	refID := email.RefID
	if refID == "" {
		refID = uuid.New().String()
	}
	req := &resend.SendEmailRequest{
		From:    s.from(),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: map[string]string{
			"X-Entity-Ref-ID": refID,
		},
		Tags: convertToResendTags(email.Tags),
	}
	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Path:     a.URL,
		})
	}
	return req
}

// Send sends one message and returns the provider's message id
func (s *EmailService) Send(ctx context.Context, email business.OutgoingEmail) (string, error) {
	sent, err := s.emails.SendWithContext(ctx, s.toRequest(email))
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.Strings("to", email.To),
			zap.String("subject", email.Subject))
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Info("email sent",
		zap.String("email_id", sent.Id),
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject))
	return sent.Id, nil
}

// SendBatch sends messages through the batch API in chunks of ResendBatchSize.
// The batch API takes no attachments, so messages carrying attachments are sent
// one by one. The first failure stops the run; ids of what was already sent
// are returned with the error.
func (s *EmailService) SendBatch(ctx context.Context, emails []business.OutgoingEmail) ([]string, error) {
	ids := make([]string, 0, len(emails))

	var plain []business.OutgoingEmail
	for _, e := range emails {
		if len(e.Attachments) == 0 {
			plain = append(plain, e)
			continue
		}
		id, err := s.Send(ctx, e)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	for start := 0; start < len(plain); start += ResendBatchSize {
		end := min(start+ResendBatchSize, len(plain))
		chunk := make([]*resend.SendEmailRequest, 0, end-start)
		for _, e := range plain[start:end] {
			chunk = append(chunk, s.toRequest(e))
		}

		resp, err := s.batch.SendWithContext(ctx, chunk)
		if err != nil {
			s.logger.Error("failed to send email batch",
				zap.Error(err),
				zap.Int("batch_size", len(chunk)),
				zap.Int("already_sent", len(ids)))
			return ids, fmt.Errorf("failed to send email batch: %w", err)
		}
		for _, item := range resp.Data {
			ids = append(ids, item.Id)
		}
		s.logger.Info("email batch sent",
			zap.Int("count", len(chunk)),
			zap.Int("total_sent", len(ids)))
	}
	return ids, nil
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	var resendTags []resend.Tag
	for _, name := range names {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: tags[name],
		})
	}
	return resendTags
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/metrics"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	// MaxEmailRecipients caps one campaign.
	MaxEmailRecipients = 1000
	// DueCampaignBatch is how many scheduled campaigns one scheduler run picks up.
	DueCampaignBatch = 100

	emailDateLayout = "January 2, 2006"
)

// EmailCampaignService stores organizer emails and delivers them now, later
// through the queue, or at their scheduled time
type EmailCampaignService struct {
	queries  db.Querier
	contexts *EmailContextService
	mailer   interfaces.EmailSender
	queue    interfaces.QueueClient
	renderer *EmailRenderer
	metrics  *metrics.Collector
	logger   *logger.StructuredLogger
	now      func() time.Time
}

// NewEmailCampaignService creates a new campaign service. A nil queue makes
// immediate sends synchronous.
func NewEmailCampaignService(queries db.Querier, contexts *EmailContextService, mailer interfaces.EmailSender, queue interfaces.QueueClient, collector *metrics.Collector) *EmailCampaignService {
	return &EmailCampaignService{
		queries:  queries,
		contexts: contexts,
		mailer:   mailer,
		queue:    queue,
		renderer: NewEmailRenderer(),
		metrics:  collector,
		logger:   logger.NewStructuredLogger(logger.ComponentEmail),
		now:      time.Now,
	}
}

// SendEmail validates the request, stores the campaign and dispatches it
// unless it is scheduled. Nothing is stored when validation fails.
func (s *EmailCampaignService) SendEmail(ctx context.Context, caller auth.Session, p params.SendEmailParams) (*db.EmailCampaign, error) {
	recipients, err := normalizeRecipients(p.Recipients)
	if err != nil {
		return nil, err
	}
	subject := strings.TrimSpace(p.Subject)
	if subject == "" {
		return nil, validationError("subject is required")
	}
	if strings.TrimSpace(p.Message) == "" {
		return nil, validationError("message is required")
	}
	if p.ScheduledDate != nil && !p.ScheduledDate.After(s.now()) {
		return nil, validationError("scheduledDate must be in the future")
	}
	if err := ValidateAttachments(p.Attachments); err != nil {
		return nil, err
	}
	emailCtx, err := s.checkContext(ctx, caller, p.Context)
	if err != nil {
		return nil, err
	}

	attachments, err := json.Marshal(p.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attachments: %w", err)
	}
	status := constants.CampaignStatusQueued
	if p.ScheduledDate != nil {
		status = constants.CampaignStatusScheduled
	}

	campaign, err := s.queries.CreateEmailCampaign(ctx, db.CreateEmailCampaignParams{
		OrganizerID:  caller.UserID,
		Subject:      subject,
		Message:      p.Message,
		Context:      emailCtx,
		Recipients:   recipients,
		Attachments:  attachments,
		ScheduledFor: helpers.TimePtrToNullableTimestamptz(p.ScheduledDate),
		Status:       status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store email campaign: %w", err)
	}
	s.logger.WithUserID(caller.UserID.String()).Info("Email campaign stored",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("status", campaign.Status),
		zap.Int("recipients", len(recipients)))

	if status == constants.CampaignStatusScheduled {
		return &campaign, nil
	}
	if s.queue != nil {
		return s.enqueue(ctx, campaign)
	}
	return s.DeliverCampaign(ctx, campaign.ID)
}

// checkContext decodes the optional context and resolves it once so an
// organizer cannot address another organizer's event.
func (s *EmailCampaignService) checkContext(ctx context.Context, caller auth.Session, raw json.RawMessage) ([]byte, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	var ec business.EmailContext
	if err := json.Unmarshal(raw, &ec); err != nil {
		return nil, validationError("context must be an object with key and value")
	}
	if ec.Key == "" {
		return nil, validationError("context key is required")
	}
	resolved, _, err := s.contexts.Resolve(ctx, caller, ec.Key, ec.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resolved)
}

func (s *EmailCampaignService) enqueue(ctx context.Context, campaign db.EmailCampaign) (*db.EmailCampaign, error) {
	body, err := json.Marshal(business.EmailCampaignMessage{CampaignID: campaign.ID.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode queue message: %w", err)
	}
	if _, err := s.queue.SendMessage(ctx, string(body)); err != nil {
		s.metrics.EmailsSent("enqueue_failed", len(campaign.Recipients))
		if _, uerr := s.setStatus(ctx, campaign.ID, constants.CampaignStatusFailed, 0, err); uerr != nil {
			s.logger.Error("Failed to mark campaign failed", uerr, zap.String("campaign_id", campaign.ID.String()))
		}
		return nil, fmt.Errorf("failed to enqueue email campaign: %w", err)
	}
	s.logger.Debug("Email campaign enqueued", zap.String("campaign_id", campaign.ID.String()))
	return &campaign, nil
}

// DeliverCampaign claims a scheduled or queued campaign, renders one message
// per recipient and sends them in batches. A campaign already claimed by
// another worker returns ErrCampaignClaimed.
func (s *EmailCampaignService) DeliverCampaign(ctx context.Context, campaignID uuid.UUID) (*db.EmailCampaign, error) {
	timer := s.logger.WithField("campaign_id", campaignID.String()).NewTimer("deliver_email_campaign")
	campaign, err := s.deliverCampaign(ctx, campaignID)
	timer.StopWithResult(err)
	return campaign, err
}

func (s *EmailCampaignService) deliverCampaign(ctx context.Context, campaignID uuid.UUID) (*db.EmailCampaign, error) {
	campaign, err := s.queries.ClaimEmailCampaign(ctx, campaignID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to claim email campaign: %w", err)
		}
		if _, gerr := s.queries.GetEmailCampaign(ctx, campaignID); gerr != nil {
			return nil, notFound(gerr, ErrCampaignNotFound, "get email campaign")
		}
		return nil, ErrCampaignClaimed
	}
	if s.mailer == nil {
		return s.fail(ctx, campaign, 0, errors.New("email sending is not configured"))
	}

	messages, err := s.buildMessages(ctx, campaign)
	if err != nil {
		return s.fail(ctx, campaign, 0, err)
	}

	ids, err := s.mailer.SendBatch(ctx, messages)
	if err != nil {
		return s.fail(ctx, campaign, len(ids), err)
	}

	updated, err := s.setStatus(ctx, campaign.ID, constants.CampaignStatusSent, len(ids), nil)
	if err != nil {
		return nil, err
	}
	s.metrics.EmailsSent("sent", len(ids))
	s.logger.LogEmailDispatch(campaign.ID.String(), len(campaign.Recipients), len(ids), nil)
	return updated, nil
}

func (s *EmailCampaignService) fail(ctx context.Context, campaign db.EmailCampaign, sent int, cause error) (*db.EmailCampaign, error) {
	s.metrics.EmailsSent("failed", len(campaign.Recipients)-sent)
	if sent > 0 {
		s.metrics.EmailsSent("sent", sent)
	}
	s.logger.LogEmailDispatch(campaign.ID.String(), len(campaign.Recipients), sent, cause)
	if _, err := s.setStatus(ctx, campaign.ID, constants.CampaignStatusFailed, sent, cause); err != nil {
		s.logger.Error("Failed to mark campaign failed", err, zap.String("campaign_id", campaign.ID.String()))
	}
	return nil, fmt.Errorf("failed to deliver email campaign: %w", cause)
}

func (s *EmailCampaignService) setStatus(ctx context.Context, id uuid.UUID, status string, sent int, cause error) (*db.EmailCampaign, error) {
	var errText string
	if cause != nil {
		errText = cause.Error()
	}
	updated, err := s.queries.UpdateEmailCampaignStatus(ctx, db.UpdateEmailCampaignStatusParams{
		ID:        id,
		Status:    status,
		SentCount: int32(sent),
		Error:     helpers.StringToNullableText(errText),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update email campaign status: %w", err)
	}
	return &updated, nil
}

func (s *EmailCampaignService) buildMessages(ctx context.Context, campaign db.EmailCampaign) ([]business.OutgoingEmail, error) {
	var attachments []business.EmailAttachment
	if len(campaign.Attachments) > 0 {
		if err := json.Unmarshal(campaign.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to decode attachments: %w", err)
		}
	}

	owner := auth.Session{UserID: campaign.OrganizerID, Role: constants.OrganizerRole}
	var replyTo string
	if profile, err := s.queries.GetProfile(ctx, campaign.OrganizerID); err == nil {
		replyTo = profile.Email
		if profile.Role != "" {
			owner.Role = profile.Role
		}
	}

	base := business.EmailTemplateData{}
	names := make(map[string]business.EmailRecipient)
	if len(campaign.Context) > 0 {
		var ec business.EmailContext
		if err := json.Unmarshal(campaign.Context, &ec); err != nil {
			return nil, fmt.Errorf("failed to decode context: %w", err)
		}
		// Re-resolve as the sender to pick up names; the context was authorized
		// when the campaign was stored.
		resolved, recipients, err := s.contexts.Resolve(ctx, owner, ec.Key, ec.Value)
		if err != nil {
			s.logger.Warn("Could not resolve campaign context, sending without names",
				zap.String("campaign_id", campaign.ID.String()),
				zap.Error(err))
			resolved = &ec
		}
		for _, r := range recipients {
			names[helpers.NormalizeEmail(r.Email)] = r
		}
		base.EventTitle = resolved.EventTitle
		if resolved.EventDate != nil {
			base.EventDate = resolved.EventDate.UTC().Format(emailDateLayout)
		}
	}

	body, err := s.renderer.RenderMarkdown(campaign.Message)
	if err != nil {
		return nil, err
	}

	messages := make([]business.OutgoingEmail, 0, len(campaign.Recipients))
	for _, to := range campaign.Recipients {
		data := base
		if r, ok := names[helpers.NormalizeEmail(to)]; ok {
			data.FirstName = r.FirstName
			data.LastName = r.LastName
		}
		messages = append(messages, business.OutgoingEmail{
			To:          []string{to},
			Subject:     FillPlaceholders(campaign.Subject, data, nil),
			HTML:        FillPlaceholders(body, data, html.EscapeString),
			Text:        s.renderer.RenderText(campaign.Message, data),
			ReplyTo:     replyTo,
			Attachments: attachments,
			Tags:        map[string]string{"category": "campaign", "campaign_id": campaign.ID.String()},
			RefID:       campaign.ID.String(),
		})
	}
	return messages, nil
}

// EnqueueDueCampaigns hands every scheduled campaign due at now to the queue,
// or delivers it directly when there is no queue. It returns how many were
// dispatched; failures of single campaigns are joined into the error.
func (s *EmailCampaignService) EnqueueDueCampaigns(ctx context.Context, now time.Time) (int, error) {
	due, err := s.queries.ListDueEmailCampaigns(ctx, db.ListDueEmailCampaignsParams{
		Before: helpers.TimeToNullableTimestamptz(now),
		Limit:  DueCampaignBatch,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list due email campaigns: %w", err)
	}

	var (
		dispatched int
		errs       []error
	)
	for _, campaign := range due {
		if s.queue != nil {
			queued, err := s.setStatus(ctx, campaign.ID, constants.CampaignStatusQueued, 0, nil)
			if err == nil {
				_, err = s.enqueue(ctx, *queued)
			}
			if err != nil {
				s.logger.Error("Failed to enqueue due campaign", err, zap.String("campaign_id", campaign.ID.String()))
				errs = append(errs, fmt.Errorf("campaign %s: %w", campaign.ID, err))
				continue
			}
		} else if _, err := s.DeliverCampaign(ctx, campaign.ID); err != nil {
			if errors.Is(err, ErrCampaignClaimed) {
				continue
			}
			errs = append(errs, fmt.Errorf("campaign %s: %w", campaign.ID, err))
			continue
		}
		dispatched++
	}
	s.logger.Info("Due email campaigns processed",
		zap.Int("due", len(due)),
		zap.Int("dispatched", dispatched))
	return dispatched, errors.Join(errs...)
}

// ListCampaigns returns the caller's campaigns, newest first
func (s *EmailCampaignService) ListCampaigns(ctx context.Context, caller auth.Session, limit, offset int32) ([]db.EmailCampaign, int64, error) {
	campaigns, err := s.queries.ListOrganizerEmailCampaigns(ctx, db.ListOrganizerEmailCampaignsParams{
		OrganizerID: caller.UserID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list email campaigns: %w", err)
	}
	total, err := s.queries.CountOrganizerEmailCampaigns(ctx, caller.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count email campaigns: %w", err)
	}
	return campaigns, total, nil
}

// normalizeRecipients trims and deduplicates addresses, rejecting the request
// on the first invalid one.
func normalizeRecipients(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, validationError("at least one recipient is required")
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for i, r := range in {
		r = strings.TrimSpace(r)
		if !helpers.IsEmailValid(r) {
			return nil, validationError("recipients[%d]: %q is not a valid email address", i, r)
		}
		key := helpers.NormalizeEmail(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	if len(out) > MaxEmailRecipients {
		return nil, validationError("at most %d recipients are allowed", MaxEmailRecipients)
	}
	return out, nil
}

// ValidateAttachments requires a filename and an https URL on every attachment.
func ValidateAttachments(attachments []business.EmailAttachment) error {
	for i, a := range attachments {
		if strings.TrimSpace(a.Filename) == "" {
			return validationError("attachments[%d]: filename is required", i)
		}
		if !helpers.IsHTTPSURL(a.URL) {
			return validationError("attachments[%d]: url must be an https URL", i)
		}
	}
	return nil
}

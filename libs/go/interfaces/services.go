package interfaces

import (
	"context"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
)

// BookingService serves the attendee dashboard and organizer booking lists
type BookingService interface {
	ListUserBookings(ctx context.Context, params params.ListBookingsParams) ([]responses.BookingResponse, int64, error)
	GetBooking(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*responses.BookingResponse, error)
	ListEventBookings(ctx context.Context, caller auth.Session, eventID uuid.UUID, limit, offset int32) ([]responses.BookingResponse, int64, error)
	GetTicketQRCode(ctx context.Context, caller auth.Session, bookingID uuid.UUID) ([]byte, error)
}

// RefundService handles refund quotes, requests and organizer decisions
type RefundService interface {
	GetRefundQuote(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*business.RefundQuote, error)
	RequestRefund(ctx context.Context, params params.RequestRefundParams) (*db.Booking, *business.RefundQuote, error)
	ApproveRefund(ctx context.Context, caller auth.Session, bookingID uuid.UUID) (*db.Booking, error)
	DenyRefund(ctx context.Context, caller auth.Session, bookingID uuid.UUID, reason string) (*db.Booking, error)
}

// EventService manages events and their refund policy, pricing tiers and sections
type EventService interface {
	AuthorizeEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*db.Event, error)
	ListEvents(ctx context.Context, caller auth.Session, limit, offset int32) ([]db.Event, int64, error)
	GetEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*db.Event, error)
	CreateEvent(ctx context.Context, params params.CreateEventParams) (*db.Event, error)
	UpdateEvent(ctx context.Context, caller auth.Session, params params.UpdateEventParams) (*db.Event, error)
	DeleteEvent(ctx context.Context, caller auth.Session, eventID uuid.UUID) error
	GetRefundTimeline(ctx context.Context, caller auth.Session, eventID uuid.UUID) (*business.EventSettings, error)
	UpdateRefundTimeline(ctx context.Context, caller auth.Session, eventID uuid.UUID, timeline []business.RefundTimelineEntry, allowRefunds *bool) (*business.EventSettings, error)

	ListPricing(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]db.EventPricing, error)
	SavePricing(ctx context.Context, caller auth.Session, params params.PricingParams) (*db.EventPricing, error)
	DeletePricing(ctx context.Context, caller auth.Session, eventID, pricingID uuid.UUID) error

	ListSections(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]db.EventSection, error)
	SaveSection(ctx context.Context, caller auth.Session, params params.SectionParams) (*db.EventSection, error)
	DeleteSection(ctx context.Context, caller auth.Session, eventID, sectionID uuid.UUID) error
}

// DiscountService manages discounts and evaluates them for a prospective booking
type DiscountService interface {
	ListDiscounts(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]business.DiscountWithRules, error)
	SaveDiscount(ctx context.Context, caller auth.Session, params params.SaveDiscountParams) (*business.DiscountWithRules, error)
	DeleteDiscount(ctx context.Context, caller auth.Session, eventID, discountID uuid.UUID) error
	ApplyDiscount(ctx context.Context, params params.DiscountApplicationParams) (*responses.DiscountApplicationResult, error)
}

// ParticipantService lists participants and moves them between sections
type ParticipantService interface {
	ListParticipants(ctx context.Context, caller auth.Session, params params.ListParticipantsParams) ([]db.Participant, int64, error)
	TransferParticipants(ctx context.Context, caller auth.Session, eventID uuid.UUID, moves []params.TransferParams) ([]db.Participant, error)
}

// EmailContextService resolves an organizer's addressing context into recipients
type EmailContextService interface {
	Resolve(ctx context.Context, caller auth.Session, key, value string) (*business.EmailContext, []business.EmailRecipient, error)
}

// EmailCampaignService stores, schedules and delivers organizer emails
type EmailCampaignService interface {
	SendEmail(ctx context.Context, caller auth.Session, params params.SendEmailParams) (*db.EmailCampaign, error)
	DeliverCampaign(ctx context.Context, campaignID uuid.UUID) (*db.EmailCampaign, error)
	EnqueueDueCampaigns(ctx context.Context, now time.Time) (int, error)
	ListCampaigns(ctx context.Context, caller auth.Session, limit, offset int32) ([]db.EmailCampaign, int64, error)
}

// PlayerService looks up rated players in the ratings service
type PlayerService interface {
	GetPlayer(ctx context.Context, playerID string) (*business.RatedPlayer, error)
}

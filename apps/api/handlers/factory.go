package handlers

import (
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/middleware"
)

// HandlerFactory creates handlers with their services injected
type HandlerFactory struct {
	bookings     interfaces.BookingService
	refunds      interfaces.RefundService
	events       interfaces.EventService
	discounts    interfaces.DiscountService
	participants interfaces.ParticipantService
	contexts     interfaces.EmailContextService
	campaigns    interfaces.EmailCampaignService
	players      interfaces.PlayerService
	db           Pinger
	limiters     []*middleware.RateLimiter
}

// HandlerFactoryConfig contains everything the handlers depend on
type HandlerFactoryConfig struct {
	BookingService       interfaces.BookingService
	RefundService        interfaces.RefundService
	EventService         interfaces.EventService
	DiscountService      interfaces.DiscountService
	ParticipantService   interfaces.ParticipantService
	EmailContextService  interfaces.EmailContextService
	EmailCampaignService interfaces.EmailCampaignService
	PlayerService        interfaces.PlayerService

	// DB is pinged by the health check
	DB Pinger

	// RateLimiters are reported by the rate-limit status endpoint
	RateLimiters []*middleware.RateLimiter
}

// NewHandlerFactory creates a new handler factory
func NewHandlerFactory(cfg HandlerFactoryConfig) *HandlerFactory {
	return &HandlerFactory{
		bookings:     cfg.BookingService,
		refunds:      cfg.RefundService,
		events:       cfg.EventService,
		discounts:    cfg.DiscountService,
		participants: cfg.ParticipantService,
		contexts:     cfg.EmailContextService,
		campaigns:    cfg.EmailCampaignService,
		players:      cfg.PlayerService,
		db:           cfg.DB,
		limiters:     cfg.RateLimiters,
	}
}

func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler(f.db)
}

func (f *HandlerFactory) NewBookingHandler() *BookingHandler {
	return NewBookingHandler(f.bookings, f.refunds)
}

func (f *HandlerFactory) NewEventHandler() *EventHandler {
	return NewEventHandler(f.events)
}

func (f *HandlerFactory) NewDiscountHandler() *DiscountHandler {
	return NewDiscountHandler(f.discounts)
}

func (f *HandlerFactory) NewParticipantHandler() *ParticipantHandler {
	return NewParticipantHandler(f.participants)
}

func (f *HandlerFactory) NewEmailHandler() *EmailHandler {
	return NewEmailHandler(f.campaigns, f.contexts)
}

func (f *HandlerFactory) NewPlayerHandler() *PlayerHandler {
	return NewPlayerHandler(f.players)
}

func (f *HandlerFactory) NewRateLimitHandler() *RateLimitHandler {
	return NewRateLimitHandler(f.limiters...)
}

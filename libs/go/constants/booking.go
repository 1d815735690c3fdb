package constants

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusVerified  = "verified"
	BookingStatusCancelled = "cancelled"
	BookingStatusRefunded  = "refunded"
)

// Refund statuses
const (
	RefundStatusNone       = "none"
	RefundStatusRequested  = "requested"
	RefundStatusProcessing = "processing"
	RefundStatusCompleted  = "completed"
	RefundStatusFailed     = "failed"
)

// Refund timeline entry types
const (
	RefundTypePercentage = "percentage"
	RefundTypeFixed      = "fixed"
)

// Participant statuses
const (
	ParticipantStatusPending   = "pending"
	ParticipantStatusConfirmed = "confirmed"
	ParticipantStatusVerified  = "verified"
	ParticipantStatusCancelled = "cancelled"
)

// Event statuses
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Discount types
const (
	DiscountTypeCode             = "code"
	DiscountTypeParticipantBased = "participant_based"
	DiscountTypeSeatBased        = "seat_based"
)

// Discount value types
const (
	ValueTypePercentage = "percentage"
	ValueTypeFixed      = "fixed"
)

// Participant rule operators
const (
	OperatorEquals     = "equals"
	OperatorContains   = "contains"
	OperatorStartsWith = "starts_with"
	OperatorEndsWith   = "ends_with"
)

// Participation status filters for related-event discount rules
const (
	ParticipationAny       = "any"
	ParticipationConfirmed = "confirmed"
	ParticipationVerified  = "verified"
)

// Email campaign statuses
const (
	CampaignStatusScheduled = "scheduled"
	CampaignStatusQueued    = "queued"
	CampaignStatusSending   = "sending"
	CampaignStatusSent      = "sent"
	CampaignStatusFailed    = "failed"
)

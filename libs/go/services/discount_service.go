package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/metrics"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Reasons a discount does not apply
const (
	DiscountReasonCodeNotFound   = "discount code not found"
	DiscountReasonNoneApplicable = "no applicable discount"
	DiscountReasonInactive       = "discount is not active"
	DiscountReasonNotYetValid    = "discount is not yet valid"
	DiscountReasonExpired        = "discount has expired"
	DiscountReasonUsageLimit     = "discount usage limit reached"
	DiscountReasonNoSeatRule     = "no seat rule matches the quantity"
	DiscountReasonNeedsAttendee  = "participant details are required"
	DiscountReasonNotQualified   = "participant does not qualify"
	DiscountReasonUnknownType    = "unknown discount type"
)

// DiscountService handles discount CRUD and evaluation
type DiscountService struct {
	queries db.Querier
	tx      helpers.TxRunner
	matcher *ParticipantMatcher
	metrics *metrics.Collector
	logger  *zap.Logger
	now     func() time.Time
}

// NewDiscountService creates a new discount service
func NewDiscountService(queries db.Querier, tx helpers.TxRunner, collector *metrics.Collector) *DiscountService {
	return &DiscountService{
		queries: queries,
		tx:      tx,
		matcher: NewParticipantMatcher(queries),
		metrics: collector,
		logger:  logger.L(),
		now:     time.Now,
	}
}

// ListDiscounts lists an event's discounts with their rules
func (s *DiscountService) ListDiscounts(ctx context.Context, caller auth.Session, eventID uuid.UUID) ([]business.DiscountWithRules, error) {
	if _, err := authorizeEvent(ctx, s.queries, caller, eventID); err != nil {
		return nil, err
	}
	discounts, err := s.queries.ListEventDiscounts(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}
	out := make([]business.DiscountWithRules, len(discounts))
	for i, d := range discounts {
		withRules, err := loadDiscountRules(ctx, s.queries, d)
		if err != nil {
			return nil, err
		}
		out[i] = *withRules
	}
	return out, nil
}

// SaveDiscount creates a discount, or replaces one when params.DiscountID is
// set. The rule set is always replaced as a whole.
func (s *DiscountService) SaveDiscount(ctx context.Context, caller auth.Session, params params.SaveDiscountParams) (*business.DiscountWithRules, error) {
	if err := ValidateDiscount(params); err != nil {
		return nil, err
	}
	if _, err := authorizeEvent(ctx, s.queries, caller, params.EventID); err != nil {
		return nil, err
	}

	var code *string
	if params.Code != nil && strings.TrimSpace(*params.Code) != "" {
		trimmed := strings.TrimSpace(*params.Code)
		code = &trimmed
	}
	valueType := params.ValueType
	if valueType == "" {
		valueType = constants.ValueTypeFixed
	}

	var saved business.DiscountWithRules
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		if err := authorizeRelatedEvents(ctx, q, caller, params.ParticipantRules); err != nil {
			return err
		}

		var discount db.EventDiscount
		var err error
		if params.DiscountID == nil {
			discount, err = q.CreateEventDiscount(ctx, db.CreateEventDiscountParams{
				EventID:      params.EventID,
				Code:         helpers.StringPtrToNullableText(code),
				DiscountType: params.DiscountType,
				ValueType:    valueType,
				Value:        params.Value,
				MaxUses:      helpers.Int32PtrToNullableInt4(params.MaxUses),
				ValidFrom:    helpers.TimePtrToNullableTimestamptz(params.ValidFrom),
				ValidTo:      helpers.TimePtrToNullableTimestamptz(params.ValidTo),
				IsActive:     params.IsActive,
			})
			if err != nil {
				if helpers.IsUniqueViolation(err) {
					return duplicateCode(code)
				}
				return fmt.Errorf("failed to create discount: %w", err)
			}
		} else {
			discount, err = q.UpdateEventDiscount(ctx, db.UpdateEventDiscountParams{
				ID:           *params.DiscountID,
				EventID:      params.EventID,
				Code:         helpers.StringPtrToNullableText(code),
				DiscountType: params.DiscountType,
				ValueType:    valueType,
				Value:        params.Value,
				MaxUses:      helpers.Int32PtrToNullableInt4(params.MaxUses),
				ValidFrom:    helpers.TimePtrToNullableTimestamptz(params.ValidFrom),
				ValidTo:      helpers.TimePtrToNullableTimestamptz(params.ValidTo),
				IsActive:     params.IsActive,
			})
			if err != nil {
				if helpers.IsUniqueViolation(err) {
					return duplicateCode(code)
				}
				return notFound(err, ErrDiscountNotFound, "update discount")
			}
			if err := q.DeleteParticipantDiscountRules(ctx, discount.ID); err != nil {
				return fmt.Errorf("failed to clear participant rules: %w", err)
			}
			if err := q.DeleteSeatDiscountRules(ctx, discount.ID); err != nil {
				return fmt.Errorf("failed to clear seat rules: %w", err)
			}
		}
		saved.Discount = discount

		saved.ParticipantRules = make([]db.ParticipantDiscountRule, 0, len(params.ParticipantRules))
		for _, r := range params.ParticipantRules {
			rule, err := q.CreateParticipantDiscountRule(ctx, db.CreateParticipantDiscountRuleParams{
				DiscountID:     discount.ID,
				RelatedEventID: helpers.UUIDPtrToNullableUUID(r.RelatedEventID),
				FieldName:      strings.TrimSpace(r.FieldName),
				Operator:       helpers.StringPtrToNullableText(r.Operator),
				FieldValue:     r.FieldValue,
			})
			if err != nil {
				return fmt.Errorf("failed to create participant rule: %w", err)
			}
			saved.ParticipantRules = append(saved.ParticipantRules, rule)
		}

		saved.SeatRules = make([]db.SeatDiscountRule, 0, len(params.SeatRules))
		for _, r := range params.SeatRules {
			rule, err := q.CreateSeatDiscountRule(ctx, db.CreateSeatDiscountRuleParams{
				DiscountID:         discount.ID,
				MinSeats:           r.MinSeats,
				MaxSeats:           helpers.Int32PtrToNullableInt4(r.MaxSeats),
				DiscountAmount:     r.DiscountAmount,
				DiscountPercentage: helpers.Float64PtrToNullableFloat8(r.DiscountPercentage),
			})
			if err != nil {
				return fmt.Errorf("failed to create seat rule: %w", err)
			}
			saved.SeatRules = append(saved.SeatRules, rule)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Discount saved",
		zap.String("discount_id", saved.Discount.ID.String()),
		zap.String("event_id", params.EventID.String()),
		zap.String("discount_type", saved.Discount.DiscountType),
		zap.Int("participant_rules", len(saved.ParticipantRules)),
		zap.Int("seat_rules", len(saved.SeatRules)))
	return &saved, nil
}

// authorizeRelatedEvents checks the caller manages every event a participant
// rule looks into. Each event is checked once.
func authorizeRelatedEvents(ctx context.Context, q db.Querier, caller auth.Session, rules []params.ParticipantRuleParams) error {
	seen := make(map[uuid.UUID]bool)
	for i, r := range rules {
		if r.RelatedEventID == nil || seen[*r.RelatedEventID] {
			continue
		}
		seen[*r.RelatedEventID] = true
		if _, err := authorizeEvent(ctx, q, caller, *r.RelatedEventID); err != nil {
			return fmt.Errorf("participant_rules[%d]: related event: %w", i, err)
		}
	}
	return nil
}

func duplicateCode(code *string) error {
	if code == nil {
		return validationError("discount code is already used by this event")
	}
	return validationError("discount code %q is already used by this event", *code)
}

// DeleteDiscount removes a discount and, by cascade, its rules
func (s *DiscountService) DeleteDiscount(ctx context.Context, caller auth.Session, eventID, discountID uuid.UUID) error {
	if _, err := authorizeEvent(ctx, s.queries, caller, eventID); err != nil {
		return err
	}
	rows, err := s.queries.DeleteEventDiscount(ctx, db.DeleteEventDiscountParams{ID: discountID, EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	if rows == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

// ApplyDiscount evaluates a code, or every automatic discount of the event
// when no code is given, against a prospective booking. An inapplicable
// discount is a result with IsValid false, not an error.
func (s *DiscountService) ApplyDiscount(ctx context.Context, params params.DiscountApplicationParams) (*responses.DiscountApplicationResult, error) {
	if params.Quantity < 1 {
		return nil, validationError("quantity must be at least 1")
	}
	if params.AmountCents < 0 {
		return nil, validationError("amount must not be negative")
	}
	now := params.Now
	if now.IsZero() {
		now = s.now()
	}
	code := strings.TrimSpace(params.DiscountCode)

	if code != "" {
		discount, err := s.queries.GetEventDiscountByCode(ctx, db.GetEventDiscountByCodeParams{
			EventID: params.EventID,
			Code:    code,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			s.metrics.DiscountEvaluated(constants.DiscountTypeCode, false)
			return invalidDiscount(params, code, business.ApplicationMethodCode, DiscountReasonCodeNotFound, now), nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up discount code: %w", err)
		}
		result, err := s.evaluate(ctx, discount, params, business.ApplicationMethodCode, now)
		if err != nil {
			return nil, err
		}
		result.DiscountCode = code
		s.metrics.DiscountEvaluated(discount.DiscountType, result.IsValid)
		return result, nil
	}

	discounts, err := s.queries.ListAutomaticEventDiscounts(ctx, params.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list automatic discounts: %w", err)
	}
	var best *responses.DiscountApplicationResult
	for _, d := range discounts {
		result, err := s.evaluate(ctx, d, params, business.ApplicationMethodAutomatic, now)
		if err != nil {
			return nil, err
		}
		s.metrics.DiscountEvaluated(d.DiscountType, result.IsValid)
		if result.IsValid && (best == nil || result.DiscountAmountCents > best.DiscountAmountCents) {
			best = result
		}
	}
	if best == nil {
		return invalidDiscount(params, "", business.ApplicationMethodAutomatic, DiscountReasonNoneApplicable, now), nil
	}
	return best, nil
}

func (s *DiscountService) evaluate(ctx context.Context, d db.EventDiscount, params params.DiscountApplicationParams, method string, now time.Time) (*responses.DiscountApplicationResult, error) {
	id := d.ID
	result := invalidDiscount(params, "", method, "", now)
	result.DiscountID = &id
	result.ApplicationDetails.DiscountType = d.DiscountType
	result.ApplicationDetails.ValueType = d.ValueType

	if reason := discountUnavailableReason(d, now); reason != "" {
		result.ReasonForInvalidity = &reason
		return result, nil
	}

	var amount int64
	switch d.DiscountType {
	case constants.DiscountTypeCode:
		amount = DiscountValueAmount(d, params.AmountCents)

	case constants.DiscountTypeSeatBased:
		rules, err := s.queries.ListSeatDiscountRules(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list seat rules: %w", err)
		}
		seat := EvaluateSeatRules(params.Quantity, rules, params.AmountCents)
		if seat.MatchedRuleID == nil {
			reason := DiscountReasonNoSeatRule
			result.ReasonForInvalidity = &reason
			return result, nil
		}
		result.ApplicationDetails.MatchedSeatRuleID = seat.MatchedRuleID
		amount = seat.DiscountAmountCents

	case constants.DiscountTypeParticipantBased:
		if params.Participant == nil {
			reason := DiscountReasonNeedsAttendee
			result.ReasonForInvalidity = &reason
			return result, nil
		}
		rules, err := s.queries.ListParticipantDiscountRules(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list participant rules: %w", err)
		}
		ok, err := s.matcher.Qualifies(ctx, *params.Participant, rules)
		if err != nil {
			return nil, err
		}
		if !ok {
			reason := DiscountReasonNotQualified
			result.ReasonForInvalidity = &reason
			return result, nil
		}
		result.ApplicationDetails.MatchedRuleCount = len(rules)
		amount = DiscountValueAmount(d, params.AmountCents)

	default:
		reason := DiscountReasonUnknownType
		result.ReasonForInvalidity = &reason
		return result, nil
	}

	result.IsValid = true
	result.DiscountAmountCents = amount
	result.FinalAmountCents = params.AmountCents - amount
	result.DiscountPercentage = helpers.EffectivePercentage(amount, params.AmountCents)
	return result, nil
}

// discountUnavailableReason checks the active flag, validity window and usage cap.
func discountUnavailableReason(d db.EventDiscount, now time.Time) string {
	switch {
	case !d.IsActive:
		return DiscountReasonInactive
	case d.ValidFrom.Valid && now.Before(d.ValidFrom.Time):
		return DiscountReasonNotYetValid
	case d.ValidTo.Valid && now.After(d.ValidTo.Time):
		return DiscountReasonExpired
	case d.MaxUses.Valid && d.UsedCount >= d.MaxUses.Int32:
		return DiscountReasonUsageLimit
	}
	return ""
}

// DiscountValueAmount applies a discount's own value to total: a percentage
// (capped at 100) or a fixed amount capped at total.
func DiscountValueAmount(d db.EventDiscount, totalCents int64) int64 {
	if totalCents <= 0 || d.Value <= 0 {
		return 0
	}
	if d.ValueType == constants.ValueTypePercentage {
		return helpers.PercentOfCents(totalCents, float64(min(d.Value, 100)))
	}
	return min(d.Value, totalCents)
}

func invalidDiscount(params params.DiscountApplicationParams, code, method, reason string, now time.Time) *responses.DiscountApplicationResult {
	result := &responses.DiscountApplicationResult{
		DiscountCode:        code,
		OriginalAmountCents: params.AmountCents,
		FinalAmountCents:    params.AmountCents,
		ApplicationDetails: business.DiscountDetails{
			AppliedAt:         now,
			ApplicationMethod: method,
		},
	}
	if reason != "" {
		result.ReasonForInvalidity = &reason
	}
	return result
}

func loadDiscountRules(ctx context.Context, q db.Querier, d db.EventDiscount) (*business.DiscountWithRules, error) {
	participantRules, err := q.ListParticipantDiscountRules(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant rules: %w", err)
	}
	seatRules, err := q.ListSeatDiscountRules(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seat rules: %w", err)
	}
	return &business.DiscountWithRules{
		Discount:         d,
		ParticipantRules: participantRules,
		SeatRules:        seatRules,
	}, nil
}

var (
	validDiscountTypes = map[string]bool{
		constants.DiscountTypeCode:             true,
		constants.DiscountTypeParticipantBased: true,
		constants.DiscountTypeSeatBased:        true,
	}
	validOperators = map[string]bool{
		constants.OperatorEquals:     true,
		constants.OperatorContains:   true,
		constants.OperatorStartsWith: true,
		constants.OperatorEndsWith:   true,
	}
	validParticipation = map[string]bool{
		"":                               true,
		constants.ParticipationAny:       true,
		constants.ParticipationConfirmed: true,
		constants.ParticipationVerified:  true,
	}
)

// ValidateDiscount checks a discount and its rules before anything is written.
func ValidateDiscount(p params.SaveDiscountParams) error {
	if !validDiscountTypes[p.DiscountType] {
		return validationError("unknown discount_type %q", p.DiscountType)
	}
	switch p.ValueType {
	case "", constants.ValueTypeFixed:
	case constants.ValueTypePercentage:
		if p.Value > 100 {
			return validationError("percentage value must be at most 100")
		}
	default:
		return validationError("unknown value_type %q", p.ValueType)
	}
	if p.Value < 0 {
		return validationError("value must not be negative")
	}
	if p.MaxUses != nil && *p.MaxUses < 0 {
		return validationError("max_uses must not be negative")
	}
	if p.ValidFrom != nil && p.ValidTo != nil && p.ValidTo.Before(*p.ValidFrom) {
		return validationError("valid_to must not be before valid_from")
	}

	switch p.DiscountType {
	case constants.DiscountTypeCode:
		if p.Code == nil || strings.TrimSpace(*p.Code) == "" {
			return validationError("code discounts need a code")
		}
	case constants.DiscountTypeSeatBased:
		if len(p.SeatRules) == 0 {
			return validationError("seat_based discounts need at least one seat rule")
		}
	case constants.DiscountTypeParticipantBased:
		if len(p.ParticipantRules) == 0 {
			return validationError("participant_based discounts need at least one participant rule")
		}
	}

	for i, r := range p.SeatRules {
		if r.MinSeats < 1 {
			return validationError("seat_rules[%d]: min_seats must be at least 1", i)
		}
		if r.MaxSeats != nil && *r.MaxSeats < r.MinSeats {
			return validationError("seat_rules[%d]: max_seats must not be below min_seats", i)
		}
		if r.DiscountAmount < 0 {
			return validationError("seat_rules[%d]: discount_amount must not be negative", i)
		}
		if r.DiscountPercentage != nil && (*r.DiscountPercentage < 0 || *r.DiscountPercentage > 100) {
			return validationError("seat_rules[%d]: discount_percentage must be between 0 and 100", i)
		}
	}

	for i, r := range p.ParticipantRules {
		if r.RelatedEventID != nil {
			if _, err := parseRelatedFields(r.FieldName); err != nil {
				return validationError("participant_rules[%d]: %v", i, err)
			}
			if !validParticipation[strings.ToLower(strings.TrimSpace(r.FieldValue))] {
				return validationError("participant_rules[%d]: field_value must be any, confirmed or verified", i)
			}
			continue
		}
		if strings.TrimSpace(r.FieldName) == "" {
			return validationError("participant_rules[%d]: field_name is required", i)
		}
		if r.Operator != nil && !validOperators[strings.ToLower(*r.Operator)] {
			return validationError("participant_rules[%d]: unknown operator %q", i, *r.Operator)
		}
	}
	return nil
}

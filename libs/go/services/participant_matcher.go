package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fields a related-event rule may compare.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldDateOfBirth = "date_of_birth"
	FieldPlayerID    = "player_id"
)

var relatedEventFields = map[string]bool{
	FieldFirstName:   true,
	FieldLastName:    true,
	FieldEmail:       true,
	FieldDateOfBirth: true,
}

// ParticipantMatcher decides whether a candidate attendee qualifies for a
// participant-based discount.
type ParticipantMatcher struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewParticipantMatcher creates a new participant matcher
func NewParticipantMatcher(queries db.Querier) *ParticipantMatcher {
	return &ParticipantMatcher{
		queries: queries,
		logger:  logger.L(),
	}
}

// Qualifies reports whether candidate satisfies every rule. A discount with no
// rules never qualifies.
func (m *ParticipantMatcher) Qualifies(ctx context.Context, candidate business.ParticipantCandidate, rules []db.ParticipantDiscountRule) (bool, error) {
	if len(rules) == 0 {
		return false, nil
	}
	related := make(map[uuid.UUID][]db.Participant)
	for _, rule := range rules {
		if !rule.RelatedEventID.Valid {
			if !MatchCustomRule(candidate, rule) {
				return false, nil
			}
			continue
		}

		eventID := uuid.UUID(rule.RelatedEventID.Bytes)
		participants, ok := related[eventID]
		if !ok {
			var err error
			participants, err = m.queries.ListParticipantsByEvent(ctx, eventID)
			if err != nil {
				return false, fmt.Errorf("failed to list participants of related event %s: %w", eventID, err)
			}
			related[eventID] = participants
		}
		matched, err := MatchRelatedEventRule(candidate, rule, participants)
		if err != nil {
			m.logger.Warn("Skipping malformed related-event rule",
				zap.String("rule_id", rule.ID.String()),
				zap.Error(err))
			return false, nil
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// MatchRelatedEventRule reports whether some participant of the related event
// has the required status and the same value as candidate on every listed field.
func MatchRelatedEventRule(candidate business.ParticipantCandidate, rule db.ParticipantDiscountRule, participants []db.Participant) (bool, error) {
	fields, err := parseRelatedFields(rule.FieldName)
	if err != nil {
		return false, err
	}
	required := strings.ToLower(strings.TrimSpace(rule.FieldValue))
	if required == "" {
		required = constants.ParticipationAny
	}

	for _, p := range participants {
		if !participationStatusMatches(p.Status, required) {
			continue
		}
		if candidateMatchesParticipant(candidate, p, fields) {
			return true, nil
		}
	}
	return false, nil
}

func parseRelatedFields(fieldName string) ([]string, error) {
	var fields []string
	for _, f := range strings.Split(fieldName, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !relatedEventFields[f] {
			return nil, fmt.Errorf("unsupported related-event field %q", f)
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("related-event rule lists no fields")
	}
	return fields, nil
}

func participationStatusMatches(status, required string) bool {
	switch required {
	case constants.ParticipationConfirmed:
		return status == constants.ParticipantStatusConfirmed
	case constants.ParticipationVerified:
		return status == constants.ParticipantStatusVerified
	default:
		return status != constants.ParticipantStatusCancelled
	}
}

func candidateMatchesParticipant(c business.ParticipantCandidate, p db.Participant, fields []string) bool {
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if !equalFold(c.FirstName, p.FirstName) {
				return false
			}
		case FieldLastName:
			if !equalFold(c.LastName, p.LastName) {
				return false
			}
		case FieldEmail:
			if !p.Email.Valid || !equalFold(c.Email, p.Email.String) {
				return false
			}
		case FieldDateOfBirth:
			if c.DateOfBirth == nil || !p.DateOfBirth.Valid || !c.DateOfBirth.SameDay(p.DateOfBirth.Time) {
				return false
			}
		}
	}
	return true
}

// MatchCustomRule compares one candidate field against the rule value,
// case-insensitively. Fields other than the built-in ones are read from
// custom_data; a list or rated-player value matches when any of its parts does.
func MatchCustomRule(candidate business.ParticipantCandidate, rule db.ParticipantDiscountRule) bool {
	operator := constants.OperatorEquals
	if rule.Operator.Valid && rule.Operator.String != "" {
		operator = strings.ToLower(rule.Operator.String)
	}
	want := normalize(rule.FieldValue)

	for _, have := range candidateFieldValues(candidate, rule.FieldName) {
		have = normalize(have)
		var ok bool
		switch operator {
		case constants.OperatorEquals:
			ok = have == want
		case constants.OperatorContains:
			ok = strings.Contains(have, want)
		case constants.OperatorStartsWith:
			ok = strings.HasPrefix(have, want)
		case constants.OperatorEndsWith:
			ok = strings.HasSuffix(have, want)
		}
		if ok {
			return true
		}
	}
	return false
}

func candidateFieldValues(c business.ParticipantCandidate, field string) []string {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldFirstName:
		return nonEmpty(c.FirstName)
	case FieldLastName:
		return nonEmpty(c.LastName)
	case FieldEmail:
		return nonEmpty(c.Email)
	case FieldPlayerID:
		return nonEmpty(c.PlayerID)
	case FieldDateOfBirth:
		if c.DateOfBirth == nil {
			return nil
		}
		return []string{c.DateOfBirth.String()}
	}
	v, ok := c.CustomData.Lookup(strings.TrimSpace(field))
	if !ok {
		return nil
	}
	return v.Strings()
}

func nonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// equalFold treats a blank candidate value as never equal.
func equalFold(a, b string) bool {
	a, b = normalize(a), normalize(b)
	return a != "" && a == b
}

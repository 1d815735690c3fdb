package services

import (
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/types/business"
)

// SeatRuleMatches reports whether quantity falls inside the rule's seat band.
func SeatRuleMatches(rule db.SeatDiscountRule, quantity int32) bool {
	if quantity < rule.MinSeats {
		return false
	}
	return !rule.MaxSeats.Valid || quantity <= rule.MaxSeats.Int32
}

// SeatRuleAmount is the discount a rule gives on total, capped at total.
func SeatRuleAmount(rule db.SeatDiscountRule, totalCents int64) int64 {
	if totalCents <= 0 {
		return 0
	}
	var amount int64
	if rule.DiscountPercentage.Valid {
		amount = helpers.PercentOfCents(totalCents, rule.DiscountPercentage.Float64)
	} else {
		amount = rule.DiscountAmount
	}
	return max(0, min(amount, totalCents))
}

// EvaluateSeatRules picks the matching rule that gives the largest discount.
// Ties go to the rule with the larger min_seats, then to the earlier rule.
func EvaluateSeatRules(quantity int32, rules []db.SeatDiscountRule, totalCents int64) business.SeatRuleResult {
	var (
		result  business.SeatRuleResult
		best    *db.SeatDiscountRule
		bestAmt int64
	)
	for i := range rules {
		rule := &rules[i]
		if !SeatRuleMatches(*rule, quantity) {
			continue
		}
		amount := SeatRuleAmount(*rule, totalCents)
		if best == nil || amount > bestAmt || (amount == bestAmt && rule.MinSeats > best.MinSeats) {
			best = rule
			bestAmt = amount
		}
	}
	if best != nil {
		id := best.ID
		result.MatchedRuleID = &id
		result.DiscountAmountCents = bestAmt
	}
	return result
}

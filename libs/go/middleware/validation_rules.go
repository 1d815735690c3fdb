package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var eventStatuses = []string{
	constants.EventStatusDraft,
	constants.EventStatusPublished,
	constants.EventStatusCancelled,
	constants.EventStatusCompleted,
}

var currencyRule = ValidationRule{
	Field:   "currency",
	Type:    "string",
	Pattern: `^[A-Za-z]{3}$`,
}

var CreateEventValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{Field: "title", Type: "string", Required: true, MinLength: 1, MaxLength: 200, Sanitize: true},
		{Field: "slug", Type: "string", MaxLength: 200, Pattern: `^[a-z0-9]+(?:-[a-z0-9]+)*$`},
		{Field: "description", Type: "string", MaxLength: 10000},
		{Field: "location", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "start_date", Type: "datetime"},
		{Field: "end_date", Type: "datetime"},
		{Field: "status", Type: "string", AllowedValues: eventStatuses},
		{Field: "max_participants", Type: "integer", Min: float64Ptr(0)},
		{Field: "settings", Type: "object"},
	},
}

var UpdateEventValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{Field: "title", Type: "string", MinLength: 1, MaxLength: 200, Sanitize: true},
		{Field: "slug", Type: "string", MaxLength: 200, Pattern: `^[a-z0-9]+(?:-[a-z0-9]+)*$`},
		{Field: "description", Type: "string", MaxLength: 10000},
		{Field: "location", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "start_date", Type: "datetime"},
		{Field: "end_date", Type: "datetime"},
		{Field: "status", Type: "string", AllowedValues: eventStatuses},
		{Field: "max_participants", Type: "integer", Min: float64Ptr(0)},
	},
}

// RefundTimelineValidation only checks the envelope; entry semantics are
// validated by the event service.
var RefundTimelineValidation = ValidationConfig{
	MaxBodySize: 32 * 1024,
	Rules: []ValidationRule{
		{Field: "refund_timeline", Type: "array", Required: false, MaxItems: 50},
		{Field: "allow_refunds", Type: "boolean"},
	},
}

var PricingValidation = ValidationConfig{
	MaxBodySize: 16 * 1024,
	Rules: []ValidationRule{
		{Field: "name", Type: "string", Required: true, MinLength: 1, MaxLength: 100, Sanitize: true},
		{Field: "price", Type: "integer", Required: true, Min: float64Ptr(0)},
		currencyRule,
		{Field: "quantity_available", Type: "integer", Min: float64Ptr(0)},
		{Field: "valid_from", Type: "datetime"},
		{Field: "valid_to", Type: "datetime"},
		{Field: "is_active", Type: "boolean"},
	},
}

var SectionValidation = ValidationConfig{
	MaxBodySize: 16 * 1024,
	Rules: []ValidationRule{
		{Field: "name", Type: "string", Required: true, MinLength: 1, MaxLength: 100, Sanitize: true},
		{Field: "description", Type: "string", MaxLength: 1000},
		{Field: "max_participants", Type: "integer", Min: float64Ptr(0)},
		{Field: "min_rating", Type: "integer", Min: float64Ptr(0), Max: float64Ptr(3500)},
		{Field: "max_rating", Type: "integer", Min: float64Ptr(0), Max: float64Ptr(3500)},
		{Field: "sort_order", Type: "integer"},
	},
}

var DiscountValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", MaxLength: 50, Pattern: `^[A-Za-z0-9_-]+$`},
		{
			Field:    "discount_type",
			Type:     "string",
			Required: true,
			AllowedValues: []string{
				constants.DiscountTypeCode,
				constants.DiscountTypeParticipantBased,
				constants.DiscountTypeSeatBased,
			},
		},
		{Field: "value_type", Type: "string", AllowedValues: []string{constants.ValueTypePercentage, constants.ValueTypeFixed}},
		{Field: "value", Type: "integer", Min: float64Ptr(0)},
		{Field: "max_uses", Type: "integer", Min: float64Ptr(1)},
		{Field: "valid_from", Type: "datetime"},
		{Field: "valid_to", Type: "datetime"},
		{Field: "is_active", Type: "boolean"},
		{Field: "participant_rules", Type: "array", MaxItems: 20},
		{Field: "seat_rules", Type: "array", MaxItems: 20},
	},
}

var EvaluateDiscountValidation = ValidationConfig{
	MaxBodySize: 16 * 1024,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", MaxLength: 50},
		{Field: "quantity", Type: "integer", Required: true, Min: float64Ptr(1), Max: float64Ptr(1000)},
		{Field: "total_cents", Type: "integer", Required: true, Min: float64Ptr(0)},
		currencyRule,
		{Field: "participant", Type: "object"},
	},
}

// TransferValidation accepts both the single-move and the batch shape
var TransferValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{Field: "participantId", Type: "uuid"},
		{Field: "newSectionId", Type: "uuid"},
		{Field: "transfers", Type: "array", MaxItems: 500, Custom: validateTransferItems},
	},
}

func validateTransferItems(value interface{}) error {
	items, _ := value.([]interface{})
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return fmt.Errorf("transfers[%d] must be an object", i)
		}
		for _, key := range []string{"participantId", "newSectionId"} {
			if err := validateUUID(m[key]); err != nil {
				return fmt.Errorf("transfers[%d].%s %s", i, key, err.Error())
			}
		}
	}
	return nil
}

// ListQueryValidation covers the paging and sorting parameters of list endpoints
var ListQueryValidation = ValidationConfig{
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		{Field: "page", Type: "integer", Min: float64Ptr(1)},
		{Field: "limit", Type: "integer", Min: float64Ptr(1), Max: float64Ptr(100)},
		{Field: "order", Type: "string", AllowedValues: []string{"asc", "desc"}},
		{Field: "search", Type: "string", MaxLength: 200},
		{Field: "section_id", Type: "uuid"},
	},
}

// ValidateQueryParams applies config to the URL query. Parameters with a
// numeric rule are parsed as numbers; everything else stays a string.
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	numeric := make(map[string]bool)
	for _, rule := range config.Rules {
		switch rule.Type {
		case "number", "float", "integer", "int":
			numeric[rule.Field] = true
		}
	}

	return func(c *gin.Context) {
		query := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) == 0 {
				continue
			}
			query[key] = values[0]
			if numeric[key] {
				if num, err := strconv.ParseFloat(values[0], 64); err == nil {
					query[key] = num
				}
			}
		}

		if errs := validateFields(query, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			LogWithCorrelationID(c.Request.Context()).Debug("Query validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs))
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		c.Set("validatedQuery", query)
		c.Next()
	}
}

// ValidateUUIDParams rejects requests whose named path parameters are not UUIDs
func ValidateUUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			if _, err := uuid.Parse(c.Param(name)); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: []ValidationError{
					{Field: name, Message: "must be a valid UUID"},
				}})
				return
			}
		}
		c.Next()
	}
}

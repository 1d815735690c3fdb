package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // string, number, integer, boolean, uuid, email, url, datetime, array, object
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	MaxItems      int                     // Maximum length for arrays
	Pattern       string                  // Regex pattern for strings
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values
	Sanitize      bool                    // Trim and strip control characters
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

var (
	URLRegex = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

	patternCache sync.Map
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidateInput checks the JSON body against config and puts the (sanitized)
// body back for the handler to bind.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 && c.Request.ContentLength > config.MaxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			return
		}

		raw, err := drainBody(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
			return
		}
		if config.MaxBodySize > 0 && int64(len(raw)) > config.MaxBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
			})
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(raw, &body); err != nil || body == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			LogWithCorrelationID(c.Request.Context()).Debug("Request validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs))
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		bodyBytes, _ := json.Marshal(body)
		c.Set("validatedBody", body)
		replaceBody(c, bodyBytes)

		c.Next()
	}
}

func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	add := func(field string, err error) {
		errs = append(errs, ValidationError{Field: field, Message: err.Error()})
	}

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			errs = append(errs, ValidationError{Field: rule.Field, Message: fmt.Sprintf("%s is required", rule.Field)})
			continue
		}
		if !exists || value == nil {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			if err = validateString(value, rule); err == nil && rule.Sanitize {
				data[rule.Field] = sanitizeString(value.(string))
			}
		case "number", "float":
			err = validateNumber(value, rule, false)
		case "integer", "int":
			err = validateNumber(value, rule, true)
		case "boolean", "bool":
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case "uuid":
			err = validateUUID(value)
		case "email":
			err = validateEmail(value)
		case "url":
			err = validateURL(value)
		case "datetime":
			err = validateDateTime(value)
		case "array":
			items, ok := value.([]interface{})
			switch {
			case !ok:
				err = fmt.Errorf("must be an array")
			case rule.MaxItems > 0 && len(items) > rule.MaxItems:
				err = fmt.Errorf("must contain at most %d items", rule.MaxItems)
			}
		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				err = fmt.Errorf("must be an object")
			}
		}
		if err != nil {
			add(rule.Field, err)
			continue
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				add(rule.Field, err)
			}
		}
	}

	if !allowUnknown {
		var unknown []string
		for field := range data {
			if !known[field] {
				unknown = append(unknown, field)
			}
		}
		sort.Strings(unknown)
		for _, field := range unknown {
			errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
		}
	}

	return errs
}

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	if rule.Pattern != "" {
		re, err := compiledPattern(rule.Pattern)
		if err != nil {
			logger.Error("Invalid regex pattern", zap.String("pattern", rule.Pattern), zap.Error(err))
			return fmt.Errorf("invalid validation pattern")
		}
		if !re.MatchString(str) {
			return fmt.Errorf("invalid format")
		}
	}

	if len(rule.AllowedValues) > 0 {
		for _, v := range rule.AllowedValues {
			if str == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}

	return nil
}

func validateNumber(value interface{}, rule ValidationRule, integer bool) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if integer && num != float64(int64(num)) {
		return fmt.Errorf("must be a whole number")
	}

	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}

	return nil
}

func validateUUID(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

func validateEmail(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !helpers.IsEmailValid(str) {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

func validateURL(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !URLRegex.MatchString(str) {
		return fmt.Errorf("must be a valid URL")
	}
	return nil
}

func validateDateTime(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := time.Parse(time.RFC3339, str); err != nil {
		return fmt.Errorf("must be an RFC 3339 timestamp")
	}
	return nil
}

// sanitizeString trims the value and drops NUL and other control characters
// except newlines and tabs. HTML escaping is left to the renderer.
func sanitizeString(input string) string {
	input = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(input)
}

func float64Ptr(f float64) *float64 {
	return &f
}

package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit int32 = 10
	MaxPageLimit     int32 = 100
)

// PaginationParams holds the parsed pagination parameters
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams reads ?page=&limit= or ?offset=&limit= from the request.
// Limits above MaxPageLimit are clamped; non-positive values fall back to defaults.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Limit: DefaultPageLimit, Page: 1}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := SafeParseInt32(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if limit > 0 {
			params.Limit = min(limit, MaxPageLimit)
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := SafeParseInt32(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if page > 0 {
			params.Page = page
			params.Offset = (page - 1) * params.Limit
		}
	} else if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := SafeParseInt32(offsetStr)
		if err != nil {
			return params, fmt.Errorf("invalid offset parameter: %w", err)
		}
		if offset >= 0 {
			params.Offset = offset
			params.Page = offset/params.Limit + 1
		}
	}

	return params, nil
}

// SortParams is a validated sort column and direction.
type SortParams struct {
	Field string
	Desc  bool
}

// ParseSortParams reads ?sort= and ?order= and rejects columns outside allowed.
// order defaults to descending.
func ParseSortParams(c *gin.Context, allowed []string, defaultField string) (SortParams, error) {
	sp := SortParams{Field: defaultField, Desc: true}
	if field := strings.TrimSpace(c.Query("sort")); field != "" {
		ok := false
		for _, a := range allowed {
			if a == field {
				ok = true
				break
			}
		}
		if !ok {
			return sp, fmt.Errorf("invalid sort parameter %q (allowed: %s)", field, strings.Join(allowed, ", "))
		}
		sp.Field = field
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("order"))) {
	case "", "desc":
		sp.Desc = true
	case "asc":
		sp.Desc = false
	default:
		return sp, fmt.Errorf("invalid order parameter %q (allowed: asc, desc)", c.Query("order"))
	}
	return sp, nil
}

// TotalPages rounds up; zero items is zero pages.
func TotalPages(total int64, limit int32) int32 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int32((total + int64(limit) - 1) / int64(limit))
}

// SafeParseInt32 safely parses a string to int32, checking for overflow
func SafeParseInt32(s string) (int32, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("value %d overflows int32", val)
	}
	return int32(val), nil
}

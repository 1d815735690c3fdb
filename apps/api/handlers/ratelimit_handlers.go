package handlers

import (
	"net/http"

	"github.com/chessclub/club-events-api/libs/go/middleware"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
)

// RateLimitHandler reports the caller's standing with each configured limiter
type RateLimitHandler struct {
	limiters []*middleware.RateLimiter
}

// NewRateLimitHandler creates a rate-limit status handler
func NewRateLimitHandler(limiters ...*middleware.RateLimiter) *RateLimitHandler {
	return &RateLimitHandler{limiters: limiters}
}

// GetStatus godoc
// @Summary Rate-limit status
// @Description Current counters of the caller for every limiter, without consuming a request
// @Tags rate-limit
// @Produce json
// @Success 200 {object} responses.RateLimitStatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /rate-limit/status [get]
func (h *RateLimitHandler) GetStatus(c *gin.Context) {
	out := responses.RateLimitStatusResponse{Limiters: make(map[string]responses.RateLimitStatus, len(h.limiters))}
	for _, rl := range h.limiters {
		st, err := rl.Status(c)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to read rate limit status", err)
			return
		}
		out.Limiters[rl.Name()] = responses.RateLimitStatus{
			Identifier:    st.Identifier,
			Limit:         st.Limit,
			Remaining:     st.Remaining,
			ResetAt:       st.ResetAt.Unix(),
			WindowSeconds: st.WindowSeconds,
		}
	}
	sendSuccess(c, http.StatusOK, out)
}

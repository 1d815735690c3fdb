package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation strips prefix",
			err:        fmt.Errorf("%w: subject is required", services.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "subject is required",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get booking: %w", services.ErrBookingNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden hides detail",
			err:        services.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantMsg:    "You do not have access to this resource",
		},
		{
			name:       "section full",
			err:        services.ErrSectionFull,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "claimed campaign",
			err:        services.ErrCampaignClaimed,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not configured",
			err:        fmt.Errorf("ratings lookup: %w", services.ErrNotConfigured),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown error is generic",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    constants.GenericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := errorStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}

func TestRequireSession_Anonymous(t *testing.T) {
	r := newTestRouter(nil)
	r.GET("/x", func(c *gin.Context) {
		if _, ok := requireSession(c); ok {
			c.Status(http.StatusOK)
		}
	})

	w := performRequest(t, r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

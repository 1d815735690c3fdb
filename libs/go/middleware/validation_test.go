package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, config ValidationConfig, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen map[string]interface{}
	router := gin.New()
	router.POST("/test", ValidateInput(config), func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &seen))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func errorMessages(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	out := make(map[string]string, len(resp.Errors))
	for _, e := range resp.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name       string
		config     ValidationConfig
		body       string
		wantStatus int
		wantErrors map[string]string
	}{
		{
			name:       "valid event",
			config:     CreateEventValidation,
			body:       `{"title":"Spring Rapid Open","start_date":"2025-06-14T09:00:00Z","status":"published","max_participants":120}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing title",
			config:     CreateEventValidation,
			body:       `{"location":"Club hall"}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"title": "title is required"},
		},
		{
			name:       "bad status and date",
			config:     CreateEventValidation,
			body:       `{"title":"Blitz","status":"archived","start_date":"14/06/2025"}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{
				"status":     "must be one of: draft, published, cancelled, completed",
				"start_date": "must be an RFC 3339 timestamp",
			},
		},
		{
			name:       "fractional price",
			config:     PricingValidation,
			body:       `{"name":"Adult","price":12.5}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"price": "must be a whole number"},
		},
		{
			name:       "negative price",
			config:     PricingValidation,
			body:       `{"name":"Adult","price":-100}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"price": "must be at least 0"},
		},
		{
			name:       "unknown fields listed",
			config:     SectionValidation,
			body:       `{"name":"U1400","zeta":1,"alpha":2}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"alpha": "unknown field", "zeta": "unknown field"},
		},
		{
			name:       "rating out of range",
			config:     SectionValidation,
			body:       `{"name":"Open","max_rating":4000}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"max_rating": "must be at most 3500"},
		},
		{
			name:       "unknown discount type",
			config:     DiscountValidation,
			body:       `{"discount_type":"loyalty","value":10}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"discount_type": "must be one of: code, participant_based, seat_based"},
		},
		{
			name:       "evaluate needs quantity",
			config:     EvaluateDiscountValidation,
			body:       `{"total_cents":4000}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"quantity": "quantity is required"},
		},
		{
			name:       "transfer batch with bad id",
			config:     TransferValidation,
			body:       `{"transfers":[{"participantId":"6f1c1e9e-4a57-4d0b-9a69-0f6f8d1c2b3a","newSectionId":"nope"}]}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"transfers": "transfers[0].newSectionId must be a valid UUID"},
		},
		{
			name:       "single transfer",
			config:     TransferValidation,
			body:       `{"participantId":"6f1c1e9e-4a57-4d0b-9a69-0f6f8d1c2b3a","newSectionId":"0e9f3a8c-2d7b-4c1e-8f5a-9b6c3d2e1f0a"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json",
			config:     CreateEventValidation,
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body too large",
			config:     ValidationConfig{MaxBodySize: 10},
			body:       `{"data":"much longer than ten bytes"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := postJSON(t, tt.config, tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, errorMessages(t, w))
			}
		})
	}
}

func TestValidateInput_Sanitizes(t *testing.T) {
	w, seen := postJSON(t, SectionValidation, `{"name":"  U1800\u0000 ","description":"line one\nline two"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "U1800", seen["name"])
	assert.Equal(t, "line one\nline two", seen["description"])
}

func TestValidateQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "valid paging", query: "page=2&limit=50&order=desc", wantStatus: http.StatusOK},
		{name: "numeric search stays a string", query: "search=1800", wantStatus: http.StatusOK},
		{name: "page zero", query: "page=0", wantStatus: http.StatusBadRequest},
		{name: "limit too high", query: "limit=200", wantStatus: http.StatusBadRequest},
		{name: "limit not a number", query: "limit=ten", wantStatus: http.StatusBadRequest},
		{name: "bad order", query: "order=sideways", wantStatus: http.StatusBadRequest},
		{name: "bad section", query: "section_id=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", ValidateQueryParams(ListQueryValidation), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestValidateUUIDParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/events/:event_id", ValidateUUIDParams("event_id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "event_id"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/6f1c1e9e-4a57-4d0b-9a69-0f6f8d1c2b3a", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "a\tb", sanitizeString(" a\tb\x07 "))
	assert.Equal(t, "<b>kept</b>", sanitizeString("<b>kept</b>"))
}

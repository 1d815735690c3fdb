package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	testUserID      = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	testOrganizerID = uuid.MustParse("11234567-89ab-cdef-0123-456789abcdef")
	testEventID     = uuid.MustParse("21234567-89ab-cdef-0123-456789abcdef")
	testBookingID   = uuid.MustParse("31234567-89ab-cdef-0123-456789abcdef")
	testSectionID   = uuid.MustParse("41234567-89ab-cdef-0123-456789abcdef")
)

func attendeeSession() *auth.Session {
	return &auth.Session{UserID: testUserID, Email: "player@example.com", Role: constants.UserRole}
}

func organizerSession() *auth.Session {
	return &auth.Session{UserID: testOrganizerID, Email: "td@example.com", Role: constants.OrganizerRole}
}

// newTestRouter returns a router whose requests carry session; nil means anonymous.
func newTestRouter(session *auth.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if session != nil {
		r.Use(testutil.WithSession(*session))
	}
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockQueueClient provides a mock for the email queue
type MockQueueClient struct {
	mock.Mock
}

func (m *MockQueueClient) SendMessage(ctx context.Context, body string) (string, error) {
	args := m.Called(ctx, body)
	return args.String(0), args.Error(1)
}

// MockRatingsClient provides a mock for the ratings API client
type MockRatingsClient struct {
	mock.Mock
}

func (m *MockRatingsClient) GetPlayer(ctx context.Context, playerID string) (*business.RatedPlayer, error) {
	args := m.Called(ctx, playerID)
	player, _ := args.Get(0).(*business.RatedPlayer)
	return player, args.Error(1)
}

// TestServer creates a test HTTP server with Gin
func TestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

// TestContext creates a test Gin context
func TestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	return ctx, recorder
}

// WithSession wraps handler so every request carries session, as the auth
// middleware would leave it.
func WithSession(session auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetSession(c, session)
		c.Next()
	}
}

// AssertStatusCode checks HTTP status code
func AssertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if recorder.Code != expected {
		t.Errorf("Expected status code %d, got %d. Response body: %s",
			expected, recorder.Code, recorder.Body.String())
	}
}

// DecodeJSON unmarshals the recorded response body into v
func DecodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
}

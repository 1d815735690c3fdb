package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/middleware"
	"github.com/chessclub/club-events-api/libs/go/mocks"
	"github.com/chessclub/club-events-api/libs/go/services"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/chessclub/club-events-api/libs/go/types/api/responses"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "no database configured",
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok"},
		},
		{
			name:       "database reachable",
			db:         pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "ok"},
		},
		{
			name:       "database down",
			db:         pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }),
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: "degraded", Database: "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(nil)
			r.GET("/health", NewHealthHandler(tt.db).Health)

			w := performRequest(t, r, http.MethodGet, "/health", nil)
			testutil.AssertStatusCode(t, w, tt.wantStatus)

			var got HealthResponse
			testutil.DecodeJSON(t, w, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayerHandler_GetPlayer(t *testing.T) {
	rating := 2830

	tests := []struct {
		name       string
		player     *business.RatedPlayer
		err        error
		wantStatus int
	}{
		{
			name:       "found",
			player:     &business.RatedPlayer{PlayerID: "1503014", Name: "Carlsen, Magnus", Federation: "NOR", Rating: &rating, Title: "GM"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown player",
			err:        services.ErrPlayerNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "lookups disabled",
			err:        services.ErrNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			players := mocks.NewMockPlayerService(ctrl)
			players.EXPECT().GetPlayer(gomock.Any(), "1503014").Return(tt.player, tt.err)

			r := newTestRouter(attendeeSession())
			r.GET("/players/:player_id", NewPlayerHandler(players).GetPlayer)

			w := performRequest(t, r, http.MethodGet, "/players/1503014", nil)
			testutil.AssertStatusCode(t, w, tt.wantStatus)

			if tt.player != nil {
				var got responses.PlayerResponse
				testutil.DecodeJSON(t, w, &got)
				assert.Equal(t, "NOR", got.Federation)
				require.NotNil(t, got.Rating)
				assert.Equal(t, rating, *got.Rating)
			}
		})
	}
}

func TestRateLimitHandler_GetStatus(t *testing.T) {
	defaultStore := middleware.NewMemoryStore(10, 20)
	strictStore := middleware.NewMemoryStore(1, 5)
	t.Cleanup(defaultStore.Close)
	t.Cleanup(strictStore.Close)

	h := NewRateLimitHandler(
		middleware.NewRateLimiter("default", defaultStore, nil),
		middleware.NewRateLimiter("strict", strictStore, nil),
	)

	r := newTestRouter(organizerSession())
	r.GET("/rate-limit/status", h.GetStatus)

	w := performRequest(t, r, http.MethodGet, "/rate-limit/status", nil)
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var got responses.RateLimitStatusResponse
	testutil.DecodeJSON(t, w, &got)
	require.Contains(t, got.Limiters, "default")
	require.Contains(t, got.Limiters, "strict")

	strict := got.Limiters["strict"]
	assert.Equal(t, "user:"+testOrganizerID.String(), strict.Identifier)
	assert.Equal(t, 5, strict.Limit)
	assert.Equal(t, 5, strict.Remaining)
	assert.Equal(t, 5, strict.WindowSeconds)
	assert.GreaterOrEqual(t, strict.ResetAt, time.Now().Add(-time.Minute).Unix())
	assert.Equal(t, 20, got.Limiters["default"].Limit)
}

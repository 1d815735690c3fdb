package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

type profileFunc func(ctx context.Context, id uuid.UUID) (db.Profile, error)

func (f profileFunc) GetProfile(ctx context.Context, id uuid.UUID) (db.Profile, error) {
	return f(ctx, id)
}

func signToken(t *testing.T, subject string, expires time.Time, secret string) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email: "player@example.com",
		Role:  "authenticated",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthClient_Authenticate(t *testing.T) {
	userID := uuid.New()
	valid := signToken(t, userID.String(), time.Now().Add(time.Hour), testSecret)

	tests := []struct {
		name     string
		header   string
		profiles auth.ProfileLookup
		wantRole string
		wantErr  error
	}{
		{
			name:     "no profile store defaults to user",
			header:   "Bearer " + valid,
			wantRole: constants.UserRole,
		},
		{
			name:   "role from profile",
			header: "Bearer " + valid,
			profiles: profileFunc(func(ctx context.Context, id uuid.UUID) (db.Profile, error) {
				return db.Profile{ID: id, Email: "td@example.com", Role: constants.OrganizerRole}, nil
			}),
			wantRole: constants.OrganizerRole,
		},
		{
			name:   "missing profile row",
			header: "Bearer " + valid,
			profiles: profileFunc(func(ctx context.Context, id uuid.UUID) (db.Profile, error) {
				return db.Profile{}, pgx.ErrNoRows
			}),
			wantRole: constants.UserRole,
		},
		{
			name:    "missing header",
			wantErr: auth.ErrMissingToken,
		},
		{
			name:    "not a bearer token",
			header:  "Basic abc",
			wantErr: auth.ErrMissingToken,
		},
		{
			name:    "expired",
			header:  "Bearer " + signToken(t, userID.String(), time.Now().Add(-time.Minute), testSecret),
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "wrong secret",
			header:  "Bearer " + signToken(t, userID.String(), time.Now().Add(time.Hour), "another-secret-another-secret-another"),
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "subject is not a uuid",
			header:  "Bearer " + signToken(t, "service-role", time.Now().Add(time.Hour), testSecret),
			wantErr: auth.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := auth.NewAuthClient(auth.Config{JWTSecret: testSecret, Audience: "authenticated"}, tt.profiles)
			session, err := client.Authenticate(context.Background(), tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, tt.wantRole, session.Role)
			assert.Equal(t, "player@example.com", session.Email)
		})
	}
}

func TestAuthClient_ProfileStoreError(t *testing.T) {
	client := auth.NewAuthClient(auth.Config{JWTSecret: testSecret}, profileFunc(func(ctx context.Context, id uuid.UUID) (db.Profile, error) {
		return db.Profile{}, errors.New("connection refused")
	}))
	token := signToken(t, uuid.NewString(), time.Now().Add(time.Hour), testSecret)

	_, err := client.Authenticate(context.Background(), "Bearer "+token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthClient_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	organizerID := uuid.New()
	client := auth.NewAuthClient(auth.Config{JWTSecret: testSecret}, profileFunc(func(ctx context.Context, id uuid.UUID) (db.Profile, error) {
		if id == organizerID {
			return db.Profile{ID: id, Role: constants.OrganizerRole}, nil
		}
		return db.Profile{}, pgx.ErrNoRows
	}))

	r := gin.New()
	r.GET("/organizer", client.EnsureValidToken(), client.RequireRoles(constants.OrganizerRole), func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		require.True(t, ok)
		c.String(http.StatusOK, session.UserID.String())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "organizer passes", header: "Bearer " + signToken(t, organizerID.String(), time.Now().Add(time.Hour), testSecret), wantStatus: http.StatusOK},
		{name: "attendee is forbidden", header: "Bearer " + signToken(t, uuid.NewString(), time.Now().Add(time.Hour), testSecret), wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/organizer", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSession_CanManage(t *testing.T) {
	owner := uuid.New()
	assert.True(t, auth.Session{UserID: owner, Role: constants.OrganizerRole}.CanManage(owner))
	assert.False(t, auth.Session{UserID: uuid.New(), Role: constants.OrganizerRole}.CanManage(owner))
	assert.True(t, auth.Session{UserID: uuid.New(), Role: constants.AdminRole}.CanManage(owner))
	assert.True(t, auth.Session{Role: constants.AdminRole}.IsOrganizer())
	assert.False(t, auth.Session{Role: constants.UserRole}.IsOrganizer())
}

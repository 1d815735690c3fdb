package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when no bearer token is present
	ErrMissingToken = errors.New("no authentication provided")
)

// ProfileLookup loads the stored profile that carries the caller's role.
type ProfileLookup interface {
	GetProfile(ctx context.Context, id uuid.UUID) (db.Profile, error)
}

// Claims are the claims of a Supabase access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Config configures token verification. When JWKSURL is set tokens are
// verified against the published keys; otherwise HMAC with JWTSecret is used.
type Config struct {
	JWTSecret string
	JWKSURL   string
	Issuer    string
	Audience  string
}

// ConfigFromEnv reads SUPABASE_JWKS_URL, SUPABASE_JWT_ISSUER and SUPABASE_JWT_AUDIENCE.
// The secret is passed in separately because it comes from Secrets Manager.
func ConfigFromEnv(secret string) Config {
	audience := os.Getenv("SUPABASE_JWT_AUDIENCE")
	if audience == "" {
		audience = "authenticated"
	}
	return Config{
		JWTSecret: secret,
		JWKSURL:   os.Getenv("SUPABASE_JWKS_URL"),
		Issuer:    os.Getenv("SUPABASE_JWT_ISSUER"),
		Audience:  audience,
	}
}

type AuthClient struct {
	config   Config
	profiles ProfileLookup
	jwks     *keyfunc.JWKS
	logger   *zap.Logger
}

func NewAuthClient(config Config, profiles ProfileLookup) *AuthClient {
	client := &AuthClient{
		config:   config,
		profiles: profiles,
		logger:   logger.L(),
	}
	if config.JWKSURL != "" {
		if err := client.initializeJWKS(); err != nil {
			client.logger.Error("Failed to initialize JWKS, falling back to shared secret", zap.Error(err))
		}
	}
	return client
}

func (ac *AuthClient) initializeJWKS() error {
	jwks, err := keyfunc.Get(ac.config.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   10 * time.Second,
		RefreshErrorHandler: func(err error) {
			ac.logger.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}
	ac.jwks = jwks
	ac.logger.Info("JWKS initialized", zap.String("jwks_url", ac.config.JWKSURL))
	return nil
}

func (ac *AuthClient) keyFunc(token *jwt.Token) (interface{}, error) {
	if ac.jwks != nil {
		return ac.jwks.Keyfunc(token)
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	if ac.config.JWTSecret == "" {
		return nil, errors.New("no JWT secret configured")
	}
	return []byte(ac.config.JWTSecret), nil
}

// ParseToken verifies a raw token and returns its claims.
func (ac *AuthClient) ParseToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if ac.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ac.config.Issuer))
	}
	if ac.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(ac.config.Audience))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate turns a bearer header into a Session. The role comes from the
// caller's profile row; callers without a profile are plain users.
func (ac *AuthClient) Authenticate(ctx context.Context, authHeader string) (Session, error) {
	tokenString, ok := strings.CutPrefix(strings.TrimSpace(authHeader), "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return Session{}, ErrMissingToken
	}
	claims, err := ac.ParseToken(strings.TrimSpace(tokenString))
	if err != nil {
		return Session{}, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	session := Session{UserID: userID, Email: claims.Email, Role: constants.UserRole}
	if ac.profiles == nil {
		return session, nil
	}
	profile, err := ac.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return session, nil
	case err != nil:
		return Session{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile.Role != "" {
		session.Role = profile.Role
	}
	if session.Email == "" {
		session.Email = profile.Email
	}
	return session, nil
}

// EnsureValidToken rejects requests without a valid bearer token and attaches
// the caller's Session to the request.
func (ac *AuthClient) EnsureValidToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := ac.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			message := err.Error()
			if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrMissingToken) {
				status = http.StatusInternalServerError
				message = constants.GenericErrorMessage
			}
			ac.logger.Debug("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", c.GetHeader("X-Correlation-ID")),
			)
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		SetSession(c, session)
		c.Next()
	}
}

// RequireRoles lets the request through only when the caller has one of roles.
// Admins always pass.
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error()})
			return
		}
		if session.IsAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if session.Role == r {
				c.Next()
				return
			}
		}
		ac.logger.Debug("Insufficient role",
			zap.String("user_id", session.UserID.String()),
			zap.String("role", session.Role),
			zap.Strings("required", roles),
		)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

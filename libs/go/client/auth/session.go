package auth

import (
	"context"

	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session is the authenticated caller of a request.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the caller may act on any organizer's data.
func (s Session) IsAdmin() bool {
	return s.Role == constants.AdminRole
}

// IsOrganizer is true for organizers and admins.
func (s Session) IsOrganizer() bool {
	return s.Role == constants.OrganizerRole || s.Role == constants.AdminRole
}

// CanManage reports whether the caller may manage data owned by ownerID.
func (s Session) CanManage(ownerID uuid.UUID) bool {
	return s.IsAdmin() || s.UserID == ownerID
}

type sessionKey struct{}

// SessionGinKey is the gin context key the middleware stores the session under.
const SessionGinKey = "auth_session"

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// GetSession returns the session the auth middleware attached to c.
func GetSession(c *gin.Context) (Session, bool) {
	if v, ok := c.Get(SessionGinKey); ok {
		if s, ok := v.(Session); ok {
			return s, true
		}
	}
	return SessionFromContext(c.Request.Context())
}

// SetSession attaches s to both the gin context and the request context.
func SetSession(c *gin.Context, s Session) {
	c.Set(SessionGinKey, s)
	c.Request = c.Request.WithContext(WithSession(c.Request.Context(), s))
}

package services_test

import (
	"testing"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func mustTimelineDate(t *testing.T, s string) *business.TimelineDate {
	t.Helper()
	d, err := business.ParseTimelineDate(s)
	require.NoError(t, err)
	return &d
}

func boolPtr(b bool) *bool { return &b }

func int32Ptr(i int32) *int32 { return &i }

func organizerSession() auth.Session {
	return auth.Session{UserID: uuid.New(), Email: "td@example.com", Role: constants.OrganizerRole}
}

func userSession() auth.Session {
	return auth.Session{UserID: uuid.New(), Email: "player@example.com", Role: constants.UserRole}
}

func adminSession() auth.Session {
	return auth.Session{UserID: uuid.New(), Email: "admin@example.com", Role: constants.AdminRole}
}

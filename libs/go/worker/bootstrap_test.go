package worker

import (
	"testing"

	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	t.Run("defaults to local", func(t *testing.T) {
		t.Setenv("STAGE", "")
		stage, err := Stage()
		require.NoError(t, err)
		assert.Equal(t, helpers.StageLocal, stage)
	})

	t.Run("accepts dev", func(t *testing.T) {
		t.Setenv("STAGE", "dev")
		stage, err := Stage()
		require.NoError(t, err)
		assert.Equal(t, helpers.StageDev, stage)
	})

	t.Run("rejects unknown", func(t *testing.T) {
		t.Setenv("STAGE", "staging")
		_, err := Stage()
		assert.Error(t, err)
	})
}

func TestEnvOr(t *testing.T) {
	t.Setenv("EMAIL_FROM_NAME", "")
	assert.Equal(t, "Chess Club Events", envOr("EMAIL_FROM_NAME", "Chess Club Events"))
	t.Setenv("EMAIL_FROM_NAME", "Marshall CC")
	assert.Equal(t, "Marshall CC", envOr("EMAIL_FROM_NAME", "Chess Club Events"))
}

package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageFromEnv(t *testing.T) {
	tests := []struct {
		env           string
		want          string
		wantDefaulted bool
		wantErr       bool
	}{
		{env: "", want: StageLocal, wantDefaulted: true},
		{env: "prod", want: StageProd},
		{env: "dev", want: StageDev},
		{env: "local", want: StageLocal},
		{env: "staging", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("STAGE", tt.env)
			stage, defaulted, err := StageFromEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stage)
			assert.Equal(t, tt.wantDefaulted, defaulted)
		})
	}
}

func TestIsDeployedStage(t *testing.T) {
	assert.True(t, IsDeployedStage(StageProd))
	assert.True(t, IsDeployedStage(StageDev))
	assert.False(t, IsDeployedStage(StageLocal))
}

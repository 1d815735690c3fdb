package helpers

import (
	"fmt"
	"os"

	"github.com/chessclub/club-events-api/libs/go/constants"
)

// Deployment stages. Prod and dev read secrets from Secrets Manager, local from the environment.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage reports whether stage is one of the known stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}

// IsDeployedStage reports whether stage runs in AWS rather than on a workstation.
func IsDeployedStage(stage string) bool {
	return stage == StageProd || stage == StageDev
}

// StageFromEnv reads STAGE. Unset means local; the second result reports
// whether the default was applied.
func StageFromEnv() (stage string, defaulted bool, err error) {
	stage = os.Getenv("STAGE")
	if stage == "" {
		return StageLocal, true, nil
	}
	if !IsValidStage(stage) {
		return "", false, fmt.Errorf("invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, StageProd, StageDev, StageLocal)
	}
	return stage, false, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/client/ratings"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/business"
	"go.uber.org/zap"
)

// PlayerService looks up rated players for participant custom data
type PlayerService struct {
	ratings interfaces.RatingsClient
	logger  *zap.Logger
}

// NewPlayerService creates a player service; a nil client disables lookups
func NewPlayerService(client interfaces.RatingsClient) *PlayerService {
	return &PlayerService{
		ratings: client,
		logger:  logger.L(),
	}
}

// GetPlayer returns the ratings record for playerID
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (*business.RatedPlayer, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, validationError("player_id is required")
	}
	if s.ratings == nil {
		return nil, fmt.Errorf("ratings lookup: %w", ErrNotConfigured)
	}

	player, err := s.ratings.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, ratings.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		s.logger.Error("Player lookup failed", zap.String("player_id", playerID), zap.Error(err))
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	return player, nil
}

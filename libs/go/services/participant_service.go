package services

import (
	"context"
	"fmt"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/constants"
	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/helpers"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/chessclub/club-events-api/libs/go/types/api/params"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParticipantService handles participant listing and section transfers
type ParticipantService struct {
	queries db.Querier
	tx      helpers.TxRunner
	logger  *zap.Logger
}

// NewParticipantService creates a new participant service
func NewParticipantService(queries db.Querier, tx helpers.TxRunner) *ParticipantService {
	return &ParticipantService{
		queries: queries,
		tx:      tx,
		logger:  logger.L(),
	}
}

// ListParticipants lists an event's participants with optional filters
func (s *ParticipantService) ListParticipants(ctx context.Context, caller auth.Session, params params.ListParticipantsParams) ([]db.Participant, int64, error) {
	if _, err := authorizeEvent(ctx, s.queries, caller, params.EventID); err != nil {
		return nil, 0, err
	}
	section := helpers.UUIDPtrToNullableUUID(params.SectionID)
	status := helpers.StringToNullableText(params.Status)
	search := helpers.StringToNullableText(params.Search)

	participants, err := s.queries.ListEventParticipants(ctx, db.ListEventParticipantsParams{
		EventID:   params.EventID,
		Status:    status,
		SectionID: section,
		Search:    search,
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list participants: %w", err)
	}
	total, err := s.queries.CountEventParticipants(ctx, db.CountEventParticipantsParams{
		EventID:   params.EventID,
		Status:    status,
		SectionID: section,
		Search:    search,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return participants, total, nil
}

// TransferParticipants moves participants between sections of one event.
// Either every move is applied or none is.
func (s *ParticipantService) TransferParticipants(ctx context.Context, caller auth.Session, eventID uuid.UUID, moves []params.TransferParams) ([]db.Participant, error) {
	if len(moves) == 0 {
		return nil, validationError("no transfers given")
	}
	seen := make(map[uuid.UUID]bool, len(moves))
	for _, m := range moves {
		if seen[m.ParticipantID] {
			return nil, validationError("participant %s is transferred more than once", m.ParticipantID)
		}
		seen[m.ParticipantID] = true
	}
	if _, err := authorizeEvent(ctx, s.queries, caller, eventID); err != nil {
		return nil, err
	}

	var moved []db.Participant
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		moved = moved[:0]
		sections := make(map[uuid.UUID]db.EventSection)
		// net change in occupancy per section
		delta := make(map[uuid.UUID]int64)
		participants := make([]db.Participant, len(moves))

		for i, m := range moves {
			p, err := q.GetParticipant(ctx, m.ParticipantID)
			if err != nil {
				return notFound(err, ErrParticipantNotFound, "get participant")
			}
			if p.EventID != eventID {
				return validationError("participant %s does not belong to this event", p.ID)
			}
			if _, ok := sections[m.NewSectionID]; !ok {
				section, err := q.GetEventSectionForUpdate(ctx, m.NewSectionID)
				if err != nil {
					return notFound(err, ErrSectionNotFound, "lock section")
				}
				if section.EventID != eventID {
					return validationError("section %s does not belong to this event", section.ID)
				}
				sections[m.NewSectionID] = section
			}
			participants[i] = p

			current := helpers.NullableUUIDToPtr(p.SectionID)
			if p.Status == constants.ParticipantStatusCancelled || (current != nil && *current == m.NewSectionID) {
				continue
			}
			delta[m.NewSectionID]++
			if current != nil {
				delta[*current]--
			}
		}

		for id, change := range delta {
			section, ok := sections[id]
			if !ok || change <= 0 || !section.MaxParticipants.Valid {
				continue
			}
			occupied, err := q.CountSectionParticipants(ctx, helpers.UUIDToNullableUUID(id))
			if err != nil {
				return fmt.Errorf("failed to count section participants: %w", err)
			}
			if occupied+change > int64(section.MaxParticipants.Int32) {
				return fmt.Errorf("%w: %s holds at most %d participants", ErrSectionFull, section.Name, section.MaxParticipants.Int32)
			}
		}

		for i, m := range moves {
			updated, err := q.UpdateParticipantSection(ctx, db.UpdateParticipantSectionParams{
				ID:        participants[i].ID,
				SectionID: helpers.UUIDToNullableUUID(m.NewSectionID),
			})
			if err != nil {
				return fmt.Errorf("failed to move participant %s: %w", participants[i].ID, err)
			}
			moved = append(moved, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Participants transferred",
		zap.String("event_id", eventID.String()),
		zap.Int("count", len(moved)))
	return moved, nil
}

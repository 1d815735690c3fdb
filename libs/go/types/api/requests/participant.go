package requests

// ParticipantTransfer moves one participant to another section
type ParticipantTransfer struct {
	ParticipantID string `json:"participantId"`
	NewSectionID  string `json:"newSectionId"`
}

// TransferParticipantsRequest accepts either a single move or a batch of moves
type TransferParticipantsRequest struct {
	ParticipantID string                `json:"participantId,omitempty"`
	NewSectionID  string                `json:"newSectionId,omitempty"`
	Transfers     []ParticipantTransfer `json:"transfers,omitempty"`
}

// Moves normalizes both request shapes into a list.
func (r TransferParticipantsRequest) Moves() []ParticipantTransfer {
	if len(r.Transfers) > 0 {
		return r.Transfers
	}
	if r.ParticipantID == "" && r.NewSectionID == "" {
		return nil
	}
	return []ParticipantTransfer{{ParticipantID: r.ParticipantID, NewSectionID: r.NewSectionID}}
}

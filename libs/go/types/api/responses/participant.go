package responses

import "github.com/chessclub/club-events-api/libs/go/types/business"

// ParticipantResponse represents a registered participant
type ParticipantResponse struct {
	ID          string              `json:"id"`
	Object      string              `json:"object"`
	BookingID   string              `json:"booking_id"`
	EventID     string              `json:"event_id"`
	SectionID   *string             `json:"section_id,omitempty"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Email       string              `json:"email,omitempty"`
	DateOfBirth string              `json:"date_of_birth,omitempty"`
	PlayerID    string              `json:"player_id,omitempty"`
	Status      string              `json:"status"`
	CustomData  business.CustomData `json:"custom_data,omitempty" swaggertype:"object"`
	CreatedAt   int64               `json:"created_at"`
}

// TransferResponse reports how many participants were moved
type TransferResponse struct {
	Success     bool                  `json:"success"`
	Transferred int                   `json:"transferred"`
	Data        []ParticipantResponse `json:"data"`
}

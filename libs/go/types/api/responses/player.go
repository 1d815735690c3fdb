package responses

// PlayerResponse is a rated player record from the ratings service
type PlayerResponse struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Federation string `json:"federation,omitempty"`
	Rating     *int   `json:"rating,omitempty"`
	Title      string `json:"title,omitempty"`
}

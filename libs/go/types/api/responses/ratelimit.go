package responses

// RateLimitStatus reports one limiter's counters for the caller
type RateLimitStatus struct {
	Identifier    string `json:"identifier"`
	Limit         int    `json:"limit"`
	Remaining     int    `json:"remaining"`
	ResetAt       int64  `json:"reset_at"`
	WindowSeconds int    `json:"window_seconds"`
}

// RateLimitStatusResponse is keyed by limiter name ("default", "strict")
type RateLimitStatusResponse struct {
	Limiters map[string]RateLimitStatus `json:"limiters"`
}

package ratings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpClient "github.com/chessclub/club-events-api/libs/go/client/http"
	"github.com/chessclub/club-events-api/libs/go/interfaces"
	"github.com/chessclub/club-events-api/libs/go/types/business"
)

const (
	defaultTimeout = 5 * time.Second
	userAgent      = "club-events-api"
)

// ErrPlayerNotFound is returned when the ratings service has no such player.
var ErrPlayerNotFound = errors.New("player not found")

var _ interfaces.RatingsClient = (*Client)(nil)

// Client talks to the federation ratings HTTP API.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

type playerPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Federation string `json:"federation"`
	Rating     *int   `json:"rating"`
	Title      string `json:"title"`
}

// NewClient creates a ratings client for baseURL. An empty apiKey sends no
// Authorization header.
func NewClient(baseURL, apiKey string, options ...httpClient.ClientOption) *Client {
	opts := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
		httpClient.WithDefaultHeader("User-Agent", userAgent),
	}, options...)
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// GetPlayer fetches one rated player by federation id
func (c *Client) GetPlayer(ctx context.Context, playerID string) (*business.RatedPlayer, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("player id is required")
	}

	var requestOptions []httpClient.RequestOption
	if c.apiKey != "" {
		requestOptions = append(requestOptions, httpClient.WithBearerToken(c.apiKey))
	}

	var payload playerPayload
	err := c.httpClient.GetJSON(ctx, "/players/"+url.PathEscape(playerID), &payload, requestOptions...)
	if err != nil {
		if httpClient.IsStatus(err, http.StatusNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}

	player := &business.RatedPlayer{
		PlayerID:   payload.ID,
		Name:       payload.Name,
		Federation: payload.Federation,
		Rating:     payload.Rating,
		Title:      payload.Title,
	}
	if player.PlayerID == "" {
		player.PlayerID = playerID
	}
	return player, nil
}

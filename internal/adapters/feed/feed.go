// Package feed fetches dashboard data from the upstream scoring API.
//
// The feed is the black-box producer for the presentation pipeline: it
// periodically supplies fresh immutable snapshots of score, team, and game
// data. All computation over those payloads happens downstream.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jfagan/gloomboard/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// Client talks to the upstream dashboard API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Client) {
		if c != nil {
			f.httpc = c
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Client) {
		if d > 0 {
			f.httpc.Timeout = d
		}
	}
}

// NewClient creates a feed client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Payload envelopes, mirroring the upstream JSON shapes.

type moodPayload struct {
	Success   bool                           `json:"success"`
	Score     float64                        `json:"score"`
	Level     string                         `json:"level"`
	Emoji     string                         `json:"emoji"`
	Timestamp string                         `json:"timestamp"`
	Breakdown map[string]model.CategoryScore `json:"breakdown"`
}

type teamsPayload struct {
	Success bool         `json:"success"`
	Teams   []model.Team `json:"teams"`
}

type gamesPayload struct {
	Success bool         `json:"success"`
	Games   []model.Game `json:"games"`
}

type eventsPayload struct {
	Success bool         `json:"success"`
	Events  []model.Game `json:"events"`
}

// Mood fetches the aggregate score report.
func (c *Client) Mood(ctx context.Context) (model.ScoreReport, error) {
	var p moodPayload
	if err := c.getJSON(ctx, "/api/depression", &p); err != nil {
		return model.ScoreReport{}, err
	}
	return model.ScoreReport{
		Score:     p.Score,
		Level:     p.Level,
		Emoji:     p.Emoji,
		Timestamp: p.Timestamp,
		Breakdown: p.Breakdown,
	}, nil
}

// Teams fetches the favorite team list.
func (c *Client) Teams(ctx context.Context) ([]model.Team, error) {
	var p teamsPayload
	if err := c.getJSON(ctx, "/api/teams", &p); err != nil {
		return nil, err
	}
	return p.Teams, nil
}

// RecentGames fetches recent results, most recent first.
func (c *Client) RecentGames(ctx context.Context) ([]model.Game, error) {
	var p gamesPayload
	if err := c.getJSON(ctx, "/api/recent-games", &p); err != nil {
		return nil, err
	}
	return p.Games, nil
}

// UpcomingEvents fetches upcoming fixtures.
func (c *Client) UpcomingEvents(ctx context.Context) ([]model.Game, error) {
	var p eventsPayload
	if err := c.getJSON(ctx, "/api/upcoming-events", &p); err != nil {
		return nil, err
	}
	return p.Events, nil
}

// Refresh asks the upstream service to recompute its data.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/refresh", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: upstream returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

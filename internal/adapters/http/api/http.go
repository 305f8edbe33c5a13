// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/jfagan/gloomboard/internal/app"
	"github.com/jfagan/gloomboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Mood(ctx context.Context) (types.MoodView, error)
	TeamsByActivity(ctx context.Context) ([]types.TeamView, error)
	TeamsBySport(ctx context.Context) ([]types.SportGroupView, error)
	RecentGames(ctx context.Context) ([]types.GameView, error)
	UpcomingEvents(ctx context.Context) ([]types.GameView, error)
	TriggerRefresh(ctx context.Context) error
}

// StatsProvider exposes service statistics for the /stats endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	moodHandler    *MoodHandler
	teamsHandler   *TeamsHandler
	gamesHandler   *GamesHandler
	refreshHandler *RefreshHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		moodHandler:    NewMoodHandler(deps),
		teamsHandler:   NewTeamsHandler(deps),
		gamesHandler:   NewGamesHandler(deps),
		refreshHandler: NewRefreshHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/mood", MetricsMiddleware(s.moodHandler.HandleGetMood, "mood"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/teams/grouped", MetricsMiddleware(s.teamsHandler.HandleGetGrouped, "teams_grouped"))
	mux.HandleFunc("/games", MetricsMiddleware(s.gamesHandler.HandleGetGames, "games"))
	mux.HandleFunc("/upcoming", MetricsMiddleware(s.gamesHandler.HandleGetUpcoming, "upcoming"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandlePostRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeViewOrError translates the common read-path outcome: a missing
// snapshot becomes 503 so clients can retry after the next refresh.
func writeViewOrError(w http.ResponseWriter, v any, err error) {
	if err != nil {
		if errors.Is(err, service.ErrNoSnapshot) {
			writeError(w, http.StatusServiceUnavailable, "no_data", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

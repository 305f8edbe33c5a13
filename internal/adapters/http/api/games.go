package api

import "net/http"

// GamesHandler serves recent results and upcoming events.
type GamesHandler struct {
	deps Dependencies
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps Dependencies) *GamesHandler {
	return &GamesHandler{deps: deps}
}

// HandleGetGames responds to GET /games with recent results.
func (h *GamesHandler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	games, err := h.deps.RecentGames(r.Context())
	writeViewOrError(w, games, err)
}

// HandleGetUpcoming responds to GET /upcoming with scheduled events.
func (h *GamesHandler) HandleGetUpcoming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	events, err := h.deps.UpcomingEvents(r.Context())
	writeViewOrError(w, events, err)
}

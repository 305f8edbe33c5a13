package api

import "net/http"

// TeamsHandler serves team listings.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeams responds to GET /teams with teams ordered by recent activity.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	teams, err := h.deps.TeamsByActivity(r.Context())
	writeViewOrError(w, teams, err)
}

// HandleGetGrouped responds to GET /teams/grouped with teams bucketed by sport.
func (h *TeamsHandler) HandleGetGrouped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	groups, err := h.deps.TeamsBySport(r.Context())
	writeViewOrError(w, groups, err)
}

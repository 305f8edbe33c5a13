package api

import "net/http"

// RefreshHandler triggers an out-of-band snapshot refresh.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandlePostRefresh responds to POST /refresh. The refresh itself is
// synchronous but failure of the upstream recompute is not fatal, so a
// successful call answers 202.
func (h *RefreshHandler) HandlePostRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	if err := h.deps.TriggerRefresh(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "refresh_failed", err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"})
}

package api

import "net/http"

// MoodHandler serves the aggregate mood view.
type MoodHandler struct {
	deps Dependencies
}

// NewMoodHandler creates a new mood handler.
func NewMoodHandler(deps Dependencies) *MoodHandler {
	return &MoodHandler{deps: deps}
}

// HandleGetMood responds to GET /mood with the current mood view.
func (h *MoodHandler) HandleGetMood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	view, err := h.deps.Mood(r.Context())
	writeViewOrError(w, view, err)
}

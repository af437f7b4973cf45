package api

import "net/http"

// MatchupsHandler handles scored schedule requests.
type MatchupsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewMatchupsHandler creates a new matchups handler.
func NewMatchupsHandler(deps Dependencies, maxLimit int) *MatchupsHandler {
	return &MatchupsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetMatchups handles GET /matchups?limit=N&tier=LABEL requests.
// Matchups keep their overall rank when filtered by tier.
func (h *MatchupsHandler) HandleGetMatchups(w http.ResponseWriter, r *http.Request) {
	n, err := parseLimit(r, h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	entries, err := h.deps.Matchups(r.Context(), n, r.URL.Query().Get("tier"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

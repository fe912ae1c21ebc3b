package httpadapter

import (
	"net/http"
)

// handleListCampaigns returns the pacing view of every campaign being paced.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list campaigns error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handlePacing returns the current throttle, multiplier and spend of one
// campaign. Unknown campaigns result in HTTP 404.
func (h *Handler) handlePacing(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Pacing(r.Context(), id)
	if err != nil {
		h.writeError(w, "pacing view error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleAnalyze returns a diagnostic analysis of one campaign's pacing.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	a, err := h.svc.Analyze(r.Context(), id)
	if err != nil {
		h.writeError(w, "analyze error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// handleResume lifts an anomaly hold. Campaigns that are not on hold
// result in HTTP 409.
func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Resume(r.Context(), id); err != nil {
		h.writeError(w, "resume error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

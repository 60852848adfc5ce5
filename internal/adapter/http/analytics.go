package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/apperr"
)

// maxComparedCampaigns caps the compare endpoint's input size.
const maxComparedCampaigns = 10

func (h *Handler) writeNotFound(w http.ResponseWriter, r *http.Request, resource, id string) {
	h.writeError(w, r, apperr.NotFound(resource, id))
}

func (h *Handler) handleCampaignAnalytics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := h.analytics.CampaignAnalytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if report == nil {
		h.writeNotFound(w, r, "campaign", id)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCampaignTrends(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	period := 30
	if raw := r.URL.Query().Get("period"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, r, apperr.Validation("period must be a positive number of days"))
			return
		}
		period = n
	}
	report, err := h.analytics.CampaignTrends(r.Context(), id, period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if report == nil {
		h.writeNotFound(w, r, "campaign", id)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCampaignCompare(w http.ResponseWriter, r *http.Request) {
	var p struct {
		CampaignIDs []string `json:"campaignIds"`
	}
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(p.CampaignIDs) == 0 || len(p.CampaignIDs) > maxComparedCampaigns {
		h.writeError(w, r, apperr.Validation("campaignIds must contain between 1 and %d ids", maxComparedCampaigns))
		return
	}
	report, err := h.analytics.CompareCampaigns(r.Context(), p.CampaignIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

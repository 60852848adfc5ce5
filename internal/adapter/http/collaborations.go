package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

type collaborationResponse struct {
	ID            string                  `json:"id"`
	CampaignID    string                  `json:"campaignId"`
	InfluencerID  string                  `json:"influencerId"`
	Status        string                  `json:"status"`
	AgreedPayment float64                 `json:"agreedPayment"`
	Performance   domain.PerformanceStats `json:"performance"`
	InvitedAt     time.Time               `json:"invitedAt"`
	AcceptedAt    *time.Time              `json:"acceptedAt,omitempty"`
	CompletedAt   *time.Time              `json:"completedAt,omitempty"`
}

func toCollaborationResponse(c *domain.Collaboration) collaborationResponse {
	return collaborationResponse{
		ID:            c.ID,
		CampaignID:    c.CampaignID,
		InfluencerID:  c.InfluencerID,
		Status:        string(c.Status),
		AgreedPayment: c.AgreedPayment,
		Performance:   c.Performance,
		InvitedAt:     c.InvitedAt,
		AcceptedAt:    c.AcceptedAt,
		CompletedAt:   c.CompletedAt,
	}
}

func (h *Handler) handleCollaborationInvite(w http.ResponseWriter, r *http.Request) {
	var p struct {
		InfluencerID  string  `json:"influencerId"`
		AgreedPayment float64 `json:"agreedPayment"`
	}
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	col, err := h.collaborations.Invite(r.Context(), port.InviteInput{
		CampaignID:    chi.URLParam(r, "id"),
		InfluencerID:  p.InfluencerID,
		AgreedPayment: p.AgreedPayment,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCollaborationResponse(col))
}

func (h *Handler) handleCollaborationList(w http.ResponseWriter, r *http.Request) {
	list, err := h.collaborations.ListByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]collaborationResponse, 0, len(list))
	for i := range list {
		out = append(out, toCollaborationResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCollaborationGet(w http.ResponseWriter, r *http.Request) {
	col, err := h.collaborations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCollaborationResponse(col))
}

// collaborationAction returns a handler running one named lifecycle
// action. The complete action reads an optional performance payload from
// the body.
func (h *Handler) collaborationAction(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var perf *domain.PerformanceStats
		if action == "complete" && r.ContentLength > 0 {
			var p struct {
				Performance domain.PerformanceStats `json:"performance"`
			}
			if err := decodeJSON(r, &p); err != nil {
				h.writeError(w, r, err)
				return
			}
			perf = &p.Performance
		}
		col, err := h.collaborations.PerformAction(r.Context(), chi.URLParam(r, "id"),
			domain.CollaborationAction(action), perf)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, toCollaborationResponse(col))
	}
}

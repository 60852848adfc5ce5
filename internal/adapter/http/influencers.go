package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

type influencerResponse struct {
	ID           string                    `json:"id"`
	FullName     string                    `json:"fullName"`
	Handle       string                    `json:"handle"`
	Verified     bool                      `json:"verified"`
	QualityScore int                       `json:"qualityScore"`
	Audiences    []domain.PlatformAudience `json:"audiences"`
	Categories   []string                  `json:"categories"`
	Availability string                    `json:"availability"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

func toInfluencerResponse(i *domain.Influencer) influencerResponse {
	return influencerResponse{
		ID:           i.ID,
		FullName:     i.FullName,
		Handle:       i.Handle,
		Verified:     i.Verified,
		QualityScore: i.QualityScore,
		Audiences:    i.Audiences,
		Categories:   i.Categories,
		Availability: string(i.Availability),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (h *Handler) handleInfluencerCreate(w http.ResponseWriter, r *http.Request) {
	var p struct {
		FullName     string                    `json:"fullName"`
		Handle       string                    `json:"handle"`
		Verified     bool                      `json:"verified"`
		QualityScore int                       `json:"qualityScore"`
		Audiences    []domain.PlatformAudience `json:"audiences"`
		Categories   []string                  `json:"categories"`
	}
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	inf, err := h.influencers.Create(r.Context(), port.CreateInfluencerInput{
		FullName:     p.FullName,
		Handle:       p.Handle,
		Verified:     p.Verified,
		QualityScore: p.QualityScore,
		Audiences:    p.Audiences,
		Categories:   p.Categories,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toInfluencerResponse(inf))
}

func (h *Handler) handleInfluencerList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.InfluencerFilter{
		Platform: q.Get("platform"),
		Category: q.Get("category"),
	}
	if s := q.Get("availability"); s != "" {
		availability := domain.Availability(s)
		f.Availability = &availability
	}
	f.Limit, f.Offset = pagination(q.Get("limit"), q.Get("offset"))
	list, err := h.influencers.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]influencerResponse, 0, len(list))
	for i := range list {
		out = append(out, toInfluencerResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleInfluencerGet(w http.ResponseWriter, r *http.Request) {
	inf, err := h.influencers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toInfluencerResponse(inf))
}

func (h *Handler) handleInfluencerUpdate(w http.ResponseWriter, r *http.Request) {
	var p struct {
		FullName     *string                   `json:"fullName"`
		Verified     *bool                     `json:"verified"`
		QualityScore *int                      `json:"qualityScore"`
		Audiences    []domain.PlatformAudience `json:"audiences"`
		Categories   []string                  `json:"categories"`
		Availability *string                   `json:"availability"`
	}
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	in := port.UpdateInfluencerInput{
		FullName:     p.FullName,
		Verified:     p.Verified,
		QualityScore: p.QualityScore,
		Audiences:    p.Audiences,
		Categories:   p.Categories,
	}
	if p.Availability != nil {
		availability := domain.Availability(*p.Availability)
		in.Availability = &availability
	}
	inf, err := h.influencers.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toInfluencerResponse(inf))
}

func (h *Handler) handleInfluencerAnalytics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := h.analytics.InfluencerAnalytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if report == nil {
		h.writeNotFound(w, r, "influencer", id)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

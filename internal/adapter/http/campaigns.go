package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

type campaignPayload struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TotalBudget float64    `json:"totalBudget"`
	Platforms   []string   `json:"platforms"`
	Keywords    []string   `json:"keywords"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type campaignResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	TotalBudget     float64    `json:"totalBudget"`
	AllocatedBudget float64    `json:"allocatedBudget"`
	SpentBudget     float64    `json:"spentBudget"`
	Platforms       []string   `json:"platforms"`
	Keywords        []string   `json:"keywords"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	LaunchDate      *time.Time `json:"launchDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Status:          string(c.Status),
		TotalBudget:     c.TotalBudget,
		AllocatedBudget: c.AllocatedBudget,
		SpentBudget:     c.SpentBudget,
		Platforms:       c.Platforms,
		Keywords:        c.Keywords,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		LaunchDate:      c.LaunchDate,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var p campaignPayload
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	in := port.CreateCampaignInput{
		Name:        p.Name,
		Description: p.Description,
		TotalBudget: p.TotalBudget,
		Platforms:   p.Platforms,
		Keywords:    p.Keywords,
	}
	if p.StartDate != nil {
		in.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		in.EndDate = *p.EndDate
	}
	c, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f port.CampaignFilter
	if s := q.Get("status"); s != "" {
		status := domain.CampaignStatus(s)
		f.Status = &status
	}
	f.Limit, f.Offset = pagination(q.Get("limit"), q.Get("offset"))
	list, err := h.campaigns.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		TotalBudget *float64   `json:"totalBudget"`
		Platforms   []string   `json:"platforms"`
		Keywords    []string   `json:"keywords"`
		StartDate   *time.Time `json:"startDate"`
		EndDate     *time.Time `json:"endDate"`
	}
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), port.UpdateCampaignInput{
		Name:        p.Name,
		Description: p.Description,
		TotalBudget: p.TotalBudget,
		Platforms:   p.Platforms,
		Keywords:    p.Keywords,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// campaignAction returns a handler running one named lifecycle action.
func (h *Handler) campaignAction(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.campaigns.PerformAction(r.Context(), chi.URLParam(r, "id"), domain.CampaignAction(action))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

func (h *Handler) handleCampaignMatches(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, r, apperr.Validation("limit must be a positive integer"))
			return
		}
		limit = n
	}
	matches, err := h.matching.BestMatches(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) handleMatchScore(w http.ResponseWriter, r *http.Request) {
	result, err := h.matching.Score(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "influencerId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func pagination(limitRaw, offsetRaw string) (limit, offset int) {
	if n, err := strconv.Atoi(limitRaw); err == nil && n > 0 {
		limit = n
	}
	if n, err := strconv.Atoi(offsetRaw); err == nil && n > 0 {
		offset = n
	}
	return limit, offset
}

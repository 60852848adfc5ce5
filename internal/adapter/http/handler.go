package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecase ports and a
// structured logger, and registers all routes on a chi.Router.
type Handler struct {
	campaigns      port.CampaignUseCase
	influencers    port.InfluencerUseCase
	collaborations port.CollaborationUseCase
	analytics      port.AnalyticsUseCase
	matching       port.MatchingUseCase
	notifications  port.NotificationUseCase
	logger         *slog.Logger
	dev            bool
	router         chi.Router
}

// NewHandler creates a handler with all routes configured. The dev flag
// controls whether unexpected errors expose their message in responses.
func NewHandler(
	campaigns port.CampaignUseCase,
	influencers port.InfluencerUseCase,
	collaborations port.CollaborationUseCase,
	analytics port.AnalyticsUseCase,
	matching port.MatchingUseCase,
	notifications port.NotificationUseCase,
	logger *slog.Logger,
	dev bool,
) *Handler {
	h := &Handler{
		campaigns:      campaigns,
		influencers:    influencers,
		collaborations: collaborations,
		analytics:      analytics,
		matching:       matching,
		notifications:  notifications,
		logger:         logger,
		dev:            dev,
	}
	r := chi.NewRouter()
	r.Use(h.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignCreate)
			r.Get("/", h.handleCampaignList)
			r.Post("/compare", h.handleCampaignCompare)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleCampaignGet)
				r.Put("/", h.handleCampaignUpdate)
				r.Post("/activate", h.campaignAction("activate"))
				r.Post("/pause", h.campaignAction("pause"))
				r.Post("/resume", h.campaignAction("resume"))
				r.Post("/complete", h.campaignAction("complete"))
				r.Post("/cancel", h.campaignAction("cancel"))
				r.Get("/analytics", h.handleCampaignAnalytics)
				r.Get("/trends", h.handleCampaignTrends)
				r.Get("/matches", h.handleCampaignMatches)
				r.Get("/matches/{influencerId}", h.handleMatchScore)
				r.Post("/collaborations", h.handleCollaborationInvite)
				r.Get("/collaborations", h.handleCollaborationList)
			})
		})
		r.Route("/influencers", func(r chi.Router) {
			r.Post("/", h.handleInfluencerCreate)
			r.Get("/", h.handleInfluencerList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleInfluencerGet)
				r.Put("/", h.handleInfluencerUpdate)
				r.Get("/analytics", h.handleInfluencerAnalytics)
			})
		})
		r.Route("/collaborations/{id}", func(r chi.Router) {
			r.Get("/", h.handleCollaborationGet)
			r.Post("/accept", h.collaborationAction("accept"))
			r.Post("/decline", h.collaborationAction("decline"))
			r.Post("/start", h.collaborationAction("start"))
			r.Post("/complete", h.collaborationAction("complete"))
			r.Post("/cancel", h.collaborationAction("cancel"))
		})
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.handleNotificationList)
			r.Post("/{id}/read", h.handleNotificationRead)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

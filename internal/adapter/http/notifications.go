package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trendlink/internal/apperr"
	"trendlink/internal/core/domain"
)

type notificationResponse struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Kind:        string(n.Kind),
		Message:     n.Message,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (h *Handler) handleNotificationList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recipient := q.Get("recipient")
	if recipient == "" {
		h.writeError(w, r, apperr.Validation("recipient query parameter is required"))
		return
	}
	unreadOnly := q.Get("unread") == "true"
	list, err := h.notifications.ListByRecipient(r.Context(), recipient, unreadOnly)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]notificationResponse, 0, len(list))
	for i := range list {
		out = append(out, toNotificationResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

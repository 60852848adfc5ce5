package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trendlink/internal/core/domain"
	"trendlink/internal/core/port"
)

// Notifier writes in-app notifications for lifecycle events. It is
// constructed once in main and injected into the services that emit
// notifications; a failed write is logged and never fails the action that
// triggered it.
type Notifier struct {
	repo   port.NotificationRepository
	logger *slog.Logger
}

// NewNotifier creates a notifier backed by the given repository.
func NewNotifier(repo port.NotificationRepository, logger *slog.Logger) *Notifier {
	return &Notifier{repo: repo, logger: logger}
}

// Notify records a notification for the recipient.
func (n *Notifier) Notify(ctx context.Context, recipientID string, kind domain.NotificationKind, message string) {
	note := &domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Kind:        kind,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}
	if err := n.repo.Create(ctx, note); err != nil {
		n.logger.Error("notification write failed",
			slog.String("recipient", recipientID),
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	}
}

// NotificationService exposes stored notifications to the HTTP layer.
type NotificationService struct {
	repo port.NotificationRepository
}

// NewNotificationService creates the read side for notifications.
func NewNotificationService(repo port.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListByRecipient returns a recipient's notifications, optionally unread
// only.
func (s *NotificationService) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, unreadOnly)
}

// MarkRead acknowledges a notification.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

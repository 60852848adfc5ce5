package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendlink/internal/core/domain"
)

// NotificationRepository implements port.NotificationRepository using
// pgxpool.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a new repository instance.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create inserts a notification.
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO notifications
(id, recipient_id, kind, message, read, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		n.ID, n.RecipientID, n.Kind, n.Message, n.Read, n.CreatedAt)
	return err
}

// ListByRecipient returns a recipient's notifications, newest first.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `SELECT id, recipient_id, kind, message, read, created_at
FROM notifications WHERE recipient_id = $1`
	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var n domain.Notification
		err := row.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt)
		return n, err
	})
}

// MarkRead acknowledges a notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	return err
}

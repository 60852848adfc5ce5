package domain

import "time"

// NotificationKind names the event a notification reports.
type NotificationKind string

const (
	NotificationCollaborationInvited   NotificationKind = "collaboration_invited"
	NotificationCollaborationAccepted  NotificationKind = "collaboration_accepted"
	NotificationCollaborationDeclined  NotificationKind = "collaboration_declined"
	NotificationCollaborationCompleted NotificationKind = "collaboration_completed"
	NotificationCollaborationCancelled NotificationKind = "collaboration_cancelled"
)

// Notification is an in-app message for a client or influencer. Delivery
// channels beyond the stored record (email, push) are out of scope.
type Notification struct {
	ID          string
	RecipientID string
	Kind        NotificationKind
	Message     string
	Read        bool
	CreatedAt   time.Time
}

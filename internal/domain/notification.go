package domain

import "time"

// NotificationType enumerates severities for dashboard notifications.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a client-side alert. Notifications are never fetched from
// the API; they are created locally and mutated only to flip Read.
type Notification struct {
	ID        string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}

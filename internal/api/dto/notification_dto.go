package dto

import (
	"time"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

// NotificationResponse is the wire shape for notifications.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Message   string                  `json:"message"`
	Type      domain.NotificationType `json:"type"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NotificationListResponse carries notifications newest-first plus the
// unread counter.
type NotificationListResponse struct {
	Data        []NotificationResponse `json:"data"`
	UnreadCount int                    `json:"unreadCount"`
}

// NewNotificationResponse maps a domain notification.
func NewNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

// applyNotifications is the exhaustive handler for the notifications slice.
// Notifications are ordered newest-first.
func (s *Store) applyNotifications(action NotificationsAction) {
	switch a := action.(type) {
	case NotificationAdded:
		notification := domain.Notification{
			ID:        uuid.NewString(),
			Message:   a.Message,
			Type:      a.Type,
			Read:      false,
			CreatedAt: time.Now(),
		}
		s.notifications.Notifications = append(
			[]domain.Notification{notification}, s.notifications.Notifications...)
		s.notifications.UnreadCount++
	case NotificationRead:
		for i := range s.notifications.Notifications {
			n := &s.notifications.Notifications[i]
			if n.ID == a.ID {
				if !n.Read {
					n.Read = true
					s.notifications.UnreadCount--
				}
				break
			}
		}
	case AllNotificationsRead:
		for i := range s.notifications.Notifications {
			s.notifications.Notifications[i].Read = true
		}
		s.notifications.UnreadCount = 0
	case NotificationRemoved:
		for i := range s.notifications.Notifications {
			if s.notifications.Notifications[i].ID == a.ID {
				if !s.notifications.Notifications[i].Read {
					s.notifications.UnreadCount--
				}
				s.notifications.Notifications = append(
					s.notifications.Notifications[:i],
					s.notifications.Notifications[i+1:]...)
				break
			}
		}
	case NotificationsCleared:
		s.notifications = initialNotificationsState()
	}
}

// AddNotification raises a local notification.
func (s *Store) AddNotification(message string, kind domain.NotificationType) {
	s.Dispatch(NotificationAdded{Message: message, Type: kind})
}

// MarkNotificationRead flips one notification to read.
func (s *Store) MarkNotificationRead(id string) {
	s.Dispatch(NotificationRead{ID: id})
}

// MarkAllNotificationsRead flips every notification to read.
func (s *Store) MarkAllNotificationsRead() {
	s.Dispatch(AllNotificationsRead{})
}

// RemoveNotification drops one notification.
func (s *Store) RemoveNotification(id string) {
	s.Dispatch(NotificationRemoved{ID: id})
}

// ClearNotifications drops everything.
func (s *Store) ClearNotifications() {
	s.Dispatch(NotificationsCleared{})
}

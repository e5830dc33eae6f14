package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/api/dto"
	"github.com/tivivek/support-ticketing-system/internal/store"
)

// NotificationsHandler exposes the local notification feed.
type NotificationsHandler struct {
	store *store.Store
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(st *store.Store) *NotificationsHandler {
	return &NotificationsHandler{store: st}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	snapshot := h.store.Notifications()
	items := make([]dto.NotificationResponse, 0, len(snapshot.Notifications))
	for _, n := range snapshot.Notifications {
		items = append(items, dto.NewNotificationResponse(n))
	}
	return c.JSON(dto.NotificationListResponse{
		Data:        items,
		UnreadCount: snapshot.UnreadCount,
	})
}

// MarkRead POST /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	h.store.MarkNotificationRead(c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// MarkAllRead POST /notifications/read-all.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	h.store.MarkAllNotificationsRead()
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Remove DELETE /notifications/:id.
func (h *NotificationsHandler) Remove(c *fiber.Ctx) error {
	h.store.RemoveNotification(c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Clear DELETE /notifications.
func (h *NotificationsHandler) Clear(c *fiber.Ctx) error {
	h.store.ClearNotifications()
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

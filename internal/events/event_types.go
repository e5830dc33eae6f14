package events

import (
	"time"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMessagePushed      EventType = "message_pushed"
	EventTicketPushed       EventType = "ticket_pushed"
	EventNotificationPushed EventType = "notification_pushed"
)

// Event represents a pushed server-side event delivered to the state store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MessagePushedPayload carries an inbound conversation message.
type MessagePushedPayload struct {
	Message domain.Message `json:"message"`
}

// TicketPushedPayload carries an externally updated ticket.
type TicketPushedPayload struct {
	Ticket domain.Ticket `json:"ticket"`
}

// NotificationPushedPayload carries an ad-hoc system notification.
type NotificationPushedPayload struct {
	Message string                  `json:"message"`
	Type    domain.NotificationType `json:"type"`
}

package domain

import "time"

// Message captures one entry in a ticket conversation. Messages are owned by
// exactly one ticket; per-ticket sequences are append-only and insertion order
// is chronological order.
type Message struct {
	ID          string
	TicketID    string
	Content     string
	CreatedAt   time.Time
	Sender      User
	Attachments []Attachment
}

// Attachment stores file metadata for a message. Immutable once created.
type Attachment struct {
	ID          string
	Filename    string
	URL         string
	Size        int64
	ContentType string
}

package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusPending    TicketStatus = "PENDING"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketStatusOrder lists statuses in workflow order, initial to terminal.
// The push simulator steps tickets along this ordering.
var TicketStatusOrder = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusPending,
	TicketStatusResolved,
	TicketStatusClosed,
}

// StatusIndex returns the position of s in TicketStatusOrder, or -1.
func StatusIndex(s TicketStatus) int {
	for i, candidate := range TicketStatusOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "LOW"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityCritical TicketPriority = "CRITICAL"
)

// Ticket is the aggregate for support requests. CreatedBy and AssignedTo hold
// denormalized user copies, not references; no integrity is enforced between
// a copy and the canonical user record.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   User
	AssignedTo  *User
	Tags        []string
}

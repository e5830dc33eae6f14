package store

import "github.com/tivivek/support-ticketing-system/internal/domain"

// AuthState mirrors the authenticated session.
type AuthState struct {
	User            *domain.User
	Token           string
	RefreshToken    string
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Pagination tracks the current page window over the filtered collection.
// Total and TotalPages always reflect the active filter combination.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Filters narrows the ticket listing. Zero values are inactive.
type Filters struct {
	Status     domain.TicketStatus
	Priority   domain.TicketPriority
	AssignedTo string
	Tags       []string
	Search     string
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f.Status == "" && f.Priority == "" && f.AssignedTo == "" &&
		len(f.Tags) == 0 && f.Search == ""
}

// Sorting holds the list sort key and direction.
type Sorting struct {
	SortBy    string
	SortOrder string
}

// TicketsState mirrors the ticket listing and the selected ticket.
type TicketsState struct {
	Tickets    []domain.Ticket
	Selected   *domain.Ticket
	Pagination Pagination
	Filters    Filters
	Sorting    Sorting
	IsLoading  bool
	Err        string
}

// MessagesState holds per-ticket ordered message sequences keyed by ticket id.
type MessagesState struct {
	ByTicket  map[string][]domain.Message
	IsLoading bool
	Err       string
}

// NotificationsState holds notifications newest-first plus the unread counter.
type NotificationsState struct {
	Notifications []domain.Notification
	UnreadCount   int
}

func initialAuthState() AuthState {
	return AuthState{}
}

func initialTicketsState() TicketsState {
	return TicketsState{
		Tickets: []domain.Ticket{},
		Pagination: Pagination{
			Page:     1,
			PageSize: 10,
		},
		Sorting: Sorting{
			SortBy:    "createdAt",
			SortOrder: "desc",
		},
	}
}

func initialMessagesState() MessagesState {
	return MessagesState{ByTicket: make(map[string][]domain.Message)}
}

func initialNotificationsState() NotificationsState {
	return NotificationsState{Notifications: []domain.Notification{}}
}

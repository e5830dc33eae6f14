package store

import "github.com/tivivek/support-ticketing-system/internal/domain"

// Action is a named state transition. The set of actions is closed: every
// action belongs to exactly one slice, and each slice applies its actions in
// a single exhaustive handler. Transitions are atomic and applied strictly in
// dispatch order.
type Action interface {
	isAction()
}

// AuthAction marks transitions owned by the auth slice.
type AuthAction interface {
	Action
	isAuthAction()
}

// TicketsAction marks transitions owned by the tickets slice.
type TicketsAction interface {
	Action
	isTicketsAction()
}

// MessagesAction marks transitions owned by the messages slice.
type MessagesAction interface {
	Action
	isMessagesAction()
}

// NotificationsAction marks transitions owned by the notifications slice.
type NotificationsAction interface {
	Action
	isNotificationsAction()
}

// --- auth slice ---

// LoginRequested starts the login request cycle.
type LoginRequested struct{}

// LoginSucceeded stores the authenticated session.
type LoginSucceeded struct {
	User         domain.User
	Token        string
	RefreshToken string
}

// LoginFailed records the login error.
type LoginFailed struct{ Err string }

// LoggedOut clears the session.
type LoggedOut struct{}

// CurrentUserRequested starts the profile fetch cycle.
type CurrentUserRequested struct{}

// CurrentUserLoaded stores the fetched profile.
type CurrentUserLoaded struct{ User domain.User }

// CurrentUserFailed records a profile fetch error and drops the session.
type CurrentUserFailed struct{ Err string }

// CredentialsRestored seeds the session from tokens persisted in a previous
// run. The user profile is not yet known at restore time.
type CredentialsRestored struct {
	Token        string
	RefreshToken string
}

func (LoginRequested) isAction()          {}
func (LoginRequested) isAuthAction()      {}
func (LoginSucceeded) isAction()          {}
func (LoginSucceeded) isAuthAction()      {}
func (LoginFailed) isAction()             {}
func (LoginFailed) isAuthAction()         {}
func (LoggedOut) isAction()               {}
func (LoggedOut) isAuthAction()           {}
func (CurrentUserRequested) isAction()    {}
func (CurrentUserRequested) isAuthAction() {}
func (CurrentUserLoaded) isAction()       {}
func (CurrentUserLoaded) isAuthAction()   {}
func (CurrentUserFailed) isAction()       {}
func (CurrentUserFailed) isAuthAction()   {}
func (CredentialsRestored) isAction()     {}
func (CredentialsRestored) isAuthAction() {}

// --- tickets slice ---

// TicketsRequested starts a list fetch cycle.
type TicketsRequested struct{}

// TicketsLoaded replaces the list slice with one fetched page.
type TicketsLoaded struct {
	Tickets    []domain.Ticket
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// TicketsFailed records a list fetch error.
type TicketsFailed struct{ Err string }

// TicketRequested starts a detail fetch cycle.
type TicketRequested struct{}

// TicketLoaded stores the fetched ticket as the selection.
type TicketLoaded struct{ Ticket domain.Ticket }

// TicketFailed records a detail fetch error.
type TicketFailed struct{ Err string }

// TicketCreated prepends a freshly created ticket to the list.
type TicketCreated struct{ Ticket domain.Ticket }

// TicketUpdated applies an updated ticket to both the matching list entry and
// the selection, keeping detail and list views consistent.
type TicketUpdated struct{ Ticket domain.Ticket }

// TicketSelected sets or clears the selection directly.
type TicketSelected struct{ Ticket *domain.Ticket }

// PageSet moves pagination to another page.
type PageSet struct{ Page int }

// PageSizeSet changes the page size and resets to the first page.
type PageSizeSet struct{ PageSize int }

// FiltersSet replaces the active filters and resets to the first page.
type FiltersSet struct{ Filters Filters }

// FiltersCleared drops all filters and resets to the first page.
type FiltersCleared struct{}

// SortingSet replaces the sort key and direction.
type SortingSet struct {
	SortBy    string
	SortOrder string
}

// ListParamsSet replaces pagination, filters and sorting in one transition.
// Used by the HTTP facade, where a single request carries the whole query.
type ListParamsSet struct {
	Page     int
	PageSize int
	Filters  Filters
	Sorting  Sorting
}

func (TicketsRequested) isAction()        {}
func (TicketsRequested) isTicketsAction() {}
func (TicketsLoaded) isAction()           {}
func (TicketsLoaded) isTicketsAction()    {}
func (TicketsFailed) isAction()           {}
func (TicketsFailed) isTicketsAction()    {}
func (TicketRequested) isAction()         {}
func (TicketRequested) isTicketsAction()  {}
func (TicketLoaded) isAction()            {}
func (TicketLoaded) isTicketsAction()     {}
func (TicketFailed) isAction()            {}
func (TicketFailed) isTicketsAction()     {}
func (TicketCreated) isAction()           {}
func (TicketCreated) isTicketsAction()    {}
func (TicketUpdated) isAction()           {}
func (TicketUpdated) isTicketsAction()    {}
func (TicketSelected) isAction()          {}
func (TicketSelected) isTicketsAction()   {}
func (PageSet) isAction()                 {}
func (PageSet) isTicketsAction()          {}
func (PageSizeSet) isAction()             {}
func (PageSizeSet) isTicketsAction()      {}
func (FiltersSet) isAction()              {}
func (FiltersSet) isTicketsAction()       {}
func (FiltersCleared) isAction()          {}
func (FiltersCleared) isTicketsAction()   {}
func (SortingSet) isAction()              {}
func (SortingSet) isTicketsAction()       {}
func (ListParamsSet) isAction()           {}
func (ListParamsSet) isTicketsAction()    {}

// --- messages slice ---

// MessagesRequested starts a thread fetch cycle.
type MessagesRequested struct{}

// MessagesLoaded replaces one ticket's message sequence.
type MessagesLoaded struct {
	TicketID string
	Messages []domain.Message
}

// MessagesFailed records a thread fetch error.
type MessagesFailed struct{ Err string }

// MessageAppended appends one message to its ticket's sequence, creating the
// sequence if absent. Used for both sent and pushed messages.
type MessageAppended struct{ Message domain.Message }

// MessagesCleared drops one ticket's cached sequence.
type MessagesCleared struct{ TicketID string }

func (MessagesRequested) isAction()         {}
func (MessagesRequested) isMessagesAction() {}
func (MessagesLoaded) isAction()            {}
func (MessagesLoaded) isMessagesAction()    {}
func (MessagesFailed) isAction()            {}
func (MessagesFailed) isMessagesAction()    {}
func (MessageAppended) isAction()           {}
func (MessageAppended) isMessagesAction()   {}
func (MessagesCleared) isAction()           {}
func (MessagesCleared) isMessagesAction()   {}

// --- notifications slice ---

// NotificationAdded prepends a new unread notification.
type NotificationAdded struct {
	Message string
	Type    domain.NotificationType
}

// NotificationRead flips one notification to read.
type NotificationRead struct{ ID string }

// AllNotificationsRead flips every notification to read.
type AllNotificationsRead struct{}

// NotificationRemoved drops one notification.
type NotificationRemoved struct{ ID string }

// NotificationsCleared drops everything.
type NotificationsCleared struct{}

func (NotificationAdded) isAction()                {}
func (NotificationAdded) isNotificationsAction()   {}
func (NotificationRead) isAction()                 {}
func (NotificationRead) isNotificationsAction()    {}
func (AllNotificationsRead) isAction()             {}
func (AllNotificationsRead) isNotificationsAction() {}
func (NotificationRemoved) isAction()              {}
func (NotificationRemoved) isNotificationsAction() {}
func (NotificationsCleared) isAction()             {}
func (NotificationsCleared) isNotificationsAction() {}

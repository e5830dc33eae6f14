package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/events"
	"github.com/tivivek/support-ticketing-system/internal/mock"
	"github.com/tivivek/support-ticketing-system/internal/session"
)

// Store is the process-wide normalized cache of auth, tickets, messages and
// notifications. Slices are mutated only through dispatched transitions;
// Dispatch applies them atomically, strictly in arrival order.
//
// In-flight API requests are neither coalesced nor cancelled: a slow earlier
// request that resolves after a later one overwrites newer state. Last write
// wins by completion time, not dispatch time.
type Store struct {
	mu            sync.Mutex
	auth          AuthState
	tickets       TicketsState
	messages      MessagesState
	notifications NotificationsState

	api      *mock.API
	sessions session.Store
	logger   *zap.Logger
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	API      *mock.API
	Sessions session.Store
	Logger   *zap.Logger
}

// New constructs a store with empty initial slices. Stores are explicitly
// constructed and injected, never package-level, so tests get isolated
// instances.
func New(deps Dependencies) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		auth:          initialAuthState(),
		tickets:       initialTicketsState(),
		messages:      initialMessagesState(),
		notifications: initialNotificationsState(),
		api:           deps.API,
		sessions:      deps.Sessions,
		logger:        logger,
	}
}

// Dispatch applies one transition. Transitions never partially apply; the
// lock is held for the whole application.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(action)
}

func (s *Store) apply(action Action) {
	switch a := action.(type) {
	case AuthAction:
		s.applyAuth(a)
	case TicketsAction:
		s.applyTickets(a)
	case MessagesAction:
		s.applyMessages(a)
	case NotificationsAction:
		s.applyNotifications(a)
	default:
		s.logger.Warn("unknown action", zap.String("type", fmt.Sprintf("%T", action)))
	}
}

// SubscribeTo registers the store as the consumer of pushed events, turning
// them into event-driven transitions. Pushed messages and ticket updates also
// raise an informational notification referencing the ticket.
func (s *Store) SubscribeTo(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventMessagePushed, func(_ context.Context, e events.Event) error {
		payload, ok := e.Payload.(events.MessagePushedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.Dispatch(MessageAppended{Message: payload.Message})
		s.Dispatch(NotificationAdded{
			Message: fmt.Sprintf("New message on ticket #%s", payload.Message.TicketID),
			Type:    domain.NotificationInfo,
		})
		return nil
	})
	dispatcher.Subscribe(events.EventTicketPushed, func(_ context.Context, e events.Event) error {
		payload, ok := e.Payload.(events.TicketPushedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.Dispatch(TicketUpdated{Ticket: payload.Ticket})
		s.Dispatch(NotificationAdded{
			Message: fmt.Sprintf("Ticket #%s status updated to %s", payload.Ticket.ID, payload.Ticket.Status),
			Type:    domain.NotificationInfo,
		})
		return nil
	})
	dispatcher.Subscribe(events.EventNotificationPushed, func(_ context.Context, e events.Event) error {
		payload, ok := e.Payload.(events.NotificationPushedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", e.Type)
		}
		s.Dispatch(NotificationAdded{Message: payload.Message, Type: payload.Type})
		return nil
	})
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.auth
	if s.auth.User != nil {
		user := *s.auth.User
		out.User = &user
	}
	return out
}

// Tickets returns a snapshot of the tickets slice.
func (s *Store) Tickets() TicketsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.tickets
	out.Tickets = append([]domain.Ticket(nil), s.tickets.Tickets...)
	if s.tickets.Selected != nil {
		selected := *s.tickets.Selected
		out.Selected = &selected
	}
	out.Filters.Tags = append([]string(nil), s.tickets.Filters.Tags...)
	return out
}

// CurrentTickets returns the tickets currently held in the list slice. The
// push simulator samples this to pick event targets.
func (s *Store) CurrentTickets() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Ticket(nil), s.tickets.Tickets...)
}

// Messages returns a snapshot of the messages slice.
func (s *Store) Messages() MessagesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.messages
	out.ByTicket = make(map[string][]domain.Message, len(s.messages.ByTicket))
	for ticketID, msgs := range s.messages.ByTicket {
		out.ByTicket[ticketID] = append([]domain.Message(nil), msgs...)
	}
	return out
}

// MessagesFor returns one ticket's cached sequence, empty if none.
func (s *Store) MessagesFor(ticketID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message(nil), s.messages.ByTicket[ticketID]...)
}

// Notifications returns a snapshot of the notifications slice.
func (s *Store) Notifications() NotificationsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	out.Notifications = append([]domain.Notification(nil), s.notifications.Notifications...)
	return out
}

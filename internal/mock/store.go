package mock

import (
	"fmt"
	"sync"

	"github.com/tivivek/support-ticketing-system/internal/domain"
)

// Store holds the seed collections backing the mock API. Records live for the
// process lifetime only; there is no persistence. All mutation goes through
// the API layer.
type Store struct {
	mu            sync.Mutex
	users         []domain.User
	passwordHash  string
	tickets       []domain.Ticket
	messages      map[string][]domain.Message
	nextTicketSeq int
}

// NewStore builds a store populated with the demo seed data.
func NewStore() *Store {
	s := &Store{
		messages: make(map[string][]domain.Message),
	}
	seed(s)
	s.nextTicketSeq = len(s.tickets) + 1
	return s
}

// UserByID looks a user up without simulated latency. Used by the auth
// middleware to resolve token subjects.
func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// AgentUser returns the first seeded agent, the fixed synthetic sender used
// for canned replies.
func (s *Store) AgentUser() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Role == domain.UserRoleAgent {
			return u
		}
	}
	return s.users[0]
}

// nextTicketID hands out a process-unique ticket id. The counter only moves
// forward, so ids are never reused after a delete.
func (s *Store) nextTicketID() string {
	id := fmt.Sprintf("ticket%d", s.nextTicketSeq)
	s.nextTicketSeq++
	return id
}

func (s *Store) findTicket(id string) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}

func copyTicket(t domain.Ticket) domain.Ticket {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	if t.AssignedTo != nil {
		assignee := *t.AssignedTo
		out.AssignedTo = &assignee
	}
	return out
}

func copyMessage(m domain.Message) domain.Message {
	out := m
	out.Attachments = append([]domain.Attachment(nil), m.Attachments...)
	return out
}

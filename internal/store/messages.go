package store

import (
	"context"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/mock"
)

// applyMessages is the exhaustive handler for the messages slice.
func (s *Store) applyMessages(action MessagesAction) {
	switch a := action.(type) {
	case MessagesRequested:
		s.messages.IsLoading = true
		s.messages.Err = ""
	case MessagesLoaded:
		s.messages.IsLoading = false
		s.messages.ByTicket[a.TicketID] = a.Messages
	case MessagesFailed:
		s.messages.IsLoading = false
		s.messages.Err = a.Err
	case MessageAppended:
		ticketID := a.Message.TicketID
		s.messages.ByTicket[ticketID] = append(s.messages.ByTicket[ticketID], a.Message)
	case MessagesCleared:
		delete(s.messages.ByTicket, a.TicketID)
	}
}

// FetchMessages loads a ticket's conversation into the cache.
func (s *Store) FetchMessages(ctx context.Context, ticketID string) error {
	s.Dispatch(MessagesRequested{})

	msgs, err := s.api.GetMessages(ctx, ticketID)
	if err != nil {
		s.Dispatch(MessagesFailed{Err: errorMessage(err, "Failed to fetch messages")})
		return err
	}
	s.Dispatch(MessagesLoaded{TicketID: ticketID, Messages: msgs})
	return nil
}

// SendMessage sends a message and appends it to the ticket's sequence.
func (s *Store) SendMessage(ctx context.Context, ticketID, content string, attachments []mock.AttachmentUpload) (*domain.Message, error) {
	msg, err := s.api.CreateMessage(ctx, ticketID, content, attachments)
	if err != nil {
		s.Dispatch(MessagesFailed{Err: errorMessage(err, "Failed to send message")})
		return nil, err
	}
	s.Dispatch(MessageAppended{Message: *msg})
	return msg, nil
}

// ClearMessages drops one ticket's cached conversation.
func (s *Store) ClearMessages(ticketID string) {
	s.Dispatch(MessagesCleared{TicketID: ticketID})
}

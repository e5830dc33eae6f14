package push

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/events"
)

// cannedResponses feed the new-message events.
var cannedResponses = []string{
	"Thanks for your patience. Our team is working on this issue.",
	"I've checked with the technical team and they're investigating this further.",
	"Could you provide more information about this issue?",
	"I've updated your ticket with the latest information from our development team.",
	"We should have this resolved soon. Thank you for your understanding.",
}

// systemNotifications feed the ad-hoc notification events.
var systemNotifications = []events.NotificationPushedPayload{
	{Message: "Scheduled maintenance tonight at 10 PM", Type: domain.NotificationWarning},
	{Message: "New knowledge base article available", Type: domain.NotificationInfo},
	{Message: "System update completed successfully", Type: domain.NotificationSuccess},
	{Message: "Your weekly report is ready", Type: domain.NotificationInfo},
	{Message: "New announcement from support team", Type: domain.NotificationInfo},
}

// TicketSource supplies the tickets events can target.
type TicketSource interface {
	CurrentTickets() []domain.Ticket
}

// Simulator stands in for a real push channel. While connected, a recurring
// timer fires one synthetic event per tick, chosen by weighted random
// selection: 40% new message, 30% ticket status step, 30% ad-hoc
// notification. Events go out through the dispatcher; no acknowledgement or
// delivery guarantee exists.
type Simulator struct {
	mu        sync.Mutex
	connected bool
	stop      chan struct{}

	dispatcher events.Dispatcher
	tickets    TicketSource
	sender     domain.User
	interval   time.Duration
	rng        *rand.Rand
	logger     *zap.Logger
}

// Dependencies bundles collaborators for the simulator.
type Dependencies struct {
	Dispatcher events.Dispatcher
	Tickets    TicketSource
	Sender     domain.User
	Logger     *zap.Logger
}

// Option customizes simulator construction.
type Option func(*Simulator)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) { s.interval = d }
}

// WithRand injects a deterministic random source for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// NewSimulator builds a disconnected simulator.
func NewSimulator(deps Dependencies, opts ...Option) *Simulator {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulator{
		dispatcher: deps.Dispatcher,
		tickets:    deps.Tickets,
		sender:     deps.Sender,
		interval:   45 * time.Second,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connected reports the connection state.
func (s *Simulator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Connect starts the event timer. Repeated calls are idempotent: N
// consecutive connects behave as one, with exactly one active timer.
func (s *Simulator) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connected {
		return
	}
	s.connected = true
	s.stop = make(chan struct{})
	go s.run(s.stop)
	s.logger.Info("push simulator connected", zap.Duration("interval", s.interval))
}

// Disconnect stops the timer. Once it returns, no further events are
// generated. Safe to call when already disconnected.
func (s *Simulator) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return
	}
	s.connected = false
	close(s.stop)
	s.stop = nil
	s.logger.Info("push simulator disconnected")
}

func (s *Simulator) run(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.emit()
		}
	}
}

// emit generates one event. The connected check under the lock guarantees
// that a tick racing with Disconnect produces nothing after it returns.
func (s *Simulator) emit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return
	}

	tickets := s.tickets.CurrentTickets()
	if len(tickets) == 0 {
		return
	}
	target := tickets[s.rng.Intn(len(tickets))]

	switch roll := s.rng.Float64(); {
	case roll < 0.4:
		s.pushMessage(target)
	case roll < 0.7:
		s.pushStatusStep(target)
	default:
		s.pushNotification()
	}
}

func (s *Simulator) pushMessage(target domain.Ticket) {
	now := time.Now()
	msg := domain.Message{
		ID:          fmt.Sprintf("msg-%d", now.UnixMilli()),
		TicketID:    target.ID,
		Content:     cannedResponses[s.rng.Intn(len(cannedResponses))],
		CreatedAt:   now,
		Sender:      s.sender,
		Attachments: []domain.Attachment{},
	}
	s.publish(events.EventMessagePushed, events.MessagePushedPayload{Message: msg})
}

// pushStatusStep advances the ticket one step forward through the status
// ordering with 70% probability, else one step back, clamped at both ends.
func (s *Simulator) pushStatusStep(target domain.Ticket) {
	idx := domain.StatusIndex(target.Status)
	if idx < 0 {
		return
	}
	if s.rng.Float64() < 0.7 && idx < len(domain.TicketStatusOrder)-1 {
		idx++
	} else if idx > 0 {
		idx--
	}

	target.Status = domain.TicketStatusOrder[idx]
	target.UpdatedAt = time.Now()
	s.publish(events.EventTicketPushed, events.TicketPushedPayload{Ticket: target})
}

func (s *Simulator) pushNotification() {
	payload := systemNotifications[s.rng.Intn(len(systemNotifications))]
	s.publish(events.EventNotificationPushed, payload)
}

func (s *Simulator) publish(kind events.EventType, payload interface{}) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(context.Background(), event); err != nil {
		s.logger.Warn("publish push event", zap.String("type", string(kind)), zap.Error(err))
	}
}

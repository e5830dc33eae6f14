package push

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/events"
)

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (r *recordingDispatcher) recorded() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// staticTickets is a fixed TicketSource.
type staticTickets struct {
	tickets []domain.Ticket
}

func (s staticTickets) CurrentTickets() []domain.Ticket {
	return append([]domain.Ticket(nil), s.tickets...)
}

func newTestSimulator(source TicketSource, seed int64, opts ...Option) (*Simulator, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	sender := domain.User{ID: "user2", Name: "Sarah Williams", Role: domain.UserRoleAgent}
	opts = append(opts, WithRand(rand.New(rand.NewSource(seed))))
	sim := NewSimulator(Dependencies{
		Dispatcher: dispatcher,
		Tickets:    source,
		Sender:     sender,
	}, opts...)
	return sim, dispatcher
}

func TestConnectAndDisconnectAreIdempotent(t *testing.T) {
	sim, _ := newTestSimulator(staticTickets{}, 1, WithInterval(time.Hour))

	assert.False(t, sim.Connected())

	sim.Connect()
	sim.Connect()
	sim.Connect()
	assert.True(t, sim.Connected())

	sim.Disconnect()
	assert.False(t, sim.Connected())

	// Disconnecting again must not panic or close a nil channel.
	sim.Disconnect()
	assert.False(t, sim.Connected())
}

func TestDisconnectStopsEventsSynchronously(t *testing.T) {
	source := staticTickets{tickets: []domain.Ticket{{ID: "ticket1", Status: domain.TicketStatusOpen}}}
	sim, dispatcher := newTestSimulator(source, 1, WithInterval(2*time.Millisecond))

	sim.Connect()
	require.Eventually(t, func() bool {
		return len(dispatcher.recorded()) > 0
	}, time.Second, time.Millisecond)

	sim.Disconnect()
	seen := len(dispatcher.recorded())

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, seen, len(dispatcher.recorded()), "events generated after Disconnect returned")
}

func TestEmitAfterDisconnectProducesNothing(t *testing.T) {
	source := staticTickets{tickets: []domain.Ticket{{ID: "ticket1", Status: domain.TicketStatusOpen}}}
	sim, dispatcher := newTestSimulator(source, 1, WithInterval(time.Hour))

	sim.Connect()
	sim.Disconnect()

	sim.emit()
	assert.Empty(t, dispatcher.recorded())
}

func TestEmitWithoutTicketsProducesNothing(t *testing.T) {
	sim, dispatcher := newTestSimulator(staticTickets{}, 1, WithInterval(time.Hour))

	sim.Connect()
	defer sim.Disconnect()

	sim.emit()
	assert.Empty(t, dispatcher.recorded())
}

func TestEmitProducesAllEventKinds(t *testing.T) {
	source := staticTickets{tickets: []domain.Ticket{
		{ID: "ticket1", Status: domain.TicketStatusOpen},
		{ID: "ticket2", Status: domain.TicketStatusInProgress},
	}}
	sim, dispatcher := newTestSimulator(source, 42, WithInterval(time.Hour))

	sim.Connect()
	defer sim.Disconnect()

	const rounds = 300
	for i := 0; i < rounds; i++ {
		sim.emit()
	}

	counts := map[events.EventType]int{}
	for _, event := range dispatcher.recorded() {
		counts[event.Type]++
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.Timestamp.IsZero())
	}

	total := counts[events.EventMessagePushed] + counts[events.EventTicketPushed] + counts[events.EventNotificationPushed]
	assert.Equal(t, rounds, total, "unexpected event type published")
	assert.Greater(t, counts[events.EventMessagePushed], 0)
	assert.Greater(t, counts[events.EventTicketPushed], 0)
	assert.Greater(t, counts[events.EventNotificationPushed], 0)
}

func TestPushedMessagesUseCannedContent(t *testing.T) {
	source := staticTickets{tickets: []domain.Ticket{{ID: "ticket1", Status: domain.TicketStatusOpen}}}
	sim, dispatcher := newTestSimulator(source, 7, WithInterval(time.Hour))

	sim.Connect()
	defer sim.Disconnect()

	for i := 0; i < 100; i++ {
		sim.emit()
	}

	canned := map[string]bool{}
	for _, content := range cannedResponses {
		canned[content] = true
	}

	sawMessage := false
	for _, event := range dispatcher.recorded() {
		if event.Type != events.EventMessagePushed {
			continue
		}
		sawMessage = true
		payload, ok := event.Payload.(events.MessagePushedPayload)
		require.True(t, ok)
		assert.Equal(t, "ticket1", payload.Message.TicketID)
		assert.True(t, canned[payload.Message.Content], "unknown message content %q", payload.Message.Content)
		assert.Equal(t, "user2", payload.Message.Sender.ID)
	}
	assert.True(t, sawMessage)
}

func TestStatusStepsStayAdjacentAndClamped(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.TicketStatus
		allowed []domain.TicketStatus
	}{
		{
			name:   "initial status never steps below the first",
			status: domain.TicketStatusOpen,
			allowed: []domain.TicketStatus{
				domain.TicketStatusOpen,
				domain.TicketStatusInProgress,
			},
		},
		{
			name:   "terminal status only steps back",
			status: domain.TicketStatusClosed,
			allowed: []domain.TicketStatus{
				domain.TicketStatusResolved,
			},
		},
		{
			name:   "middle status moves one step either way",
			status: domain.TicketStatusPending,
			allowed: []domain.TicketStatus{
				domain.TicketStatusInProgress,
				domain.TicketStatusResolved,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := staticTickets{tickets: []domain.Ticket{{ID: "ticket1", Status: tc.status}}}
			sim, dispatcher := newTestSimulator(source, 11, WithInterval(time.Hour))

			sim.Connect()
			defer sim.Disconnect()

			for i := 0; i < 200; i++ {
				sim.emit()
			}

			allowed := map[domain.TicketStatus]bool{}
			for _, status := range tc.allowed {
				allowed[status] = true
			}

			sawStep := false
			for _, event := range dispatcher.recorded() {
				if event.Type != events.EventTicketPushed {
					continue
				}
				sawStep = true
				payload, ok := event.Payload.(events.TicketPushedPayload)
				require.True(t, ok)
				assert.True(t, allowed[payload.Ticket.Status], "status %s outside the adjacent range", payload.Ticket.Status)
				assert.False(t, payload.Ticket.UpdatedAt.IsZero())
			}
			assert.True(t, sawStep)
		})
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tivivek/support-ticketing-system/internal/auth"
	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/events"
	"github.com/tivivek/support-ticketing-system/internal/mock"
	"github.com/tivivek/support-ticketing-system/internal/session"
)

func newTestStore(t *testing.T) (*Store, *session.MemoryStore) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", 60, 1440)
	api := mock.NewAPI(mock.NewStore(), tokens, mock.WithDelays(mock.Delays{}))
	sessions := session.NewMemoryStore()
	return New(Dependencies{API: api, Sessions: sessions}), sessions
}

func TestLoginUpdatesAuthSliceAndPersistsTokens(t *testing.T) {
	st, sessions := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Login(ctx, "agent@example.com", mock.DemoPassword))

	state := st.Auth()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)
	require.NotNil(t, state.User)
	assert.Equal(t, domain.UserRoleAgent, state.User.Role)
	assert.NotEmpty(t, state.Token)

	persisted, err := sessions.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, state.Token, persisted)
}

func TestLoginFailureLeavesUnauthenticated(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.Login(context.Background(), "agent@example.com", "wrongpass")
	require.Error(t, err)

	state := st.Auth()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.NotEmpty(t, state.Err)
	assert.Nil(t, state.User)
}

func TestLogoutClearsSessionAndPersistedTokens(t *testing.T) {
	st, sessions := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Login(ctx, "agent@example.com", mock.DemoPassword))
	require.NoError(t, st.Logout(ctx))

	state := st.Auth()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)

	persisted, err := sessions.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestRestoreSession(t *testing.T) {
	st, sessions := newTestStore(t)
	ctx := context.Background()

	// Nothing persisted: stays unauthenticated.
	require.NoError(t, st.RestoreSession(ctx))
	assert.False(t, st.Auth().IsAuthenticated)

	require.NoError(t, sessions.Set(ctx, session.TokenKey, "persisted-token"))
	require.NoError(t, sessions.Set(ctx, session.RefreshTokenKey, "persisted-refresh"))
	require.NoError(t, st.RestoreSession(ctx))

	state := st.Auth()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "persisted-token", state.Token)
	assert.Equal(t, "persisted-refresh", state.RefreshToken)
	assert.Nil(t, state.User)
}

func TestFetchTicketsReplacesListAndPagination(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SetFilters(ctx, Filters{Status: domain.TicketStatusInProgress}))

	snapshot := st.Tickets()
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Err)
	assert.Equal(t, 2, snapshot.Pagination.Total)
	assert.Equal(t, 1, snapshot.Pagination.TotalPages)
	require.Len(t, snapshot.Tickets, 2)
	assert.Equal(t, "ticket2", snapshot.Tickets[0].ID)
	assert.Equal(t, "ticket4", snapshot.Tickets[1].ID)
}

func TestTicketsRequestedSetsLoadingAndClearsError(t *testing.T) {
	st, _ := newTestStore(t)

	st.Dispatch(TicketsFailed{Err: "previous failure"})
	st.Dispatch(TicketsRequested{})

	snapshot := st.Tickets()
	assert.True(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Err)
}

func TestFetchTicketFailureStoresError(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.FetchTicket(context.Background(), "no-such-ticket")
	require.Error(t, err)

	snapshot := st.Tickets()
	assert.False(t, snapshot.IsLoading)
	assert.Equal(t, "ticket not found", snapshot.Err)
	assert.Nil(t, snapshot.Selected)
}

func TestUpdateTicketKeepsListAndSelectionConsistent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.FetchTickets(ctx))
	require.NoError(t, st.FetchTicket(ctx, "ticket2"))

	status := domain.TicketStatusResolved
	_, err := st.UpdateTicket(ctx, "ticket2", mock.TicketPatch{Status: &status})
	require.NoError(t, err)

	snapshot := st.Tickets()
	require.NotNil(t, snapshot.Selected)
	assert.Equal(t, domain.TicketStatusResolved, snapshot.Selected.Status)
	for _, ticket := range snapshot.Tickets {
		if ticket.ID == "ticket2" {
			assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
		}
	}
}

func TestCreateTicketPrependsAndBumpsTotal(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.FetchTickets(ctx))
	before := st.Tickets()

	created, err := st.CreateTicket(ctx, mock.TicketDraft{
		Title:       "Broken export button",
		Description: "Clicking export does nothing at all.",
	})
	require.NoError(t, err)

	after := st.Tickets()
	require.Len(t, after.Tickets, len(before.Tickets)+1)
	assert.Equal(t, created.ID, after.Tickets[0].ID)
	assert.Equal(t, before.Pagination.Total+1, after.Pagination.Total)
}

func TestPageAndFilterChangesResetAndRefetch(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SetPageSize(ctx, 2))
	snapshot := st.Tickets()
	assert.Equal(t, 1, snapshot.Pagination.Page)
	assert.Equal(t, 2, snapshot.Pagination.PageSize)
	assert.Len(t, snapshot.Tickets, 2)
	assert.Equal(t, 5, snapshot.Pagination.Total)
	assert.Equal(t, 3, snapshot.Pagination.TotalPages)

	require.NoError(t, st.SetPage(ctx, 3))
	snapshot = st.Tickets()
	assert.Equal(t, 3, snapshot.Pagination.Page)
	assert.Len(t, snapshot.Tickets, 1)

	// Applying a filter resets to the first page.
	require.NoError(t, st.SetFilters(ctx, Filters{Priority: domain.TicketPriorityHigh}))
	snapshot = st.Tickets()
	assert.Equal(t, 1, snapshot.Pagination.Page)
	assert.Equal(t, 2, snapshot.Pagination.Total)

	require.NoError(t, st.ClearFilters(ctx))
	snapshot = st.Tickets()
	assert.True(t, snapshot.Filters.IsZero())
	assert.Equal(t, 5, snapshot.Pagination.Total)
}

func TestLastWriteWinsByCompletionOrder(t *testing.T) {
	st, _ := newTestStore(t)

	// Two list responses arriving out of dispatch order: the one completing
	// last overwrites, even if it was dispatched first. The store makes no
	// attempt to fence stale responses.
	st.Dispatch(TicketsLoaded{
		Tickets:    []domain.Ticket{{ID: "fresh"}},
		Page:       1,
		PageSize:   10,
		Total:      1,
		TotalPages: 1,
	})
	st.Dispatch(TicketsLoaded{
		Tickets:    []domain.Ticket{{ID: "stale"}},
		Page:       1,
		PageSize:   10,
		Total:      1,
		TotalPages: 1,
	})

	snapshot := st.Tickets()
	require.Len(t, snapshot.Tickets, 1)
	assert.Equal(t, "stale", snapshot.Tickets[0].ID)
}

func TestFetchAndSendMessages(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.FetchMessages(ctx, "ticket1"))
	before := st.MessagesFor("ticket1")
	require.Len(t, before, 3)

	msg, err := st.SendMessage(ctx, "ticket1", "any update on this?", nil)
	require.NoError(t, err)

	after := st.MessagesFor("ticket1")
	require.Len(t, after, 4)
	assert.Equal(t, msg.ID, after[3].ID)

	// Sends never leak into another ticket's sequence.
	assert.Empty(t, st.MessagesFor("ticket4"))

	st.ClearMessages("ticket1")
	assert.Empty(t, st.MessagesFor("ticket1"))
}

func TestNotificationLifecycle(t *testing.T) {
	st, _ := newTestStore(t)

	st.AddNotification("first", domain.NotificationInfo)
	st.AddNotification("second", domain.NotificationWarning)

	snapshot := st.Notifications()
	require.Len(t, snapshot.Notifications, 2)
	assert.Equal(t, 2, snapshot.UnreadCount)
	// Newest first.
	assert.Equal(t, "second", snapshot.Notifications[0].Message)

	st.MarkNotificationRead(snapshot.Notifications[0].ID)
	snapshot = st.Notifications()
	assert.Equal(t, 1, snapshot.UnreadCount)

	// Marking the same notification again does not go negative.
	st.MarkNotificationRead(snapshot.Notifications[0].ID)
	assert.Equal(t, 1, st.Notifications().UnreadCount)

	st.RemoveNotification(snapshot.Notifications[1].ID)
	snapshot = st.Notifications()
	require.Len(t, snapshot.Notifications, 1)
	assert.Equal(t, 0, snapshot.UnreadCount)

	st.AddNotification("third", domain.NotificationError)
	st.MarkAllNotificationsRead()
	assert.Equal(t, 0, st.Notifications().UnreadCount)

	st.ClearNotifications()
	snapshot = st.Notifications()
	assert.Empty(t, snapshot.Notifications)
	assert.Equal(t, 0, snapshot.UnreadCount)
}

func TestPushedEventsBecomeTransitions(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.FetchTickets(ctx))
	require.NoError(t, st.FetchTicket(ctx, "ticket1"))

	dispatcher := events.NewInMemoryDispatcher()
	st.SubscribeTo(dispatcher)

	pushedMsg := domain.Message{
		ID:        "msg-pushed",
		TicketID:  "ticket1",
		Content:   "Thanks for your patience. Our team is working on this issue.",
		CreatedAt: time.Now(),
	}
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventMessagePushed,
		Payload: events.MessagePushedPayload{Message: pushedMsg},
	}))

	msgs := st.MessagesFor("ticket1")
	require.NotEmpty(t, msgs)
	assert.Equal(t, "msg-pushed", msgs[len(msgs)-1].ID)

	updated := st.Tickets().Tickets[0]
	updated.Status = domain.TicketStatusPending
	updated.UpdatedAt = time.Now()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventTicketPushed,
		Payload: events.TicketPushedPayload{Ticket: updated},
	}))

	snapshot := st.Tickets()
	found := false
	for _, ticket := range snapshot.Tickets {
		if ticket.ID == updated.ID {
			found = true
			assert.Equal(t, domain.TicketStatusPending, ticket.Status)
		}
	}
	assert.True(t, found)
	if snapshot.Selected != nil && snapshot.Selected.ID == updated.ID {
		assert.Equal(t, domain.TicketStatusPending, snapshot.Selected.Status)
	}

	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventNotificationPushed,
		Payload: events.NotificationPushedPayload{Message: "System update completed successfully", Type: domain.NotificationSuccess},
	}))

	notifications := st.Notifications()
	// One per pushed message, one per ticket update, one ad-hoc.
	assert.Len(t, notifications.Notifications, 3)
	assert.Equal(t, 3, notifications.UnreadCount)
}

func TestSnapshotsAreCopies(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.FetchTickets(ctx))

	snapshot := st.Tickets()
	require.NotEmpty(t, snapshot.Tickets)
	snapshot.Tickets[0].Title = "mutated locally"

	assert.NotEqual(t, "mutated locally", st.Tickets().Tickets[0].Title)
}

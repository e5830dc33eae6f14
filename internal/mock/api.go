package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tivivek/support-ticketing-system/internal/auth"
	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// Delays fixes the artificial latency per operation kind.
type Delays struct {
	List        time.Duration
	Get         time.Duration
	Create      time.Duration
	Update      time.Duration
	Delete      time.Duration
	Messages    time.Duration
	SendMessage time.Duration
	Login       time.Duration
	Logout      time.Duration
	CurrentUser time.Duration
	Users       time.Duration
}

// DefaultDelays mirrors the latency profile of the real backend this API
// stands in for.
var DefaultDelays = Delays{
	List:        800 * time.Millisecond,
	Get:         600 * time.Millisecond,
	Create:      1000 * time.Millisecond,
	Update:      800 * time.Millisecond,
	Delete:      700 * time.Millisecond,
	Messages:    700 * time.Millisecond,
	SendMessage: 800 * time.Millisecond,
	Login:       800 * time.Millisecond,
	Logout:      500 * time.Millisecond,
	CurrentUser: 600 * time.Millisecond,
	Users:       600 * time.Millisecond,
}

// API simulates the ticketing backend over the in-memory store. All
// operations wait out their configured latency before touching data, so a
// cancelled context aborts before any side effect.
type API struct {
	store  *Store
	tokens *auth.TokenManager
	delays Delays
}

// Option customizes API construction.
type Option func(*API)

// WithDelays overrides the latency table. Tests pass a zero table.
func WithDelays(d Delays) Option {
	return func(a *API) { a.delays = d }
}

// NewAPI constructs the mock API over the given store.
func NewAPI(store *Store, tokens *auth.TokenManager, opts ...Option) *API {
	a := &API{store: store, tokens: tokens, delays: DefaultDelays}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// TicketQuery describes listing parameters.
type TicketQuery struct {
	Page       int
	PageSize   int
	Status     domain.TicketStatus
	Priority   domain.TicketPriority
	AssignedTo string
	Tags       []string
	Search     string
	SortBy     string
	SortOrder  string
}

// TicketPage is one page of a filtered listing. Total and TotalPages reflect
// the filtered count, not the sliced one.
type TicketPage struct {
	Data       []domain.Ticket
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ListTickets filters, sorts and pages the ticket collection. Listing itself
// never fails.
func (a *API) ListTickets(ctx context.Context, q TicketQuery) (*TicketPage, error) {
	if err := a.wait(ctx, a.delays.List); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	filtered := make([]domain.Ticket, 0, len(a.store.tickets))
	for _, t := range a.store.tickets {
		if matchesQuery(t, q) {
			filtered = append(filtered, copyTicket(t))
		}
	}
	a.store.mu.Unlock()

	sortTickets(filtered, q.SortBy, q.SortOrder)

	page := q.Page
	if page <= 0 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &TicketPage{
		Data:       filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func matchesQuery(t domain.Ticket, q TicketQuery) bool {
	if q.Status != "" && t.Status != q.Status {
		return false
	}
	if q.Priority != "" && t.Priority != q.Priority {
		return false
	}
	if q.AssignedTo != "" {
		if t.AssignedTo == nil || t.AssignedTo.ID != q.AssignedTo {
			return false
		}
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if len(q.Tags) > 0 && !anyTagMatches(t.Tags, q.Tags) {
		return false
	}
	return true
}

func anyTagMatches(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortTickets orders tickets by the requested field. The sort is stable, so
// ties keep their original collection order. An empty sortBy leaves the
// collection order untouched.
func sortTickets(tickets []domain.Ticket, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	desc := sortOrder == "desc"
	sort.SliceStable(tickets, func(i, j int) bool {
		if desc {
			return ticketLess(tickets[j], tickets[i], sortBy)
		}
		return ticketLess(tickets[i], tickets[j], sortBy)
	})
}

func ticketLess(a, b domain.Ticket, field string) bool {
	switch field {
	case "createdAt":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "title":
		return a.Title < b.Title
	case "status":
		return a.Status < b.Status
	case "priority":
		return a.Priority < b.Priority
	case "assignedTo":
		return assigneeName(a) < assigneeName(b)
	default:
		return false
	}
}

func assigneeName(t domain.Ticket) string {
	if t.AssignedTo == nil {
		return ""
	}
	return t.AssignedTo.Name
}

// GetTicket fetches a single ticket by id.
func (a *API) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	if err := a.wait(ctx, a.delays.Get); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	idx := a.store.findTicket(id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	t := copyTicket(a.store.tickets[idx])
	return &t, nil
}

// TicketDraft describes ticket creation input. Zero-valued fields fall back
// to documented defaults.
type TicketDraft struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
	AssignedTo  *domain.User
	Tags        []string
}

// CreateTicket appends a new ticket to the collection. The operation is not
// idempotent; retries produce duplicate records.
func (a *API) CreateTicket(ctx context.Context, draft TicketDraft) (*domain.Ticket, error) {
	if err := a.wait(ctx, a.delays.Create); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	now := time.Now()
	ticket := domain.Ticket{
		ID:          a.store.nextTicketID(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   a.store.users[0],
		AssignedTo:  draft.AssignedTo,
		Tags:        draft.Tags,
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Tags == nil {
		ticket.Tags = []string{}
	}

	a.store.tickets = append(a.store.tickets, ticket)
	out := copyTicket(ticket)
	return &out, nil
}

// TicketPatch carries a shallow partial update; nil fields are left alone.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.TicketPriority
	AssignedTo  *domain.User
	Tags        []string
}

// UpdateTicket shallow-merges the patch over an existing record and refreshes
// UpdatedAt.
func (a *API) UpdateTicket(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error) {
	if err := a.wait(ctx, a.delays.Update); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	idx := a.store.findTicket(id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}

	t := &a.store.tickets[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.AssignedTo != nil {
		assignee := *patch.AssignedTo
		t.AssignedTo = &assignee
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), patch.Tags...)
	}
	t.UpdatedAt = time.Now()

	out := copyTicket(*t)
	return &out, nil
}

// DeleteTicket removes and returns a ticket.
func (a *API) DeleteTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	if err := a.wait(ctx, a.delays.Delete); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	idx := a.store.findTicket(id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}

	removed := copyTicket(a.store.tickets[idx])
	a.store.tickets = append(a.store.tickets[:idx], a.store.tickets[idx+1:]...)
	return &removed, nil
}

// GetMessages returns the ordered message sequence for a ticket. Unknown
// ticket ids yield an empty sequence rather than an error; the thread is
// created lazily on first send.
func (a *API) GetMessages(ctx context.Context, ticketID string) ([]domain.Message, error) {
	if err := a.wait(ctx, a.delays.Messages); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	msgs := a.store.messages[ticketID]
	out := make([]domain.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, copyMessage(m))
	}
	return out, nil
}

// AttachmentUpload carries file metadata for a message attachment.
type AttachmentUpload struct {
	Filename    string
	Size        int64
	ContentType string
}

// CreateMessage appends a message to a ticket's sequence, creating the
// sequence if absent. The sender is always the fixed support agent.
func (a *API) CreateMessage(ctx context.Context, ticketID, content string, uploads []AttachmentUpload) (*domain.Message, error) {
	if err := a.wait(ctx, a.delays.SendMessage); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	now := time.Now()
	attachments := make([]domain.Attachment, 0, len(uploads))
	for i, up := range uploads {
		id := fmt.Sprintf("attachment-%d-%d", now.UnixMilli(), i)
		attachments = append(attachments, domain.Attachment{
			ID:          id,
			Filename:    up.Filename,
			URL:         "mock://attachments/" + id,
			Size:        up.Size,
			ContentType: up.ContentType,
		})
	}

	var sender domain.User
	for _, u := range a.store.users {
		if u.Role == domain.UserRoleAgent {
			sender = u
			break
		}
	}

	msg := domain.Message{
		ID:          fmt.Sprintf("msg-%d", now.UnixMilli()),
		TicketID:    ticketID,
		Content:     content,
		CreatedAt:   now,
		Sender:      sender,
		Attachments: attachments,
	}

	a.store.messages[ticketID] = append(a.store.messages[ticketID], msg)
	out := copyMessage(msg)
	return &out, nil
}

// LoginResult carries a successful authentication.
type LoginResult struct {
	Token        string
	RefreshToken string
	User         domain.User
}

// Login checks credentials against the seeded accounts and issues a token
// pair on success.
func (a *API) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := a.wait(ctx, a.delays.Login); err != nil {
		return nil, err
	}

	a.store.mu.Lock()
	var user *domain.User
	for i := range a.store.users {
		if a.store.users[i].Email == email {
			u := a.store.users[i]
			user = &u
			break
		}
	}
	hash := a.store.passwordHash
	a.store.mu.Unlock()

	if user == nil || auth.ComparePassword(hash, password) != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, _, err := a.tokens.GenerateToken(*user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	refresh, _, err := a.tokens.GenerateRefreshToken(*user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &LoginResult{Token: token, RefreshToken: refresh, User: *user}, nil
}

// Logout ends the session. The mock backend keeps no server-side session
// state, so this only burns latency.
func (a *API) Logout(ctx context.Context) error {
	return a.wait(ctx, a.delays.Logout)
}

// CurrentUser returns the seeded agent account, matching the demo backend.
func (a *API) CurrentUser(ctx context.Context) (*domain.User, error) {
	if err := a.wait(ctx, a.delays.CurrentUser); err != nil {
		return nil, err
	}
	user := a.store.AgentUser()
	return &user, nil
}

// ListUsers returns every seeded account.
func (a *API) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := a.wait(ctx, a.delays.Users); err != nil {
		return nil, err
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return append([]domain.User(nil), a.store.users...), nil
}

// GetUser fetches one account by id.
func (a *API) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := a.wait(ctx, a.delays.Users); err != nil {
		return nil, err
	}
	user, ok := a.store.UserByID(id)
	if !ok {
		return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return &user, nil
}

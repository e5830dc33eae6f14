package store

import (
	"context"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/mock"
)

// applyTickets is the exhaustive handler for the tickets slice.
func (s *Store) applyTickets(action TicketsAction) {
	switch a := action.(type) {
	case TicketsRequested:
		s.tickets.IsLoading = true
		s.tickets.Err = ""
	case TicketsLoaded:
		s.tickets.IsLoading = false
		s.tickets.Tickets = a.Tickets
		s.tickets.Pagination = Pagination{
			Page:       a.Page,
			PageSize:   a.PageSize,
			Total:      a.Total,
			TotalPages: a.TotalPages,
		}
	case TicketsFailed:
		s.tickets.IsLoading = false
		s.tickets.Err = a.Err
	case TicketRequested:
		s.tickets.IsLoading = true
		s.tickets.Err = ""
	case TicketLoaded:
		ticket := a.Ticket
		s.tickets.IsLoading = false
		s.tickets.Selected = &ticket
	case TicketFailed:
		s.tickets.IsLoading = false
		s.tickets.Err = a.Err
	case TicketCreated:
		s.tickets.Tickets = append([]domain.Ticket{a.Ticket}, s.tickets.Tickets...)
		s.tickets.Pagination.Total++
	case TicketUpdated:
		for i := range s.tickets.Tickets {
			if s.tickets.Tickets[i].ID == a.Ticket.ID {
				s.tickets.Tickets[i] = a.Ticket
				break
			}
		}
		if s.tickets.Selected != nil && s.tickets.Selected.ID == a.Ticket.ID {
			ticket := a.Ticket
			s.tickets.Selected = &ticket
		}
	case TicketSelected:
		s.tickets.Selected = a.Ticket
	case PageSet:
		s.tickets.Pagination.Page = a.Page
	case PageSizeSet:
		s.tickets.Pagination.PageSize = a.PageSize
		s.tickets.Pagination.Page = 1
	case FiltersSet:
		s.tickets.Filters = a.Filters
		s.tickets.Pagination.Page = 1
	case FiltersCleared:
		s.tickets.Filters = Filters{}
		s.tickets.Pagination.Page = 1
	case SortingSet:
		s.tickets.Sorting = Sorting{SortBy: a.SortBy, SortOrder: a.SortOrder}
	case ListParamsSet:
		s.tickets.Pagination.Page = a.Page
		s.tickets.Pagination.PageSize = a.PageSize
		s.tickets.Filters = a.Filters
		s.tickets.Sorting = a.Sorting
	}
}

// FetchTickets runs a full list fetch using the slice's current pagination,
// filters and sorting.
func (s *Store) FetchTickets(ctx context.Context) error {
	s.mu.Lock()
	query := mock.TicketQuery{
		Page:       s.tickets.Pagination.Page,
		PageSize:   s.tickets.Pagination.PageSize,
		Status:     s.tickets.Filters.Status,
		Priority:   s.tickets.Filters.Priority,
		AssignedTo: s.tickets.Filters.AssignedTo,
		Tags:       append([]string(nil), s.tickets.Filters.Tags...),
		Search:     s.tickets.Filters.Search,
		SortBy:     s.tickets.Sorting.SortBy,
		SortOrder:  s.tickets.Sorting.SortOrder,
	}
	s.mu.Unlock()

	s.Dispatch(TicketsRequested{})

	page, err := s.api.ListTickets(ctx, query)
	if err != nil {
		s.Dispatch(TicketsFailed{Err: errorMessage(err, "Failed to fetch tickets")})
		return err
	}

	s.Dispatch(TicketsLoaded{
		Tickets:    page.Data,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
	return nil
}

// FetchTicket fetches one ticket into the selection.
func (s *Store) FetchTicket(ctx context.Context, id string) error {
	s.Dispatch(TicketRequested{})

	ticket, err := s.api.GetTicket(ctx, id)
	if err != nil {
		s.Dispatch(TicketFailed{Err: errorMessage(err, "Failed to fetch ticket")})
		return err
	}
	s.Dispatch(TicketLoaded{Ticket: *ticket})
	return nil
}

// CreateTicket creates a ticket and prepends it to the list.
func (s *Store) CreateTicket(ctx context.Context, draft mock.TicketDraft) (*domain.Ticket, error) {
	ticket, err := s.api.CreateTicket(ctx, draft)
	if err != nil {
		s.Dispatch(TicketsFailed{Err: errorMessage(err, "Failed to create ticket")})
		return nil, err
	}
	s.Dispatch(TicketCreated{Ticket: *ticket})
	return ticket, nil
}

// UpdateTicket applies a partial update; on success both the list entry and
// the selection receive the fresh copy.
func (s *Store) UpdateTicket(ctx context.Context, id string, patch mock.TicketPatch) (*domain.Ticket, error) {
	ticket, err := s.api.UpdateTicket(ctx, id, patch)
	if err != nil {
		s.Dispatch(TicketsFailed{Err: errorMessage(err, "Failed to update ticket")})
		return nil, err
	}
	s.Dispatch(TicketUpdated{Ticket: *ticket})
	return ticket, nil
}

// DeleteTicket removes a ticket and refetches the list, since the slice keeps
// no dedicated removal transition.
func (s *Store) DeleteTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	removed, err := s.api.DeleteTicket(ctx, id)
	if err != nil {
		s.Dispatch(TicketsFailed{Err: errorMessage(err, "Failed to delete ticket")})
		return nil, err
	}
	if err := s.FetchTickets(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// SelectTicket sets or clears the selection without a fetch.
func (s *Store) SelectTicket(ticket *domain.Ticket) {
	s.Dispatch(TicketSelected{Ticket: ticket})
}

// SetPage moves to another page and refetches the list.
func (s *Store) SetPage(ctx context.Context, page int) error {
	s.Dispatch(PageSet{Page: page})
	return s.FetchTickets(ctx)
}

// SetPageSize changes the page size and refetches from the first page.
func (s *Store) SetPageSize(ctx context.Context, pageSize int) error {
	s.Dispatch(PageSizeSet{PageSize: pageSize})
	return s.FetchTickets(ctx)
}

// SetFilters replaces the active filters and refetches from the first page.
func (s *Store) SetFilters(ctx context.Context, filters Filters) error {
	s.Dispatch(FiltersSet{Filters: filters})
	return s.FetchTickets(ctx)
}

// ClearFilters drops all filters and refetches from the first page.
func (s *Store) ClearFilters(ctx context.Context) error {
	s.Dispatch(FiltersCleared{})
	return s.FetchTickets(ctx)
}

// SetSorting replaces the sort order and refetches the list.
func (s *Store) SetSorting(ctx context.Context, sortBy, sortOrder string) error {
	s.Dispatch(SortingSet{SortBy: sortBy, SortOrder: sortOrder})
	return s.FetchTickets(ctx)
}

// FetchTicketsWith replaces the whole list query in one transition and
// fetches once. Used by the HTTP facade.
func (s *Store) FetchTicketsWith(ctx context.Context, page, pageSize int, filters Filters, sorting Sorting) error {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if sorting.SortBy == "" {
		sorting = Sorting{SortBy: "createdAt", SortOrder: "desc"}
	}
	s.Dispatch(ListParamsSet{Page: page, PageSize: pageSize, Filters: filters, Sorting: sorting})
	return s.FetchTickets(ctx)
}

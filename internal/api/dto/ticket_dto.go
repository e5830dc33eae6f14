package dto

import (
	"strings"
	"time"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// CreateTicketRequest carries ticket creation input.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	Status      domain.TicketStatus   `json:"status,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
}

// Validate enforces the form constraints before any request is issued.
func (r CreateTicketRequest) Validate() error {
	details := map[string]any{}
	title := strings.TrimSpace(r.Title)
	if len(title) < 5 {
		details["title"] = "Title must be at least 5 characters"
	} else if len(title) > 100 {
		details["title"] = "Title must not exceed 100 characters"
	}
	if len(strings.TrimSpace(r.Description)) < 10 {
		details["description"] = "Description must be at least 10 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid ticket payload", details)
	}
	return nil
}

// UpdateTicketRequest carries a partial ticket update; nil fields are left
// untouched.
type UpdateTicketRequest struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Status      *domain.TicketStatus   `json:"status,omitempty"`
	Priority    *domain.TicketPriority `json:"priority,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
}

// Validate checks only the fields present.
func (r UpdateTicketRequest) Validate() error {
	details := map[string]any{}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if len(title) < 5 {
			details["title"] = "Title must be at least 5 characters"
		} else if len(title) > 100 {
			details["title"] = "Title must not exceed 100 characters"
		}
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) < 10 {
		details["description"] = "Description must be at least 10 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid ticket payload", details)
	}
	return nil
}

// TicketResponse is the wire shape for tickets.
type TicketResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	CreatedBy   UserResponse          `json:"createdBy"`
	AssignedTo  *UserResponse         `json:"assignedTo,omitempty"`
	Tags        []string              `json:"tags"`
}

// TicketListResponse is one page of a filtered listing.
type TicketListResponse struct {
	Data       []TicketResponse `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(t domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatedBy:   NewUserResponse(t.CreatedBy),
		Tags:        t.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.AssignedTo != nil {
		assignee := NewUserResponse(*t.AssignedTo)
		resp.AssignedTo = &assignee
	}
	return resp
}

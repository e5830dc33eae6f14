package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/api/dto"
	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/internal/mock"
	"github.com/tivivek/support-ticketing-system/internal/store"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// TicketsHandler manages ticket endpoints over the state store.
type TicketsHandler struct {
	store *store.Store
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(st *store.Store) *TicketsHandler {
	return &TicketsHandler{store: st}
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("pageSize"), 10)
	filters := store.Filters{
		Status:     domain.TicketStatus(c.Query("status")),
		Priority:   domain.TicketPriority(c.Query("priority")),
		AssignedTo: c.Query("assignedTo"),
		Search:     c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}
	sorting := store.Sorting{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if err := h.store.FetchTicketsWith(c.UserContext(), page, pageSize, filters, sorting); err != nil {
		return err
	}

	snapshot := h.store.Tickets()
	items := make([]dto.TicketResponse, 0, len(snapshot.Tickets))
	for _, t := range snapshot.Tickets {
		items = append(items, dto.NewTicketResponse(t))
	}
	return c.JSON(dto.TicketListResponse{
		Data:       items,
		Total:      snapshot.Pagination.Total,
		Page:       snapshot.Pagination.Page,
		PageSize:   snapshot.Pagination.PageSize,
		TotalPages: snapshot.Pagination.TotalPages,
	})
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	if err := h.store.FetchTicket(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	snapshot := h.store.Tickets()
	if snapshot.Selected == nil {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(*snapshot.Selected)})
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ticket, err := h.store.CreateTicket(c.UserContext(), mock.TicketDraft{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(*ticket)})
}

// Update PATCH /tickets/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ticket, err := h.store.UpdateTicket(c.UserContext(), c.Params("id"), mock.TicketPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(*ticket)})
}

// Delete DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.store.DeleteTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(*removed)})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

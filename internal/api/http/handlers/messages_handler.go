package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/api/dto"
	"github.com/tivivek/support-ticketing-system/internal/mock"
	"github.com/tivivek/support-ticketing-system/internal/store"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// MessagesHandler manages conversation endpoints.
type MessagesHandler struct {
	store *store.Store
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(st *store.Store) *MessagesHandler {
	return &MessagesHandler{store: st}
}

// List GET /tickets/:id/messages. An unknown ticket id yields an empty
// sequence, matching the backend contract.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	ticketID := c.Params("id")
	if err := h.store.FetchMessages(c.UserContext(), ticketID); err != nil {
		return err
	}

	msgs := h.store.MessagesFor(ticketID)
	items := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, dto.NewMessageResponse(m))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /tickets/:id/messages.
func (h *MessagesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	uploads := make([]mock.AttachmentUpload, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		uploads = append(uploads, mock.AttachmentUpload{
			Filename:    att.Filename,
			Size:        att.Size,
			ContentType: att.ContentType,
		})
	}

	msg, err := h.store.SendMessage(c.UserContext(), c.Params("id"), req.Content, uploads)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewMessageResponse(*msg)})
}

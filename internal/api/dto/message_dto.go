package dto

import (
	"strings"
	"time"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// AttachmentUploadRequest carries attachment metadata for a new message.
type AttachmentUploadRequest struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// CreateMessageRequest carries a new conversation message.
type CreateMessageRequest struct {
	Content     string                    `json:"content"`
	Attachments []AttachmentUploadRequest `json:"attachments,omitempty"`
}

// Validate enforces the form constraints before any request is issued.
func (r CreateMessageRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return apperrors.NewValidationError("invalid message payload",
			map[string]any{"content": "Message content is required"})
	}
	return nil
}

// AttachmentResponse is the wire shape for attachments.
type AttachmentResponse struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// MessageResponse is the wire shape for messages.
type MessageResponse struct {
	ID          string               `json:"id"`
	TicketID    string               `json:"ticketId"`
	Content     string               `json:"content"`
	CreatedAt   time.Time            `json:"createdAt"`
	Sender      UserResponse         `json:"sender"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// NewMessageResponse maps a domain message.
func NewMessageResponse(m domain.Message) MessageResponse {
	attachments := make([]AttachmentResponse, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:          att.ID,
			Filename:    att.Filename,
			URL:         att.URL,
			Size:        att.Size,
			ContentType: att.ContentType,
		})
	}
	return MessageResponse{
		ID:          m.ID,
		TicketID:    m.TicketID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
		Sender:      NewUserResponse(m.Sender),
		Attachments: attachments,
	}
}

package dto

import (
	"regexp"
	"strings"

	"github.com/tivivek/support-ticketing-system/internal/domain"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// LoginRequest carries credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces the form constraints before any request is issued.
func (r LoginRequest) Validate() error {
	details := map[string]any{}
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		details["email"] = "Please enter a valid email address"
	}
	if len(r.Password) < 6 {
		details["password"] = "Password must be at least 6 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid credentials payload", details)
	}
	return nil
}

// AuthResponse carries a session token pair plus the user profile.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// UserResponse is the wire shape for users.
type UserResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

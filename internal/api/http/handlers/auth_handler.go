package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/api/dto"
	"github.com/tivivek/support-ticketing-system/internal/push"
	"github.com/tivivek/support-ticketing-system/internal/store"
	"github.com/tivivek/support-ticketing-system/pkg/apperrors"
)

// AuthHandler manages session endpoints. A successful login connects the
// push channel; logout disconnects it.
type AuthHandler struct {
	store     *store.Store
	simulator *push.Simulator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(st *store.Store, simulator *push.Simulator) *AuthHandler {
	return &AuthHandler{store: st, simulator: simulator}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.store.Login(c.UserContext(), req.Email, req.Password); err != nil {
		return err
	}

	h.simulator.Connect()

	auth := h.store.Auth()
	resp := dto.AuthResponse{
		Token:        auth.Token,
		RefreshToken: auth.RefreshToken,
	}
	if auth.User != nil {
		resp.User = dto.NewUserResponse(*auth.User)
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.UserContext()); err != nil {
		return err
	}
	h.simulator.Disconnect()
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	auth := h.store.Auth()
	if auth.User == nil {
		if err := h.store.LoadCurrentUser(c.UserContext()); err != nil {
			return err
		}
		auth = h.store.Auth()
	}
	if auth.User == nil {
		return apperrors.NewUnauthorized("no active session")
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(*auth.User)})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/push"
)

// StreamHandler controls the push-update channel.
type StreamHandler struct {
	simulator *push.Simulator
}

// NewStreamHandler constructs handler.
func NewStreamHandler(simulator *push.Simulator) *StreamHandler {
	return &StreamHandler{simulator: simulator}
}

// Connect POST /stream/connect.
func (h *StreamHandler) Connect(c *fiber.Ctx) error {
	h.simulator.Connect()
	return c.JSON(fiber.Map{"data": fiber.Map{"connected": true}})
}

// Disconnect POST /stream/disconnect.
func (h *StreamHandler) Disconnect(c *fiber.Ctx) error {
	h.simulator.Disconnect()
	return c.JSON(fiber.Map{"data": fiber.Map{"connected": false}})
}

// Status GET /stream/status.
func (h *StreamHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"connected": h.simulator.Connected()}})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tivivek/support-ticketing-system/internal/api/http/handlers"
	"github.com/tivivek/support-ticketing-system/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Messages       *handlers.MessagesHandler
	Notifications  *handlers.NotificationsHandler
	Stream         *handlers.StreamHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything except login and health sits
// behind the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/me", cfg.Auth.Me)

	protected.Get("/tickets", cfg.Tickets.List)
	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Patch("/tickets/:id", cfg.Tickets.Update)
	protected.Delete("/tickets/:id", cfg.Tickets.Delete)

	protected.Get("/tickets/:id/messages", cfg.Messages.List)
	protected.Post("/tickets/:id/messages", cfg.Messages.Create)

	protected.Get("/notifications", cfg.Notifications.List)
	protected.Post("/notifications/read-all", cfg.Notifications.MarkAllRead)
	protected.Post("/notifications/:id/read", cfg.Notifications.MarkRead)
	protected.Delete("/notifications", cfg.Notifications.Clear)
	protected.Delete("/notifications/:id", cfg.Notifications.Remove)

	protected.Get("/stream/status", cfg.Stream.Status)
	protected.Post("/stream/connect", cfg.Stream.Connect)
	protected.Post("/stream/disconnect", cfg.Stream.Disconnect)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tivivek/support-ticketing-system/internal/api/http"
	"github.com/tivivek/support-ticketing-system/internal/api/http/handlers"
	"github.com/tivivek/support-ticketing-system/internal/auth"
	"github.com/tivivek/support-ticketing-system/internal/config"
	"github.com/tivivek/support-ticketing-system/internal/events"
	"github.com/tivivek/support-ticketing-system/internal/mock"
	"github.com/tivivek/support-ticketing-system/internal/observability"
	"github.com/tivivek/support-ticketing-system/internal/push"
	"github.com/tivivek/support-ticketing-system/internal/session"
	"github.com/tivivek/support-ticketing-system/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	dataStore := mock.NewStore()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.RefreshTokenTTLMinutes)
	api := mock.NewAPI(dataStore, tokens)

	sessions := session.NewRedisStore(cfg.Redis, logger)
	defer sessions.Close()

	stateStore := store.New(store.Dependencies{
		API:      api,
		Sessions: sessions,
		Logger:   logger,
	})

	dispatcher := events.NewInMemoryDispatcher()
	stateStore.SubscribeTo(dispatcher)

	simulator := push.NewSimulator(push.Dependencies{
		Dispatcher: dispatcher,
		Tickets:    stateStore,
		Sender:     dataStore.AgentUser(),
		Logger:     logger,
	}, push.WithInterval(cfg.Push.Interval()))

	if err := stateStore.RestoreSession(context.Background()); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}
	if stateStore.Auth().IsAuthenticated {
		simulator.Connect()
	}

	authMiddleware := auth.NewMiddleware(tokens, dataStore)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(),
		Auth:           handlers.NewAuthHandler(stateStore, simulator),
		Tickets:        handlers.NewTicketsHandler(stateStore),
		Messages:       handlers.NewMessagesHandler(stateStore),
		Notifications:  handlers.NewNotificationsHandler(stateStore),
		Stream:         handlers.NewStreamHandler(simulator),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	simulator.Disconnect()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

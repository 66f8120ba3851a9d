package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jgonzalezans/am-challenge/internal/adapter/handler"
	"github.com/jgonzalezans/am-challenge/internal/adapter/middleware"
	"github.com/jgonzalezans/am-challenge/internal/adapter/storage"
	"github.com/jgonzalezans/am-challenge/internal/core/config"
	"github.com/jgonzalezans/am-challenge/internal/core/notifications"
	"github.com/jgonzalezans/am-challenge/internal/core/service"
	"github.com/jgonzalezans/am-challenge/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Account Store (in-memory, sole owner of all balances)
	store := storage.NewAccountStore()

	// 4. Notification pipeline
	dispatcher := worker.NewDispatcher(cfg.NotifyQueueSize, notifications.SendWebhook)
	dispatcher.Start()

	var notifier service.Notifier = notifications.LogNotifier{}
	if cfg.WebhookURL != "" {
		notifier = notifications.NewWebhookNotifier(cfg.WebhookURL, dispatcher)
	}

	// 5. Service & Handlers
	ledger := service.NewLedger(store, notifier)
	accountHandler := &handler.AccountHandler{Service: ledger}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/v1")
	api.Post("/accounts", accountHandler.CreateAccount)
	api.Get("/accounts/:id", accountHandler.GetAccount)
	api.Post("/accounts/transfer", middleware.Idempotency(), accountHandler.Transfer)

	// Graceful shutdown: stop accepting requests, then stop the dispatcher.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	dispatcher.Stop()
	slog.Info("👋 Server exited successfully")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"barista/cmd"
	httpin "barista/internal/adapters/in/http"
	"barista/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err = app.OrderStore().EnsureDir(context.Background()); err != nil {
		log.Fatalf("Failed to prepare orders directory %q: %v", configs.OrdersDir, err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.SessionRegistry(), configs.SessionIdleTimeout, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; environment variables and defaults apply.
	_ = godotenv.Load(".env")

	idleTimeout, err := time.ParseDuration(envOrDefault("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil {
		log.Fatalf("Invalid SESSION_IDLE_TIMEOUT: %v", err)
	}

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		OrdersDir:          envOrDefault("ORDERS_DIR", "orders"),
		SessionIdleTimeout: idleTimeout,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateStartSessionCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCommitOrderCommandHandler(),
		app.CreateEndSessionCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListCommittedOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assistant-tools/config"
	_ "assistant-tools/docs" // Swagger docs
	"assistant-tools/internal/app"
	"assistant-tools/internal/httpserver"

	"github.com/joho/godotenv"
)

// @title       Assistant Tools API
// @description Calendar and task functions over an HTTP gateway.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := app.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting assistant-tools HTTP gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domains
	regs, err := app.NewRegistries(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize domains: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Calendar:       regs.Calendar,
		Tasks:          regs.Tasks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"

	"shopfloor-tasks/config"
	_ "shopfloor-tasks/docs" // Swagger docs
	authHTTP "shopfloor-tasks/internal/auth/delivery/http"
	authUC "shopfloor-tasks/internal/auth/usecase"
	"shopfloor-tasks/internal/httpserver"
	"shopfloor-tasks/internal/middleware"
	taskHTTP "shopfloor-tasks/internal/task/delivery/http"
	"shopfloor-tasks/internal/task/repository/remote"
	taskUC "shopfloor-tasks/internal/task/usecase"
	"shopfloor-tasks/pkg/log"
)

// @title       Shopfloor Tasks API
// @description Browser-facing service for factory workers: login, assigned task views, execution counting and completion workflow against the remote task-management API.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Shopfloor Tasks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Gateway URL: %s", cfg.Gateway.BaseURL)

	// 3. Task domain: remote gateway, repository, use case, delivery
	gatewayClient := remote.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)
	taskRepo := remote.New(gatewayClient, logger)
	taskUseCase := taskUC.New(logger, taskRepo)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 4. Auth domain: worker login against the gateway token endpoint
	authUseCase := authUC.New(logger, cfg.Gateway.TokenURL, cfg.Gateway.ClientID)
	authHandler := authHTTP.New(logger, authUseCase)

	// 5. Middleware
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
		AuthHandler: authHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roundup/internal/config"
	"roundup/internal/database"
	"roundup/internal/logger"
	"roundup/internal/middleware"
	"roundup/internal/server"
	"roundup/internal/store"
	"roundup/internal/validator"

	"github.com/gin-gonic/gin"

	_ "roundup/internal/docs" // Import swagger docs
)

// @title           Roundup API
// @version         1.0
// @description     Round-up savings backend: accounts, transactions, goals and savings allocations.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := database.Open(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warnf("store close error: %v", err)
		}
	}()

	router := server.NewRouter(store.WithPingTimeout(st, appConfig.StorePingTimeout), server.Options{
		Tokens:       middleware.NewTokenService(appConfig.JWTSecret, appConfig.JWTExpirationDur),
		CORSOrigins:  appConfig.CORSOrigins,
		CookieSecure: appConfig.CookieSecure,
	})

	log.Infof("Starting Roundup backend on port %s (store: %s)", appConfig.Port, appConfig.StoreDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return server.Run(ctx, ":"+appConfig.Port, router)
}

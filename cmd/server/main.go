package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/api"
	"github.com/quotallc/grabbit-rewards/internal/config"
	"github.com/quotallc/grabbit-rewards/internal/service"
	"github.com/quotallc/grabbit-rewards/internal/shopify"
)

func main() {
	// Load .env if present (config falls back to env vars either way)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting Grabbit Rewards API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("discount_scope", string(cfg.Discount.Scope)),
	)

	// Wire Shopify Admin API, code generator and issuance pipeline
	admin := shopify.NewAdmin(cfg.Shopify, logger)
	codes := service.NewCodeGenerator(cfg.Discount.CodePrefix, nil)
	discounts := service.NewDiscountService(admin, codes, logger)

	// Initialize router
	router := api.NewRouter(cfg, discounts, admin, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // an export run makes one Shopify call per customer
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mader-project/mader/internal/config"
	"github.com/mader-project/mader/internal/database"
	"github.com/mader-project/mader/internal/handler"
	"github.com/mader-project/mader/internal/middleware"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/scheduler"
	"github.com/mader-project/mader/internal/security"
	"github.com/mader-project/mader/internal/service"
	"github.com/mader-project/mader/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database and apply migrations
	db, err := database.New(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize layers
	tokens, err := security.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenExpireMinutes)
	if err != nil {
		logger.Fatalf("Failed to initialize token service: %v", err)
	}
	repo := repository.NewRepository(db)

	var mailer service.Mailer
	if cfg.SMTPHost != "" {
		mailer = email.NewSender(cfg, logger)
	}

	svc := service.NewService(repo, tokens, mailer, logger)
	h := handler.NewHandler(svc, logger)

	// Start the inactive-user purge when a retention window is configured
	if cfg.PurgeRetentionDays > 0 {
		sched := scheduler.New(repo, cfg.PurgeRetentionDays, logger)
		if err := sched.Start(); err != nil {
			logger.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Setup router
	r := handler.Routes(h, middleware.Auth(tokens, svc))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jobpilot/jobpilot/internal/auth"
	"github.com/jobpilot/jobpilot/internal/config"
	"github.com/jobpilot/jobpilot/internal/database"
	"github.com/jobpilot/jobpilot/internal/handlers"
	"github.com/jobpilot/jobpilot/internal/logger"
	"github.com/jobpilot/jobpilot/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()
	zlog.Info("database connection established")

	// 3. Model Client
	ctx := context.Background()
	model, err := services.NewGoogleAIClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		zlog.Fatal("failed to create model client", zap.Error(err))
	}

	// 4. Core Services
	issuer := auth.NewIssuer(cfg.JWTSecret)
	userService := services.NewUserService(db, cfg.BcryptCost, zlog)
	jobService := services.NewJobService(db, zlog)
	llmService := services.NewLLMService(model, db, cfg.AITimeout, zlog)

	// 5. Handlers & Router
	authHandler := handlers.NewAuthHandler(userService, issuer, zlog)
	jobHandler := handlers.NewJobHandler(jobService, zlog)
	aiHandler := handlers.NewAIHandler(llmService, jobService, zlog)

	r := handlers.NewRouter(authHandler, jobHandler, aiHandler, issuer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// 6. Serve until interrupted, then drain in-flight requests.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	zlog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}

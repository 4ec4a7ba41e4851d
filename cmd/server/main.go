package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"onoe-chat/internal/config"
	"onoe-chat/internal/database"
	"onoe-chat/internal/handlers"
	"onoe-chat/internal/logging"
	"onoe-chat/internal/middleware"
	"onoe-chat/internal/repository"
	"onoe-chat/internal/router"
	"onoe-chat/internal/services"
	"onoe-chat/migrations"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	logger.Info("🚀 Starting ONOE chat relay...", "env", cfg.Env)

	// ──── Step 2: Resolve Persona ────
	persona, err := services.ResolvePersona(cfg.Persona, cfg.PersonaFile)
	if err != nil {
		logger.Error("✗ Persona resolution failed", "error", err)
		os.Exit(1)
	}
	logger.Info("✓ Persona loaded", "persona", persona.Name)

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		persona,
		cfg.GeminiConcurrentReqs,
		time.Duration(cfg.GeminiTimeoutSecs)*time.Second,
		logger,
	)
	if err != nil {
		logger.Error("✗ Gemini client initialization failed", "error", err)
		os.Exit(1)
	}
	defer geminiService.Close()
	logger.Info("✓ Gemini client initialized", "model", cfg.GeminiModel)

	// ──── Step 4: Optional Activity Log ────
	var activities handlers.ActivityStore
	if cfg.ActivityLogEnabled() {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			logger.Error("✗ PostgreSQL connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.RunMigrations(pool, migrations.Files); err != nil {
			logger.Error("✗ Database migration failed", "error", err)
			os.Exit(1)
		}
		activities = repository.NewActivityRepo(pool)
		logger.Info("✓ Activity log enabled")
	}

	// ──── Step 5: Rate Limiter ────
	var chatLimiter middleware.Limiter = middleware.NewRateLimiter(cfg.ChatRequestsPerMin, time.Minute)
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("✗ Redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		chatLimiter = middleware.NewRedisRateLimiter(redisClient, "onoe:chat_rate", cfg.ChatRequestsPerMin, time.Minute)
		logger.Info("✓ Redis rate limiter connected")
	}

	// ──── Step 6: Start HTTP Server ────
	responder := services.NewResponder(geminiService, logger)
	r := router.New(
		middleware.NewJWTAuth(cfg.JWTSecret),
		chatLimiter,
		handlers.NewChatHandler(responder, activities, logger),
		handlers.NewBlindHandler(activities, logger),
		cfg.AllowedOrigins,
		cfg.TrustProxyHeaders,
		logger,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.GeminiTimeoutSecs)*time.Second + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(fmt.Sprintf("✓ ONOE chat relay ready on http://localhost:%s", cfg.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

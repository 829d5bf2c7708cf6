package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/caprice1026-disc/aws-parody-page/configs"
	"github.com/caprice1026-disc/aws-parody-page/handlers"
	AIHandler "github.com/caprice1026-disc/aws-parody-page/handlers/ai"
	"github.com/caprice1026-disc/aws-parody-page/metrics"
	"github.com/caprice1026-disc/aws-parody-page/middlewares"
	AIRepository "github.com/caprice1026-disc/aws-parody-page/repositories/ai"
	AIService "github.com/caprice1026-disc/aws-parody-page/services/ai"
	"github.com/caprice1026-disc/aws-parody-page/utils"
)

func main() {
	// Environment Variables
	envErr := godotenv.Load(".env")

	config := configs.LoadConfig()
	slog.SetDefault(utils.NewLogger(config.LogLevel))

	if envErr != nil {
		slog.Warn(".env file not loaded, using environment variables")
	}
	if config.OpenAIAPIKey == "" {
		if config.FallbackEnabled {
			slog.Warn("OPENAI_API_KEY is not set, every response will use the offline generator")
		} else {
			slog.Warn("OPENAI_API_KEY is not set, generation requests will fail")
		}
	}

	// Repository Initialization
	var aiRepository *AIRepository.Repository
	if config.OpenAIBaseURL != "" {
		aiRepository = AIRepository.NewRepositoryWithBaseURL(config.OpenAIAPIKey, config.OpenAIBaseURL)
	} else {
		aiRepository = AIRepository.NewRepository(config.OpenAIAPIKey)
	}

	// Service Initialization
	aiService := AIService.NewAIService(aiRepository, config)

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	aiHandler := AIHandler.NewHandler(aiService)

	// Router Initialize
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.Metrics())
	router.Use(configs.CorsConfig(config.AllowedOrigins))

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.GET("/healthz", mainHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.NoRoute(mainHandler.NotFound)

	// API Routes
	rateLimit := middlewares.NewRateLimitMiddleware(config.RateLimitPerMinute)
	api := router.Group("/api")
	api.Use(rateLimit.RateLimit())
	api.POST("/generate", aiHandler.Generate)

	// Start Server
	server := &http.Server{
		Addr:    ":" + config.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.SHUTDOWN_TIMEOUT)
		defer cancel()
		slog.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		slog.Error("server error", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/config"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/detection"
	handlers "github.com/ahmedzukhrufrao/SendSafe/pkg/handlers/http"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/httpx"
	infraLogger "github.com/ahmedzukhrufrao/SendSafe/pkg/infra/logger"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/providers/factory"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/middleware"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/sanitizer"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	window, err := cfg.RateLimit.WindowDuration()
	if err != nil {
		logger.Fatalf("Failed to parse rate limit window: %v", err)
	}
	limiter := ratelimit.NewLimiter(cfg.RateLimit.MaxRequests, window, nil)

	san := sanitizer.New(sanitizer.Config{
		MaxLength: cfg.Sanitizer.MaxLength,
		MinLength: cfg.Sanitizer.MinLength,
	})

	locator := factory.NewProviderLocator()
	providerClient, err := locator.Get(cfg.Provider.Name, cfg.Provider.APIKey)
	if err != nil {
		logger.Fatalf("Failed to initialize provider: %v", err)
	}

	breakerTimeout, err := cfg.Breaker.TimeoutDuration()
	if err != nil {
		logger.Fatalf("Failed to parse breaker timeout: %v", err)
	}
	breaker := httpx.NewCircuitBreaker(logger, "model-completions", breakerTimeout, cfg.Breaker.MaxFailures)

	service := detection.NewService(
		logger,
		san,
		providerClient,
		cfg.Provider.Name,
		&providers.Config{
			Credentials:  providers.Credentials{ApiKey: cfg.Provider.APIKey},
			Model:        cfg.Provider.Model,
			MaxTokens:    cfg.Provider.MaxTokens,
			Temperature:  cfg.Provider.Temperature,
			SystemPrompt: detection.SystemPrompt,
			Instructions: cfg.Provider.Instructions,
		},
		breaker,
		nil,
	)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, cfg.Auth.APIToken),
		AdminAuthMiddleware: middleware.NewAuthMiddleware(logger, cfg.Auth.AdminToken),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(logger, limiter),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(cfg.Metrics.Enabled),
		CORSMiddleware:      middleware.NewCORSMiddleware(cfg.CORS.AllowOrigins),
		RecoverMiddleware:   middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		AnalyzeHandler:            handlers.NewAnalyzeHandler(logger, service),
		RateLimitStatusHandler:    handlers.NewRateLimitStatusHandler(logger, limiter),
		RateLimitStatsHandler:     handlers.NewRateLimitStatsHandler(logger, limiter),
		ClearRateLimitHandler:     handlers.NewClearRateLimitHandler(logger, limiter),
		ClearAllRateLimitsHandler: handlers.NewClearAllRateLimitsHandler(logger, limiter),
		SweepRateLimitsHandler:    handlers.NewSweepRateLimitsHandler(logger, limiter),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	stopSweeper := startSweeper(logger, limiter, cfg)
	defer stopSweeper()

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down server cleanly")
	}
}

// startSweeper drives the limiter's idle-entry sweep; the limiter itself has
// no internal scheduling.
func startSweeper(logger *logrus.Logger, limiter *ratelimit.Limiter, cfg *config.Config) func() {
	interval, err := time.ParseDuration(cfg.RateLimit.SweepEvery)
	if err != nil || interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if removed := limiter.Sweep(); removed > 0 {
					logger.WithField("removed", removed).Info("swept expired rate limit entries")
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

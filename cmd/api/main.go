package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/healthmate/platform/internal/admin"
	"github.com/healthmate/platform/internal/advisor"
	"github.com/healthmate/platform/internal/api/router"
	"github.com/healthmate/platform/internal/bookings"
	appconfig "github.com/healthmate/platform/internal/config"
	"github.com/healthmate/platform/internal/doctors"
	"github.com/healthmate/platform/internal/identity"
	"github.com/healthmate/platform/internal/notify"
	"github.com/healthmate/platform/internal/observability/metrics"
	"github.com/healthmate/platform/internal/reports"
	"github.com/healthmate/platform/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	var logger *logging.Logger
	if cfg.IsDevelopment() {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting healthmate API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Storage. Without DATABASE_URL everything runs in memory, which is the
	// local-development default.
	var (
		roster      doctors.Repository
		ledger      bookings.Repository
		registry    identity.Repository
		reportStore reports.Repository
	)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("database unreachable", "error", err)
			os.Exit(1)
		}
		roster = doctors.NewPostgresRepository(pool)
		ledger = bookings.NewPostgresRepository(pool)
		registry = identity.NewPostgresRepository(pool)
		reportStore = reports.NewPostgresRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		memRoster := doctors.NewInMemoryRepository()
		roster = memRoster
		ledger = bookings.NewInMemoryRepository(memRoster)
		registry = identity.NewInMemoryRepository()
		reportStore = reports.NewInMemoryRepository()
	}

	seeded, err := roster.SeedIfEmpty(ctx, doctors.SeedRoster())
	if err != nil {
		logger.Error("failed to seed doctor roster", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		logger.Info("doctor roster seeded", "count", seeded)
	}

	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)
	advisorMetrics := metrics.NewAdvisorMetrics(prometheus.DefaultRegisterer)

	// Booking confirmations are best-effort email.
	var sender notify.EmailSender
	if s := notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName, logger); s != nil {
		sender = s
	}

	bookingService := bookings.NewService(ledger, roster, logger).WithMetrics(bookingMetrics)
	if notifier := notify.NewBookingNotifier(sender, cfg.BookingNotifyEmail, logger); notifier != nil {
		bookingService = bookingService.WithNotifier(notifier)
	}

	directory := doctors.NewDirectory(roster, logger)
	aggregator := admin.NewAggregator(ledger, registry)

	// The advisor is optional: without a Gemini key the rest of the API runs
	// and the AI routes are simply not mounted.
	var advisorHandler *advisor.Handler
	if cfg.GeminiAPIKey != "" {
		client, err := advisor.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create advisor client", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		advisorService := advisor.NewService(client, cfg.AdvisorTimeout, logger).WithMetrics(advisorMetrics)
		if redisClient := buildRedisClient(ctx, cfg, logger); redisClient != nil {
			advisorService = advisorService.WithTranscripts(advisor.NewTranscriptStore(redisClient, cfg.TranscriptTTL))
		}
		advisorHandler = advisor.NewHandler(advisorService, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI advisor routes disabled")
	}

	routerCfg := &router.Config{
		Logger:             logger,
		DoctorsHandler:     doctors.NewHandler(roster, directory, logger),
		ReportsHandler:     reports.NewHandler(reportStore, logger),
		BookingsHandler:    bookings.NewHandler(bookingService, logger),
		IdentityHandler:    identity.NewHandler(registry, logger),
		AdminHandler:       admin.NewHandler(aggregator, logger),
		AdvisorHandler:     advisorHandler,
		AdminAuthSecret:    cfg.AdminJWTSecret,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.New(routerCfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildRedisClient returns a verified Redis client or nil when transcripts
// are disabled or Redis is unreachable.
func buildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available, advisor history disabled", "error", err)
		return nil
	}
	return client
}

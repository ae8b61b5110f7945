// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/cskit/internal/admin"
	"github.com/carterperez-dev/cskit/internal/cart"
	"github.com/carterperez-dev/cskit/internal/config"
	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/events"
	"github.com/carterperez-dev/cskit/internal/health"
	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/middleware"
	"github.com/carterperez-dev/cskit/internal/order"
	"github.com/carterperez-dev/cskit/internal/preference"
	"github.com/carterperez-dev/cskit/internal/product"
	"github.com/carterperez-dev/cskit/internal/rating"
	"github.com/carterperez-dev/cskit/internal/schedule"
	"github.com/carterperez-dev/cskit/internal/server"
	"github.com/carterperez-dev/cskit/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("store opened", "backend", cfg.Store.Backend)

	publisher := setupPublisher(cfg.Events, logger)

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo, user.NewEmailRolePolicy(cfg.Roles))
	userHandler := user.NewHandler(userSvc)

	productSvc := product.NewService(product.NewRepository(store))
	productHandler := product.NewHandler(productSvc)

	cartSvc := cart.NewService(cart.NewRepository(store), productSvc)
	cartHandler := cart.NewHandler(cartSvc)

	engine := order.NewEngine(
		order.NewRepository(store),
		cartSvc,
		schedule.New(),
		publisher,
		cfg.Lifecycle,
	)
	orderHandler := order.NewHandler(engine)

	ratingHandler := rating.NewHandler(rating.NewService(engine))
	preferenceHandler := preference.NewHandler(preference.NewService(store))

	deps := []health.Dependency{{Name: "store", Checker: store}}
	if amqpPub, ok := publisher.(*events.AMQPPublisher); ok {
		deps = append(deps, health.Dependency{Name: "events", Checker: amqpPub})
	}
	healthHandler := health.NewHandler(deps...)

	adminCfg := admin.HandlerConfig{
		Service:      admin.NewService(userRepo, engine),
		Backend:      cfg.Store.Backend,
		StorePing:    store.Ping,
		PendingSteps: engine.Pending,
	}

	var limiterClient *redis.Client
	switch s := store.(type) {
	case *kv.SQLStore:
		adminCfg.DBStats = s.Stats
	case *kv.RedisStore:
		adminCfg.RedisStats = s.PoolStats
		limiterClient = s.Client()
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
		ServiceName:   cfg.Otel.ServiceName,
	})

	rateLimiter := middleware.NewRateLimiter(limiterClient, middleware.RateLimitConfig{
		Limit: middleware.PerWindow(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		KeyFunc:  middleware.KeyByIdentity,
		FailOpen: true,
	})

	mountRoutes(srv.Router(), healthHandler, []func(http.Handler) http.Handler{
		middleware.AttachIdentity(userSvc),
		middleware.Logger(logger),
		rateLimiter.Handler,
		middleware.SecurityHeaders(cfg.IsProduction()),
		middleware.CORS(cfg.CORS),
	}, func(r chi.Router) {
		userHandler.RegisterRoutes(r)
		productHandler.RegisterRoutes(r)
		cartHandler.RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
		ratingHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
		preferenceHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	engine.Close()
	logger.Info("order lifecycle stopped")

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	if err := store.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// mountRoutes keeps the health endpoints outside the application middleware
// so they never touch the store or spend rate-limit budget.
func mountRoutes(
	router chi.Router,
	checks *health.Handler,
	stack []func(http.Handler) http.Handler,
	api func(r chi.Router),
) {
	router.Use(middleware.RequestID)

	checks.RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(stack...)
		r.Route("/v1", api)
	})
}

func setupPublisher(cfg config.EventsConfig, logger *slog.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.NewLogPublisher(logger)
	}

	pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	if err != nil {
		logger.Warn("event broker unavailable, logging events instead",
			"error", err,
		)
		return events.NewLogPublisher(logger)
	}

	logger.Info("event broker connected", "exchange", cfg.Exchange)
	return pub
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

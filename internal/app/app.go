package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter/cellerhut"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/cache"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/config"
	handler "github.com/bringforthjoy101/cellerhut-ecom-api/internal/handler/http"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/database"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/health"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/middleware"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/tracing"
)

const serviceVersion = "1.0.0"

// App wires together all dependencies and runs the storefront API.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	tracerShutdown func(context.Context) error
	cancel         context.CancelFunc
	httpServer     *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "cellerhut-storefront",
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	healthHandler := health.NewHandler()

	// Initialize the optional Redis snapshot cache.
	var (
		rdb   *redis.Client
		store cache.Store = cache.Noop{}
	)
	if cfg.RedisAddr != "" {
		redisCfg := database.DefaultRedisConfig()
		redisCfg.Addr = cfg.RedisAddr
		redisCfg.Password = cfg.RedisPass
		redisCfg.DB = cfg.RedisDB

		rdb, err = database.NewRedisClient(ctx, redisCfg)
		if err != nil {
			_ = tracerShutdown(context.Background())
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		store = cache.NewRedisStore(rdb, cfg.CacheTTL())
		healthHandler.RegisterNonCritical("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	} else {
		logger.Info("snapshot cache disabled")
	}

	// Initialize the Celler Hut API client.
	client, err := upstream.NewClient(upstream.Config{
		BaseURL:    cfg.UpstreamURL,
		Timeout:    cfg.UpstreamTimeout(),
		MaxRetries: cfg.UpstreamMaxRetries,
		Breaker:    cfg.Breaker(),
	}, upstream.NewTokenStore(cfg.UpstreamToken), logger)
	if err != nil {
		closeRedis(rdb, logger)
		_ = tracerShutdown(context.Background())
		return nil, fmt.Errorf("create upstream client: %w", err)
	}
	logger.Info("celler hut client initialized",
		slog.String("base_url", cfg.UpstreamURL),
		slog.Duration("timeout", cfg.UpstreamTimeout()),
	)

	healthHandler.Register("celler-hut-api", client.Health)
	healthHandler.RegisterNonCritical("celler-hut-breaker", func(context.Context) error {
		if client.BreakerState() == gobreaker.StateOpen {
			return errors.New("circuit breaker open")
		}
		return nil
	})

	// Build the dependency graph.
	authAdapter := cellerhut.NewAuthAdapter(client)
	orderAdapter := cellerhut.NewOrderAdapter(client)
	svcs := handler.Services{
		Auth:       service.NewAuthService(authAdapter, logger),
		Addresses:  service.NewAddressService(cellerhut.NewAddressAdapter(client), logger),
		Categories: service.NewCategoryService(cellerhut.NewCategoryAdapter(client), store, logger),
		Products:   service.NewProductService(cellerhut.NewProductAdapter(client), store, logger),
		Orders:     service.NewOrderService(orderAdapter, logger),
		Tracking:   service.NewTrackingService(orderAdapter, logger),
		Users:      service.NewUserService(cellerhut.NewUserAdapter(client), authAdapter, logger),
	}

	// HTTP router. The rate limiter's cleanup loop lives as long as the app.
	appCtx, appCancel := context.WithCancel(context.Background())
	router := handler.NewRouter(appCtx, svcs, healthHandler, handler.RouterConfig{
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			ExposedHeaders: []string{"X-Correlation-ID"},
			MaxAge:         cfg.CORSMaxAge,
		},
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.UpstreamTimeout() + 5*time.Second,
		CatalogMaxAge:  cfg.CatalogMaxAge,
	}, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout() + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		tracerShutdown: tracerShutdown,
		cancel:         appCancel,
		httpServer:     httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		_ = a.Shutdown()
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}
	a.cancel()

	closeRedis(a.rdb, a.logger)

	// Flush pending spans.
	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}

func closeRedis(rdb *redis.Client, logger *slog.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		logger.Error("redis close error", slog.String("error", err.Error()))
	}
}

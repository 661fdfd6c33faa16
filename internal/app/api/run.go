package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	ordersserver "github.com/Apurer/go-orders-api/go"
	ordermemory "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/persistence/postgres"
	orderworkflows "github.com/Apurer/go-orders-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/go-orders-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-orders-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/go-orders-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-orders-api/internal/platform/postgres"
)

const serviceName = "orders-api"

// Run boots the Orders HTTP API with observability, the order store, and workflows wired.
// It blocks until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.SettingsFromEnv(serviceName, cfg.StoreDriver, cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderRepo, cleanupRepo := BuildOrderRepository(ctx, cfg, logger)
	defer cleanupRepo()
	_, sharedStore := orderRepo.(*orderpostgres.Repository)
	orderService := orderobs.New(
		orderapp.NewService(orderRepo),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	var workflows orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if !sharedStore {
		// The worker runs in its own process and cannot see this process's memory store.
		logger.Info("order store is process-local, creating orders inline")
	} else if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, creating orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName), ordersserver.RequestLogger(logger))
	router := ordersserver.NewRouterWithGinEngine(engine, ordersserver.ApiHandleFunctions{
		OrderAPI: ordersserver.NewOrderAPI(orderService, workflows),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Orders API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Orders API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down Orders API", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// BuildOrderRepository selects the order store. Postgres is used only when configured and
// reachable; otherwise the in-memory store is returned.
func BuildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (orderports.Repository, func()) {
	if cfg.StoreDriver != StoreDriverPostgres {
		logger.Info("order store configured in memory")
		return ordermemory.NewRepository(), func() {}
	}
	db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return ordermemory.NewRepository(), cleanup
	}
	repo, err := orderpostgres.NewRepository(db)
	if err != nil {
		logger.Warn("postgres order store unusable, falling back to in-memory store", slog.String("error", err.Error()))
		cleanup()
		return ordermemory.NewRepository(), func() {}
	}
	logger.Info("order store configured with postgres")
	return repo, cleanup
}

// ConnectTemporalClient dials Temporal with tracing and structured logging attached.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

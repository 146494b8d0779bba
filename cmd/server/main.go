// Package main is the entry point for the quick node clone service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/quick-node-clone/internal/adapters/http"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/i18n"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/memstore"
	"github.com/jsamuelsen11/quick-node-clone/internal/app"
	"github.com/jsamuelsen11/quick-node-clone/internal/app/clone"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/config"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/health"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/httpclient"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/identity"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/logging"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/telemetry"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
	groupAPIServiceName   = "group-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memstore.Store](injector))
	if cfg.Groups.Enabled {
		registry.Register(do.MustInvoke[*acl.GroupClient](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.IdentityGenerator, error) {
		return identity.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*memstore.Store, error) {
		store, err := memstore.New(do.MustInvoke[ports.IdentityGenerator](i), logger)
		if err != nil {
			return nil, fmt.Errorf("creating entity store: %w", err)
		}
		if cfg.Store.Fixtures != "" {
			if err := store.LoadFixturesFile(cfg.Store.Fixtures); err != nil {
				return nil, fmt.Errorf("loading fixtures: %w", err)
			}
			logger.Info("entity store seeded", slog.String("fixtures", cfg.Store.Fixtures))
		}
		return store, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Translator, error) {
		t, err := i18n.New(cfg.I18n.Translations)
		if err != nil {
			return nil, fmt.Errorf("building translation catalog: %w", err)
		}
		return t, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Groups.Client, groupAPIServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.GroupClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewGroupClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FormService, error) {
		store := do.MustInvoke[*memstore.Store](i)
		ids := do.MustInvoke[ports.IdentityGenerator](i)
		return app.NewFormService(store, store, ids, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*clone.Hooks, error) {
		hooks := clone.NewHooks()
		hooks.OnClonedEntity(ports.ClonedEntityFunc(func(ctx context.Context, cloned, original *entity.Entity) {
			logging.FromContext(ctx).DebugContext(ctx, "node variant cloned",
				slog.String("source_id", original.ID()),
				slog.String("language", cloned.Language()),
				slog.String("uuid", cloned.UUID()),
			)
		}))
		return hooks, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CloneService, error) {
		store := do.MustInvoke[*memstore.Store](i)
		opts := []clone.Option{
			clone.WithIdentityGenerator(do.MustInvoke[ports.IdentityGenerator](i)),
			clone.WithTranslator(do.MustInvoke[ports.Translator](i)),
			clone.WithHooks(do.MustInvoke[*clone.Hooks](i)),
			clone.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			clone.WithClearUnresolvedBlocks(cfg.Clone.ClearUnresolvedBlocks),
			clone.WithLogger(logger),
		}
		if cfg.Groups.Enabled {
			opts = append(opts, clone.WithGroupLookup(do.MustInvoke[*acl.GroupClient](i)))
		}
		forms := do.MustInvoke[ports.FormService](i)
		return clone.NewService(store, cfg.Settings(), forms, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.NodeHandler, error) {
		svc := do.MustInvoke[ports.CloneService](i)
		return handlers.NewNodeHandler(svc, do.MustInvoke[*memstore.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.FormHandler, error) {
		return handlers.NewFormHandler(do.MustInvoke[ports.FormService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		nodeH := do.MustInvoke[*handlers.NodeHandler](i)
		formH := do.MustInvoke[*handlers.FormHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(nodeH, formH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(do.MustInvoke[ports.IdentityGenerator](i)),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

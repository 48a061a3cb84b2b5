package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/jobpulse/internal/adapters/http/api"
	"github.com/okian/jobpulse/internal/adapters/http/site"
	"github.com/okian/jobpulse/internal/adapters/http/swagger"
	"github.com/okian/jobpulse/internal/adapters/source"
	app "github.com/okian/jobpulse/internal/app"
	"github.com/okian/jobpulse/internal/config"
	"github.com/okian/jobpulse/internal/domain/roles"
	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/pkg/logger"
	"github.com/okian/jobpulse/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom system metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, loggerInstance)
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.String("data_path", cfg.DataPath), logger.Error(err))
		os.Exit(1)
	}
	defer svc.Stop()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService builds the dashboard service from configuration.
func newService(cfg *config.Config, log logger.Logger) *app.Service {
	extractorOpts := []roles.Option{
		roles.WithClusterCount(cfg.ClusterCount),
		roles.WithSeed(cfg.ClusterSeed),
		roles.WithRestarts(cfg.ClusterRestarts),
		roles.WithDocFreqBounds(cfg.MinDocFreq, cfg.MaxDocFreq),
		roles.WithLogger(log.Named("roles")),
	}
	if len(cfg.PartialRoleTerms) > 0 {
		extractorOpts = append(extractorOpts, roles.WithPartialTerms(cfg.PartialRoleTerms))
	}

	return app.New(
		app.WithLogger(log),
		app.WithDataPath(cfg.DataPath),
		app.WithDateColumn(cfg.DateColumn),
		app.WithSourceOptions(source.WithSheet(cfg.Sheet), source.WithTable(cfg.SQLiteTable)),
		app.WithClassifier(status.NewClassifier(status.WithRejectAfter(cfg.RejectAfter()))),
		app.WithExtractor(roles.NewExtractor(extractorOpts...)),
	)
}

// newMux registers every HTTP route.
func newMux(ctx context.Context, svc *app.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Register API docs under /api-docs and /openapi.yaml
	swagger.Register(ctx, mux)

	// Register dashboard API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	// Root redirect and static assets.
	site.Register(ctx, mux)

	return mux
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}

// Command matchd serves a bipartite graph store and its maximum-matching engine over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/internal/config"
	"github.com/katalvlaran/bimatch/internal/httpapi"
	"github.com/katalvlaran/bimatch/internal/logging"
	"github.com/katalvlaran/bimatch/internal/metrics"
	"github.com/katalvlaran/bimatch/internal/ratelimit"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML, TOML or JSON config file")
	flag.Parse()

	cfg, err := config.NewLoader().Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Format, cfg.Logging.Level, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("configuration loaded", zap.Strings("sources", cfg.LoadedFrom))

	g := core.NewGraph()
	if err = seedGraph(g, cfg.Seed); err != nil {
		logger.Fatal("Failed to seed graph", zap.Error(err))
	}
	stats := g.Stats()
	logger.Info("graph ready",
		zap.Int("nodes", stats.NodeCount),
		zap.Int("edges", stats.EdgeCount),
	)

	var opts []httpapi.Option
	opts = append(opts,
		httpapi.WithCORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge),
		httpapi.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector(cfg.Metrics.Namespace)
		collector.ObserveGraph(stats)
		opts = append(opts, httpapi.WithMetrics(collector))
	}
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Stop()
		opts = append(opts, httpapi.WithRateLimiter(limiter))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.New(g, logger, opts...).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", zap.Stringer("signal", sig))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
	_ = logger.Sync()
}

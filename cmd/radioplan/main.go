package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hinokzakir/RadioPlan/internal/catalog"
	"github.com/hinokzakir/RadioPlan/internal/config"
	"github.com/hinokzakir/RadioPlan/internal/netcheck"
	"github.com/hinokzakir/RadioPlan/internal/service"
	"github.com/hinokzakir/RadioPlan/internal/source/srapi"
	"github.com/hinokzakir/RadioPlan/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	source := srapi.New(srapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout),
	}, logger)

	store := catalog.NewStore()
	synchronizer := service.NewSynchronizer(source, logger)
	probe := netcheck.New(cfg.Probe.Address, time.Duration(cfg.Probe.Timeout), logger)
	ui := tui.New(os.Stdout)

	coordinator := service.NewCoordinator(store, source, synchronizer, probe, ui, logger, cfg.Refresh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting radioplan",
		"source", srapi.SourceName,
		"interval", cfg.Refresh.Interval,
	)

	go func() {
		if err := coordinator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("coordinator error", "error", err)
			os.Exit(1)
		}
	}()

	if err := ui.Run(ctx, coordinator); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("ui error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

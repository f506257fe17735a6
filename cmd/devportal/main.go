package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/dmitrymomot/devportal/bootstrap"
	"github.com/dmitrymomot/devportal/config"
	"github.com/dmitrymomot/devportal/middlewares"
	"github.com/dmitrymomot/devportal/pkg/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("DEVPORTAL_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())
	if err != nil {
		slog.Error("failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(log)

	portal, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Error("failed to start portal", slog.Any("error", err))
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM.
	if err := portal.Run(context.Background()); err != nil {
		log.Error("portal stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

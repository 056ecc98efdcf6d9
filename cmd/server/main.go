package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/config"
	"github.com/peve-dev/peve-backend/internal/infrastructure/container"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register(prometheus.DefaultRegisterer)

	app, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error closing application: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("peve api starting (env=%s)", cfg.Server.Env)
	return app.Server.Run(ctx)
}

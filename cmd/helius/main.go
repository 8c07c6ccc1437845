package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/config"
	"github.com/gabapcia/helius-go/internal/handlers/cli"
	"github.com/gabapcia/helius-go/internal/pkg/logger"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"
	"github.com/gabapcia/helius-go/internal/pkg/telemetry"

	"github.com/pterm/pterm"
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	svc, err := helius.New(cfg.APIKey,
		helius.WithCluster(helius.Cluster(cfg.Cluster)),
		helius.WithTimeout(cfg.HTTPTimeout),
		helius.WithRetryMax(cfg.HTTPRetryMax),
		helius.WithMaxMintlistPages(cfg.MaxMintlistPages),
	)
	if err != nil {
		return err
	}

	return cli.Run(ctx, svc, retry.New())
}

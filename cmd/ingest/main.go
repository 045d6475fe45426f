package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"

	"github.com/afl-project/supercoach-ingest/internal/app"
	"github.com/afl-project/supercoach-ingest/internal/config"
	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
)

func main() {
	// A missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := app.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("ingest run failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	out, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("encode run report", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Println(string(out))
}

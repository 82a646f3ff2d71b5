// Command filevorad runs the FileVora daemon. It serves the HTTP API,
// owns the conversion history database, and holds the single-instance
// lock for the configured data directory.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"filevora/internal/config"
	"filevora/internal/daemon"
	"filevora/internal/history"
	"filevora/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := history.Open(cfg)
	if err != nil {
		logger.Error("open history store", logging.Error(err))
		return
	}

	d, err := daemon.New(cfg, store, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		store.Close()
		return
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		return
	}
	logger.Info("filevorad listening",
		logging.String("bind", cfg.Paths.Bind),
		logging.String("origin", cfg.API.Origin))

	<-ctx.Done()
	logger.Info("filevorad shutting down")
}

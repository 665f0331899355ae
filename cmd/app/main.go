package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driftbyte/fluxforge/internal/bootstrap"
	"github.com/driftbyte/fluxforge/internal/config"
	"github.com/driftbyte/fluxforge/internal/database"
	"github.com/driftbyte/fluxforge/internal/economy"
	"github.com/driftbyte/fluxforge/internal/forge"
	"github.com/driftbyte/fluxforge/internal/mutation"
	"github.com/driftbyte/fluxforge/internal/rng"
	"github.com/driftbyte/fluxforge/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// A fixed FORGE_SEED pins every new session's generator, which makes
	// staging runs replayable. Unset, each session seeds from the clock.
	newSeq := rng.NewFromTime
	if cfg.ForgeSeed != 0 {
		seed := cfg.ForgeSeed
		newSeq = func() *rng.Sequence { return rng.New(seed) }
	}

	forgeService := forge.NewService(repos.Game, newSeq)
	economyService := economy.NewService(repos.Game)
	mutationService := mutation.NewService(repos.Game)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, forgeService, economyService, mutationService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}

package main

import (
	"channel-relay/domain"
	"channel-relay/infrastructure/discord"
	"channel-relay/infrastructure/storage"
	"channel-relay/internal"
	"channel-relay/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Forwarding rules, loaded once
	repository := storage.NewForwardingRepository(config.ChannelsFile, logger)
	if err := repository.Load(); err != nil {
		logger.Error("❌ Forwarding config could not be loaded, starting empty", "error", err)
	}

	// 3. Discord session and relay
	session, err := discord.NewSession(config.Token)
	if err != nil {
		return exitConfig, err
	}
	gateway := discord.NewGateway(session, logger)
	sources := domain.DefaultWatchedSources()
	relay := services.NewRelayService(logger, sources, repository, gateway)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gateway.Open(ctx, relay); err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing Discord session...")
		_ = gateway.Close()
	}()
	logger.Info("Relay running", "watched_channels", sources.Len(), "channels_file", config.ChannelsFile)

	// 4. No shutdown command: run until signalled
	<-ctx.Done()
	logger.Info("Relay stopped")
	return exitOK, nil
}

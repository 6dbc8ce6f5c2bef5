package main

import (
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the relay lifecycle, and centralizes error reporting.
// Deferred cleanup always runs before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Moderation
	charReplacement, err := internal.CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return err
	}
	words := internal.SplitWords(config.CensoredWords)
	moderator, err := moderation.NewModerator(words, charReplacement, log)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored words loaded", len(words)))

	// 3. Setup Supervision & Orchestration
	metrics := observability.NewMetrics("chat_relay")
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, moderator, metrics, runtime.SessionConfig{
		OutboundBufferSize: config.OutboundBufferSize,
		WriteTimeout:       config.WriteTimeout,
		MaxLineLength:      config.MaxLineLength,
	})

	// 4. Listening socket, failing here is fatal
	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	orchestrator.Serve(listener)

	if config.MetricsAddr != "" {
		orchestrator.Add(observability.NewMetricsServer(log, config.MetricsAddr, metrics))
	}
	if config.HealthInterval > 0 {
		orchestrator.Add(
			workers.NewHealthMonitoringWorker(log, orchestrator.Participants, config.HealthInterval),
			workers.NewChannelCapacityWorker(log, orchestrator.Members(), metrics,
				config.HealthInterval, config.LowCapacityThreshold),
		)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Run until a signal arrives and every worker has stopped
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

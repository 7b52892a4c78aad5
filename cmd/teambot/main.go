package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"team-bot/commands"
	"team-bot/contract"
	"team-bot/infrastructure/discord"
	"team-bot/observability"
	"team-bot/runtime"
	"team-bot/runtime/workers"
	"team-bot/services"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the bot and blocks until SIGINT or SIGTERM.
// Deferred cleanups run before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Platform session
	session, err := discord.NewSession(config.BotToken)
	if err != nil {
		return err
	}

	// 3. Guild runtimes, one settings file per guild
	monitor := observability.NewMonitoringManager(log)
	registry := runtime.NewGuildRegistry(config.SaveDataDir,
		func(guildID string) contract.IGuild {
			return discord.NewGuild(guildID, session, log)
		},
		log,
		services.WithMoveReason(config.MoveReason),
	)
	router := commands.NewRouter(config.CommandPrefix, registry, discord.NewMessenger(session, log), monitor, config.NoticeTTL, log)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised workers, until a signal arrives
	log.Info("Starting team bot", "prefix", config.CommandPrefix, "save_data_dir", config.SaveDataDir)
	workers.NewSupervisor(log, config.RestartInterval).
		Add(
			discord.NewGateway(session, router, log),
			workers.NewHealthWorker(log, monitor, config.HealthInterval),
		).
		Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

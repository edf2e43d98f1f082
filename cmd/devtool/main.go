package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/osse101/PotionGacha_Go/internal/config"
)

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&WaitForDBCommand{})
	registry.Register(&MigrateCommand{})
	registry.Register(&SeedCommand{})
	return registry
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = cmd.Run(ctx, cfg, os.Args[2:])
	stop()
	if err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/legaldeck/backend/internal/config"
	"github.com/legaldeck/backend/internal/logging"
	"github.com/legaldeck/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  apply all pending migrations
  down          roll back the most recent migration
  status        print the applied state of every migration`)
	os.Exit(1)
}

func main() {
	cfg, err := config.LoadMigrate()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "up", "down", "status":
	default:
		usage()
	}

	if err := repository.Migrate(context.Background(), cfg.DatabaseURL, cmd); err != nil {
		logging.Fatal("migration failed", "command", cmd, "error", err)
	}
	slog.Info("migration finished", "command", cmd)
}

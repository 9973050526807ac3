package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ecocart/config"
	logs "ecocart/internal/infra/log"
	"ecocart/internal/infra/persistence/migration"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Usage:
//
//	migrate -direction up
//	migrate -direction down -steps 1
func main() {
	direction := flag.String("direction", string(migration.DirectionUp), "Migration direction (up, down)")
	steps := flag.Int("steps", 0, "Number of migrations to apply, 0 applies all")
	flag.Parse()

	if err := run(migration.Direction(*direction), *steps); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %+v\n", err)
		os.Exit(1)
	}
}

func run(direction migration.Direction, steps int) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	logger.Info("Running migrations",
		slog.String("direction", string(direction)),
		slog.Int("steps", steps),
	)

	return migration.Run(sqlDB, direction, steps, logger)
}

// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"database/sql"
	"embed"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Direction selects which way Run migrates.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Run migrates the schema. Steps <= 0 applies every pending migration in the direction.
func Run(db *sql.DB, direction Direction, steps int, logger *slog.Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	switch {
	case steps > 0 && direction == DirectionDown:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == DirectionDown:
		err = m.Down()
	case direction == DirectionUp:
		err = m.Up()
	default:
		return errors.Errorf("unknown migration direction: %s", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Schema already up to date")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "failed to read schema version")
	}

	logger.Info("Migrations applied",
		slog.String("direction", string(direction)),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration instance")
	}

	return m, nil
}

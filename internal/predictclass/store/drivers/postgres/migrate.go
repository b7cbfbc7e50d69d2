package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/postgres/migrations"
)

// ApplyMigrations applies any pending migrations embedded in the binary.
func (s *Store) ApplyMigrations() error {
	driver, err := postgres.WithInstance(s.DB(), &postgres.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

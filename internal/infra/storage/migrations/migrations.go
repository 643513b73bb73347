// Package migrations применяет встроенные SQL миграции схемы.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

var ErrMigrate = errors.New("migrations: failed to apply migrations")

// Up применяет все миграции через отдельное соединение по databaseURL (postgres://...).
// Отсутствие новых миграций ошибкой не считается.
func Up(databaseURL string) error {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("%w: open embedded source: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMigrate, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}
	return nil
}

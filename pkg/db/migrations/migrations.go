package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const (
	migrationsDir = "sql"
	tableName     = "schema_migrations"
)

// goose keeps its settings in package globals
var gooseMu sync.Mutex

// Migrator applies the round journal schema to a SQLite database
type Migrator struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB, logger *logging.Logger) *Migrator {
	if logger == nil {
		logger = logging.Default
	}
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) configure() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(logging.NewGooseLogger(m.logger))
	goose.SetTableName(tableName)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}
	return nil
}

// MigrateUp applies all pending migrations
func (m *Migrator) MigrateUp() error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := m.configure(); err != nil {
		return err
	}
	if err := goose.Up(m.db, migrationsDir); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration
func (m *Migrator) MigrateDown() error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := m.configure(); err != nil {
		return err
	}
	if err := goose.Down(m.db, migrationsDir); err != nil {
		return fmt.Errorf("error rolling back migration: %w", err)
	}
	return nil
}

// Version returns the version of the most recently applied migration
func (m *Migrator) Version() (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := m.configure(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersion(m.db)
	if err != nil {
		return 0, fmt.Errorf("error reading migration version: %w", err)
	}
	return version, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/infrastructure/migrations"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	memoryPath        = ":memory:"
	dirPermissions    = 0o750
	connectionTimeout = 5 * time.Second
	msPerSecond       = 1000
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is a single-writer SQLite handle.
type DB struct {
	*sql.DB
	path string
}

// Open creates the database file when needed and verifies the connection.
// An in-memory database lives as long as its one connection.
func Open(cfg config.SQLite) (*DB, error) {
	connStr := memoryPath

	if cfg.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), dirPermissions); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}

		connStr = fmt.Sprintf("file:%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeout*msPerSecond)

		if cfg.WALMode {
			connStr += "&_journal_mode=WAL&_synchronous=NORMAL"
		}
	}

	sqlDB, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	return &DB{DB: sqlDB, path: cfg.Path}, nil
}

func (db *DB) Name() string {
	return "storage"
}

func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) Path() string {
	return db.path
}

// Migrate applies the embedded migrations that are not yet recorded, each in
// its own transaction.
func (db *DB) Migrate(ctx context.Context, log logger.Logger) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	applied := make(map[string]struct{})

	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("listing applied migrations: %w", err)
	}

	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			_ = rows.Close()

			return fmt.Errorf("scanning applied migration: %w", err)
		}
		applied[version] = struct{}{}
	}

	_ = rows.Close()

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating applied migrations: %w", err)
	}

	names, err := migrations.UpFiles(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	for _, name := range names {
		version := migrations.Version(name)
		if _, ok := applied[version]; ok {
			continue
		}

		if err := db.applyMigration(ctx, name, version); err != nil {
			return err
		}

		log.Info().Str("migration", name).Msg("migration applied")
	}

	return nil
}

func (db *DB) applyMigration(ctx context.Context, name, version string) error {
	content, err := migrationsFS.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("reading migration %s: %w", name, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %s: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for idx, stmt := range migrations.SplitStatements(string(content)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d in %s failed: %w", idx+1, name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("recording migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %s: %w", name, err)
	}

	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/safar/go-sql-seed/internal/config"
)

func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// DSN returns the driver connection string. SQLite paths get foreign key
// enforcement turned on for every pooled connection.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.Driver != config.DriverSQLite {
		return cfg.URL
	}

	dsn := cfg.URL
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// RequireExisting fails with ErrDatabaseNotFound when a SQLite database file
// is absent. Opening it would silently create an empty one.
func RequireExisting(cfg *config.DatabaseConfig) error {
	if cfg.Driver != config.DriverSQLite {
		return nil
	}

	path := strings.TrimPrefix(cfg.URL, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrDatabaseNotFound)
		}
		return fmt.Errorf("stat database file: %w", err)
	}
	return nil
}

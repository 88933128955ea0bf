package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"strings"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Migrate runs every embedded migration for direction. Up files run in name
// order, down files in reverse.
func Migrate(ctx context.Context, db *sql.DB, direction string) (int, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return 0, fmt.Errorf("direction must be %q or %q, got %q", DirectionUp, DirectionDown, direction)
	}

	files, err := migrationFiles(direction)
	if err != nil {
		return 0, err
	}

	for _, name := range files {
		content, err := fs.ReadFile(migrationFS, "migrations/"+name)
		if err != nil {
			return 0, fmt.Errorf("read migration file %s: %w", name, err)
		}

		log.Printf("Running migration: %s", name)
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return 0, fmt.Errorf("execute migration %s: %w", name, err)
		}
	}

	return len(files), nil
}

// Reset drops and recreates the schema.
func Reset(ctx context.Context, db *sql.DB) error {
	if _, err := Migrate(ctx, db, DirectionDown); err != nil {
		return err
	}
	if _, err := Migrate(ctx, db, DirectionUp); err != nil {
		return err
	}
	return nil
}

func migrationFiles(direction string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), fmt.Sprintf(".%s.sql", direction)) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)
	if direction == DirectionDown {
		slices.Reverse(names)
	}

	return names, nil
}

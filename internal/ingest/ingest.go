// Package ingest loads the generated CSV files into the relational store.
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/safar/go-sql-seed/internal/csvfile"
	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/store"
)

type Summary struct {
	Customers    int
	Products     int
	Orders       int
	OrderDetails int
	Payments     int
}

// Run recreates the schema and loads all five files from dataDir. Tables are
// loaded parent first, each in its own transaction, so a failure leaves the
// earlier tables populated and the failing one empty.
func Run(ctx context.Context, db *sql.DB, dataDir string) (*Summary, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dataDir, database.ErrDataDirNotFound)
		}
		return nil, fmt.Errorf("stat data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dataDir, database.ErrDataDirNotFound)
	}

	if err := store.Reset(ctx, db); err != nil {
		return nil, fmt.Errorf("recreate schema: %w", err)
	}

	summary := &Summary{}
	steps := []struct {
		file  string
		count *int
		load  func(path string) (int, error)
	}{
		{csvfile.CustomersFile, &summary.Customers, func(path string) (int, error) {
			return load(ctx, db, path, csvfile.ReadCustomers, store.InsertCustomers)
		}},
		{csvfile.ProductsFile, &summary.Products, func(path string) (int, error) {
			return load(ctx, db, path, csvfile.ReadProducts, store.InsertProducts)
		}},
		{csvfile.OrdersFile, &summary.Orders, func(path string) (int, error) {
			return load(ctx, db, path, csvfile.ReadOrders, store.InsertOrders)
		}},
		{csvfile.OrderDetailsFile, &summary.OrderDetails, func(path string) (int, error) {
			return load(ctx, db, path, csvfile.ReadOrderLines, store.InsertOrderLines)
		}},
		{csvfile.PaymentsFile, &summary.Payments, func(path string) (int, error) {
			return load(ctx, db, path, csvfile.ReadPayments, store.InsertPayments)
		}},
	}

	for _, step := range steps {
		n, err := step.load(filepath.Join(dataDir, step.file))
		if err != nil {
			return summary, fmt.Errorf("load %s: %w", step.file, err)
		}
		*step.count = n
		log.Printf("Loaded %d rows from %s", n, step.file)
	}

	return summary, nil
}

func load[T any](
	ctx context.Context,
	db *sql.DB,
	path string,
	read func(string) ([]T, error),
	insert func(context.Context, *sql.Tx, []T) error,
) (int, error) {
	rows, err := read(path)
	if err != nil {
		return 0, err
	}

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		return insert(ctx, tx, rows)
	})
	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

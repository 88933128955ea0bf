//go:build integration

package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/safar/go-sql-seed/internal/config"
	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := postgres.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := postgres.Host(ctx)
	require.NoError(t, err)
	port, err := postgres.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := database.NewConnection(&config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		URL:             fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Reset(ctx, db))
	return db
}

func TestPostgresTopSpenders(t *testing.T) {
	db := setupPostgres(t)
	seed(t, db)

	spenders, err := TopSpenders(context.Background(), db, 5)
	require.NoError(t, err)
	require.Len(t, spenders, 4)
	assert.Equal(t, "Ann Lee", spenders[0].CustomerName)
	assert.Equal(t, "30.00", spenders[0].TotalSpend.StringFixed(2))
	assert.Equal(t, "Bob Ray", spenders[1].CustomerName)
	assert.Equal(t, "Dee Fox", spenders[2].CustomerName)
}

func TestPostgresForeignKeyViolation(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	ds, err := generator.Run(generator.Config{CustomerCount: 5, AvgOrdersPerCustomer: 2, Seed: 1})
	require.NoError(t, err)

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		return InsertOrders(ctx, tx, ds.Orders)
	})
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

func TestPostgresGeneratedDataset(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	ds, err := generator.Run(generator.Config{CustomerCount: 50, AvgOrdersPerCustomer: 2.5, Seed: 42})
	require.NoError(t, err)

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		if err := InsertCustomers(ctx, tx, ds.Customers); err != nil {
			return err
		}
		if err := InsertProducts(ctx, tx, ds.Products); err != nil {
			return err
		}
		if err := InsertOrders(ctx, tx, ds.Orders); err != nil {
			return err
		}
		if err := InsertOrderLines(ctx, tx, ds.OrderLines); err != nil {
			return err
		}
		return InsertPayments(ctx, tx, ds.Payments)
	})
	require.NoError(t, err)

	counts, err := CountRows(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(len(ds.Customers)), counts[0].Rows)
	assert.Equal(t, int64(20), counts[1].Rows)
	assert.Equal(t, int64(len(ds.Payments)), counts[4].Rows)
}

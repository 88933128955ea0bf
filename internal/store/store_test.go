package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/safar/go-sql-seed/internal/config"
	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.NewConnection(&config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		URL:             filepath.Join(t.TempDir(), "store.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Reset(context.Background(), db))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse(models.DatetimeLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seed loads a small dataset whose per-customer spend is known:
// Ann 30.00, Bob 20.00, Dee 20.00, Cy 5.00.
func seed(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	customers := []models.Customer{
		{ID: 1, Name: "Ann Lee", Email: "ann.lee@gmail.com", Phone: "+1-212-555-1000", State: "NY", SignupDate: day("2024-01-01 00:00:00")},
		{ID: 2, Name: "Bob Ray", Email: "bob.ray@yahoo.com", Phone: "+1-312-555-2000", State: "IL", SignupDate: day("2024-02-01 00:00:00")},
		{ID: 3, Name: "Cy Dunn", Email: "cy.dunn@outlook.com", Phone: "+1-415-555-3000", State: "CA", SignupDate: day("2024-03-01 00:00:00")},
		{ID: 4, Name: "Dee Fox", Email: "dee.fox@example.com", Phone: "+1-512-555-4000", State: "TX", SignupDate: day("2024-04-01 00:00:00")},
	}
	products := []models.Product{
		{ID: 1, Name: "Desk Lamp", Category: "Home", UnitPrice: money("10.00"), Stock: 100},
		{ID: 2, Name: "Lip Balm", Category: "Beauty", UnitPrice: money("2.50"), Stock: 300},
	}
	orders := []models.Order{
		{ID: 1, CustomerID: 1, OrderDatetime: day("2024-05-01 09:00:00"), ShippingState: "NY"},
		{ID: 2, CustomerID: 2, OrderDatetime: day("2024-05-02 10:00:00"), ShippingState: "IL"},
		{ID: 3, CustomerID: 2, OrderDatetime: day("2024-05-03 11:00:00"), ShippingState: "IL"},
		{ID: 4, CustomerID: 3, OrderDatetime: day("2024-05-04 12:00:00"), ShippingState: "CA"},
		{ID: 5, CustomerID: 4, OrderDatetime: day("2024-05-05 13:00:00"), ShippingState: "TX"},
	}
	lines := []models.OrderLine{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 3, UnitPrice: money("10.00"), Discount: money("0.20"), LineTotal: money("24.00")},
		{ID: 2, OrderID: 2, ProductID: 1, Quantity: 1, UnitPrice: money("10.00"), Discount: decimal.Zero, LineTotal: money("10.00")},
		{ID: 3, OrderID: 3, ProductID: 2, Quantity: 4, UnitPrice: money("2.50"), Discount: decimal.Zero, LineTotal: money("10.00")},
		{ID: 4, OrderID: 4, ProductID: 2, Quantity: 2, UnitPrice: money("2.50"), Discount: decimal.Zero, LineTotal: money("5.00")},
		{ID: 5, OrderID: 5, ProductID: 1, Quantity: 2, UnitPrice: money("10.00"), Discount: decimal.Zero, LineTotal: money("20.00")},
	}
	payments := []models.Payment{
		{ID: 1, OrderID: 1, PaymentMethod: models.PaymentMethodCreditCard, PaymentDatetime: day("2024-05-01 09:30:00"),
			Subtotal: money("24.00"), Tax: money("1.50"), Shipping: money("5.99"), Total: money("31.49"), Currency: models.CurrencyUSD},
	}

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		for _, insert := range []func() error{
			func() error { return InsertCustomers(ctx, tx, customers) },
			func() error { return InsertProducts(ctx, tx, products) },
			func() error { return InsertOrders(ctx, tx, orders) },
			func() error { return InsertOrderLines(ctx, tx, lines) },
			func() error { return InsertPayments(ctx, tx, payments) },
		} {
			if err := insert(); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	db := openTestDB(t)

	_, err := Migrate(context.Background(), db, "sideways")
	assert.Error(t, err)
}

func TestMigrationFilesOrder(t *testing.T) {
	up, err := migrationFiles(DirectionUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_tables.up.sql"}, up)

	down, err := migrationFiles(DirectionDown)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_tables.down.sql"}, down)
}

func TestResetDropsExistingRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seed(t, db)

	require.NoError(t, Reset(ctx, db))

	counts, err := CountRows(ctx, db)
	require.NoError(t, err)
	for _, c := range counts {
		assert.Zero(t, c.Rows, "table %s not empty after reset", c.Table)
	}
}

func TestCountRows(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	counts, err := CountRows(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []TableCount{
		{Table: "customers", Rows: 4},
		{Table: "products", Rows: 2},
		{Table: "orders", Rows: 5},
		{Table: "order_details", Rows: 5},
		{Table: "payments", Rows: 1},
	}, counts)
}

func TestTopSpenders(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	spenders, err := TopSpenders(context.Background(), db, 5)
	require.NoError(t, err)
	require.Len(t, spenders, 4)

	want := []struct {
		id    int64
		name  string
		total string
	}{
		{1, "Ann Lee", "30.00"},
		{2, "Bob Ray", "20.00"},
		{4, "Dee Fox", "20.00"},
		{3, "Cy Dunn", "5.00"},
	}
	for i, w := range want {
		assert.Equal(t, w.id, spenders[i].CustomerID)
		assert.Equal(t, w.name, spenders[i].CustomerName)
		assert.Equal(t, w.total, spenders[i].TotalSpend.StringFixed(2))
	}
}

func TestTopSpendersLimit(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	spenders, err := TopSpenders(context.Background(), db, 2)
	require.NoError(t, err)
	require.Len(t, spenders, 2)
	assert.Equal(t, "Ann Lee", spenders[0].CustomerName)
	assert.Equal(t, "Bob Ray", spenders[1].CustomerName)

	_, err = TopSpenders(context.Background(), db, 0)
	assert.Error(t, err)
}

func TestTopSpendersEmpty(t *testing.T) {
	db := openTestDB(t)

	spenders, err := TopSpenders(context.Background(), db, 5)
	require.NoError(t, err)
	assert.Empty(t, spenders)
}

func TestInsertOrderWithUnknownCustomer(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		return InsertOrders(ctx, tx, []models.Order{
			{ID: 1, CustomerID: 99, OrderDatetime: day("2024-05-01 09:00:00"), ShippingState: "NY"},
		})
	})
	require.ErrorIs(t, err, database.ErrForeignKeyViolation)

	counts, err := CountRows(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, counts[2].Rows)
}

func TestInsertDuplicateProduct(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	product := models.Product{ID: 1, Name: "Desk Lamp", Category: "Home", UnitPrice: money("10.00"), Stock: 100}
	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		return InsertProducts(ctx, tx, []models.Product{product, product})
	})
	assert.ErrorIs(t, err, database.ErrDuplicateKey)
}

func TestGetCustomer(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)
	ctx := context.Background()

	c, err := GetCustomer(ctx, db, 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob Ray", c.Name)
	assert.Equal(t, "IL", c.State)
	assert.True(t, c.SignupDate.Equal(day("2024-02-01 00:00:00")), "signup %s", c.SignupDate)

	_, err = GetCustomer(ctx, db, 42)
	assert.ErrorIs(t, err, database.ErrCustomerNotFound)
}

func TestGetOrder(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)
	ctx := context.Background()

	detail, err := GetOrder(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Order.CustomerID)
	assert.True(t, detail.Order.OrderDatetime.Equal(day("2024-05-01 09:00:00")))

	require.Len(t, detail.Lines, 1)
	assert.Equal(t, 3, detail.Lines[0].Quantity)
	assert.Equal(t, "0.20", detail.Lines[0].Discount.StringFixed(2))
	assert.Equal(t, "24.00", detail.Lines[0].LineTotal.StringFixed(2))

	require.NotNil(t, detail.Payment)
	assert.Equal(t, models.PaymentMethodCreditCard, detail.Payment.PaymentMethod)
	assert.Equal(t, "31.49", detail.Payment.Total.StringFixed(2))

	unpaid, err := GetOrder(ctx, db, 2)
	require.NoError(t, err)
	assert.Nil(t, unpaid.Payment)

	_, err = GetOrder(ctx, db, 99)
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
}

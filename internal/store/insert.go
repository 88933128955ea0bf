package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/models"
)

func InsertCustomers(ctx context.Context, tx *sql.Tx, customers []models.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, email, phone, state, signup_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	return insertAll(ctx, tx, "customer", query, customers, func(c models.Customer) (int64, []any) {
		return c.ID, []any{c.ID, c.Name, c.Email, c.Phone, c.State, c.SignupDate.Format(models.DateLayout)}
	})
}

func InsertProducts(ctx context.Context, tx *sql.Tx, products []models.Product) error {
	query := `
		INSERT INTO products (product_id, name, category, unit_price, stock)
		VALUES ($1, $2, $3, $4, $5)`

	return insertAll(ctx, tx, "product", query, products, func(p models.Product) (int64, []any) {
		return p.ID, []any{p.ID, p.Name, p.Category, p.UnitPrice, p.Stock}
	})
}

func InsertOrders(ctx context.Context, tx *sql.Tx, orders []models.Order) error {
	query := `
		INSERT INTO orders (order_id, customer_id, order_datetime, shipping_state)
		VALUES ($1, $2, $3, $4)`

	return insertAll(ctx, tx, "order", query, orders, func(o models.Order) (int64, []any) {
		return o.ID, []any{o.ID, o.CustomerID, o.OrderDatetime.Format(models.DatetimeLayout), o.ShippingState}
	})
}

func InsertOrderLines(ctx context.Context, tx *sql.Tx, lines []models.OrderLine) error {
	query := `
		INSERT INTO order_details (order_detail_id, order_id, product_id, quantity, unit_price, discount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	return insertAll(ctx, tx, "order detail", query, lines, func(l models.OrderLine) (int64, []any) {
		return l.ID, []any{l.ID, l.OrderID, l.ProductID, l.Quantity, l.UnitPrice, l.Discount, l.LineTotal}
	})
}

func InsertPayments(ctx context.Context, tx *sql.Tx, payments []models.Payment) error {
	query := `
		INSERT INTO payments (payment_id, order_id, payment_method, payment_datetime, subtotal, tax, shipping, total, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	return insertAll(ctx, tx, "payment", query, payments, func(p models.Payment) (int64, []any) {
		return p.ID, []any{
			p.ID,
			p.OrderID,
			p.PaymentMethod,
			p.PaymentDatetime.Format(models.DatetimeLayout),
			p.Subtotal,
			p.Tax,
			p.Shipping,
			p.Total,
			p.Currency,
		}
	})
}

// insertAll prepares query once and executes it for every row. The first
// failure aborts; the caller's transaction decides what is kept.
func insertAll[T any](ctx context.Context, tx *sql.Tx, noun, query string, rows []T, args func(T) (int64, []any)) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", noun, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		id, values := args(row)
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("insert %s %d: %w", noun, id, database.Translate(err))
		}
	}

	return nil
}

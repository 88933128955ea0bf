package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/models"
)

// OrderDetail is an order with its lines and its payment, as stored.
type OrderDetail struct {
	Order   models.Order
	Lines   []models.OrderLine
	Payment *models.Payment
}

func GetCustomer(ctx context.Context, db *sql.DB, id int64) (*models.Customer, error) {
	customer := &models.Customer{}

	query := `
		SELECT customer_id, name, email, phone, state, signup_date
		FROM customers
		WHERE customer_id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.State,
		&customer.SignupDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

func GetOrder(ctx context.Context, db *sql.DB, id int64) (*OrderDetail, error) {
	detail := &OrderDetail{}
	order := &detail.Order

	query := `
		SELECT order_id, customer_id, order_datetime, shipping_state
		FROM orders
		WHERE order_id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.OrderDatetime,
		&order.ShippingState,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	linesQuery := `
		SELECT order_detail_id, order_id, product_id, quantity, unit_price, discount, line_total
		FROM order_details
		WHERE order_id = $1
		ORDER BY order_detail_id`

	rows, err := db.QueryContext(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get order details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Quantity,
			&line.UnitPrice,
			&line.Discount,
			&line.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		detail.Lines = append(detail.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	paymentQuery := `
		SELECT payment_id, order_id, payment_method, payment_datetime, subtotal, tax, shipping, total, currency
		FROM payments
		WHERE order_id = $1`

	var payment models.Payment
	err = db.QueryRowContext(ctx, paymentQuery, id).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.PaymentMethod,
		&payment.PaymentDatetime,
		&payment.Subtotal,
		&payment.Tax,
		&payment.Shipping,
		&payment.Total,
		&payment.Currency,
	)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("get payment: %w", err)
	default:
		detail.Payment = &payment
	}

	return detail, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tables lists the schema tables in parent-before-child order.
var Tables = []string{"customers", "products", "orders", "order_details", "payments"}

type Spender struct {
	CustomerID   int64
	CustomerName string
	TotalSpend   decimal.Decimal
}

type TableCount struct {
	Table string
	Rows  int64
}

// TopSpenders sums quantity × unit_price over every line a customer ordered.
// Ties on the total fall back to customer id so the ranking is stable.
func TopSpenders(ctx context.Context, db *sql.DB, limit int) ([]Spender, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("top spenders: limit must be positive, got %d", limit)
	}

	query := `
		SELECT c.customer_id, c.name, SUM(od.quantity * od.unit_price) AS total_spend
		FROM customers c
		JOIN orders o ON o.customer_id = c.customer_id
		JOIN order_details od ON od.order_id = o.order_id
		GROUP BY c.customer_id, c.name
		ORDER BY total_spend DESC, c.customer_id
		LIMIT $1`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top spenders: %w", err)
	}
	defer rows.Close()

	var spenders []Spender
	for rows.Next() {
		var s Spender
		if err := rows.Scan(&s.CustomerID, &s.CustomerName, &s.TotalSpend); err != nil {
			return nil, fmt.Errorf("scan spender: %w", err)
		}
		s.TotalSpend = s.TotalSpend.Round(2)
		spenders = append(spenders, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return spenders, nil
}

func CountRows(ctx context.Context, db *sql.DB) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(Tables))
	for _, table := range Tables {
		var n int64
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts = append(counts, TableCount{Table: table, Rows: n})
	}
	return counts, nil
}

// Package generator synthesizes a referentially consistent e-commerce
// dataset. Every function takes the random source explicitly; Run seeds one
// source and threads it through the whole pipeline, so a (seed, now) pair
// always yields the same dataset.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/safar/go-sql-seed/internal/models"
)

var ErrInvalidConfig = errors.New("invalid generator config")

type Config struct {
	CustomerCount        int
	AvgOrdersPerCustomer float64
	Seed                 uint64
	// Now is the generation instant. The zero value means time.Now().
	Now time.Time
}

func Run(cfg Config) (*models.Dataset, error) {
	if cfg.CustomerCount <= 0 {
		return nil, fmt.Errorf("%w: customer count must be positive, got %d", ErrInvalidConfig, cfg.CustomerCount)
	}
	if cfg.AvgOrdersPerCustomer <= 0 {
		return nil, fmt.Errorf("%w: average orders per customer must be positive, got %v", ErrInvalidConfig, cfg.AvgOrdersPerCustomer)
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	rng := NewRand(cfg.Seed)

	customers := GenerateCustomers(rng, cfg.CustomerCount, now)
	products := GenerateProducts(rng)
	orders := GenerateOrders(rng, customers, cfg.AvgOrdersPerCustomer, now)
	lines := GenerateOrderLines(rng, orders, products)

	payments, err := GeneratePayments(rng, orders, lines)
	if err != nil {
		return nil, fmt.Errorf("generate payments: %w", err)
	}

	return &models.Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderLines: lines,
		Payments:   payments,
	}, nil
}

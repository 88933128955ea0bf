package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/safar/go-sql-seed/internal/models"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrOrderWithoutLines = errors.New("order has no lines")

var freeShippingThreshold = decimal.NewFromInt(75)

// GeneratePayments derives one payment per order, in the order of the orders
// slice. Subtotals come from the lines, so every order must already have at
// least one line.
func GeneratePayments(rng *rand.Rand, orders []models.Order, lines []models.OrderLine) ([]models.Payment, error) {
	subtotals := make(map[int64]decimal.Decimal, len(orders))
	for _, line := range lines {
		subtotals[line.OrderID] = subtotals[line.OrderID].Add(line.LineTotal)
	}

	methods := distuv.NewCategorical(paymentMethodWeights, rng)

	payments := make([]models.Payment, 0, len(orders))
	var id int64 = 1

	for _, order := range orders {
		gross, ok := subtotals[order.ID]
		if !ok {
			return nil, fmt.Errorf("payment for order %d: %w", order.ID, ErrOrderWithoutLines)
		}
		subtotal := gross.Round(2)

		tax := subtotal.Mul(decimal.NewFromFloat(uniform(rng, 0.05, 0.095))).Round(2)
		shipping := decimal.Zero
		if subtotal.LessThan(freeShippingThreshold) {
			shipping = cents(uniform(rng, 4.99, 14.99))
		}

		payments = append(payments, models.Payment{
			ID:              id,
			OrderID:         order.ID,
			PaymentMethod:   PaymentMethods[int(methods.Rand())],
			PaymentDatetime: order.OrderDatetime.Add(time.Duration(intBetween(rng, 5, 90)) * time.Minute),
			Subtotal:        subtotal,
			Tax:             tax,
			Shipping:        shipping,
			Total:           subtotal.Add(tax).Add(shipping).Round(2),
			Currency:        models.CurrencyUSD,
		})
		id++
	}

	return payments, nil
}

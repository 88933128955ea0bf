package generator

import (
	"math/rand/v2"

	"github.com/safar/go-sql-seed/internal/models"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/sampleuv"
)

const fullPriceProbability = 0.7

// GenerateOrderLines picks distinct products for every order and prices each
// line from the product's price at this point in the run.
func GenerateOrderLines(rng *rand.Rand, orders []models.Order, products []models.Product) []models.OrderLine {
	var lines []models.OrderLine
	var id int64 = 1

	for _, order := range orders {
		itemCount := max(1, int(normal(rng, 2, 1)))
		picked := make([]int, min(itemCount, len(products)))
		sampleuv.WithoutReplacement(picked, len(products), rng)

		for _, idx := range picked {
			product := products[idx]
			quantity := max(1, int(normal(rng, 2, 1)))
			discount := randomDiscount(rng)

			lines = append(lines, models.OrderLine{
				ID:        id,
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.UnitPrice,
				Discount:  discount,
				LineTotal: LineTotal(product.UnitPrice, quantity, discount),
			})
			id++
		}
	}

	return lines
}

func randomDiscount(rng *rand.Rand) decimal.Decimal {
	if rng.Float64() < fullPriceProbability {
		return decimal.Zero
	}
	return cents(uniform(rng, 0.05, 0.25))
}

// LineTotal is unit price × quantity × (1 − discount), rounded to cents.
func LineTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(1).Sub(discount)).
		Round(2)
}

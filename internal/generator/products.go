package generator

import (
	"math/rand/v2"

	"github.com/safar/go-sql-seed/internal/models"
	"github.com/shopspring/decimal"
)

// GenerateProducts builds one product per catalog entry. Prices are drawn from
// a normal distribution around the entry's midpoint (sd = range/6) and clamped
// to the entry's bounds.
func GenerateProducts(rng *rand.Rand) []models.Product {
	products := make([]models.Product, 0, CatalogSize())
	var id int64 = 1

	for _, category := range Catalog {
		for _, entry := range category.Entries {
			mid := (entry.MinPrice + entry.MaxPrice) / 2
			sd := (entry.MaxPrice - entry.MinPrice) / 6

			price := cents(normal(rng, mid, sd))
			price = decimal.Max(decimal.NewFromFloat(entry.MinPrice), decimal.Min(decimal.NewFromFloat(entry.MaxPrice), price))

			products = append(products, models.Product{
				ID:        id,
				Name:      entry.Name,
				Category:  category.Name,
				UnitPrice: price,
				Stock:     intBetween(rng, 50, 500),
			})
			id++
		}
	}

	return products
}

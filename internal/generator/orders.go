package generator

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/safar/go-sql-seed/internal/models"
)

const DefaultAvgOrdersPerCustomer = 2.5

// GenerateOrders draws max(1, Poisson(avgOrders)) orders per customer. Ids are
// assigned in customer-then-order sequence, then the collection is stably
// sorted by OrderDatetime, so ids are not in datetime order.
func GenerateOrders(rng *rand.Rand, customers []models.Customer, avgOrders float64, now time.Time) []models.Order {
	var orders []models.Order
	var id int64 = 1

	for _, c := range customers {
		count := max(1, poisson(rng, avgOrders))
		for range count {
			orders = append(orders, models.Order{
				ID:            id,
				CustomerID:    c.ID,
				OrderDatetime: randomOrderDatetime(rng, c.SignupDate, now),
				ShippingState: c.State,
			})
			id++
		}
	}

	slices.SortStableFunc(orders, func(a, b models.Order) int {
		return a.OrderDatetime.Compare(b.OrderDatetime)
	})

	return orders
}

// randomOrderDatetime picks a day offset from a half-normal centred on half
// the customer's tenure, clamped to [1, tenure], and a time between 08:00 and
// 21:59. An offset landing on today after now is pulled back one day unless
// that would break the one-day minimum.
func randomOrderDatetime(rng *rand.Rand, signup time.Time, now time.Time) time.Time {
	signup = civilDate(signup)
	days := daysBetween(signup, civilDate(now))
	if days <= 0 {
		days = 1
	}

	offset := int(math.Abs(normal(rng, float64(days)/2, float64(days)/3)))
	offset = max(1, min(days, offset))

	hour := intBetween(rng, 8, 21)
	minute := intBetween(rng, 0, 59)

	orderAt := signup.AddDate(0, 0, offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	if orderAt.After(wallClock(now)) && offset > 1 {
		orderAt = orderAt.AddDate(0, 0, -1)
	}

	return orderAt
}

package generator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/safar/go-sql-seed/internal/models"
)

const (
	minSignupAgeDays = 30
	maxSignupAgeDays = 900
)

// GenerateCustomers returns count customers with ids 1..count, each signed up
// between 30 and 900 days before the calendar day of now.
func GenerateCustomers(rng *rand.Rand, count int, now time.Time) []models.Customer {
	today := civilDate(now)
	customers := make([]models.Customer, 0, count)

	for id := 1; id <= count; id++ {
		name := randomName(rng)
		customers = append(customers, models.Customer{
			ID:         int64(id),
			Name:       name,
			Email:      randomEmail(rng, name),
			Phone:      randomPhone(rng),
			State:      choice(rng, States),
			SignupDate: today.AddDate(0, 0, -intBetween(rng, minSignupAgeDays, maxSignupAgeDays)),
		})
	}

	return customers
}

func randomName(rng *rand.Rand) string {
	return choice(rng, firstNames) + " " + choice(rng, lastNames)
}

func randomEmail(rng *rand.Rand, name string) string {
	base := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	domain := choice(rng, emailDomains)
	suffix := ""
	if rng.Float64() >= 0.7 {
		suffix = strconv.Itoa(intBetween(rng, 1, 99))
	}
	return base + suffix + "@" + domain
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1-%d-%d-%d",
		intBetween(rng, 200, 999), intBetween(rng, 200, 999), intBetween(rng, 1000, 9999))
}

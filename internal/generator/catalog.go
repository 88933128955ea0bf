package generator

import "github.com/safar/go-sql-seed/internal/models"

var firstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Elijah", "Sophia", "Lucas",
	"Isabella", "Mason", "Mia", "Ethan", "Charlotte", "Logan", "Amelia", "James",
	"Harper", "Benjamin", "Evelyn", "Henry",
}

var lastNames = []string{
	"Smith", "Johnson", "Brown", "Taylor", "Anderson", "Thomas", "Jackson",
	"White", "Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson",
	"Clark", "Rodriguez", "Lewis", "Lee", "Walker", "Hall",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "example.com"}

var States = []string{"CA", "NY", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "WA"}

var PaymentMethods = []string{
	models.PaymentMethodCreditCard,
	models.PaymentMethodDebitCard,
	models.PaymentMethodPayPal,
	models.PaymentMethodGiftCard,
	models.PaymentMethodApplePay,
}

var paymentMethodWeights = []float64{40, 25, 20, 10, 5}

type CatalogEntry struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

type CatalogCategory struct {
	Name    string
	Entries []CatalogEntry
}

// Catalog is iterated in declaration order; product ids follow it.
var Catalog = []CatalogCategory{
	{
		Name: "Electronics",
		Entries: []CatalogEntry{
			{"Wireless Earbuds", 59, 199},
			{"Smartphone Case", 9, 39},
			{"USB-C Charger", 12, 45},
			{"Laptop Sleeve", 18, 69},
			{"Smartwatch", 99, 349},
		},
	},
	{
		Name: "Home",
		Entries: []CatalogEntry{
			{"Ceramic Mug", 6, 20},
			{"Throw Pillow", 14, 55},
			{"Desk Lamp", 22, 110},
			{"Bath Towel Set", 25, 90},
			{"Knife Set", 35, 160},
		},
	},
	{
		Name: "Beauty",
		Entries: []CatalogEntry{
			{"Facial Cleanser", 10, 35},
			{"Sunscreen SPF 50", 12, 42},
			{"Shampoo", 8, 28},
			{"Serum", 22, 90},
			{"Moisturizer", 15, 60},
		},
	},
	{
		Name: "Sports",
		Entries: []CatalogEntry{
			{"Yoga Mat", 18, 60},
			{"Running Shoes", 55, 180},
			{"Water Bottle", 12, 40},
			{"Fitness Tracker", 59, 220},
			{"Bike Helmet", 35, 140},
		},
	},
}

func CatalogSize() int {
	n := 0
	for _, c := range Catalog {
		n += len(c.Entries)
	}
	return n
}

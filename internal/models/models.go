package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID         int64     `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	State      string    `json:"state"`
	SignupDate time.Time `json:"signup_date"`
}

type Product struct {
	ID        int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
}

type Order struct {
	ID            int64     `json:"order_id"`
	CustomerID    int64     `json:"customer_id"`
	OrderDatetime time.Time `json:"order_datetime"`
	ShippingState string    `json:"shipping_state"`
}

// OrderLine is one product of an order. UnitPrice is the product price at
// generation time, not a live lookup.
type OrderLine struct {
	ID        int64           `json:"order_detail_id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Payment struct {
	ID              int64           `json:"payment_id"`
	OrderID         int64           `json:"order_id"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentDatetime time.Time       `json:"payment_datetime"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
}

// Dataset holds every collection produced by one generator run.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderLines []OrderLine
	Payments   []Payment
}

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodPayPal     = "paypal"
	PaymentMethodGiftCard   = "gift_card"
	PaymentMethodApplePay   = "apple_pay"
)

const CurrencyUSD = "USD"

const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02 15:04:05"
)

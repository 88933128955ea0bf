package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/safar/go-sql-seed/internal/models"
)

const (
	CustomersFile    = "customers.csv"
	ProductsFile     = "products.csv"
	OrdersFile       = "orders.csv"
	OrderDetailsFile = "order_details.csv"
	PaymentsFile     = "payments.csv"
)

var (
	CustomerColumns    = []string{"customer_id", "name", "email", "phone", "state", "signup_date"}
	ProductColumns     = []string{"product_id", "name", "category", "unit_price", "stock"}
	OrderColumns       = []string{"order_id", "customer_id", "order_datetime", "shipping_state"}
	OrderDetailColumns = []string{"order_detail_id", "order_id", "product_id", "quantity", "unit_price", "discount", "line_total"}
	PaymentColumns     = []string{"payment_id", "order_id", "payment_method", "payment_datetime", "subtotal", "tax", "shipping", "total", "currency"}
)

// WriteDataset writes the five CSV files into dir, creating it if needed.
func WriteDataset(dir string, ds *models.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{CustomersFile, func(w io.Writer) error { return WriteCustomers(w, ds.Customers) }},
		{ProductsFile, func(w io.Writer) error { return WriteProducts(w, ds.Products) }},
		{OrdersFile, func(w io.Writer) error { return WriteOrders(w, ds.Orders) }},
		{OrderDetailsFile, func(w io.Writer) error { return WriteOrderLines(w, ds.OrderLines) }},
		{PaymentsFile, func(w io.Writer) error { return WritePayments(w, ds.Payments) }},
	}

	for _, file := range files {
		if err := writeFile(filepath.Join(dir, file.name), file.write); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func WriteCustomers(w io.Writer, customers []models.Customer) error {
	return writeRecords(w, CustomerColumns, customers, func(c models.Customer) []string {
		return []string{
			formatID(c.ID),
			c.Name,
			c.Email,
			c.Phone,
			c.State,
			c.SignupDate.Format(models.DateLayout),
		}
	})
}

func WriteProducts(w io.Writer, products []models.Product) error {
	return writeRecords(w, ProductColumns, products, func(p models.Product) []string {
		return []string{
			formatID(p.ID),
			p.Name,
			p.Category,
			p.UnitPrice.StringFixed(2),
			strconv.Itoa(p.Stock),
		}
	})
}

func WriteOrders(w io.Writer, orders []models.Order) error {
	return writeRecords(w, OrderColumns, orders, func(o models.Order) []string {
		return []string{
			formatID(o.ID),
			formatID(o.CustomerID),
			o.OrderDatetime.Format(models.DatetimeLayout),
			o.ShippingState,
		}
	})
}

func WriteOrderLines(w io.Writer, lines []models.OrderLine) error {
	return writeRecords(w, OrderDetailColumns, lines, func(l models.OrderLine) []string {
		return []string{
			formatID(l.ID),
			formatID(l.OrderID),
			formatID(l.ProductID),
			strconv.Itoa(l.Quantity),
			l.UnitPrice.StringFixed(2),
			l.Discount.StringFixed(2),
			l.LineTotal.StringFixed(2),
		}
	})
}

func WritePayments(w io.Writer, payments []models.Payment) error {
	return writeRecords(w, PaymentColumns, payments, func(p models.Payment) []string {
		return []string{
			formatID(p.ID),
			formatID(p.OrderID),
			p.PaymentMethod,
			p.PaymentDatetime.Format(models.DatetimeLayout),
			p.Subtotal.StringFixed(2),
			p.Tax.StringFixed(2),
			p.Shipping.StringFixed(2),
			p.Total.StringFixed(2),
			p.Currency,
		}
	})
}

func writeRecords[T any](w io.Writer, header []string, rows []T, record func(T) []string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(record(row)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/safar/go-sql-seed/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrMalformedRow  = errors.New("malformed row")
	errMissingColumn = errors.New("missing column")
)

// RowError reports the first bad value in a CSV file.
type RowError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: column %s: %v", filepath.Base(e.File), e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

func ReadCustomers(path string) ([]models.Customer, error) {
	return readFile(path, func(r *row) models.Customer {
		return models.Customer{
			ID:         r.int64("customer_id"),
			Name:       r.text("name"),
			Email:      r.text("email"),
			Phone:      r.text("phone"),
			State:      r.text("state"),
			SignupDate: r.date("signup_date"),
		}
	})
}

func ReadProducts(path string) ([]models.Product, error) {
	return readFile(path, func(r *row) models.Product {
		return models.Product{
			ID:        r.int64("product_id"),
			Name:      r.text("name"),
			Category:  r.text("category"),
			UnitPrice: r.money("unit_price"),
			Stock:     r.int("stock"),
		}
	})
}

func ReadOrders(path string) ([]models.Order, error) {
	return readFile(path, func(r *row) models.Order {
		return models.Order{
			ID:            r.int64("order_id"),
			CustomerID:    r.int64("customer_id"),
			OrderDatetime: r.datetime("order_datetime"),
			ShippingState: r.text("shipping_state"),
		}
	})
}

func ReadOrderLines(path string) ([]models.OrderLine, error) {
	return readFile(path, func(r *row) models.OrderLine {
		return models.OrderLine{
			ID:        r.int64("order_detail_id"),
			OrderID:   r.int64("order_id"),
			ProductID: r.int64("product_id"),
			Quantity:  r.int("quantity"),
			UnitPrice: r.money("unit_price"),
			Discount:  r.money("discount"),
			LineTotal: r.money("line_total"),
		}
	})
}

func ReadPayments(path string) ([]models.Payment, error) {
	return readFile(path, func(r *row) models.Payment {
		return models.Payment{
			ID:              r.int64("payment_id"),
			OrderID:         r.int64("order_id"),
			PaymentMethod:   r.text("payment_method"),
			PaymentDatetime: r.datetime("payment_datetime"),
			Subtotal:        r.money("subtotal"),
			Tax:             r.money("tax"),
			Shipping:        r.money("shipping"),
			Total:           r.money("total"),
			Currency:        r.text("currency"),
		}
	})
}

// readFile maps every record to T by header name. It stops at the first bad
// value; nothing read so far is returned.
func readFile[T any](path string, parse func(*row) T) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("read %s: missing header row", path)
		}
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var out []T
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		line, _ := cr.FieldPos(0)
		r := &row{file: path, line: line, index: index, fields: fields}
		v := parse(r)
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, v)
	}

	return out, nil
}

// row keeps the first conversion error; later accessors return zero values.
type row struct {
	file   string
	line   int
	index  map[string]int
	fields []string
	err    error
}

func (r *row) fail(column string, err error) {
	if r.err == nil {
		r.err = &RowError{File: r.file, Line: r.line, Column: column, Err: err}
	}
}

func (r *row) text(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		r.fail(column, errMissingColumn)
		return ""
	}
	return r.fields[i]
}

func (r *row) int64(column string) int64 {
	s := r.text(column)
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.fail(column, err)
	}
	return v
}

func (r *row) int(column string) int {
	s := r.text(column)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(column, err)
	}
	return v
}

func (r *row) money(column string) decimal.Decimal {
	s := r.text(column)
	if r.err != nil {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		r.fail(column, err)
	}
	return v
}

func (r *row) date(column string) time.Time {
	s := r.text(column)
	if r.err != nil {
		return time.Time{}
	}
	v, err := time.Parse(models.DateLayout, s)
	if err != nil {
		r.fail(column, err)
	}
	return v
}

// datetime also accepts a fractional-seconds suffix such as ".123456".
func (r *row) datetime(column string) time.Time {
	s := r.text(column)
	if r.err != nil {
		return time.Time{}
	}
	v, err := time.Parse(models.DatetimeLayout, s)
	if err != nil {
		r.fail(column, err)
	}
	return v
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/safar/go-sql-seed/internal/config"
	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/models"
	"github.com/safar/go-sql-seed/internal/store"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	fs := pflag.NewFlagSet("report", pflag.ExitOnError)
	counts := fs.Bool("counts", false, "also print the row count of every table")
	orderID := fs.Int64("order", 0, "print one order with its lines and payment instead of the ranking")
	cfg.BindReportFlags(fs)
	fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Validate flags: %v", err)
	}

	if err := database.RequireExisting(&cfg.Database); err != nil {
		log.Fatalf("Open database: %v (run ingest first)", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if *orderID > 0 {
		detail, err := store.GetOrder(ctx, db, *orderID)
		if err != nil {
			log.Fatalf("Get order %d: %v", *orderID, err)
		}
		if err := printOrder(os.Stdout, detail); err != nil {
			log.Fatalf("Print order: %v", err)
		}
		return
	}

	if *counts {
		tables, err := store.CountRows(ctx, db)
		if err != nil {
			log.Fatalf("Count rows: %v", err)
		}
		if err := printCounts(os.Stdout, tables); err != nil {
			log.Fatalf("Print counts: %v", err)
		}
		fmt.Println()
	}

	spenders, err := store.TopSpenders(ctx, db, cfg.Report.Limit)
	if err != nil {
		log.Fatalf("Query top spenders: %v", err)
	}

	fmt.Printf("Top %d customers by total spend:\n", cfg.Report.Limit)
	if err := printSpenders(os.Stdout, spenders); err != nil {
		log.Fatalf("Print report: %v", err)
	}
}

func printSpenders(w io.Writer, spenders []store.Spender) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "customer_name\ttotal_spend")
	for _, s := range spenders {
		fmt.Fprintf(tw, "%s\t%s\n", s.CustomerName, s.TotalSpend.StringFixed(2))
	}
	return tw.Flush()
}

func printCounts(w io.Writer, counts []store.TableCount) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "table\trows")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Table, c.Rows)
	}
	return tw.Flush()
}

func printOrder(w io.Writer, d *store.OrderDetail) error {
	fmt.Fprintf(w, "Order %d for customer %d at %s, shipped to %s\n",
		d.Order.ID, d.Order.CustomerID, d.Order.OrderDatetime.Format(models.DatetimeLayout), d.Order.ShippingState)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "product_id\tquantity\tunit_price\tdiscount\tline_total")
	for _, l := range d.Lines {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
			l.ProductID, l.Quantity, l.UnitPrice.StringFixed(2), l.Discount.StringFixed(2), l.LineTotal.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if p := d.Payment; p != nil {
		fmt.Fprintf(w, "Paid %s %s by %s (subtotal %s, tax %s, shipping %s)\n",
			p.Total.StringFixed(2), p.Currency, p.PaymentMethod,
			p.Subtotal.StringFixed(2), p.Tax.StringFixed(2), p.Shipping.StringFixed(2))
	}
	return nil
}

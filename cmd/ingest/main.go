package main

import (
	"context"
	"log"
	"os"

	"github.com/safar/go-sql-seed/internal/config"
	"github.com/safar/go-sql-seed/internal/database"
	"github.com/safar/go-sql-seed/internal/ingest"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	fs := pflag.NewFlagSet("ingest", pflag.ExitOnError)
	cfg.BindIngestFlags(fs)
	fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Validate flags: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to %s database %s", cfg.Database.Driver, cfg.Database.URL)

	summary, err := ingest.Run(context.Background(), db, cfg.DataDir)
	if err != nil {
		log.Fatalf("Ingest %s: %v", cfg.DataDir, err)
	}

	log.Printf("Ingested %d customers, %d products, %d orders, %d order details, %d payments",
		summary.Customers, summary.Products, summary.Orders, summary.OrderDetails, summary.Payments)
}

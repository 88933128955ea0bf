package main

import (
	"log"
	"os"
	"time"

	"github.com/safar/go-sql-seed/internal/config"
	"github.com/safar/go-sql-seed/internal/csvfile"
	"github.com/safar/go-sql-seed/internal/generator"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	fs := pflag.NewFlagSet("generate", pflag.ExitOnError)
	cfg.BindGeneratorFlags(fs)
	fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Validate flags: %v", err)
	}

	start := time.Now()
	ds, err := generator.Run(generator.Config{
		CustomerCount:        cfg.Generator.CustomerCount,
		AvgOrdersPerCustomer: cfg.Generator.AvgOrdersPerCustomer,
		Seed:                 cfg.Generator.Seed,
		Now:                  start,
	})
	if err != nil {
		log.Fatalf("Generate dataset: %v", err)
	}

	log.Printf("Generated %d customers, %d products, %d orders, %d order lines, %d payments (seed %d)",
		len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.OrderLines), len(ds.Payments), cfg.Generator.Seed)

	if err := csvfile.WriteDataset(cfg.DataDir, ds); err != nil {
		log.Fatalf("Write CSV files: %v", err)
	}

	log.Printf("Wrote CSV files to %s in %s", cfg.DataDir, time.Since(start).Round(time.Millisecond))
}

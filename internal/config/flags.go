package config

import "github.com/spf13/pflag"

// BindGeneratorFlags registers the generate command's flags. Defaults are the
// values already loaded from the environment, so a flag only overrides when it
// is given.
func (c *Config) BindGeneratorFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Generator.CustomerCount, "customers", "n", c.Generator.CustomerCount, "number of customers to generate")
	fs.Float64Var(&c.Generator.AvgOrdersPerCustomer, "avg-orders", c.Generator.AvgOrdersPerCustomer, "mean orders per customer")
	fs.Uint64Var(&c.Generator.Seed, "seed", c.Generator.Seed, "random seed")
	fs.StringVarP(&c.DataDir, "out", "o", c.DataDir, "output directory for the CSV files")
}

func (c *Config) BindDatabaseFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Database.Driver, "driver", c.Database.Driver, "database driver (sqlite3 or postgres)")
	fs.StringVar(&c.Database.URL, "db", c.Database.URL, "SQLite file path or PostgreSQL URL")
}

func (c *Config) BindIngestFlags(fs *pflag.FlagSet) {
	c.BindDatabaseFlags(fs)
	fs.StringVarP(&c.DataDir, "data", "d", c.DataDir, "directory holding the CSV files")
}

func (c *Config) BindReportFlags(fs *pflag.FlagSet) {
	c.BindDatabaseFlags(fs)
	fs.IntVar(&c.Report.Limit, "limit", c.Report.Limit, "number of customers to list")
}

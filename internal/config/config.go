package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Generator GeneratorConfig
	Database  DatabaseConfig
	Report    ReportConfig
	DataDir   string `validate:"required"`
}

type GeneratorConfig struct {
	CustomerCount        int     `validate:"gt=0"`
	AvgOrdersPerCustomer float64 `validate:"gt=0"`
	Seed                 uint64
}

type DatabaseConfig struct {
	Driver          string `validate:"oneof=sqlite3 postgres"`
	URL             string `validate:"required"`
	MaxOpenConns    int    `validate:"gte=0"`
	MaxIdleConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
}

type ReportConfig struct {
	Limit int `validate:"gt=0"`
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Generator: GeneratorConfig{
			CustomerCount:        getEnvInt("SHOPGEN_CUSTOMER_COUNT", 200),
			AvgOrdersPerCustomer: getEnvFloat("SHOPGEN_AVG_ORDERS", 2.5),
			Seed:                 getEnvUint64("SHOPGEN_SEED", 42),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", DriverSQLite),
			URL:             getEnv("DATABASE_URL", "ecommerce.db"),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Report: ReportConfig{
			Limit: getEnvInt("REPORT_LIMIT", 5),
		},
		DataDir: getEnv("DATA_DIR", "data_output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags. Commands call it again after applying flags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		fmt.Printf("Warning: invalid duration for %s, using default\n", key)
	}
	return defaultValue
}

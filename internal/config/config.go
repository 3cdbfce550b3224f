package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultDatabaseDSN    = "oastel.db"
	defaultRequestTimeout = "5s"
	defaultBookingCutoff  = "10h"
	defaultBankChargeRate = "0.028"
	defaultTaxRate        = "0"
	defaultCurrency       = "RM"
)

// RuntimeConfig is the full environment-derived configuration of the
// validation service. INVENTORY_URL and SERVER_TIME_URL are optional:
// without them the service answers from its own database and local
// clock.
type RuntimeConfig struct {
	HTTPAddr       string
	DatabaseDSN    string
	InventoryURL   string
	ServerTimeURL  string
	RequestTimeout time.Duration
	BookingCutoff  time.Duration
	BankChargeRate float64
	TaxRate        float64
	Currency       string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		HTTPAddr:      getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN:   getEnv("DATABASE_URL", defaultDatabaseDSN),
		InventoryURL:  strings.TrimSpace(os.Getenv("INVENTORY_URL")),
		ServerTimeURL: strings.TrimSpace(os.Getenv("SERVER_TIME_URL")),
		Currency:      getEnv("CART_CURRENCY", defaultCurrency),
	}

	var err error
	cfg.RequestTimeout, err = parseDurationEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}
	cfg.BookingCutoff, err = parseDurationEnv("BOOKING_CUTOFF", defaultBookingCutoff)
	if err != nil {
		return nil, err
	}
	cfg.BankChargeRate, err = parseRateEnv("BANK_CHARGE_RATE", defaultBankChargeRate)
	if err != nil {
		return nil, err
	}
	cfg.TaxRate, err = parseRateEnv("TAX_RATE", defaultTaxRate)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, raw, err)
	}
	return d, nil
}

func parseRateEnv(key, fallback string) (float64, error) {
	raw := getEnv(key, fallback)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", key, raw, err)
	}
	if v < 0 || v >= 1 {
		return 0, fmt.Errorf("config: %s=%q must be in [0, 1)", key, raw)
	}
	return v, nil
}

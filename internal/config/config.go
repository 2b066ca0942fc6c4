package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host    string
	Port    string
	BaseURL string

	StripeSecretKey string
	StripePriceID   string
	ProductName     string
	UnitAmount      int64
	Currency        string

	OpenAIKey   string
	OpenAIModel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	port := getEnv("PORT", "8000")

	cfg := &Config{
		Host:            getEnv("HOST", "127.0.0.1"),
		Port:            port,
		BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceID:   os.Getenv("STRIPE_PRICE_ID"),
		ProductName:     getEnv("CHECKOUT_PRODUCT_NAME", "Promo Demo Item"),
		Currency:        strings.ToLower(getEnv("CHECKOUT_CURRENCY", "usd")),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	amount, err := strconv.ParseInt(getEnv("CHECKOUT_UNIT_AMOUNT", "2000"), 10, 64)
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("CHECKOUT_UNIT_AMOUNT must be a positive integer (smallest currency unit), got %q", os.Getenv("CHECKOUT_UNIT_AMOUNT"))
	}
	cfg.UnitAmount = amount

	// Stripe redirects back to BASE_URL, so it has to be absolute
	if cfg.StripeSecretKey != "" && !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return nil, fmt.Errorf("BASE_URL must be an absolute http(s) URL when STRIPE_SECRET_KEY is set, got %q", cfg.BaseURL)
	}

	return cfg, nil
}

// Addr is the listen address; loopback unless HOST is set
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// PaymentsEnabled reports whether checkout routes can reach Stripe
func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

// AIEnabled reports whether the assist webhook may call OpenAI
func (c *Config) AIEnabled() bool {
	return c.OpenAIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

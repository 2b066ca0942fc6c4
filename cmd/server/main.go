package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"keynudge/internal/ai"
	"keynudge/internal/api"
	"keynudge/internal/checkout"
	"keynudge/internal/config"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	var payments checkout.Provider
	if cfg.PaymentsEnabled() {
		provider, err := checkout.NewStripeProvider(checkout.StripeOptions{
			SecretKey:   cfg.StripeSecretKey,
			PriceID:     cfg.StripePriceID,
			ProductName: cfg.ProductName,
			UnitAmount:  cfg.UnitAmount,
			Currency:    cfg.Currency,
			BaseURL:     cfg.BaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to create checkout provider: %v", err)
		}
		payments = provider
	} else {
		log.Println("STRIPE_SECRET_KEY not set, checkout routes disabled")
	}

	var nudger api.Nudger
	if cfg.AIEnabled() {
		n, err := ai.NewNudger(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatalf("Failed to create AI nudger: %v", err)
		}
		nudger = n
	} else {
		log.Println("OPENAI_API_KEY not set, /webhook/assist uses keyword replies only")
	}

	srv := api.NewServer(cfg, payments, nudger)

	log.Printf("keynudge running on %s (base URL %s)", cfg.Addr(), cfg.BaseURL)
	if err := srv.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DBUrl              string
	AppEnv             string
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	CheckoutLocale     string
	InstructorRate     float64
	DailyFixedCost     int64
	DailyCapacity      int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	stripeKey, exists := os.LookupEnv("STRIPE_SECRET_KEY")
	if !exists || stripeKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBUrl:              getEnv("DB_URL", ""),
		AppEnv:             normalizeEnv(getEnv("APP_ENV", "production")),
		StripeSecretKey:    stripeKey,
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "https://windventure.fr/booking/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "https://windventure.fr/booking/cancelled"),
		CheckoutLocale:     getEnv("CHECKOUT_LOCALE", "fr"),
		InstructorRate:     getEnvFloat("INSTRUCTOR_RATE", 0.15),
		DailyFixedCost:     getEnvInt64("DAILY_FIXED_COST", 200),
		DailyCapacity:      getEnvInt("DAILY_CAPACITY", 12),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	AppEnv                 string
	OrderManagementBaseURL string
	OrderManagementTimeout time.Duration
	CatalogFile            string
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
		// Continue without .env file, use environment variables
	}

	config := &Config{
		Port:                   os.Getenv("PORT"),
		AppEnv:                 os.Getenv("APP_ENV"),
		OrderManagementBaseURL: os.Getenv("ORDER_MANAGEMENT_URL"),
		CatalogFile:            os.Getenv("CATALOG_FILE"),
	}

	// Set default values if environment variables are not set
	if config.Port == "" {
		config.Port = "3000"
	}
	if config.AppEnv == "" {
		config.AppEnv = "development"
	}
	if config.OrderManagementBaseURL == "" {
		config.OrderManagementBaseURL = "http://localhost:4000"
	}

	timeoutSeconds := 3
	if raw := os.Getenv("ORDER_MANAGEMENT_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Printf("Warning: invalid ORDER_MANAGEMENT_TIMEOUT_SECONDS %q, using default", raw)
		} else {
			timeoutSeconds = parsed
		}
	}
	config.OrderManagementTimeout = time.Duration(timeoutSeconds) * time.Second

	return config, nil
}

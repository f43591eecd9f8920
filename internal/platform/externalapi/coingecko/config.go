// Package coingecko provides a client for the CoinGecko coins API.
package coingecko

import (
	"os"
	"time"
)

// DefaultBaseURL is used when COINGECKO_BASE_URL is not set.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Config holds configuration for the CoinGecko API client.
// CoinGecko's public endpoints require no API key.
type Config struct {
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}

// Package di provides dependency injection factories for creating application components.
package di

import (
	"crypto_backend/internal/platform/externalapi/alphavantage"
	"crypto_backend/internal/platform/externalapi/coingecko"
	infrahttp "crypto_backend/internal/platform/http"
)

// NewDailyMarket creates a fully configured Alpha Vantage client with HTTP client.
// This is the provider for the daily time-series ingestion job.
func NewDailyMarket() *alphavantage.Market {
	cfg := alphavantage.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewMarket(cfg, httpClient)
}

// NewSnapshotMarket creates a fully configured CoinGecko client with HTTP client.
// This is the provider for the administrative snapshot update.
func NewSnapshotMarket() *coingecko.Client {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewClient(cfg, httpClient)
}

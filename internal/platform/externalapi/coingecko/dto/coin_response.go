// Package dto defines data transfer objects for the CoinGecko API responses.
package dto

// CoinResponse represents the subset of the /coins/{id} JSON response used by
// the snapshot updater. Monetary maps are keyed by fiat currency code ("usd").
type CoinResponse struct {
	ID         string `json:"id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// DailySeriesResponse represents the JSON response from the
// DIGITAL_CURRENCY_DAILY function. The time series maps a calendar date
// ("2024-01-05") to its OHLCV fields, keyed by the documented field names
// ("1. open" .. "5. volume"). All numeric values arrive as strings.
type DailySeriesResponse struct {
	Series       map[string]map[string]string `json:"Time Series (Digital Currency Daily)"`
	Note         string                       `json:"Note,omitempty"`
	ErrorMessage string                       `json:"Error Message,omitempty"`
}

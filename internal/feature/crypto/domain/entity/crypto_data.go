// Package entity defines the domain models for the crypto feature.
package entity

import "time"

// CryptoData represents one daily OHLCV (Open, High, Low, Close, Volume)
// candle for a cryptocurrency symbol.
type CryptoData struct {
	Symbol string    // Ticker symbol, uppercase (e.g., "BTC")
	Date   time.Time // Calendar date of the candle (day granularity)
	Open   float64   // Opening price (USD)
	High   float64   // Highest price during the day
	Low    float64   // Lowest price during the day
	Close  float64   // Closing price
	Volume float64   // Trading volume
}

// Snapshot は外部プロバイダから取得した銘柄の現在値スナップショットです。
// 日次のロウソク足とは別系統の書き込み（1時間ウィンドウのUpsert）に使われます。
type Snapshot struct {
	Symbol    string    // ティッカーシンボル
	Name      string    // プロバイダが返す表示名
	Price     float64   // 現在価格（USD）
	MarketCap float64   // 時価総額（USD）
	Volume    float64   // 24時間出来高（USD）
	Change24h float64   // 24時間変化率（%）
	Timestamp time.Time // 取得時刻
}

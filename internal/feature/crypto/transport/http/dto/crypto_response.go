// Package dto はcryptoフィーチャーのHTTP APIのデータ転送オブジェクトを定義します。
package dto

// CryptoDataItem は1件のOHLCVレコードのレスポンスDTOです。
type CryptoDataItem struct {
	Symbol string  `json:"symbol"` // ティッカーシンボル
	Date   string  `json:"date"`   // 日付（RFC3339）
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume float64 `json:"volume"` // 出来高
}

// AvailableItem は /available の1銘柄分のレスポンスです。
type AvailableItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// AvailableResponse は /available のレスポンス全体です。
type AvailableResponse struct {
	Success bool            `json:"success"`
	Data    []AvailableItem `json:"data"`
}

// HistoricalResponse は /historical のレスポンス全体です。
type HistoricalResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []CryptoDataItem `json:"data"`
}

// SnapshotItem は管理者向け更新の1銘柄分の結果です。
type SnapshotItem struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	MarketCap float64 `json:"marketCap"`
	Volume    float64 `json:"volume"`
	Change24h float64 `json:"change24h"`
	Timestamp string  `json:"timestamp"`
}

// UpdateResponse は /update のレスポンス全体です。
type UpdateResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []SnapshotItem `json:"data"`
}

// ErrorEnvelope は success フラグ付きのエラーレスポンスです。
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse は message フィールドのみのレスポンスです。
// 一部のエンドポイント（/prices, /top, /detail）はこの形式でエラーを返します。
type MessageResponse struct {
	Message string `json:"message"`
}

package entity

import "time"

// Prediction は価格予測のレコードです。
//
// Experimental: スキーマのみ定義されており、現時点で読み書きするコンポーネントは
// 存在しません。将来の予測機能のために形だけ維持しています。
type Prediction struct {
	Symbol         string
	Date           time.Time
	PredictedPrice float64
	Confidence     float64
	ActualPrice    *float64 // 実測値が確定するまで nil
	CreatedAt      time.Time
}

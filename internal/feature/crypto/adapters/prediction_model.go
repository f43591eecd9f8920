package adapters

import "time"

// PredictionModel は predictions テーブルの1行です。
//
// Experimental: マイグレーション対象ですが、現時点でこのテーブルを読み書きする
// コンポーネントはありません。予測機能の導入時に利用される予定のスキーマです。
type PredictionModel struct {
	ID             uint      `gorm:"primaryKey"`
	Symbol         string    `gorm:"size:16;not null"`
	Date           time.Time `gorm:"not null"`
	PredictedPrice float64   `gorm:"not null"`
	Confidence     float64   `gorm:"not null"`
	ActualPrice    *float64
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (PredictionModel) TableName() string {
	return "predictions"
}

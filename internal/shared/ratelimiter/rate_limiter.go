package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// FixedDelay は呼び出しごとに一定時間待機するシンプルなレートリミッターです。
// Alpha Vantage のリクエスト上限を守るため、銘柄ごとの取得の間に固定の待機を挟みます。
// 最初の呼び出しでは待機しません。
type FixedDelay struct {
	delay time.Duration
	first bool
}

// NewFixedDelay は指定された待機時間で新しいFixedDelayのインスタンスを生成します。
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay, first: true}
}

// WaitIfNeeded は2回目以降の呼び出しで固定時間待機します。
func (f *FixedDelay) WaitIfNeeded() {
	if f.first {
		f.first = false
		return
	}
	log.Printf("[RATE LIMIT] sleeping for %v...", f.delay)
	time.Sleep(f.delay)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/shared/registry"
)

const (
	// DefaultHistoricalDays は履歴クエリのデフォルト日数です。
	DefaultHistoricalDays = 30
	// DefaultPricesDays は複数銘柄価格クエリのデフォルト日数です。
	DefaultPricesDays = 7
	// DefaultTopLimit は /top のデフォルト件数です。
	DefaultTopLimit = 6
	// DefaultTopMetric は /top のデフォルトソートメトリクスです。
	DefaultTopMetric = "volume"

	// topWindow は最新日からどこまで遡って /top の対象とするかのウィンドウです。
	topWindow = 24 * time.Hour
)

// topMetrics はソート対象として受け付けるメトリクス名です。
var topMetrics = map[string]bool{
	"open":   true,
	"high":   true,
	"low":    true,
	"close":  true,
	"volume": true,
}

// CryptoRepository はOHLCVデータの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CryptoRepository interface {
	// FindRange は指定銘柄の [from, to] 範囲のレコードを日付昇順で返します。
	FindRange(ctx context.Context, symbol string, from, to time.Time) ([]entity.CryptoData, error)

	// FindRangeMulti は複数銘柄の範囲検索結果を銘柄ごとにグルーピングして返します。
	// リクエストされた銘柄はレコードが0件でも必ずキーとして含まれます。
	FindRangeMulti(ctx context.Context, symbols []string, from, to time.Time) (map[string][]entity.CryptoData, error)

	// LatestDate は全レコード中の最大の日付を返します。ストアが空なら ok=false。
	LatestDate(ctx context.Context) (time.Time, bool, error)

	// TopByMetric は from 以降のレコードを指定メトリクスの降順で最大 limit 件返します。
	TopByMetric(ctx context.Context, from time.Time, metric string, limit int) ([]entity.CryptoData, error)

	// DistinctSymbols は1件以上のレコードを持つ銘柄シンボルをすべて返します。
	DistinctSymbols(ctx context.Context) ([]string, error)
}

// AvailableCrypto は /available のために表示名とロゴ画像URLを付加した銘柄情報です。
type AvailableCrypto struct {
	Symbol   string
	Name     string
	ImageURL string
}

// cryptoUsecase は読み取り系クエリのユースケースを定義します。
type cryptoUsecase struct {
	repo CryptoRepository
}

// NewCryptoUsecase はcryptoUsecaseの新しいインスタンスを生成します。
func NewCryptoUsecase(repo CryptoRepository) *cryptoUsecase {
	return &cryptoUsecase{repo: repo}
}

// ListAvailable はストアに存在するすべての銘柄を表示名・ロゴURL付きで返します。
func (cu *cryptoUsecase) ListAvailable(ctx context.Context) ([]AvailableCrypto, error) {
	symbols, err := cu.repo.DistinctSymbols(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableCrypto, 0, len(symbols))
	for _, s := range symbols {
		name := registry.DisplayName(s)
		out = append(out, AvailableCrypto{
			Symbol:   s,
			Name:     name,
			ImageURL: logoURL(name, s),
		})
	}
	return out, nil
}

// logoURL は表示名とシンボルからロゴ画像URLを導出します。
// 表示名は小文字化して空白をハイフンに置換します（例: "Bitcoin Cash" → "bitcoin-cash"）。
func logoURL(name, symbol string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	return fmt.Sprintf("https://cryptologos.cc/logos/%s-%s-logo.png", slug, strings.ToLower(symbol))
}

// GetHistorical は指定銘柄の直近 days 日分の履歴を日付昇順で返します。
// symbol が空なら ErrSymbolRequired、範囲内にレコードがなければ ErrNoData を返します。
func (cu *cryptoUsecase) GetHistorical(ctx context.Context, symbol string, days int) ([]entity.CryptoData, error) {
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	if days <= 0 {
		days = DefaultHistoricalDays
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	rows, err := cu.repo.FindRange(ctx, strings.ToUpper(symbol), from, to)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no historical data for %s", ErrNoData, symbol)
	}
	return rows, nil
}

// GetLatestPrices は複数銘柄の直近 days 日分のレコードを銘柄ごとにまとめて返します。
// リクエストされた銘柄はデータが無くても空のスライスとしてキーに含まれます。
func (cu *cryptoUsecase) GetLatestPrices(ctx context.Context, symbols []string, days int) (map[string][]entity.CryptoData, error) {
	cleaned := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if t := strings.TrimSpace(s); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrSymbolsRequired
	}
	if days <= 0 {
		days = DefaultPricesDays
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	return cu.repo.FindRangeMulti(ctx, cleaned, from, to)
}

// GetTop はストア内の最新日付から24時間以内のレコードを、指定メトリクスの降順で
// 最大 limit 件返します。ストアが空なら ErrNoData を返します。
// 未知のメトリクスはデフォルト（volume）として扱います。
func (cu *cryptoUsecase) GetTop(ctx context.Context, limit int, sortBy string) ([]entity.CryptoData, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if !topMetrics[sortBy] {
		sortBy = DefaultTopMetric
	}

	latest, ok, err := cu.repo.LatestDate(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: store is empty", ErrNoData)
	}

	return cu.repo.TopByMetric(ctx, latest.Add(-topWindow), sortBy, limit)
}

// GetDetail は1銘柄の直近 days 日分のレコードを返します。
// GetHistoricalと同じウィンドウ計算で、範囲内にレコードがなければ ErrNoData を返します。
func (cu *cryptoUsecase) GetDetail(ctx context.Context, symbol string, days int) ([]entity.CryptoData, error) {
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	if days <= 0 {
		days = DefaultHistoricalDays
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	rows, err := cu.repo.FindRange(ctx, strings.ToUpper(symbol), from, to)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, symbol)
	}
	return rows, nil
}

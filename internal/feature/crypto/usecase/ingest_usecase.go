package usecase

import (
	"context"
	"log/slog"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/shared/ratelimiter"
)

// MarketRepository は日次時系列データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetDailySeries は指定銘柄の利用可能な日次時系列全体を検証済みで返します。
	// 時系列が取得できない場合は空のスライスを返すことがあります。
	GetDailySeries(ctx context.Context, symbol string) ([]entity.CryptoData, error)
}

// CryptoWriter は日次ロウソク足の書き込みレイヤーを抽象化します。
type CryptoWriter interface {
	// Upsert は (symbol, date) をユニークキーとして1レコードを挿入または全置換します。
	Upsert(ctx context.Context, d entity.CryptoData) error
}

// IngestUsecase は外部APIから日次データを取得し、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	market      MarketRepository
	crypto      CryptoWriter
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, crypto CryptoWriter, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, crypto: crypto, rateLimiter: rateLimiter}
}

// ingestOne は指定された銘柄の日次時系列を外部リポジトリから取得し、
// 1レコードずつデータベースにUpsertします。
// 個々のレコードの保存失敗はログに出力して続行し、その銘柄の残りの日付は処理されます。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string) error {
	records, err := iu.market.GetDailySeries(ctx, symbol)
	if err != nil {
		return err
	}

	saved := 0
	for _, r := range records {
		if err := iu.crypto.Upsert(ctx, r); err != nil {
			// 1日分の保存失敗で銘柄全体を止めない
			slog.Error("failed to save record", "symbol", symbol, "date", r.Date, "error", err)
			continue
		}
		saved++
	}
	slog.Info("symbol ingested", "symbol", symbol, "fetched", len(records), "saved", saved)
	return nil
}

// IngestAll はワークリストの全銘柄の日次時系列を取得してデータベースに永続化します。
// 外部APIのレートリミットを守るため、銘柄の処理の間にレートリミッターの待機を挟みます。
// 1銘柄の取得失敗はログに出力して次の銘柄へ進みます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		if err := ctx.Err(); err != nil {
			return err
		}
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, s); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest symbol", "symbol", s, "error", err)
			continue
		}
	}
	return nil
}

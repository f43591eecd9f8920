package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/shared/registry"
)

// snapshotWindow は1銘柄につき1レコードに収める時間ウィンドウです。
// このウィンドウ内に再度更新が走った場合、新しい行は作られず既存行が上書きされます。
const snapshotWindow = time.Hour

// SnapshotRepository は外部プロバイダから現在値スナップショットを取得する
// リポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context, providerID string) (entity.Snapshot, error)
}

// SnapshotWriter は時間ウィンドウキーの書き込みレイヤーを抽象化します。
// 日次ロウソク足の (symbol, date) キーとは別の書き込みポリシーです。
type SnapshotWriter interface {
	UpsertHourly(ctx context.Context, d entity.CryptoData, window time.Duration) error
}

// UpdateUsecase は管理者トリガーのスナップショット更新ユースケースを定義します。
// 日次取り込み（IngestUsecase）とは独立した操作で、統合してはいけません。
type UpdateUsecase struct {
	snapshots SnapshotRepository
	crypto    SnapshotWriter
}

// NewUpdateUsecase は新しい UpdateUsecase を作成します。
func NewUpdateUsecase(snapshots SnapshotRepository, crypto SnapshotWriter) *UpdateUsecase {
	return &UpdateUsecase{snapshots: snapshots, crypto: crypto}
}

// UpdateAll はレジストリの全銘柄についてプロバイダの現在値スナップショットを取得し、
// 1銘柄1時間ウィンドウのポリシーでストアにUpsertして銘柄ごとの結果を返します。
// いずれかの銘柄で失敗した場合は処理を中断してエラーを返します（呼び出し元でサーバーエラー扱い）。
func (uu *UpdateUsecase) UpdateAll(ctx context.Context) ([]entity.Snapshot, error) {
	symbols := registry.Symbols()
	results := make([]entity.Snapshot, 0, len(symbols))

	for _, symbol := range symbols {
		id := registry.ProviderID(symbol)

		snap, err := uu.snapshots.GetSnapshot(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch snapshot for %s: %w", symbol, err)
		}
		snap.Symbol = symbol

		// スナップショットをOHLCVレコードに射影する。四本値はすべて現在価格。
		rec := entity.CryptoData{
			Symbol: symbol,
			Date:   snap.Timestamp,
			Open:   snap.Price,
			High:   snap.Price,
			Low:    snap.Price,
			Close:  snap.Price,
			Volume: snap.Volume,
		}
		if err := uu.crypto.UpsertHourly(ctx, rec, snapshotWindow); err != nil {
			return nil, fmt.Errorf("save snapshot for %s: %w", symbol, err)
		}

		slog.Info("snapshot updated", "symbol", symbol, "price", snap.Price)
		results = append(results, snap)
	}
	return results, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/shared/registry"
)

// mockSnapshotRepository はSnapshotRepositoryインターフェースのモック実装です。
type mockSnapshotRepository struct {
	GetSnapshotFunc func(ctx context.Context, providerID string) (entity.Snapshot, error)
}

func (m *mockSnapshotRepository) GetSnapshot(ctx context.Context, providerID string) (entity.Snapshot, error) {
	return m.GetSnapshotFunc(ctx, providerID)
}

// mockSnapshotWriter はSnapshotWriterインターフェースのモック実装です。
type mockSnapshotWriter struct {
	UpsertHourlyFunc func(ctx context.Context, d entity.CryptoData, window time.Duration) error
}

func (m *mockSnapshotWriter) UpsertHourly(ctx context.Context, d entity.CryptoData, window time.Duration) error {
	return m.UpsertHourlyFunc(ctx, d, window)
}

func TestUpdateUsecase_UpdateAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC)

	t.Run("success: fetches by provider id and projects price into OHLCV", func(t *testing.T) {
		var providerIDs []string
		var written []entity.CryptoData
		var windows []time.Duration

		snapshots := &mockSnapshotRepository{
			GetSnapshotFunc: func(ctx context.Context, providerID string) (entity.Snapshot, error) {
				providerIDs = append(providerIDs, providerID)
				return entity.Snapshot{
					Name:      "whatever",
					Price:     42000,
					MarketCap: 8e11,
					Volume:    3.5e10,
					Change24h: -1.2,
					Timestamp: now,
				}, nil
			},
		}
		writer := &mockSnapshotWriter{
			UpsertHourlyFunc: func(ctx context.Context, d entity.CryptoData, window time.Duration) error {
				written = append(written, d)
				windows = append(windows, window)
				return nil
			},
		}

		uc := NewUpdateUsecase(snapshots, writer)
		results, err := uc.UpdateAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worklist := registry.Symbols()
		if len(results) != len(worklist) {
			t.Fatalf("results: got %d, want %d", len(results), len(worklist))
		}
		// BTCはCoinGeckoのIDであるbitcoinで照会される
		if providerIDs[0] != "bitcoin" {
			t.Errorf("first provider id: got %q, want bitcoin", providerIDs[0])
		}
		if results[0].Symbol != "BTC" {
			t.Errorf("first result symbol: got %q, want BTC", results[0].Symbol)
		}

		rec := written[0]
		if rec.Open != 42000 || rec.High != 42000 || rec.Low != 42000 || rec.Close != 42000 {
			t.Errorf("OHLC should all equal the snapshot price, got %+v", rec)
		}
		if rec.Volume != 3.5e10 {
			t.Errorf("volume: got %v, want 3.5e10", rec.Volume)
		}
		if !rec.Date.Equal(now) {
			t.Errorf("date: got %v, want %v", rec.Date, now)
		}
		for _, w := range windows {
			if w != time.Hour {
				t.Errorf("window: got %v, want 1h", w)
			}
		}
	})

	t.Run("fetch failure aborts the whole update", func(t *testing.T) {
		errAPI := errors.New("rate limited")
		calls := 0
		snapshots := &mockSnapshotRepository{
			GetSnapshotFunc: func(ctx context.Context, providerID string) (entity.Snapshot, error) {
				calls++
				return entity.Snapshot{}, errAPI
			},
		}
		writer := &mockSnapshotWriter{
			UpsertHourlyFunc: func(ctx context.Context, d entity.CryptoData, window time.Duration) error {
				t.Fatal("writer should not be called after a fetch failure")
				return nil
			},
		}

		uc := NewUpdateUsecase(snapshots, writer)
		_, err := uc.UpdateAll(ctx)
		if !errors.Is(err, errAPI) {
			t.Fatalf("expected wrapped fetch error, got %v", err)
		}
		if calls != 1 {
			t.Errorf("fetch calls: got %d, want 1", calls)
		}
	})

	t.Run("save failure aborts the whole update", func(t *testing.T) {
		errSave := errors.New("disk full")
		snapshots := &mockSnapshotRepository{
			GetSnapshotFunc: func(ctx context.Context, providerID string) (entity.Snapshot, error) {
				return entity.Snapshot{Price: 1, Timestamp: now}, nil
			},
		}
		writer := &mockSnapshotWriter{
			UpsertHourlyFunc: func(ctx context.Context, d entity.CryptoData, window time.Duration) error {
				return errSave
			},
		}

		uc := NewUpdateUsecase(snapshots, writer)
		_, err := uc.UpdateAll(ctx)
		if !errors.Is(err, errSave) {
			t.Fatalf("expected wrapped save error, got %v", err)
		}
	})
}

// Package adapters はcryptoフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// metricColumns は /top のソートに使えるカラムのホワイトリストです。
// クエリ文字列をそのままSQLに埋め込まないための対応表でもあります。
var metricColumns = map[string]string{
	"open":   "open",
	"high":   "high",
	"low":    "low",
	"close":  "close",
	"volume": "volume",
}

// cryptoGorm はCryptoRepositoryインターフェースのGORM実装です。
type cryptoGorm struct {
	db *gorm.DB
}

// NewCryptoRepository は指定されたDB接続でcryptoGormリポジトリの新しいインスタンスを生成します。
func NewCryptoRepository(db *gorm.DB) *cryptoGorm {
	return &cryptoGorm{db: db}
}

// CryptoDataModel は crypto_data テーブルの1行です。
// (symbol, date) のユニークインデックスが「1銘柄1日1レコード」の不変条件を保証します。
type CryptoDataModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:16;not null;uniqueIndex:crypto_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:crypto_sym_date,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume float64 `gorm:"not null;default:0"`
}

func (CryptoDataModel) TableName() string {
	return "crypto_data"
}

func toModel(e entity.CryptoData) CryptoDataModel {
	return CryptoDataModel{
		Symbol: e.Symbol,
		Date:   e.Date,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

func toEntity(m CryptoDataModel) entity.CryptoData {
	return entity.CryptoData{
		Symbol: m.Symbol,
		Date:   m.Date,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

// Upsert は (symbol, date) をユニークキーとして1レコードを挿入または全置換します。
// 同一キーへの並行書き込みはDBのユニーク制約とON CONFLICTで1行に収束します。
func (r *cryptoGorm) Upsert(ctx context.Context, d entity.CryptoData) error {
	m := toModel(d)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&m).Error
}

// FindRange は指定銘柄の [from, to] 範囲のレコードを日付昇順で返します。境界は両端含みます。
func (r *cryptoGorm) FindRange(ctx context.Context, symbol string, from, to time.Time) ([]entity.CryptoData, error) {
	var rows []CryptoDataModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND date >= ? AND date <= ?", symbol, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.CryptoData, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindRangeMulti は複数銘柄の範囲検索を行い、銘柄ごとの日付昇順スライスにグルーピングして返します。
// リクエストされた銘柄はレコードが0件でも必ずキーとして含まれます。
func (r *cryptoGorm) FindRangeMulti(ctx context.Context, symbols []string, from, to time.Time) (map[string][]entity.CryptoData, error) {
	grouped := make(map[string][]entity.CryptoData, len(symbols))
	for _, s := range symbols {
		grouped[s] = []entity.CryptoData{}
	}

	var rows []CryptoDataModel
	if err := r.db.WithContext(ctx).
		Where("symbol IN ? AND date >= ? AND date <= ?", symbols, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, m := range rows {
		grouped[m.Symbol] = append(grouped[m.Symbol], toEntity(m))
	}
	return grouped, nil
}

// LatestDate は全レコード中の最大の日付を返します。ストアが空の場合は ok=false を返します。
func (r *cryptoGorm) LatestDate(ctx context.Context) (time.Time, bool, error) {
	var row CryptoDataModel
	err := r.db.WithContext(ctx).Order("date DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return row.Date, true, nil
}

// TopByMetric は from 以降のレコードを指定メトリクスの降順で最大 limit 件返します。
// 同値の場合は挿入順（主キー昇順）で安定します。未知のメトリクスは volume として扱います。
func (r *cryptoGorm) TopByMetric(ctx context.Context, from time.Time, metric string, limit int) ([]entity.CryptoData, error) {
	col, ok := metricColumns[metric]
	if !ok {
		col = "volume"
	}

	var rows []CryptoDataModel
	if err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Order(col + " DESC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.CryptoData, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// DistinctSymbols は1件以上のレコードを持つすべての銘柄シンボルを返します。
func (r *cryptoGorm) DistinctSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	if err := r.db.WithContext(ctx).
		Model(&CryptoDataModel{}).
		Distinct().
		Order("symbol ASC").
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// UpsertHourly は (symbol, 直近 window 以内のタイムスタンプ) をキーとしてレコードを
// 挿入または更新します。日次ロウソク足の日付キーUpsertとは別の書き込みポリシーです。
// ウィンドウ内に既存行があればその行を上書きし、なければ新規に挿入します。
func (r *cryptoGorm) UpsertHourly(ctx context.Context, d entity.CryptoData, window time.Duration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cutoff := d.Date.Add(-window)

		var row CryptoDataModel
		err := tx.Where("symbol = ? AND date >= ?", d.Symbol, cutoff).
			Order("date DESC").
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m := toModel(d)
			return tx.Create(&m).Error
		}
		if err != nil {
			return err
		}

		row.Date = d.Date
		row.Open = d.Open
		row.High = d.High
		row.Low = d.Low
		row.Close = d.Close
		row.Volume = d.Volume
		return tx.Save(&row).Error
	})
}

package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/externalapi/alphavantage/dto"
)

// fieldKeys はAlpha Vantageが返すOHLCVフィールドのドキュメント上のキーです。
var fieldKeys = [5]string{"1. open", "2. high", "3. low", "4. close", "5. volume"}

// Market はAlpha Vantage外部APIから日次の暗号通貨データを取得するMarketRepository実装です。
type Market struct {
	cfg    Config
	client *http.Client
}

// MarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket は指定された設定とHTTPクライアントでMarketの新しいインスタンスを生成します。
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// GetDailySeries はAlpha Vantage APIから指定銘柄の日次時系列全体を取得し、
// 検証済みのentity.CryptoDataのスライスとして日付昇順で返します。
//
// レスポンスに時系列フィールド自体が存在しない場合は警告ログを出して空のスライスを
// 返します（銘柄単位のスキップ）。個々の日付のエントリは、フィールド欠落や数値として
// 解釈できない値があれば警告ログを出してその日付だけを読み飛ばします。
func (m *Market) GetDailySeries(ctx context.Context, symbol string) ([]entity.CryptoData, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("function", "DIGITAL_CURRENCY_DAILY")
	q.Set("symbol", symbol)
	q.Set("market", "USD")
	q.Set("apikey", m.cfg.APIKey)

	u := fmt.Sprintf("%s/query?%s", m.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.DailySeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// 時系列フィールドがない場合はこの銘柄をスキップ（レート制限ノートやエラー応答）
	if body.Series == nil {
		slog.Warn("no time series data in response",
			"symbol", symbol, "note", body.Note, "error_message", body.ErrorMessage)
		return []entity.CryptoData{}, nil
	}

	records := make([]entity.CryptoData, 0, len(body.Series))
	for dateStr, fields := range body.Series {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			slog.Warn("unparsable date in series", "symbol", symbol, "date", dateStr)
			continue
		}

		// 5つのフィールドをキーで取り出す。欠落があればこの日付をスキップ
		var raw [5]string
		missing := false
		for i, key := range fieldKeys {
			v, ok := fields[key]
			if !ok || v == "" {
				slog.Warn("missing required data field",
					"symbol", symbol, "date", dateStr, "field", key)
				missing = true
				break
			}
			raw[i] = v
		}
		if missing {
			continue
		}

		// 5つのフィールドを浮動小数点としてパース。数値でなければこの日付をスキップ
		var vals [5]float64
		bad := false
		for i, s := range raw {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(f) {
				slog.Warn("invalid numeric value",
					"symbol", symbol, "date", dateStr, "field", fieldKeys[i], "value", s)
				bad = true
				break
			}
			vals[i] = f
		}
		if bad {
			continue
		}

		records = append(records, entity.CryptoData{
			Symbol: symbol,
			Date:   d,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	// mapの走査順は不定なので日付昇順に整える
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/usecase"
	"crypto_backend/internal/platform/externalapi/coingecko/dto"
)

// Client はCoinGecko外部APIから現在値スナップショットを取得するSnapshotRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがSnapshotRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SnapshotRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetSnapshot はCoinGeckoの /coins/{id} から現在価格・時価総額・出来高・24時間変化率を
// 取得してentity.Snapshotとして返します。Timestampは呼び出し時刻です。
func (c *Client) GetSnapshot(ctx context.Context, providerID string) (entity.Snapshot, error) {
	q := url.Values{}
	// 不要なペイロードを落とすためのフラグ
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")

	u := fmt.Sprintf("%s/coins/%s?%s", c.cfg.BaseURL, url.PathEscape(providerID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Snapshot{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entity.Snapshot{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Snapshot{}, fmt.Errorf("coingecko http %d for %s", res.StatusCode, providerID)
	}

	var body dto.CoinResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Snapshot{}, err
	}

	return entity.Snapshot{
		Name:      body.Name,
		Price:     body.MarketData.CurrentPrice["usd"],
		MarketCap: body.MarketData.MarketCap["usd"],
		Volume:    body.MarketData.TotalVolume["usd"],
		Change24h: body.MarketData.PriceChangePercentage24h,
		Timestamp: time.Now(),
	}, nil
}

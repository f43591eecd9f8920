// Package handler はcryptoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"crypto_backend/internal/feature/crypto/domain/entity"
	"crypto_backend/internal/feature/crypto/transport/http/dto"
	"crypto_backend/internal/feature/crypto/usecase"
)

// CryptoUsecase は読み取り系クエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CryptoUsecase interface {
	ListAvailable(ctx context.Context) ([]usecase.AvailableCrypto, error)
	GetHistorical(ctx context.Context, symbol string, days int) ([]entity.CryptoData, error)
	GetLatestPrices(ctx context.Context, symbols []string, days int) (map[string][]entity.CryptoData, error)
	GetTop(ctx context.Context, limit int, sortBy string) ([]entity.CryptoData, error)
	GetDetail(ctx context.Context, symbol string, days int) ([]entity.CryptoData, error)
}

// UpdateUsecase は管理者トリガーのスナップショット更新インターフェースを定義します。
type UpdateUsecase interface {
	UpdateAll(ctx context.Context) ([]entity.Snapshot, error)
}

// CryptoHandler は暗号通貨データのHTTPリクエストを処理します。
type CryptoHandler struct {
	uc     CryptoUsecase
	update UpdateUsecase
}

// NewCryptoHandler は指定されたusecaseでCryptoHandlerの新しいインスタンスを生成します。
func NewCryptoHandler(uc CryptoUsecase, update UpdateUsecase) *CryptoHandler {
	return &CryptoHandler{uc: uc, update: update}
}

func toItems(rows []entity.CryptoData) []dto.CryptoDataItem {
	out := make([]dto.CryptoDataItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CryptoDataItem{
			Symbol: r.Symbol,
			Date:   r.Date.UTC().Format(time.RFC3339),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	return out
}

// GetAvailable はストアに存在する全銘柄を表示名・ロゴURL付きで返します。
//
// エンドポイント: GET /api/crypto/available
func (h *CryptoHandler) GetAvailable(c *gin.Context) {
	cryptos, err := h.uc.ListAvailable(c.Request.Context())
	if err != nil {
		slog.Error("failed to list available cryptocurrencies", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorEnvelope{Error: "Server error"})
		return
	}

	items := make([]dto.AvailableItem, 0, len(cryptos))
	for _, cr := range cryptos {
		items = append(items, dto.AvailableItem{
			Symbol:   cr.Symbol,
			Name:     cr.Name,
			ImageURL: cr.ImageURL,
		})
	}
	c.JSON(http.StatusOK, dto.AvailableResponse{Success: true, Data: items})
}

// GetHistorical は1銘柄の履歴データを日付昇順で返します。
//
// エンドポイント: GET /api/crypto/historical/:symbol/:days
func (h *CryptoHandler) GetHistorical(c *gin.Context) {
	symbol := c.Param("symbol")
	// 不正な日数は0としてusecaseのデフォルトに任せる
	days, _ := strconv.Atoi(c.Param("days"))

	rows, err := h.uc.GetHistorical(c.Request.Context(), symbol, days)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSymbolRequired):
			c.JSON(http.StatusBadRequest, dto.ErrorEnvelope{Error: "Please provide a cryptocurrency symbol"})
		case errors.Is(err, usecase.ErrNoData):
			c.JSON(http.StatusNotFound, dto.ErrorEnvelope{Error: "No historical data found for this cryptocurrency"})
		default:
			slog.Error("failed to fetch historical data", "symbol", symbol, "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorEnvelope{Error: "Server error"})
		}
		return
	}

	items := toItems(rows)
	c.JSON(http.StatusOK, dto.HistoricalResponse{Success: true, Count: len(items), Data: items})
}

// GetPrices は複数銘柄の直近データを銘柄ごとにまとめて返します。
// symbolsはカンマ区切りまたは繰り返しクエリパラメータで指定します。
//
// エンドポイント: GET /api/crypto/prices?symbols=BTC,ETH&days=7
func (h *CryptoHandler) GetPrices(c *gin.Context) {
	var symbols []string
	for _, raw := range c.QueryArray("symbols") {
		symbols = append(symbols, strings.Split(raw, ",")...)
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultPricesDays)))

	grouped, err := h.uc.GetLatestPrices(c.Request.Context(), symbols, days)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolsRequired) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Please provide cryptocurrency symbols"})
			return
		}
		slog.Error("failed to fetch latest prices", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
		return
	}

	out := make(map[string][]dto.CryptoDataItem, len(grouped))
	for symbol, rows := range grouped {
		out[symbol] = toItems(rows)
	}
	c.JSON(http.StatusOK, out)
}

// GetTop はストア内の最新日付から24時間以内のレコードを指定メトリクスの降順で返します。
//
// エンドポイント: GET /api/crypto/top?limit=6&sortBy=volume
func (h *CryptoHandler) GetTop(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultTopLimit)))
	sortBy := c.DefaultQuery("sortBy", usecase.DefaultTopMetric)

	rows, err := h.uc.GetTop(c.Request.Context(), limit, sortBy)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No cryptocurrency data found"})
			return
		}
		slog.Error("failed to fetch top cryptocurrencies", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
		return
	}

	c.JSON(http.StatusOK, toItems(rows))
}

// GetDetail は1銘柄の直近データを返します。
//
// エンドポイント: GET /api/crypto/detail/:symbol?days=30
func (h *CryptoHandler) GetDetail(c *gin.Context) {
	symbol := c.Param("symbol")
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultHistoricalDays)))

	rows, err := h.uc.GetDetail(c.Request.Context(), symbol, days)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSymbolRequired):
			c.JSON(http.StatusBadRequest, dto.ErrorEnvelope{Error: "Please provide a cryptocurrency symbol"})
		case errors.Is(err, usecase.ErrNoData):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: fmt.Sprintf("No data found for %s", symbol)})
		default:
			slog.Error("failed to fetch detail", "symbol", symbol, "error", err)
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, toItems(rows))
}

// Update は外部プロバイダから現在値スナップショットを取得してストアを更新します。
// 認証済みかつadminロールのユーザーのみ実行できます（ミドルウェアで強制）。
//
// エンドポイント: POST /api/crypto/update
func (h *CryptoHandler) Update(c *gin.Context) {
	results, err := h.update.UpdateAll(c.Request.Context())
	if err != nil {
		// 内部の詳細は呼び出し元に漏らさない
		slog.Error("failed to update cryptocurrency data", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorEnvelope{Error: "Server error"})
		return
	}

	items := make([]dto.SnapshotItem, 0, len(results))
	for _, s := range results {
		items = append(items, dto.SnapshotItem{
			Symbol:    s.Symbol,
			Name:      s.Name,
			Price:     s.Price,
			MarketCap: s.MarketCap,
			Volume:    s.Volume,
			Change24h: s.Change24h,
			Timestamp: s.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, dto.UpdateResponse{
		Success: true,
		Message: "Cryptocurrency data updated successfully",
		Data:    items,
	})
}

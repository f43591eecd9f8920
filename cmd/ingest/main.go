package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"crypto_backend/internal/app/di"
	cryptoadapters "crypto_backend/internal/feature/crypto/adapters"
	"crypto_backend/internal/feature/crypto/usecase"
	infradb "crypto_backend/internal/platform/db"
	"crypto_backend/internal/shared/ratelimiter"
)

// symbols は日次取り込みのワークリストです。
var symbols = []string{"BTC", "ETH", "XRP", "LTC", "ADA"}

// symbolDelay は外部APIのリクエスト上限を守るための銘柄間の待機時間です。
const symbolDelay = 15 * time.Second

// runTimeout は1回の取り込み実行全体のデッドラインです。
const runTimeout = 30 * time.Minute

func main() {
	schedule := flag.String("schedule", "", "cron spec to run the job repeatedly (e.g. \"0 0 6 * * *\"); empty runs once and exits")
	flag.Parse()

	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := infradb.OpenDB()
	cryptoRepo := cryptoadapters.NewCryptoRepository(db)
	market := di.NewDailyMarket()

	runOnce := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		// レートリミッターは実行ごとに作り直す（初回待機なしの状態に戻すため）
		rl := ratelimiter.NewFixedDelay(symbolDelay)
		uc := usecase.NewIngestUsecase(market, cryptoRepo, rl)
		return uc.IngestAll(ctx, symbols)
	}

	if *schedule == "" {
		if err := runOnce(); err != nil {
			log.Fatal(err)
		}
		log.Println("ingest ok")
		return
	}

	// スケジュール実行モード: cron式に従って繰り返し実行する
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(*schedule, func() {
		if err := runOnce(); err != nil {
			log.Println("[ERROR] scheduled ingest failed:", err)
			return
		}
		log.Println("scheduled ingest ok")
	}); err != nil {
		log.Fatal("invalid schedule:", err)
	}

	c.Start()
	log.Println("ingest scheduler started:", *schedule)

	// SIGINT/SIGTERMで停止
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-c.Stop().Done()
	log.Println("ingest scheduler stopped")
}

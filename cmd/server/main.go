package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"crypto_backend/internal/app/di"
	"crypto_backend/internal/app/router"
	authadapters "crypto_backend/internal/feature/auth/adapters"
	authhandler "crypto_backend/internal/feature/auth/transport/handler"
	authusecase "crypto_backend/internal/feature/auth/usecase"
	cryptoadapters "crypto_backend/internal/feature/crypto/adapters"
	cryptohandler "crypto_backend/internal/feature/crypto/transport/handler"
	cryptousecase "crypto_backend/internal/feature/crypto/usecase"
	infradb "crypto_backend/internal/platform/db"
	jwtmw "crypto_backend/internal/platform/jwt"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	cryptoRepo := cryptoadapters.NewCryptoRepository(db)
	snapshotMarket := di.NewSnapshotMarket()

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	cryptoUC := cryptousecase.NewCryptoUsecase(cryptoRepo)
	updateUC := cryptousecase.NewUpdateUsecase(snapshotMarket, cryptoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	cryptoH := cryptohandler.NewCryptoHandler(cryptoUC, updateUC)

	// ルータ生成
	router := router.NewRouter(authH, cryptoH)

	// CORS追加（フロントエンドが別オリジンのため）
	router.Use(cors.Default())

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

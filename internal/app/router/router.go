package router

import (
	authhandler "crypto_backend/internal/feature/auth/transport/handler"
	cryptohandler "crypto_backend/internal/feature/crypto/transport/handler"
	jwtmw "crypto_backend/internal/platform/jwt"
	platformhandler "crypto_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, crypto *cryptohandler.CryptoHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 公開の読み取り系ルート
	api := r.Group("/api/crypto")
	{
		api.GET("/available", crypto.GetAvailable)
		api.GET("/historical/:symbol/:days", crypto.GetHistorical)
		api.GET("/prices", crypto.GetPrices)
		api.GET("/top", crypto.GetTop)
		api.GET("/detail/:symbol", crypto.GetDetail)

		// 管理者専用の更新トリガー
		// jwtmw.AuthRequired() でトークン検証、RequireRole でロール確認
		// → リクエストヘッダーに admin ロールの JWT が必要になる
		api.POST("/update", jwtmw.AuthRequired(), jwtmw.RequireRole(jwtmw.RoleAdmin), crypto.Update)
	}

	return r
}

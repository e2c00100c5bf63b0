package middleware

import (
	"Quorum/pkg/context"
	"Quorum/pkg/jwt"
	"Quorum/pkg/log"
	"Quorum/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer access token, 通过后写入 user_id
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			log.L.Debug("parse token failed", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "token 无效")
			return
		}
		if claims.UserID == 0 {
			response.Abort(c, http.StatusUnauthorized, "token 无效")
			return
		}

		context.SetUserID(c, claims.UserID)
		c.Next()
	}
}

package middleware

import (
	"Quorum/pkg/context"
	"Quorum/pkg/log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if uid, err := context.GetUserID(c); err == nil {
			fields = append(fields, zap.Uint64("user_id", uid))
		}

		if len(c.Errors) > 0 {
			log.L.Error(c.Errors.String(), fields...)
			return
		}
		if c.Writer.Status() >= 500 {
			log.L.Warn("request", fields...)
			return
		}
		log.L.Info("request", fields...)
	}
}

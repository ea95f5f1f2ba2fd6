package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"char_frequency/internal/metrics"
)

// Metrics 記錄請求數量與處理時間，路由以註冊時的模式標記以避免標籤爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		done := metrics.TrackInFlight()
		defer done()

		start := time.Now()
		c.Next()

		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

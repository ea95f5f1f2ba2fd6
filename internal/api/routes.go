package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"char_frequency/internal/api/handlers"
	"char_frequency/internal/metrics"
	"char_frequency/internal/middleware"
	"char_frequency/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, log logrus.FieldLogger, limiter *middleware.RateLimiter) {
	// 初始化 handlers
	frequencyHandler := handlers.NewFrequencyHandler(services.Frequency)

	r.Use(gin.Recovery(), middleware.Metrics(), middleware.RequestLogger(log))

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API 路由群組
	api := r.Group("/api")
	{
		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 字元頻率統計
	frequency := api.Group("/frequency")
	frequency.Use(middleware.RateLimit(limiter))
	{
		frequency.GET("", frequencyHandler.CalculateFromPath)       // 空字串
		frequency.GET("/:input", frequencyHandler.CalculateFromPath) // 路徑參數
		frequency.POST("", frequencyHandler.CalculateFromBody)       // JSON 請求體
	}
}

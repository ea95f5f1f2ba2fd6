package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"char_frequency/internal/metrics"
	"char_frequency/internal/service"
)

// FrequencyHandler 處理字元頻率統計的請求
type FrequencyHandler struct {
	frequencyService *service.FrequencyService
}

// NewFrequencyHandler 創建一個新的 FrequencyHandler 實例
func NewFrequencyHandler(frequencyService *service.FrequencyService) *FrequencyHandler {
	return &FrequencyHandler{frequencyService: frequencyService}
}

// FrequencyInput 定義 POST 請求的結構，input 可以為空字串
type FrequencyInput struct {
	Input string `json:"input"`
}

// CalculateFromPath 處理 GET /frequency/:input，路徑參數即為輸入字串
func (h *FrequencyHandler) CalculateFromPath(c *gin.Context) {
	h.respond(c, c.Param("input"))
}

// CalculateFromBody 處理 POST /frequency，適用於無法放在路徑中的字串
func (h *FrequencyHandler) CalculateFromBody(c *gin.Context) {
	var input FrequencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, input.Input)
}

func (h *FrequencyHandler) respond(c *gin.Context, input string) {
	result, err := h.frequencyService.CalculateFrequency(input)
	if err != nil {
		if errors.Is(err, service.ErrInputTooLong) {
			metrics.RecordCalculation(metrics.OutcomeTooLong, 0)
			_ = c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Input must not exceed %d characters", h.frequencyService.MaxLength()),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate frequency"})
		return
	}

	metrics.RecordCalculation(metrics.OutcomeOK, utf8.RuneCountInString(input))
	c.JSON(http.StatusOK, result)
}

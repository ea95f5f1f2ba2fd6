// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含請求日誌、Prometheus 指標與客戶端限流等跨請求的功能。
package middleware

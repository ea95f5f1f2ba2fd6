// Package api 處理 HTTP 請求路由和處理。
//
// 這個包註冊所有的路由與中間件，handlers 子包負責將 HTTP 請求轉換為
// 字元頻率服務的調用，並將結果轉換回 HTTP 響應。
package api

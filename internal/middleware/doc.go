// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含了在 HTTP 請求處理過程中執行額外操作的中間件函數，
// 目前用於跨域請求的處理。
package middleware

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS 允許任意來源的跨域請求
// 聊天室前端直接從瀏覽器連線，這裡開放所有 origin 與基本方法
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

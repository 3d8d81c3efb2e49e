package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat_relay/internal/api/handlers"
	"chat_relay/internal/middleware"
	"chat_relay/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	roomHandler := handlers.NewRoomHandler(services.Rooms, services.Presence)
	wsHandler := handlers.NewWebSocketHandler(services.Session)

	// 前端從瀏覽器直接連線，開放跨域
	r.Use(middleware.CORS())

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// WebSocket 連接點，join/send/leave 都走事件協定
	api.GET("/ws", wsHandler.HandleWebSocket)

	// 聊天室相關的唯讀查詢
	rooms := api.Group("/rooms")
	{
		rooms.GET("", roomHandler.ListRooms)     // 獲取活躍房間列表
		rooms.GET("/:code", roomHandler.GetRoom) // 獲取房間成員與摘要
	}
}

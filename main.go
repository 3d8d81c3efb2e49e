package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"chat_relay/internal/api"
	"chat_relay/internal/service"
	"chat_relay/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取設置，如服務器地址與房間歷史上限等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化服務
	// 房間表、連線註冊表、廣播引擎與會談協定處理器都在這裡接好
	services := service.NewServices(cfg)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的地址啟動 HTTP 服務器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat_relay/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	session *service.SessionService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(session *service.SessionService) *WebSocketHandler {
	return &WebSocketHandler{session: session}
}

// HandleWebSocket 處理 WebSocket 連接請求
// 升級成功後連線交給會談協定處理器，直到連線結束
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// 升級失敗時 gorilla 已經回覆了 HTTP 錯誤
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.session.HandleConnection(conn)
}

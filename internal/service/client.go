package service

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// 單次寫入的超時，寫不動的連線直接放棄這一輪
	writeWait = 10 * time.Second
	// 多久沒收到 pong 就視為連線失效
	pongWait = 60 * time.Second
	// 心跳間隔，必須短於 pongWait
	pingPeriod = 54 * time.Second
)

// Client 代表一個 WebSocket 客戶端連線
type Client struct {
	ID   string // 連線 ID，由伺服器在升級時指派，連線存活期間不變
	Conn *websocket.Conn

	send chan []byte // 已編碼 frame 的發送緩衝通道
}

// NewClient 創建客戶端連線，sendBuffer 為發送緩衝的 frame 數上限
func NewClient(id string, conn *websocket.Conn, sendBuffer int) *Client {
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &Client{
		ID:   id,
		Conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue 將已編碼的 frame 放入發送隊列
// 隊列滿或已關閉時回傳 false，該 frame 丟棄，不影響其他連線
func (c *Client) enqueue(frame []byte) (ok bool) {
	defer func() {
		// send 可能在連線清理時被關閉
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// writePump 處理向客戶端發送 frame 的邏輯，並定期送出心跳
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-c.send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package models

import (
	"fmt"
	"time"
)

// Message 代表房間內的一條聊天訊息，建立後不再修改
// SentAt 序列化為 RFC3339 時間戳
type Message struct {
	ID                 string    `json:"id"`
	RoomCode           string    `json:"roomCode"`
	SenderConnectionID string    `json:"senderConnectionId"`
	SenderDisplayName  string    `json:"senderDisplayName"`
	Text               string    `json:"text"`
	SentAt             time.Time `json:"sentAt"`
}

// NewMessage 創建一條新的聊天訊息
// 訊息 ID 由毫秒時間戳加上發送者連線 ID 組成，同一毫秒內不同發送者不會碰撞
func NewMessage(roomCode, senderConnID, senderName, text string) Message {
	now := time.Now()
	return Message{
		ID:                 fmt.Sprintf("%d-%s", now.UnixMilli(), senderConnID),
		RoomCode:           roomCode,
		SenderConnectionID: senderConnID,
		SenderDisplayName:  senderName,
		Text:               text,
		SentAt:             now,
	}
}

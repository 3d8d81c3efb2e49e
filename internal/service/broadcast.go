package service

import (
	"encoding/json"
	"log"

	"chat_relay/internal/models"
)

// Broadcaster 負責把事件送到房間內的連線
// 投遞是 fire-and-forget：單一連線失敗或壅塞不影響同一輪廣播的其他連線
type Broadcaster struct {
	clients *ClientManager
	rooms   *RoomStore
}

// NewBroadcaster 創建廣播引擎
func NewBroadcaster(clients *ClientManager, rooms *RoomStore) *Broadcaster {
	return &Broadcaster{
		clients: clients,
		rooms:   rooms,
	}
}

// SendToRoom 將事件廣播給房間內的所有連線
func (b *Broadcaster) SendToRoom(roomCode, event string, payload interface{}) {
	b.fanOut(roomCode, "", event, payload)
}

// SendToRoomExcept 將事件廣播給房間內除了 exceptConnID 以外的所有連線
// 用於「別人加入/離開了」這類通知，動作本人會收到另一種事件
func (b *Broadcaster) SendToRoomExcept(roomCode, exceptConnID, event string, payload interface{}) {
	b.fanOut(roomCode, exceptConnID, event, payload)
}

// SendToConnection 將事件只發給指定的一條連線
func (b *Broadcaster) SendToConnection(connID, event string, payload interface{}) {
	frame, ok := b.encode(event, payload)
	if !ok {
		return
	}
	b.deliver(connID, frame)
}

func (b *Broadcaster) fanOut(roomCode, exceptConnID, event string, payload interface{}) {
	frame, ok := b.encode(event, payload)
	if !ok {
		return
	}

	// 廣播開始時取一次成員快照，廣播期間才加入的連線不在這一輪受眾裡
	for _, id := range b.rooms.MemberIDs(roomCode) {
		if id == exceptConnID {
			continue
		}
		b.deliver(id, frame)
	}
}

func (b *Broadcaster) encode(event string, payload interface{}) ([]byte, bool) {
	frame, err := json.Marshal(models.ServerEvent{
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		log.Printf("event encoding error: %v", err)
		return nil, false
	}
	return frame, true
}

// deliver 對單一連線投遞，失敗只記錄，絕不中斷整輪廣播
func (b *Broadcaster) deliver(connID string, frame []byte) {
	client, ok := b.clients.Get(connID)
	if !ok {
		// 連線已離開傳輸層，投遞退化為無害的 no-op
		return
	}
	if !client.enqueue(frame) {
		log.Printf("dropping frame for conn %s: send buffer full or closed", connID)
	}
}

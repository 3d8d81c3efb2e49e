package service

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chat_relay/internal/models"
	"chat_relay/pkg/config"
)

// unknownDisplayName 註冊表查不到名字時的替代顯示名稱
const unknownDisplayName = "Unknown"

// SessionService 解讀客戶端事件並依序驅動註冊表、房間表與廣播引擎
// 每條連線只有 Unjoined 與 Joined 兩種狀態，所有轉換對格式錯誤的輸入都是安全的：
// 欄位缺漏的事件直接丟棄，不發事件、不改狀態，也絕不把錯誤丟回傳輸層
type SessionService struct {
	registry    *ConnectionRegistry
	rooms       *RoomStore
	presence    *PresenceTracker
	broadcaster *Broadcaster
	clients     *ClientManager

	maxMessageSize int64
	sendBuffer     int
}

// NewSessionService 創建會談協定處理器
func NewSessionService(
	registry *ConnectionRegistry,
	rooms *RoomStore,
	presence *PresenceTracker,
	broadcaster *Broadcaster,
	clients *ClientManager,
	wsCfg config.WebSocketConfig,
) *SessionService {
	maxSize := wsCfg.MaxMessageSize
	if maxSize <= 0 {
		maxSize = 4096
	}
	return &SessionService{
		registry:       registry,
		rooms:          rooms,
		presence:       presence,
		broadcaster:    broadcaster,
		clients:        clients,
		maxMessageSize: maxSize,
		sendBuffer:     wsCfg.SendBuffer,
	}
}

// HandleConnection 接手一條升級完成的 WebSocket 連線，直到連線結束才返回
// 連線 ID 在這裡指派，連線存活期間不變
func (s *SessionService) HandleConnection(conn *websocket.Conn) {
	client := NewClient(uuid.NewString(), conn, s.sendBuffer)
	s.clients.Add(client)

	// 連線結束時清理資源，中斷視同離開所在的房間
	defer func() {
		s.clients.Remove(client.ID)
		s.Disconnect(client.ID)
		close(client.send)
		conn.Close()
	}()

	go client.writePump()
	s.readPump(client)
}

// readPump 持續讀取並分發來自客戶端的事件，直到連線關閉
func (s *SessionService) readPump(client *Client) {
	client.Conn.SetReadLimit(s.maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		var evt models.ClientEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			log.Printf("event parse error: %v", err)
			continue
		}

		s.Dispatch(client.ID, evt)
	}
}

// Dispatch 依事件種類執行對應的狀態轉換，未知事件記錄後丟棄
func (s *SessionService) Dispatch(connID string, evt models.ClientEvent) {
	switch evt.Event {
	case models.EventJoinRoom:
		s.JoinRoom(connID, evt.RoomCode, evt.DisplayName)
	case models.EventSendMessage:
		s.SendMessage(connID, evt.RoomCode, evt.Text)
	case models.EventLeaveRoom:
		s.LeaveRoom(connID, evt.RoomCode)
	default:
		log.Printf("unknown event %q from conn %s", evt.Event, connID)
	}
}

// JoinRoom 處理 join-room 事件
// 效果依序為：正規化代碼、建立或取得房間、登記綁定、
// 發歷史與 room-joined 給本人、發 user-joined 給房間其他人
// 已在別的房間時會先行離開，不留下殘留的成員資料
func (s *SessionService) JoinRoom(connID, roomCode, displayName string) {
	code := models.NormalizeRoomCode(roomCode)
	name := strings.TrimSpace(displayName)
	if code == "" || name == "" {
		log.Printf("join-room rejected for conn %s: missing room code or display name", connID)
		return
	}

	if prev, _, ok := s.registry.Lookup(connID); ok && prev != "" && prev != code {
		s.LeaveRoom(connID, prev)
	}

	s.rooms.GetOrCreate(code)
	s.rooms.AddMember(code, connID)
	s.registry.RecordJoin(connID, code, name)

	members := s.presence.MembersOf(code)

	s.broadcaster.SendToConnection(connID, models.EventPreviousMessages, s.rooms.SnapshotHistory(code))
	s.broadcaster.SendToConnection(connID, models.EventRoomJoined, models.RoomJoinedPayload{
		RoomCode: code,
		Members:  members,
	})
	s.broadcaster.SendToRoomExcept(code, connID, models.EventUserJoined, models.UserJoinedPayload{
		DisplayName: name,
		Members:     members,
	})
}

// SendMessage 處理 send-message 事件
// 訊息先入房間歷史再廣播給全房間，發送者也收到，客戶端一律以伺服器版本為準
// 房間已消失時訊息不入檔，廣播對象為空，效果上等於無事發生
func (s *SessionService) SendMessage(connID, roomCode, text string) {
	code := models.NormalizeRoomCode(roomCode)
	body := strings.TrimSpace(text)
	if code == "" || body == "" {
		log.Printf("send-message rejected for conn %s: missing room code or empty text", connID)
		return
	}

	_, name, ok := s.registry.Lookup(connID)
	if !ok || name == "" {
		name = unknownDisplayName
	}

	msg := models.NewMessage(code, connID, name, body)
	s.rooms.AppendMessage(code, msg)
	s.broadcaster.SendToRoom(code, models.EventNewMessage, msg)
}

// LeaveRoom 處理 leave-room 事件
// 效果依序為：移出成員集合、清除註冊表綁定、發 user-left 給剩餘的人
// 最後一個成員離開時房間立即回收
func (s *SessionService) LeaveRoom(connID, roomCode string) {
	code := models.NormalizeRoomCode(roomCode)
	if code == "" {
		return
	}

	_, name, _ := s.registry.Lookup(connID)
	if name == "" {
		name = unknownDisplayName
	}

	removed, _ := s.rooms.RemoveMember(code, connID)
	if !removed {
		// 本來就不在這個房間裡，視為無事發生
		return
	}

	if cur, _, ok := s.registry.Lookup(connID); ok && cur == code {
		s.registry.RecordLeave(connID)
	}

	s.broadcaster.SendToRoom(code, models.EventUserLeft, models.UserLeftPayload{
		DisplayName: name,
		Members:     s.presence.MembersOf(code),
	})
}

// Disconnect 處理傳輸層的連線中斷，效果等同於對所在房間執行 leave-room
// 從未加入任何房間的連線中斷時沒有任何事件，重複呼叫也安全
func (s *SessionService) Disconnect(connID string) {
	roomCode, _, ok := s.registry.Lookup(connID)
	if !ok || roomCode == "" {
		return
	}
	s.LeaveRoom(connID, roomCode)
}

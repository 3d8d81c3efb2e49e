package models

// 客戶端送往伺服器的事件名稱
const (
	EventJoinRoom    = "join-room"
	EventSendMessage = "send-message"
	EventLeaveRoom   = "leave-room"
)

// 伺服器推播給客戶端的事件名稱
const (
	EventPreviousMessages = "previous-messages"
	EventRoomJoined       = "room-joined"
	EventUserJoined       = "user-joined"
	EventNewMessage       = "new-message"
	EventUserLeft         = "user-left"
)

// ClientEvent 代表客戶端傳入的統一事件信封，用不到的欄位省略
type ClientEvent struct {
	Event       string `json:"event"`
	RoomCode    string `json:"roomCode,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Text        string `json:"text,omitempty"`
}

// ServerEvent 代表伺服器推播的事件信封
type ServerEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// RoomJoinedPayload 發給剛加入者本人，附上目前的成員列表
type RoomJoinedPayload struct {
	RoomCode string   `json:"roomCode"`
	Members  []Member `json:"members"`
}

// UserJoinedPayload 發給房間內其他人，通知有新成員加入
type UserJoinedPayload struct {
	DisplayName string   `json:"displayName"`
	Members     []Member `json:"members"`
}

// UserLeftPayload 發給房間內剩餘的人，通知有成員離開
type UserLeftPayload struct {
	DisplayName string   `json:"displayName"`
	Members     []Member `json:"members"`
}

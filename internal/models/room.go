package models

import "strings"

// Member 代表成員列表中的一個顯示項目
type Member struct {
	ConnectionID string `json:"connectionId"`
	DisplayName  string `json:"displayName"`
}

// RoomSummary 代表房間的摘要資訊，用於房間列表查詢
type RoomSummary struct {
	Code         string `json:"code"`
	MemberCount  int    `json:"memberCount"`
	MessageCount int    `json:"messageCount"`
}

// Room 代表一個聊天房間
// 成員集合依加入順序維護，歷史訊息為固定上限的 FIFO
// Room 本身不是 goroutine 安全的，併發保護由 RoomStore 的鎖負責
type Room struct {
	Code string

	members []string // 連線 ID，依加入順序
	index   map[string]struct{}
	history []Message
}

// NewRoom 創建一個沒有成員、沒有歷史的空房間
func NewRoom(code string) *Room {
	return &Room{
		Code:  code,
		index: make(map[string]struct{}),
	}
}

// AddMember 將連線加入成員集合，已存在時不改變順序
// 回傳是否為新加入的成員
func (r *Room) AddMember(connID string) bool {
	if _, ok := r.index[connID]; ok {
		return false
	}
	r.index[connID] = struct{}{}
	r.members = append(r.members, connID)
	return true
}

// RemoveMember 將連線移出成員集合，回傳該連線原本是否在房間裡
func (r *Room) RemoveMember(connID string) bool {
	if _, ok := r.index[connID]; !ok {
		return false
	}
	delete(r.index, connID)
	for i, id := range r.members {
		if id == connID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return true
}

// MemberCount 回傳目前的成員數
func (r *Room) MemberCount() int {
	return len(r.members)
}

// MemberIDs 回傳成員連線 ID 的複本，順序即加入順序
func (r *Room) MemberIDs() []string {
	ids := make([]string, len(r.members))
	copy(ids, r.members)
	return ids
}

// AppendHistory 將訊息推入歷史，超過 limit 時淘汰最舊的訊息
func (r *Room) AppendHistory(msg Message, limit int) {
	r.history = append(r.history, msg)
	if limit > 0 && len(r.history) > limit {
		r.history = r.history[len(r.history)-limit:]
	}
}

// HistorySnapshot 回傳歷史訊息的複本，讀取方迭代時不受後續寫入影響
func (r *Room) HistorySnapshot() []Message {
	snapshot := make([]Message, len(r.history))
	copy(snapshot, r.history)
	return snapshot
}

// MessageCount 回傳目前保留的歷史訊息數
func (r *Room) MessageCount() int {
	return len(r.history)
}

// NormalizeRoomCode 正規化房間代碼：去除前後空白並轉為大寫
// 內部的 key 與顯示一律使用正規化後的代碼
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

package service

import (
	"sort"
	"sync"

	"chat_relay/internal/models"
)

// defaultHistoryLimit 每個房間保留的歷史訊息上限預設值
const defaultHistoryLimit = 100

// RoomStore 管理所有活躍房間
// 房間在第一次加入時建立，成員清空時立即回收，歷史一併丟棄
// 所有操作都在同一把鎖下完成，跨房間不會互相等待太久，目前的量級夠用
type RoomStore struct {
	mu           sync.RWMutex
	rooms        map[string]*models.Room
	historyLimit int
}

// NewRoomStore 創建空的房間表，historyLimit 不合法時使用預設上限
func NewRoomStore(historyLimit int) *RoomStore {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &RoomStore{
		rooms:        make(map[string]*models.Room),
		historyLimit: historyLimit,
	}
}

// GetOrCreate 回傳指定代碼的房間，不存在時建立空房間
// 同一個代碼的併發首次加入只會建立一個房間
func (s *RoomStore) GetOrCreate(code string) *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getOrCreateLocked(code)
}

func (s *RoomStore) getOrCreateLocked(code string) *models.Room {
	room, ok := s.rooms[code]
	if !ok {
		room = models.NewRoom(code)
		s.rooms[code] = room
	}
	return room
}

// AddMember 將連線加入房間的成員集合，房間不存在時一併建立
// 建立與加入在同一把鎖下完成，不會出現建了房間卻被併發離開回收的空窗
func (s *RoomStore) AddMember(code, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getOrCreateLocked(code).AddMember(connID)
}

// RemoveMember 將連線移出房間的成員集合
// 移除後房間若沒有成員，房間立即從表中回收
// 回傳是否有移除動作發生，以及剩餘的成員數
func (s *RoomStore) RemoveMember(code, connID string) (removed bool, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[code]
	if !ok {
		return false, 0
	}
	if !room.RemoveMember(connID) {
		return false, room.MemberCount()
	}
	remaining = room.MemberCount()
	if remaining == 0 {
		delete(s.rooms, code)
	}
	return true, remaining
}

// Remove 刪除房間，房間不存在時為冪等的 no-op
func (s *RoomStore) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rooms, code)
}

// AppendMessage 將訊息推入房間歷史並依上限淘汰最舊的
// 房間不存在時靜默略過，訊息不入檔但廣播照常進行
func (s *RoomStore) AppendMessage(code string, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[code]
	if !ok {
		return
	}
	room.AppendHistory(msg, s.historyLimit)
}

// SnapshotHistory 回傳房間歷史的複本，房間不存在時回傳空序列
func (s *RoomStore) SnapshotHistory(code string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[code]
	if !ok {
		return []models.Message{}
	}
	return room.HistorySnapshot()
}

// MemberIDs 回傳房間成員連線 ID 的複本，順序即加入順序
// 房間不存在時回傳 nil，廣播端視為沒有受眾
func (s *RoomStore) MemberIDs(code string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[code]
	if !ok {
		return nil
	}
	return room.MemberIDs()
}

// Exists 回傳房間是否存在
func (s *RoomStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rooms[code]
	return ok
}

// Summary 回傳單一房間的摘要資訊
func (s *RoomStore) Summary(code string) (models.RoomSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[code]
	if !ok {
		return models.RoomSummary{}, false
	}
	return models.RoomSummary{
		Code:         room.Code,
		MemberCount:  room.MemberCount(),
		MessageCount: room.MessageCount(),
	}, true
}

// Summaries 回傳所有活躍房間的摘要，依房間代碼排序
func (s *RoomStore) Summaries() []models.RoomSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.RoomSummary, 0, len(s.rooms))
	for _, room := range s.rooms {
		summaries = append(summaries, models.RoomSummary{
			Code:         room.Code,
			MemberCount:  room.MemberCount(),
			MessageCount: room.MessageCount(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Code < summaries[j].Code
	})
	return summaries
}

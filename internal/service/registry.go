package service

import "sync"

// connectionInfo 記錄單一連線目前的房間與顯示名稱
type connectionInfo struct {
	RoomCode    string
	DisplayName string
}

// ConnectionRegistry 追蹤每個連線目前屬於哪個房間、用什麼名字
// 一個連線同一時間最多屬於一個房間
type ConnectionRegistry struct {
	mu          sync.RWMutex
	connections map[string]connectionInfo
}

// NewConnectionRegistry 創建並初始化連線註冊表
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		connections: make(map[string]connectionInfo),
	}
}

// RecordJoin 將連線與房間、顯示名稱綁定
// 直接覆蓋先前的綁定，不會動到舊房間的成員集合，舊房間的清理由呼叫端負責
func (r *ConnectionRegistry) RecordJoin(connID, roomCode, displayName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[connID] = connectionInfo{
		RoomCode:    roomCode,
		DisplayName: displayName,
	}
}

// RecordLeave 清除連線的綁定，回傳原本所在的房間代碼
// 連線本來就沒有綁定時回傳 false，呼叫端視為無事發生
func (r *ConnectionRegistry) RecordLeave(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.connections[connID]
	if !ok {
		return "", false
	}
	delete(r.connections, connID)
	return info.RoomCode, true
}

// Lookup 回傳連線目前的房間代碼與顯示名稱
func (r *ConnectionRegistry) Lookup(connID string) (roomCode, displayName string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.connections[connID]
	if !ok {
		return "", "", false
	}
	return info.RoomCode, info.DisplayName, true
}
